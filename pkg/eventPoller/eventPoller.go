// Package eventPoller turns EigenLayer contract logs into output records, tracking the
// last processed block per stream in a cursor store.
package eventPoller

import (
	"context"
	"math/big"
	"strings"

	"github.com/Layr-Labs/eigenops/internal/metrics"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/Layr-Labs/eigenops/pkg/cursorStore"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// BootstrapBlocks is how far back the first poll of a stream reaches.
const BootstrapBlocks = 1000

// DefaultBackfillWindow bounds each eth_getLogs range during a backfill.
const DefaultBackfillWindow = 2000

type LogBackend interface {
	BlockNumber(ctx context.Context) (uint64, error)
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
}

// Subscription identifies one polled stream.
type Subscription struct {
	Network       string
	Event         string
	FilterAddress string
	// CursorKey overrides the derived <network>:<event>[:<filter>] key.
	CursorKey string
}

func (s *Subscription) key() string {
	if s.CursorKey != "" {
		return s.CursorKey
	}
	return cursorStore.CursorKey(s.Network, s.Event, strings.ToLower(s.FilterAddress))
}

func (s *Subscription) labels() []metricsTypes.MetricsLabel {
	return []metricsTypes.MetricsLabel{
		{Name: "event", Value: s.Event},
		{Name: "network", Value: s.Network},
	}
}

type EventPoller struct {
	backend     LogBackend
	store       cursorStore.CursorStore
	metricsSink *metrics.MetricsSink
	logger      *zap.Logger
}

func NewEventPoller(backend LogBackend, store cursorStore.CursorStore, ms *metrics.MetricsSink, l *zap.Logger) *EventPoller {
	return &EventPoller{
		backend:     backend,
		store:       store,
		metricsSink: ms,
		logger:      l,
	}
}

// target is a validated subscription ready to query.
type target struct {
	spec    *EventSpec
	event   *eventQuery
	network string
	filter  string
}

type eventQuery struct {
	address common.Address
	topic   common.Hash
	decode  func(lg types.Log) (*DecodedEvent, error)
}

// resolve validates the subscription without touching the network.
func resolve(sub *Subscription) (*target, error) {
	spec, err := GetEventSpec(sub.Event)
	if err != nil {
		return nil, err
	}
	profile, err := registry.GetNetworkProfile(sub.Network)
	if err != nil {
		return nil, err
	}
	addr := profile.Addresses.Get(spec.Contract)
	if addr == "" {
		return nil, errorTypes.NewConfigurationError("contract", "No %s address for network %s", spec.Contract, profile.Network)
	}
	if sub.FilterAddress != "" && !common.IsHexAddress(sub.FilterAddress) && len(strings.TrimPrefix(sub.FilterAddress, "0x")) != 64 {
		return nil, errorTypes.NewValidationError("filterAddress", "Invalid filter address: %s", sub.FilterAddress)
	}
	ev, err := spec.abiEvent()
	if err != nil {
		return nil, err
	}
	return &target{
		spec:    spec,
		network: string(profile.Network),
		filter:  sub.FilterAddress,
		event: &eventQuery{
			address: common.HexToAddress(addr),
			topic:   ev.ID,
			decode: func(lg types.Log) (*DecodedEvent, error) {
				return decodeLog(ev, lg)
			},
		},
	}, nil
}

// query fetches logs in [from, to] and returns the records that survive decoding and filtering.
// Undecodable logs are skipped.
func (p *EventPoller) query(ctx context.Context, t *target, from, to uint64) ([]*records.Record, error) {
	logs, err := p.backend.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{t.event.address},
		Topics:    [][]common.Hash{{t.event.topic}},
	})
	if err != nil {
		p.logger.Sugar().Errorw("query - failed to fetch logs",
			zap.String("event", t.spec.Name),
			zap.Uint64("fromBlock", from),
			zap.Uint64("toBlock", to),
			zap.Error(err),
		)
		return nil, err
	}

	out := make([]*records.Record, 0, len(logs))
	for _, lg := range logs {
		decoded, err := t.event.decode(lg)
		if err != nil {
			p.logger.Sugar().Debugw("Skipping undecodable log",
				zap.String("event", t.spec.Name),
				zap.String("transactionHash", lg.TxHash.Hex()),
				zap.Uint("logIndex", lg.Index),
				zap.Error(err),
			)
			continue
		}
		if !decoded.matchesAddress(t.filter) {
			continue
		}
		out = append(out, decoded.toRecord(t.spec, t.network))
	}
	return out, nil
}

// Poll runs one tick: it queries from the block after the cursor up to the head and then
// advances the cursor to the head, whether or not anything matched. When the head has not
// moved past the cursor it returns no records and leaves the cursor alone.
func (p *EventPoller) Poll(ctx context.Context, sub *Subscription) ([]*records.Record, error) {
	t, err := resolve(sub)
	if err != nil {
		return nil, err
	}
	key := sub.key()

	last, found, err := p.store.GetCursor(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cursor")
	}
	current, err := p.backend.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	if found && current <= last {
		p.logger.Sugar().Debugw("No new blocks", zap.String("cursor", key), zap.Uint64("current", current))
		return []*records.Record{}, nil
	}

	from := last + 1
	if !found {
		from = 0
		if current > BootstrapBlocks {
			from = current - BootstrapBlocks
		}
	}
	out, err := p.query(ctx, t, from, current)
	if err != nil {
		return nil, err
	}

	if err := p.store.SetCursor(ctx, &cursorStore.EventCursor{
		Key:                key,
		Network:            t.network,
		Event:              t.spec.Name,
		LastProcessedBlock: current,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store cursor")
	}

	labels := sub.labels()
	_ = p.metricsSink.Incr(metricsTypes.Metric_Incr_PollerEvents, labels, float64(len(out)))
	_ = p.metricsSink.Gauge(metricsTypes.Metric_Gauge_PollerCursor, float64(current), labels)

	p.logger.Sugar().Infow("Polled events",
		zap.String("cursor", key),
		zap.Uint64("fromBlock", from),
		zap.Uint64("toBlock", current),
		zap.Int("matched", len(out)),
	)
	return out, nil
}

// BackfillProgress is called after each window with the number of blocks covered so far.
type BackfillProgress func(done uint64, total uint64)

// Backfill replays [from, to] in windows without reading or moving the cursor.
func (p *EventPoller) Backfill(ctx context.Context, sub *Subscription, from, to, window uint64, progress BackfillProgress) ([]*records.Record, error) {
	t, err := resolve(sub)
	if err != nil {
		return nil, err
	}
	if to < from {
		return nil, errorTypes.NewValidationError("toBlock", "toBlock %d is before fromBlock %d", to, from)
	}
	if window == 0 {
		window = DefaultBackfillWindow
	}

	total := to - from + 1
	out := make([]*records.Record, 0)
	for start := from; start <= to; {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		end := start + window - 1
		if end > to || end < start {
			end = to
		}
		batch, err := p.query(ctx, t, start, end)
		if err != nil {
			return out, err
		}
		out = append(out, batch...)
		if progress != nil {
			progress(end-from+1, total)
		}
		if end == to {
			break
		}
		start = end + 1
	}

	_ = p.metricsSink.Incr(metricsTypes.Metric_Incr_PollerEvents, sub.labels(), float64(len(out)))
	return out, nil
}
