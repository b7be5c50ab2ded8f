package operations

import (
	"context"
	"fmt"
	"math/big"
	"slices"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenops/internal/metrics"
	"github.com/Layr-Labs/eigenops/internal/metrics/metricsTypes"
	"github.com/Layr-Labs/eigenops/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/transactions"
	"github.com/Layr-Labs/eigenops/pkg/types/numbers"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type ExecutorConfig struct {
	DefaultNetwork   string
	GasBufferPercent int
	Wait             *transactions.WaitOptions
	Batch            *contractCaller.BatchOptions
	// Sequential reads through eth_call one by one instead of Multicall3.
	Sequential bool
}

type Executor struct {
	config      *ExecutorConfig
	providers   *ethereum.ProviderFactory
	metricsSink *metrics.MetricsSink
	logger      *zap.Logger
	descriptors map[string]*Descriptor
}

func NewExecutor(cfg *ExecutorConfig, providers *ethereum.ProviderFactory, ms *metrics.MetricsSink, l *zap.Logger) *Executor {
	if cfg == nil {
		cfg = &ExecutorConfig{}
	}
	if cfg.DefaultNetwork == "" {
		cfg.DefaultNetwork = string(registry.Network_Mainnet)
	}
	return &Executor{
		config:      cfg,
		providers:   providers,
		metricsSink: ms,
		logger:      l,
		descriptors: lo.KeyBy(AllDescriptors(), func(d *Descriptor) string { return d.Name() }),
	}
}

// Descriptors returns every registered operation ordered by name.
func (e *Executor) Descriptors() []*Descriptor {
	out := lo.Values(e.descriptors)
	slices.SortFunc(out, func(a, b *Descriptor) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}

func (e *Executor) Lookup(name string) (*Descriptor, error) {
	d, ok := e.descriptors[name]
	if !ok {
		return nil, &errorTypes.UnknownOperationError{Operation: name}
	}
	return d, nil
}

func (e *Executor) newInvocation(d *Descriptor, params ParameterSource, creds CredentialSource) (*Invocation, error) {
	networkName := e.config.DefaultNetwork
	if v, ok := params.GetParameter("network"); ok {
		networkName = fmt.Sprint(v)
	}
	profile, err := registry.GetNetworkProfile(networkName)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	return &Invocation{
		Id:         id,
		Descriptor: d,
		Network:    profile.Network,
		ChainId:    profile.ChainId,
		Addresses:  profile.Addresses,
		Logger:     e.logger.With(zap.String("operation", d.Name()), zap.String("invocationId", id)),
		params:     params,
		creds:      creds,
		executor:   e,
	}, nil
}

// Invoke runs one operation for one parameter set.
func (e *Executor) Invoke(ctx context.Context, name string, params ParameterSource, creds CredentialSource) (*records.Record, error) {
	d, err := e.Lookup(name)
	if err != nil {
		return nil, err
	}
	inv, err := e.newInvocation(d, params, creds)
	if err != nil {
		return nil, err
	}

	labels := []metricsTypes.MetricsLabel{
		{Name: "operation", Value: d.Name()},
		{Name: "network", Value: string(inv.Network)},
	}
	start := time.Now()
	e.metricsSink.Count(metricsTypes.Metric_Incr_OperationInvoked, labels)
	defer e.metricsSink.Observe(metricsTypes.Metric_Timing_OperationDuration, start, labels)

	inv.Logger.Sugar().Debugw("Invoking operation", zap.String("network", string(inv.Network)))

	var r *records.Record
	if d.Handler != nil {
		r, err = d.Handler(ctx, inv)
	} else {
		r, err = runDescriptor(ctx, inv)
	}
	if err != nil {
		e.metricsSink.Count(metricsTypes.Metric_Incr_OperationFailed, labels)
		inv.Logger.Sugar().Errorw("Operation failed", zap.Error(err))
		return nil, err
	}
	return r, nil
}

// Execute runs name once per item. With continueOnFail a failed item yields {error: <message>}
// and its siblings still run; otherwise the first failure is returned.
func (e *Executor) Execute(ctx context.Context, name string, items []ParameterSource, creds CredentialSource, continueOnFail bool) ([]*records.Record, error) {
	if _, err := e.Lookup(name); err != nil {
		return nil, err
	}
	out := make([]*records.Record, 0, len(items))
	for i, item := range items {
		r, err := e.Invoke(ctx, name, item, creds)
		if err != nil {
			if !continueOnFail {
				return out, fmt.Errorf("item %d: %w", i, err)
			}
			out = append(out, records.New().Set("error", err.Error()))
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// resolveTarget returns the registry address for protocol contracts or the target parameter for instances.
func resolveTarget(inv *Invocation, d *Descriptor) (common.Address, error) {
	if contracts.IsInstanceContract(d.Contract) {
		return inv.Address(d.TargetParam)
	}
	return inv.ContractAddress(d.Contract)
}

// buildArgs converts every ArgSpec into its ABI value, collecting echoes in declaration order.
func buildArgs(ctx context.Context, inv *Invocation, specs []ArgSpec, echoes *records.Record) ([]any, error) {
	args := make([]any, 0, len(specs))
	for _, spec := range specs {
		var value any
		raw, present := inv.params.GetParameter(spec.Param)
		switch {
		case present:
			v, err := convertParam(raw, spec.Type, spec.Param)
			if err != nil {
				return nil, err
			}
			value = v
		case spec.FromSigner:
			addr, err := inv.SignerAddress(ctx)
			if err != nil {
				return nil, err
			}
			value = addr
		case spec.Default != nil:
			v, err := convertParam(spec.Default, spec.Type, spec.Param)
			if err != nil {
				return nil, err
			}
			value = v
		default:
			return nil, errorTypes.NewValidationError(spec.Param, "%s is required", spec.Param)
		}
		args = append(args, value)

		if spec.Echo != "" {
			echoes.Set(spec.Echo, value)
		}
		if spec.Strategy {
			addr, _ := value.(common.Address)
			setStrategyInfo(inv, echoes, addr)
		}
	}
	return args, nil
}

// setStrategyInfo echoes the catalogued name and symbol, falling back to placeholders.
func setStrategyInfo(inv *Invocation, r *records.Record, strategy common.Address) {
	name, symbol := "Unknown Strategy", "UNKNOWN"
	if info := registry.FindStrategyByAddress(string(inv.Network), strategy.Hex()); info != nil {
		name, symbol = info.Name, info.Symbol
	}
	r.Set("strategyName", name)
	r.Set("symbol", symbol)
}

func setOutput(r *records.Record, spec OutputSpec, value any) {
	switch spec.Format {
	case Output_Formatted18:
		r.Set(spec.Field, value)
		if n, ok := value.(*big.Int); ok {
			r.Set(spec.Field+"Formatted", numbers.FormatUnits(n, numbers.EtherDecimals))
		}
	case Output_NonZero:
		addr, _ := value.(common.Address)
		r.Set(spec.Field, addr != (common.Address{}))
	default:
		r.Set(spec.Field, value)
	}
}

func pickOutput(decoded any, index int) any {
	if values, ok := decoded.([]any); ok {
		if index < len(values) {
			return values[index]
		}
		return nil
	}
	return decoded
}

// runDescriptor executes a plain descriptor: one read or one write.
func runDescriptor(ctx context.Context, inv *Invocation) (*records.Record, error) {
	d := inv.Descriptor
	a, err := contracts.GetAbi(d.Contract)
	if err != nil {
		return nil, err
	}
	target, err := resolveTarget(inv, d)
	if err != nil {
		return nil, err
	}
	echoes := records.New()
	if contracts.IsInstanceContract(d.Contract) && d.TargetEcho != "" {
		echoes.Set(d.TargetEcho, target)
	}
	args, err := buildArgs(ctx, inv, d.Args, echoes)
	if err != nil {
		return nil, err
	}

	switch d.Kind {
	case Kind_Read:
		decoded, err := inv.Read(ctx, target, a, d.Method, args...)
		if err != nil {
			return nil, err
		}
		r := echoes
		for _, out := range d.Outputs {
			setOutput(r, out, pickOutput(decoded, out.Index))
		}
		return inv.Finish(r), nil
	case Kind_Write:
		outcome, err := inv.Send(ctx, target, a, d.Method, d.Value, args...)
		if err != nil {
			return nil, err
		}
		r := WriteRecord(outcome)
		if d.SignerEcho != "" {
			addr, err := inv.SignerAddress(ctx)
			if err != nil {
				return nil, err
			}
			r.Set(d.SignerEcho, addr)
		}
		r.Merge(echoes)
		return inv.Finish(r), nil
	}
	return nil, errorTypes.NewConfigurationError("kind", "Operation %s has no handler", d.Name())
}
