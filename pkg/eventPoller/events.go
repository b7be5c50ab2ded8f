package eventPoller

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/types/numbers"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// EventSpec binds a watchable event to the protocol contract that emits it.
type EventSpec struct {
	Name     string
	Contract registry.ContractRole
	// Decorate adds derived fields after the decoded arguments are set.
	Decorate func(r *records.Record, args map[string]any)
}

var eventSpecs = []*EventSpec{
	{
		Name: "Deposit", Contract: registry.Contract_StrategyManager,
		Decorate: func(r *records.Record, args map[string]any) {
			shares, _ := args["shares"].(*big.Int)
			r.Set("sharesFormatted", numbers.FormatEther(shares))
		},
	},
	{Name: "OperatorRegistered", Contract: registry.Contract_DelegationManager},
	{Name: "StakerDelegated", Contract: registry.Contract_DelegationManager},
	{Name: "StakerUndelegated", Contract: registry.Contract_DelegationManager},
	{Name: "WithdrawalQueued", Contract: registry.Contract_DelegationManager},
	{Name: "WithdrawalCompleted", Contract: registry.Contract_DelegationManager},
	{Name: "PodDeployed", Contract: registry.Contract_EigenPodManager},
	{Name: "OperatorAVSRegistrationStatusUpdated", Contract: registry.Contract_AVSDirectory},
	{Name: "RewardsClaimed", Contract: registry.Contract_RewardsCoordinator},
}

// SupportedEvents lists the watchable event names in table order.
func SupportedEvents() []string {
	out := make([]string, 0, len(eventSpecs))
	for _, s := range eventSpecs {
		out = append(out, s.Name)
	}
	return out
}

func GetEventSpec(name string) (*EventSpec, error) {
	idx := slices.IndexFunc(eventSpecs, func(s *EventSpec) bool { return s.Name == name })
	if idx < 0 {
		return nil, errorTypes.NewConfigurationError("event", "Unsupported event '%s', expected one of %s", name, strings.Join(SupportedEvents(), ", "))
	}
	return eventSpecs[idx], nil
}

func (s *EventSpec) abiEvent() (*abi.Event, error) {
	a, err := contracts.GetAbi(s.Contract)
	if err != nil {
		return nil, err
	}
	ev, ok := a.Events[s.Name]
	if !ok {
		return nil, errorTypes.NewConfigurationError("event", "%s does not declare %s", s.Contract, s.Name)
	}
	return &ev, nil
}

// DecodedEvent is one matched log with its arguments keyed by ABI name.
type DecodedEvent struct {
	Log  types.Log
	Args map[string]any
	// Order holds the argument names in declaration order.
	Order []string
}

func decodeLog(ev *abi.Event, lg types.Log) (*DecodedEvent, error) {
	if len(lg.Topics) == 0 || lg.Topics[0] != ev.ID {
		return nil, fmt.Errorf("log topic does not match %s", ev.Name)
	}
	args := make(map[string]any, len(ev.Inputs))

	var indexed abi.Arguments
	for _, input := range ev.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if err := abi.ParseTopicsIntoMap(args, indexed, lg.Topics[1:]); err != nil {
		return nil, err
	}
	if err := ev.Inputs.UnpackIntoMap(args, lg.Data); err != nil {
		return nil, err
	}

	order := make([]string, 0, len(ev.Inputs))
	for _, input := range ev.Inputs {
		order = append(order, input.Name)
	}
	return &DecodedEvent{Log: lg, Args: args, Order: order}, nil
}

// matchesAddress reports whether any address or 32-byte argument equals filter, ignoring case.
func (d *DecodedEvent) matchesAddress(filter string) bool {
	if filter == "" {
		return true
	}
	for _, v := range d.Args {
		var candidate string
		switch t := v.(type) {
		case common.Address:
			candidate = t.Hex()
		case common.Hash:
			candidate = t.Hex()
		case [32]byte:
			candidate = common.Hash(t).Hex()
		default:
			continue
		}
		if strings.EqualFold(candidate, filter) {
			return true
		}
	}
	return false
}

// toRecord renders the common fields followed by the event's arguments.
func (d *DecodedEvent) toRecord(spec *EventSpec, network string) *records.Record {
	r := records.New().
		Set("event", spec.Name).
		Set("network", network).
		Set("blockNumber", d.Log.BlockNumber).
		Set("transactionHash", d.Log.TxHash).
		Set("logIndex", d.Log.Index)
	for _, name := range d.Order {
		r.Set(name, d.Args[name])
	}
	if spec.Decorate != nil {
		spec.Decorate(r, d.Args)
	}
	return r
}
