package operations

import (
	"context"
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenops/pkg/contractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contractCaller/multicallContractCaller"
	"github.com/Layr-Labs/eigenops/pkg/contractCaller/sequentialContractCaller"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/signer"
	"github.com/Layr-Labs/eigenops/pkg/transactions"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// Invocation is the per-item context a descriptor or handler runs in.
// The provider and signer are built lazily so local and read operations never ask for a signing credential.
type Invocation struct {
	Id         string
	Descriptor *Descriptor
	Network    registry.Network
	ChainId    uint64
	Addresses  *registry.ContractAddresses
	Logger     *zap.Logger

	params   ParameterSource
	creds    CredentialSource
	executor *Executor

	client *ethereum.Client
	signer *signer.Signer
}

func (inv *Invocation) Client(ctx context.Context) (*ethereum.Client, error) {
	if inv.client != nil {
		return inv.client, nil
	}
	cred, err := inv.creds.ConnectionCredential(ctx)
	if err != nil {
		return nil, err
	}
	scoped := *cred
	scoped.Network = string(inv.Network)
	client, err := inv.executor.providers.GetProvider(&scoped)
	if err != nil {
		return nil, err
	}
	inv.client = client
	return client, nil
}

func (inv *Invocation) Signer(ctx context.Context) (*signer.Signer, error) {
	if inv.signer != nil {
		return inv.signer, nil
	}
	client, err := inv.Client(ctx)
	if err != nil {
		return nil, err
	}
	cred, err := inv.creds.SigningCredential(ctx)
	if err != nil {
		return nil, err
	}
	s, err := signer.CreateSigner(ctx, cred, client)
	if err != nil {
		return nil, err
	}
	inv.signer = s
	return s, nil
}

// SignerAddress is a convenience for handlers that only need the address.
func (inv *Invocation) SignerAddress(ctx context.Context) (common.Address, error) {
	s, err := inv.Signer(ctx)
	if err != nil {
		return common.Address{}, err
	}
	return s.Address(), nil
}

func (inv *Invocation) Caller(ctx context.Context) (contractCaller.IContractCaller, error) {
	client, err := inv.Client(ctx)
	if err != nil {
		return nil, err
	}
	if inv.executor.config.Sequential {
		return sequentialContractCaller.NewSequentialContractCaller(client, inv.Logger), nil
	}
	return multicallContractCaller.NewMulticallContractCaller(client, inv.Logger), nil
}

// ContractAddress resolves a registry role for the invocation's network.
func (inv *Invocation) ContractAddress(role registry.ContractRole) (common.Address, error) {
	addr := inv.Addresses.Get(role)
	if addr == "" {
		return common.Address{}, errorTypes.NewConfigurationError("contract", "No %s address for network %s", role, inv.Network)
	}
	return common.HexToAddress(addr), nil
}

// Read performs one call that must succeed and returns its decoded value.
// A revert comes back as a failed result so it surfaces as a validation error.
func (inv *Invocation) Read(ctx context.Context, target common.Address, a *abi.ABI, method string, args ...any) (any, error) {
	results, err := inv.ReadMany(ctx, []*contractCaller.CallWithAbi{{
		Target: target,
		Abi:    a,
		Method: method,
		Args:   args,
	}})
	if err != nil {
		return nil, err
	}
	res := results[0]
	if !res.Success {
		return nil, errorTypes.NewValidationError(method, "%s: %s", method, res.Error)
	}
	if res.DecodeErr != nil {
		return nil, res.DecodeErr
	}
	return res.DecodedValue, nil
}

// ReadMany runs calls through the contract caller in bounded, order-preserving chunks.
func (inv *Invocation) ReadMany(ctx context.Context, calls []*contractCaller.CallWithAbi) ([]*contractCaller.CallResult, error) {
	if len(calls) == 0 {
		return []*contractCaller.CallResult{}, nil
	}
	caller, err := inv.Caller(ctx)
	if err != nil {
		return nil, err
	}
	return contractCaller.BatchedMulticall(ctx, caller, calls, inv.executor.config.Batch)
}

// Send estimates, signs, submits and waits for a contract write.
func (inv *Invocation) Send(ctx context.Context, target common.Address, a *abi.ABI, method string, value *big.Int, args ...any) (*transactions.Outcome, error) {
	client, err := inv.Client(ctx)
	if err != nil {
		return nil, err
	}
	s, err := inv.Signer(ctx)
	if err != nil {
		return nil, err
	}
	cfg := inv.executor.config
	return transactions.SendTransaction(ctx, client, s, &transactions.Request{
		To:     target,
		Abi:    a,
		Method: method,
		Args:   args,
		Value:  value,
	}, &transactions.SendOptions{
		GasBufferPercent: cfg.GasBufferPercent,
		Wait:             cfg.Wait,
	}, inv.Logger)
}

// WriteRecord starts a write output record with the transaction outcome.
func WriteRecord(outcome *transactions.Outcome) *records.Record {
	r := records.New()
	r.Set("success", outcome.Receipt != nil && outcome.Receipt.Status == 1)
	r.Set("transactionHash", outcome.Hash)
	if outcome.Receipt != nil && outcome.Receipt.BlockNumber != nil {
		r.Set("blockNumber", outcome.Receipt.BlockNumber)
	} else {
		r.Set("blockNumber", nil)
	}
	if outcome.Receipt != nil {
		r.Set("gasUsed", outcome.Receipt.GasUsed)
		r.Set("gasCost", transactions.FormatGasCost(outcome.Receipt.GasUsed, outcome.Receipt.EffectiveGasPrice))
	}
	return r
}

// Finish appends the network echo every record carries.
func (inv *Invocation) Finish(r *records.Record) *records.Record {
	return r.Set("network", string(inv.Network))
}

// ReadAll performs calls that must all succeed and returns their decoded values in order.
func (inv *Invocation) ReadAll(ctx context.Context, calls []*contractCaller.CallWithAbi) ([]any, error) {
	results, err := inv.ReadMany(ctx, calls)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(results))
	for i, res := range results {
		method := calls[i].Method
		if !res.Success {
			return nil, errorTypes.NewValidationError(method, "%s: %s", method, res.Error)
		}
		if res.DecodeErr != nil {
			return nil, res.DecodeErr
		}
		out[i] = res.DecodedValue
	}
	return out, nil
}
