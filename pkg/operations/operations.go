// Package operations maps "<resource>.<operation>" names onto EigenLayer contract reads and writes.
//
// Simple operations are fully described by a Descriptor; composite flows supply a Handler.
package operations

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/clients/ethereum"
	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/records"
	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/Layr-Labs/eigenops/pkg/signer"
)

type Kind string

const (
	Kind_Read  Kind = "read"
	Kind_Write Kind = "write"
	// Kind_Local needs neither a provider nor a transaction.
	Kind_Local Kind = "local"
)

type ParamType string

const (
	Param_Address     ParamType = "address"
	Param_AddressList ParamType = "address[]"
	Param_Uint256     ParamType = "uint256"
	Param_Uint256List ParamType = "uint256[]"
	Param_Uint64      ParamType = "uint64"
	Param_Uint32      ParamType = "uint32"
	Param_Bytes32     ParamType = "bytes32"
	Param_Bytes       ParamType = "bytes"
	Param_String      ParamType = "string"
	Param_Bool        ParamType = "bool"
)

// ArgSpec binds a named parameter to a positional contract argument.
type ArgSpec struct {
	Param    string
	Type     ParamType
	Default  any
	Optional bool
	// FromSigner substitutes the signer address when the parameter is absent.
	FromSigner bool
	// Echo is the output field the validated value is copied to; empty means no echo.
	Echo string
	// Strategy adds the catalogued strategyName and symbol after the echo.
	Strategy bool
}

type OutputFormat string

const (
	Output_Plain OutputFormat = "plain"
	// Output_Formatted18 adds "<field>Formatted" with the value rendered at 18 decimals.
	Output_Formatted18 OutputFormat = "formatted-18"
	// Output_NonZero emits whether the address value is non-zero.
	Output_NonZero OutputFormat = "non-zero"
)

type OutputSpec struct {
	Field string
	// Index selects one of several return values.
	Index  int
	Format OutputFormat
}

// HandlerFunc implements a composite operation.
type HandlerFunc func(ctx context.Context, inv *Invocation) (*records.Record, error)

type Descriptor struct {
	Resource  string
	Operation string
	// Contract is the registry role, or a per-instance role whose address comes from TargetParam.
	Contract    registry.ContractRole
	TargetParam string
	// TargetEcho is the output field the instance address is copied to.
	TargetEcho string
	Method     string
	Kind       Kind
	Args       []ArgSpec
	Outputs    []OutputSpec
	// SignerEcho is the output field the signer address is copied to on writes.
	SignerEcho string
	Value      *big.Int
	Handler    HandlerFunc

	Description string
}

func (d *Descriptor) Name() string {
	return fmt.Sprintf("%s.%s", d.Resource, d.Operation)
}

// ParameterSource is the "get parameter" half of the host contract.
type ParameterSource interface {
	GetParameter(name string) (any, bool)
}

// Params is a ParameterSource backed by a map, typically decoded from JSON.
type Params map[string]any

func (p Params) GetParameter(name string) (any, bool) {
	v, ok := p[name]
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

// CredentialSource is the "get credential" half of the host contract.
type CredentialSource interface {
	ConnectionCredential(ctx context.Context) (*ethereum.ConnectionCredential, error)
	SigningCredential(ctx context.Context) (*signer.SigningCredential, error)
}

// StaticCredentials serves fixed credential material.
type StaticCredentials struct {
	Connection *ethereum.ConnectionCredential
	Signing    *signer.SigningCredential
}

func (c *StaticCredentials) ConnectionCredential(ctx context.Context) (*ethereum.ConnectionCredential, error) {
	if c.Connection == nil {
		return nil, errorTypes.NewConfigurationError("credential", "RPC credential is required")
	}
	return c.Connection, nil
}

func (c *StaticCredentials) SigningCredential(ctx context.Context) (*signer.SigningCredential, error) {
	if c.Signing == nil {
		return nil, errorTypes.NewConfigurationError("credential", "Signing credential is required for write operations")
	}
	return c.Signing, nil
}
