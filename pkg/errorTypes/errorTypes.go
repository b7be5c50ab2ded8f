package errorTypes

import (
	"errors"
	"fmt"
	"time"
)

// ConfigurationError is a missing or invalid credential/config field. Never retried.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func NewConfigurationError(field string, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// ValidationError is a malformed address or argument supplied by the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field string, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

type UnsupportedNetworkError struct {
	Network string
}

func (e *UnsupportedNetworkError) Error() string {
	return fmt.Sprintf("Unsupported network: %s", e.Network)
}

type UnknownOperationError struct {
	Operation string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("Unknown operation: %s", e.Operation)
}

// TransientRpcError is surfaced once the retry budget for a rate-limit or timeout error is spent.
type TransientRpcError struct {
	Attempts int
	Err      error
}

func (e *TransientRpcError) Error() string {
	return fmt.Sprintf("rpc call failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransientRpcError) Unwrap() error {
	return e.Err
}

type GasEstimationError struct {
	Reason string
	Err    error
}

func (e *GasEstimationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("Gas estimation failed: %s", e.Reason)
	}
	return fmt.Sprintf("Gas estimation failed: %v", e.Err)
}

func (e *GasEstimationError) Unwrap() error {
	return e.Err
}

type TransactionError struct {
	Hash    string
	Message string
	Err     error
}

func (e *TransactionError) Error() string {
	return e.Message
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

type TransactionRevertedError struct {
	Hash        string
	BlockNumber uint64
	GasUsed     uint64
}

func (e *TransactionRevertedError) Error() string {
	return fmt.Sprintf("Transaction reverted: %s (block %d)", e.Hash, e.BlockNumber)
}

type TransactionTimeoutError struct {
	Hash    string
	Timeout time.Duration
}

func (e *TransactionTimeoutError) Error() string {
	return fmt.Sprintf("Transaction %s not confirmed within %s", e.Hash, e.Timeout)
}

type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsCallerError reports whether err is one the caller has to fix (config or validation).
func IsCallerError(err error) bool {
	var ce *ConfigurationError
	var ve *ValidationError
	return errors.As(err, &ce) || errors.As(err, &ve)
}
