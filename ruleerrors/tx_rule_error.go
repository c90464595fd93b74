// Package ruleerrors defines the two error taxonomies emitted by the
// isolation validation layer: per-transaction errors (TxRuleError) and
// per-block errors (RuleError). Both are plain values, never panics or
// logged-and-swallowed failures.
package ruleerrors

import "fmt"

// TxRuleErrorCode enumerates the distinct transaction-isolation failure
// categories.
type TxRuleErrorCode string

const (
	ErrNoTxInputs               TxRuleErrorCode = "ErrNoTxInputs"
	ErrTooManyInputs            TxRuleErrorCode = "ErrTooManyInputs"
	ErrTooManyOutputs           TxRuleErrorCode = "ErrTooManyOutputs"
	ErrTooBigSignatureScript    TxRuleErrorCode = "ErrTooBigSignatureScript"
	ErrTooBigScriptPublicKey    TxRuleErrorCode = "ErrTooBigScriptPublicKey"
	ErrCoinbaseHasInputs        TxRuleErrorCode = "ErrCoinbaseHasInputs"
	ErrCoinbaseTooManyOutputs   TxRuleErrorCode = "ErrCoinbaseTooManyOutputs"
	ErrCoinbaseScriptPublicKeyTooLong TxRuleErrorCode = "ErrCoinbaseScriptPublicKeyTooLong"
	ErrTxOutZero                TxRuleErrorCode = "ErrTxOutZero"
	ErrTxOutTooHigh             TxRuleErrorCode = "ErrTxOutTooHigh"
	ErrOutputsValueOverflow     TxRuleErrorCode = "ErrOutputsValueOverflow"
	ErrTotalTxOutTooHigh        TxRuleErrorCode = "ErrTotalTxOutTooHigh"
	ErrTxDuplicateInputs        TxRuleErrorCode = "ErrTxDuplicateInputs"
	ErrTxHasGas                 TxRuleErrorCode = "ErrTxHasGas"
	ErrNonCoinbaseTxHasPayload  TxRuleErrorCode = "ErrNonCoinbaseTxHasPayload"
	ErrUnknownTxVersion         TxRuleErrorCode = "ErrUnknownTxVersion"
)

// TxRuleError is the value returned by TransactionValidator when a
// transaction fails an isolation check. Which fields are populated depends
// on Code; see the constructors below for the exact shape of each variant.
type TxRuleError struct {
	Code TxRuleErrorCode

	// Index is the 0-based index of the offending input/output, when the
	// check is per-element (TooBigSignatureScript, TooBigScriptPublicKey,
	// CoinbaseScriptPublicKeyTooLong, TxOutZero, TxOutTooHigh).
	Index int

	// Count/Limit carry the observed count and the configured ceiling for
	// the count-based checks (TooManyInputs, TooManyOutputs,
	// CoinbaseTooManyOutputs, CoinbaseHasInputs uses Count only).
	Count int
	Limit int

	// Version carries the rejected transaction version for
	// UnknownTxVersion.
	Version uint16
}

func (e *TxRuleError) Error() string {
	switch e.Code {
	case ErrNoTxInputs:
		return "transaction has no inputs"
	case ErrTooManyInputs:
		return fmt.Sprintf("transaction has %d inputs, which exceeds the maximum allowed of %d", e.Count, e.Limit)
	case ErrTooManyOutputs:
		return fmt.Sprintf("transaction has %d outputs, which exceeds the maximum allowed of %d", e.Count, e.Limit)
	case ErrTooBigSignatureScript:
		return fmt.Sprintf("transaction input %d has a signature script larger than the maximum allowed size of %d bytes", e.Index, e.Limit)
	case ErrTooBigScriptPublicKey:
		return fmt.Sprintf("transaction output %d has a script public key larger than the maximum allowed size of %d bytes", e.Index, e.Limit)
	case ErrCoinbaseHasInputs:
		return fmt.Sprintf("coinbase transaction has %d inputs, but must have none", e.Count)
	case ErrCoinbaseTooManyOutputs:
		return fmt.Sprintf("coinbase transaction has %d outputs, which exceeds the maximum allowed of %d", e.Count, e.Limit)
	case ErrCoinbaseScriptPublicKeyTooLong:
		return fmt.Sprintf("coinbase transaction output %d has a script public key longer than the maximum allowed coinbase payload length", e.Index)
	case ErrTxOutZero:
		return fmt.Sprintf("transaction output %d has a value of zero", e.Index)
	case ErrTxOutTooHigh:
		return fmt.Sprintf("transaction output %d has a value higher than the maximum allowed sompi amount", e.Index)
	case ErrOutputsValueOverflow:
		return "total value of all transaction outputs overflows a uint64"
	case ErrTotalTxOutTooHigh:
		return "total value of all transaction outputs exceeds the maximum allowed sompi amount"
	case ErrTxDuplicateInputs:
		return "transaction spends the same previous outpoint more than once"
	case ErrTxHasGas:
		return "transaction has a non-zero gas, but subnetwork gas is not active"
	case ErrNonCoinbaseTxHasPayload:
		return "non-coinbase transaction has a non-empty payload"
	case ErrUnknownTxVersion:
		return fmt.Sprintf("transaction has unknown version %d", e.Version)
	default:
		return string(e.Code)
	}
}

func NewErrNoTxInputs() *TxRuleError { return &TxRuleError{Code: ErrNoTxInputs} }

func NewErrTooManyInputs(count, limit int) *TxRuleError {
	return &TxRuleError{Code: ErrTooManyInputs, Count: count, Limit: limit}
}

func NewErrTooManyOutputs(count, limit int) *TxRuleError {
	return &TxRuleError{Code: ErrTooManyOutputs, Count: count, Limit: limit}
}

func NewErrTooBigSignatureScript(index, limit int) *TxRuleError {
	return &TxRuleError{Code: ErrTooBigSignatureScript, Index: index, Limit: limit}
}

func NewErrTooBigScriptPublicKey(index, limit int) *TxRuleError {
	return &TxRuleError{Code: ErrTooBigScriptPublicKey, Index: index, Limit: limit}
}

func NewErrCoinbaseHasInputs(count int) *TxRuleError {
	return &TxRuleError{Code: ErrCoinbaseHasInputs, Count: count}
}

func NewErrCoinbaseTooManyOutputs(count, limit int) *TxRuleError {
	return &TxRuleError{Code: ErrCoinbaseTooManyOutputs, Count: count, Limit: limit}
}

func NewErrCoinbaseScriptPublicKeyTooLong(index int) *TxRuleError {
	return &TxRuleError{Code: ErrCoinbaseScriptPublicKeyTooLong, Index: index}
}

func NewErrTxOutZero(index int) *TxRuleError {
	return &TxRuleError{Code: ErrTxOutZero, Index: index}
}

func NewErrTxOutTooHigh(index int) *TxRuleError {
	return &TxRuleError{Code: ErrTxOutTooHigh, Index: index}
}

func NewErrOutputsValueOverflow() *TxRuleError {
	return &TxRuleError{Code: ErrOutputsValueOverflow}
}

func NewErrTotalTxOutTooHigh() *TxRuleError {
	return &TxRuleError{Code: ErrTotalTxOutTooHigh}
}

func NewErrTxDuplicateInputs() *TxRuleError {
	return &TxRuleError{Code: ErrTxDuplicateInputs}
}

func NewErrTxHasGas() *TxRuleError {
	return &TxRuleError{Code: ErrTxHasGas}
}

func NewErrNonCoinbaseTxHasPayload() *TxRuleError {
	return &TxRuleError{Code: ErrNonCoinbaseTxHasPayload}
}

func NewErrUnknownTxVersion(version uint16) *TxRuleError {
	return &TxRuleError{Code: ErrUnknownTxVersion, Version: version}
}
