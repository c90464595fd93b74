package ruleerrors

import (
	"fmt"

	"kasparule.dev/isolation/externalapi"
)

// RuleErrorCode enumerates the distinct block-isolation failure categories.
// MissingParents is listed for completeness: it is raised by the
// contextual layer, not this one, but shares the non-cacheable policy with
// BadMerkleRoot, so it lives in the same enum.
type RuleErrorCode string

const (
	ErrNoTransactions                 RuleErrorCode = "ErrNoTransactions"
	ErrBadMerkleRoot                   RuleErrorCode = "ErrBadMerkleRoot"
	ErrFirstTxNotCoinbase              RuleErrorCode = "ErrFirstTxNotCoinbase"
	ErrMultipleCoinbases               RuleErrorCode = "ErrMultipleCoinbases"
	ErrTxInIsolationValidationFailed   RuleErrorCode = "ErrTxInIsolationValidationFailed"
	ErrMassFieldTooLow                 RuleErrorCode = "ErrMassFieldTooLow"
	ErrExceedsMassLimit                RuleErrorCode = "ErrExceedsMassLimit"
	ErrDuplicateTransactions           RuleErrorCode = "ErrDuplicateTransactions"
	ErrDoubleSpendInSameBlock          RuleErrorCode = "ErrDoubleSpendInSameBlock"
	ErrChainedTransaction              RuleErrorCode = "ErrChainedTransaction"
	ErrMissingParents                  RuleErrorCode = "ErrMissingParents"
)

// nonCacheable holds the error codes that must never cause a block to be
// marked known-invalid: a later retry with the same block bytes must
// re-run validation and may legitimately yield a different result once
// context changes.
var nonCacheable = map[RuleErrorCode]struct{}{
	ErrBadMerkleRoot:  {},
	ErrMissingParents: {},
}

// RuleError is the value returned by BlockBodyProcessor when a block fails
// an isolation check.
type RuleError struct {
	Code RuleErrorCode

	// ExpectedMerkleRoot/GotMerkleRoot populate BadMerkleRoot.
	ExpectedMerkleRoot externalapi.Hash
	GotMerkleRoot       externalapi.Hash

	// Index is the tail-relative offset of a second coinbase
	// (MultipleCoinbases).
	Index int

	// TransactionID identifies the offending transaction for
	// TxInIsolationValidationFailed, MassFieldTooLow, and
	// DuplicateTransactions.
	TransactionID externalapi.TransactionID

	// Inner carries the per-transaction failure for
	// TxInIsolationValidationFailed.
	Inner *TxRuleError

	// Committed/Computed populate MassFieldTooLow.
	CommittedMass uint64
	ComputedMass  uint64

	// Limit populates ExceedsMassLimit.
	Limit uint64

	// Outpoint populates DoubleSpendInSameBlock and ChainedTransaction.
	Outpoint externalapi.TransactionOutpoint
}

func (e *RuleError) Error() string {
	switch e.Code {
	case ErrNoTransactions:
		return "block has no transactions"
	case ErrBadMerkleRoot:
		return fmt.Sprintf("block has merkle root %s, expected %s", e.GotMerkleRoot, e.ExpectedMerkleRoot)
	case ErrFirstTxNotCoinbase:
		return "block's first transaction is not a coinbase"
	case ErrMultipleCoinbases:
		return fmt.Sprintf("block contains a second coinbase transaction at tail offset %d", e.Index)
	case ErrTxInIsolationValidationFailed:
		return fmt.Sprintf("transaction %s failed isolation validation: %s", e.TransactionID, e.Inner)
	case ErrMassFieldTooLow:
		return fmt.Sprintf("transaction %s has committed mass %d, which is lower than its computed mass %d", e.TransactionID, e.CommittedMass, e.ComputedMass)
	case ErrExceedsMassLimit:
		return fmt.Sprintf("block mass exceeds the maximum allowed of %d", e.Limit)
	case ErrDuplicateTransactions:
		return fmt.Sprintf("block contains more than one transaction with id %s", e.TransactionID)
	case ErrDoubleSpendInSameBlock:
		return fmt.Sprintf("outpoint %s is spent by more than one transaction in the block", outpointString(e.Outpoint))
	case ErrChainedTransaction:
		return fmt.Sprintf("transaction spends outpoint %s, produced by another transaction in the same block", outpointString(e.Outpoint))
	case ErrMissingParents:
		return "block references parents that are not known to this node"
	default:
		return string(e.Code)
	}
}

// Cacheable reports whether a negative cache entry may be recorded for this
// error. BadMerkleRoot and MissingParents are context-sensitive and must
// never be cached as permanently invalid.
func (e *RuleError) Cacheable() bool {
	_, nonCache := nonCacheable[e.Code]
	return !nonCache
}

func outpointString(o externalapi.TransactionOutpoint) string {
	return fmt.Sprintf("%s:%d", o.TransactionID, o.Index)
}

func NewErrNoTransactions() *RuleError {
	return &RuleError{Code: ErrNoTransactions}
}

func NewErrBadMerkleRoot(expected, got externalapi.Hash) *RuleError {
	return &RuleError{Code: ErrBadMerkleRoot, ExpectedMerkleRoot: expected, GotMerkleRoot: got}
}

func NewErrFirstTxNotCoinbase() *RuleError {
	return &RuleError{Code: ErrFirstTxNotCoinbase}
}

func NewErrMultipleCoinbases(tailIndex int) *RuleError {
	return &RuleError{Code: ErrMultipleCoinbases, Index: tailIndex}
}

func NewErrTxInIsolationValidationFailed(txID externalapi.TransactionID, inner *TxRuleError) *RuleError {
	return &RuleError{Code: ErrTxInIsolationValidationFailed, TransactionID: txID, Inner: inner}
}

func NewErrMassFieldTooLow(txID externalapi.TransactionID, committed, computed uint64) *RuleError {
	return &RuleError{Code: ErrMassFieldTooLow, TransactionID: txID, CommittedMass: committed, ComputedMass: computed}
}

func NewErrExceedsMassLimit(limit uint64) *RuleError {
	return &RuleError{Code: ErrExceedsMassLimit, Limit: limit}
}

func NewErrDuplicateTransactions(txID externalapi.TransactionID) *RuleError {
	return &RuleError{Code: ErrDuplicateTransactions, TransactionID: txID}
}

func NewErrDoubleSpendInSameBlock(outpoint externalapi.TransactionOutpoint) *RuleError {
	return &RuleError{Code: ErrDoubleSpendInSameBlock, Outpoint: outpoint}
}

func NewErrChainedTransaction(outpoint externalapi.TransactionOutpoint) *RuleError {
	return &RuleError{Code: ErrChainedTransaction, Outpoint: outpoint}
}

func NewErrMissingParents() *RuleError {
	return &RuleError{Code: ErrMissingParents}
}
