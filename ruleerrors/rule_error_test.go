package ruleerrors

import (
	"testing"

	"kasparule.dev/isolation/externalapi"
)

func TestCacheablePolicy(t *testing.T) {
	nonCacheableErrs := []*RuleError{
		NewErrBadMerkleRoot(externalapi.Hash{}, externalapi.Hash{1}),
		NewErrMissingParents(),
	}
	for _, err := range nonCacheableErrs {
		if err.Cacheable() {
			t.Errorf("%s should not be cacheable", err.Code)
		}
	}

	cacheableErrs := []*RuleError{
		NewErrNoTransactions(),
		NewErrFirstTxNotCoinbase(),
		NewErrMultipleCoinbases(1),
		NewErrExceedsMassLimit(100),
	}
	for _, err := range cacheableErrs {
		if !err.Cacheable() {
			t.Errorf("%s should be cacheable", err.Code)
		}
	}
}

func TestErrorMessagesAreNonEmpty(t *testing.T) {
	errs := []*RuleError{
		NewErrNoTransactions(),
		NewErrBadMerkleRoot(externalapi.Hash{}, externalapi.Hash{1}),
		NewErrFirstTxNotCoinbase(),
		NewErrMultipleCoinbases(2),
		NewErrTxInIsolationValidationFailed(externalapi.Hash{1}, NewErrNoTxInputs()),
		NewErrMassFieldTooLow(externalapi.Hash{1}, 1, 2),
		NewErrExceedsMassLimit(100),
		NewErrDuplicateTransactions(externalapi.Hash{1}),
		NewErrDoubleSpendInSameBlock(externalapi.TransactionOutpoint{}),
		NewErrChainedTransaction(externalapi.TransactionOutpoint{}),
		NewErrMissingParents(),
	}
	for _, err := range errs {
		if err.Error() == "" {
			t.Errorf("%s produced an empty error message", err.Code)
		}
	}
}
