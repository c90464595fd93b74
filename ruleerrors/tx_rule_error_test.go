package ruleerrors

import "testing"

func TestTxRuleErrorMessagesAreNonEmpty(t *testing.T) {
	errs := []*TxRuleError{
		NewErrNoTxInputs(),
		NewErrTooManyInputs(5, 3),
		NewErrTooManyOutputs(5, 3),
		NewErrTooBigSignatureScript(0, 100),
		NewErrTooBigScriptPublicKey(0, 100),
		NewErrCoinbaseHasInputs(1),
		NewErrCoinbaseTooManyOutputs(5, 3),
		NewErrCoinbaseScriptPublicKeyTooLong(0),
		NewErrTxOutZero(0),
		NewErrTxOutTooHigh(0),
		NewErrOutputsValueOverflow(),
		NewErrTotalTxOutTooHigh(),
		NewErrTxDuplicateInputs(),
		NewErrTxHasGas(),
		NewErrNonCoinbaseTxHasPayload(),
		NewErrUnknownTxVersion(7),
	}
	for _, err := range errs {
		if err.Error() == "" {
			t.Errorf("%s produced an empty error message", err.Code)
		}
	}
}

func TestTooManyOutputsConstructorShape(t *testing.T) {
	err := NewErrTooManyOutputs(12, 10)
	if err.Count != 12 || err.Limit != 10 {
		t.Fatalf("expected Count=12 Limit=10, got Count=%d Limit=%d", err.Count, err.Limit)
	}
}
