// Package txvalidator implements the per-transaction isolation rules: the
// checks a transaction must pass using only its own fields, with no UTXO
// lookup.
package txvalidator

import (
	"kasparule.dev/isolation/externalapi"
	"kasparule.dev/isolation/ruleerrors"
)

// Params are the immutable, per-network limits a Validator is configured
// with once at startup.
type Params struct {
	MaxTxInputs                           int
	MaxTxOutputs                          int
	MaxSignatureScriptLen                 int
	MaxScriptPublicKeyLen                 int
	GhostDAGK                             int
	CoinbasePayloadScriptPublicKeyMaxLen  int
	CoinbaseMaturity                      uint64
	MaxSompi                              uint64
	TxVersion                             uint16
}

// Validator runs the ordered isolation checks against a single transaction.
// It holds no mutable state and is safe to invoke concurrently on distinct
// transactions.
type Validator struct {
	params Params
}

// New returns a Validator configured with params.
func New(params Params) *Validator {
	return &Validator{params: params}
}

// ValidateInIsolation runs every isolation check against tx, in a fixed
// order, and returns the first failure. A nil return means tx is
// structurally well-formed in isolation.
func (v *Validator) ValidateInIsolation(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	isCoinbase := tx.IsCoinbase()

	if err := v.checkInputCount(tx, isCoinbase); err != nil {
		return err
	}
	if err := v.checkSignatureScriptSizes(tx); err != nil {
		return err
	}
	if err := v.checkOutputCount(tx); err != nil {
		return err
	}
	if err := v.checkScriptPublicKeySizes(tx); err != nil {
		return err
	}
	if isCoinbase {
		if err := v.checkCoinbaseShape(tx); err != nil {
			return err
		}
	}
	if err := v.checkOutputValueRanges(tx); err != nil {
		return err
	}
	if err := v.checkDuplicateInputs(tx); err != nil {
		return err
	}
	if err := v.checkGas(tx); err != nil {
		return err
	}
	if err := v.checkPayload(tx, isCoinbase); err != nil {
		return err
	}
	if err := v.checkVersion(tx); err != nil {
		return err
	}
	return nil
}

func (v *Validator) checkInputCount(tx *externalapi.Transaction, isCoinbase bool) *ruleerrors.TxRuleError {
	if !isCoinbase && len(tx.Inputs) == 0 {
		return ruleerrors.NewErrNoTxInputs()
	}
	if len(tx.Inputs) > v.params.MaxTxInputs {
		return ruleerrors.NewErrTooManyInputs(len(tx.Inputs), v.params.MaxTxInputs)
	}
	return nil
}

func (v *Validator) checkSignatureScriptSizes(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	for i, in := range tx.Inputs {
		if len(in.SignatureScript) > v.params.MaxSignatureScriptLen {
			return ruleerrors.NewErrTooBigSignatureScript(i, v.params.MaxSignatureScriptLen)
		}
	}
	return nil
}

func (v *Validator) checkOutputCount(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	if len(tx.Outputs) > v.params.MaxTxOutputs {
		// Corrected pair: (output count, max_tx_outputs). The source this
		// layer is modeled on reports the input count and max_tx_inputs
		// here, a copy/paste defect — not reproduced.
		return ruleerrors.NewErrTooManyOutputs(len(tx.Outputs), v.params.MaxTxOutputs)
	}
	return nil
}

func (v *Validator) checkScriptPublicKeySizes(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	for i, out := range tx.Outputs {
		if len(out.ScriptPublicKey.Script) > v.params.MaxScriptPublicKeyLen {
			return ruleerrors.NewErrTooBigScriptPublicKey(i, v.params.MaxScriptPublicKeyLen)
		}
	}
	return nil
}

func (v *Validator) checkCoinbaseShape(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	if len(tx.Inputs) > 0 {
		return ruleerrors.NewErrCoinbaseHasInputs(len(tx.Inputs))
	}
	maxCoinbaseOutputs := v.params.GhostDAGK + 2
	if len(tx.Outputs) > maxCoinbaseOutputs {
		return ruleerrors.NewErrCoinbaseTooManyOutputs(len(tx.Outputs), maxCoinbaseOutputs)
	}
	for i, out := range tx.Outputs {
		if len(out.ScriptPublicKey.Script) > v.params.CoinbasePayloadScriptPublicKeyMaxLen {
			return ruleerrors.NewErrCoinbaseScriptPublicKeyTooLong(i)
		}
	}
	return nil
}

func (v *Validator) checkOutputValueRanges(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	var total uint64
	for i, out := range tx.Outputs {
		if out.Value == 0 {
			return ruleerrors.NewErrTxOutZero(i)
		}
		if out.Value > v.params.MaxSompi {
			return ruleerrors.NewErrTxOutTooHigh(i)
		}
		newTotal := total + out.Value
		if newTotal < total {
			return ruleerrors.NewErrOutputsValueOverflow()
		}
		total = newTotal
		if total > v.params.MaxSompi {
			return ruleerrors.NewErrTotalTxOutTooHigh()
		}
	}
	return nil
}

func (v *Validator) checkDuplicateInputs(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	seen := make(map[externalapi.TransactionOutpoint]struct{}, len(tx.Inputs))
	for _, in := range tx.Inputs {
		if _, ok := seen[in.PreviousOutpoint]; ok {
			return ruleerrors.NewErrTxDuplicateInputs()
		}
		seen[in.PreviousOutpoint] = struct{}{}
	}
	return nil
}

func (v *Validator) checkGas(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	if tx.Gas > 0 {
		return ruleerrors.NewErrTxHasGas()
	}
	return nil
}

func (v *Validator) checkPayload(tx *externalapi.Transaction, isCoinbase bool) *ruleerrors.TxRuleError {
	if !isCoinbase && len(tx.Payload) > 0 {
		return ruleerrors.NewErrNonCoinbaseTxHasPayload()
	}
	return nil
}

func (v *Validator) checkVersion(tx *externalapi.Transaction) *ruleerrors.TxRuleError {
	if tx.Version != v.params.TxVersion {
		return ruleerrors.NewErrUnknownTxVersion(tx.Version)
	}
	return nil
}
