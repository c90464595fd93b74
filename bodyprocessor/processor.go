// Package bodyprocessor composes the merkle, mass, and per-transaction
// checks into the full block-body isolation check.
package bodyprocessor

import (
	"kasparule.dev/isolation/externalapi"
	"kasparule.dev/isolation/hashing"
	"kasparule.dev/isolation/mass"
	"kasparule.dev/isolation/merkle"
	"kasparule.dev/isolation/ruleerrors"
	"kasparule.dev/isolation/txvalidator"
)

// Params are the block-level configuration values a Processor needs beyond
// what it delegates to txvalidator.Validator.
type Params struct {
	MaxBlockMass                  uint64
	StorageMassActivationDAAScore uint64
}

// Processor runs the full block-body isolation check: merkle root, coinbase
// placement, per-transaction isolation, block mass, and the three
// intra-block integrity checks. It holds only immutable configuration and
// stateless collaborators, so a single instance may be invoked concurrently
// on distinct blocks.
type Processor struct {
	params       Params
	hasher       hashing.Hasher
	massCalc     mass.Calculator
	txValidator  *txvalidator.Validator
}

// New returns a Processor wired to the given collaborators.
func New(params Params, hasher hashing.Hasher, massCalc mass.Calculator, txValidator *txvalidator.Validator) *Processor {
	return &Processor{
		params:      params,
		hasher:      hasher,
		massCalc:    massCalc,
		txValidator: txValidator,
	}
}

// ValidateBodyInIsolation runs every block-isolation check against block, in
// a fixed order, and returns the accumulated block mass on success or the
// first failing check's error.
func (p *Processor) ValidateBodyInIsolation(block *externalapi.Block) (uint64, *ruleerrors.RuleError) {
	storageMassActivated := block.Header.DAAScore > p.params.StorageMassActivationDAAScore

	if len(block.Transactions) == 0 {
		return 0, ruleerrors.NewErrNoTransactions()
	}

	if err := p.checkMerkleRoot(block, storageMassActivated); err != nil {
		return 0, err
	}

	if err := p.checkOnlyOneCoinbase(block); err != nil {
		return 0, err
	}

	if err := p.checkTransactionsInIsolation(block); err != nil {
		return 0, err
	}

	totalMass, err := p.checkBlockMass(block, storageMassActivated)
	if err != nil {
		return 0, err
	}

	if err := p.checkDuplicateTransactions(block); err != nil {
		return 0, err
	}

	if err := p.checkDoubleSpends(block); err != nil {
		return 0, err
	}

	if err := p.checkChainedTransactions(block); err != nil {
		return 0, err
	}

	return totalMass, nil
}

func (p *Processor) checkMerkleRoot(block *externalapi.Block, storageMassActivated bool) *ruleerrors.RuleError {
	got, err := merkle.Root(p.hasher, block.Transactions, storageMassActivated)
	if err != nil {
		// The caller guarantees a non-empty transaction list by this point
		// (has_transactions runs first); an empty list here would be a
		// caller error, not a rule violation, so it is not wrapped.
		panic(err)
	}
	expected := block.Header.HashMerkleRoot
	if got != expected {
		return ruleerrors.NewErrBadMerkleRoot(expected, got)
	}
	return nil
}

func (p *Processor) checkOnlyOneCoinbase(block *externalapi.Block) *ruleerrors.RuleError {
	if !block.Transactions[0].IsCoinbase() {
		return ruleerrors.NewErrFirstTxNotCoinbase()
	}
	for i, tx := range block.Transactions[1:] {
		if tx.IsCoinbase() {
			return ruleerrors.NewErrMultipleCoinbases(i)
		}
	}
	return nil
}

func (p *Processor) checkTransactionsInIsolation(block *externalapi.Block) *ruleerrors.RuleError {
	for _, tx := range block.Transactions {
		if inner := p.txValidator.ValidateInIsolation(tx); inner != nil {
			return ruleerrors.NewErrTxInIsolationValidationFailed(p.idOf(tx), inner)
		}
	}
	return nil
}

// idOf returns tx's id, computing and caching it on tx the first time it is
// needed. A block's transactions are visited by several checks below; this
// avoids rehashing the same transaction once per check.
func (p *Processor) idOf(tx *externalapi.Transaction) externalapi.TransactionID {
	if tx.HasID() {
		return tx.ID()
	}
	id := p.hasher.TransactionID(tx)
	tx.SetID(id)
	return id
}

func (p *Processor) checkBlockMass(block *externalapi.Block, storageMassActivated bool) (uint64, *ruleerrors.RuleError) {
	var total uint64
	for _, tx := range block.Transactions {
		computed := p.massCalc.ComputeMass(tx)

		var contribution uint64
		if storageMassActivated {
			if tx.CommittedMass < computed {
				return 0, ruleerrors.NewErrMassFieldTooLow(p.idOf(tx), tx.CommittedMass, computed)
			}
			contribution = tx.CommittedMass
		} else {
			contribution = computed
		}

		total = mass.SaturatingAdd(total, contribution)
		if total > p.params.MaxBlockMass {
			return 0, ruleerrors.NewErrExceedsMassLimit(p.params.MaxBlockMass)
		}
	}
	return total, nil
}

func (p *Processor) checkDuplicateTransactions(block *externalapi.Block) *ruleerrors.RuleError {
	seen := make(map[externalapi.TransactionID]struct{}, len(block.Transactions))
	for _, tx := range block.Transactions {
		id := p.idOf(tx)
		if _, ok := seen[id]; ok {
			return ruleerrors.NewErrDuplicateTransactions(id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (p *Processor) checkDoubleSpends(block *externalapi.Block) *ruleerrors.RuleError {
	seen := make(map[externalapi.TransactionOutpoint]struct{})
	for _, tx := range block.Transactions {
		for _, in := range tx.Inputs {
			if _, ok := seen[in.PreviousOutpoint]; ok {
				return ruleerrors.NewErrDoubleSpendInSameBlock(in.PreviousOutpoint)
			}
			seen[in.PreviousOutpoint] = struct{}{}
		}
	}
	return nil
}

func (p *Processor) checkChainedTransactions(block *externalapi.Block) *ruleerrors.RuleError {
	idsInBlock := make(map[externalapi.TransactionID]struct{}, len(block.Transactions))
	for _, tx := range block.Transactions {
		idsInBlock[p.idOf(tx)] = struct{}{}
	}
	for _, tx := range block.Transactions {
		for _, in := range tx.Inputs {
			if _, ok := idsInBlock[in.PreviousOutpoint.TransactionID]; ok {
				return ruleerrors.NewErrChainedTransaction(in.PreviousOutpoint)
			}
		}
	}
	return nil
}
