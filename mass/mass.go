// Package mass computes a transaction's compute mass and provides the
// saturating accumulation the block-level mass limit check relies on.
package mass

import "kasparule.dev/isolation/externalapi"

// Calculator returns a transaction's compute mass: the portion of mass
// accounting derivable from the transaction alone, with no UTXO context.
// Storage mass is out of scope for this layer; a collaborator supplies it,
// gated by the caller's own activation check.
type Calculator interface {
	ComputeMass(tx *externalapi.Transaction) uint64
}

// Per-unit weights for the reference compute-mass formula: a transaction's
// mass is its serialized byte footprint plus a per-signature-operation
// surcharge, mirroring the shape (not the numeric tuning) of real mass
// formulas in this family of protocols.
const (
	massPerTxByte    = 1
	massPerSigOp     = 1000
	txBaseOverhead   = 8 + 8 + 2 + externalapi.SubnetworkIDSize // locktime + gas + version + subnetwork id
	inputBaseSize    = externalapi.DomainHashSize + 4 + 8 + 1   // outpoint + sequence + sig op count
	outputBaseSize   = 8 + 2                                    // value + script public key version
)

// ComputeCalculator is the reference Calculator.
type ComputeCalculator struct{}

// New returns the reference Calculator.
func New() *ComputeCalculator {
	return &ComputeCalculator{}
}

func (c *ComputeCalculator) ComputeMass(tx *externalapi.Transaction) uint64 {
	size := uint64(txBaseOverhead) + uint64(len(tx.Payload))
	sigOps := uint64(0)

	for _, in := range tx.Inputs {
		size += uint64(inputBaseSize) + uint64(len(in.SignatureScript))
		sigOps += uint64(in.SigOpCount)
	}
	for _, out := range tx.Outputs {
		size += uint64(outputBaseSize) + uint64(len(out.ScriptPublicKey.Script))
	}

	return SaturatingAdd(size*massPerTxByte, sigOps*massPerSigOp)
}

// saturatingSentinel is returned once an accumulation would overflow a
// uint64. It is deliberately larger than any realistic max_block_mass
// configuration, so a single limit comparison after accumulation catches
// the overflow case without a separate overflow flag.
const saturatingSentinel = ^uint64(0)

// SaturatingAdd returns a+b, or saturatingSentinel if that would overflow.
// Mass accumulation must saturate rather than wrap so that an overflowing
// sum is never mistaken for a small one that happens to pass the limit
// check.
func SaturatingAdd(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		return saturatingSentinel
	}
	return sum
}
