// Package config holds the per-network parameter sets the isolation layer
// is configured with at startup. Each constructor returns a fresh value, so
// changing a field of one returned set never affects another.
package config

import (
	"kasparule.dev/isolation/bodyprocessor"
	"kasparule.dev/isolation/txvalidator"
)

// Params bundles the per-network configuration constants consumed by the
// transaction validator and block body processor.
type Params struct {
	NetworkName string

	MaxBlockMass                         uint64
	MaxTxInputs                          int
	MaxTxOutputs                         int
	MaxSignatureScriptLen                 int
	MaxScriptPublicKeyLen                 int
	GhostDAGK                             int
	CoinbasePayloadScriptPublicKeyMaxLen  int
	CoinbaseMaturity                      uint64
	StorageMassActivationDAAScore         uint64
	MaxSompi                              uint64
	TxVersion                             uint16
	MaxScriptsSize                        int
	MaxScriptElementSize                  int
}

// TxValidatorParams projects the subset of Params txvalidator.Validator
// needs.
func (p *Params) TxValidatorParams() txvalidator.Params {
	return txvalidator.Params{
		MaxTxInputs:                          p.MaxTxInputs,
		MaxTxOutputs:                         p.MaxTxOutputs,
		MaxSignatureScriptLen:                p.MaxSignatureScriptLen,
		MaxScriptPublicKeyLen:                p.MaxScriptPublicKeyLen,
		GhostDAGK:                            p.GhostDAGK,
		CoinbasePayloadScriptPublicKeyMaxLen: p.CoinbasePayloadScriptPublicKeyMaxLen,
		CoinbaseMaturity:                     p.CoinbaseMaturity,
		MaxSompi:                             p.MaxSompi,
		TxVersion:                            p.TxVersion,
	}
}

// BodyProcessorParams projects the subset of Params bodyprocessor.Processor
// needs directly (the rest flows through its txvalidator.Validator).
func (p *Params) BodyProcessorParams() bodyprocessor.Params {
	return bodyprocessor.Params{
		MaxBlockMass:                   p.MaxBlockMass,
		StorageMassActivationDAAScore:  p.StorageMassActivationDAAScore,
	}
}

// Mainnet returns the production parameter set.
func Mainnet() *Params {
	return &Params{
		NetworkName: "mainnet",

		MaxBlockMass:                          10_000_000,
		MaxTxInputs:                           1_000,
		MaxTxOutputs:                          1_000,
		MaxSignatureScriptLen:                 1_650,
		MaxScriptPublicKeyLen:                 36_000,
		GhostDAGK:                             18,
		CoinbasePayloadScriptPublicKeyMaxLen:  150,
		CoinbaseMaturity:                      100,
		StorageMassActivationDAAScore:         10_000_000,
		MaxSompi:                              29_000_000_000_000_000,
		TxVersion:                             0,
		MaxScriptsSize:                        10_000,
		MaxScriptElementSize:                  520,
	}
}

// Testnet returns the public test-network parameter set: identical to
// Mainnet except for a lower storage-mass activation threshold, so test
// fixtures can exercise the post-activation code path without enormous DAA
// scores.
func Testnet() *Params {
	p := *Mainnet()
	p.NetworkName = "testnet"
	p.StorageMassActivationDAAScore = 1_000
	return &p
}

// Devnet returns the local development parameter set: small enough limits
// that hand-written fixtures can exercise every boundary without huge
// payloads.
func Devnet() *Params {
	p := *Mainnet()
	p.NetworkName = "devnet"
	p.MaxBlockMass = 100_000
	p.MaxTxInputs = 100
	p.MaxTxOutputs = 100
	p.GhostDAGK = 4
	p.CoinbaseMaturity = 10
	p.StorageMassActivationDAAScore = 0
	return &p
}
