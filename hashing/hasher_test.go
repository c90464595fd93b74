package hashing

import (
	"testing"

	"kasparule.dev/isolation/externalapi"
)

func sampleTx(value uint64) *externalapi.Transaction {
	return &externalapi.Transaction{
		Version: 0,
		Inputs: []*externalapi.TransactionInput{
			{
				PreviousOutpoint: externalapi.TransactionOutpoint{Index: 0},
				SignatureScript:  []byte{0x01, 0x02},
				Sequence:         0,
				SigOpCount:       1,
			},
		},
		Outputs: []*externalapi.TransactionOutput{
			{Value: value, ScriptPublicKey: &externalapi.ScriptPublicKey{Version: 0, Script: []byte{0x76}}},
		},
		SubnetworkID: externalapi.SubnetworkIDNative,
	}
}

func TestTransactionIDDeterministic(t *testing.T) {
	h := New()
	tx := sampleTx(100)
	id1 := h.TransactionID(tx)
	id2 := h.TransactionID(tx)
	if id1 != id2 {
		t.Fatalf("TransactionID is not deterministic: %s vs %s", id1, id2)
	}
}

func TestTransactionIDSensitiveToFields(t *testing.T) {
	h := New()
	a := sampleTx(100)
	b := sampleTx(200)
	if h.TransactionID(a) == h.TransactionID(b) {
		t.Fatalf("transactions with different output values produced the same id")
	}
}

func TestMerkleLeafVariantsDiffer(t *testing.T) {
	h := New()
	tx := sampleTx(100)
	tx.CommittedMass = 42
	compute := h.MerkleLeaf(tx, false)
	storage := h.MerkleLeaf(tx, true)
	if compute == storage {
		t.Fatalf("compute-mass and storage-mass merkle leaves must differ")
	}
}

func TestMerkleLeafStorageVariantCommitsToMass(t *testing.T) {
	h := New()
	txA := sampleTx(100)
	txA.CommittedMass = 1
	txB := sampleTx(100)
	txB.CommittedMass = 2
	if h.MerkleLeaf(txA, true) == h.MerkleLeaf(txB, true) {
		t.Fatalf("storage-mass leaf must change when committed mass changes")
	}
}
