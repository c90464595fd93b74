package externalapi

import "testing"

func TestTransactionIsCoinbase(t *testing.T) {
	coinbase := &Transaction{SubnetworkID: SubnetworkIDCoinbase}
	native := &Transaction{SubnetworkID: SubnetworkIDNative}

	if !coinbase.IsCoinbase() {
		t.Fatalf("expected coinbase transaction to report IsCoinbase() == true")
	}
	if native.IsCoinbase() {
		t.Fatalf("expected native transaction to report IsCoinbase() == false")
	}
}

func TestTransactionIDPanicsBeforeSetID(t *testing.T) {
	tx := &Transaction{}
	if tx.HasID() {
		t.Fatalf("freshly constructed transaction should not have an id")
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected ID() to panic before SetID() was called")
		}
	}()
	tx.ID()
}

func TestTransactionSetIDThenID(t *testing.T) {
	tx := &Transaction{}
	id := Hash{1, 2, 3}
	tx.SetID(id)

	if !tx.HasID() {
		t.Fatalf("expected HasID() to be true after SetID()")
	}
	if tx.ID() != id {
		t.Fatalf("ID() = %s, want %s", tx.ID(), id)
	}
}

func TestScriptPublicKeyCloneIsIndependent(t *testing.T) {
	original := &ScriptPublicKey{Version: 1, Script: []byte{1, 2, 3}}
	clone := original.Clone()

	clone.Script[0] = 0xff

	if original.Script[0] == 0xff {
		t.Fatalf("mutating the clone's script must not affect the original")
	}
}

func TestOutpointEqual(t *testing.T) {
	a := TransactionOutpoint{TransactionID: Hash{1}, Index: 0}
	b := TransactionOutpoint{TransactionID: Hash{1}, Index: 0}
	c := TransactionOutpoint{TransactionID: Hash{1}, Index: 1}

	if !a.Equal(b) {
		t.Fatalf("identical outpoints should be equal")
	}
	if a.Equal(c) {
		t.Fatalf("outpoints with different indices should not be equal")
	}
}
