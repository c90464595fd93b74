package externalapi

// TransactionOutpoint is the identity of a spendable output: the id of the
// transaction that created it and its index within that transaction's
// outputs.
type TransactionOutpoint struct {
	TransactionID TransactionID
	Index         uint32
}

// Equal reports component-wise equality.
func (o TransactionOutpoint) Equal(other TransactionOutpoint) bool {
	return o.TransactionID.Equal(other.TransactionID) && o.Index == other.Index
}

// ScriptPublicKey is a versioned output script.
type ScriptPublicKey struct {
	Version uint16
	Script  []byte
}

// Clone returns a deep copy of the script public key.
func (spk *ScriptPublicKey) Clone() *ScriptPublicKey {
	if spk == nil {
		return nil
	}
	script := make([]byte, len(spk.Script))
	copy(script, spk.Script)
	return &ScriptPublicKey{Version: spk.Version, Script: script}
}

// TransactionInput spends a previous outpoint.
type TransactionInput struct {
	PreviousOutpoint TransactionOutpoint
	SignatureScript  []byte
	Sequence         uint64
	SigOpCount       byte
}

// TransactionOutput pays value (in sompi) to a script public key.
//
// Invariant: 0 < Value <= MaxSompi, enforced by txvalidator, not by this
// type.
type TransactionOutput struct {
	Value           uint64
	ScriptPublicKey *ScriptPublicKey
}

// Transaction is the isolation layer's view of a transaction: everything
// needed to check consensus rules that don't require UTXO context.
//
// Invariants (enforced by txvalidator, not by this type):
//   - IsCoinbase() implies len(Inputs) == 0.
//   - !IsCoinbase() implies len(Payload) == 0.
//   - all Inputs[i].PreviousOutpoint are pairwise distinct.
type Transaction struct {
	Version       uint16
	Inputs        []*TransactionInput
	Outputs       []*TransactionOutput
	LockTime      uint64
	SubnetworkID  SubnetworkID
	Gas           uint64
	Payload       []byte
	CommittedMass uint64

	// ID caches the transaction id for this transaction. It is computed and
	// set by a collaborator (hashing.Hasher) outside this layer; the zero
	// value means "not yet computed".
	id *TransactionID
}

// IsCoinbase reports whether tx is a coinbase transaction, i.e. its
// subnetwork id is the reserved coinbase id.
func (tx *Transaction) IsCoinbase() bool {
	return tx.SubnetworkID.Equal(SubnetworkIDCoinbase)
}

// SetID records the externally computed transaction id for tx. Callers
// (typically a hashing.Hasher collaborator) are expected to call this once
// after constructing or parsing a transaction.
func (tx *Transaction) SetID(id TransactionID) {
	tx.id = &id
}

// ID returns the previously recorded transaction id. It panics if SetID was
// never called, since transaction identity is an external oracle this
// layer never computes on its own.
func (tx *Transaction) ID() TransactionID {
	if tx.id == nil {
		panic("externalapi: Transaction.ID() called before SetID()")
	}
	return *tx.id
}

// HasID reports whether SetID has been called.
func (tx *Transaction) HasID() bool {
	return tx.id != nil
}
