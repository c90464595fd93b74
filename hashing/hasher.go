// Package hashing supplies the transaction-id and merkle-leaf digests the
// isolation layer treats as an oracle: it does not define consensus hashing
// itself, only consumes it through the Hasher interface.
package hashing

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"kasparule.dev/isolation/externalapi"
)

// Domain-separation tags mixed into every preimage so that a transaction id,
// a compute-mass leaf, and a storage-mass leaf never collide even when their
// underlying bytes would otherwise coincide.
const (
	domainTransactionID byte = 0x00
	domainLeafCompute   byte = 0x01
	domainLeafStorage   byte = 0x02
)

// Hasher computes the two digests the rest of this module treats as
// externally supplied: a transaction's canonical id, and the leaf digest fed
// into the block's merkle tree. MerkleLeaf has two variants selected by
// storageMassActivated — they differ only in whether the leaf commits to the
// transaction's declared mass.
type Hasher interface {
	TransactionID(tx *externalapi.Transaction) externalapi.TransactionID
	MerkleLeaf(tx *externalapi.Transaction, storageMassActivated bool) externalapi.Hash
}

// Blake2bHasher is the reference Hasher, built on blake2b-256.
type Blake2bHasher struct{}

// New returns the reference Hasher.
func New() *Blake2bHasher {
	return &Blake2bHasher{}
}

func (h *Blake2bHasher) TransactionID(tx *externalapi.Transaction) externalapi.TransactionID {
	return transactionID(tx)
}

func (h *Blake2bHasher) MerkleLeaf(tx *externalapi.Transaction, storageMassActivated bool) externalapi.Hash {
	id := transactionID(tx)
	if !storageMassActivated {
		preimage := make([]byte, 0, 1+externalapi.DomainHashSize)
		preimage = append(preimage, domainLeafCompute)
		preimage = append(preimage, id[:]...)
		return blake2b.Sum256(preimage)
	}

	preimage := make([]byte, 0, 1+externalapi.DomainHashSize+8)
	preimage = append(preimage, domainLeafStorage)
	preimage = append(preimage, id[:]...)
	var massBuf [8]byte
	binary.LittleEndian.PutUint64(massBuf[:], tx.CommittedMass)
	preimage = append(preimage, massBuf[:]...)
	return blake2b.Sum256(preimage)
}

func transactionID(tx *externalapi.Transaction) externalapi.TransactionID {
	preimage := make([]byte, 0, 256)
	preimage = append(preimage, domainTransactionID)
	preimage = appendTransaction(preimage, tx)
	return blake2b.Sum256(preimage)
}

// appendTransaction appends the canonical serialization of tx to buf. This
// layer does not own the wire format: it is a stand-in canonical encoding
// sufficient to make TransactionID and MerkleLeaf deterministic and
// order-sensitive, as the isolation rules above assume.
func appendTransaction(buf []byte, tx *externalapi.Transaction) []byte {
	buf = appendU16(buf, tx.Version)

	buf = appendU32(buf, uint32(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		buf = append(buf, in.PreviousOutpoint.TransactionID[:]...)
		buf = appendU32(buf, in.PreviousOutpoint.Index)
		buf = appendU64(buf, uint64(len(in.SignatureScript)))
		buf = append(buf, in.SignatureScript...)
		buf = appendU64(buf, in.Sequence)
		buf = append(buf, in.SigOpCount)
	}

	buf = appendU32(buf, uint32(len(tx.Outputs)))
	for _, out := range tx.Outputs {
		buf = appendU64(buf, out.Value)
		buf = appendU16(buf, out.ScriptPublicKey.Version)
		buf = appendU64(buf, uint64(len(out.ScriptPublicKey.Script)))
		buf = append(buf, out.ScriptPublicKey.Script...)
	}

	buf = appendU64(buf, tx.LockTime)
	buf = append(buf, tx.SubnetworkID[:]...)
	buf = appendU64(buf, tx.Gas)
	buf = appendU64(buf, uint64(len(tx.Payload)))
	buf = append(buf, tx.Payload...)

	return buf
}

func appendU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendU32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func appendU64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}
