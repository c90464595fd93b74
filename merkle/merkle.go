// Package merkle computes the hash-merkle-root committed to by a block
// header, over an ordered transaction list.
package merkle

import (
	"errors"

	"golang.org/x/crypto/blake2b"

	"kasparule.dev/isolation/externalapi"
	"kasparule.dev/isolation/hashing"
)

// ErrEmptyTransactionList is returned when Root is called with no
// transactions. The caller guarantees at least one; a root over an empty
// list has no defined value.
var ErrEmptyTransactionList = errors.New("merkle: root is undefined over an empty transaction list")

// nodeTag domain-separates internal merkle nodes from the leaf digests
// produced by hashing.Hasher, so a leaf preimage can never be mistaken for
// an internal-node preimage.
const nodeTag byte = 0x03

// Root computes the binary merkle root over txs. storageMassActivated
// selects which leaf digest hashing.Hasher produces for each transaction —
// the root itself is always a single externalapi.Hash. Odd levels carry
// their last node forward unchanged rather than duplicating it.
func Root(hasher hashing.Hasher, txs []*externalapi.Transaction, storageMassActivated bool) (externalapi.Hash, error) {
	if len(txs) == 0 {
		return externalapi.Hash{}, ErrEmptyTransactionList
	}

	level := make([]externalapi.Hash, len(txs))
	for i, tx := range txs {
		level[i] = hasher.MerkleLeaf(tx, storageMassActivated)
	}

	for len(level) > 1 {
		next := make([]externalapi.Hash, 0, (len(level)+1)/2)
		for i := 0; i < len(level); {
			if i == len(level)-1 {
				next = append(next, level[i])
				i++
				continue
			}
			next = append(next, hashNode(level[i], level[i+1]))
			i += 2
		}
		level = next
	}

	return level[0], nil
}

func hashNode(left, right externalapi.Hash) externalapi.Hash {
	preimage := make([]byte, 0, 1+2*externalapi.DomainHashSize)
	preimage = append(preimage, nodeTag)
	preimage = append(preimage, left[:]...)
	preimage = append(preimage, right[:]...)
	return blake2b.Sum256(preimage)
}
