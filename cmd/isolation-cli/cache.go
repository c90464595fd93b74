package main

import (
	"fmt"

	"go.etcd.io/bbolt"
	"golang.org/x/crypto/blake2b"
)

var knownInvalidBucket = []byte("known_invalid")

// invalidCache is a bbolt-backed record of block digests that have already
// failed isolation validation with a cacheable error (ruleerrors.RuleError's
// Cacheable policy, not reproduced here — the CLI only respects the
// boolean its caller computed). It exists purely to avoid re-running
// validation on a request the CLI has already rejected; it is not a
// consensus component.
type invalidCache struct {
	db *bbolt.DB
}

func openInvalidCache(path string) (*invalidCache, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(knownInvalidBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init cache bucket: %w", err)
	}
	return &invalidCache{db: db}, nil
}

func (c *invalidCache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// digest derives a stable cache key from the raw request bytes. It is not
// a transaction or block id — it only needs to be deterministic for
// identical input bytes.
func digest(requestBytes []byte) [32]byte {
	return blake2b.Sum256(requestBytes)
}

// Lookup returns the recorded rule error code for digest d, and whether one
// was found.
func (c *invalidCache) Lookup(d [32]byte) (string, bool) {
	if c == nil {
		return "", false
	}
	var code string
	var found bool
	_ = c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(knownInvalidBucket)
		v := b.Get(d[:])
		if v != nil {
			code = string(v)
			found = true
		}
		return nil
	})
	return code, found
}

// Record stores code as the known-invalid verdict for digest d.
func (c *invalidCache) Record(d [32]byte, code string) error {
	if c == nil {
		return nil
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(knownInvalidBucket)
		return b.Put(d[:], []byte(code))
	})
}
