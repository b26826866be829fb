package bind

import (
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Signature fingerprints are a fast pre-filter for cache keys: a 64-bit
// hash over the ordered canonical parameter-type names. Cache buckets keep
// the full type list and compare it exactly, so a colliding fingerprint
// costs a bucket scan, never a wrong answer. Hashing names rather than
// type pointers keeps the fingerprint stable across processes, which is
// what lets snapshots identify signatures.

var fpSep = []byte{0}

// fingerprint hashes an ordered parameter-type list.
func fingerprint(params []reflect.Type) uint64 {
	var d xxhash.Digest
	d.Reset()
	for _, p := range params {
		_, _ = d.WriteString(canonicalName(p))
		_, _ = d.Write(fpSep)
	}
	return d.Sum64()
}

// typesEqual reports exact positional equality of two type lists.
func typesEqual(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
