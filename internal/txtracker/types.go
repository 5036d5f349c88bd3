// Package txtracker implements the transaction-announcement request
// scheduler: for every (peer, object) pair it decides whether that peer
// should be asked for the object now, later, or not at all, while
// enforcing that at most one request per object is in flight at a time.
package txtracker

import (
	"time"

	"github.com/libsv/go-p2p/chaincfg/chainhash"
)

// PeerId is an opaque identifier assigned by the caller. Uniqueness within
// a Tracker instance is required between a peer's connect and
// DisconnectedPeer; a PeerId may be reused afterwards.
type PeerId uint64

// Hash is the 32-byte content hash of an announced object.
type Hash = chainhash.Hash

// InvVariant selects which of the two hash interpretations a GenTxid
// carries on the wire. The tracker does not use it for identity or
// priority: an announcement is identified by (PeerId, Hash), so a peer's
// second announcement of a Hash under the other variant is ignored, while
// announcements of the same Hash from different peers may carry different
// variants.
type InvVariant uint8

const (
	// InvVariantStandard is the ordinary transaction id.
	InvVariantStandard InvVariant = iota
	// InvVariantExtended is the alternate hash interpretation for the same
	// underlying object (e.g. an extended-format transaction id).
	InvVariantExtended
)

// GenTxid identifies an announced object: a 32-byte hash plus the wire
// variant tag needed to request it.
type GenTxid struct {
	Variant InvVariant
	Hash    Hash
}

func (g GenTxid) IsVariantB() bool { return g.Variant == InvVariantExtended }

// Time is a signed 64-bit microsecond count. The tracker only compares
// values; the epoch is irrelevant to it. Callers must pass monotonically
// non-decreasing values of Time across calls.
type Time int64

// MinTime is the earliest Time. Used as a reqtime, it makes an announcement
// requestable at the first sweep.
const MinTime Time = 0

// Clock is the tracker's monotonic microsecond time source. The core
// itself never calls it — every entry point takes `now` explicitly — but
// callers driving the scheduler in real time use it to produce that value.
type Clock interface {
	Now() Time
}

// SystemClock reads wall-clock time via time.Now, truncated to
// microseconds.
type SystemClock struct{}

func (SystemClock) Now() Time { return Time(time.Now().UnixMicro()) }

// ManualClock is a caller-advanced clock for tests and for deterministic
// replay of scenarios.
type ManualClock struct{ now Time }

func NewManualClock(start Time) *ManualClock { return &ManualClock{now: start} }

func (c *ManualClock) Now() Time { return c.now }

func (c *ManualClock) Set(t Time) { c.now = t }

func (c *ManualClock) Advance(d time.Duration) { c.now += Time(d.Microseconds()) }
