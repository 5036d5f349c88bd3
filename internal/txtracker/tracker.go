package txtracker

import (
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
)

// Tracker maintains every outstanding announcement, schedules requests, and
// enforces priority and mutual exclusion per (peer, hash). It owns all of
// its state and performs no I/O, spawns no goroutines, and never blocks:
// the caller is responsible for serializing calls and for driving time
// forward by passing `now` to GetRequestable (§5). It is not safe for
// concurrent use — callers typically guard it with a single mutex in the
// surrounding network stack, the same way internal/p2p.PeerManager guards
// its peer list.
type Tracker struct {
	key priorityKey

	nextSequence uint64

	byPeer map[PeerId]map[Hash]*announcement
	byHash map[Hash]*hashBucket
	events eventQueue

	// peerAnnounceLimit bounds announcements tracked per peer to guard
	// memory (§5); zero means unlimited. Supplements spec.md, grounded on
	// the announce-count DoS guard pattern common to announcement
	// schedulers in the retrieved pack.
	peerAnnounceLimit int

	droppedAnnouncements atomic.Int64

	metrics *metricsCollector
	tracer  trace.Tracer
}

// Option configures a Tracker at construction.
type Option func(*Tracker)

// WithPeerAnnounceLimit bounds how many announcements a single peer may
// have tracked at once. ReceivedInv silently no-ops beyond the limit,
// exactly like any other documented no-op per §7.
func WithPeerAnnounceLimit(limit int) Option {
	return func(t *Tracker) { t.peerAnnounceLimit = limit }
}

// WithMetrics registers a Prometheus Collector reporting this Tracker's
// peer-aggregated counters. Only the first Tracker in a process actually
// registers; later calls across the same process are no-ops, matching the
// singleton-collector idiom already used by internal/metamorph.
func WithMetrics() Option {
	return func(t *Tracker) { t.metrics = newMetricsCollector(t) }
}

// NewTracker builds an empty Tracker with a fresh random priority salt.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		key:    newPriorityKey(),
		byPeer: make(map[PeerId]map[Hash]*announcement),
		byHash: make(map[Hash]*hashBucket),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ComputePriority exposes the Tracker's keyed priority function so callers
// and tests can construct hashes that produce a desired peer ordering, per
// §4.1.
func (t *Tracker) ComputePriority(hash Hash, peer PeerId, preferred bool) uint64 {
	return t.key.ComputePriority(hash, peer, preferred)
}

// ReceivedInv records peer's claim to have gtxid. A second ReceivedInv for
// an already-tracked (peer, hash) is a no-op regardless of variant, per
// §3.1's identity rule. The announcement is always created CANDIDATE_DELAYED;
// if reqtime has already elapsed it is promoted on the next sweep
// (GetRequestable), per §4.2.
func (t *Tracker) ReceivedInv(peer PeerId, gtxid GenTxid, preferred bool, reqtime Time) {
	hash := gtxid.Hash

	peerAnns := t.byPeer[peer]
	if peerAnns == nil {
		peerAnns = make(map[Hash]*announcement)
		t.byPeer[peer] = peerAnns
	} else if _, exists := peerAnns[hash]; exists {
		return
	}

	if t.peerAnnounceLimit > 0 && len(peerAnns) >= t.peerAnnounceLimit {
		t.droppedAnnouncements.Add(1)
		return
	}

	bucket := t.byHash[hash]
	if bucket == nil {
		bucket = newHashBucket()
		t.byHash[hash] = bucket
	}

	ann := &announcement{
		peer:      peer,
		gtxid:     gtxid,
		preferred: preferred,
		priority:  t.ComputePriority(hash, peer, preferred),
		reqtime:   reqtime,
		state:     stateCandidateDelayed,
		sequence:  t.nextSequence,
		heapIndex: -1,
	}
	t.nextSequence++

	peerAnns[hash] = ann
	bucket.anns[peer] = ann
	t.events.schedule(ann)
}

// RequestedTx transitions (peer, hash), if it is CANDIDATE_BEST, to
// REQUESTED with the given expiry. Any other prior state, or no
// announcement at all, is silently ignored per §4.2/§4.5 — the caller may
// be acting on a stale GetRequestable result.
func (t *Tracker) RequestedTx(peer PeerId, hash Hash, expiry Time) {
	ann := t.lookup(peer, hash)
	if ann == nil || ann.state != stateCandidateBest {
		return
	}

	bucket := t.byHash[hash]
	bucket.best = nil
	bucket.requested = ann

	ann.state = stateRequested
	ann.expiry = expiry
	t.events.reschedule(ann)
}

// ReceivedResponse completes (peer, hash) regardless of its prior state and
// regardless of whether the response was positive or NOTFOUND — per §4.2
// their handling is identical. A missing announcement is ignored.
func (t *Tracker) ReceivedResponse(peer PeerId, hash Hash) {
	ann := t.lookup(peer, hash)
	if ann == nil || ann.state == stateCompleted {
		return
	}
	t.complete(ann)
	t.recomputeBest(hash)
	t.maybeDestroyHash(hash)
}

// DisconnectedPeer removes every announcement owned by peer, unconditionally.
// Per-hash alternatives, if any, become selectable again.
func (t *Tracker) DisconnectedPeer(peer PeerId) {
	peerAnns := t.byPeer[peer]
	if peerAnns == nil {
		return
	}

	hashes := make([]Hash, 0, len(peerAnns))
	for hash, ann := range peerAnns {
		t.detach(ann)
		hashes = append(hashes, hash)
	}
	delete(t.byPeer, peer)

	for _, hash := range hashes {
		t.recomputeBest(hash)
		t.maybeDestroyHash(hash)
	}
}

// ForgetTxHash removes every announcement for hash across all peers. Used
// once the object has been obtained by other means or permanently
// invalidated.
func (t *Tracker) ForgetTxHash(hash Hash) {
	bucket := t.byHash[hash]
	if bucket == nil {
		return
	}

	for _, ann := range bucket.anns {
		t.events.unschedule(ann)
		if peerAnns := t.byPeer[ann.peer]; peerAnns != nil {
			delete(peerAnns, hash)
			if len(peerAnns) == 0 {
				delete(t.byPeer, ann.peer)
			}
		}
	}
	delete(t.byHash, hash)
}

// GetRequestable sweeps due timers forward to now, then returns, in
// insertion order, every gtxid currently CANDIDATE_BEST for peer. It is the
// only entry point that advances time. The sweep covers every peer's
// delayed and expired announcements, not just the calling peer's, and since
// best-candidate selection is global to a hash it can change who is best
// for other peers that announced the same hash.
func (t *Tracker) GetRequestable(peer PeerId, now Time) []GenTxid {
	span := t.startSweepSpan()
	t.sweep(now)
	endSweepSpan(span)

	peerAnns := t.byPeer[peer]
	if len(peerAnns) == 0 {
		return nil
	}

	var best []*announcement
	for _, ann := range peerAnns {
		if ann.state == stateCandidateBest {
			best = append(best, ann)
		}
	}
	if len(best) == 0 {
		return nil
	}

	sortBySequence(best)

	out := make([]GenTxid, len(best))
	for i, ann := range best {
		out[i] = ann.gtxid
	}
	return out
}

// Count returns the number of announcements tracked for peer, in any
// state, including retained COMPLETED placeholders.
func (t *Tracker) Count(peer PeerId) int {
	return len(t.byPeer[peer])
}

// CountCandidates returns the number of peer's announcements in
// CANDIDATE_DELAYED, CANDIDATE_READY, or CANDIDATE_BEST.
func (t *Tracker) CountCandidates(peer PeerId) int {
	n := 0
	for _, ann := range t.byPeer[peer] {
		if ann.isCandidate() {
			n++
		}
	}
	return n
}

// CountInFlight returns the number of peer's announcements in REQUESTED.
func (t *Tracker) CountInFlight(peer PeerId) int {
	n := 0
	for _, ann := range t.byPeer[peer] {
		if ann.state == stateRequested {
			n++
		}
	}
	return n
}

func (t *Tracker) lookup(peer PeerId, hash Hash) *announcement {
	peerAnns, ok := t.byPeer[peer]
	if !ok {
		return nil
	}
	return peerAnns[hash]
}

func (t *Tracker) complete(ann *announcement) {
	if bucket := t.byHash[ann.hash()]; bucket != nil {
		if bucket.best == ann {
			bucket.best = nil
		}
		if bucket.requested == ann {
			bucket.requested = nil
		}
	}
	t.events.unschedule(ann)
	ann.state = stateCompleted
}

// detach removes ann from every index without touching sibling
// announcements for the same hash; callers are responsible for calling
// recomputeBest/maybeDestroyHash for the affected hash afterwards.
func (t *Tracker) detach(ann *announcement) {
	hash := ann.hash()
	t.events.unschedule(ann)
	if bucket := t.byHash[hash]; bucket != nil {
		delete(bucket.anns, ann.peer)
		if bucket.best == ann {
			bucket.best = nil
		}
		if bucket.requested == ann {
			bucket.requested = nil
		}
	}
}

// maybeDestroyHash purges retained COMPLETED announcements and the bucket
// itself once no alternative remains for that hash, converging the tracker
// toward the empty state described in §1.
func (t *Tracker) maybeDestroyHash(hash Hash) {
	bucket := t.byHash[hash]
	if bucket == nil {
		return
	}
	if bucket.hasAlternatives() {
		return
	}

	for peer := range bucket.anns {
		if peerAnns := t.byPeer[peer]; peerAnns != nil {
			delete(peerAnns, hash)
			if len(peerAnns) == 0 {
				delete(t.byPeer, peer)
			}
		}
	}
	delete(t.byHash, hash)
}
