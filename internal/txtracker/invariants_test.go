package txtracker

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTracker_Invariant_CountDecomposition asserts §8.1.1: Count equals the
// sum of candidates, in-flight, and completed-but-retained announcements.
func TestTracker_Invariant_CountDecomposition(t *testing.T) {
	tr := NewTracker()
	p1, p2 := PeerId(1), PeerId(2)
	h := hashFromByte(30)
	t0 := Time(7000 * second)

	tr.ReceivedInv(p1, gtxid(h), false, MinTime)
	tr.ReceivedInv(p2, gtxid(h), true, MinTime)
	require.Equal(t, []GenTxid{gtxid(h)}, tr.GetRequestable(p2, t0))

	tr.RequestedTx(p2, h, t0+5*second)
	tr.ReceivedResponse(p2, h)

	completed := tr.Count(p2) - tr.CountCandidates(p2) - tr.CountInFlight(p2)
	assert.GreaterOrEqual(t, completed, 0)
	assert.Equal(t, tr.Count(p2), tr.CountCandidates(p2)+tr.CountInFlight(p2)+completed)
}

// TestTracker_Invariant_SingleInFlightAndBestPerHash asserts §8.1.2: at most
// one REQUESTED and one CANDIDATE_BEST per hash, and the two are disjoint.
func TestTracker_Invariant_SingleInFlightAndBestPerHash(t *testing.T) {
	tr := NewTracker()
	h := hashFromByte(31)
	t0 := Time(8000 * second)

	for peer := PeerId(1); peer <= 10; peer++ {
		tr.ReceivedInv(peer, gtxid(h), peer%3 == 0, MinTime)
	}
	requestable := tr.GetRequestable(PeerId(1), t0)

	bestCount, requestedCount := countStatesForHash(tr, h)
	assert.LessOrEqual(t, bestCount, 1)
	assert.LessOrEqual(t, requestedCount, 1)

	if len(requestable) > 0 {
		tr.RequestedTx(PeerId(1), h, t0+30*second)
	}
	bestCount, requestedCount = countStatesForHash(tr, h)
	assert.LessOrEqual(t, bestCount, 1)
	assert.LessOrEqual(t, requestedCount, 1)
	if bestCount == 1 {
		assert.Equal(t, 0, requestedCount)
	}
}

func countStatesForHash(tr *Tracker, h Hash) (best, requested int) {
	bucket := tr.byHash[h]
	if bucket == nil {
		return 0, 0
	}
	for _, ann := range bucket.anns {
		switch ann.state {
		case stateCandidateBest:
			best++
		case stateRequested:
			requested++
		}
	}
	return best, requested
}

// TestTracker_Invariant_GetRequestableOrderStrictlyIncreasing asserts
// §8.1.4: GetRequestable returns entries in strictly increasing sequence
// order.
func TestTracker_Invariant_GetRequestableOrderStrictlyIncreasing(t *testing.T) {
	tr := NewTracker()
	p := PeerId(1)
	t0 := Time(9000 * second)

	for i := byte(0); i < 20; i++ {
		tr.ReceivedInv(p, gtxid(hashFromByte(40+i)), true, MinTime)
	}

	got := tr.GetRequestable(p, t0)
	require.Len(t, got, 20)

	lastSeq := uint64(0)
	for i, g := range got {
		ann := tr.lookup(p, g.Hash)
		require.NotNil(t, ann)
		if i > 0 {
			assert.Greater(t, ann.sequence, lastSeq)
		}
		lastSeq = ann.sequence
	}
}

// TestTracker_Invariant_DisconnectedPeerZeroesCount asserts §8.1.5.
func TestTracker_Invariant_DisconnectedPeerZeroesCount(t *testing.T) {
	tr := NewTracker()
	p1, p2 := PeerId(1), PeerId(2)
	h := hashFromByte(50)

	tr.ReceivedInv(p1, gtxid(h), false, MinTime)
	tr.ReceivedInv(p2, gtxid(h), false, MinTime)
	tr.DisconnectedPeer(p1)
	require.Equal(t, 0, tr.Count(p1))

	// subsequent activity on unrelated peers must never resurrect p1
	tr.ReceivedInv(p2, gtxid(hashFromByte(51)), false, MinTime)
	tr.GetRequestable(p2, Time(100*second))
	assert.Equal(t, 0, tr.Count(p1))
}

// TestTracker_Invariant_ForgetTxHashRemovesEveryAnnouncement asserts §8.1.6.
func TestTracker_Invariant_ForgetTxHashRemovesEveryAnnouncement(t *testing.T) {
	tr := NewTracker()
	h := hashFromByte(52)
	for peer := PeerId(1); peer <= 5; peer++ {
		tr.ReceivedInv(peer, gtxid(h), false, MinTime)
	}
	tr.ForgetTxHash(h)
	assert.Nil(t, tr.byHash[h])
	for peer := PeerId(1); peer <= 5; peer++ {
		assert.Equal(t, 0, tr.Count(peer))
	}
}

// TestTracker_PriorityLaw_OrderIndependent asserts §8.2: the eventual best
// peer for a hash is independent of the order ReceivedInv was called in,
// for a fixed set of (peer, preferred) announcements.
func TestTracker_PriorityLaw_OrderIndependent(t *testing.T) {
	h := hashFromByte(60)
	peers := []PeerId{1, 2, 3, 4, 5}
	t0 := Time(10000 * second)
	key := fixedTestKey()

	bestPeer := func(order []PeerId) PeerId {
		tr := NewTracker()
		tr.key = key
		for _, p := range order {
			tr.ReceivedInv(p, gtxid(h), false, MinTime)
		}
		tr.sweep(t0)
		for p, ann := range tr.byHash[h].anns {
			if ann.state == stateCandidateBest {
				return p
			}
		}
		return 0
	}

	forward := bestPeer(peers)
	backward := bestPeer([]PeerId{5, 4, 3, 2, 1})

	assert.Equal(t, forward, backward)
}

func fixedTestKey() priorityKey {
	var k priorityKey
	r := rand.New(rand.NewSource(42))
	_, _ = r.Read(k[:])
	return k
}

// TestTracker_RandomizedInterleaving merges two independent scenarios,
// executing their actions in a single stable-sorted timeline, and checks
// that each scenario's own assertions still hold per §8.4: the tracker's
// behavior for one (peer, hash) subset is unaffected by unrelated activity
// interleaved around it.
func TestTracker_RandomizedInterleaving(t *testing.T) {
	type action struct {
		at Time
		do func(tr *Tracker)
	}

	tr := NewTracker()

	// scenario A: P1/P2 over hash A, mirrors S3/S4.
	hA := hashFromByte(70)
	gA := gtxid(hA)
	// scenario B: P3/P4 over hash B, independent peers and hash.
	hB := hashFromByte(71)
	gB := gtxid(hB)

	actions := []action{
		{at: 0, do: func(tr *Tracker) { tr.ReceivedInv(PeerId(1), gA, false, MinTime) }},
		{at: 1, do: func(tr *Tracker) { tr.ReceivedInv(PeerId(3), gB, true, MinTime) }},
		{at: 2, do: func(tr *Tracker) { tr.ReceivedInv(PeerId(2), gA, true, MinTime) }},
		{at: 3, do: func(tr *Tracker) { tr.ReceivedInv(PeerId(4), gB, false, MinTime) }},
		{at: 4, do: func(tr *Tracker) { tr.DisconnectedPeer(PeerId(2)) }},
	}

	sort.SliceStable(actions, func(i, j int) bool { return actions[i].at < actions[j].at })

	for _, a := range actions {
		a.do(tr)
		require.NoError(t, tr.sanityCheck())
	}

	// scenario A: P2 (preferred) disconnected, so P1 is now the sole candidate.
	now := Time(11000 * second)
	assert.Equal(t, []GenTxid{gA}, tr.GetRequestable(PeerId(1), now))

	// scenario B: P3 (preferred) still dominates P4, unaffected by scenario A.
	assert.Empty(t, tr.GetRequestable(PeerId(4), now))
	assert.Equal(t, []GenTxid{gB}, tr.GetRequestable(PeerId(3), now))

	require.NoError(t, tr.postGetRequestableSanityCheck(now))
}
