package txtracker

// state is the lifecycle stage of a single announcement, per §3.2 of the
// scheduler design: CANDIDATE_DELAYED -> CANDIDATE_READY -> CANDIDATE_BEST
// -> REQUESTED -> COMPLETED, with CANDIDATE_BEST able to fall back to
// CANDIDATE_READY if a better-priority peer supersedes it.
type state uint8

const (
	stateCandidateDelayed state = iota
	stateCandidateReady
	stateCandidateBest
	stateRequested
	stateCompleted
)

func (s state) String() string {
	switch s {
	case stateCandidateDelayed:
		return "CANDIDATE_DELAYED"
	case stateCandidateReady:
		return "CANDIDATE_READY"
	case stateCandidateBest:
		return "CANDIDATE_BEST"
	case stateRequested:
		return "REQUESTED"
	case stateCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// announcement is one peer's claim to possess one object. Identity is the
// (peer, hash) pair; the arena holding these is the pair of index maps
// owned by Tracker (byPeer, byHash) plus the events heap, all pointing at
// the same instance so removal from one is removal from all.
type announcement struct {
	peer      PeerId
	gtxid     GenTxid
	preferred bool
	priority  uint64 // ComputePriority(gtxid.Hash, peer, preferred), fixed at creation

	reqtime Time
	expiry  Time
	state   state

	sequence uint64

	heapIndex int // position in the Tracker's event heap, -1 when absent
}

func (a *announcement) hash() Hash { return a.gtxid.Hash }

// eventTime is when this announcement next needs sweeping: reqtime while
// delayed, expiry while requested. Ready/best/completed announcements have
// no pending timer and must not be in the event heap.
func (a *announcement) eventTime() Time {
	switch a.state {
	case stateCandidateDelayed:
		return a.reqtime
	case stateRequested:
		return a.expiry
	default:
		return 0
	}
}

func (a *announcement) isCandidate() bool {
	switch a.state {
	case stateCandidateDelayed, stateCandidateReady, stateCandidateBest:
		return true
	default:
		return false
	}
}
