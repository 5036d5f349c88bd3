package txtracker

import "container/heap"

// sweep advances every announcement whose timer is due at or before now:
// CANDIDATE_DELAYED -> CANDIDATE_READY once reqtime is reached, REQUESTED
// -> COMPLETED once expiry is reached (a failed request, per §4.5). It is
// the only place state changes based on time rather than on a caller event,
// per §4.3.
func (t *Tracker) sweep(now Time) {
	touched := make(map[Hash]struct{})

	for {
		ann, due := t.events.peekDue(now)
		if !due {
			break
		}
		heap.Pop(&t.events)

		switch ann.state {
		case stateCandidateDelayed:
			ann.state = stateCandidateReady
		case stateRequested:
			t.complete(ann)
		default:
			// Should not happen: only DELAYED/REQUESTED are ever scheduled.
			continue
		}
		touched[ann.hash()] = struct{}{}
	}

	for hash := range touched {
		t.recomputeBest(hash)
		t.maybeDestroyHash(hash)
	}
}
