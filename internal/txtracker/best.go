package txtracker

import "sort"

// recomputeBest re-derives the CANDIDATE_BEST announcement for hash per
// §4.4: if any announcement for hash is REQUESTED, there is no best.
// Otherwise the highest-(preferred, priority) CANDIDATE_READY/BEST
// announcement is promoted, and any previous best that is no longer
// selected is demoted back to CANDIDATE_READY.
func (t *Tracker) recomputeBest(hash Hash) {
	bucket := t.byHash[hash]
	if bucket == nil {
		return
	}

	if bucket.requested != nil {
		if bucket.best != nil {
			bucket.best.state = stateCandidateReady
			bucket.best = nil
		}
		return
	}

	var winner *announcement
	for _, ann := range bucket.anns {
		switch ann.state {
		case stateCandidateReady, stateCandidateBest:
		default:
			continue
		}
		if winner == nil || ann.priority > winner.priority {
			winner = ann
		}
	}

	if winner == bucket.best {
		return
	}
	if bucket.best != nil {
		bucket.best.state = stateCandidateReady
	}
	bucket.best = winner
	if winner != nil {
		winner.state = stateCandidateBest
	}
}

func sortBySequence(anns []*announcement) {
	sort.Slice(anns, func(i, j int) bool { return anns[i].sequence < anns[j].sequence })
}
