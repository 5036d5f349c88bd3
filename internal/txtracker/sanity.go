package txtracker

import "fmt"

// sanityCheck asserts the invariants of §3.3 that hold between any two
// calls: both indexes agree, each hash has at most one CANDIDATE_BEST and at
// most one REQUESTED and never both, the bucket pointers match, and the
// CANDIDATE_BEST outranks every other ready candidate for its hash. It also
// checks that every CANDIDATE_DELAYED announcement is scheduled and that
// only CANDIDATE_DELAYED or REQUESTED ones are. The timer invariant depends
// on now and is checked by postGetRequestableSanityCheck. It is not part of the public
// API — the teacher's equivalents (e.g. internal/p2p's index consistency)
// are likewise only ever called from tests — but it is part of the
// documented testable contract in §4.2.
func (t *Tracker) sanityCheck() error {
	for peer, anns := range t.byPeer {
		for hash, ann := range anns {
			if ann.peer != peer || ann.hash() != hash {
				return fmt.Errorf("byPeer[%d][%x] index mismatch", peer, hash)
			}
			bucket := t.byHash[hash]
			if bucket == nil || bucket.anns[peer] != ann {
				return fmt.Errorf("announcement %d/%x missing from byHash index", peer, hash)
			}
		}
	}

	for hash, bucket := range t.byHash {
		var best, requested *announcement
		for peer, ann := range bucket.anns {
			if ann.peer != peer || ann.hash() != hash {
				return fmt.Errorf("byHash[%x][%d] index mismatch", hash, peer)
			}
			if peerAnns := t.byPeer[peer]; peerAnns == nil || peerAnns[hash] != ann {
				return fmt.Errorf("announcement %d/%x missing from byPeer index", peer, hash)
			}

			switch ann.state {
			case stateCandidateBest:
				if best != nil {
					return fmt.Errorf("hash %x has more than one CANDIDATE_BEST", hash)
				}
				best = ann
			case stateRequested:
				if requested != nil {
					return fmt.Errorf("hash %x has more than one REQUESTED", hash)
				}
				requested = ann
			case stateCandidateDelayed:
				if ann.heapIndex < 0 {
					return fmt.Errorf("CANDIDATE_DELAYED %d/%x not scheduled", peer, hash)
				}
			}
		}

		if best != nil && requested != nil {
			return fmt.Errorf("hash %x has both a CANDIDATE_BEST and a REQUESTED", hash)
		}
		if bucket.best != best {
			return fmt.Errorf("hash %x bucket.best pointer stale", hash)
		}
		if bucket.requested != requested {
			return fmt.Errorf("hash %x bucket.requested pointer stale", hash)
		}

		if best != nil {
			for _, ann := range bucket.anns {
				if ann == best || ann.state == stateRequested {
					continue
				}
				switch ann.state {
				case stateCandidateReady, stateCandidateBest:
					if ann.priority > best.priority {
						return fmt.Errorf("hash %x: CANDIDATE_BEST is not the strict best", hash)
					}
				}
			}
		}
	}

	for _, ann := range t.events {
		switch ann.state {
		case stateCandidateDelayed, stateRequested:
		default:
			return fmt.Errorf("announcement %d/%x in state %s must not be scheduled", ann.peer, ann.hash(), ann.state)
		}
	}

	return nil
}

// postGetRequestableSanityCheck additionally asserts that, after a
// GetRequestable(_, now) call, no announcement is left overdue for that
// now: no CANDIDATE_DELAYED with reqtime<=now and no REQUESTED with
// expiry<=now, per §3.3 invariant 4 and §8.1.3.
func (t *Tracker) postGetRequestableSanityCheck(now Time) error {
	if err := t.sanityCheck(); err != nil {
		return err
	}

	for peer, anns := range t.byPeer {
		for hash, ann := range anns {
			switch ann.state {
			case stateCandidateDelayed:
				if ann.reqtime <= now {
					return fmt.Errorf("announcement %d/%x still CANDIDATE_DELAYED past reqtime", peer, hash)
				}
			case stateRequested:
				if ann.expiry <= now {
					return fmt.Errorf("announcement %d/%x still REQUESTED past expiry", peer, hash)
				}
			}
		}
	}
	return nil
}
