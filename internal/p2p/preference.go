package p2p

// PeerPreference derives the preference-class flag internal/txtracker
// expects as ReceivedInv's caller-supplied `preferred` argument. Outbound
// connections are treated as preferred, mirroring the outbound/
// block-relay-only preference given to transaction relay upstream of this
// package; the Tracker itself never makes this decision, it only consumes
// the resulting bool.
func PeerPreference(peer PeerI) bool {
	return peer.Outbound()
}
