// Package collab defines the boundary interfaces for the two collaborators
// that sit next to the transaction-announcement scheduler but are
// implemented and owned elsewhere: block-header validation and chain state,
// and the netwire surface used to exchange headers. Neither is implemented
// here; internal/txtracker never references this package directly. A
// concrete adapter over internal/p2p.PeerI satisfies both at the point
// where header exchange is actually wired in.
package collab

import "github.com/libsv/go-p2p/wire"

// HeaderValidator validates block headers against chain state. It knows
// nothing about transaction announcements.
type HeaderValidator interface {
	ValidateHeaders(headers []*wire.BlockHeader) bool
	RecvHeaders() []*wire.BlockHeader
}

// NetWire exchanges block headers with the network, independently of the
// tracker's object-announcement traffic.
type NetWire interface {
	SendHeaders(headers []*wire.BlockHeader) error
	RecvHeaders() []*wire.BlockHeader
}
