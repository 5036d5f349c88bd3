package collab_test

import (
	"testing"

	"github.com/libsv/go-p2p/wire"
	"github.com/stretchr/testify/assert"

	"github.com/bsv-blockchain/trackerd/internal/collab"
)

// headerRelay is a minimal fake standing in for the concrete adapter that
// would wire internal/p2p.PeerI into these boundary interfaces: it buffers
// what it was sent and replays what it was told to deliver, with no
// validation logic, matching the boundary these interfaces define.
type headerRelay struct {
	sent     []*wire.BlockHeader
	received []*wire.BlockHeader
}

func (r *headerRelay) ValidateHeaders([]*wire.BlockHeader) bool { return true }

func (r *headerRelay) SendHeaders(headers []*wire.BlockHeader) error {
	r.sent = append(r.sent, headers...)
	return nil
}

func (r *headerRelay) RecvHeaders() []*wire.BlockHeader { return r.received }

var (
	_ collab.HeaderValidator = (*headerRelay)(nil)
	_ collab.NetWire         = (*headerRelay)(nil)
)

func Test_HeaderRelaySendAndReceive(t *testing.T) {
	// given
	relay := &headerRelay{received: []*wire.BlockHeader{{}}}

	// when
	err := relay.SendHeaders([]*wire.BlockHeader{{}, {}})

	// then
	assert.NoError(t, err)
	assert.Len(t, relay.sent, 2)
	assert.Len(t, relay.RecvHeaders(), 1)
	assert.True(t, relay.ValidateHeaders(relay.RecvHeaders()))
}
