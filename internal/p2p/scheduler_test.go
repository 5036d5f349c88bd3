package p2p_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/libsv/go-p2p/chaincfg/chainhash"
	"github.com/libsv/go-p2p/wire"
	"github.com/stretchr/testify/require"

	"github.com/bsv-blockchain/trackerd/internal/p2p"
	"github.com/bsv-blockchain/trackerd/internal/p2p/mocks"
	"github.com/bsv-blockchain/trackerd/internal/txtracker"
)

func hashFromByte(b byte) chainhash.Hash {
	var h chainhash.Hash
	h[0] = b
	return h
}

func Test_SchedulerReceiveInvThenRequest(t *testing.T) {
	// given
	tracker := txtracker.NewTracker()
	clock := txtracker.NewManualClock(txtracker.MinTime)
	sut := p2p.NewScheduler(slog.Default(), tracker, clock, 30*time.Second)

	hash := hashFromByte(1)
	var written []wire.Message
	peer := &mocks.PeerIMock{
		StringFunc:   func() string { return "peer-1" },
		OutboundFunc: func() bool { return true },
		WriteMsgFunc: func(msg wire.Message) { written = append(written, msg) },
	}

	invMsg := wire.NewMsgInv()
	require.NoError(t, invMsg.AddInvVect(wire.NewInvVect(wire.InvTypeTx, &hash)))

	// when
	sut.OnReceive(invMsg, peer)
	sut.RequestFromPeer(peer)

	// then
	require.Len(t, written, 1)
	getMsg, ok := written[0].(*wire.MsgGetData)
	require.True(t, ok)
	require.Len(t, getMsg.InvList, 1)
	require.Equal(t, hash, getMsg.InvList[0].Hash)
}

func Test_SchedulerNotFoundCompletesRequest(t *testing.T) {
	// given
	tracker := txtracker.NewTracker()
	clock := txtracker.NewManualClock(txtracker.MinTime)
	sut := p2p.NewScheduler(slog.Default(), tracker, clock, 30*time.Second)

	hash := hashFromByte(2)
	var written []wire.Message
	peer := &mocks.PeerIMock{
		StringFunc:   func() string { return "peer-1" },
		OutboundFunc: func() bool { return true },
		WriteMsgFunc: func(msg wire.Message) { written = append(written, msg) },
	}

	invMsg := wire.NewMsgInv()
	require.NoError(t, invMsg.AddInvVect(wire.NewInvVect(wire.InvTypeTx, &hash)))
	sut.OnReceive(invMsg, peer)
	sut.RequestFromPeer(peer)
	require.Len(t, written, 1)

	notFoundMsg := &wire.MsgNotFound{InvList: []*wire.InvVect{wire.NewInvVect(wire.InvTypeTx, &hash)}}

	// when
	sut.OnReceive(notFoundMsg, peer)

	// then
	require.Equal(t, 0, tracker.CountInFlight(1))
}

func Test_SchedulerPeerDisconnectedForgetsAnnouncements(t *testing.T) {
	// given
	tracker := txtracker.NewTracker()
	clock := txtracker.NewManualClock(txtracker.MinTime)
	sut := p2p.NewScheduler(slog.Default(), tracker, clock, 30*time.Second)

	hash := hashFromByte(3)
	peer := &mocks.PeerIMock{
		StringFunc:   func() string { return "peer-1" },
		OutboundFunc: func() bool { return true },
		WriteMsgFunc: func(wire.Message) {},
	}

	invMsg := wire.NewMsgInv()
	require.NoError(t, invMsg.AddInvVect(wire.NewInvVect(wire.InvTypeTx, &hash)))
	sut.OnReceive(invMsg, peer)
	require.Equal(t, 1, tracker.Count(1))

	// when
	sut.PeerDisconnected(peer)

	// then
	require.Equal(t, 0, tracker.Count(1))
}
