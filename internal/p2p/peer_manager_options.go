package p2p

import "github.com/libsv/go-p2p/wire"

type PeerManagerOptions func(p *PeerManager)

func WithRestartUnhealthyPeers() PeerManagerOptions {
	return func(p *PeerManager) {
		p.restartUnhealthyPeers = true
	}
}

// WithPeerRemovedHook registers a callback invoked synchronously whenever
// RemovePeer actually removes a tracked peer. Used to let a collaborator
// that keyed state off the peer (such as a Scheduler's per-hash
// announcement index) forget it in lockstep with the peer pool.
func WithPeerRemovedHook(fn func(PeerI)) PeerManagerOptions {
	return func(p *PeerManager) {
		p.onPeerRemoved = fn
	}
}

// SetExcessiveBlockSize sets global setting for block size
func SetExcessiveBlockSize(ebs uint64) {
	wire.SetLimits(ebs)
}
