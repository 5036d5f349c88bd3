package config

import (
	"errors"
	"fmt"

	"github.com/libsv/go-p2p/wire"
)

var (
	ErrConfigUnknownNetwork = errors.New("unknown bitcoin network")
	ErrPortP2PNotSet        = errors.New("port_p2p not set for peer")
)

func GetNetwork(networkStr string) (wire.BitcoinNet, error) {
	var network wire.BitcoinNet

	switch networkStr {
	case "mainnet":
		network = wire.MainNet
	case "testnet":
		network = wire.TestNet3
	case "regtest":
		network = wire.TestNet
	default:
		return 0, errors.Join(ErrConfigUnknownNetwork, fmt.Errorf("network: %s", networkStr))
	}

	return network, nil
}

func (p *PeerConfig) GetP2PUrl() (string, error) {
	if p.Port == nil || p.Port.P2P == 0 {
		return "", errors.Join(ErrPortP2PNotSet, fmt.Errorf("peer: %s", p.Host))
	}

	return fmt.Sprintf("%s:%d", p.Host, p.Port.P2P), nil
}
