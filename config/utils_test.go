package config

import (
	"testing"

	"github.com/libsv/go-p2p/wire"
	"github.com/stretchr/testify/assert"
)

func Test_GetNetwork(t *testing.T) {
	testCases := []struct {
		name            string
		networkStr      string
		expectedNetwork wire.BitcoinNet
		expectedError   error
	}{
		{
			name:            "mainnet",
			networkStr:      "mainnet",
			expectedNetwork: wire.MainNet,
			expectedError:   nil,
		},
		{
			name:            "testnet",
			networkStr:      "testnet",
			expectedNetwork: wire.TestNet3,
			expectedError:   nil,
		},
		{
			name:            "regtest",
			networkStr:      "regtest",
			expectedNetwork: wire.TestNet,
			expectedError:   nil,
		},
		{
			name:            "invalid network",
			networkStr:      "invalidnet",
			expectedNetwork: 0, // invalid network
			expectedError:   ErrConfigUnknownNetwork,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			actualNetwork, err := GetNetwork(tc.networkStr)

			// then
			assert.Equal(t, tc.expectedNetwork, actualNetwork)
			assert.ErrorIs(t, err, tc.expectedError)
		})
	}
}

func Test_GetP2PUrl(t *testing.T) {
	testCases := []struct {
		name           string
		peerConfig     *PeerConfig
		expectedP2PUrl string
		expectedError  error
	}{
		{
			name: "valid config",
			peerConfig: &PeerConfig{
				Host: "localhost",
				Port: &PeerPortConfig{P2P: 18332},
			},
			expectedP2PUrl: "localhost:18332",
		},
		{
			name: "p2p port missing",
			peerConfig: &PeerConfig{
				Host: "localhost",
				Port: &PeerPortConfig{},
			},
			expectedError: ErrPortP2PNotSet,
		},
		{
			name: "no port configuration",
			peerConfig: &PeerConfig{
				Host: "localhost",
			},
			expectedError: ErrPortP2PNotSet,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			actualP2PURL, err := tc.peerConfig.GetP2PUrl()

			// then
			assert.ErrorIs(t, err, tc.expectedError)
			assert.Equal(t, tc.expectedP2PUrl, actualP2PURL)
		})
	}
}
