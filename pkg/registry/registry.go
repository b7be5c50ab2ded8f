package registry

import (
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
)

type Network string

const (
	Network_Mainnet Network = "mainnet"
	Network_Holesky Network = "holesky"
)

type ContractRole string

const (
	Contract_DelegationManager  ContractRole = "DelegationManager"
	Contract_StrategyManager    ContractRole = "StrategyManager"
	Contract_EigenPodManager    ContractRole = "EigenPodManager"
	Contract_AVSDirectory       ContractRole = "AVSDirectory"
	Contract_RewardsCoordinator ContractRole = "RewardsCoordinator"
	Contract_AllocationManager  ContractRole = "AllocationManager"
	Contract_StrategyFactory    ContractRole = "StrategyFactory"
	Contract_Multicall3         ContractRole = "Multicall3"
)

// Multicall3 is deployed at the same address on every EVM chain.
const Multicall3Address = "0xcA11bde05977b3631167028862bE2a173976CA11"

// BeaconChainETHStrategy is the virtual strategy native restaked ETH is accounted under. It has no underlying token.
const BeaconChainETHStrategy = "0xbeaC0eeEeeeeEEeEeEEEEeeEEeEeeeEeeEEBEaC0"

const (
	WithdrawalDelayBlocks    = 100800
	MinWithdrawalDelayBlocks = 50400
)

type ContractAddresses struct {
	DelegationManager  string
	StrategyManager    string
	EigenPodManager    string
	AVSDirectory       string
	RewardsCoordinator string
	AllocationManager  string
	StrategyFactory    string
	Multicall3         string
}

// Get returns the address for a role, or an empty string if the role is unknown.
func (ca *ContractAddresses) Get(role ContractRole) string {
	switch role {
	case Contract_DelegationManager:
		return ca.DelegationManager
	case Contract_StrategyManager:
		return ca.StrategyManager
	case Contract_EigenPodManager:
		return ca.EigenPodManager
	case Contract_AVSDirectory:
		return ca.AVSDirectory
	case Contract_RewardsCoordinator:
		return ca.RewardsCoordinator
	case Contract_AllocationManager:
		return ca.AllocationManager
	case Contract_StrategyFactory:
		return ca.StrategyFactory
	case Contract_Multicall3:
		return ca.Multicall3
	}
	return ""
}

func (ca *ContractAddresses) Roles() []ContractRole {
	return []ContractRole{
		Contract_DelegationManager,
		Contract_StrategyManager,
		Contract_EigenPodManager,
		Contract_AVSDirectory,
		Contract_RewardsCoordinator,
		Contract_AllocationManager,
		Contract_StrategyFactory,
		Contract_Multicall3,
	}
}

type NetworkProfile struct {
	Network   Network
	ChainId   uint64
	Addresses *ContractAddresses
}

var networkProfiles = map[Network]*NetworkProfile{
	Network_Mainnet: {
		Network: Network_Mainnet,
		ChainId: 1,
		Addresses: &ContractAddresses{
			DelegationManager:  "0x39053D51B77DC0d36036Fc1fCc8Cb819df8Ef37A",
			StrategyManager:    "0x858646372CC42E1A627fcE94aa7A7033e7CF075A",
			EigenPodManager:    "0x91E677b07F7AF907ec9a428aafA9fc14a0d3A338",
			AVSDirectory:       "0x135DDa560e946695d6f155dACaFC6f1F25C1F5AF",
			RewardsCoordinator: "0x7750d328b314EfFa365A0402CcfD489B80B0adda",
			AllocationManager:  "0x948a420b8CC1d6BFd0B6087C2E7c344a2CD0bc39",
			StrategyFactory:    "0x5e4C39Ad7A3E881585e383dB9827EB4811f6F647",
			Multicall3:         Multicall3Address,
		},
	},
	Network_Holesky: {
		Network: Network_Holesky,
		ChainId: 17000,
		Addresses: &ContractAddresses{
			DelegationManager:  "0xA44151489861Fe9e3055d95adC98FbD462B948e7",
			StrategyManager:    "0xdfB5f6CE42aAA7830E94ECFCcAd411beF4d4D5b6",
			EigenPodManager:    "0x30770d7E3e71112d7A6b7259542D1f680a70e315",
			AVSDirectory:       "0x055733000064333CaDDbC92763c58BF0192fFeBf",
			RewardsCoordinator: "0xAcc1fb458a1317E886dB376Fc8141540537E68fE",
			AllocationManager:  "0x78469728304326CBc65f8f95FA756B0B73164462",
			StrategyFactory:    "0x9c01252B580efD11a05C00Aa42Dd58b6D4D227d4",
			Multicall3:         Multicall3Address,
		},
	},
}

// ParseNetwork normalizes a network identifier. "testnet" is an alias for holesky.
func ParseNetwork(n string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(n)) {
	case "mainnet", "ethereum":
		return Network_Mainnet, nil
	case "holesky", "testnet":
		return Network_Holesky, nil
	}
	return "", &errorTypes.UnsupportedNetworkError{Network: n}
}

func GetNetworkProfile(n string) (*NetworkProfile, error) {
	network, err := ParseNetwork(n)
	if err != nil {
		return nil, err
	}
	return networkProfiles[network], nil
}

func ResolveAddresses(n string) (*ContractAddresses, error) {
	profile, err := GetNetworkProfile(n)
	if err != nil {
		return nil, err
	}
	return profile.Addresses, nil
}

func ResolveChainId(n string) (uint64, error) {
	profile, err := GetNetworkProfile(n)
	if err != nil {
		return 0, err
	}
	return profile.ChainId, nil
}

func SupportedNetworks() []Network {
	return []Network{Network_Mainnet, Network_Holesky}
}
