package contracts

import (
	"strings"
	"sync"

	"github.com/Layr-Labs/eigenops/pkg/registry"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// Per-instance contracts have no registry role; their address is supplied by the caller.
const (
	Contract_EigenPod registry.ContractRole = "EigenPod"
	Contract_Strategy registry.ContractRole = "Strategy"
	Contract_ERC20    registry.ContractRole = "ERC20"
)

var abiSources = map[registry.ContractRole]string{
	registry.Contract_DelegationManager:  DelegationManagerAbi,
	registry.Contract_StrategyManager:    StrategyManagerAbi,
	registry.Contract_EigenPodManager:    EigenPodManagerAbi,
	registry.Contract_AVSDirectory:       AVSDirectoryAbi,
	registry.Contract_RewardsCoordinator: RewardsCoordinatorAbi,
	registry.Contract_AllocationManager:  AllocationManagerAbi,
	registry.Contract_StrategyFactory:    StrategyFactoryAbi,
	registry.Contract_Multicall3:         Multicall3Abi,
	Contract_EigenPod:                    EigenPodAbi,
	Contract_Strategy:                    StrategyAbi,
	Contract_ERC20:                       ERC20Abi,
}

var (
	parsedAbis  = map[registry.ContractRole]*abi.ABI{}
	parseErrors = map[registry.ContractRole]error{}
	parseOnce   sync.Once
)

func parseAll() {
	for role, src := range abiSources {
		a, err := abi.JSON(strings.NewReader(src))
		if err != nil {
			parseErrors[role] = errors.Wrapf(err, "failed to parse %s abi", role)
			continue
		}
		parsedAbis[role] = &a
	}
}

// GetAbi returns the parsed ABI for a contract role. ABIs are parsed once per process.
func GetAbi(role registry.ContractRole) (*abi.ABI, error) {
	parseOnce.Do(parseAll)
	if err, ok := parseErrors[role]; ok {
		return nil, err
	}
	a, ok := parsedAbis[role]
	if !ok {
		return nil, errors.Errorf("no abi registered for contract '%s'", role)
	}
	return a, nil
}

// MustGetAbi is for package-level initialization of fixed roles.
func MustGetAbi(role registry.ContractRole) *abi.ABI {
	a, err := GetAbi(role)
	if err != nil {
		panic(err)
	}
	return a
}

func Roles() []registry.ContractRole {
	roles := make([]registry.ContractRole, 0, len(abiSources))
	for role := range abiSources {
		roles = append(roles, role)
	}
	return roles
}

// IsInstanceContract reports whether the role's address comes from a parameter rather than the registry.
func IsInstanceContract(role registry.ContractRole) bool {
	switch role {
	case Contract_EigenPod, Contract_Strategy, Contract_ERC20:
		return true
	}
	return false
}
