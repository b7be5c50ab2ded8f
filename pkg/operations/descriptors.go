package operations

import (
	"math/big"

	"github.com/Layr-Labs/eigenops/pkg/contracts"
	"github.com/Layr-Labs/eigenops/pkg/registry"
)

const (
	Resource_StrategyManager    = "strategyManager"
	Resource_DelegationManager  = "delegationManager"
	Resource_EigenPodManager    = "eigenPodManager"
	Resource_EigenPod           = "eigenPod"
	Resource_AVSDirectory       = "avsDirectory"
	Resource_RewardsCoordinator = "rewardsCoordinator"
	Resource_AllocationManager  = "allocationManager"
	Resource_Strategy           = "strategy"
	Resource_Multicall          = "multicall"
	Resource_Signature          = "signature"
)

// BeaconDepositWei is the value sent with EigenPodManager.stake.
var BeaconDepositWei = new(big.Int).Mul(big.NewInt(32), big.NewInt(1_000_000_000_000_000_000))

func addressArg(param, echo string) ArgSpec {
	return ArgSpec{Param: param, Type: Param_Address, Echo: echo}
}

func strategyArg() ArgSpec {
	return ArgSpec{Param: "strategyAddress", Type: Param_Address, Echo: "strategy"}
}

// AllDescriptors returns the full operation table.
func AllDescriptors() []*Descriptor {
	return []*Descriptor{
		// strategyManager
		{
			Resource: Resource_StrategyManager, Operation: "getStakerDeposits", Kind: Kind_Read,
			Contract: registry.Contract_StrategyManager, Method: "getDeposits",
			Handler:     getStakerDeposits,
			Description: "List every strategy a staker holds deposit shares in",
		},
		{
			Resource: Resource_StrategyManager, Operation: "getStakerStrategyShares", Kind: Kind_Read,
			Contract: registry.Contract_StrategyManager, Method: "stakerDepositShares",
			Args: []ArgSpec{
				addressArg("stakerAddress", "staker"),
				{Param: "strategyAddress", Type: Param_Address, Echo: "strategy", Strategy: true},
			},
			Outputs:     []OutputSpec{{Field: "shares", Format: Output_Formatted18}},
			Description: "Deposit shares a staker holds in one strategy",
		},
		{
			Resource: Resource_StrategyManager, Operation: "depositIntoStrategy", Kind: Kind_Write,
			Contract: registry.Contract_StrategyManager, Method: "depositIntoStrategy",
			Handler:     depositIntoStrategy,
			Description: "Deposit tokens into a strategy, approving the StrategyManager first if needed",
		},
		{
			Resource: Resource_StrategyManager, Operation: "isStrategyWhitelisted", Kind: Kind_Read,
			Contract: registry.Contract_StrategyManager, Method: "strategyIsWhitelistedForDeposit",
			Args:    []ArgSpec{strategyArg()},
			Outputs: []OutputSpec{{Field: "isWhitelisted"}},
		},
		{
			Resource: Resource_StrategyManager, Operation: "getNonce", Kind: Kind_Read,
			Contract: registry.Contract_StrategyManager, Method: "nonces",
			Args:        []ArgSpec{addressArg("stakerAddress", "staker")},
			Outputs:     []OutputSpec{{Field: "nonce"}},
			Description: "Signature nonce used by depositIntoStrategyWithSignature",
		},

		// delegationManager
		{
			Resource: Resource_DelegationManager, Operation: "getDelegatedOperator", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "delegatedTo",
			Args: []ArgSpec{addressArg("stakerAddress", "staker")},
			Outputs: []OutputSpec{
				{Field: "delegatedTo"},
				{Field: "isDelegated", Format: Output_NonZero},
			},
		},
		{
			Resource: Resource_DelegationManager, Operation: "isDelegated", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "isDelegated",
			Args:    []ArgSpec{addressArg("stakerAddress", "staker")},
			Outputs: []OutputSpec{{Field: "isDelegated"}},
		},
		{
			Resource: Resource_DelegationManager, Operation: "isOperator", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "isOperator",
			Args:    []ArgSpec{addressArg("operatorAddress", "address")},
			Outputs: []OutputSpec{{Field: "isOperator"}},
		},
		{
			Resource: Resource_DelegationManager, Operation: "getOperatorDetails", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "operatorDetails",
			Handler: getOperatorDetails,
		},
		{
			Resource: Resource_DelegationManager, Operation: "getOperatorShares", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "operatorShares",
			Args:    []ArgSpec{addressArg("operatorAddress", "operator"), strategyArg()},
			Outputs: []OutputSpec{{Field: "shares", Format: Output_Formatted18}},
		},
		{
			Resource: Resource_DelegationManager, Operation: "getWithdrawableShares", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "getWithdrawableShares",
			Handler: getWithdrawableShares,
		},
		{
			Resource: Resource_DelegationManager, Operation: "getCumulativeWithdrawalsQueued", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "cumulativeWithdrawalsQueued",
			Args:    []ArgSpec{addressArg("stakerAddress", "staker")},
			Outputs: []OutputSpec{{Field: "cumulativeWithdrawals"}},
		},
		{
			Resource: Resource_DelegationManager, Operation: "isWithdrawalPending", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "pendingWithdrawals",
			Args:    []ArgSpec{{Param: "withdrawalRoot", Type: Param_Bytes32, Echo: "withdrawalRoot"}},
			Outputs: []OutputSpec{{Field: "isPending"}},
		},
		{
			Resource: Resource_DelegationManager, Operation: "calculateWithdrawalRoot", Kind: Kind_Read,
			Contract: registry.Contract_DelegationManager, Method: "calculateWithdrawalRoot",
			Handler: calculateWithdrawalRoot,
		},
		{
			Resource: Resource_DelegationManager, Operation: "registerAsOperator", Kind: Kind_Write,
			Contract: registry.Contract_DelegationManager, Method: "registerAsOperator",
			Handler: registerAsOperator,
		},
		{
			Resource: Resource_DelegationManager, Operation: "updateOperatorMetadataURI", Kind: Kind_Write,
			Contract: registry.Contract_DelegationManager, Method: "updateOperatorMetadataURI",
			Args:       []ArgSpec{{Param: "metadataURI", Type: Param_String, Echo: "metadataURI"}},
			SignerEcho: "operator",
		},
		{
			Resource: Resource_DelegationManager, Operation: "delegateTo", Kind: Kind_Write,
			Contract: registry.Contract_DelegationManager, Method: "delegateTo",
			Handler: delegateTo,
		},
		{
			Resource: Resource_DelegationManager, Operation: "undelegate", Kind: Kind_Write,
			Contract: registry.Contract_DelegationManager, Method: "undelegate",
			Args: []ArgSpec{{Param: "stakerAddress", Type: Param_Address, FromSigner: true, Echo: "staker"}},
		},
		{
			Resource: Resource_DelegationManager, Operation: "queueWithdrawals", Kind: Kind_Write,
			Contract: registry.Contract_DelegationManager, Method: "queueWithdrawals",
			Handler: queueWithdrawals,
		},
		{
			Resource: Resource_DelegationManager, Operation: "completeQueuedWithdrawal", Kind: Kind_Write,
			Contract: registry.Contract_DelegationManager, Method: "completeQueuedWithdrawal",
			Handler:     completeQueuedWithdrawal,
			Description: "Complete a queued withdrawal, recovering its struct from the WithdrawalQueued event when needed",
		},

		// eigenPodManager
		{
			Resource: Resource_EigenPodManager, Operation: "getEigenPod", Kind: Kind_Read,
			Contract: registry.Contract_EigenPodManager, Method: "ownerToPod",
			Handler: getEigenPod,
		},
		{
			Resource: Resource_EigenPodManager, Operation: "hasPod", Kind: Kind_Read,
			Contract: registry.Contract_EigenPodManager, Method: "hasPod",
			Args:    []ArgSpec{addressArg("podOwnerAddress", "podOwner")},
			Outputs: []OutputSpec{{Field: "hasPod"}},
		},
		{
			Resource: Resource_EigenPodManager, Operation: "getPodOwnerShares", Kind: Kind_Read,
			Contract: registry.Contract_EigenPodManager, Method: "podOwnerDepositShares",
			Handler: getPodOwnerShares,
		},
		{
			Resource: Resource_EigenPodManager, Operation: "createPod", Kind: Kind_Write,
			Contract: registry.Contract_EigenPodManager, Method: "createPod",
			Handler: createPod,
		},
		{
			Resource: Resource_EigenPodManager, Operation: "stake", Kind: Kind_Write,
			Contract: registry.Contract_EigenPodManager, Method: "stake",
			Value:       BeaconDepositWei,
			Handler:     stake,
			Description: "Stake 32 ETH into a new beacon chain validator pointed at the sender's pod",
		},

		// eigenPod
		{
			Resource: Resource_EigenPod, Operation: "getPodOwner", Kind: Kind_Read,
			Contract: contracts.Contract_EigenPod, TargetParam: "podAddress", TargetEcho: "pod", Method: "podOwner",
			Outputs: []OutputSpec{{Field: "owner"}},
		},
		{
			Resource: Resource_EigenPod, Operation: "getValidatorStatus", Kind: Kind_Read,
			Contract: contracts.Contract_EigenPod, TargetParam: "podAddress", TargetEcho: "pod", Method: "validatorStatus",
			Args:    []ArgSpec{{Param: "validatorPubkey", Type: Param_Bytes32, Echo: "validatorPubkey"}},
			Outputs: []OutputSpec{{Field: "status"}},
		},
		{
			Resource: Resource_EigenPod, Operation: "activateRestaking", Kind: Kind_Write,
			Contract: contracts.Contract_EigenPod, TargetParam: "podAddress", TargetEcho: "pod", Method: "activateRestaking",
		},

		// avsDirectory
		{
			Resource: Resource_AVSDirectory, Operation: "getOperatorAvsStatus", Kind: Kind_Read,
			Contract: registry.Contract_AVSDirectory, Method: "avsOperatorStatus",
			Handler: getOperatorAvsStatus,
		},
		{
			Resource: Resource_AVSDirectory, Operation: "isSaltSpent", Kind: Kind_Read,
			Contract: registry.Contract_AVSDirectory, Method: "operatorSaltIsSpent",
			Args: []ArgSpec{
				addressArg("operatorAddress", "operator"),
				{Param: "salt", Type: Param_Bytes32, Echo: "salt"},
			},
			Outputs: []OutputSpec{{Field: "isSpent"}},
		},
		{
			Resource: Resource_AVSDirectory, Operation: "registerOperatorToAvs", Kind: Kind_Write,
			Contract: registry.Contract_AVSDirectory, Method: "registerOperatorToAVS",
			Handler: registerOperatorToAvs,
		},
		{
			Resource: Resource_AVSDirectory, Operation: "deregisterOperatorFromAvs", Kind: Kind_Write,
			Contract: registry.Contract_AVSDirectory, Method: "deregisterOperatorFromAVS",
			Handler: deregisterOperatorFromAvs,
		},

		// rewardsCoordinator
		{
			Resource: Resource_RewardsCoordinator, Operation: "getCumulativeClaimed", Kind: Kind_Read,
			Contract: registry.Contract_RewardsCoordinator, Method: "cumulativeClaimed",
			Args:    []ArgSpec{addressArg("earnerAddress", "earner"), addressArg("tokenAddress", "token")},
			Outputs: []OutputSpec{{Field: "claimed"}},
		},
		{
			Resource: Resource_RewardsCoordinator, Operation: "getClaimerFor", Kind: Kind_Read,
			Contract: registry.Contract_RewardsCoordinator, Method: "claimerFor",
			Args:    []ArgSpec{addressArg("earnerAddress", "earner")},
			Outputs: []OutputSpec{{Field: "claimer"}},
		},
		{
			Resource: Resource_RewardsCoordinator, Operation: "getCurrentDistributionRoot", Kind: Kind_Read,
			Contract: registry.Contract_RewardsCoordinator, Method: "getCurrentDistributionRoot",
			Handler: getCurrentDistributionRoot,
		},
		{
			Resource: Resource_RewardsCoordinator, Operation: "checkClaim", Kind: Kind_Read,
			Contract: registry.Contract_RewardsCoordinator, Method: "checkClaim",
			Handler: checkClaim,
		},
		{
			Resource: Resource_RewardsCoordinator, Operation: "processClaim", Kind: Kind_Write,
			Contract: registry.Contract_RewardsCoordinator, Method: "processClaim",
			Handler: processClaim,
		},
		{
			Resource: Resource_RewardsCoordinator, Operation: "setClaimerFor", Kind: Kind_Write,
			Contract: registry.Contract_RewardsCoordinator, Method: "setClaimerFor",
			Args:       []ArgSpec{addressArg("claimerAddress", "claimer")},
			SignerEcho: "earner",
		},

		// allocationManager
		{
			Resource: Resource_AllocationManager, Operation: "getEncumberedMagnitude", Kind: Kind_Read,
			Contract: registry.Contract_AllocationManager, Method: "getEncumberedMagnitude",
			Args:    []ArgSpec{addressArg("operatorAddress", "operator"), strategyArg()},
			Outputs: []OutputSpec{{Field: "encumberedMagnitude"}},
		},
		{
			Resource: Resource_AllocationManager, Operation: "getMaxMagnitude", Kind: Kind_Read,
			Contract: registry.Contract_AllocationManager, Method: "getMaxMagnitude",
			Args:    []ArgSpec{addressArg("operatorAddress", "operator"), strategyArg()},
			Outputs: []OutputSpec{{Field: "maxMagnitude"}},
		},
		{
			Resource: Resource_AllocationManager, Operation: "getAllocation", Kind: Kind_Read,
			Contract: registry.Contract_AllocationManager, Method: "getAllocation",
			Handler: getAllocation,
		},
		{
			Resource: Resource_AllocationManager, Operation: "modifyAllocations", Kind: Kind_Write,
			Contract: registry.Contract_AllocationManager, Method: "modifyAllocations",
			Handler: modifyAllocations,
		},

		// strategy
		{
			Resource: Resource_Strategy, Operation: "getTotalShares", Kind: Kind_Read,
			Contract: contracts.Contract_Strategy, TargetParam: "strategyAddress", TargetEcho: "strategy", Method: "totalShares",
			Outputs: []OutputSpec{{Field: "totalShares"}},
		},
		{
			Resource: Resource_Strategy, Operation: "getUnderlyingToken", Kind: Kind_Read,
			Contract: contracts.Contract_Strategy, TargetParam: "strategyAddress", TargetEcho: "strategy", Method: "underlyingToken",
			Outputs: []OutputSpec{{Field: "underlyingToken"}},
		},
		{
			Resource: Resource_Strategy, Operation: "sharesToUnderlying", Kind: Kind_Read,
			Contract: contracts.Contract_Strategy, TargetParam: "strategyAddress", TargetEcho: "strategy", Method: "sharesToUnderlying",
			Args:    []ArgSpec{{Param: "shares", Type: Param_Uint256, Echo: "shares"}},
			Outputs: []OutputSpec{{Field: "underlying"}},
		},
		{
			Resource: Resource_Strategy, Operation: "underlyingToShares", Kind: Kind_Read,
			Contract: contracts.Contract_Strategy, TargetParam: "strategyAddress", TargetEcho: "strategy", Method: "underlyingToShares",
			Args:    []ArgSpec{{Param: "amount", Type: Param_Uint256, Echo: "amount"}},
			Outputs: []OutputSpec{{Field: "shares"}},
		},

		// multicall
		{
			Resource: Resource_Multicall, Operation: "batchRead", Kind: Kind_Read,
			Contract: registry.Contract_Multicall3, Method: "aggregate3",
			Handler:     batchRead,
			Description: "Run arbitrary pre-encoded calls through Multicall3",
		},
		{
			Resource: Resource_Multicall, Operation: "getStakerPortfolio", Kind: Kind_Read,
			Contract: registry.Contract_Multicall3, Method: "aggregate3",
			Handler: getStakerPortfolio,
		},
		{
			Resource: Resource_Multicall, Operation: "getOperatorSummary", Kind: Kind_Read,
			Contract: registry.Contract_Multicall3, Method: "aggregate3",
			Handler: getOperatorSummary,
		},

		// signature
		{
			Resource: Resource_Signature, Operation: "signDelegationApproval", Kind: Kind_Local,
			Contract: registry.Contract_DelegationManager, Handler: signDelegationApproval,
		},
		{
			Resource: Resource_Signature, Operation: "signStakerDelegation", Kind: Kind_Local,
			Contract: registry.Contract_DelegationManager, Handler: signStakerDelegation,
		},
		{
			Resource: Resource_Signature, Operation: "signDeposit", Kind: Kind_Local,
			Contract: registry.Contract_StrategyManager, Handler: signDeposit,
		},
		{
			Resource: Resource_Signature, Operation: "signOperatorAvsRegistration", Kind: Kind_Local,
			Contract: registry.Contract_AVSDirectory, Handler: signOperatorAvsRegistration,
		},
		{
			Resource: Resource_Signature, Operation: "generateSalt", Kind: Kind_Local,
			Handler: generateSalt,
		},
		{
			Resource: Resource_Signature, Operation: "calculateExpiry", Kind: Kind_Local,
			Handler: calculateExpiry,
		},
	}
}
