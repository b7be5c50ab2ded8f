package ethereum

import (
	"context"
	"fmt"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/Layr-Labs/eigenops/pkg/registry"
)

type ProviderType string

const (
	Provider_Alchemy   ProviderType = "alchemy"
	Provider_Infura    ProviderType = "infura"
	Provider_QuickNode ProviderType = "quicknode"
	Provider_Custom    ProviderType = "custom"
)

// ConnectionCredential is the RPC credential material. It is consumed, never persisted.
type ConnectionCredential struct {
	Provider     ProviderType `mapstructure:"provider"`
	ApiKey       string       `mapstructure:"apiKey"`
	CustomRpcUrl string       `mapstructure:"customRpcUrl"`
	Network      string       `mapstructure:"network"`
}

// BuildConnectionUrl templates the endpoint URL for the credential's provider and network.
func BuildConnectionUrl(cred *ConnectionCredential) (string, error) {
	if cred == nil {
		return "", errorTypes.NewConfigurationError("credential", "RPC credential is required")
	}
	network, err := registry.ParseNetwork(cred.Network)
	if err != nil {
		return "", err
	}
	apiKey := strings.TrimSpace(cred.ApiKey)

	switch ProviderType(strings.ToLower(string(cred.Provider))) {
	case Provider_Alchemy:
		if apiKey == "" {
			return "", errorTypes.NewConfigurationError("apiKey", "API key is required for provider alchemy")
		}
		subdomain := "eth-holesky"
		if network == registry.Network_Mainnet {
			subdomain = "eth-mainnet"
		}
		return fmt.Sprintf("https://%s.g.alchemy.com/v2/%s", subdomain, apiKey), nil
	case Provider_Infura:
		if apiKey == "" {
			return "", errorTypes.NewConfigurationError("apiKey", "API key is required for provider infura")
		}
		subdomain := "holesky"
		if network == registry.Network_Mainnet {
			subdomain = "mainnet"
		}
		return fmt.Sprintf("https://%s.infura.io/v3/%s", subdomain, apiKey), nil
	case Provider_QuickNode:
		if !strings.HasPrefix(apiKey, "http") {
			return "", errorTypes.NewConfigurationError("apiKey", "QuickNode requires a full endpoint URL as API key")
		}
		return apiKey, nil
	case Provider_Custom:
		if strings.TrimSpace(cred.CustomRpcUrl) == "" {
			return "", errorTypes.NewConfigurationError("customRpcUrl", "Custom RPC URL is required")
		}
		return cred.CustomRpcUrl, nil
	}
	return "", errorTypes.NewConfigurationError("provider", "Unsupported provider: %s", cred.Provider)
}

type ConnectionStatus struct {
	Valid       bool   `json:"valid"`
	ChainId     uint64 `json:"chainId,omitempty"`
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	Error       string `json:"error,omitempty"`
}

// ValidateConnection probes the endpoint with a single batched eth_chainId + eth_blockNumber request.
// It never returns an error; failures are reported in the status.
func ValidateConnection(ctx context.Context, client *Client) *ConnectionStatus {
	responses, err := client.BatchCall(ctx, []*RPCRequest{
		ChainIdRequest(0),
		BlockNumberRequest(1),
	})
	if err != nil {
		return &ConnectionStatus{Valid: false, Error: err.Error()}
	}
	if len(responses) != 2 || responses[0] == nil || responses[1] == nil {
		return &ConnectionStatus{Valid: false, Error: "incomplete response from endpoint"}
	}
	for _, res := range responses {
		if res.Error != nil {
			return &ConnectionStatus{Valid: false, Error: res.Error.Message}
		}
	}
	chainId, err := RPCMethod_ChainId.ResponseParser(responses[0].Result)
	if err != nil {
		return &ConnectionStatus{Valid: false, Error: err.Error()}
	}
	blockNumber, err := RPCMethod_BlockNumber.ResponseParser(responses[1].Result)
	if err != nil {
		return &ConnectionStatus{Valid: false, Error: err.Error()}
	}
	if chainId != client.PinnedChainId() {
		return &ConnectionStatus{
			Valid:       false,
			ChainId:     chainId,
			BlockNumber: blockNumber,
			Error:       fmt.Sprintf("chain id mismatch: endpoint reports %d, expected %d", chainId, client.PinnedChainId()),
		}
	}
	return &ConnectionStatus{Valid: true, ChainId: chainId, BlockNumber: blockNumber}
}
