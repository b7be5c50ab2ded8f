// Package signatures builds and signs the EIP-712 payloads EigenLayer contracts verify.
package signatures

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"
)

const (
	DomainName    = "EigenLayer"
	DomainVersion = "1"

	eip712DomainType = "EIP712Domain"
)

var (
	DelegationApprovalTypes = apitypes.Types{
		"DelegationApproval": {
			{Name: "delegationApprover", Type: "address"},
			{Name: "staker", Type: "address"},
			{Name: "operator", Type: "address"},
			{Name: "salt", Type: "bytes32"},
			{Name: "expiry", Type: "uint256"},
		},
	}
	StakerDelegationTypes = apitypes.Types{
		"StakerDelegation": {
			{Name: "staker", Type: "address"},
			{Name: "operator", Type: "address"},
			{Name: "nonce", Type: "uint256"},
			{Name: "expiry", Type: "uint256"},
		},
	}
	DepositTypes = apitypes.Types{
		"Deposit": {
			{Name: "staker", Type: "address"},
			{Name: "strategy", Type: "address"},
			{Name: "token", Type: "address"},
			{Name: "amount", Type: "uint256"},
			{Name: "nonce", Type: "uint256"},
			{Name: "expiry", Type: "uint256"},
		},
	}
	OperatorAVSRegistrationTypes = apitypes.Types{
		"OperatorAVSRegistration": {
			{Name: "operator", Type: "address"},
			{Name: "avs", Type: "address"},
			{Name: "salt", Type: "bytes32"},
			{Name: "expiry", Type: "uint256"},
		},
	}
)

// TypedDataSigner produces a 65-byte signature (v in {27, 28}) over EIP-712 typed data.
type TypedDataSigner interface {
	SignTypedData(typedData apitypes.TypedData) ([]byte, error)
}

func CreateDomain(chainId uint64, verifyingContract common.Address) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              DomainName,
		Version:           DomainVersion,
		ChainId:           math.NewHexOrDecimal256(int64(chainId)),
		VerifyingContract: verifyingContract.Hex(),
	}
}

// domainType derives the EIP712Domain type from the fields that are set.
func domainType(domain apitypes.TypedDataDomain) []apitypes.Type {
	fields := make([]apitypes.Type, 0, 5)
	if domain.Name != "" {
		fields = append(fields, apitypes.Type{Name: "name", Type: "string"})
	}
	if domain.Version != "" {
		fields = append(fields, apitypes.Type{Name: "version", Type: "string"})
	}
	if domain.ChainId != nil {
		fields = append(fields, apitypes.Type{Name: "chainId", Type: "uint256"})
	}
	if domain.VerifyingContract != "" {
		fields = append(fields, apitypes.Type{Name: "verifyingContract", Type: "address"})
	}
	if domain.Salt != "" {
		fields = append(fields, apitypes.Type{Name: "salt", Type: "bytes32"})
	}
	return fields
}

// primaryType is the one type no other type references.
func primaryType(types apitypes.Types) (string, error) {
	referenced := make(map[string]bool)
	for _, fields := range types {
		for _, f := range fields {
			referenced[strings.Split(f.Type, "[")[0]] = true
		}
	}
	candidates := make([]string, 0, 1)
	for name := range types {
		if !referenced[name] {
			candidates = append(candidates, name)
		}
	}
	if len(candidates) != 1 {
		return "", errorTypes.NewValidationError("types", "Ambiguous primary type: %v", candidates)
	}
	return candidates[0], nil
}

// BuildTypedData assembles a typed-data payload. Any EIP712Domain entry in types is replaced by
// one derived from domain.
func BuildTypedData(domain apitypes.TypedDataDomain, types apitypes.Types, message apitypes.TypedDataMessage) (apitypes.TypedData, error) {
	clean := make(apitypes.Types, len(types)+1)
	for name, fields := range types {
		if name == eip712DomainType {
			continue
		}
		clean[name] = fields
	}
	primary, err := primaryType(clean)
	if err != nil {
		return apitypes.TypedData{}, err
	}
	clean[eip712DomainType] = domainType(domain)
	return apitypes.TypedData{
		Types:       clean,
		PrimaryType: primary,
		Domain:      domain,
		Message:     message,
	}, nil
}

// SignTypedData signs message under domain and returns the 0x-hex signature.
func SignTypedData(signer TypedDataSigner, domain apitypes.TypedDataDomain, types apitypes.Types, message apitypes.TypedDataMessage) (string, error) {
	td, err := BuildTypedData(domain, types, message)
	if err != nil {
		return "", err
	}
	sig, err := signer.SignTypedData(td)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(sig), nil
}

// VerifyTypedDataSignature recovers the address that produced signature over typedData.
func VerifyTypedDataSignature(typedData apitypes.TypedData, signature string) (common.Address, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return common.Address{}, errorTypes.NewValidationError("signature", "Invalid signature: %s", signature)
	}
	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return common.Address{}, errors.Wrap(err, "failed to hash typed data")
	}
	if sig[64] >= 27 {
		sig[64] -= 27
	}
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// GenerateSalt returns 32 random bytes as 0x-hex.
func GenerateSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hexutil.Encode(b), nil
}

// CalculateExpiry returns a unix timestamp hours from now; hours <= 0 uses 24.
func CalculateExpiry(hours int) *big.Int {
	if hours <= 0 {
		hours = 24
	}
	return big.NewInt(time.Now().Add(time.Duration(hours) * time.Hour).Unix())
}

type SignatureWithExpiry struct {
	Signature string   `json:"signature"`
	Expiry    *big.Int `json:"expiry"`
}

func EmptySignature() *SignatureWithExpiry {
	return &SignatureWithExpiry{Signature: "0x", Expiry: big.NewInt(0)}
}

// ContractSignatureWithExpiry is the ABI shape of ISignatureUtils.SignatureWithExpiry.
type ContractSignatureWithExpiry struct {
	Signature []byte
	Expiry    *big.Int
}

// ContractSignatureWithSaltAndExpiry is the ABI shape of ISignatureUtils.SignatureWithSaltAndExpiry.
type ContractSignatureWithSaltAndExpiry struct {
	Signature []byte
	Salt      [32]byte
	Expiry    *big.Int
}

// ToContract converts a hex signature for contract calls. An empty signature encodes as empty bytes.
func (s *SignatureWithExpiry) ToContract() (ContractSignatureWithExpiry, error) {
	out := ContractSignatureWithExpiry{Signature: []byte{}, Expiry: big.NewInt(0)}
	if s == nil {
		return out, nil
	}
	if s.Signature != "" && s.Signature != "0x" {
		b, err := hexutil.Decode(s.Signature)
		if err != nil {
			return out, errorTypes.NewValidationError("signature", "Invalid signature: %s", s.Signature)
		}
		out.Signature = b
	}
	if s.Expiry != nil {
		out.Expiry = s.Expiry
	}
	return out, nil
}

// ParseSalt decodes a 0x-hex bytes32 salt.
func ParseSalt(salt string) ([32]byte, error) {
	var out [32]byte
	b, err := hexutil.Decode(salt)
	if err != nil || len(b) != 32 {
		return out, errorTypes.NewValidationError("salt", "Invalid salt: %s", salt)
	}
	copy(out[:], b)
	return out, nil
}
