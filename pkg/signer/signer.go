package signer

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/Layr-Labs/eigenops/pkg/errorTypes"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

type SigningMethod string

const (
	SigningMethod_PrivateKey SigningMethod = "privateKey"
	SigningMethod_Mnemonic   SigningMethod = "mnemonic"
)

const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// SigningCredential carries exactly one secret, selected by Method.
type SigningCredential struct {
	Method         SigningMethod `mapstructure:"method"`
	PrivateKey     string        `mapstructure:"privateKey"`
	Mnemonic       string        `mapstructure:"mnemonic"`
	DerivationPath string        `mapstructure:"derivationPath"`
}

// Backend is the slice of the provider a signer needs for nonce, balance and chain id.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

type Signer struct {
	key     *ecdsa.PrivateKey
	address common.Address
	backend Backend
	chainId *big.Int
}

// CreateSigner builds a signing identity bound to backend.
func CreateSigner(ctx context.Context, cred *SigningCredential, backend Backend) (*Signer, error) {
	if cred == nil {
		return nil, errorTypes.NewConfigurationError("credential", "Signing credential is required")
	}
	key, err := privateKeyFromCredential(cred)
	if err != nil {
		return nil, err
	}
	chainId, err := backend.ChainID(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve chain id")
	}
	return &Signer{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		backend: backend,
		chainId: chainId,
	}, nil
}

func privateKeyFromCredential(cred *SigningCredential) (*ecdsa.PrivateKey, error) {
	method := cred.Method
	if method == "" {
		method = SigningMethod_PrivateKey
	}
	switch method {
	case SigningMethod_PrivateKey:
		return ParsePrivateKey(cred.PrivateKey)
	case SigningMethod_Mnemonic:
		return DeriveFromMnemonic(cred.Mnemonic, cred.DerivationPath)
	}
	return nil, errorTypes.NewConfigurationError("method", "Unsupported signing method: %s", cred.Method)
}

// NormalizePrivateKey adds the 0x prefix when it is missing.
func NormalizePrivateKey(pk string) string {
	pk = strings.TrimSpace(pk)
	if !strings.HasPrefix(pk, "0x") && !strings.HasPrefix(pk, "0X") {
		return "0x" + pk
	}
	return pk
}

func ParsePrivateKey(pk string) (*ecdsa.PrivateKey, error) {
	if strings.TrimSpace(pk) == "" {
		return nil, errorTypes.NewConfigurationError("privateKey", "Private key is required")
	}
	normalized := NormalizePrivateKey(pk)
	key, err := crypto.HexToECDSA(normalized[2:])
	if err != nil {
		return nil, errorTypes.NewConfigurationError("privateKey", "Invalid private key: %v", err)
	}
	return key, nil
}

// DeriveFromMnemonic derives a BIP-32 key from a BIP-39 mnemonic. An empty path uses the first Ethereum account.
func DeriveFromMnemonic(mnemonic string, path string) (*ecdsa.PrivateKey, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if mnemonic == "" {
		return nil, errorTypes.NewConfigurationError("mnemonic", "Mnemonic is required")
	}
	if path == "" {
		path = DefaultDerivationPath
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, errorTypes.NewConfigurationError("mnemonic", "Invalid mnemonic: %v", err)
	}
	derivationPath, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, errorTypes.NewConfigurationError("derivationPath", "Invalid derivation path: %v", err)
	}

	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}
	for _, index := range derivationPath {
		key, err = key.Derive(index)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to derive index %d", index)
		}
	}
	ecPriv, err := key.ECPrivKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to extract private key")
	}
	return crypto.ToECDSA(ecPriv.Serialize())
}

func (s *Signer) Address() common.Address {
	return s.address
}

func (s *Signer) ChainId() *big.Int {
	return new(big.Int).Set(s.chainId)
}

func (s *Signer) GetNonce(ctx context.Context) (uint64, error) {
	return s.backend.PendingNonceAt(ctx, s.address)
}

func (s *Signer) GetBalance(ctx context.Context) (*big.Int, error) {
	return s.backend.BalanceAt(ctx, s.address, nil)
}

type BalanceCheckOptions struct {
	IncludeGas bool
	GasLimit   uint64
	GasPrice   *big.Int
}

type BalanceCheck struct {
	Sufficient bool
	Balance    *big.Int
	Required   *big.Int
}

// ValidateSignerBalance compares the balance against required (plus gasLimit*gasPrice when IncludeGas).
// Insufficiency is reported in the result, not as an error.
func (s *Signer) ValidateSignerBalance(ctx context.Context, required *big.Int, opts *BalanceCheckOptions) (*BalanceCheck, error) {
	balance, err := s.GetBalance(ctx)
	if err != nil {
		return nil, err
	}
	total := new(big.Int)
	if required != nil {
		total.Set(required)
	}
	if opts != nil && opts.IncludeGas && opts.GasPrice != nil {
		gasCost := new(big.Int).Mul(new(big.Int).SetUint64(opts.GasLimit), opts.GasPrice)
		total.Add(total, gasCost)
	}
	return &BalanceCheck{
		Sufficient: balance.Cmp(total) >= 0,
		Balance:    balance,
		Required:   total,
	}, nil
}

// TransactOpts returns EIP-155 transaction options for the pinned chain id.
func (s *Signer) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, s.chainId)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// SignHash signs a 32-byte digest and returns a 65-byte signature with v in {27, 28}.
func (s *Signer) SignHash(hash []byte) ([]byte, error) {
	sig, err := crypto.Sign(hash, s.key)
	if err != nil {
		return nil, err
	}
	sig[64] += 27
	return sig, nil
}

// SignTypedData signs the EIP-712 digest of typedData.
func (s *Signer) SignTypedData(typedData apitypes.TypedData) ([]byte, error) {
	hash, _, err := apitypes.TypedDataAndHash(typedData)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash typed data")
	}
	return s.SignHash(hash)
}
