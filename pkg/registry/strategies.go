package registry

import (
	"strings"
)

type StrategyInfo struct {
	Key             string
	Name            string
	Symbol          string
	Address         string
	UnderlyingToken string
	Decimals        uint8
}

var mainnetStrategies = []*StrategyInfo{
	{Key: "stETH", Name: "Lido Staked ETH Strategy", Symbol: "stETH", Address: "0x93c4b944D05dfe6df7645A86cd2206016c51564D", UnderlyingToken: "0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84", Decimals: 18},
	{Key: "rETH", Name: "Rocket Pool ETH Strategy", Symbol: "rETH", Address: "0x1BeE69b7dFFfA4E2d53C2a2Df135C388AD25dCD2", UnderlyingToken: "0xae78736Cd615f374D3085123A210448E74Fc6393", Decimals: 18},
	{Key: "cbETH", Name: "Coinbase Wrapped Staked ETH Strategy", Symbol: "cbETH", Address: "0x54945180dB7943c0ed0FEE7EdaB2Bd24620256bc", UnderlyingToken: "0xBe9895146f7AF43049ca1c1AE358B0541Ea49704", Decimals: 18},
	{Key: "wBETH", Name: "Wrapped Binance Beacon ETH Strategy", Symbol: "wBETH", Address: "0x7CA911E83dabf90C90dD3De5411a10F1A6112184", UnderlyingToken: "0xa2E3356610840701BDf5611a53974510Ae27E2e1", Decimals: 18},
	{Key: "osETH", Name: "StakeWise ETH Strategy", Symbol: "osETH", Address: "0x57ba429517c3473B6d34CA9aCd56c0e735b94c02", UnderlyingToken: "0xf1C9acDc66974dFB6dEcB12aA385b9cD01190E38", Decimals: 18},
	{Key: "swETH", Name: "Swell ETH Strategy", Symbol: "swETH", Address: "0x0Fe4F44beE93503346A3Ac9EE5A26b130a5796d6", UnderlyingToken: "0xf951E335afb289353dc249e82926178EaC7DEd78", Decimals: 18},
	{Key: "AnkrETH", Name: "Ankr Staked ETH Strategy", Symbol: "ankrETH", Address: "0x13760F50a9d7377e4F20CB8CF9e4c26586c658ff", UnderlyingToken: "0xE95A203B1a91a908F9B9CE46459d101078c2c3cb", Decimals: 18},
	{Key: "OETH", Name: "Origin ETH Strategy", Symbol: "OETH", Address: "0xa4C637e0F704745D182e4D38cAb7E7485321d059", UnderlyingToken: "0x856c4Efb76C1D1AE02e20CEB03A2A6a08b0b8dC3", Decimals: 18},
	{Key: "sfrxETH", Name: "Frax Staked ETH Strategy", Symbol: "sfrxETH", Address: "0x8CA7A5d6f3acd3A7A8bC468a8CD0FB14B6BD28b6", UnderlyingToken: "0xac3E018457B222d93114458476f3E3416Abbe38F", Decimals: 18},
	{Key: "lsETH", Name: "Liquid Staked ETH Strategy", Symbol: "lsETH", Address: "0xAe60d8180437b5C34bB956822ac2710972584473", UnderlyingToken: "0x8c1BEd5b9a0928467c9B1341Da1D7BD5e10b6549", Decimals: 18},
	{Key: "mETH", Name: "Mantle Staked ETH Strategy", Symbol: "mETH", Address: "0x298aFB19A105D59E74658C4C334Ff360BadE6dd2", UnderlyingToken: "0xd5F7838F5C461fefF7FE49ea5ebaF7728bB0ADfa", Decimals: 18},
	{Key: "EIGEN", Name: "EIGEN Token Strategy", Symbol: "EIGEN", Address: "0xaCB55C530Acdb2849e6d4f36992Cd8c9D50ED8F7", UnderlyingToken: "0xec53bF9167f50cDEB3Ae105f56099aaaB9061F83", Decimals: 18},
}

// holesky strategies are not catalogued; lookups fall back to on-chain reads.
var strategiesByNetwork = map[Network][]*StrategyInfo{
	Network_Mainnet: mainnetStrategies,
	Network_Holesky: {},
}

func GetStrategies(n string) ([]*StrategyInfo, error) {
	network, err := ParseNetwork(n)
	if err != nil {
		return nil, err
	}
	return strategiesByNetwork[network], nil
}

// FindStrategyByAddress returns nil when the strategy is not catalogued for the network.
func FindStrategyByAddress(n string, address string) *StrategyInfo {
	strategies, err := GetStrategies(n)
	if err != nil {
		return nil
	}
	for _, s := range strategies {
		if strings.EqualFold(s.Address, address) {
			return s
		}
	}
	return nil
}
