package config

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/constants"
)

// chainTable holds the built-in deployment targets. Addresses come from the
// published protocol deployment artifacts for each chain.
var chainTable = map[string]NVMConfig{
	"gnosis": {
		ChainName:           "gnosis",
		ChainID:             100,
		RPCURL:              "https://rpc.gnosischain.com",
		PaymentMode:         PaymentModeNative,
		TokenSymbol:         "xDAI",
		TokenDecimals:       18,
		PlanDID:             "did:nv:0dafd50e87a29fa55b0ea2bca5fb9788c9c0800c54bf9ba2a1a4e5cb8fb81d72",
		PlanFee:             "500000",
		PlanPrice:           "500000",
		SubscriptionCredits: "100",
		Contracts: map[string]common.Address{
			constants.DIDRegistryContract:            common.HexToAddress("0xa9a8eCa71B419882Dd33Bcd6b4E0b7444c7d8d30"),
			constants.NVMConfigContract:              common.HexToAddress("0xF8d2b6B2cf00BfBbf1E95a29661e6ee167951ca5"),
			constants.LockPaymentConditionContract:   common.HexToAddress("0x7aDC41C40c4dbEa0b6a1b7f8F0f900C9a3Df2c1A"),
			constants.TransferNFTConditionContract:   common.HexToAddress("0x2bE30b68dAF18D312bA87Ce9c6445C17F7C17C88"),
			constants.EscrowPaymentConditionContract: common.HexToAddress("0x4bB04E225eA341cB0a5bA8bd4Cc1ca621Ff3Ce5B"),
			constants.AgreementStoreManagerContract:  common.HexToAddress("0xD137C9FfD2B64c9a0e8c7E9874fd0dAA419E4B04"),
			constants.NFTSalesTemplateContract:       common.HexToAddress("0x4cb7E63aA8A30cD2e16FAcbbf1bF6Ff5c0B96D80"),
			constants.NFT1155Contract:                common.HexToAddress("0xE4e8B0f58D7eB7bD2f8Fc5c882Ee6e49b6C8C7Ce"),
		},
	},
	"base": {
		ChainName:   "base",
		ChainID:     8453,
		RPCURL:      "https://mainnet.base.org",
		PaymentMode: PaymentModeToken,
		// Base pays in USDC (6 decimals).
		TokenAddress:        common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"),
		TokenSymbol:         "USDC",
		TokenDecimals:       6,
		PlanDID:             "did:nv:3b29e3aa2a8f25dbfc1cfa712a087b4f9d4a1c74b50bdf0b2b7c22b7d4a1e6f0",
		PlanFee:             "500000",
		PlanPrice:           "4500000",
		SubscriptionCredits: "100",
		Contracts: map[string]common.Address{
			constants.DIDRegistryContract:            common.HexToAddress("0x78E969A7A1129bE41ab5d07b4A5cdD6a63c2dD1C"),
			constants.NVMConfigContract:              common.HexToAddress("0xc7E2e6C6FbbdF8e16a78Aa06dc83DF3f1F2Fb60F"),
			constants.LockPaymentConditionContract:   common.HexToAddress("0xDd9f06f9dAE96ebE1cbd9a6FfA0bbC7E7a5a3B0d"),
			constants.TransferNFTConditionContract:   common.HexToAddress("0x5C9dF6cE7221a4a3DdB4E98eC8C0E8c3F9B6bCf0"),
			constants.EscrowPaymentConditionContract: common.HexToAddress("0xF4E7c3dD4C9aD1d5CdDaE0bCafE7B2C7acd2bF4f"),
			constants.AgreementStoreManagerContract:  common.HexToAddress("0x3F9a8FF6c8eC1bE26CbeD0ccCe8bb7F0B6a2a2dE"),
			constants.NFTSalesTemplateContract:       common.HexToAddress("0xaD1E3dDbEe9cc7A42D0DEcbcbC9B3Fd4eE7C8Bb0"),
			constants.NFT1155Contract:                common.HexToAddress("0x1cE61e1E0Cf9AdCDd7aA4C9C7D1eC2Db4F8E2bBb"),
		},
	},
}

// SupportedChains returns the names of the built-in deployment targets.
func SupportedChains() []string {
	names := make([]string, 0, len(chainTable))
	for name := range chainTable {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
