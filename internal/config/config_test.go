package config_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mechmarket/mech-api/internal/config"
	"github.com/mechmarket/mech-api/internal/constants"
)

func TestLoadChain(t *testing.T) {
	tests := []struct {
		name     string
		chain    string
		wantID   int64
		wantMode config.PaymentMode
	}{
		{name: "gnosis pays native", chain: "gnosis", wantID: 100, wantMode: config.PaymentModeNative},
		{name: "base pays in USDC", chain: "base", wantID: 8453, wantMode: config.PaymentModeToken},
		{name: "chain names are case-insensitive", chain: "  Base ", wantID: 8453, wantMode: config.PaymentModeToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.LoadChain(tt.chain)
			require.NoError(t, err)

			assert.Equal(t, tt.wantID, cfg.ChainID)
			assert.Equal(t, tt.wantMode, cfg.PaymentMode)
			assert.NotEmpty(t, cfg.RPCURL)
			assert.NotEmpty(t, cfg.PlanDID)

			if tt.wantMode == config.PaymentModeToken {
				assert.NotEqual(t, common.Address{}, cfg.TokenAddress)
			} else {
				assert.Equal(t, common.Address{}, cfg.TokenAddress)
			}

			// Every contract role the purchase flow touches must be present.
			for _, name := range []string{
				constants.DIDRegistryContract,
				constants.NVMConfigContract,
				constants.LockPaymentConditionContract,
				constants.TransferNFTConditionContract,
				constants.EscrowPaymentConditionContract,
				constants.AgreementStoreManagerContract,
				constants.NFTSalesTemplateContract,
				constants.NFT1155Contract,
			} {
				addr, err := cfg.ContractAddress(name)
				require.NoError(t, err, name)
				assert.NotEqual(t, common.Address{}, addr, name)
			}
		})
	}
}

func TestLoadChain_Unsupported(t *testing.T) {
	cfg, err := config.LoadChain("mainnet")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported chain")
}

func TestLoadChain_RPCOverride(t *testing.T) {
	t.Setenv("MECH_RPC_URL", "http://localhost:9545")

	cfg, err := config.LoadChain("gnosis")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9545", cfg.RPCURL)
}

func TestLoadChain_CopiesContractTable(t *testing.T) {
	first, err := config.LoadChain("base")
	require.NoError(t, err)
	first.Contracts[constants.DIDRegistryContract] = common.Address{}

	second, err := config.LoadChain("base")
	require.NoError(t, err)
	addr, err := second.ContractAddress(constants.DIDRegistryContract)
	require.NoError(t, err)
	assert.NotEqual(t, common.Address{}, addr)
}

func TestNVMConfig_Amounts(t *testing.T) {
	cfg, err := config.LoadChain("base")
	require.NoError(t, err)

	fee, err := cfg.FeeAmount()
	require.NoError(t, err)
	price, err := cfg.PriceAmount()
	require.NoError(t, err)
	required, err := cfg.RequiredAmount()
	require.NoError(t, err)

	assert.Equal(t, new(big.Int).Add(fee, price), required)

	credits, err := cfg.CreditsAmount()
	require.NoError(t, err)
	assert.True(t, credits.Sign() > 0)
}

func TestNVMConfig_ContractAddress_Unknown(t *testing.T) {
	cfg, err := config.LoadChain("gnosis")
	require.NoError(t, err)

	_, err = cfg.ContractAddress("NoSuchContract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no NoSuchContract contract configured")
}

func TestPaymentMode_String(t *testing.T) {
	assert.Equal(t, "native", config.PaymentModeNative.String())
	assert.Equal(t, "token", config.PaymentModeToken.String())
	assert.Contains(t, config.PaymentMode(7).String(), "unknown")
}
