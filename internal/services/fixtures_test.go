package services_test

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/config"
	"github.com/mechmarket/mech-api/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

var (
	testPlanHex = strings.Repeat("ab", 32)
	testPlanDID = "did:nv:" + testPlanHex

	testSender      = common.HexToAddress("0x1000000000000000000000000000000000000001")
	testPlanOwner   = common.HexToAddress("0x2000000000000000000000000000000000000002")
	testFeeReceiver = common.HexToAddress("0x3000000000000000000000000000000000000003")
	testNFTAddress  = common.HexToAddress("0x4000000000000000000000000000000000000004")
	testEscrowAddr  = common.HexToAddress("0x5000000000000000000000000000000000000005")
	testLockAddr    = common.HexToAddress("0x6000000000000000000000000000000000000006")
	testTokenAddr   = common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913")
)

// tokenTestConfig mirrors an ERC-20 settlement chain: 0.5 USDC fee plus
// 4.5 USDC price for 100 credits.
func tokenTestConfig() *config.NVMConfig {
	return &config.NVMConfig{
		ChainName:           "base",
		ChainID:             8453,
		RPCURL:              "http://localhost:8545",
		PaymentMode:         config.PaymentModeToken,
		TokenAddress:        testTokenAddr,
		TokenSymbol:         "USDC",
		TokenDecimals:       6,
		PlanDID:             testPlanDID,
		PlanFee:             "500000",
		PlanPrice:           "4500000",
		SubscriptionCredits: "100",
	}
}

// nativeTestConfig mirrors a native settlement chain.
func nativeTestConfig() *config.NVMConfig {
	return &config.NVMConfig{
		ChainName:           "gnosis",
		ChainID:             100,
		RPCURL:              "http://localhost:8545",
		PaymentMode:         config.PaymentModeNative,
		TokenSymbol:         "xDAI",
		TokenDecimals:       18,
		PlanDID:             testPlanDID,
		PlanFee:             "500000",
		PlanPrice:           "500000",
		SubscriptionCredits: "100",
	}
}
