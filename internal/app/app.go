package app

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/mechmarket/mech-api/internal/chain"
	"github.com/mechmarket/mech-api/internal/config"
	"github.com/mechmarket/mech-api/internal/constants"
	"github.com/mechmarket/mech-api/internal/contracts"
	"github.com/mechmarket/mech-api/internal/interfaces"
	"github.com/mechmarket/mech-api/internal/logger"
	"github.com/mechmarket/mech-api/internal/services"
)

// Application holds the wired dependencies shared by the API server and the
// one-shot purchase command.
type Application struct {
	Config        *config.NVMConfig
	Chain         *chain.Client
	Contracts     *contracts.Set
	Subscriptions *services.SubscriptionService
	logger        *zap.Logger
}

// Bootstrap reads MECH_CHAIN and MECH_PRIVATE_KEY from the environment,
// connects to the chain, binds the contract set, and wires the full service
// stack for one sender.
func Bootstrap(ctx context.Context) (*Application, error) {
	chainName := os.Getenv("MECH_CHAIN")
	if chainName == "" {
		return nil, fmt.Errorf("MECH_CHAIN environment variable is required (one of %v)", config.SupportedChains())
	}

	rawKey := os.Getenv("MECH_PRIVATE_KEY")
	if rawKey == "" {
		return nil, fmt.Errorf("MECH_PRIVATE_KEY environment variable is required")
	}
	key, err := crypto.HexToECDSA(rawKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse MECH_PRIVATE_KEY: %w", err)
	}

	cfg, err := config.LoadChain(chainName)
	if err != nil {
		return nil, err
	}

	client, err := chain.Dial(ctx, cfg.RPCURL, cfg.ChainID)
	if err != nil {
		return nil, err
	}

	set, err := contracts.NewSet(cfg, client.Eth())
	if err != nil {
		client.Close()
		return nil, err
	}

	executor := chain.NewTxExecutor(client.Eth(), set, client.ChainID(), key)
	waiter := chain.NewReceiptWaiter(client.Eth(), 0, 0)
	sender := executor.Sender()

	nftAddress, err := cfg.ContractAddress(constants.NFT1155Contract)
	if err != nil {
		client.Close()
		return nil, err
	}
	lockAddress, err := cfg.ContractAddress(constants.LockPaymentConditionContract)
	if err != nil {
		client.Close()
		return nil, err
	}

	agreements := services.NewAgreementService(
		cfg,
		set.DIDRegistry,
		set.NVMConfig,
		set.LockCondition,
		set.TransferNFT,
		set.EscrowPayment,
		set.AgreementStore,
		nftAddress,
		sender,
	)
	fulfillments := services.NewFulfillmentService()

	// A nil *ERC20Contract must stay a nil interface for the native path.
	var token interfaces.ERC20Token
	if set.Token != nil {
		token = set.Token
	}
	balances := services.NewBalanceService(cfg, client, token, sender)

	subscriptions := services.NewSubscriptionService(
		cfg,
		agreements,
		fulfillments,
		balances,
		executor,
		waiter,
		set.NFTCredits,
		lockAddress,
		sender,
	)

	logger.Info("Application wired",
		zap.String("chain", cfg.ChainName),
		zap.String("sender", sender.Hex()),
		zap.String("payment_mode", cfg.PaymentMode.String()),
	)

	return &Application{
		Config:        cfg,
		Chain:         client,
		Contracts:     set,
		Subscriptions: subscriptions,
		logger:        logger.Log,
	}, nil
}

// Close releases the chain connection.
func (a *Application) Close() {
	a.Chain.Close()
}
