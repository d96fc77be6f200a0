package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/config"
	"github.com/mechmarket/mech-api/internal/helpers"
	"github.com/mechmarket/mech-api/internal/interfaces"
	"github.com/mechmarket/mech-api/internal/logger"
	"github.com/mechmarket/mech-api/internal/types/business"
	"go.uber.org/zap"
)

// AgreementService assembles the full commitment bundle for one purchase
// attempt. Every hash and identifier is fetched from the deployed contracts
// rather than computed locally, so the settlement call's on-chain equality
// checks see exactly the values recorded here.
type AgreementService struct {
	cfg               *config.NVMConfig
	registry          interfaces.DIDRegistry
	nvmConfig         interfaces.NVMConfigReader
	lockCondition     interfaces.LockPaymentCondition
	transferCondition interfaces.TransferNFTCondition
	escrowCondition   interfaces.EscrowPaymentCondition
	agreementStore    interfaces.AgreementStoreManager
	nftAddress        common.Address
	sender            common.Address
	logger            *zap.Logger
}

// NewAgreementService creates a new agreement service for one chain and
// sender.
func NewAgreementService(
	cfg *config.NVMConfig,
	registry interfaces.DIDRegistry,
	nvmConfig interfaces.NVMConfigReader,
	lockCondition interfaces.LockPaymentCondition,
	transferCondition interfaces.TransferNFTCondition,
	escrowCondition interfaces.EscrowPaymentCondition,
	agreementStore interfaces.AgreementStoreManager,
	nftAddress common.Address,
	sender common.Address,
) *AgreementService {
	return &AgreementService{
		cfg:               cfg,
		registry:          registry,
		nvmConfig:         nvmConfig,
		lockCondition:     lockCondition,
		transferCondition: transferCondition,
		escrowCondition:   escrowCondition,
		agreementStore:    agreementStore,
		nftAddress:        nftAddress,
		sender:            sender,
		logger:            logger.Log,
	}
}

// BuildAgreement derives a fresh AgreementData for the plan. The step order
// is load-bearing: the agreement ID depends on the seed, each condition ID
// depends on the agreement ID and the previous condition's ID, so nothing
// here can be reordered or parallelized.
func (s *AgreementService) BuildAgreement(ctx context.Context, planDID string) (*business.AgreementData, error) {
	did, err := helpers.NormalizeDID(planDID)
	if err != nil {
		return nil, err
	}

	ddo, err := s.registry.GetDDO(ctx, did)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve DDO for %s: %w", planDID, err)
	}

	feeReceiver, err := s.nvmConfig.FeeReceiver(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch marketplace fee receiver: %w", err)
	}
	if feeReceiver == (common.Address{}) {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("marketplace fee receiver is unset on chain %s; the config contract is misconfigured", s.cfg.ChainName)}
	}

	// Order fixed: [fee receiver, plan receiver] matches the positional
	// [fee, price] amounts split on-chain.
	receivers := [2]common.Address{feeReceiver, ddo.Owner}

	fee, err := s.cfg.FeeAmount()
	if err != nil {
		return nil, err
	}
	price, err := s.cfg.PriceAmount()
	if err != nil {
		return nil, err
	}
	amounts := [2]*big.Int{fee, price}

	credits, err := s.cfg.CreditsAmount()
	if err != nil {
		return nil, err
	}

	seed, err := newAgreementSeed()
	if err != nil {
		return nil, err
	}

	agreementID, err := s.agreementStore.AgreementID(ctx, seed, s.sender)
	if err != nil {
		return nil, fmt.Errorf("failed to derive agreement ID: %w", err)
	}

	rewardAddress := s.escrowCondition.Address()

	lockHash, err := s.lockCondition.HashValues(ctx, did, rewardAddress, s.cfg.TokenAddress, amounts, receivers)
	if err != nil {
		return nil, fmt.Errorf("failed to hash lock condition: %w", err)
	}
	lockID, err := s.lockCondition.GenerateID(ctx, agreementID, lockHash)
	if err != nil {
		return nil, fmt.Errorf("failed to derive lock condition ID: %w", err)
	}

	transferHash, err := s.transferCondition.HashValues(ctx, did, ddo.Owner, s.sender, credits, lockID, s.nftAddress, false)
	if err != nil {
		return nil, fmt.Errorf("failed to hash transfer condition: %w", err)
	}
	transferID, err := s.transferCondition.GenerateID(ctx, agreementID, transferHash)
	if err != nil {
		return nil, fmt.Errorf("failed to derive transfer condition ID: %w", err)
	}

	escrowHash, err := s.escrowCondition.HashValues(ctx, did, amounts, receivers, s.sender, rewardAddress, s.cfg.TokenAddress, lockID, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to hash escrow condition: %w", err)
	}
	escrowID, err := s.escrowCondition.GenerateID(ctx, agreementID, escrowHash)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow condition ID: %w", err)
	}

	agreement := &business.AgreementData{
		Seed:          seed,
		ID:            agreementID,
		DID:           did,
		DDO:           ddo,
		LockHash:      lockHash,
		TransferHash:  transferHash,
		EscrowHash:    escrowHash,
		LockID:        lockID,
		TransferID:    transferID,
		EscrowID:      escrowID,
		Timelocks:     business.DefaultTimelocks(),
		Timeouts:      business.DefaultTimeouts(),
		RewardAddress: rewardAddress,
		Receivers:     receivers,
		Amounts:       amounts,
		TokenAddress:  s.cfg.TokenAddress,
		NFTAddress:    s.nftAddress,
		Sender:        s.sender,
		Credits:       credits,
	}

	s.logger.Info("Built subscription agreement",
		zap.String("agreement_id", agreementID.Hex()),
		zap.String("did", did.Hex()),
		zap.String("lock_id", lockID.Hex()),
		zap.String("transfer_id", transferID.Hex()),
		zap.String("escrow_id", escrowID.Hex()),
	)

	return agreement, nil
}

// newAgreementSeed draws 256 bits from the OS CSPRNG. Seeds are freshness
// nonces: never reused, never derived from anything predictable.
func newAgreementSeed() (common.Hash, error) {
	var seed common.Hash
	if _, err := rand.Read(seed[:]); err != nil {
		return common.Hash{}, fmt.Errorf("failed to generate agreement seed: %w", err)
	}
	return seed, nil
}
