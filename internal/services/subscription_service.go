package services

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"
	"github.com/mechmarket/mech-api/internal/config"
	"github.com/mechmarket/mech-api/internal/constants"
	"github.com/mechmarket/mech-api/internal/helpers"
	"github.com/mechmarket/mech-api/internal/interfaces"
	"github.com/mechmarket/mech-api/internal/logger"
	"github.com/mechmarket/mech-api/internal/types/business"
	"go.uber.org/zap"
)

// AgreementBuilder defines what the subscription service needs from the
// agreement service (narrowed to avoid coupling tests to the full type).
type AgreementBuilder interface {
	BuildAgreement(ctx context.Context, planDID string) (*business.AgreementData, error)
}

// FulfillmentBuilder defines what the subscription service needs from the
// fulfillment service.
type FulfillmentBuilder interface {
	BuildFulfillment(agreement *business.AgreementData) (*business.FulfillmentData, error)
}

// BalanceChecker defines what the subscription service needs from the
// balance service.
type BalanceChecker interface {
	CheckBalance(ctx context.Context) error
}

// SubscriptionService drives the ordered purchase sequence:
// balance check -> [token approval] -> agreement creation -> fulfillment.
// Each transaction is submitted and its receipt awaited before the next one
// is even built, because each step depends on chain state the previous step
// committed.
type SubscriptionService struct {
	cfg          *config.NVMConfig
	agreements   AgreementBuilder
	fulfillments FulfillmentBuilder
	balances     BalanceChecker
	executor     interfaces.TransactionExecutor
	waiter       interfaces.ReceiptWaiter
	credits      interfaces.NFTCredits
	// lockAddress is the lock payment condition, the spender token
	// approvals are granted to.
	lockAddress common.Address
	sender      common.Address
	logger      *zap.Logger
}

// NewSubscriptionService creates the purchase orchestrator.
func NewSubscriptionService(
	cfg *config.NVMConfig,
	agreements AgreementBuilder,
	fulfillments FulfillmentBuilder,
	balances BalanceChecker,
	executor interfaces.TransactionExecutor,
	waiter interfaces.ReceiptWaiter,
	credits interfaces.NFTCredits,
	lockAddress common.Address,
	sender common.Address,
) *SubscriptionService {
	return &SubscriptionService{
		cfg:          cfg,
		agreements:   agreements,
		fulfillments: fulfillments,
		balances:     balances,
		executor:     executor,
		waiter:       waiter,
		credits:      credits,
		lockAddress:  lockAddress,
		sender:       sender,
		logger:       logger.Log,
	}
}

// PurchaseSubscription executes one complete purchase attempt for the plan.
// On any failure the sequence halts where it stands: transactions already
// mined stay mined, and the returned error names the failing step and
// transaction hash so an operator can inspect chain state.
func (s *SubscriptionService) PurchaseSubscription(ctx context.Context, planDID string) (*business.PurchaseResult, error) {
	attemptID := uuid.New()
	log := s.logger.With(
		zap.String("attempt_id", attemptID.String()),
		zap.String("plan_did", planDID),
		zap.String("chain", s.cfg.ChainName),
	)
	log.Info("Starting subscription purchase")

	if err := s.balances.CheckBalance(ctx); err != nil {
		return nil, err
	}

	agreement, err := s.agreements.BuildAgreement(ctx, planDID)
	if err != nil {
		return nil, err
	}

	creditsBefore, err := s.credits.BalanceOf(ctx, s.sender, agreement.DID)
	if err != nil {
		return nil, fmt.Errorf("failed to read credit balance before purchase: %w", err)
	}

	required := agreement.TotalAmount()

	var approvalTxHash common.Hash
	if s.cfg.PaymentMode == config.PaymentModeToken {
		// An unapproved token cannot fund the lock condition, so the
		// approval receipt must land before agreement creation is submitted.
		approvalTxHash, err = s.submitAndWait(ctx, log, constants.ApprovalStep,
			constants.ERC20Contract, "approve",
			[]interface{}{s.lockAddress, required}, nil)
		if err != nil {
			return nil, err
		}
	}

	// Native chains carry the payment as transaction value on creation;
	// token chains already funded it via the approved allowance.
	var createValue *big.Int
	if s.cfg.PaymentMode == config.PaymentModeNative {
		createValue = required
	}

	createTxHash, err := s.submitAndWait(ctx, log, constants.AgreementCreationStep,
		constants.NFTSalesTemplateContract, "createAgreementAndPayEscrow",
		createAgreementArgs(agreement), createValue)
	if err != nil {
		return nil, err
	}

	fulfillment, err := s.fulfillments.BuildFulfillment(agreement)
	if err != nil {
		return nil, err
	}

	fulfillTxHash, err := s.submitAndWait(ctx, log, constants.FulfillmentStep,
		constants.NFTSalesTemplateContract, "fulfill",
		[]interface{}{fulfillment.AgreementID, fulfillment.DID, fulfillment.FulfillForDelegate, fulfillment.Fulfill}, nil)
	if err != nil {
		return nil, err
	}

	creditsAfter, err := s.credits.BalanceOf(ctx, s.sender, agreement.DID)
	if err != nil {
		return nil, fmt.Errorf("failed to read credit balance after purchase: %w", err)
	}

	result := &business.PurchaseResult{
		AttemptID:       attemptID,
		Status:          constants.PurchasedStatus,
		AgreementID:     agreement.ID.Hex(),
		PlanDID:         planDID,
		AgreementTxHash: createTxHash.Hex(),
		FulfillTxHash:   fulfillTxHash.Hex(),
		CreditsBefore:   creditsBefore,
		CreditsAfter:    creditsAfter,
	}
	if approvalTxHash != (common.Hash{}) {
		result.ApprovalTxHash = approvalTxHash.Hex()
	}

	log.Info("Subscription purchase complete",
		zap.String("agreement_id", result.AgreementID),
		zap.String("agreement_tx", result.AgreementTxHash),
		zap.String("fulfill_tx", result.FulfillTxHash),
		zap.String("credits_before", creditsBefore.String()),
		zap.String("credits_after", creditsAfter.String()),
	)

	return result, nil
}

// CreditBalance reads the sender's current credit balance for the
// configured plan.
func (s *SubscriptionService) CreditBalance(ctx context.Context) (*business.CreditBalance, error) {
	did, err := helpers.NormalizeDID(s.cfg.PlanDID)
	if err != nil {
		return nil, err
	}

	credits, err := s.credits.BalanceOf(ctx, s.sender, did)
	if err != nil {
		return nil, fmt.Errorf("failed to read credit balance: %w", err)
	}

	return &business.CreditBalance{
		PlanDID: s.cfg.PlanDID,
		Sender:  s.sender.Hex(),
		Credits: credits,
	}, nil
}

// submitAndWait runs one step of the sequence: submit, await the receipt,
// treat anything but success status as fatal.
func (s *SubscriptionService) submitAndWait(ctx context.Context, log *zap.Logger, step, contract, method string, args []interface{}, value *big.Int) (common.Hash, error) {
	txHash, err := s.executor.ExecuteTransaction(ctx, contract, method, args, interfaces.TxArgs{
		Sender: s.sender,
		Value:  value,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to submit %s transaction: %w", step, err)
	}

	receipt, err := s.waiter.WaitForReceipt(ctx, txHash)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed awaiting %s transaction %s: %w", step, txHash.Hex(), err)
	}
	if receipt.Status != coretypes.ReceiptStatusSuccessful {
		return common.Hash{}, &TransactionFailedError{Step: step, TxHash: txHash}
	}

	log.Info("Purchase step confirmed",
		zap.String("step", step),
		zap.String("tx_hash", txHash.Hex()),
	)
	return txHash, nil
}

// createAgreementArgs renders the createAgreementAndPayEscrow argument list
// in ABI order. Condition seeds are the parameter hashes; the contract
// re-derives the condition IDs itself.
func createAgreementArgs(agreement *business.AgreementData) []interface{} {
	hashes := agreement.ConditionHashes()
	return []interface{}{
		agreement.Seed,
		agreement.DID,
		[]common.Hash{hashes[0], hashes[1], hashes[2]},
		bigSlice(agreement.Timelocks),
		bigSlice(agreement.Timeouts),
		agreement.Sender,
		new(big.Int), // template index, always 0 in this flow
		agreement.RewardAddress,
		agreement.TokenAddress,
		[]*big.Int{agreement.Amounts[0], agreement.Amounts[1]},
		[]common.Address{agreement.Receivers[0], agreement.Receivers[1]},
	}
}

func bigSlice(values [3]int64) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = big.NewInt(v)
	}
	return out
}
