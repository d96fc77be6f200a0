package services_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	coretypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mechmarket/mech-api/internal/config"
	"github.com/mechmarket/mech-api/internal/constants"
	"github.com/mechmarket/mech-api/internal/interfaces"
	"github.com/mechmarket/mech-api/internal/mocks"
	"github.com/mechmarket/mech-api/internal/services"
)

type subscriptionMocks struct {
	agreements   *mocks.MockAgreementBuilder
	fulfillments *mocks.MockFulfillmentBuilder
	balances     *mocks.MockBalanceChecker
	executor     *mocks.MockTransactionExecutor
	waiter       *mocks.MockReceiptWaiter
	credits      *mocks.MockNFTCredits
}

func newSubscriptionService(ctrl *gomock.Controller, cfg *config.NVMConfig) (*services.SubscriptionService, *subscriptionMocks) {
	m := &subscriptionMocks{
		agreements:   mocks.NewMockAgreementBuilder(ctrl),
		fulfillments: mocks.NewMockFulfillmentBuilder(ctrl),
		balances:     mocks.NewMockBalanceChecker(ctrl),
		executor:     mocks.NewMockTransactionExecutor(ctrl),
		waiter:       mocks.NewMockReceiptWaiter(ctrl),
		credits:      mocks.NewMockNFTCredits(ctrl),
	}
	service := services.NewSubscriptionService(
		cfg,
		m.agreements,
		m.fulfillments,
		m.balances,
		m.executor,
		m.waiter,
		m.credits,
		testLockAddr,
		testSender,
	)
	return service, m
}

func successReceipt() *coretypes.Receipt {
	return &coretypes.Receipt{Status: coretypes.ReceiptStatusSuccessful, BlockNumber: big.NewInt(1)}
}

func revertedReceipt() *coretypes.Receipt {
	return &coretypes.Receipt{Status: coretypes.ReceiptStatusFailed, BlockNumber: big.NewInt(1)}
}

func TestSubscriptionService_PurchaseSubscription_Token(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSubscriptionService(ctrl, tokenTestConfig())

	agreement := completeAgreement()
	fulfillment, err := services.NewFulfillmentService().BuildFulfillment(agreement)
	require.NoError(t, err)

	approveTx := common.HexToHash("0x0a")
	createTx := common.HexToHash("0x0b")
	fulfillTx := common.HexToHash("0x0c")

	m.balances.EXPECT().CheckBalance(gomock.Any()).Return(nil)
	m.agreements.EXPECT().BuildAgreement(gomock.Any(), testPlanDID).Return(agreement, nil)
	m.fulfillments.EXPECT().BuildFulfillment(agreement).Return(fulfillment, nil)

	creditsBefore := m.credits.EXPECT().BalanceOf(gomock.Any(), testSender, agreement.DID).Return(big.NewInt(0), nil)
	creditsAfter := m.credits.EXPECT().BalanceOf(gomock.Any(), testSender, agreement.DID).Return(big.NewInt(100), nil)

	required := big.NewInt(5000000)
	noValue := interfaces.TxArgs{Sender: testSender}

	// Token settlement needs all three transactions, approval first, and
	// each receipt awaited before the next submission.
	approve := m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.ERC20Contract, "approve",
			[]interface{}{testLockAddr, required}, noValue).
		Return(approveTx, nil)
	approveWait := m.waiter.EXPECT().WaitForReceipt(gomock.Any(), approveTx).Return(successReceipt(), nil)
	create := m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.NFTSalesTemplateContract, "createAgreementAndPayEscrow",
			gomock.Any(), noValue).
		Return(createTx, nil)
	createWait := m.waiter.EXPECT().WaitForReceipt(gomock.Any(), createTx).Return(successReceipt(), nil)
	fulfill := m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.NFTSalesTemplateContract, "fulfill",
			[]interface{}{fulfillment.AgreementID, fulfillment.DID, fulfillment.FulfillForDelegate, fulfillment.Fulfill}, noValue).
		Return(fulfillTx, nil)
	fulfillWait := m.waiter.EXPECT().WaitForReceipt(gomock.Any(), fulfillTx).Return(successReceipt(), nil)

	gomock.InOrder(creditsBefore, approve, approveWait, create, createWait, fulfill, fulfillWait, creditsAfter)

	result, err := service.PurchaseSubscription(context.Background(), testPlanDID)
	require.NoError(t, err)

	assert.Equal(t, constants.PurchasedStatus, result.Status)
	assert.Equal(t, agreement.ID.Hex(), result.AgreementID)
	assert.Equal(t, testPlanDID, result.PlanDID)
	assert.Equal(t, approveTx.Hex(), result.ApprovalTxHash)
	assert.Equal(t, createTx.Hex(), result.AgreementTxHash)
	assert.Equal(t, fulfillTx.Hex(), result.FulfillTxHash)
	assert.Equal(t, big.NewInt(0), result.CreditsBefore)
	assert.Equal(t, big.NewInt(100), result.CreditsAfter)
	assert.NotEqual(t, result.AttemptID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestSubscriptionService_PurchaseSubscription_Native(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := nativeTestConfig()
	service, m := newSubscriptionService(ctrl, cfg)

	agreement := completeAgreement()
	agreement.TokenAddress = common.Address{}
	agreement.Amounts = [2]*big.Int{big.NewInt(500000), big.NewInt(500000)}
	fulfillment, err := services.NewFulfillmentService().BuildFulfillment(agreement)
	require.NoError(t, err)

	createTx := common.HexToHash("0x0b")
	fulfillTx := common.HexToHash("0x0c")

	m.balances.EXPECT().CheckBalance(gomock.Any()).Return(nil)
	m.agreements.EXPECT().BuildAgreement(gomock.Any(), testPlanDID).Return(agreement, nil)
	m.fulfillments.EXPECT().BuildFulfillment(agreement).Return(fulfillment, nil)
	m.credits.EXPECT().BalanceOf(gomock.Any(), testSender, agreement.DID).Return(big.NewInt(0), nil)
	m.credits.EXPECT().BalanceOf(gomock.Any(), testSender, agreement.DID).Return(big.NewInt(100), nil)

	// Native settlement skips the approval and carries the payment as the
	// creation transaction's value.
	withValue := interfaces.TxArgs{Sender: testSender, Value: big.NewInt(1000000)}
	create := m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.NFTSalesTemplateContract, "createAgreementAndPayEscrow",
			gomock.Any(), withValue).
		Return(createTx, nil)
	createWait := m.waiter.EXPECT().WaitForReceipt(gomock.Any(), createTx).Return(successReceipt(), nil)
	fulfill := m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.NFTSalesTemplateContract, "fulfill",
			gomock.Any(), interfaces.TxArgs{Sender: testSender}).
		Return(fulfillTx, nil)
	fulfillWait := m.waiter.EXPECT().WaitForReceipt(gomock.Any(), fulfillTx).Return(successReceipt(), nil)

	gomock.InOrder(create, createWait, fulfill, fulfillWait)

	result, err := service.PurchaseSubscription(context.Background(), testPlanDID)
	require.NoError(t, err)

	assert.Empty(t, result.ApprovalTxHash)
	assert.Equal(t, createTx.Hex(), result.AgreementTxHash)
	assert.Equal(t, fulfillTx.Hex(), result.FulfillTxHash)
}

func TestSubscriptionService_PurchaseSubscription_BalanceShortfallHaltsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSubscriptionService(ctrl, tokenTestConfig())

	shortfall := &services.InsufficientBalanceError{
		Required:    big.NewInt(5000000),
		Available:   big.NewInt(2000000),
		TokenSymbol: "USDC",
	}
	m.balances.EXPECT().CheckBalance(gomock.Any()).Return(shortfall)

	result, err := service.PurchaseSubscription(context.Background(), testPlanDID)
	assert.Nil(t, result)

	var balanceErr *services.InsufficientBalanceError
	require.ErrorAs(t, err, &balanceErr)
	assert.Contains(t, err.Error(), "Insufficient USDC balance")
}

func TestSubscriptionService_PurchaseSubscription_CreationRevertStopsFulfillment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSubscriptionService(ctrl, nativeTestConfig())

	agreement := completeAgreement()
	createTx := common.HexToHash("0x0b")

	m.balances.EXPECT().CheckBalance(gomock.Any()).Return(nil)
	m.agreements.EXPECT().BuildAgreement(gomock.Any(), testPlanDID).Return(agreement, nil)
	m.credits.EXPECT().BalanceOf(gomock.Any(), testSender, agreement.DID).Return(big.NewInt(0), nil)

	m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.NFTSalesTemplateContract, "createAgreementAndPayEscrow", gomock.Any(), gomock.Any()).
		Return(createTx, nil)
	m.waiter.EXPECT().WaitForReceipt(gomock.Any(), createTx).Return(revertedReceipt(), nil)
	// No fulfillment build, no fulfill transaction: the reverted creation
	// receipt ends the sequence.

	result, err := service.PurchaseSubscription(context.Background(), testPlanDID)
	assert.Nil(t, result)

	var txErr *services.TransactionFailedError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, constants.AgreementCreationStep, txErr.Step)
	assert.Equal(t, createTx, txErr.TxHash)
}

func TestSubscriptionService_PurchaseSubscription_ApprovalFailureStopsCreation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSubscriptionService(ctrl, tokenTestConfig())

	agreement := completeAgreement()

	m.balances.EXPECT().CheckBalance(gomock.Any()).Return(nil)
	m.agreements.EXPECT().BuildAgreement(gomock.Any(), testPlanDID).Return(agreement, nil)
	m.credits.EXPECT().BalanceOf(gomock.Any(), testSender, agreement.DID).Return(big.NewInt(0), nil)

	m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.ERC20Contract, "approve", gomock.Any(), gomock.Any()).
		Return(common.Hash{}, errors.New("nonce too low"))

	result, err := service.PurchaseSubscription(context.Background(), testPlanDID)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to submit approval transaction")
}

func TestSubscriptionService_PurchaseSubscription_FulfillmentRevert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newSubscriptionService(ctrl, nativeTestConfig())

	agreement := completeAgreement()
	fulfillment, err := services.NewFulfillmentService().BuildFulfillment(agreement)
	require.NoError(t, err)

	createTx := common.HexToHash("0x0b")
	fulfillTx := common.HexToHash("0x0c")

	m.balances.EXPECT().CheckBalance(gomock.Any()).Return(nil)
	m.agreements.EXPECT().BuildAgreement(gomock.Any(), testPlanDID).Return(agreement, nil)
	m.fulfillments.EXPECT().BuildFulfillment(agreement).Return(fulfillment, nil)
	m.credits.EXPECT().BalanceOf(gomock.Any(), testSender, agreement.DID).Return(big.NewInt(0), nil)

	m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.NFTSalesTemplateContract, "createAgreementAndPayEscrow", gomock.Any(), gomock.Any()).
		Return(createTx, nil)
	m.waiter.EXPECT().WaitForReceipt(gomock.Any(), createTx).Return(successReceipt(), nil)
	m.executor.EXPECT().
		ExecuteTransaction(gomock.Any(), constants.NFTSalesTemplateContract, "fulfill", gomock.Any(), gomock.Any()).
		Return(fulfillTx, nil)
	m.waiter.EXPECT().WaitForReceipt(gomock.Any(), fulfillTx).Return(revertedReceipt(), nil)

	result, err := service.PurchaseSubscription(context.Background(), testPlanDID)
	assert.Nil(t, result)

	var txErr *services.TransactionFailedError
	require.ErrorAs(t, err, &txErr)
	assert.Equal(t, constants.FulfillmentStep, txErr.Step)
}

func TestSubscriptionService_CreditBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := tokenTestConfig()
	service, m := newSubscriptionService(ctrl, cfg)

	did := common.HexToHash("0x" + testPlanHex)
	m.credits.EXPECT().BalanceOf(gomock.Any(), testSender, did).Return(big.NewInt(42), nil)

	balance, err := service.CreditBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.PlanDID, balance.PlanDID)
	assert.Equal(t, testSender.Hex(), balance.Sender)
	assert.Equal(t, big.NewInt(42), balance.Credits)
}
