package services

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/types/business"
)

// FulfillmentService derives the settlement call parameters from a completed
// agreement. Pure tuple assembly: no network calls, no randomness, calling
// it twice on the same agreement yields identical data.
type FulfillmentService struct{}

// NewFulfillmentService creates a new fulfillment service.
func NewFulfillmentService() *FulfillmentService {
	return &FulfillmentService{}
}

// BuildFulfillment assembles both ABI-ordered parameter tuples for the
// fulfill call. Missing agreement fields are programmer errors, reported as
// plain errors rather than the operator-facing taxonomy.
func (s *FulfillmentService) BuildFulfillment(agreement *business.AgreementData) (*business.FulfillmentData, error) {
	if agreement == nil {
		return nil, fmt.Errorf("agreement is required")
	}
	if agreement.ID == (common.Hash{}) {
		return nil, fmt.Errorf("agreement has no ID; build it before fulfilling")
	}
	if agreement.LockID == (common.Hash{}) || agreement.TransferID == (common.Hash{}) {
		return nil, fmt.Errorf("agreement %s is missing condition IDs", agreement.ID.Hex())
	}
	if agreement.Credits == nil || agreement.Amounts[0] == nil || agreement.Amounts[1] == nil {
		return nil, fmt.Errorf("agreement %s is missing amounts", agreement.ID.Hex())
	}

	return &business.FulfillmentData{
		AgreementID: agreement.ID,
		DID:         agreement.DID,
		FulfillForDelegate: business.FulfillForDelegateParams{
			NftHolder:            agreement.DDO.Owner,
			NftReceiver:          agreement.Sender,
			NftAmount:            agreement.Credits,
			LockPaymentCondition: agreement.LockID,
			NftContractAddress:   agreement.NFTAddress,
			Transfer:             false,
			ExpirationBlock:      new(big.Int),
		},
		Fulfill: business.FulfillParams{
			Amounts:            []*big.Int{agreement.Amounts[0], agreement.Amounts[1]},
			Receivers:          []common.Address{agreement.Receivers[0], agreement.Receivers[1]},
			ReturnAddress:      agreement.Sender,
			LockPaymentAddress: agreement.RewardAddress,
			TokenAddress:       agreement.TokenAddress,
			LockCondition:      agreement.LockID,
			ReleaseCondition:   agreement.TransferID,
		},
	}, nil
}
