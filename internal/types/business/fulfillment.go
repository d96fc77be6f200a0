package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// FulfillForDelegateParams is the first argument tuple of the settlement
// call. Field names and order mirror the contract tuple components exactly
// (the ABI packer resolves them by name); this is a wire-format contract,
// not a style choice.
type FulfillForDelegateParams struct {
	NftHolder            common.Address
	NftReceiver          common.Address
	NftAmount            *big.Int
	LockPaymentCondition common.Hash
	NftContractAddress   common.Address

	// Transfer and ExpirationBlock are protocol-fixed in this flow: credits
	// are minted to the receiver rather than transferred, and never expire.
	Transfer        bool
	ExpirationBlock *big.Int
}

// FulfillParams is the second argument tuple of the settlement call, again
// in exact ABI component order. Amounts and Receivers are split positionally
// on-chain, so both keep the [fee, price] / [fee receiver, plan receiver]
// ordering from the agreement.
type FulfillParams struct {
	Amounts            []*big.Int
	Receivers          []common.Address
	ReturnAddress      common.Address
	LockPaymentAddress common.Address
	TokenAddress       common.Address
	LockCondition      common.Hash
	ReleaseCondition   common.Hash
}

// FulfillmentData carries both settlement tuples for a completed agreement.
// It is derived deterministically from AgreementData and holds no state of
// its own.
type FulfillmentData struct {
	AgreementID common.Hash
	DID         common.Hash

	FulfillForDelegate FulfillForDelegateParams
	Fulfill            FulfillParams
}
