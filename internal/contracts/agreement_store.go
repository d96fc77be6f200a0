package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// AgreementStoreContract wraps the agreement store manager, which owns the
// on-chain derivation of agreement identifiers.
type AgreementStoreContract struct {
	bound *boundContract
}

// AgreementID derives the 32-byte agreement identifier from a fresh seed and
// the subscriber address. Always fetched, never computed locally, so the
// client's identifier matches the one the chain will use.
func (c *AgreementStoreContract) AgreementID(ctx context.Context, seed common.Hash, subscriber common.Address) (common.Hash, error) {
	return c.bound.callHash(ctx, "agreementId", seed, subscriber)
}

// Address returns the store manager deployment address.
func (c *AgreementStoreContract) Address() common.Address {
	return c.bound.address
}
