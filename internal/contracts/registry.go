package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/types/business"
)

// DIDRegistryContract resolves plan metadata from the on-chain registry.
type DIDRegistryContract struct {
	bound *boundContract
}

// GetDDO fetches the plan metadata document for a chain-native DID.
func (r *DIDRegistryContract) GetDDO(ctx context.Context, did common.Hash) (business.DDO, error) {
	const method = "getDIDRegister"

	results, err := r.bound.call(ctx, method, did)
	if err != nil {
		return business.DDO{}, err
	}

	owner, err := asAddress(r.bound.name, method, results, 0)
	if err != nil {
		return business.DDO{}, err
	}
	providers, err := asAddressSlice(r.bound.name, method, results, 1)
	if err != nil {
		return business.DDO{}, err
	}
	royalties, err := asBigInt(r.bound.name, method, results, 2)
	if err != nil {
		return business.DDO{}, err
	}
	immutableURL, err := asString(r.bound.name, method, results, 3)
	if err != nil {
		return business.DDO{}, err
	}
	nftInitialized, err := asBool(r.bound.name, method, results, 4)
	if err != nil {
		return business.DDO{}, err
	}
	serviceEndpoint, err := asString(r.bound.name, method, results, 5)
	if err != nil {
		return business.DDO{}, err
	}
	checksum, err := asHash(r.bound.name, method, results, 6)
	if err != nil {
		return business.DDO{}, err
	}

	return business.DDO{
		Owner:           owner,
		Providers:       providers,
		Royalties:       royalties,
		ImmutableURL:    immutableURL,
		NFTInitialized:  nftInitialized,
		ServiceEndpoint: serviceEndpoint,
		Checksum:        checksum,
	}, nil
}

// Address returns the registry deployment address.
func (r *DIDRegistryContract) Address() common.Address {
	return r.bound.address
}
