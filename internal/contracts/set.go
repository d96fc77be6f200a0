package contracts

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/config"
	"github.com/mechmarket/mech-api/internal/constants"
	"github.com/pkg/errors"
)

// Set holds the bound contract adapters for one chain. It is built once at
// startup from the chain's address book and shared read-only afterwards.
type Set struct {
	DIDRegistry    *DIDRegistryContract
	NVMConfig      *NVMConfigContract
	LockCondition  *LockPaymentConditionContract
	TransferNFT    *TransferNFTConditionContract
	EscrowPayment  *EscrowPaymentConditionContract
	AgreementStore *AgreementStoreContract
	NFTCredits     *NFTCreditsContract

	// Token is nil on native-payment chains.
	Token *ERC20Contract

	byName map[string]*boundContract
}

// NewSet binds every contract role to its per-chain deployment address.
func NewSet(cfg *config.NVMConfig, caller Caller) (*Set, error) {
	set := &Set{byName: make(map[string]*boundContract)}

	bindRole := func(name, rawABI string) (*boundContract, error) {
		address, err := cfg.ContractAddress(name)
		if err != nil {
			return nil, err
		}
		bound, err := bind(name, address, rawABI, caller)
		if err != nil {
			return nil, err
		}
		set.byName[name] = bound
		return bound, nil
	}

	registry, err := bindRole(constants.DIDRegistryContract, didRegistryABI)
	if err != nil {
		return nil, err
	}
	set.DIDRegistry = &DIDRegistryContract{bound: registry}

	nvmConfig, err := bindRole(constants.NVMConfigContract, nvmConfigABI)
	if err != nil {
		return nil, err
	}
	set.NVMConfig = &NVMConfigContract{bound: nvmConfig}

	lock, err := bindRole(constants.LockPaymentConditionContract, lockPaymentConditionABI)
	if err != nil {
		return nil, err
	}
	set.LockCondition = &LockPaymentConditionContract{conditionContract{bound: lock}}

	transfer, err := bindRole(constants.TransferNFTConditionContract, transferNFTConditionABI)
	if err != nil {
		return nil, err
	}
	set.TransferNFT = &TransferNFTConditionContract{conditionContract{bound: transfer}}

	escrow, err := bindRole(constants.EscrowPaymentConditionContract, escrowPaymentConditionABI)
	if err != nil {
		return nil, err
	}
	set.EscrowPayment = &EscrowPaymentConditionContract{conditionContract{bound: escrow}}

	store, err := bindRole(constants.AgreementStoreManagerContract, agreementStoreManagerABI)
	if err != nil {
		return nil, err
	}
	set.AgreementStore = &AgreementStoreContract{bound: store}

	if _, err := bindRole(constants.NFTSalesTemplateContract, nftSalesTemplateABI); err != nil {
		return nil, err
	}

	nft, err := bindRole(constants.NFT1155Contract, nft1155ABI)
	if err != nil {
		return nil, err
	}
	set.NFTCredits = &NFTCreditsContract{bound: nft}

	if cfg.PaymentMode == config.PaymentModeToken {
		token, err := bind(constants.ERC20Contract, cfg.TokenAddress, erc20ABI, caller)
		if err != nil {
			return nil, err
		}
		set.byName[constants.ERC20Contract] = token
		set.Token = &ERC20Contract{bound: token, symbol: cfg.TokenSymbol}
	}

	return set, nil
}

// Resolve returns the deployment address and parsed ABI for a named
// contract, for the transaction executor to build method calls against.
func (s *Set) Resolve(name string) (common.Address, abi.ABI, error) {
	bound, ok := s.byName[name]
	if !ok {
		return common.Address{}, abi.ABI{}, errors.Errorf("unknown contract %q", name)
	}
	return bound.address, bound.abi, nil
}
