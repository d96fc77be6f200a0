package business

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Protocol-fixed condition schedule: only the transfer condition carries a
// timeout (90 units), nothing carries a timelock. The contracts expect these
// exact values regardless of chain.
const (
	TransferConditionTimeout = 90
)

// DDO is the plan metadata document resolved from the DID registry. It is
// fetched once per purchase attempt and never mutated afterwards.
type DDO struct {
	Owner           common.Address
	Providers       []common.Address
	Royalties       *big.Int
	ImmutableURL    string
	NFTInitialized  bool
	ServiceEndpoint string
	Checksum        common.Hash
}

// AgreementData is the fully derived commitment bundle for one subscription
// purchase attempt. It is produced once by the agreement builder, consumed by
// the settlement sequence, and discarded; attempts never share or reuse one.
type AgreementData struct {
	// Seed is the fresh 256-bit randomness the agreement ID is derived from.
	// It must come from a cryptographically strong source and must never be
	// reused across attempts.
	Seed common.Hash

	// ID is derived on-chain from (Seed, Sender). It is fetched via a
	// read-only contract call rather than computed locally so it agrees
	// bit-for-bit with the chain's own derivation.
	ID common.Hash

	// DID is the chain-native form of the subscription plan identifier.
	DID common.Hash

	DDO DDO

	// Condition parameter hashes in protocol order: lock, transfer, escrow.
	LockHash     common.Hash
	TransferHash common.Hash
	EscrowHash   common.Hash

	// Condition identifiers, each derived on-chain from (ID, hash).
	LockID     common.Hash
	TransferID common.Hash
	EscrowID   common.Hash

	// Timelocks and Timeouts are the protocol-fixed 3-element schedules
	// [0,0,0] and [0,90,0]. Not user-configurable.
	Timelocks [3]int64
	Timeouts  [3]int64

	// RewardAddress is the escrow payment condition contract instance that
	// holds the payment pending release.
	RewardAddress common.Address

	// Receivers is [marketplace fee receiver, plan receiver]. Order is
	// significant: Amounts is split positionally against it on-chain.
	Receivers [2]common.Address

	// Amounts is [marketplace fee, plan price] in smallest units.
	Amounts [2]*big.Int

	// TokenAddress is the payment token, or the zero address on chains that
	// settle in the native token.
	TokenAddress common.Address

	// NFTAddress is the subscription credit NFT contract.
	NFTAddress common.Address

	// Sender is the subscriber wallet funding the purchase.
	Sender common.Address

	// Credits is the number of subscription credits the plan grants.
	Credits *big.Int
}

// ConditionHashes returns the three parameter hashes in protocol order;
// these double as the condition seeds submitted with agreement creation.
func (a *AgreementData) ConditionHashes() [3]common.Hash {
	return [3]common.Hash{a.LockHash, a.TransferHash, a.EscrowHash}
}

// ConditionIDs returns the three derived condition identifiers in protocol
// order.
func (a *AgreementData) ConditionIDs() [3]common.Hash {
	return [3]common.Hash{a.LockID, a.TransferID, a.EscrowID}
}

// TotalAmount returns fee + price, the amount the purchase must be able to
// fund.
func (a *AgreementData) TotalAmount() *big.Int {
	return new(big.Int).Add(a.Amounts[0], a.Amounts[1])
}

// DefaultTimelocks returns the protocol-fixed timelock schedule.
func DefaultTimelocks() [3]int64 {
	return [3]int64{0, 0, 0}
}

// DefaultTimeouts returns the protocol-fixed timeout schedule.
func DefaultTimeouts() [3]int64 {
	return [3]int64{0, TransferConditionTimeout, 0}
}
