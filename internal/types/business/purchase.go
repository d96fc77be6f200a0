package business

import (
	"math/big"

	"github.com/google/uuid"
)

// PurchaseResult summarizes a completed subscription purchase for callers and
// API responses.
type PurchaseResult struct {
	AttemptID   uuid.UUID `json:"attempt_id"`
	Status      string    `json:"status"`
	AgreementID string    `json:"agreement_id"`
	PlanDID     string    `json:"plan_did"`

	ApprovalTxHash  string `json:"approval_tx_hash,omitempty"`
	AgreementTxHash string `json:"agreement_tx_hash"`
	FulfillTxHash   string `json:"fulfill_tx_hash"`

	CreditsBefore *big.Int `json:"credits_before"`
	CreditsAfter  *big.Int `json:"credits_after"`
}

// CreditBalance is the sender's current subscription credit position.
type CreditBalance struct {
	PlanDID string   `json:"plan_did"`
	Sender  string   `json:"sender"`
	Credits *big.Int `json:"credits"`
}
