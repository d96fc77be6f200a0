package services

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ConfigurationError marks a misconfiguration detected before any
// transaction was submitted. Fixable by the operator, never retried
// automatically.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// InsufficientBalanceError is raised by the balance check before any
// transaction is submitted. It carries the amounts and token address an
// operator needs to act without reading source.
type InsufficientBalanceError struct {
	Required  *big.Int
	Available *big.Int
	// TokenSymbol names the settlement currency (native symbol or ERC-20).
	TokenSymbol string
	// TokenAddress is zero for native-payment chains.
	TokenAddress common.Address
}

func (e *InsufficientBalanceError) Error() string {
	if e.TokenAddress == (common.Address{}) {
		return fmt.Sprintf("Insufficient %s balance: required %s, available %s",
			e.TokenSymbol, e.Required.String(), e.Available.String())
	}
	return fmt.Sprintf("Insufficient %s balance: required %s, available %s (token contract %s)",
		e.TokenSymbol, e.Required.String(), e.Available.String(), e.TokenAddress.Hex())
}

// TransactionFailedError marks an on-chain revert (receipt status 0) of one
// settlement step. The sequence halts where it failed; nothing is rolled
// back because the chain already committed the preceding transactions.
type TransactionFailedError struct {
	Step   string
	TxHash common.Hash
}

func (e *TransactionFailedError) Error() string {
	return fmt.Sprintf("%s transaction %s failed on-chain; inspect the transaction to diagnose", e.Step, e.TxHash.Hex())
}
