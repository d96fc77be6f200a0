package services

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/config"
	"github.com/mechmarket/mech-api/internal/helpers"
	"github.com/mechmarket/mech-api/internal/interfaces"
	"github.com/mechmarket/mech-api/internal/logger"
	"go.uber.org/zap"
)

// BalanceService performs the pre-flight solvency check before any
// transaction is submitted. It reads one balance and mutates nothing.
type BalanceService struct {
	cfg    *config.NVMConfig
	ledger interfaces.NativeLedger
	// token is nil on native-payment chains.
	token  interfaces.ERC20Token
	sender common.Address
	logger *zap.Logger
}

// NewBalanceService creates a balance service; token may be nil for
// native-payment chains.
func NewBalanceService(cfg *config.NVMConfig, ledger interfaces.NativeLedger, token interfaces.ERC20Token, sender common.Address) *BalanceService {
	return &BalanceService{
		cfg:    cfg,
		ledger: ledger,
		token:  token,
		sender: sender,
		logger: logger.Log,
	}
}

// CheckBalance verifies the sender can fund fee + price. Exactly-sufficient
// balances pass; only a strict shortfall raises.
func (s *BalanceService) CheckBalance(ctx context.Context) error {
	required, err := s.cfg.RequiredAmount()
	if err != nil {
		return err
	}

	switch s.cfg.PaymentMode {
	case config.PaymentModeToken:
		if s.token == nil {
			return &ConfigurationError{Reason: fmt.Sprintf("chain %s pays in %s but no token contract is configured", s.cfg.ChainName, s.cfg.TokenSymbol)}
		}
		available, err := s.token.BalanceOf(ctx, s.sender)
		if err != nil {
			return fmt.Errorf("failed to read %s balance of %s: %w", s.cfg.TokenSymbol, s.sender.Hex(), err)
		}
		s.logger.Info("Checked token balance",
			zap.String("token", s.cfg.TokenSymbol),
			zap.String("required", helpers.FormatUnits(required, s.cfg.TokenDecimals)),
			zap.String("available", helpers.FormatUnits(available, s.cfg.TokenDecimals)),
		)
		if available.Cmp(required) < 0 {
			return &InsufficientBalanceError{
				Required:     required,
				Available:    available,
				TokenSymbol:  s.cfg.TokenSymbol,
				TokenAddress: s.token.Address(),
			}
		}
	default:
		available, err := s.ledger.BalanceAt(ctx, s.sender)
		if err != nil {
			return fmt.Errorf("failed to read native balance of %s: %w", s.sender.Hex(), err)
		}
		s.logger.Info("Checked native balance",
			zap.String("required", helpers.FormatUnits(required, s.cfg.TokenDecimals)),
			zap.String("available", helpers.FormatUnits(available, s.cfg.TokenDecimals)),
		)
		if available.Cmp(required) < 0 {
			return &InsufficientBalanceError{
				Required:    required,
				Available:   available,
				TokenSymbol: s.cfg.TokenSymbol,
			}
		}
	}

	return nil
}
