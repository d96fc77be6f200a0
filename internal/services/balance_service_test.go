package services_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mechmarket/mech-api/internal/mocks"
	"github.com/mechmarket/mech-api/internal/services"
)

func TestBalanceService_CheckBalance_Token(t *testing.T) {
	tests := []struct {
		name       string
		available  *big.Int
		readErr    error
		wantErr    bool
		errString  string
		wantAmount bool
	}{
		{
			name:      "passes with surplus",
			available: big.NewInt(10000000),
		},
		{
			name:      "passes with exactly the required amount",
			available: big.NewInt(5000000),
		},
		{
			name:       "fails with a shortfall",
			available:  big.NewInt(2000000),
			wantErr:    true,
			errString:  "Insufficient USDC balance",
			wantAmount: true,
		},
		{
			name:      "propagates balance read failure",
			readErr:   errors.New("rpc error"),
			wantErr:   true,
			errString: "failed to read USDC balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			token := mocks.NewMockERC20Token(ctrl)
			ledger := mocks.NewMockNativeLedger(ctrl)
			service := services.NewBalanceService(tokenTestConfig(), ledger, token, testSender)

			if tt.readErr != nil {
				token.EXPECT().BalanceOf(gomock.Any(), testSender).Return(nil, tt.readErr)
			} else {
				token.EXPECT().BalanceOf(gomock.Any(), testSender).Return(tt.available, nil)
			}
			if tt.wantAmount {
				token.EXPECT().Address().Return(testTokenAddr)
			}

			err := service.CheckBalance(context.Background())
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errString)

			if tt.wantAmount {
				var balanceErr *services.InsufficientBalanceError
				require.ErrorAs(t, err, &balanceErr)
				assert.Equal(t, big.NewInt(5000000), balanceErr.Required)
				assert.Equal(t, tt.available, balanceErr.Available)
				assert.Equal(t, "USDC", balanceErr.TokenSymbol)
				assert.Equal(t, testTokenAddr, balanceErr.TokenAddress)
				assert.Contains(t, err.Error(), testTokenAddr.Hex())
			}
		})
	}
}

func TestBalanceService_CheckBalance_Native(t *testing.T) {
	tests := []struct {
		name      string
		available *big.Int
		wantErr   bool
	}{
		{name: "passes with surplus", available: big.NewInt(2000000)},
		{name: "passes at the exact boundary", available: big.NewInt(1000000)},
		{name: "fails below the boundary", available: big.NewInt(999999), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ledger := mocks.NewMockNativeLedger(ctrl)
			service := services.NewBalanceService(nativeTestConfig(), ledger, nil, testSender)

			ledger.EXPECT().BalanceAt(gomock.Any(), testSender).Return(tt.available, nil)

			err := service.CheckBalance(context.Background())
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var balanceErr *services.InsufficientBalanceError
			require.ErrorAs(t, err, &balanceErr)
			assert.Contains(t, err.Error(), "Insufficient xDAI balance")
			assert.Equal(t, big.NewInt(1000000), balanceErr.Required)
		})
	}
}

func TestBalanceService_CheckBalance_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ledger := mocks.NewMockNativeLedger(ctrl)
	service := services.NewBalanceService(tokenTestConfig(), ledger, nil, testSender)

	err := service.CheckBalance(context.Background())
	var configErr *services.ConfigurationError
	require.ErrorAs(t, err, &configErr)
	assert.Contains(t, err.Error(), "no token contract is configured")
}
