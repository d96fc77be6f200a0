package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/mechmarket/mech-api/internal/app"
	"github.com/mechmarket/mech-api/internal/logger"
)

// Runs a single subscription purchase for the configured plan and prints the
// result as JSON. Exits non-zero if any step of the purchase fails.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	logger.InitLogger(os.Getenv("STAGE"))
	defer logger.Sync()

	ctx := context.Background()

	application, err := app.Bootstrap(ctx)
	if err != nil {
		logger.Fatal("Failed to bootstrap application", zap.Error(err))
	}
	defer application.Close()

	planDID := application.Config.PlanDID
	if len(os.Args) > 1 {
		planDID = os.Args[1]
	}

	result, err := application.Subscriptions.PurchaseSubscription(ctx, planDID)
	if err != nil {
		logger.Error("Purchase failed", zap.String("plan_did", planDID), zap.Error(err))
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logger.Fatal("Failed to encode purchase result", zap.Error(err))
	}
	fmt.Println(string(out))
}
