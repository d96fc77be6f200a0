package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	TestEnvironment = "test"

	// Purchase step names, used in errors and logs
	ApprovalStep          = "approval"
	AgreementCreationStep = "agreement-creation"
	FulfillmentStep       = "fulfillment"

	// Purchase status values
	PurchasedStatus = "purchased"
	FailedStatus    = "failed"

	// DID notation
	DIDPrefix = "did:nv:"
	HexPrefix = "0x"
)
