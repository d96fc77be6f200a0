package constants

// On-chain contract names, matching the deployment artifact names. Used to
// key per-chain address books and to name the target of executed calls.
const (
	DIDRegistryContract            = "DIDRegistry"
	NVMConfigContract              = "NeverminedConfig"
	LockPaymentConditionContract   = "LockPaymentCondition"
	TransferNFTConditionContract   = "TransferNFTCondition"
	EscrowPaymentConditionContract = "EscrowPaymentCondition"
	AgreementStoreManagerContract  = "AgreementStoreManager"
	NFTSalesTemplateContract       = "NFTSalesTemplate"
	NFT1155Contract                = "NFT1155SubscriptionUpgradeable"
	ERC20Contract                  = "ERC20"
)
