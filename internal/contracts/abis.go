package contracts

// Minimal ABI definitions for the protocol contracts, limited to the methods
// this client calls. The full artifacts live with the protocol deployment;
// these subsets must stay signature-identical to them.

const didRegistryABI = `[
  {
    "name": "getDIDRegister",
    "type": "function",
    "stateMutability": "view",
    "inputs": [{"name": "_did", "type": "bytes32"}],
    "outputs": [
      {"name": "owner", "type": "address"},
      {"name": "providers", "type": "address[]"},
      {"name": "royalties", "type": "uint256"},
      {"name": "immutableUrl", "type": "string"},
      {"name": "nftInitialized", "type": "bool"},
      {"name": "serviceEndpoint", "type": "string"},
      {"name": "lastChecksum", "type": "bytes32"}
    ]
  }
]`

const nvmConfigABI = `[
  {
    "name": "getFeeReceiver",
    "type": "function",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "address"}]
  },
  {
    "name": "getMarketplaceFee",
    "type": "function",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "uint256"}]
  }
]`

const lockPaymentConditionABI = `[
  {
    "name": "hashValues",
    "type": "function",
    "stateMutability": "pure",
    "inputs": [
      {"name": "_did", "type": "bytes32"},
      {"name": "_rewardAddress", "type": "address"},
      {"name": "_tokenAddress", "type": "address"},
      {"name": "_amounts", "type": "uint256[]"},
      {"name": "_receivers", "type": "address[]"}
    ],
    "outputs": [{"name": "", "type": "bytes32"}]
  },
  {
    "name": "generateId",
    "type": "function",
    "stateMutability": "view",
    "inputs": [
      {"name": "_agreementId", "type": "bytes32"},
      {"name": "_valueHash", "type": "bytes32"}
    ],
    "outputs": [{"name": "", "type": "bytes32"}]
  }
]`

const transferNFTConditionABI = `[
  {
    "name": "hashValues",
    "type": "function",
    "stateMutability": "pure",
    "inputs": [
      {"name": "_did", "type": "bytes32"},
      {"name": "_nftHolder", "type": "address"},
      {"name": "_nftReceiver", "type": "address"},
      {"name": "_nftAmount", "type": "uint256"},
      {"name": "_lockCondition", "type": "bytes32"},
      {"name": "_nftContractAddress", "type": "address"},
      {"name": "_transfer", "type": "bool"}
    ],
    "outputs": [{"name": "", "type": "bytes32"}]
  },
  {
    "name": "generateId",
    "type": "function",
    "stateMutability": "view",
    "inputs": [
      {"name": "_agreementId", "type": "bytes32"},
      {"name": "_valueHash", "type": "bytes32"}
    ],
    "outputs": [{"name": "", "type": "bytes32"}]
  }
]`

const escrowPaymentConditionABI = `[
  {
    "name": "hashValues",
    "type": "function",
    "stateMutability": "pure",
    "inputs": [
      {"name": "_did", "type": "bytes32"},
      {"name": "_amounts", "type": "uint256[]"},
      {"name": "_receivers", "type": "address[]"},
      {"name": "_returnAddress", "type": "address"},
      {"name": "_lockPaymentAddress", "type": "address"},
      {"name": "_tokenAddress", "type": "address"},
      {"name": "_lockCondition", "type": "bytes32"},
      {"name": "_releaseCondition", "type": "bytes32"}
    ],
    "outputs": [{"name": "", "type": "bytes32"}]
  },
  {
    "name": "generateId",
    "type": "function",
    "stateMutability": "view",
    "inputs": [
      {"name": "_agreementId", "type": "bytes32"},
      {"name": "_valueHash", "type": "bytes32"}
    ],
    "outputs": [{"name": "", "type": "bytes32"}]
  }
]`

const agreementStoreManagerABI = `[
  {
    "name": "agreementId",
    "type": "function",
    "stateMutability": "view",
    "inputs": [
      {"name": "_idSeed", "type": "bytes32"},
      {"name": "_creator", "type": "address"}
    ],
    "outputs": [{"name": "", "type": "bytes32"}]
  }
]`

const nftSalesTemplateABI = `[
  {
    "name": "createAgreementAndPayEscrow",
    "type": "function",
    "stateMutability": "payable",
    "inputs": [
      {"name": "_idSeed", "type": "bytes32"},
      {"name": "_did", "type": "bytes32"},
      {"name": "_conditionSeeds", "type": "bytes32[]"},
      {"name": "_timeLocks", "type": "uint256[]"},
      {"name": "_timeOuts", "type": "uint256[]"},
      {"name": "_accessConsumer", "type": "address"},
      {"name": "_idx", "type": "uint256"},
      {"name": "_rewardAddress", "type": "address"},
      {"name": "_tokenAddress", "type": "address"},
      {"name": "_amounts", "type": "uint256[]"},
      {"name": "_receivers", "type": "address[]"}
    ],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "fulfill",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "_agreementId", "type": "bytes32"},
      {"name": "_did", "type": "bytes32"},
      {
        "name": "_delegateParams",
        "type": "tuple",
        "components": [
          {"name": "nftHolder", "type": "address"},
          {"name": "nftReceiver", "type": "address"},
          {"name": "nftAmount", "type": "uint256"},
          {"name": "lockPaymentCondition", "type": "bytes32"},
          {"name": "nftContractAddress", "type": "address"},
          {"name": "transfer", "type": "bool"},
          {"name": "expirationBlock", "type": "uint256"}
        ]
      },
      {
        "name": "_fulfillParams",
        "type": "tuple",
        "components": [
          {"name": "amounts", "type": "uint256[]"},
          {"name": "receivers", "type": "address[]"},
          {"name": "returnAddress", "type": "address"},
          {"name": "lockPaymentAddress", "type": "address"},
          {"name": "tokenAddress", "type": "address"},
          {"name": "lockCondition", "type": "bytes32"},
          {"name": "releaseCondition", "type": "bytes32"}
        ]
      }
    ],
    "outputs": []
  }
]`

const nft1155ABI = `[
  {
    "name": "balanceOf",
    "type": "function",
    "stateMutability": "view",
    "inputs": [
      {"name": "account", "type": "address"},
      {"name": "id", "type": "uint256"}
    ],
    "outputs": [{"name": "", "type": "uint256"}]
  }
]`

const erc20ABI = `[
  {
    "name": "balanceOf",
    "type": "function",
    "stateMutability": "view",
    "inputs": [{"name": "account", "type": "address"}],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "allowance",
    "type": "function",
    "stateMutability": "view",
    "inputs": [
      {"name": "owner", "type": "address"},
      {"name": "spender", "type": "address"}
    ],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "approve",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "spender", "type": "address"},
      {"name": "amount", "type": "uint256"}
    ],
    "outputs": [{"name": "", "type": "bool"}]
  }
]`
