package helpers

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mechmarket/mech-api/internal/constants"
)

// NormalizeDID converts a plan identifier from the external "did:nv:<hex>"
// notation into its chain-native 32-byte form. Already-normalized "0x<hex>"
// identifiers are accepted as-is.
func NormalizeDID(did string) (common.Hash, error) {
	trimmed := strings.TrimSpace(did)
	if trimmed == "" {
		return common.Hash{}, fmt.Errorf("plan DID is required")
	}

	if strings.HasPrefix(trimmed, constants.DIDPrefix) {
		trimmed = constants.HexPrefix + strings.TrimPrefix(trimmed, constants.DIDPrefix)
	}
	if !strings.HasPrefix(trimmed, constants.HexPrefix) {
		return common.Hash{}, fmt.Errorf("invalid plan DID %q: expected %q or %q prefix", did, constants.DIDPrefix, constants.HexPrefix)
	}

	hexPart := strings.TrimPrefix(trimmed, constants.HexPrefix)
	if len(hexPart) != 64 {
		return common.Hash{}, fmt.Errorf("invalid plan DID %q: expected 32-byte identifier, got %d hex chars", did, len(hexPart))
	}
	for _, r := range hexPart {
		if !isHexChar(r) {
			return common.Hash{}, fmt.Errorf("invalid plan DID %q: non-hex character %q", did, r)
		}
	}

	return common.HexToHash(trimmed), nil
}

// ExternalDID renders a chain-native DID back into "did:nv:" notation for
// display and API payloads.
func ExternalDID(did common.Hash) string {
	return constants.DIDPrefix + strings.TrimPrefix(did.Hex(), constants.HexPrefix)
}

func isHexChar(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
