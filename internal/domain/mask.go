package domain

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// MaskCitizenID derives a stable pseudonym for a citizen identifier so
// broadcast consumers can correlate events for one citizen without ever
// seeing the national ID.
func MaskCitizenID(citizenID string) string {
	sum := blake2b.Sum256([]byte(citizenID))
	return "cit_" + hex.EncodeToString(sum[:8])
}
