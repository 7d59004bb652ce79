package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// ShortHex returns the first n characters of SHA256Hex(input).
// Used to anonymize client IPs in logs while keeping them correlatable.
func ShortHex(input string, n int) string {
	full := SHA256Hex(input)
	if n > len(full) {
		return full
	}
	return full[:n]
}

// SaltedHex hashes salt+input. Used when the anonymized value must not be
// reversible by brute-forcing the small IP space.
func SaltedHex(input, salt string) string {
	return SHA256Hex(salt + input)
}
