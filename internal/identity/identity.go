// Package identity derives stable receipt identifiers from submitted
// payload bytes. The id is a name-based UUID (version 3, MD5) in the DNS
// namespace, so byte-identical submissions always map to the same key
// across restarts and platforms. It is a convenience key, not a security
// boundary.
package identity

import "github.com/google/uuid"

// NewID returns the deterministic identifier for a payload. The bytes are
// hashed exactly as submitted, with no re-normalization.
func NewID(payload []byte) string {
	return uuid.NewMD5(uuid.NameSpaceDNS, payload).String()
}
