// Package identity distinguishes record identifiers minted by the remote
// store (UUIDs) from identifiers minted locally while in demo mode. A demo
// identifier must never be sent upstream as an update target.
package identity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// IsRemoteID reports whether id is a well-formed version 1-5 UUID in the
// canonical hyphenated form, i.e. an identifier the remote store could have
// generated. Anything else is treated as demo-origin. The length check rejects
// the alternate encodings uuid.Parse tolerates (32-hex, urn:uuid:, braced),
// which the store never emits.
func IsRemoteID(id string) bool {
	if len(id) != 36 {
		return false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	v := parsed.Version()
	return v >= 1 && v <= 5
}

// NewDemoID mints a time-based identifier for records created in demo mode.
// The format is deliberately distinguishable from a UUID.
func NewDemoID() string {
	return fmt.Sprintf("demo-%d", time.Now().UnixMilli())
}
