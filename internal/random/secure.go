// Package random provides cryptographically secure generation of the
// transaction ID used to match a query to its response.
package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// TransactionID generates a cryptographically random 16-bit transaction ID.
// NEVER use math/rand here: a predictable ID lets an off-path attacker
// forge a matching response before the real one arrives.
func TransactionID() uint16 {
	var buf [2]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// proceeding with a predictable ID is worse than crashing
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return binary.BigEndian.Uint16(buf[:])
}
