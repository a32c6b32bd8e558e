package code

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Length is the fixed width of every one-time code.
const Length = 8

var codeSpace = big.NewInt(100_000_000) // [0, 10^8)

// New generates an 8-digit zero-padded numeric one-time code, uniform over
// [0, 10^8), from the OS CSPRNG. Used for both email verification codes and
// forgotten-password codes.
func New() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", Length, n.Int64()), nil
}
