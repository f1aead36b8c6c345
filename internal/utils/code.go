package utils

import (
	"crypto/rand"
	"math/big"
)

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // omit easily confused chars

const ticketIDLength = 8

// NewTicketID generates a human-readable ticket reference like
// "TKT-7GQ2MNP4". Collisions surface as a unique-index violation and
// the caller retries.
func NewTicketID() (string, error) {
	code, err := generateCode(ticketIDLength)
	if err != nil {
		return "", err
	}
	return "TKT-" + code, nil
}

func generateCode(n int) (string, error) {
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		idxBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", err
		}
		b[i] = codeAlphabet[idxBig.Int64()]
	}
	return string(b), nil
}
