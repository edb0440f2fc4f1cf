// Package id generates Stripe-style prefixed identifiers such as "tkt_xK9mP2vL3nQa".
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// base62: 0-9, A-Z, a-z
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const DefaultLength = 12

const (
	PrefixOrganization = "org"
	PrefixTicket       = "tkt"
	PrefixVote         = "vote"
)

// Generate returns a cryptographically random base62 string.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	max := big.NewInt(int64(len(alphabet)))
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		b.WriteByte(alphabet[n.Int64()])
	}
	return b.String(), nil
}

// New returns "prefix_<random>".
func New(prefix string) (string, error) {
	s, err := Generate(DefaultLength)
	if err != nil {
		return "", err
	}
	return prefix + "_" + s, nil
}

func NewOrganizationID() (string, error) { return New(PrefixOrganization) }
func NewTicketID() (string, error)       { return New(PrefixTicket) }
func NewVoteID() (string, error)         { return New(PrefixVote) }

// HasPrefix reports whether s is a well-formed id carrying prefix.
func HasPrefix(s, prefix string) bool {
	p, rest, ok := strings.Cut(s, "_")
	if !ok || p != prefix || rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if strings.IndexByte(alphabet, rest[i]) < 0 {
			return false
		}
	}
	return true
}
