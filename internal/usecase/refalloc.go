package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"omis_backend/internal/domain/entities"
)

// Alphabets for generated identifiers. Order references drop ambiguous
// characters (0/O, 1/I/L) because people read them over the phone; public
// tokens are URL-safe and never read aloud.
const (
	referenceAlphabet   = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	digitAlphabet       = "0123456789"
	publicTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

	orderReferenceLength = 6
	quoteSuffixLength    = 2
	invoiceNumberLength  = 10
	publicTokenLength    = 50
)

// maxAllocationAttempts bounds every retry-until-unique loop. Exhausting it
// raises entities.ErrAllocationExhausted instead of spinning forever.
const maxAllocationAttempts = 10

// randStringFunc produces a random string of length n over the given
// alphabet. Injected so tests can force collisions deterministically.
type randStringFunc func(alphabet string, n int) (string, error)

// cryptoRandString is the production randStringFunc, backed by crypto/rand.
func cryptoRandString(alphabet string, n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// existsFunc checks a candidate against the store.
type existsFunc func(ctx context.Context, candidate string) (bool, error)

// allocateUnique generates candidates until one is free, up to
// maxAllocationAttempts. Store errors abort immediately; only collisions
// consume attempts.
func allocateUnique(ctx context.Context, generate func() (string, error), exists existsFunc) (string, error) {
	for attempt := 0; attempt < maxAllocationAttempts; attempt++ {
		candidate, err := generate()
		if err != nil {
			return "", err
		}
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", entities.ErrAllocationExhausted
}
