package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"omis_backend/internal/domain/entities"
)

func TestAllocateUnique(t *testing.T) {
	ctx := context.Background()

	t.Run("first candidate free", func(t *testing.T) {
		got, err := allocateUnique(ctx,
			func() (string, error) { return "REF-1", nil },
			func(context.Context, string) (bool, error) { return false, nil },
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "REF-1" {
			t.Fatalf("expected REF-1, got %q", got)
		}
	})

	t.Run("retries collisions until free", func(t *testing.T) {
		calls := 0
		got, err := allocateUnique(ctx,
			func() (string, error) {
				calls++
				return "REF-" + strings.Repeat("X", calls), nil
			},
			func(_ context.Context, candidate string) (bool, error) {
				return len(candidate) < len("REF-XXX"), nil
			},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "REF-XXX" {
			t.Fatalf("expected third candidate, got %q", got)
		}
		if calls != 3 {
			t.Fatalf("expected 3 attempts, got %d", calls)
		}
	})

	t.Run("exhausts after bounded attempts", func(t *testing.T) {
		calls := 0
		_, err := allocateUnique(ctx,
			func() (string, error) { calls++; return "TAKEN", nil },
			func(context.Context, string) (bool, error) { return true, nil },
		)
		if !errors.Is(err, entities.ErrAllocationExhausted) {
			t.Fatalf("expected ErrAllocationExhausted, got %v", err)
		}
		if calls != maxAllocationAttempts {
			t.Fatalf("expected %d attempts, got %d", maxAllocationAttempts, calls)
		}
	})

	t.Run("generator error aborts immediately", func(t *testing.T) {
		genErr := errors.New("entropy")
		_, err := allocateUnique(ctx,
			func() (string, error) { return "", genErr },
			func(context.Context, string) (bool, error) { return false, nil },
		)
		if !errors.Is(err, genErr) {
			t.Fatalf("expected generator error, got %v", err)
		}
	})

	t.Run("store error aborts without consuming attempts", func(t *testing.T) {
		storeErr := errors.New("dynamodb down")
		calls := 0
		_, err := allocateUnique(ctx,
			func() (string, error) { calls++; return "REF", nil },
			func(context.Context, string) (bool, error) { return false, storeErr },
		)
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected a single attempt, got %d", calls)
		}
	})
}

func TestCryptoRandString(t *testing.T) {
	got, err := cryptoRandString(referenceAlphabet, orderReferenceLength)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != orderReferenceLength {
		t.Fatalf("expected length %d, got %d", orderReferenceLength, len(got))
	}
	for _, r := range got {
		if !strings.ContainsRune(referenceAlphabet, r) {
			t.Fatalf("character %q outside alphabet", r)
		}
	}
}
