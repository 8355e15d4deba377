package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrInvalidCredentials,
		ErrForbidden,
		ErrInvalidID,
		ErrInvalidStatus,
		ErrInvalidQuantity,
		ErrInsufficientStock,
		ErrOrderNotPending,
		ErrCreateFailed,
		ErrUpdateFailed,
		ErrDeleteFailed,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Fatalf("sentinel %v must not match %v", a, b)
			}
		}
	}
}

func TestWrappedSentinelMatches(t *testing.T) {
	wrapped := fmt.Errorf("reserve stock: %w", ErrInsufficientStock)
	if !errors.Is(wrapped, ErrInsufficientStock) {
		t.Fatal("wrapped sentinel must match with errors.Is")
	}
}
