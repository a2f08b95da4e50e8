package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidation_UnwrapsToSentinel(t *testing.T) {
	err := Validation("Falta nombre del medico")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if got := Message(err); got != "Falta nombre del medico" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestNotFound_WrappedTwice(t *testing.T) {
	errTutor := NotFound("Tutor no encontrado")
	wrapped := fmt.Errorf("get tutor: %w", errTutor)

	if !errors.Is(wrapped, errTutor) || !errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("expected both sentinels to match, got %v", wrapped)
	}
	if got := Message(wrapped); got != "Tutor no encontrado" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestMessage_UnknownError(t *testing.T) {
	if got := Message(errors.New("dial tcp: refused")); got != "" {
		t.Fatalf("store errors must not leak, got %q", got)
	}
}
