package store

import (
	"fmt"
	"strings"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError[string]{ID: "x", KnownIDs: []string{"a", "b"}})

	if !IsNotFound[string](err) {
		t.Errorf("Expected IsNotFound to match")
	}
	if IsExists[string](err) || IsIdentityChanged[string](err) {
		t.Errorf("Expected other predicates not to match")
	}

	msg := err.Error()
	if !strings.Contains(msg, "x") || !strings.Contains(msg, "a") || !strings.Contains(msg, "b") {
		t.Errorf("Expected message to carry the identity and the known set, got %q", msg)
	}
}

func TestExistsError(t *testing.T) {
	err := error(&ExistsError[int]{ID: 42})

	if !IsExists[int](err) {
		t.Errorf("Expected IsExists to match")
	}
	if !strings.Contains(err.Error(), "42") {
		t.Errorf("Expected message to carry the identity, got %q", err.Error())
	}
}

func TestIdentityChangedError(t *testing.T) {
	err := error(&IdentityChangedError[string]{From: "old", To: "new"})

	if !IsIdentityChanged[string](err) {
		t.Errorf("Expected IsIdentityChanged to match")
	}
	msg := err.Error()
	if !strings.Contains(msg, "old") || !strings.Contains(msg, "new") {
		t.Errorf("Expected message to carry both identities, got %q", msg)
	}
}

func TestPredicatesOnWrappedErrors(t *testing.T) {
	inner := &NotFoundError[string]{ID: "x"}
	wrapped := fmt.Errorf("operation failed: %w", inner)

	if !IsNotFound[string](wrapped) {
		t.Errorf("Expected IsNotFound to match through wrapping")
	}
}

func TestPredicatesOnForeignErrors(t *testing.T) {
	err := fmt.Errorf("some other error")

	if IsNotFound[string](err) || IsExists[string](err) || IsIdentityChanged[string](err) {
		t.Errorf("Expected predicates not to match a plain error")
	}
}
