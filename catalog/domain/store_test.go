package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseReleaseType_AcceptsOnlyKnownVariants(t *testing.T) {
	for _, rt := range ReleaseTypes() {
		got, ok := ParseReleaseType(string(rt))
		if !ok || got != rt {
			t.Fatalf("expected %q to parse, got %q ok=%v", rt, got, ok)
		}
	}

	for _, in := range []string{"", "major", "Beta", " Patch"} {
		if _, ok := ParseReleaseType(in); ok {
			t.Fatalf("expected %q to be rejected", in)
		}
	}
}

func TestStoreError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := fmt.Errorf("list: %w", &StoreError{Op: "page after", Key: "b", Err: cause})

	if !IsStoreError(err) {
		t.Fatalf("expected wrapped StoreError to be detected")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected errors.Is to reach the cause")
	}
	if !strings.Contains(err.Error(), `"b"`) {
		t.Fatalf("expected key in message, got %q", err.Error())
	}
}

func TestIsStoreError_FalseForNotFound(t *testing.T) {
	if IsStoreError(ErrNotFound) {
		t.Fatalf("ErrNotFound must not be a StoreError")
	}
}
