package services_test

import (
	"errors"
	"testing"

	"mediasort/internal/services"
)

func TestWrapPreservesMarkerAndCause(t *testing.T) {
	cause := errors.New("boom")
	err := services.Wrap(services.ErrNotFound, "scan", "stat source root", "source root does not exist", cause)

	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("marker lost: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause lost: %v", err)
	}
	want := "not found: scan: stat source root: source root does not exist: boom"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrConfiguration, "organize", "validate options", "working directory must be set", nil)
	want := "configuration error: organize: validate options: working directory must be set"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
	if err.Error() != "transient failure: service failure" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestIsFatal(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"not found", services.Wrap(services.ErrNotFound, "scan", "", "", nil), true},
		{"validation", services.Wrap(services.ErrValidation, "scan", "", "", nil), true},
		{"configuration", services.Wrap(services.ErrConfiguration, "organize", "", "", nil), true},
		{"locked", services.Wrap(services.ErrLocked, "organize", "", "", nil), true},
		{"transient", services.Wrap(services.ErrTransient, "organize", "", "", nil), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := services.IsFatal(tc.err); got != tc.want {
				t.Fatalf("IsFatal = %v, want %v", got, tc.want)
			}
		})
	}
}
