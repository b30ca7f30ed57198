package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in       string
		fallback int
		want     int
	}{
		{"", 10, 10},
		{"5", 10, 5},
		{"abc", 10, 10},
		{"0", 10, 10},
		{"-3", 10, 10},
	}
	for _, tt := range tests {
		if got := ParseInt(tt.in, tt.fallback); got != tt.want {
			t.Errorf("ParseInt(%q, %d) = %d, want %d", tt.in, tt.fallback, got, tt.want)
		}
	}
}

func TestBookingCode(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-e5f6-4789-8abc-def012345678")
	code := BookingCode(id)

	if code != "TV12345678" {
		t.Errorf("code = %q, want TV12345678", code)
	}
	if len(code) != 10 || !strings.HasPrefix(code, "TV") {
		t.Errorf("code shape wrong: %q", code)
	}

	// Same id always yields the same code
	if BookingCode(id) != code {
		t.Error("code is not deterministic")
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Asha@Example.COM "); got != "asha@example.com" {
		t.Errorf("got %q", got)
	}
}
