package cookies

import (
	"testing"
	"time"
)

func TestParseExpires(t *testing.T) {
	want := time.Date(2025, time.June, 9, 10, 18, 14, 0, time.UTC)
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"rfc1123", "Wed, 09 Jun 2025 10:18:14 GMT", true},
		{"single digit day", "Wed, 9 Jun 2025 10:18:14 GMT", true},
		{"netscape", "Wed, 09-Jun-2025 10:18:14 GMT", true},
		{"rfc850", "Wednesday, 09-Jun-25 10:18:14 GMT", true},
		{"ansi c", "Wed Jun  9 10:18:14 2025", true},
		{"numeric zone", "Wed, 09 Jun 2025 12:18:14 +0200", true},
		{"surrounding space", "  Wed, 09 Jun 2025 10:18:14 GMT ", true},
		{"empty", "", false},
		{"garbage", "tomorrow", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseExpires(tt.raw)
			if ok != tt.ok {
				t.Fatalf("ParseExpires(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if !ok {
				if !got.IsZero() {
					t.Errorf("expected zero time, got %v", got)
				}
				return
			}
			if !got.Equal(want) {
				t.Errorf("ParseExpires(%q) = %v, want %v", tt.raw, got, want)
			}
			if got.Location() != time.UTC {
				t.Errorf("expected UTC, got %v", got.Location())
			}
		})
	}
}
