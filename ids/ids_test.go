// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"strconv"
	"strings"
	"testing"
)

func TestNewFormat(t *testing.T) {
	id := New(KindContent)

	parts := strings.Split(id, "_")
	if len(parts) != 3 {
		t.Fatalf("expected kind_millis_suffix, got %q", id)
	}
	if parts[0] != "content" {
		t.Errorf("expected kind 'content', got %q", parts[0])
	}
	if _, err := strconv.ParseInt(parts[1], 10, 64); err != nil {
		t.Errorf("expected numeric millis segment, got %q", parts[1])
	}
	if len(parts[2]) != suffixLen {
		t.Errorf("expected %d-char suffix, got %q", suffixLen, parts[2])
	}
}

func TestNewUniqueWithinMillisecond(t *testing.T) {
	// A tight loop lands many calls in the same millisecond; the random
	// suffix has to keep them distinct.
	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		id := New(KindEngagement)
		if seen[id] {
			t.Fatalf("duplicate identifier generated: %q", id)
		}
		seen[id] = true
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{New(KindPoll), "poll"},
		{"tx_1700000000000_abcdefghi", "tx"},
		{"nounderscore", ""},
		{"_leading", ""},
	}

	for _, tt := range tests {
		if got := Kind(tt.id); got != tt.want {
			t.Errorf("Kind(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
