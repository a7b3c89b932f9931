package repository

import "testing"

func TestHistoryKey(t *testing.T) {
	tests := []struct {
		prefix, id, want string
	}{
		{"", "abc", "chat_history:abc"},
		{"portfolio:", "abc", "portfolio:abc"},
	}
	for _, tt := range tests {
		if got := HistoryKey(tt.prefix, tt.id); got != tt.want {
			t.Errorf("HistoryKey(%q, %q) = %q, want %q", tt.prefix, tt.id, got, tt.want)
		}
	}
}
