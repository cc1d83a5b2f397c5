package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir: %v", err)
	}
	t.Setenv("BILANCIO_TEST_DIR", "/tmp/bilancio")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "/var/data/ledger.db", "/var/data/ledger.db"},
		{"tilde prefix", "~/ledger.db", filepath.Join(home, "ledger.db")},
		{"bare tilde", "~", home},
		{"env var", "$BILANCIO_TEST_DIR/ledger.db", "/tmp/bilancio/ledger.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
