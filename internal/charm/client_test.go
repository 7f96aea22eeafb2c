// ABOUTME: Tests for Charm KV key helpers and default configuration
// ABOUTME: Runs offline; nothing here opens a KV database
package charm

import (
	"testing"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"index marker", IndexKey("users"), "index:users"},
		{"vector prefix", VectorKeyPrefix("users"), "vector:users:"},
		{"vector key", VectorKey("users", "abc"), "vector:users:abc"},
		{"id containing colon", VectorKey("users", "a:b"), "vector:users:a:b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Host != DefaultHost {
		t.Errorf("Host = %s, want %s", cfg.Host, DefaultHost)
	}
	if cfg.DBName != DefaultDBName {
		t.Errorf("DBName = %s, want %s", cfg.DBName, DefaultDBName)
	}
	if !cfg.AutoSync {
		t.Error("AutoSync = false, want true")
	}
}
