package config

import (
	"reflect"
	"testing"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"http://a.test", []string{"http://a.test"}},
		{"http://a.test, http://b.test", []string{"http://a.test", "http://b.test"}},
		{" , ,http://a.test,", []string{"http://a.test"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := splitAndTrim(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("splitAndTrim(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeEnv(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"prod", "production"},
		{"Production", "production"},
		{"staging", "staging"},
		{"local", "local"},
		{"dev", "dev"},
		{"anything", "dev"},
	}
	for _, tt := range tests {
		if got := normalizeEnv(tt.raw); got != tt.want {
			t.Fatalf("normalizeEnv(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "dev")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("OBJECT_STORE", "")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.ObjectStoreType != "local" {
		t.Fatalf("ObjectStoreType = %q, want local", cfg.ObjectStoreType)
	}
	if cfg.EngineVersion == "" {
		t.Fatal("EngineVersion should default")
	}
}
