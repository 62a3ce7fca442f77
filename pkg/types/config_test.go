package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:    "empty backend returns ErrBackendEmpty",
			config:  Config{Backend: "", DataDir: "/tmp/data"},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend returns ErrBackendUnknown",
			config:  Config{Backend: "postgres", DataDir: "/tmp/data"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "valid sqlite config",
			config:  Config{Backend: "sqlite", DataDir: "/tmp/data"},
			wantErr: nil,
		},
		{
			name:    "valid file config with year",
			config:  Config{Backend: "file", DataDir: "/tmp/data", Year: 2026},
			wantErr: nil,
		},
		{
			name:    "memory with empty DataDir is valid at config level",
			config:  Config{Backend: "memory", DataDir: ""},
			wantErr: nil,
		},
		{
			name:    "year before the Gregorian reform returns ErrInvalidYear",
			config:  Config{Backend: "sqlite", Year: 1200},
			wantErr: ErrInvalidYear,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigNamespaceSuffix(t *testing.T) {
	if got := (Config{}).GetNamespaceSuffix(); got != DefaultNamespaceSuffix {
		t.Fatalf("expected %q, got %q", DefaultNamespaceSuffix, got)
	}
	if got := (Config{NamespaceSuffix: "reditusmen"}).GetNamespaceSuffix(); got != "reditusmen" {
		t.Fatalf("expected reditusmen, got %q", got)
	}
}
