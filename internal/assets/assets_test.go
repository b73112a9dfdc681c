package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		style   string
		wantErr error
	}{
		{name: "classic exists", style: "classic"},
		{name: "minimal exists", style: "minimal"},
		{name: "unknown style", style: "brutalist", wantErr: ErrStyleNotFound},
		{name: "empty name", style: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", style: "../secrets", wantErr: ErrInvalidAssetName},
		{name: "path separator", style: "a/b", wantErr: ErrInvalidAssetName},
		{name: "backslash separator", style: `a\b`, wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			css, err := LoadStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
			if tt.wantErr == nil && css == "" {
				t.Errorf("LoadStyle(%q) returned empty CSS", tt.style)
			}
		})
	}
}

func TestLoadStyle_ErrorListsAvailable(t *testing.T) {
	t.Parallel()

	_, err := LoadStyle("nope")
	if err == nil || !strings.Contains(err.Error(), "classic") {
		t.Errorf("error should list available styles, got: %v", err)
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	names := StyleNames()
	if len(names) < 2 {
		t.Fatalf("got %d styles, want at least 2", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Error("style names should be sorted")
		}
	}
}
