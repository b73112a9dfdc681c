package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal([]byte("name: a\ncount: 2\n"), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.Name != "a" || s.Count != 2 {
		t.Errorf("got %+v", s)
	}
}

func TestUnmarshal_Validation(t *testing.T) {
	t.Parallel()

	var s sample
	if err := Unmarshal(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data error = %v", err)
	}
	if err := Unmarshal([]byte("name: a"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination error = %v", err)
	}
}

func TestUnmarshal_InputTooLarge(t *testing.T) {
	t.Parallel()

	var s sample
	big := []byte("name: " + strings.Repeat("a", MaxInputSize))
	if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversize error = %v", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var s sample
	err := UnmarshalStrict([]byte("name: a\nunknown: 1\n"), &s)
	if err == nil {
		t.Error("strict unmarshal should reject unknown fields")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	out, err := Marshal(sample{Name: "x", Count: 3})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back sample
	if err := Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Name != "x" || back.Count != 3 {
		t.Errorf("round trip got %+v", back)
	}
}
