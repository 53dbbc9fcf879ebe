package repository

import (
	"reflect"
	"testing"
)

func TestFeatureInterestRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		in   []string
	}{
		{"ordered selection", []string{"AI Workout Plans", "Meal Plans"}},
		{"duplicates preserved", []string{"Meal Plans", "Meal Plans", "Community"}},
		{"single value", []string{"Progress Tracking"}},
		{"empty selection", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := encodeFeatureInterest(tc.in)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			decoded, err := decodeFeatureInterest(&encoded)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !reflect.DeepEqual(decoded, tc.in) {
				t.Fatalf("expected %v back, got %v", tc.in, decoded)
			}
		})
	}
}

func TestFeatureInterestNilEncodesAsEmptySequence(t *testing.T) {
	encoded, err := encodeFeatureInterest(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if encoded != "[]" {
		t.Fatalf("expected empty JSON array, got %q", encoded)
	}
}

func TestFeatureInterestDecodeNeverReturnsNil(t *testing.T) {
	for name, encoded := range map[string]*string{
		"null column":  nil,
		"empty string": ptr(""),
		"json null":    ptr("null"),
		"empty array":  ptr("[]"),
	} {
		decoded, err := decodeFeatureInterest(encoded)
		if err != nil {
			t.Fatalf("%s: decode: %v", name, err)
		}
		if decoded == nil {
			t.Fatalf("%s: expected empty slice, got nil", name)
		}
		if len(decoded) != 0 {
			t.Fatalf("%s: expected no values, got %v", name, decoded)
		}
	}
}

func TestFeatureInterestDecodeRejectsMalformedValue(t *testing.T) {
	malformed := `["unterminated`
	if _, err := decodeFeatureInterest(&malformed); err == nil {
		t.Fatal("expected error for malformed stored value")
	}
}

func ptr(s string) *string {
	return &s
}
