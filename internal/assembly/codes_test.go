package assembly

import (
	"testing"
)

// TestCodec_CodesAreShortAndUnique verifies generated share codes meet the
// minimum length and do not repeat in practice.
func TestCodec_CodesAreShortAndUnique(t *testing.T) {
	codec, err := NewCodec("test deployment salt")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		code, err := codec.NewCode()
		if err != nil {
			t.Fatalf("NewCode: %v", err)
		}
		if len(code) < 5 {
			t.Fatalf("code %q shorter than the minimum", code)
		}
		if seen[code] {
			t.Fatalf("code %q repeated", code)
		}
		seen[code] = true
	}
}

// TestCodec_EmptySaltStillWorks verifies the codec does not require a salt,
// matching a fresh deployment with no configuration.
func TestCodec_EmptySaltStillWorks(t *testing.T) {
	codec, err := NewCodec("")
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	code, err := codec.NewCode()
	if err != nil {
		t.Fatalf("NewCode: %v", err)
	}
	if code == "" {
		t.Error("empty code generated")
	}
}
