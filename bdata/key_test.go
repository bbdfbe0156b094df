package bdata

import (
	"encoding/hex"
	"testing"
)

func TestDirectKeyIsVerbatim(t *testing.T) {
	for _, bin := range []string{"411111", "49927398", " 411111", ""} {
		if got := DirectKey(bin); got != bin {
			t.Fatalf("DirectKey(%q) = %q", bin, got)
		}
	}
}

func TestDigestKey(t *testing.T) {
	a := DigestKey("411111")
	if len(a) != 32 {
		t.Fatalf("expected 32 hex chars, got %d (%s)", len(a), a)
	}
	if _, err := hex.DecodeString(a); err != nil {
		t.Fatalf("digest key is not hex: %v", err)
	}
	if DigestKey("411111") != a {
		t.Fatalf("digest key not deterministic")
	}
	if DigestKey("411112") == a {
		t.Fatalf("distinct bins share a digest key")
	}
	if len(DigestKey("22710012")) != len(a) {
		t.Fatalf("digest keys differ in length")
	}
}

func TestKeyFuncFor(t *testing.T) {
	cases := []struct {
		mode string
		bin  string
		want string
	}{
		{mode: "", bin: "411111", want: "411111"},
		{mode: KeyModeDirect, bin: "411111", want: "411111"},
		{mode: KeyModeDigest, bin: "411111", want: DigestKey("411111")},
	}
	for _, tc := range cases {
		keyFunc, err := KeyFuncFor(tc.mode)
		if err != nil {
			t.Fatalf("mode %q: %v", tc.mode, err)
		}
		if got := keyFunc(tc.bin); got != tc.want {
			t.Fatalf("mode %q: key = %q, want %q", tc.mode, got, tc.want)
		}
	}
	if _, err := KeyFuncFor("md5"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
