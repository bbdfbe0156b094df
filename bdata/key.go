package bdata

import (
	"encoding/hex"

	"github.com/pkg/errors"
	"github.com/zeebo/xxh3"
)

const (
	KeyModeDirect = "direct"
	KeyModeDigest = "digest"
)

//KeyFunc derives the index key from a bin. It is applied both when the
//index is built and when it is probed.
type KeyFunc func(bin string) string

//DirectKey uses the bin verbatim. Lookups must use the same representation
//as the dataset: no surrounding whitespace, digits only.
func DirectKey(bin string) string {
	return bin
}

//DigestKey renders the 128-bit xxh3 digest of the bin as 32 hex characters.
//It only normalizes key length; prefer DirectKey unless a fixed-width key is
//required downstream.
func DigestKey(bin string) string {
	sum := xxh3.HashString128(bin).Bytes()
	return hex.EncodeToString(sum[:])
}

func KeyFuncFor(mode string) (KeyFunc, error) {
	switch mode {
	case KeyModeDirect, "":
		return DirectKey, nil
	case KeyModeDigest:
		return DigestKey, nil
	}
	return nil, errors.Errorf("unknown key mode %q", mode)
}
