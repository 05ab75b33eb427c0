// Package derive provides pure functions computing the derived fields of a
// record pair: identifiers, language, post type, and engagement rate.
package derive

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// IDLength is the number of characters following the prefix in a generated
// identifier.
const IDLength = 14

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Record ID prefixes.
const (
	PostIDPrefix = "po"
	OPIDPrefix   = "op"
)

// GenerateID returns an identifier of the form <prefix>_<14 chars>.
//
// With a non-empty seed the identifier is deterministic: the first 14 hex
// characters of SHA-256(seed). The same author identity string therefore
// always yields the same OP identifier across repeated extractions.
//
// Without a seed the suffix is 14 random lowercase-alphanumeric characters,
// effectively collision-free at CSV scale.
func GenerateID(prefix, seed string) string {
	if seed != "" {
		sum := sha256.Sum256([]byte(seed))
		return prefix + "_" + hex.EncodeToString(sum[:])[:IDLength]
	}

	buf := make([]byte, IDLength)
	// rand.Read on the crypto source never fails on supported platforms.
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return prefix + "_" + string(buf)
}

// PostID returns a Post identifier. Post IDs are random per extraction.
func PostID() string {
	return GenerateID(PostIDPrefix, "")
}

// OPID returns an OP identifier seeded by the author identity string, so
// the same author maps to a stable ID. With an empty seed the ID is random.
func OPID(seed string) string {
	return GenerateID(OPIDPrefix, seed)
}
