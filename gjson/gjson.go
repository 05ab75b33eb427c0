// Package gjson provides JSON-document parsing strategies built on path
// reads into platform response blobs. Each strategy applies only to the
// document variant it understands and contributes nothing otherwise.
package gjson

import (
	polis "github.com/kennycode-git/polis-metadata-tool"
	"github.com/tidwall/gjson"
)

// setInt stores a numeric result under key when present in the blob.
func setInt(bag polis.FieldBag, key string, v gjson.Result) {
	if v.Exists() {
		bag.SetInt(key, int(v.Int()))
	}
}

// setString stores a non-empty string result under key.
func setString(bag polis.FieldBag, key string, v gjson.Result) {
	if v.Exists() && v.String() != "" {
		bag.Set(key, v.String())
	}
}
