package optics

import (
	"github.com/cybergodev/optics/internal"
)

// Key is an opaque object member key. Construct with KeyOf and read back
// with String; the two are mutual inverses. Short keys are interned so
// documents with repeated field names share storage.
type Key string

// KeyOf converts plain text to a Key.
func KeyOf(s string) Key {
	return Key(internal.InternShort(s))
}

// String returns the key as plain text.
func (k Key) String() string {
	return string(k)
}

// AsKey converts between plain text and Key. Total in both directions:
// KeyOf never fails and String recovers the exact original text.
var AsKey = NewIso(KeyOf, Key.String)
