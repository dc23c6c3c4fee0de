package querycache

import (
	"fmt"
	"strings"
)

// Key identifies a cache slot as an ordered tuple of segments, typically
// [resource, filters..., page]. Two keys address the same slot iff every
// segment is equal; a prefix addresses every slot whose leading segments
// match it.
type Key []string

// K builds a Key from arbitrary parts. Nil parts become empty segments,
// so an unset filter still occupies its position in the tuple and
// K("categories", nil, 2) stays distinct from K("categories", "shoes", 2).
func K(parts ...any) Key {
	key := make(Key, 0, len(parts))
	for _, part := range parts {
		if part == nil {
			key = append(key, "")
			continue
		}
		key = append(key, fmt.Sprint(part))
	}
	return key
}

// HasPrefix reports whether the leading segments of k equal prefix.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i, segment := range prefix {
		if k[i] != segment {
			return false
		}
	}
	return true
}

// String renders the key for map addressing and log output. The separator
// cannot occur in URL-safe segment values.
func (k Key) String() string {
	return strings.Join(k, "\x1f")
}
