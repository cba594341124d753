package internal

import (
	"strings"
	"sync"
)

// String interning for short, frequently repeated strings (object keys).
// The table is capacity-bounded: once full, inputs pass through untouched
// rather than evicting, so lookup cost stays flat under key churn.

const (
	// maxInternLength bounds the length of strings worth interning.
	// Long strings are rarely repeated and would bloat the table.
	maxInternLength = 24

	// maxInternEntries caps table growth to prevent memory exhaustion
	// from adversarial inputs with unbounded distinct keys.
	maxInternEntries = 4096
)

var (
	internMu    sync.RWMutex
	internTable = make(map[string]string, 256)
)

// InternShort returns a canonical copy of s when s is short enough to be
// worth interning, otherwise s itself. The returned string never aliases
// a larger backing array.
func InternShort(s string) string {
	if len(s) == 0 || len(s) > maxInternLength {
		return s
	}

	internMu.RLock()
	c, ok := internTable[s]
	internMu.RUnlock()
	if ok {
		return c
	}

	internMu.Lock()
	defer internMu.Unlock()
	if c, ok := internTable[s]; ok {
		return c
	}
	if len(internTable) >= maxInternEntries {
		return s
	}
	c = strings.Clone(s)
	internTable[c] = c
	return c
}
