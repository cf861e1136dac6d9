package naming

import (
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Claims hands out output paths to inputs within one batch run. Two inputs
// that map to the same output ("clip.mkv" and "clip.mp4" both resolving to
// "clip.gif") get distinct paths; the later one is suffixed "-2", "-3" and
// so on. Safe for concurrent use.
type Claims struct {
	mu     sync.Mutex
	owners map[string]string // output path -> input that claimed it
	next   map[string]int    // requested path -> next suffix to try
}

func NewClaims() *Claims {
	return &Claims{
		owners: make(map[string]string),
		next:   make(map[string]int),
	}
}

// Claim returns the output path input should write to. Claiming the same
// path twice for the same input returns it unchanged.
func (c *Claims) Claim(input, requested string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if owner, ok := c.owners[requested]; !ok || owner == input {
		c.owners[requested] = input
		return requested
	}

	dir := filepath.Dir(requested)
	base := filepath.Base(requested)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	n := c.next[requested]
	if n < 2 {
		n = 2
	}
	for ; ; n++ {
		candidate := filepath.Join(dir, stem+"-"+strconv.Itoa(n)+ext)
		if owner, ok := c.owners[candidate]; !ok || owner == input {
			c.owners[candidate] = input
			c.next[requested] = n + 1
			return candidate
		}
	}
}

// Len returns the number of claimed paths.
func (c *Claims) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.owners)
}
