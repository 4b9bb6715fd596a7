package registry

import (
	"strings"
	"sync"

	"github.com/funvibe/numtower/internal/object"
)

// Impl is a registered operation implementation. It receives the arguments
// with exactly one tag level stripped, in call order, and is responsible for
// tagging its own result when a tag is semantically required.
type Impl func(args ...object.Object) (object.Object, error)

// Table maps (operation, ordered tag signature) to implementations. It is
// populated by package install functions at startup and only grows; there is
// no delete. Put keeps the first registration for a key and silently ignores
// later ones, which makes installing the same package twice a no-op.
//
// The lock mirrors the startup-populated registries elsewhere in our code:
// writes happen during the install phase, reads afterwards, but nothing
// breaks if a caller overlaps the two.
type Table struct {
	mu      sync.RWMutex
	entries map[string]Impl
}

func NewTable() *Table {
	return &Table{entries: make(map[string]Impl)}
}

// key builds the composite lookup key. The tag list is order-sensitive:
// (rational complex) and (complex rational) are distinct signatures.
func key(op string, sig []object.Tag) string {
	var b strings.Builder
	b.WriteString(op)
	for _, tag := range sig {
		b.WriteByte('|')
		b.WriteString(string(tag))
	}
	return b.String()
}

// Put inserts impl under (op, sig) unless the key is already present.
// First registration wins; a duplicate Put is not an error.
func (t *Table) Put(op string, sig []object.Tag, impl Impl) {
	k := key(op, sig)
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.entries[k]; exists {
		return
	}
	t.entries[k] = impl
}

// Get returns the implementation registered under (op, sig). Key equality is
// structural and exact: no subtyping, no partial matches, no wildcards.
func (t *Table) Get(op string, sig []object.Tag) (Impl, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	impl, ok := t.entries[key(op, sig)]
	return impl, ok
}

// Len reports the number of registered entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
