// Package intern implements the string-interning pool the lexer core treats
// as an external collaborator (spec: "the core adds to the pool; the pool
// is responsible for any internal synchronization").
package intern

import "sync"

// Atom is an interned string handle. Two atoms are equal exactly when the
// strings they were interned from are equal.
type Atom uint32

// Interner maps byte sequences to Atoms and back. Implementations must be
// safe for concurrent use: the lexer only ever calls Intern from its own
// goroutine, but the owning compile context may read atoms concurrently
// from multiple lexers (e.g. one per included file).
type Interner interface {
	Intern(s []byte) Atom
	Lookup(a Atom) string
}

// Pool is the default Interner: a simple map-backed pool guarded by a
// RWMutex, in the same spirit as token.File's line table in the teacher
// repository (db47h/lex), generalized from "append-only position list" to
// "append-only string table".
type Pool struct {
	mu      sync.RWMutex
	byBytes map[string]Atom
	strings []string
}

// NewPool returns an empty interning pool.
func NewPool() *Pool {
	return &Pool{byBytes: make(map[string]Atom)}
}

// Intern returns the Atom for s, allocating a new one if s has not been
// seen before. The returned Atom is stable for the lifetime of the pool.
func (p *Pool) Intern(s []byte) Atom {
	p.mu.RLock()
	if a, ok := p.byBytes[string(s)]; ok {
		p.mu.RUnlock()
		return a
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	// Another goroutine may have interned s while we waited for the lock.
	if a, ok := p.byBytes[string(s)]; ok {
		return a
	}
	str := string(s)
	a := Atom(len(p.strings))
	p.strings = append(p.strings, str)
	p.byBytes[str] = a
	return a
}

// Lookup returns the string an Atom was interned from. It panics if a was
// not produced by this pool, which indicates a programmer error (mixing
// atoms across pools).
func (p *Pool) Lookup(a Atom) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if int(a) >= len(p.strings) {
		panic("intern: atom not from this pool")
	}
	return p.strings[a]
}

// Len reports how many distinct strings have been interned.
func (p *Pool) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.strings)
}
