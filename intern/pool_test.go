package intern_test

import (
	"testing"

	"github.com/db47h/splex/intern"
)

func TestPool_InternDedups(t *testing.T) {
	p := intern.NewPool()
	a := p.Intern([]byte("foo"))
	b := p.Intern([]byte("foo"))
	c := p.Intern([]byte("bar"))
	if a != b {
		t.Errorf("same string interned twice produced different atoms: %d != %d", a, b)
	}
	if a == c {
		t.Errorf("different strings produced the same atom")
	}
	if got := p.Lookup(a); got != "foo" {
		t.Errorf("Lookup(a) = %q, want foo", got)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestPool_LookupUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	p := intern.NewPool()
	p.Lookup(42)
}
