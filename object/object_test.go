package object

import (
	"reflect"
	"testing"

	"github.com/pontaoski/woc/ast"
)

func TestDisplay(t *testing.T) {
	cases := []struct {
		obj  Object
		want string
	}{
		{Null{}, "null"},
		{Integer(-7), "-7"},
		{Float(10.5), "10.5"},
		{Float(10), "10"},
		{Boolean(false), "false"},
		{String("hi there"), "hi there"},
		{Array{Integer(1), String("a"), Null{}}, "[1, a, null]"},
		{Array(nil), "[]"},
		{&Function{Name: "add", Parameters: []ast.Identifier{"a", "b"}}, "func add(a, b)"},
		{&Function{Parameters: []ast.Identifier{"x"}}, "func(x)"},
		{Return{Value: Integer(20)}, "20"},
		{Errorf("division by zero"), "error: division by zero"},
	}

	for _, c := range cases {
		if got := c.obj.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		obj  Object
		want bool
	}{
		{Boolean(true), true},
		{Boolean(false), false},
		{Integer(0), false},
		{Integer(-1), true},
		{Float(0), false},
		{Float(0.1), true},
		{Null{}, false},
		{String("x"), false},
		{Array{Integer(1)}, false},
	}

	for _, c := range cases {
		if got := Truthy(c.obj); got != c.want {
			t.Errorf("Truthy(%s %s) = %v, want %v", c.obj.Kind(), c.obj, got, c.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	if got := Unwrap(Return{Value: Integer(1)}); got != Integer(1) {
		t.Errorf("got %v", got)
	}
	if got := Unwrap(Integer(2)); got != Integer(2) {
		t.Errorf("got %v", got)
	}
}

func TestScopeLookupWalksParents(t *testing.T) {
	root := NewScope(nil)
	root.Set("x", Integer(1))
	root.Set("y", Integer(2))

	child := NewScope(root)
	child.Set("x", Integer(10))

	if v, _ := child.Get("x"); v != Integer(10) {
		t.Errorf("child x = %v, want 10", v)
	}
	if v, _ := child.Get("y"); v != Integer(2) {
		t.Errorf("child y = %v, want 2", v)
	}
	if v, _ := root.Get("x"); v != Integer(1) {
		t.Errorf("shadowing changed root x to %v", v)
	}
	if _, ok := child.Get("missing"); ok {
		t.Error("missing name resolved")
	}
	if child.Parent() != root {
		t.Error("parent link lost")
	}
}

func TestScopeWritesAreShared(t *testing.T) {
	root := NewScope(nil)
	a := NewScope(root)
	b := NewScope(root)

	root.Set("n", Integer(1))
	if v, _ := a.Get("n"); v != Integer(1) {
		t.Errorf("a sees %v", v)
	}
	root.Set("n", Integer(2))
	if v, _ := b.Get("n"); v != Integer(2) {
		t.Errorf("b sees %v after rebinding", v)
	}
}

func TestScopeNames(t *testing.T) {
	s := NewScope(NewScope(nil))
	s.Set("zeta", Null{})
	s.Set("alpha", Null{})
	if got := s.Names(); !reflect.DeepEqual(got, []string{"alpha", "zeta"}) {
		t.Errorf("got %v", got)
	}
}
