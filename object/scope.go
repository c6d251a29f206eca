package object

import "sort"

// Scope maps names to values and falls back to its parent on lookup.
// Scopes are shared by pointer, so a binding written after a closure was
// created is visible to that closure.
type Scope struct {
	bindings map[string]Object
	parent   *Scope
}

func NewScope(parent *Scope) *Scope {
	return &Scope{
		bindings: map[string]Object{},
		parent:   parent,
	}
}

func (s *Scope) Get(name string) (Object, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if v, ok := scope.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name in s itself, shadowing any binding in a parent.
func (s *Scope) Set(name string, value Object) {
	s.bindings[name] = value
}

func (s *Scope) Parent() *Scope {
	return s.parent
}

// Names lists the names bound directly in s, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.bindings))
	for name := range s.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
