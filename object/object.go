// Package object defines the values the evaluator produces and the scopes
// it binds them in.
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pontaoski/woc/ast"
)

type Kind int

const (
	NULL Kind = iota
	INTEGER
	FLOAT
	BOOLEAN
	STRING
	ARRAY
	FUNCTION
	RETURN
	ERROR
)

var kindNames = map[Kind]string{
	NULL:     "NULL",
	INTEGER:  "INTEGER",
	FLOAT:    "FLOAT",
	BOOLEAN:  "BOOLEAN",
	STRING:   "STRING",
	ARRAY:    "ARRAY",
	FUNCTION: "FUNCTION",
	RETURN:   "RETURN",
	ERROR:    "ERROR",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Object interface {
	is_Object()
	Kind() Kind
	String() string
}

type Null struct{}

func (Null) is_Object()     {}
func (Null) Kind() Kind     { return NULL }
func (Null) String() string { return "null" }

type Integer int64

func (Integer) is_Object()       {}
func (Integer) Kind() Kind       { return INTEGER }
func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }

type Float float64

func (Float) is_Object()       {}
func (Float) Kind() Kind       { return FLOAT }
func (v Float) String() string { return strconv.FormatFloat(float64(v), 'f', -1, 64) }

type Boolean bool

func (Boolean) is_Object()       {}
func (Boolean) Kind() Kind       { return BOOLEAN }
func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }

type String string

func (String) is_Object()       {}
func (String) Kind() Kind       { return STRING }
func (v String) String() string { return string(v) }

type Array []Object

func (Array) is_Object() {}
func (Array) Kind() Kind { return ARRAY }
func (v Array) String() string {
	parts := make([]string, 0, len(v))
	for _, elem := range v {
		parts = append(parts, elem.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Function is a closure. Scope is the scope it was defined in, shared with
// every other holder of that scope.
type Function struct {
	Name       string
	Parameters []ast.Identifier
	Body       ast.Block
	Scope      *Scope
}

func (*Function) is_Object() {}
func (*Function) Kind() Kind { return FUNCTION }
func (v *Function) String() string {
	params := make([]string, 0, len(v.Parameters))
	for _, p := range v.Parameters {
		params = append(params, string(p))
	}
	if v.Name == "" {
		return "func(" + strings.Join(params, ", ") + ")"
	}
	return "func " + v.Name + "(" + strings.Join(params, ", ") + ")"
}

// Return wraps the value of a return statement while it travels out of
// nested blocks. Function calls unwrap it.
type Return struct {
	Value Object
}

func (Return) is_Object()       {}
func (Return) Kind() Kind       { return RETURN }
func (v Return) String() string { return v.Value.String() }

type Error struct {
	Message string
}

func Errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func (*Error) is_Object()       {}
func (*Error) Kind() Kind       { return ERROR }
func (v *Error) String() string { return "error: " + v.Message }

// Truthy reports whether o counts as true in a condition. Numbers are true
// when non-zero; only numbers and booleans are ever true.
func Truthy(o Object) bool {
	switch o := o.(type) {
	case Boolean:
		return bool(o)
	case Integer:
		return o != 0
	case Float:
		return o != 0
	default:
		return false
	}
}

// Unwrap strips a Return wrapper, if any.
func Unwrap(o Object) Object {
	if ret, ok := o.(Return); ok {
		return ret.Value
	}
	return o
}
