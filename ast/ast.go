// Package ast holds the syntax tree shared by the parser and the evaluator.
//
// Both Expression and Statement are closed: every variant lives in this
// file and is recognised by its marker method, so consumers switch on the
// concrete type. Nodes are plain values without token references, so two
// trees parsed from equivalent text compare equal with reflect.DeepEqual.
package ast

type Node interface {
	is_Node()
	String() string
}

type Expression interface {
	Node
	is_Expression()
}

type Statement interface {
	Node
	is_Statement()
}

type Identifier string

func (v Identifier) is_Node()       {}
func (v Identifier) is_Expression() {}

type Integer int64

func (v Integer) is_Node()       {}
func (v Integer) is_Expression() {}

type Float float64

func (v Float) is_Node()       {}
func (v Float) is_Expression() {}

type Boolean bool

func (v Boolean) is_Node()       {}
func (v Boolean) is_Expression() {}

type String string

func (v String) is_Node()       {}
func (v String) is_Expression() {}

type None struct{}

func (v None) is_Node()       {}
func (v None) is_Expression() {}

type Array []Expression

func (v Array) is_Node()       {}
func (v Array) is_Expression() {}

type Index struct {
	Left  Expression
	Index Expression
}

func (v Index) is_Node()       {}
func (v Index) is_Expression() {}

type Prefix struct {
	Operator string
	Right    Expression
}

func (v Prefix) is_Node()       {}
func (v Prefix) is_Expression() {}

type Infix struct {
	Left     Expression
	Operator string
	Right    Expression
}

func (v Infix) is_Node()       {}
func (v Infix) is_Expression() {}

// If is an if/else chain. Alternative is nil, another If (else if), or a
// Block (else).
type If struct {
	Condition   Expression
	Consequence Block
	Alternative Node
}

func (v If) is_Node()       {}
func (v If) is_Expression() {}

type Call struct {
	Function  Expression
	Arguments []Expression
}

func (v Call) is_Node()       {}
func (v Call) is_Expression() {}

type FunctionLiteral struct {
	Parameters []Identifier
	Body       Block
}

func (v FunctionLiteral) is_Node()       {}
func (v FunctionLiteral) is_Expression() {}

type Let struct {
	Name  Identifier
	Value Expression
}

func (v Let) is_Node()      {}
func (v Let) is_Statement() {}

// Return carries a nil Value for a bare "return;".
type Return struct {
	Value Expression
}

func (v Return) is_Node()      {}
func (v Return) is_Statement() {}

type Block []Node

func (v Block) is_Node()      {}
func (v Block) is_Statement() {}

type Function struct {
	Name       Identifier
	Parameters []Identifier
	Body       Block
}

func (v Function) is_Node()      {}
func (v Function) is_Statement() {}
