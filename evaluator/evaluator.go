// Package evaluator walks AST nodes and produces objects.
//
// Evaluation is total: operator and type combinations that have no meaning
// yield object.Null, and the few failures worth reporting (wrong arity,
// division by zero) yield an *object.Error value. Nothing panics.
package evaluator

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/woc/ast"
	"github.com/pontaoski/woc/object"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/woc", "evaluator")

func Eval(node ast.Node, scope *object.Scope) object.Object {
	if plog.LevelAt(capnslog.TRACE) {
		plog.Tracef("eval %T %s", node, node)
	}

	switch node := node.(type) {
	case ast.Integer:
		return object.Integer(node)
	case ast.Float:
		return object.Float(node)
	case ast.Boolean:
		return object.Boolean(node)
	case ast.String:
		return object.String(node)
	case ast.None:
		return object.Null{}

	case ast.Identifier:
		if v, ok := scope.Get(string(node)); ok {
			return v
		}
		return object.Null{}

	case ast.Array:
		elems := make(object.Array, 0, len(node))
		for _, e := range node {
			v := Eval(e, scope)
			if abrupt(v) {
				return v
			}
			elems = append(elems, v)
		}
		return elems

	case ast.Index:
		left := Eval(node.Left, scope)
		if abrupt(left) {
			return left
		}
		index := Eval(node.Index, scope)
		if abrupt(index) {
			return index
		}
		return evalIndex(left, index)

	case ast.Prefix:
		right := Eval(node.Right, scope)
		if abrupt(right) {
			return right
		}
		return evalPrefix(node.Operator, right)

	case ast.Infix:
		left := Eval(node.Left, scope)
		if abrupt(left) {
			return left
		}
		right := Eval(node.Right, scope)
		if abrupt(right) {
			return right
		}
		return evalInfix(node.Operator, left, right)

	case ast.If:
		return evalIf(node, scope)

	case ast.Call:
		return evalCall(node, scope)

	case ast.FunctionLiteral:
		return &object.Function{
			Parameters: node.Parameters,
			Body:       node.Body,
			Scope:      scope,
		}

	case ast.Let:
		v := object.Unwrap(Eval(node.Value, scope))
		if _, ok := v.(*object.Error); ok {
			return v
		}
		if plog.LevelAt(capnslog.TRACE) {
			plog.Tracef("let %s = %s", node.Name, v)
		}
		scope.Set(string(node.Name), v)
		return object.Null{}

	case ast.Return:
		if node.Value == nil {
			return object.Return{Value: object.Null{}}
		}
		v := Eval(node.Value, scope)
		if abrupt(v) {
			return v
		}
		return object.Return{Value: v}

	case ast.Block:
		return evalStatements(node, object.NewScope(scope))

	case ast.Function:
		scope.Set(string(node.Name), &object.Function{
			Name:       string(node.Name),
			Parameters: node.Parameters,
			Body:       node.Body,
			Scope:      scope,
		})
		return object.Null{}
	}

	plog.Warningf("no evaluation rule for %T", node)
	return object.Null{}
}

// abrupt reports whether o must stop the evaluation of its enclosing
// construct and travel outward unchanged.
func abrupt(o object.Object) bool {
	switch o.(type) {
	case object.Return, *object.Error:
		return true
	}
	return false
}

// evalStatements runs nodes in order inside scope. It stops at the first
// Return or Error and otherwise yields the last value.
func evalStatements(nodes []ast.Node, scope *object.Scope) object.Object {
	var result object.Object = object.Null{}
	for _, node := range nodes {
		result = Eval(node, scope)
		if abrupt(result) {
			return result
		}
	}
	return result
}

func evalIf(node ast.If, scope *object.Scope) object.Object {
	cond := Eval(node.Condition, scope)
	if abrupt(cond) {
		return cond
	}

	if object.Truthy(cond) {
		plog.Tracef("if %s is true, taking consequence", node.Condition)
		return evalStatements(node.Consequence, object.NewScope(scope))
	}

	switch alt := node.Alternative.(type) {
	case ast.If:
		return evalIf(alt, scope)
	case ast.Block:
		plog.Tracef("if %s is false, taking alternative", node.Condition)
		return evalStatements(alt, object.NewScope(scope))
	}
	return object.Null{}
}

func evalCall(node ast.Call, scope *object.Scope) object.Object {
	callee := Eval(node.Function, scope)
	if abrupt(callee) {
		return callee
	}
	fn, ok := callee.(*object.Function)
	if !ok {
		plog.Debugf("call of non-function %s", node.Function)
		return object.Null{}
	}

	args := make([]object.Object, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		v := Eval(arg, scope)
		if abrupt(v) {
			return v
		}
		args = append(args, v)
	}

	if len(args) != len(fn.Parameters) {
		return object.Errorf("wrong number of arguments to %s: got=%d, want=%d", functionName(fn), len(args), len(fn.Parameters))
	}

	call := object.NewScope(fn.Scope)
	for i, param := range fn.Parameters {
		call.Set(string(param), args[i])
	}

	return object.Unwrap(evalStatements(fn.Body, call))
}

func functionName(fn *object.Function) string {
	if fn.Name == "" {
		return "anonymous function"
	}
	return fn.Name
}

func evalIndex(left, index object.Object) object.Object {
	arr, ok := left.(object.Array)
	if !ok {
		return object.Null{}
	}
	i, ok := index.(object.Integer)
	if !ok || i < 0 || int64(i) >= int64(len(arr)) {
		return object.Null{}
	}
	return arr[i]
}
