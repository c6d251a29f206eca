package evaluator

import (
	"github.com/pontaoski/woc/object"
)

func evalPrefix(op string, right object.Object) object.Object {
	switch op {
	case "!":
		switch right := right.(type) {
		case object.Boolean:
			return !right
		case object.Integer:
			return object.Boolean(right == 0)
		case object.Float:
			return object.Boolean(right == 0)
		}
	case "-":
		switch right := right.(type) {
		case object.Integer:
			return -right
		case object.Float:
			return -right
		}
	}
	return object.Null{}
}

func evalInfix(op string, left, right object.Object) object.Object {
	switch l := left.(type) {
	case object.Integer:
		switch r := right.(type) {
		case object.Integer:
			return integerInfix(op, l, r)
		case object.Float:
			return floatInfix(op, object.Float(l), r)
		case object.Boolean:
			return booleanInfix(op, object.Truthy(l), bool(r))
		}
	case object.Float:
		switch r := right.(type) {
		case object.Integer:
			return floatInfix(op, l, object.Float(r))
		case object.Float:
			return floatInfix(op, l, r)
		case object.Boolean:
			return booleanInfix(op, object.Truthy(l), bool(r))
		}
	case object.Boolean:
		switch r := right.(type) {
		case object.Boolean:
			return booleanInfix(op, bool(l), bool(r))
		case object.Integer, object.Float:
			return booleanInfix(op, bool(l), object.Truthy(r))
		}
	case object.String:
		if r, ok := right.(object.String); ok {
			return stringInfix(op, l, r)
		}
	}
	return object.Null{}
}

func integerInfix(op string, l, r object.Integer) object.Object {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		if r == 0 {
			return object.Errorf("division by zero: %d / 0", l)
		}
		return l / r
	case "%":
		if r == 0 {
			return object.Errorf("modulo by zero: %d %% 0", l)
		}
		return l % r
	case "<":
		return object.Boolean(l < r)
	case ">":
		return object.Boolean(l > r)
	case "<=":
		return object.Boolean(l <= r)
	case ">=":
		return object.Boolean(l >= r)
	case "==":
		return object.Boolean(l == r)
	case "!=":
		return object.Boolean(l != r)
	}
	return logicalInfix(op, l != 0, r != 0)
}

// floatInfix follows IEEE 754, so dividing by zero gives an infinity or NaN.
func floatInfix(op string, l, r object.Float) object.Object {
	switch op {
	case "+":
		return l + r
	case "-":
		return l - r
	case "*":
		return l * r
	case "/":
		return l / r
	case "<":
		return object.Boolean(l < r)
	case ">":
		return object.Boolean(l > r)
	case "<=":
		return object.Boolean(l <= r)
	case ">=":
		return object.Boolean(l >= r)
	case "==":
		return object.Boolean(l == r)
	case "!=":
		return object.Boolean(l != r)
	}
	return logicalInfix(op, l != 0, r != 0)
}

func booleanInfix(op string, l, r bool) object.Object {
	switch op {
	case "==":
		return object.Boolean(l == r)
	case "!=":
		return object.Boolean(l != r)
	}
	return logicalInfix(op, l, r)
}

func logicalInfix(op string, l, r bool) object.Object {
	switch op {
	case "&&":
		return object.Boolean(l && r)
	case "||":
		return object.Boolean(l || r)
	}
	return object.Null{}
}

func stringInfix(op string, l, r object.String) object.Object {
	switch op {
	case "+":
		return l + r
	case "==":
		return object.Boolean(l == r)
	case "!=":
		return object.Boolean(l != r)
	}
	return object.Null{}
}
