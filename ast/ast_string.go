package ast

import (
	"strconv"
	"strings"
)

func (v Identifier) String() string { return string(v) }

func (v Integer) String() string { return strconv.FormatInt(int64(v), 10) }

// Floats always keep a fractional part so that rendered text reads back as
// a float rather than an integer.
func (v Float) String() string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func (v Boolean) String() string { return strconv.FormatBool(bool(v)) }

func (v String) String() string { return Quote(string(v)) }

func (v None) String() string { return "none" }

func (v Array) String() string {
	return "[" + joinExpressions(v) + "]"
}

func (v Index) String() string {
	return "(" + v.Left.String() + "[" + v.Index.String() + "])"
}

func (v Prefix) String() string {
	return "(" + v.Operator + v.Right.String() + ")"
}

func (v Infix) String() string {
	return "(" + v.Left.String() + " " + v.Operator + " " + v.Right.String() + ")"
}

func (v If) String() string {
	var sb strings.Builder
	sb.WriteString("if (")
	sb.WriteString(v.Condition.String())
	sb.WriteString(") ")
	sb.WriteString(v.Consequence.String())
	if v.Alternative != nil {
		sb.WriteString(" else ")
		sb.WriteString(v.Alternative.String())
	}
	return sb.String()
}

func (v Call) String() string {
	return v.Function.String() + "(" + joinExpressions(v.Arguments) + ")"
}

func (v FunctionLiteral) String() string {
	return "func(" + joinIdentifiers(v.Parameters) + ") " + v.Body.String()
}

func (v Let) String() string {
	return "let " + v.Name.String() + " = " + v.Value.String() + ";"
}

func (v Return) String() string {
	if v.Value == nil {
		return "return;"
	}
	return "return " + v.Value.String() + ";"
}

func (v Block) String() string {
	if len(v) == 0 {
		return "{ }"
	}
	var sb strings.Builder
	sb.WriteString("{")
	for _, node := range v {
		sb.WriteString(" ")
		sb.WriteString(Terminated(node))
	}
	sb.WriteString(" }")
	return sb.String()
}

func (v Function) String() string {
	return "func " + v.Name.String() + "(" + joinIdentifiers(v.Parameters) + ") " + v.Body.String()
}

// Terminated renders node as it would appear in a statement list:
// expressions get a trailing semicolon, statements already carry their own
// terminator or end in a block.
func Terminated(node Node) string {
	if _, ok := node.(Expression); ok {
		return node.String() + ";"
	}
	return node.String()
}

// Render renders a parsed program one top-level node per line.
func Render(nodes []Node) string {
	lines := make([]string, 0, len(nodes))
	for _, node := range nodes {
		lines = append(lines, Terminated(node))
	}
	return strings.Join(lines, "\n")
}

var quoter = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// Quote renders s as a string literal the lexer reads back unchanged.
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}

// Unquote decodes the escapes of a raw string token body.
func Unquote(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var sb strings.Builder
	escaped := false
	for _, r := range raw {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			sb.WriteRune(r)
			continue
		}
		escaped = false
		switch r {
		case 'n':
			sb.WriteRune('\n')
		case 't':
			sb.WriteRune('\t')
		case 'r':
			sb.WriteRune('\r')
		case '0':
			sb.WriteRune(0)
		default:
			sb.WriteRune(r)
		}
	}
	if escaped {
		sb.WriteRune('\\')
	}
	return sb.String()
}

func joinExpressions(exprs []Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

func joinIdentifiers(ids []Identifier) string {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, string(id))
	}
	return strings.Join(parts, ", ")
}
