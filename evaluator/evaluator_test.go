package evaluator

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/woc/ast"
	"github.com/pontaoski/woc/lexer"
	"github.com/pontaoski/woc/object"
	"github.com/pontaoski/woc/parser"
)

// run evaluates every top-level node of src in one root scope and returns
// the last result.
func run(t *testing.T, src string) object.Object {
	t.Helper()
	result, _ := runIn(t, src)
	return result
}

func runIn(t *testing.T, src string) (object.Object, *object.Scope) {
	t.Helper()
	nodes, errs := parser.ParseProgram(lexer.Tokenize(src))
	if len(errs) > 0 {
		t.Fatalf("%q: unexpected diagnostics:\n%s", src, strings.Join(errs, "\n"))
	}

	scope := object.NewScope(nil)
	var result object.Object = object.Null{}
	for _, node := range nodes {
		result = Eval(node, scope)
	}
	return result, scope
}

func expect(t *testing.T, src string, want object.Object) {
	t.Helper()
	got := run(t, src)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%q: got %s, want %s", src, repr.String(got), repr.String(want))
	}
}

func TestNumericPromotion(t *testing.T) {
	cases := []struct {
		src  string
		want object.Object
	}{
		{"5 + 5.5;", object.Float(10.5)},
		{"5 / 5;", object.Integer(1)},
		{"7 / 2;", object.Integer(3)},
		{"7.0 / 2;", object.Float(3.5)},
		{"2 * 3.0;", object.Float(6)},
		{"10 - 2 * 3;", object.Integer(4)},
		{"-5 + 2;", object.Integer(-3)},
		{"-2.5;", object.Float(-2.5)},
		{"10 % 3;", object.Integer(1)},
		{"(1 + 2) * 3;", object.Integer(9)},
	}

	for _, c := range cases {
		expect(t, c.src, c.want)
	}
}

func TestTruthiness(t *testing.T) {
	cases := []struct {
		src  string
		want object.Object
	}{
		{"!0;", object.Boolean(true)},
		{"!1;", object.Boolean(false)},
		{"!0.0;", object.Boolean(true)},
		{"!true;", object.Boolean(false)},
		{"!!false;", object.Boolean(false)},
		{"!\"s\";", object.Null{}},
		{"-true;", object.Null{}},
	}

	for _, c := range cases {
		expect(t, c.src, c.want)
	}
}

func TestComparisonAndLogic(t *testing.T) {
	cases := []struct {
		src  string
		want object.Object
	}{
		{"1 < 2;", object.Boolean(true)},
		{"1 > 2.5;", object.Boolean(false)},
		{"2 >= 2.0;", object.Boolean(true)},
		{"3 <= 2;", object.Boolean(false)},
		{"1 == 1.0;", object.Boolean(true)},
		{"1 != 2;", object.Boolean(true)},
		{"true == false;", object.Boolean(false)},
		{"true != false;", object.Boolean(true)},
		{"true && false;", object.Boolean(false)},
		{"false || true;", object.Boolean(true)},
		{"true && 1;", object.Boolean(true)},
		{"0 || false;", object.Boolean(false)},
		{"2 && 3;", object.Boolean(true)},
		{"true < false;", object.Null{}},
		{"true == 1;", object.Boolean(true)},
		{"true != 0;", object.Boolean(true)},
		{"1.0 == true;", object.Boolean(true)},
		{"0 == false;", object.Boolean(true)},
		{"false != 2;", object.Boolean(true)},
		{"1 < true;", object.Null{}},
		{"\"a\" == \"a\";", object.Boolean(true)},
		{"\"a\" != \"b\";", object.Boolean(true)},
		{"\"a\" == true;", object.Null{}},
		{"\"a\" < \"b\";", object.Null{}},
	}

	for _, c := range cases {
		expect(t, c.src, c.want)
	}
}

func TestStrings(t *testing.T) {
	expect(t, `"foo" + "bar";`, object.String("foobar"))
	expect(t, `"line\n";`, object.String("line\n"))
	expect(t, `"a" - "b";`, object.Null{})
	expect(t, `"a" + 1;`, object.Null{})
}

func TestDivisionByZero(t *testing.T) {
	for _, src := range []string{"1 / 0;", "1 % 0;"} {
		got := run(t, src)
		if _, ok := got.(*object.Error); !ok {
			t.Errorf("%q: want error, got %s", src, repr.String(got))
		}
	}

	got := run(t, "1.0 / 0;")
	if f, ok := got.(object.Float); !ok || !math.IsInf(float64(f), 1) {
		t.Errorf("float division by zero gave %s", repr.String(got))
	}
}

func TestReturnPropagation(t *testing.T) {
	expect(t, "{ 10; return 20; 30; }", object.Return{Value: object.Integer(20)})
	expect(t, "{ 10; { return 20; } 30; }", object.Return{Value: object.Integer(20)})
	expect(t, "{ return; }", object.Return{Value: object.Null{}})
	expect(t, "{ 1; 2; }", object.Integer(2))
	expect(t, "{ }", object.Null{})

	expect(t, `
		func f(x) {
			if (x > 1) {
				if (x > 5) {
					return 10;
				}
				return 1;
			}
			return 0;
		}
		f(9);
	`, object.Integer(10))
}

func TestIfElse(t *testing.T) {
	cases := []struct {
		src  string
		want object.Object
	}{
		{"if (true) { 10 }", object.Integer(10)},
		{"if (false) { 10 }", object.Null{}},
		{"if (1) { 10 }", object.Integer(10)},
		{"if (0) { 10 } else { 20 }", object.Integer(20)},
		{"if (1 > 2) { 10 } else if (2 > 1) { 15 } else { 20 }", object.Integer(15)},
		{"if (1 > 2) { 10 } else if (false) { 15 } else { 20 }", object.Integer(20)},
		{"if (\"s\") { 10 } else { 20 }", object.Integer(20)},
	}

	for _, c := range cases {
		expect(t, c.src, c.want)
	}
}

func TestClosures(t *testing.T) {
	expect(t, "func counter() { let c = 0; func inc() { return c + 1; } return inc; } let f = counter(); f();", object.Integer(1))

	expect(t, `
		func adder(x) { return func(y) { return x + y; }; }
		let add2 = adder(2);
		add2(40);
	`, object.Integer(42))

	expect(t, "func counter() { let c = 0; func inc() { return c + 1; } return inc; } counter()();", object.Integer(1))
}

func TestClosuresSeeLaterBindings(t *testing.T) {
	expect(t, `
		let n = 1;
		func get() { return n; }
		let n = 2;
		get();
	`, object.Integer(2))
}

func TestRecursion(t *testing.T) {
	expect(t, `
		func fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		fib(15);
	`, object.Integer(610))
}

func TestScoping(t *testing.T) {
	_, scope := runIn(t, "let x = 1; { let y = 2; let x = 3; }")
	if v, _ := scope.Get("x"); !reflect.DeepEqual(v, object.Integer(1)) {
		t.Errorf("block rebinding leaked: x = %s", repr.String(v))
	}
	if _, ok := scope.Get("y"); ok {
		t.Error("block let leaked into the enclosing scope")
	}

	_, scope = runIn(t, "if (true) { let z = 1; }")
	if _, ok := scope.Get("z"); ok {
		t.Error("if-branch let leaked into the enclosing scope")
	}

	expect(t, "let outer = 5; func read() { return outer; } read();", object.Integer(5))
	expect(t, "let v = 1; func shadow() { let v = 2; return v; } shadow(); v;", object.Integer(1))
	expect(t, "func f(a) { return a; } f(3); a;", object.Null{})
}

func TestUnboundIdentifier(t *testing.T) {
	expect(t, "undefined_name;", object.Null{})
	expect(t, "undefined_name + 1;", object.Null{})
}

func TestFunctions(t *testing.T) {
	got := run(t, "func add(a, b) { return a + b; }")
	if !reflect.DeepEqual(got, object.Null{}) {
		t.Errorf("definition should yield null, got %s", repr.String(got))
	}

	_, scope := runIn(t, "func add(a, b) { return a + b; }")
	v, _ := scope.Get("add")
	if fn, ok := v.(*object.Function); !ok || fn.String() != "func add(a, b)" {
		t.Errorf("add bound to %s", repr.String(v))
	}

	expect(t, "func add(a, b) { return a + b; } add(2, 3);", object.Integer(5))
	expect(t, "func last(a, b) { a; b; } last(1, 2);", object.Integer(2))
	expect(t, "func nothing() { } nothing();", object.Null{})
	expect(t, "let double = func(x) { x * 2 }; double(21);", object.Integer(42))
	expect(t, "func(x) { x * 3 }(3);", object.Integer(9))
	expect(t, "let notfn = 5; notfn(1);", object.Null{})
}

func TestArity(t *testing.T) {
	got := run(t, "func add(a, b) { return a + b; } add(1);")
	err, ok := got.(*object.Error)
	if !ok {
		t.Fatalf("want error, got %s", repr.String(got))
	}
	if err.Message != "wrong number of arguments to add: got=1, want=2" {
		t.Errorf("unexpected message %q", err.Message)
	}

	got = run(t, "func(a) { a }(1, 2);")
	if err, ok := got.(*object.Error); !ok || !strings.Contains(err.Message, "got=2, want=1") {
		t.Errorf("got %s", repr.String(got))
	}
}

func TestErrorsPropagate(t *testing.T) {
	cases := []string{
		"1 + 1 / 0;",
		"[1, 1 / 0];",
		"func f(x) { x } f(1 / 0);",
		"{ 1 / 0; 5; }",
		"-(1 % 0);",
	}
	for _, src := range cases {
		if _, ok := run(t, src).(*object.Error); !ok {
			t.Errorf("%q: error did not propagate", src)
		}
	}

	_, scope := runIn(t, "let broken = 1 / 0;")
	if _, ok := scope.Get("broken"); ok {
		t.Error("error value was bound")
	}
}

func TestLetUnwrapsReturn(t *testing.T) {
	_, scope := runIn(t, "let x = if (true) { return 7; };")
	if v, _ := scope.Get("x"); !reflect.DeepEqual(v, object.Integer(7)) {
		t.Errorf("x = %s", repr.String(v))
	}
}

func TestArrays(t *testing.T) {
	expect(t, "[1, 2 * 2, 3 + 3];", object.Array{object.Integer(1), object.Integer(4), object.Integer(6)})
	expect(t, "[1, 2, 3][0];", object.Integer(1))
	expect(t, "let a = [1, 2, 3]; a[1 + 1];", object.Integer(3))
	expect(t, "[1, 2, 3][3];", object.Null{})
	expect(t, "[1, 2, 3][-1];", object.Null{})
	expect(t, "[1][1.0];", object.Null{})
	expect(t, "5[0];", object.Null{})
	expect(t, "[];", object.Array{})
}

func TestEvalHandlesHandBuiltNodes(t *testing.T) {
	scope := object.NewScope(nil)
	got := Eval(ast.Infix{Left: ast.Integer(2), Operator: "**", Right: ast.Integer(3)}, scope)
	if !reflect.DeepEqual(got, object.Null{}) {
		t.Errorf("unknown operator gave %s", repr.String(got))
	}
	got = Eval(ast.None{}, scope)
	if !reflect.DeepEqual(got, object.Null{}) {
		t.Errorf("none gave %s", repr.String(got))
	}
}
