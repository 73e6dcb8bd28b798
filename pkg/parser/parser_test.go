package parser

import (
	"strings"
	"testing"

	"dolang/pkg/errors"
	"dolang/pkg/lexer"
)

func parseProgram(t *testing.T, input string) *Program {
	t.Helper()
	program, errs := NewParser(lexer.NewLexer(input)).ParseProgram()
	checkParserErrors(t, input, errs)
	return program
}

func checkParserErrors(t *testing.T, input string, errs []errors.DoError) {
	t.Helper()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser had %d errors for %q", len(errs), input)
	for _, err := range errs {
		t.Errorf("  %s", err.Error())
	}
	t.FailNow()
}

func parseWithErrors(input string, opts Options) (*Program, []errors.DoError) {
	return NewParserWithOptions(lexer.NewLexer(input), opts).ParseProgram()
}

func TestVarStatements(t *testing.T) {
	tests := []struct {
		input         string
		expectedIdent string
		expectedValue string
		expected      string
	}{
		{"var x = 5;", "x", "5", "var x = 5;"},
		{"var y = true", "y", "true", "var y = true;"},
		{"var foobar = y;", "foobar", "y", "var foobar = y;"},
		{"var myVar = anotherVar;", "myVar", "anotherVar", "var myVar = anotherVar;"},
		{"var s = 'hi';", "s", `"hi"`, `var s = "hi";`},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		if len(program.Statements) != 1 {
			t.Fatalf("%q: expected 1 statement, got %d", tt.input, len(program.Statements))
		}
		stmt, ok := program.Statements[0].(*VarStatement)
		if !ok {
			t.Fatalf("%q: expected *VarStatement, got %T", tt.input, program.Statements[0])
		}
		if stmt.Name.Value != tt.expectedIdent {
			t.Errorf("%q: name = %q, want %q", tt.input, stmt.Name.Value, tt.expectedIdent)
		}
		if stmt.Index != nil {
			t.Errorf("%q: unexpected index %s", tt.input, stmt.Index)
		}
		if stmt.Value.String() != tt.expectedValue {
			t.Errorf("%q: value = %q, want %q", tt.input, stmt.Value.String(), tt.expectedValue)
		}
		if stmt.String() != tt.expected {
			t.Errorf("%q: String() = %q, want %q", tt.input, stmt.String(), tt.expected)
		}
	}
}

func TestIndexedBindings(t *testing.T) {
	tests := []struct {
		input    string
		name     string
		expected string
	}{
		{"var a[0] = 1;", "a", "var a[0] = 1;"},
		{"var a[1:2] = b;", "a", "var a[1:2] = b;"},
		{"const grid[i + 1] = 0;", "grid", "const grid[(i + 1)] = 0;"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		if got := program.String(); got != tt.expected {
			t.Errorf("%q: got %q, want %q", tt.input, got, tt.expected)
		}
		var index *IndexExpression
		switch s := program.Statements[0].(type) {
		case *VarStatement:
			index = s.Index
		case *ConstStatement:
			index = s.Index
		}
		if index == nil {
			t.Fatalf("%q: expected an index on the binding", tt.input)
		}
		if ident, ok := index.Left.(*Identifier); !ok || ident.Value != tt.name {
			t.Errorf("%q: index target should be the bound name, got %v", tt.input, index.Left)
		}
	}
}

func TestConstStatement(t *testing.T) {
	program := parseProgram(t, "const limit = 10 * 2;")
	stmt, ok := program.Statements[0].(*ConstStatement)
	if !ok {
		t.Fatalf("expected *ConstStatement, got %T", program.Statements[0])
	}
	if stmt.Name.Value != "limit" || stmt.Value.String() != "(10 * 2)" {
		t.Errorf("unexpected const %s", stmt)
	}
}

func TestReturnStatements(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		hasValue bool
	}{
		{"return 5;", "return 5;", true},
		{"return x + y;", "return (x + y);", true},
		{"return;", "return;", false},
		{"return", "return;", false},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt, ok := program.Statements[0].(*ReturnStatement)
		if !ok {
			t.Fatalf("%q: expected *ReturnStatement, got %T", tt.input, program.Statements[0])
		}
		if (stmt.ReturnValue != nil) != tt.hasValue {
			t.Errorf("%q: hasValue = %v, want %v", tt.input, stmt.ReturnValue != nil, tt.hasValue)
		}
		if stmt.String() != tt.expected {
			t.Errorf("%q: String() = %q, want %q", tt.input, stmt.String(), tt.expected)
		}
	}
}

func TestReturnBeforeClosingBrace(t *testing.T) {
	program := parseProgram(t, "function f() { return }")
	decl := program.Statements[0].(*FunctionDeclaration)
	ret := decl.Function.Body.Statements[0].(*ReturnStatement)
	if ret.ReturnValue != nil {
		t.Errorf("expected bare return, got %s", ret)
	}
}

func TestOperatorPrecedenceParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"-a * b", "((-a) * b)"},
		{"!-a", "(!(-a))"},
		{"-1 + 2", "((-1) + 2)"},
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"a + b + c", "((a + b) + c)"},
		{"a * b / c", "((a * b) / c)"},
		{"a % b * c", "((a % b) * c)"},
		{"a + b * c + d / e - f", "(((a + (b * c)) + (d / e)) - f)"},
		{"5 > 4 == 3 < 4", "((5 > 4) == (3 < 4))"},
		{"5 <= 4 != 3 >= 4", "((5 <= 4) != (3 >= 4))"},
		{"3 + 4 * 5 == 3 * 1 + 4 * 5", "((3 + (4 * 5)) == ((3 * 1) + (4 * 5)))"},
		{"a || b && c", "((a || b) && c)"},
		{"a or b and c", "((a or b) and c)"},
		{"a && b || c && d", "(((a && b) || c) && d)"},
		{"true and false or x", "((true and false) or x)"},
		{"a == b && c != d", "((a == b) && (c != d))"},
		{"2 ** 3 ** 2", "((2 ** 3) ** 2)"},
		{"a & b + c", "((a & b) + c)"},
		{"a + b & c", "(a + (b & c))"},
		{"a << 1 | b >> 2", "(((a << 1) | b) >> 2)"},
		{"a >>> b ^ c", "((a >>> b) ^ c)"},
		{"1 + (2 + 3) + 4", "((1 + (2 + 3)) + 4)"},
		{"(5 + 5) * 2", "((5 + 5) * 2)"},
		{"-(5 + 5)", "(-(5 + 5))"},
		{"!(true == true)", "(!(true == true))"},
		{"a + add(b * c) + d", "((a + add((b * c))) + d)"},
		{"add(a, b, 1, 2 * 3, 4 + 5, add(6, 7 * 8))", "add(a, b, 1, (2 * 3), (4 + 5), add(6, (7 * 8)))"},
		{"f(x)(y)", "f(x)(y)"},
		{"a * [1, 2, 3, 4][b * c] * d", "((a * ([1, 2, 3, 4][(b * c)])) * d)"},
		{"add(a * b[2], b[1], 2 * [1, 2][1])", "add((a * (b[2])), (b[1]), (2 * ([1, 2][1])))"},
		{"x++ + ++y", "((x++) + (++y))"},
		{"--x - y--", "((--x) - (y--))"},
		{"a .. b", "(a .. b)"},
		{"n ... 10", "(n ... 10)"},
		{"1..5", "(1..5)"},
		{"1...5", "(1...5)"},
		{"1..5 + 1", "((1..5) + 1)"},
		{"null == x", "(null == x)"},
		{"3.5 * 2", "(3.5 * 2)"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		if got := program.String(); got != tt.expected {
			t.Errorf("%q: expected=%q, got=%q", tt.input, tt.expected, got)
		}
	}
}

func TestRangeLiteral(t *testing.T) {
	tests := []struct {
		input     string
		left      int64
		right     int64
		inclusive bool
	}{
		{"1..5", 1, 5, false},
		{"0...10", 0, 10, true},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ExpressionStatement)
		rng, ok := stmt.Expression.(*RangeLiteral)
		if !ok {
			t.Fatalf("%q: expected *RangeLiteral, got %T", tt.input, stmt.Expression)
		}
		if rng.Left.Value != tt.left || rng.Right.Value != tt.right || rng.Inclusive != tt.inclusive {
			t.Errorf("%q: got %d..%d inclusive=%v", tt.input, rng.Left.Value, rng.Right.Value, rng.Inclusive)
		}
		if rng.Pos() != rng.Left.Pos() {
			t.Errorf("%q: range should start at its left bound", tt.input)
		}
	}
}

func TestSliceShapes(t *testing.T) {
	tests := []struct {
		input    string
		index    bool
		colon    bool
		right    bool
		expected string
	}{
		{"a[1]", true, false, false, "(a[1])"},
		{"a[1:3]", true, true, true, "(a[1:3])"},
		{"a[:3]", false, true, true, "(a[:3])"},
		{"a[1:]", true, true, false, "(a[1:])"},
		{"a[:]", false, true, false, "(a[:])"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		stmt := program.Statements[0].(*ExpressionStatement)
		exp, ok := stmt.Expression.(*IndexExpression)
		if !ok {
			t.Fatalf("%q: expected *IndexExpression, got %T", tt.input, stmt.Expression)
		}
		if (exp.Index != nil) != tt.index || exp.HasColon != tt.colon || (exp.RightIndex != nil) != tt.right {
			t.Errorf("%q: index=%v colon=%v right=%v", tt.input, exp.Index != nil, exp.HasColon, exp.RightIndex != nil)
		}
		if exp.String() != tt.expected {
			t.Errorf("%q: String() = %q, want %q", tt.input, exp.String(), tt.expected)
		}
	}
}

func TestLiteralValues(t *testing.T) {
	program := parseProgram(t, `42; 2.5; "a\nb"; true; false; null;`)
	if len(program.Statements) != 6 {
		t.Fatalf("expected 6 statements, got %d", len(program.Statements))
	}
	exprs := make([]Expression, len(program.Statements))
	for i, s := range program.Statements {
		exprs[i] = s.(*ExpressionStatement).Expression
	}

	if lit, ok := exprs[0].(*IntegerLiteral); !ok || lit.Value != 42 {
		t.Errorf("expected integer 42, got %v", exprs[0])
	}
	if lit, ok := exprs[1].(*FloatLiteral); !ok || lit.Value != 2.5 {
		t.Errorf("expected float 2.5, got %v", exprs[1])
	}
	if lit, ok := exprs[2].(*StringLiteral); !ok || lit.Value != "a\nb" || lit.String() != `"a\nb"` {
		t.Errorf("expected string a\\nb, got %v", exprs[2])
	}
	if lit, ok := exprs[3].(*BooleanLiteral); !ok || !lit.Value {
		t.Errorf("expected true, got %v", exprs[3])
	}
	if lit, ok := exprs[4].(*BooleanLiteral); !ok || lit.Value {
		t.Errorf("expected false, got %v", exprs[4])
	}
	if _, ok := exprs[5].(*NullLiteral); !ok {
		t.Errorf("expected null, got %T", exprs[5])
	}
}

func TestIfExpression(t *testing.T) {
	program := parseProgram(t, "if (x < y) { x }")
	exp, ok := program.Statements[0].(*ExpressionStatement).Expression.(*IfExpression)
	if !ok {
		t.Fatalf("expected *IfExpression, got %T", program.Statements[0].(*ExpressionStatement).Expression)
	}
	if exp.Condition.String() != "(x < y)" {
		t.Errorf("condition = %s", exp.Condition)
	}
	if len(exp.Consequence.Statements) != 1 {
		t.Errorf("expected 1 consequence statement, got %d", len(exp.Consequence.Statements))
	}
	if exp.Alternative != nil {
		t.Errorf("expected no alternative, got %s", exp.Alternative)
	}
}

func TestIfElseExpression(t *testing.T) {
	program := parseProgram(t, "if (x) { a; } // why\n else { b; c; }")
	exp := program.Statements[0].(*ExpressionStatement).Expression.(*IfExpression)
	if exp.Alternative == nil || len(exp.Alternative.Statements) != 2 {
		t.Fatalf("expected a two statement alternative, got %v", exp.Alternative)
	}
}

func TestElseRequiresBlock(t *testing.T) {
	_, errs := parseWithErrors("if (x) { a } else b", Options{})
	if len(errs) != 1 || errs[0].Message() != "expected next token to be {, got IDENT instead" {
		t.Fatalf("unexpected errors %v", errors.Strings(errs))
	}
}

func TestFunctionLiteralParsing(t *testing.T) {
	program := parseProgram(t, "var add = function(x, y) { x + y; };")
	stmt := program.Statements[0].(*VarStatement)
	fn, ok := stmt.Value.(*FunctionLiteral)
	if !ok {
		t.Fatalf("expected *FunctionLiteral, got %T", stmt.Value)
	}
	if fn.Name != nil {
		t.Errorf("expected anonymous function, got name %s", fn.Name)
	}
	if len(fn.Parameters) != 2 || fn.Parameters[0].Value != "x" || fn.Parameters[1].Value != "y" {
		t.Errorf("unexpected parameters %v", fn.Parameters)
	}
	if len(fn.Body.Statements) != 1 || fn.Body.Statements[0].String() != "(x + y)" {
		t.Errorf("unexpected body %s", fn.Body)
	}
}

func TestFunctionParameterParsing(t *testing.T) {
	tests := []struct {
		input          string
		expectedParams []string
	}{
		{"function() {};", []string{}},
		{"function(x) {};", []string{"x"}},
		{"function(x, y, z) {};", []string{"x", "y", "z"}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		fn := program.Statements[0].(*ExpressionStatement).Expression.(*FunctionLiteral)
		if len(fn.Parameters) != len(tt.expectedParams) {
			t.Fatalf("%q: expected %d parameters, got %d", tt.input, len(tt.expectedParams), len(fn.Parameters))
		}
		for i, ident := range tt.expectedParams {
			if fn.Parameters[i].Value != ident {
				t.Errorf("%q: parameter %d = %q, want %q", tt.input, i, fn.Parameters[i].Value, ident)
			}
		}
	}
}

func TestFunctionDeclaration(t *testing.T) {
	program := parseProgram(t, "function add(a, b) { return a + b; }\nadd(1, 2);")
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
	decl, ok := program.Statements[0].(*FunctionDeclaration)
	if !ok {
		t.Fatalf("expected *FunctionDeclaration, got %T", program.Statements[0])
	}
	if decl.Function.Name.Value != "add" {
		t.Errorf("name = %q", decl.Function.Name.Value)
	}
	call := program.Statements[1].(*ExpressionStatement).Expression.(*CallExpression)
	if call.Function.String() != "add" || len(call.Arguments) != 2 {
		t.Errorf("unexpected call %s", call)
	}
}

func TestArrayLiterals(t *testing.T) {
	program := parseProgram(t, "[1, 2 * 2, 3 + 3]")
	array := program.Statements[0].(*ExpressionStatement).Expression.(*ArrayLiteral)
	if len(array.Elements) != 3 || array.String() != "[1, (2 * 2), (3 + 3)]" {
		t.Errorf("unexpected array %s", array)
	}

	empty := parseProgram(t, "[]").Statements[0].(*ExpressionStatement).Expression.(*ArrayLiteral)
	if len(empty.Elements) != 0 {
		t.Errorf("expected empty array, got %s", empty)
	}
}

func TestHashLiteralKeepsOrder(t *testing.T) {
	tests := []struct {
		input string
		keys  []string
	}{
		{`{"one": 1, "two": 2, "three": 3}`, []string{`"one"`, `"two"`, `"three"`}},
		{`{b: 1, a: 2,}`, []string{"b", "a"}},
		{`{1 + 1: x, true: y}`, []string{"(1 + 1)", "true"}},
		{`{}`, []string{}},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		hash, ok := program.Statements[0].(*ExpressionStatement).Expression.(*HashLiteral)
		if !ok {
			t.Fatalf("%q: expected *HashLiteral, got %T", tt.input, program.Statements[0].(*ExpressionStatement).Expression)
		}
		if len(hash.Pairs) != len(tt.keys) {
			t.Fatalf("%q: expected %d pairs, got %d", tt.input, len(tt.keys), len(hash.Pairs))
		}
		for i, key := range tt.keys {
			if hash.Pairs[i].Key.String() != key {
				t.Errorf("%q: key %d = %s, want %s", tt.input, i, hash.Pairs[i].Key, key)
			}
		}
	}
}

func TestSwitchExpression(t *testing.T) {
	input := `switch (x) {
case 1:
  y;
  z;
case 2: { w; }
default:
  v;
}`
	program := parseProgram(t, input)
	sw, ok := program.Statements[0].(*ExpressionStatement).Expression.(*SwitchExpression)
	if !ok {
		t.Fatalf("expected *SwitchExpression, got %T", program.Statements[0].(*ExpressionStatement).Expression)
	}
	if sw.Value.String() != "x" {
		t.Errorf("switch value = %s", sw.Value)
	}
	if len(sw.Cases) != 3 {
		t.Fatalf("expected 3 cases, got %d", len(sw.Cases))
	}

	tests := []struct {
		value      string
		isDefault  bool
		statements int
	}{
		{"1", false, 2},
		{"2", false, 1},
		{"", true, 1},
	}
	for i, tt := range tests {
		c := sw.Cases[i]
		if c.Default != tt.isDefault {
			t.Errorf("case %d: default = %v", i, c.Default)
		}
		if !tt.isDefault && c.Value.String() != tt.value {
			t.Errorf("case %d: value = %s, want %s", i, c.Value, tt.value)
		}
		if len(c.Body.Statements) != tt.statements {
			t.Errorf("case %d: expected %d statements, got %d", i, tt.statements, len(c.Body.Statements))
		}
	}
}

func TestSwitchErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
		cases int
	}{
		{
			"switch (x) { default: a; default: b; }",
			"switch may have only one default case",
			2,
		},
		{
			"switch (x) { foo; case 1: y; }",
			"expected 'case' or 'default' inside switch block, got IDENT instead",
			1,
		},
	}

	for _, tt := range tests {
		program, errs := parseWithErrors(tt.input, Options{})
		if len(errs) != 1 {
			t.Fatalf("%q: expected 1 error, got %v", tt.input, errors.Strings(errs))
		}
		if errs[0].Message() != tt.msg {
			t.Errorf("%q: message = %q, want %q", tt.input, errs[0].Message(), tt.msg)
		}
		sw := program.Statements[0].(*ExpressionStatement).Expression.(*SwitchExpression)
		if len(sw.Cases) != tt.cases {
			t.Errorf("%q: expected %d cases, got %d", tt.input, tt.cases, len(sw.Cases))
		}
	}
}

func TestEnumLiteral(t *testing.T) {
	program := parseProgram(t, "enum Color { Red, Green = 2, Blue, }")
	enum, ok := program.Statements[0].(*ExpressionStatement).Expression.(*EnumLiteral)
	if !ok {
		t.Fatalf("expected *EnumLiteral, got %T", program.Statements[0].(*ExpressionStatement).Expression)
	}
	if enum.Name.Value != "Color" || len(enum.Elements) != 3 {
		t.Fatalf("unexpected enum %s", enum)
	}

	tests := []struct {
		name       string
		selfValued bool
		value      string
	}{
		{"Red", true, "Red"},
		{"Green", false, "2"},
		{"Blue", true, "Blue"},
	}
	for i, tt := range tests {
		el := enum.Elements[i]
		if el.Name.Value != tt.name || el.SelfValued() != tt.selfValued || el.Value.String() != tt.value {
			t.Errorf("element %d: got %s (self-valued %v)", i, el, el.SelfValued())
		}
	}
	if enum.String() != "enum Color { Red, Green = 2, Blue }" {
		t.Errorf("String() = %q", enum.String())
	}
}

func TestEnumErrors(t *testing.T) {
	_, errs := parseWithErrors("enum E { 1 }", Options{})
	if len(errs) != 1 || errs[0].Message() != "expected enum member name, got INT" {
		t.Fatalf("unexpected errors %v", errors.Strings(errs))
	}
}

func TestClassLiteral(t *testing.T) {
	input := `class Greeter {
  hello(name) { return "hi " + name; }
  function bye() {}
}`
	program := parseProgram(t, input)
	class, ok := program.Statements[0].(*ExpressionStatement).Expression.(*ClassLiteral)
	if !ok {
		t.Fatalf("expected *ClassLiteral, got %T", program.Statements[0].(*ExpressionStatement).Expression)
	}
	if class.Name.Value != "Greeter" || len(class.Methods) != 2 {
		t.Fatalf("unexpected class %s", class)
	}
	if class.Methods[0].Name.Value != "hello" || len(class.Methods[0].Parameters) != 1 {
		t.Errorf("unexpected first method %s", class.Methods[0])
	}
	if class.Methods[1].Name.Value != "bye" || len(class.Methods[1].Body.Statements) != 0 {
		t.Errorf("unexpected second method %s", class.Methods[1])
	}
}

func TestClassErrors(t *testing.T) {
	_, errs := parseWithErrors("class A { 1 }", Options{})
	if len(errs) == 0 || errs[0].Message() != "expected method name inside class body, got INT instead" {
		t.Fatalf("unexpected errors %v", errors.Strings(errs))
	}
}

func TestTypeDeclaration(t *testing.T) {
	program := parseProgram(t, `type Value := int | float | "none" | 0 | null;`)
	decl, ok := program.Statements[0].(*TypeDeclaration)
	if !ok {
		t.Fatalf("expected *TypeDeclaration, got %T", program.Statements[0])
	}
	if decl.Name.Value != "Value" || len(decl.Members) != 5 {
		t.Fatalf("unexpected type %s", decl)
	}
	if decl.String() != `type Value := int | float | "none" | 0 | null;` {
		t.Errorf("String() = %q", decl.String())
	}

	_, errs := parseWithErrors("type T := a", Options{})
	if len(errs) != 1 || errs[0].Message() != "expected next token to be ;, got EOF instead" {
		t.Errorf("missing ';' should be reported, got %v", errors.Strings(errs))
	}

	_, errs = parseWithErrors("type T := [a];", Options{})
	if len(errs) == 0 || errs[0].Message() != "expected a type name or literal, got [" {
		t.Errorf("bad member should be reported, got %v", errors.Strings(errs))
	}
}

func TestModelDeclaration(t *testing.T) {
	program := parseProgram(t, "model User {\n  name string;\n  age int, active bool\n  score 0 }")
	decl, ok := program.Statements[0].(*ModelDeclaration)
	if !ok {
		t.Fatalf("expected *ModelDeclaration, got %T", program.Statements[0])
	}

	expected := []string{"name string", "age int", "active bool", "score 0"}
	if len(decl.Members) != len(expected) {
		t.Fatalf("expected %d members, got %d", len(expected), len(decl.Members))
	}
	for i, want := range expected {
		if decl.Members[i].String() != want {
			t.Errorf("member %d = %q, want %q", i, decl.Members[i].String(), want)
		}
	}
}

func TestAnnotations(t *testing.T) {
	program := parseProgram(t, "@Deprecated\n@Route(\"/users\")\nfunction list() {}")
	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(program.Statements))
	}
	bare := program.Statements[0].(*Annotation)
	if bare.Name.Value != "Deprecated" || bare.Value != nil {
		t.Errorf("unexpected annotation %s", bare)
	}
	route := program.Statements[1].(*Annotation)
	if route.Name.Value != "Route" || route.String() != `@Route("/users")` {
		t.Errorf("unexpected annotation %s", route)
	}
}

func TestAnnotationClosingParen(t *testing.T) {
	input := "@Route(\"/x\"] var a = 1;"

	program, errs := parseWithErrors(input, Options{})
	if len(errs) != 1 || errs[0].Message() != "expected next token to be ), got ] instead" {
		t.Fatalf("strict: unexpected errors %v", errors.Strings(errs))
	}
	if len(program.Statements) != 1 {
		t.Errorf("strict: expected the var statement to survive, got %d statements", len(program.Statements))
	}

	program, errs = parseWithErrors(input, Options{LenientAnnotations: true})
	if len(errs) != 0 {
		t.Fatalf("lenient: unexpected errors %v", errors.Strings(errs))
	}
	if len(program.Statements) != 2 {
		t.Errorf("lenient: expected 2 statements, got %d", len(program.Statements))
	}
}

func TestWhileStatement(t *testing.T) {
	program := parseProgram(t, "while (i < 3) { i++; }")
	stmt, ok := program.Statements[0].(*WhileStatement)
	if !ok {
		t.Fatalf("expected *WhileStatement, got %T", program.Statements[0])
	}
	if stmt.Condition.String() != "(i < 3)" || len(stmt.Body.Statements) != 1 {
		t.Errorf("unexpected while %s", stmt)
	}
}

func TestForStatement(t *testing.T) {
	program := parseProgram(t, "for (var i = 0; i < 10; var i = i + 1) { sum; }")
	stmt, ok := program.Statements[0].(*ForStatement)
	if !ok {
		t.Fatalf("expected *ForStatement, got %T", program.Statements[0])
	}
	if stmt.Init.Name.Value != "i" || stmt.Init.Value.String() != "0" {
		t.Errorf("init = %s", stmt.Init)
	}
	if stmt.Condition.String() != "(i < 10)" {
		t.Errorf("condition = %s", stmt.Condition)
	}
	if stmt.Iterate.Value.String() != "(i + 1)" {
		t.Errorf("iterate = %s", stmt.Iterate)
	}
	if len(stmt.Body.Statements) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(stmt.Body.Statements))
	}

	_, errs := parseWithErrors("for (i = 0; i < 1; var i = 1) {}", Options{})
	if len(errs) == 0 || errs[0].Message() != "expected next token to be VAR, got IDENT instead" {
		t.Errorf("for without var should fail, got %v", errors.Strings(errs))
	}
}

func TestImports(t *testing.T) {
	program := parseProgram(t, "import(\"lib/math\") as m;\nvar io = import(\"io\");")
	spec, ok := program.Statements[0].(*ImportSpec)
	if !ok {
		t.Fatalf("expected *ImportSpec, got %T", program.Statements[0])
	}
	if spec.Path.Value != "lib/math" || spec.Name == nil || spec.Name.Value != "m" {
		t.Errorf("unexpected import %s", spec)
	}

	value := program.Statements[1].(*VarStatement).Value
	inner, ok := value.(*ImportSpec)
	if !ok || inner.Path.Value != "io" || inner.Name != nil {
		t.Errorf("unexpected import value %v", value)
	}
}

func TestComments(t *testing.T) {
	input := "// header\nvar a = 1 + // inline\n  2;\nf(x, // arg\n  y);"
	p := NewParser(lexer.NewLexer(input))
	program, errs := p.ParseProgram()
	checkParserErrors(t, input, errs)

	if len(program.Statements) != 3 {
		t.Fatalf("expected 3 statements, got %d: %s", len(program.Statements), program)
	}
	comment, ok := program.Statements[0].(*ExpressionStatement).Expression.(*Comment)
	if !ok || comment.Value != " header" {
		t.Errorf("expected leading comment statement, got %s", program.Statements[0])
	}
	if v := program.Statements[1].(*VarStatement).Value.String(); v != "(1 + 2)" {
		t.Errorf("inline comment broke the expression: %s", v)
	}
	if call := program.Statements[2].String(); call != "f(x, y)" {
		t.Errorf("comment in argument list: %s", call)
	}

	var texts []string
	for _, c := range p.Comments() {
		texts = append(texts, c.Token.Literal)
	}
	if strings.Join(texts, "|") != "// header|// inline|// arg" {
		t.Errorf("unexpected comments %v", texts)
	}
}

func TestPositions(t *testing.T) {
	program := parseProgram(t, "var x = 1;\n  foo(bar);")
	tests := []struct {
		node Node
		want string
	}{
		{program, "1:1"},
		{program.Statements[0], "1:1"},
		{program.Statements[1], "2:3"},
		{program.Statements[1].(*ExpressionStatement).Expression, "2:6"},
	}
	for i, tt := range tests {
		if got := tt.node.Pos().String(); got != tt.want {
			t.Errorf("tests[%d] %T: pos = %s, want %s", i, tt.node, got, tt.want)
		}
	}
}

func TestEmptyProgram(t *testing.T) {
	for _, input := range []string{"", "   \n\t", ";;;"} {
		program := parseProgram(t, input)
		if len(program.Statements) != 0 {
			t.Errorf("%q: expected no statements, got %d", input, len(program.Statements))
		}
		if program.Pos().String() != "1:1" {
			t.Errorf("%q: empty program should sit at 1:1", input)
		}
	}
}

func TestParsingIsDeterministic(t *testing.T) {
	input := "var a = {x: 1, y: [1, 2]}; var = 3; switch (a) { default: b; }"
	first, firstErrs := parseWithErrors(input, Options{})
	for i := 0; i < 5; i++ {
		again, againErrs := parseWithErrors(input, Options{})
		if again.String() != first.String() {
			t.Fatalf("run %d: tree differs:\n%s\nvs\n%s", i, again, first)
		}
		if strings.Join(errors.Strings(againErrs), "\n") != strings.Join(errors.Strings(firstErrs), "\n") {
			t.Fatalf("run %d: diagnostics differ", i)
		}
	}
}
