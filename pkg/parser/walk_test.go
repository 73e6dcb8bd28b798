package parser

import (
	"strings"
	"testing"
)

func TestWalkOrder(t *testing.T) {
	program := parseProgram(t, "var a = b + c(d);")

	var kinds []string
	Inspect(program, func(n Node) {
		kinds = append(kinds, kindOf(n))
	})

	expected := []string{
		"Program", "VarStatement", "Identifier", "InfixExpression",
		"Identifier", "CallExpression", "Identifier", "Identifier",
	}
	if strings.Join(kinds, " ") != strings.Join(expected, " ") {
		t.Errorf("visit order:\n got  %v\n want %v", kinds, expected)
	}
}

func identifiers(node Node, skip func(Node) bool) []string {
	var names []string
	Walk(node, func(n Node) bool {
		if skip != nil && skip(n) {
			return false
		}
		if ident, ok := n.(*Identifier); ok {
			names = append(names, ident.Value)
		}
		return true
	})
	return names
}

func TestWalkIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"var a[i] = v;", "a i v"},
		{"enum E { A, B = one }", "E A B one"},
		{"for (var i = 0; i < n; var i = i + 1) { f(i); }", "i i n i i f i"},
		{"switch (x) { case y: z; default: w; }", "x y z w"},
		{"class K { m(p) { return p; } }", "K m p p"},
		{"model M { id int }", "M id int"},
		{`import("x") as mod;`, "mod"},
		{"@Tag(label)", "Tag label"},
		{"var h = {k: v}; h[a:b];", "h k v h a b"},
		{"if (c) { t } else { e }", "c t e"},
		{"--x; y++;", "x y"},
	}

	for _, tt := range tests {
		program := parseProgram(t, tt.input)
		if got := strings.Join(identifiers(program, nil), " "); got != tt.expected {
			t.Errorf("%q: got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	program := parseProgram(t, "function f(x) { y; } z;")
	names := identifiers(program, func(n Node) bool {
		_, ok := n.(*FunctionLiteral)
		return ok
	})
	if strings.Join(names, " ") != "z" {
		t.Errorf("expected only z, got %v", names)
	}
}

func TestWalkNil(t *testing.T) {
	called := false
	Walk(nil, func(Node) bool {
		called = true
		return true
	})
	if called {
		t.Errorf("visitor called for a nil node")
	}
}

func TestDump(t *testing.T) {
	program := parseProgram(t, "var x = 1 + 2;\nswitch (x) { default: y; }")
	d := Dump(program)

	if d["kind"] != "Program" || d["pos"] != "1:1" {
		t.Fatalf("unexpected root %v", d)
	}
	stmts := d["statements"].([]any)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}

	v := stmts[0].(map[string]any)
	if v["kind"] != "VarStatement" || v["name"] != "x" {
		t.Errorf("unexpected var dump %v", v)
	}
	value := v["value"].(map[string]any)
	if value["kind"] != "InfixExpression" || value["operator"] != "+" || value["pos"] != "1:11" {
		t.Errorf("unexpected value dump %v", value)
	}
	if left := value["left"].(map[string]any); left["value"] != int64(1) {
		t.Errorf("unexpected left operand %v", left)
	}

	sw := stmts[1].(map[string]any)["expression"].(map[string]any)
	if sw["kind"] != "SwitchExpression" || sw["pos"] != "2:1" {
		t.Fatalf("unexpected switch dump %v", sw)
	}
	cases := sw["cases"].([]any)
	if len(cases) != 1 || cases[0].(map[string]any)["default"] != true {
		t.Errorf("unexpected cases %v", cases)
	}
	if _, ok := cases[0].(map[string]any)["value"]; ok {
		t.Errorf("default case should not carry a value")
	}
}

func TestDumpNil(t *testing.T) {
	if Dump(nil) != nil {
		t.Errorf("Dump(nil) should be nil")
	}
}
