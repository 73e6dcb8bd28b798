package parser

import (
	"bytes"
	"fmt"
	"strings"

	"dolang/pkg/lexer"
)

// Printer re-emits an AST as canonical source: two space indentation, one
// statement per line and only the parentheses the grammar needs.
type Printer struct {
	indentLevel int
	buffer      bytes.Buffer
}

// NewPrinter creates a new source printer
func NewPrinter() *Printer {
	return &Printer{}
}

// Print renders node with a fresh Printer.
func Print(node Node) string {
	return NewPrinter().Print(node)
}

// Print converts node to source text. Statements and programs end with a
// newline; a bare expression does not.
func (pr *Printer) Print(node Node) string {
	pr.buffer.Reset()
	pr.indentLevel = 0

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			pr.emitStatement(stmt)
		}
	case Statement:
		pr.emitStatement(n)
	case Expression:
		pr.emitExpression(n, LOWEST)
	case *ModelMember:
		pr.emitModelMember(n)
	case *EnumElement:
		pr.emitEnumElement(n)
	}

	return pr.buffer.String()
}

// Helper methods

func (pr *Printer) indent() {
	pr.indentLevel++
}

func (pr *Printer) dedent() {
	if pr.indentLevel > 0 {
		pr.indentLevel--
	}
}

func (pr *Printer) writeIndent() {
	for i := 0; i < pr.indentLevel; i++ {
		pr.buffer.WriteString("  ")
	}
}

func (pr *Printer) write(format string, args ...interface{}) {
	fmt.Fprintf(&pr.buffer, format, args...)
}

// Statement printers

func (pr *Printer) emitStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *VarStatement:
		pr.writeIndent()
		pr.emitBinding("var", s.Name, s.Index, s.Value)
		pr.write(";\n")
	case *ConstStatement:
		pr.writeIndent()
		pr.emitBinding("const", s.Name, s.Index, s.Value)
		pr.write(";\n")
	case *ReturnStatement:
		pr.writeIndent()
		pr.write("return")
		if s.ReturnValue != nil {
			pr.write(" ")
			pr.emitExpression(s.ReturnValue, LOWEST)
		}
		pr.write(";\n")
	case *ExpressionStatement:
		pr.emitExpressionStatement(s)
	case *BlockStatement:
		pr.writeIndent()
		pr.emitBlock(s)
		pr.write("\n")
	case *WhileStatement:
		pr.writeIndent()
		pr.write("while (")
		pr.emitExpression(s.Condition, LOWEST)
		pr.write(") ")
		pr.emitBlock(s.Body)
		pr.write("\n")
	case *ForStatement:
		pr.emitForStatement(s)
	case *FunctionDeclaration:
		pr.writeIndent()
		pr.emitFunctionLiteral(s.Function)
		pr.write("\n")
	case *TypeDeclaration:
		pr.writeIndent()
		pr.write("type %s := ", s.Name.Value)
		for i, m := range s.Members {
			if i > 0 {
				pr.write(" | ")
			}
			pr.emitExpression(m, LOWEST)
		}
		pr.write(";\n")
	case *ModelDeclaration:
		pr.emitModelDeclaration(s)
	case *ImportSpec:
		pr.writeIndent()
		pr.emitImportSpec(s)
		pr.write(";\n")
	case *Annotation:
		pr.writeIndent()
		pr.write("@%s", s.Name.Value)
		if s.Value != nil {
			pr.write("(")
			pr.emitExpression(s.Value, LOWEST)
			pr.write(")")
		}
		pr.write("\n")
	}
}

func (pr *Printer) emitBinding(keyword string, name *Identifier, index *IndexExpression, value Expression) {
	pr.write("%s %s", keyword, name.Value)
	if index != nil {
		pr.emitSubscript(index)
	}
	pr.write(" = ")
	pr.emitExpression(value, LOWEST)
}

func (pr *Printer) emitExpressionStatement(stmt *ExpressionStatement) {
	pr.writeIndent()
	if c, ok := stmt.Expression.(*Comment); ok {
		pr.write("%s\n", c.Token.Literal)
		return
	}
	pr.emitExpression(stmt.Expression, LOWEST)
	switch stmt.Expression.(type) {
	case *IfExpression, *SwitchExpression, *FunctionLiteral, *EnumLiteral, *ClassLiteral:
		// These end in a '}' already
	default:
		pr.write(";")
	}
	pr.write("\n")
}

func (pr *Printer) emitForStatement(stmt *ForStatement) {
	pr.writeIndent()
	pr.write("for (")
	pr.emitBinding("var", stmt.Init.Name, stmt.Init.Index, stmt.Init.Value)
	pr.write("; ")
	pr.emitExpression(stmt.Condition.Expression, LOWEST)
	pr.write("; ")
	pr.emitBinding("var", stmt.Iterate.Name, stmt.Iterate.Index, stmt.Iterate.Value)
	pr.write(") ")
	pr.emitBlock(stmt.Body)
	pr.write("\n")
}

func (pr *Printer) emitModelDeclaration(stmt *ModelDeclaration) {
	pr.writeIndent()
	pr.write("model %s {", stmt.Name.Value)
	if len(stmt.Members) == 0 {
		pr.write("}\n")
		return
	}
	pr.write("\n")
	pr.indent()
	for _, m := range stmt.Members {
		pr.writeIndent()
		pr.emitModelMember(m)
		pr.write(";\n")
	}
	pr.dedent()
	pr.writeIndent()
	pr.write("}\n")
}

func (pr *Printer) emitModelMember(m *ModelMember) {
	pr.write("%s ", m.Name.Value)
	pr.emitExpression(m.Type, LOWEST)
}

// emitBlock writes '{ ... }' without a trailing newline.
func (pr *Printer) emitBlock(block *BlockStatement) {
	if len(block.Statements) == 0 {
		pr.write("{}")
		return
	}
	pr.write("{\n")
	pr.indent()
	for _, stmt := range block.Statements {
		pr.emitStatement(stmt)
	}
	pr.dedent()
	pr.writeIndent()
	pr.write("}")
}

// Expression printers

// emitExpression writes expr, parenthesized when its own binding power is
// lower than the surrounding context requires.
func (pr *Printer) emitExpression(expr Expression, context int) {
	if prec := bindingPower(expr); prec < context {
		pr.write("(")
		defer pr.write(")")
	}

	switch e := expr.(type) {
	case *Identifier:
		pr.write("%s", e.Value)
	case *IntegerLiteral, *FloatLiteral, *BooleanLiteral, *NullLiteral, *StringLiteral:
		pr.write("%s", e.String())
	case *Comment:
		pr.write("%s\n", e.Token.Literal)
		pr.writeIndent()
	case *PrefixExpression:
		pr.write("%s", e.Operator)
		context := PREFIX
		if startsWithOperator(e.Right) {
			context = primary // "- -x" must not become "--x"
		}
		pr.emitExpression(e.Right, context)
	case *InfixExpression:
		prec := precedences[e.Token.Type]
		if isRangeOperator(e.Token.Type) && endsWithInteger(e.Left) {
			// An integer right before '..' lexes as the start of a range literal
			pr.write("(")
			pr.emitExpression(e.Left, LOWEST)
			pr.write(")")
		} else {
			pr.emitExpression(e.Left, prec)
		}
		pr.write(" %s ", e.Operator)
		pr.emitExpression(e.Right, prec+1)
	case *IncrementExpression:
		pr.emitUpdate("++", e.Name, e.Prefix)
	case *DecrementExpression:
		pr.emitUpdate("--", e.Name, e.Prefix)
	case *RangeLiteral:
		op := ".."
		if e.Inclusive {
			op = "..."
		}
		pr.write("%s%s%s", e.Left, op, e.Right)
	case *IfExpression:
		pr.write("if (")
		pr.emitExpression(e.Condition, LOWEST)
		pr.write(") ")
		pr.emitBlock(e.Consequence)
		if e.Alternative != nil {
			pr.write(" else ")
			pr.emitBlock(e.Alternative)
		}
	case *FunctionLiteral:
		pr.emitFunctionLiteral(e)
	case *CallExpression:
		pr.emitExpression(e.Function, CALL)
		pr.write("(")
		pr.emitList(e.Arguments)
		pr.write(")")
	case *ArrayLiteral:
		pr.write("[")
		pr.emitList(e.Elements)
		pr.write("]")
	case *IndexExpression:
		pr.emitExpression(e.Left, INDEX)
		pr.emitSubscript(e)
	case *HashLiteral:
		pr.emitHashLiteral(e)
	case *SwitchExpression:
		pr.emitSwitchExpression(e)
	case *CaseExpression:
		pr.emitCase(e)
	case *EnumLiteral:
		pr.emitEnumLiteral(e)
	case *ClassLiteral:
		pr.emitClassLiteral(e)
	case *ImportSpec:
		pr.emitImportSpec(e)
	}
}

// primary is the binding power of anything that is not an operator.
const primary = INDEX + 1

// bindingPower is the precedence at which expr was parsed.
func bindingPower(expr Expression) int {
	switch e := expr.(type) {
	case *InfixExpression:
		return precedences[e.Token.Type]
	case *PrefixExpression:
		return PREFIX
	case *IncrementExpression:
		if e.Prefix {
			return PREFIX
		}
	case *DecrementExpression:
		if e.Prefix {
			return PREFIX
		}
	}
	return primary
}

func isRangeOperator(t lexer.TokenType) bool {
	return t == lexer.RANGE || t == lexer.RANGE_INCL
}

// endsWithInteger reports whether the printed form of expr ends in an
// integer literal.
func endsWithInteger(expr Expression) bool {
	switch e := expr.(type) {
	case *IntegerLiteral:
		return true
	case *PrefixExpression:
		return endsWithInteger(e.Right)
	case *InfixExpression:
		return endsWithInteger(e.Right)
	}
	return false
}

func startsWithOperator(expr Expression) bool {
	switch e := expr.(type) {
	case *PrefixExpression:
		return true
	case *IncrementExpression:
		return e.Prefix
	case *DecrementExpression:
		return e.Prefix
	}
	return false
}

func (pr *Printer) emitList(list []Expression) {
	for i, e := range list {
		if i > 0 {
			pr.write(", ")
		}
		pr.emitExpression(e, LOWEST)
	}
}

func (pr *Printer) emitUpdate(op string, name *Identifier, prefix bool) {
	if prefix {
		pr.write("%s%s", op, name.Value)
		return
	}
	pr.write("%s%s", name.Value, op)
}

func (pr *Printer) emitSubscript(index *IndexExpression) {
	pr.write("[")
	if index.Index != nil {
		pr.emitExpression(index.Index, LOWEST)
	}
	if index.HasColon {
		pr.write(":")
	}
	if index.RightIndex != nil {
		pr.emitExpression(index.RightIndex, LOWEST)
	}
	pr.write("]")
}

func (pr *Printer) emitFunctionLiteral(fn *FunctionLiteral) {
	pr.write("function")
	if fn.Name != nil {
		pr.write(" %s", fn.Name.Value)
	}
	pr.emitSignature(fn)
}

func (pr *Printer) emitSignature(fn *FunctionLiteral) {
	params := make([]string, len(fn.Parameters))
	for i, param := range fn.Parameters {
		params[i] = param.Value
	}
	pr.write("(%s) ", strings.Join(params, ", "))
	pr.emitBlock(fn.Body)
}

func (pr *Printer) emitHashLiteral(hash *HashLiteral) {
	if len(hash.Pairs) == 0 {
		pr.write("{}")
		return
	}
	pr.write("{")
	for i, pair := range hash.Pairs {
		if i > 0 {
			pr.write(", ")
		}
		pr.emitExpression(pair.Key, LOWEST)
		pr.write(": ")
		pr.emitExpression(pair.Value, LOWEST)
	}
	pr.write("}")
}

func (pr *Printer) emitSwitchExpression(sw *SwitchExpression) {
	pr.write("switch (")
	pr.emitExpression(sw.Value, LOWEST)
	pr.write(") {\n")
	pr.indent()
	for _, c := range sw.Cases {
		pr.writeIndent()
		pr.emitCase(c)
		pr.write("\n")
	}
	pr.dedent()
	pr.writeIndent()
	pr.write("}")
}

func (pr *Printer) emitCase(c *CaseExpression) {
	if c.Default {
		pr.write("default: ")
	} else {
		pr.write("case ")
		pr.emitExpression(c.Value, LOWEST)
		pr.write(": ")
	}
	pr.emitBlock(c.Body)
}

func (pr *Printer) emitEnumLiteral(enum *EnumLiteral) {
	pr.write("enum %s {", enum.Name.Value)
	for i, el := range enum.Elements {
		if i > 0 {
			pr.write(",")
		}
		pr.write(" ")
		pr.emitEnumElement(el)
	}
	pr.write(" }")
}

func (pr *Printer) emitEnumElement(el *EnumElement) {
	pr.write("%s", el.Name.Value)
	if !el.SelfValued() {
		pr.write(" = ")
		pr.emitExpression(el.Value, LOWEST)
	}
}

func (pr *Printer) emitClassLiteral(class *ClassLiteral) {
	pr.write("class %s {", class.Name.Value)
	if len(class.Methods) == 0 {
		pr.write("}")
		return
	}
	pr.write("\n")
	pr.indent()
	for _, m := range class.Methods {
		pr.writeIndent()
		pr.write("%s", m.Name.Value)
		pr.emitSignature(m)
		pr.write("\n")
	}
	pr.dedent()
	pr.writeIndent()
	pr.write("}")
}

func (pr *Printer) emitImportSpec(spec *ImportSpec) {
	pr.write("import(%s)", spec.Path)
	if spec.Name != nil {
		pr.write(" as %s", spec.Name.Value)
	}
}
