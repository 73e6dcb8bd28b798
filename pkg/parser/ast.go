package parser

import (
	"bytes"
	"strconv"
	"strings"

	"dolang/pkg/lexer"
)

// --- Interfaces ---

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string // Returns the literal value of the token associated with the node
	String() string       // Returns a string representation of the node (for debugging)
	Pos() lexer.Position  // Start of the token that introduced the node
}

// Statement represents a statement node in the AST.
type Statement interface {
	Node
	statementNode() // Dummy method for distinguishing statement types
}

// Expression represents an expression node in the AST.
type Expression interface {
	Node
	expressionNode() // Dummy method for distinguishing expression types
}

// --- Program Node ---

// Program is the root node of the AST.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() lexer.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return lexer.Position{Line: 1, Column: 1}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// --- Statement Nodes ---

// VarStatement represents a `var` binding.
// var <Name> = <Value>;
// var <Name>[<Index>] = <Value>;
type VarStatement struct {
	Token lexer.Token // The 'var' token
	Name  *Identifier
	Index *IndexExpression // Optional element/slice target
	Value Expression
}

func (vs *VarStatement) statementNode()       {}
func (vs *VarStatement) TokenLiteral() string { return vs.Token.Literal }
func (vs *VarStatement) Pos() lexer.Position  { return vs.Token.Pos }
func (vs *VarStatement) String() string {
	return bindingString(vs.TokenLiteral(), vs.Name, vs.Index, vs.Value)
}

// ConstStatement represents a `const` binding. It has the shape of VarStatement.
type ConstStatement struct {
	Token lexer.Token // The 'const' token
	Name  *Identifier
	Index *IndexExpression
	Value Expression
}

func (cs *ConstStatement) statementNode()       {}
func (cs *ConstStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ConstStatement) Pos() lexer.Position  { return cs.Token.Pos }
func (cs *ConstStatement) String() string {
	return bindingString(cs.TokenLiteral(), cs.Name, cs.Index, cs.Value)
}

func bindingString(keyword string, name *Identifier, index *IndexExpression, value Expression) string {
	var out bytes.Buffer
	out.WriteString(keyword + " ")
	if name != nil {
		out.WriteString(name.String())
	}
	if index != nil {
		out.WriteString(index.subscript())
	}
	out.WriteString(" = ")
	if value != nil {
		out.WriteString(value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatement represents a 'return' statement.
// return <ReturnValue>;
type ReturnStatement struct {
	Token       lexer.Token // The 'return' token
	ReturnValue Expression  // Optional
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() lexer.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString(rs.TokenLiteral())
	if rs.ReturnValue != nil {
		out.WriteString(" ")
		out.WriteString(rs.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

// ExpressionStatement represents a statement consisting of a single expression.
type ExpressionStatement struct {
	Token      lexer.Token // The first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() lexer.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

// BlockStatement represents a sequence of statements enclosed in braces.
// { <statement1>; <statement2>; ... }
type BlockStatement struct {
	Token      lexer.Token // The { token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() lexer.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	if len(bs.Statements) == 0 {
		return "{}"
	}
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range bs.Statements {
		lines := strings.Split(s.String(), "\n")
		for _, line := range lines {
			out.WriteString("\t" + line + "\n")
		}
	}
	out.WriteString("}")
	return out.String()
}

// WhileStatement represents a 'while (condition) { body }' statement.
type WhileStatement struct {
	Token     lexer.Token // The 'while' token
	Condition Expression
	Body      *BlockStatement
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() lexer.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while (")
	if ws.Condition != nil {
		out.WriteString(ws.Condition.String())
	}
	out.WriteString(") ")
	if ws.Body != nil {
		out.WriteString(ws.Body.String())
	}
	return out.String()
}

// ForStatement represents 'for (var i = 0; i < n; var i = i + 1) { body }'.
// Init and Iterate are always var bindings; Condition is an expression statement.
type ForStatement struct {
	Token     lexer.Token // The 'for' token
	Init      *VarStatement
	Condition *ExpressionStatement
	Iterate   *VarStatement
	Body      *BlockStatement
}

func (fs *ForStatement) statementNode()       {}
func (fs *ForStatement) TokenLiteral() string { return fs.Token.Literal }
func (fs *ForStatement) Pos() lexer.Position  { return fs.Token.Pos }
func (fs *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if fs.Init != nil {
		out.WriteString(fs.Init.String())
	} else {
		out.WriteString(";")
	}
	if fs.Condition != nil {
		out.WriteString(" ")
		out.WriteString(fs.Condition.String())
	}
	out.WriteString(";")
	if fs.Iterate != nil {
		out.WriteString(" ")
		out.WriteString(strings.TrimSuffix(fs.Iterate.String(), ";"))
	}
	out.WriteString(") ")
	if fs.Body != nil {
		out.WriteString(fs.Body.String())
	}
	return out.String()
}

// FunctionDeclaration is a named function literal in statement position.
// function <Name>(<Parameters>) { <Body> }
type FunctionDeclaration struct {
	Token    lexer.Token // The 'function' token
	Function *FunctionLiteral
}

func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDeclaration) Pos() lexer.Position  { return fd.Token.Pos }
func (fd *FunctionDeclaration) String() string {
	if fd.Function == nil {
		return ""
	}
	return fd.Function.String()
}

// TypeDeclaration declares a union of type members.
// type <Name> := <Member> | <Member> ... ;
type TypeDeclaration struct {
	Token   lexer.Token // The 'type' token
	Name    *Identifier
	Members []Expression // Identifiers or literals, in source order
}

func (td *TypeDeclaration) statementNode()       {}
func (td *TypeDeclaration) TokenLiteral() string { return td.Token.Literal }
func (td *TypeDeclaration) Pos() lexer.Position  { return td.Token.Pos }
func (td *TypeDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("type ")
	if td.Name != nil {
		out.WriteString(td.Name.String())
	}
	out.WriteString(" := ")
	out.WriteString(joinNodes(td.Members, " | "))
	out.WriteString(";")
	return out.String()
}

// ModelDeclaration declares a structural interface.
// model <Name> { <member> <type>; ... }
type ModelDeclaration struct {
	Token   lexer.Token // The 'model' token
	Name    *Identifier
	Members []*ModelMember
}

func (md *ModelDeclaration) statementNode()       {}
func (md *ModelDeclaration) TokenLiteral() string { return md.Token.Literal }
func (md *ModelDeclaration) Pos() lexer.Position  { return md.Token.Pos }
func (md *ModelDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("model ")
	if md.Name != nil {
		out.WriteString(md.Name.String())
	}
	out.WriteString(" {")
	for _, m := range md.Members {
		out.WriteString(" ")
		out.WriteString(m.String())
		out.WriteString(";")
	}
	out.WriteString(" }")
	return out.String()
}

// ModelMember is one 'name type' pair of a model.
type ModelMember struct {
	Token lexer.Token // The member name token
	Name  *Identifier
	Type  Expression
}

func (mm *ModelMember) TokenLiteral() string { return mm.Token.Literal }
func (mm *ModelMember) Pos() lexer.Position  { return mm.Token.Pos }
func (mm *ModelMember) String() string {
	if mm.Type == nil {
		return mm.Name.String()
	}
	return mm.Name.String() + " " + mm.Type.String()
}

// ImportSpec is import("path") with an optional alias. It can stand as a
// statement or be used as a value.
type ImportSpec struct {
	Token lexer.Token // The 'import' token
	Path  *StringLiteral
	Name  *Identifier // Optional 'as' alias
}

func (is *ImportSpec) statementNode()       {}
func (is *ImportSpec) expressionNode()      {}
func (is *ImportSpec) TokenLiteral() string { return is.Token.Literal }
func (is *ImportSpec) Pos() lexer.Position  { return is.Token.Pos }
func (is *ImportSpec) String() string {
	var out bytes.Buffer
	out.WriteString("import(")
	if is.Path != nil {
		out.WriteString(is.Path.String())
	}
	out.WriteString(")")
	if is.Name != nil {
		out.WriteString(" as ")
		out.WriteString(is.Name.String())
	}
	return out.String()
}

// Annotation is '@Name' or '@Name(value)' in the statement stream.
type Annotation struct {
	Token lexer.Token // The '@' token
	Name  *Identifier
	Value Expression // Optional
}

func (a *Annotation) statementNode()       {}
func (a *Annotation) TokenLiteral() string { return a.Token.Literal }
func (a *Annotation) Pos() lexer.Position  { return a.Token.Pos }
func (a *Annotation) String() string {
	var out bytes.Buffer
	out.WriteString("@")
	if a.Name != nil {
		out.WriteString(a.Name.String())
	}
	if a.Value != nil {
		out.WriteString("(")
		out.WriteString(a.Value.String())
		out.WriteString(")")
	}
	return out.String()
}

// --- Expression Nodes ---

// Identifier represents an identifier (e.g., variable name).
type Identifier struct {
	Token lexer.Token // The lexer.IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) Pos() lexer.Position  { return i.Token.Pos }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral represents an integer literal.
type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) Pos() lexer.Position  { return il.Token.Pos }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }

// FloatLiteral represents a floating point literal.
type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) Pos() lexer.Position  { return fl.Token.Pos }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }

// StringLiteral represents a string literal. Value holds the unescaped text.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) Pos() lexer.Position  { return sl.Token.Pos }
func (sl *StringLiteral) String() string       { return quote(sl.Value) }

// quote renders s as a double-quoted literal using only the escapes the
// lexer understands.
func quote(s string) string {
	var out strings.Builder
	out.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\n`)
		case '\t':
			out.WriteString(`\t`)
		case '\r':
			out.WriteString(`\r`)
		default:
			out.WriteRune(r)
		}
	}
	out.WriteByte('"')
	return out.String()
}

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BooleanLiteral) expressionNode()      {}
func (b *BooleanLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BooleanLiteral) Pos() lexer.Position  { return b.Token.Pos }
func (b *BooleanLiteral) String() string       { return strconv.FormatBool(b.Value) }

// NullLiteral represents the null value.
type NullLiteral struct {
	Token lexer.Token
}

func (nl *NullLiteral) expressionNode()      {}
func (nl *NullLiteral) TokenLiteral() string { return nl.Token.Literal }
func (nl *NullLiteral) Pos() lexer.Position  { return nl.Token.Pos }
func (nl *NullLiteral) String() string       { return "null" }

// Comment represents a '//' comment found in expression position.
type Comment struct {
	Token lexer.Token
	Value string // Text after the '//' marker
}

func (c *Comment) expressionNode()      {}
func (c *Comment) TokenLiteral() string { return c.Token.Literal }
func (c *Comment) Pos() lexer.Position  { return c.Token.Pos }
func (c *Comment) String() string       { return c.Token.Literal }

// PrefixExpression represents a prefix operator expression.
// <operator><Right>
type PrefixExpression struct {
	Token    lexer.Token // The prefix token, e.g. ! or -
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) Pos() lexer.Position  { return pe.Token.Pos }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(pe.Operator)
	if pe.Right != nil {
		out.WriteString(pe.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

// InfixExpression represents an infix operator expression.
// <Left> <operator> <Right>
// Right is nil only when the right operand failed to parse.
type InfixExpression struct {
	Token    lexer.Token // The operator token, e.g. +
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) Pos() lexer.Position  { return ie.Token.Pos }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	if ie.Left != nil {
		out.WriteString(ie.Left.String())
	}
	out.WriteString(" " + ie.Operator + " ")
	if ie.Right != nil {
		out.WriteString(ie.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

// IncrementExpression is ++i (Prefix) or i++.
type IncrementExpression struct {
	Token  lexer.Token // The '++' token for prefix form, the identifier otherwise
	Name   *Identifier
	Prefix bool
}

func (ie *IncrementExpression) expressionNode()      {}
func (ie *IncrementExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IncrementExpression) Pos() lexer.Position  { return ie.Token.Pos }
func (ie *IncrementExpression) String() string       { return updateString("++", ie.Name, ie.Prefix) }

// DecrementExpression is --i (Prefix) or i--.
type DecrementExpression struct {
	Token  lexer.Token
	Name   *Identifier
	Prefix bool
}

func (de *DecrementExpression) expressionNode()      {}
func (de *DecrementExpression) TokenLiteral() string { return de.Token.Literal }
func (de *DecrementExpression) Pos() lexer.Position  { return de.Token.Pos }
func (de *DecrementExpression) String() string       { return updateString("--", de.Name, de.Prefix) }

func updateString(op string, name *Identifier, prefix bool) string {
	ident := ""
	if name != nil {
		ident = name.String()
	}
	if prefix {
		return "(" + op + ident + ")"
	}
	return "(" + ident + op + ")"
}

// RangeLiteral is an integer range with literal bounds.
// <Left>..<Right> or <Left>...<Right> (Inclusive)
type RangeLiteral struct {
	Token     lexer.Token // The '..' or '...' token
	Left      *IntegerLiteral
	Right     *IntegerLiteral
	Inclusive bool
}

func (rl *RangeLiteral) expressionNode()      {}
func (rl *RangeLiteral) TokenLiteral() string { return rl.Token.Literal }
func (rl *RangeLiteral) Pos() lexer.Position  { return rl.Left.Pos() }
func (rl *RangeLiteral) String() string {
	op := ".."
	if rl.Inclusive {
		op = "..."
	}
	return "(" + rl.Left.String() + op + rl.Right.String() + ")"
}

// IfExpression represents an if/else conditional expression.
// if (<Condition>) { <Consequence> } else { <Alternative> }
type IfExpression struct {
	Token       lexer.Token // The 'if' token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // Optional
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) Pos() lexer.Position  { return ie.Token.Pos }
func (ie *IfExpression) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	if ie.Condition != nil {
		out.WriteString(ie.Condition.String())
	}
	out.WriteString(") ")
	if ie.Consequence != nil {
		out.WriteString(ie.Consequence.String())
	}
	if ie.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(ie.Alternative.String())
	}
	return out.String()
}

// FunctionLiteral represents a function definition.
// function <Name>(<Parameters>) { <Body> }
// Or anonymous: function(<Parameters>) { <Body> }
type FunctionLiteral struct {
	Token      lexer.Token // The 'function' token, or the method name inside a class
	Name       *Identifier // Optional function name
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) Pos() lexer.Position  { return fl.Token.Pos }
func (fl *FunctionLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("function")
	if fl.Name != nil {
		out.WriteString(" ")
		out.WriteString(fl.Name.String())
	}
	out.WriteString("(")
	out.WriteString(joinIdents(fl.Parameters))
	out.WriteString(") ")
	if fl.Body != nil {
		out.WriteString(fl.Body.String())
	}
	return out.String()
}

// CallExpression represents a function call.
// <Function>(<Arguments>)
type CallExpression struct {
	Token     lexer.Token // The '(' token
	Function  Expression  // Identifier or any expression producing a callee
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) Pos() lexer.Position  { return ce.Token.Pos }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	if ce.Function != nil {
		out.WriteString(ce.Function.String())
	}
	out.WriteString("(")
	out.WriteString(joinNodes(ce.Arguments, ", "))
	out.WriteString(")")
	return out.String()
}

// ArrayLiteral represents [a, b, c].
type ArrayLiteral struct {
	Token    lexer.Token // The '[' token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) Pos() lexer.Position  { return al.Token.Pos }
func (al *ArrayLiteral) String() string {
	return "[" + joinNodes(al.Elements, ", ") + "]"
}

// IndexExpression covers element access and slicing:
//
//	a[i]    Index set
//	a[:j]   HasColon, RightIndex set
//	a[i:]   Index set, HasColon
//	a[i:j]  all three
type IndexExpression struct {
	Token      lexer.Token // The '[' token
	Left       Expression  // The binding name when used as a var target
	Index      Expression
	HasColon   bool
	RightIndex Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) Pos() lexer.Position  { return ie.Token.Pos }
func (ie *IndexExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	if ie.Left != nil {
		out.WriteString(ie.Left.String())
	}
	out.WriteString(ie.subscript())
	out.WriteString(")")
	return out.String()
}

// subscript renders the bracketed part only.
func (ie *IndexExpression) subscript() string {
	var out bytes.Buffer
	out.WriteString("[")
	if ie.Index != nil {
		out.WriteString(ie.Index.String())
	}
	if ie.HasColon {
		out.WriteString(":")
	}
	if ie.RightIndex != nil {
		out.WriteString(ie.RightIndex.String())
	}
	out.WriteString("]")
	return out.String()
}

// HashPair is one key: value entry of a HashLiteral.
type HashPair struct {
	Key   Expression
	Value Expression
}

// HashLiteral represents { key: value, ... }. Pairs keep source order and
// duplicate keys are kept.
type HashLiteral struct {
	Token lexer.Token // The '{' token
	Pairs []HashPair
}

func (hl *HashLiteral) expressionNode()      {}
func (hl *HashLiteral) TokenLiteral() string { return hl.Token.Literal }
func (hl *HashLiteral) Pos() lexer.Position  { return hl.Token.Pos }
func (hl *HashLiteral) String() string {
	pairs := make([]string, 0, len(hl.Pairs))
	for _, p := range hl.Pairs {
		pairs = append(pairs, p.Key.String()+": "+p.Value.String())
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

// SwitchExpression represents switch (<Value>) { <Cases> }.
type SwitchExpression struct {
	Token lexer.Token // The 'switch' token
	Value Expression
	Cases []*CaseExpression
}

func (se *SwitchExpression) expressionNode()      {}
func (se *SwitchExpression) TokenLiteral() string { return se.Token.Literal }
func (se *SwitchExpression) Pos() lexer.Position  { return se.Token.Pos }
func (se *SwitchExpression) String() string {
	var out bytes.Buffer
	out.WriteString("switch (")
	if se.Value != nil {
		out.WriteString(se.Value.String())
	}
	out.WriteString(") {")
	for _, c := range se.Cases {
		out.WriteString("\n")
		out.WriteString(c.String())
	}
	out.WriteString("\n}")
	return out.String()
}

// CaseExpression is 'case <Value>: <Body>' or, with Default set,
// 'default: <Body>'.
type CaseExpression struct {
	Token   lexer.Token // The 'case' or 'default' token
	Value   Expression  // Nil for the default case
	Default bool
	Body    *BlockStatement
}

func (ce *CaseExpression) expressionNode()      {}
func (ce *CaseExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CaseExpression) Pos() lexer.Position  { return ce.Token.Pos }
func (ce *CaseExpression) String() string {
	var out bytes.Buffer
	if ce.Default {
		out.WriteString("default")
	} else {
		out.WriteString("case ")
		if ce.Value != nil {
			out.WriteString(ce.Value.String())
		}
	}
	out.WriteString(": ")
	if ce.Body != nil {
		out.WriteString(ce.Body.String())
	}
	return out.String()
}

// EnumLiteral represents enum <Name> { <Elements> }.
type EnumLiteral struct {
	Token    lexer.Token // The 'enum' token
	Name     *Identifier
	Elements []*EnumElement
}

func (el *EnumLiteral) expressionNode()      {}
func (el *EnumLiteral) TokenLiteral() string { return el.Token.Literal }
func (el *EnumLiteral) Pos() lexer.Position  { return el.Token.Pos }
func (el *EnumLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("enum ")
	if el.Name != nil {
		out.WriteString(el.Name.String())
	}
	elems := make([]string, 0, len(el.Elements))
	for _, e := range el.Elements {
		elems = append(elems, e.String())
	}
	out.WriteString(" { ")
	out.WriteString(strings.Join(elems, ", "))
	out.WriteString(" }")
	return out.String()
}

// EnumElement is one member of an enum. Value is the member's own name
// identifier when no '= expr' is given.
type EnumElement struct {
	Token lexer.Token // The member name token
	Name  *Identifier
	Value Expression
}

func (ee *EnumElement) TokenLiteral() string { return ee.Token.Literal }
func (ee *EnumElement) Pos() lexer.Position  { return ee.Token.Pos }
func (ee *EnumElement) String() string {
	if ee.SelfValued() {
		return ee.Name.String()
	}
	return ee.Name.String() + " = " + ee.Value.String()
}

// SelfValued reports whether the element takes its own name as value.
func (ee *EnumElement) SelfValued() bool {
	ident, ok := ee.Value.(*Identifier)
	return ok && ident == ee.Name
}

// ClassLiteral represents class <Name> { <Methods> }.
type ClassLiteral struct {
	Token   lexer.Token // The 'class' token
	Name    *Identifier
	Methods []*FunctionLiteral
}

func (cl *ClassLiteral) expressionNode()      {}
func (cl *ClassLiteral) TokenLiteral() string { return cl.Token.Literal }
func (cl *ClassLiteral) Pos() lexer.Position  { return cl.Token.Pos }
func (cl *ClassLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	if cl.Name != nil {
		out.WriteString(cl.Name.String())
	}
	out.WriteString(" {")
	for _, m := range cl.Methods {
		out.WriteString("\n")
		out.WriteString(m.String())
	}
	out.WriteString("\n}")
	return out.String()
}

// --- helpers ---

func joinNodes[T Node](nodes []T, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, sep)
}

func joinIdents(idents []*Identifier) string {
	return joinNodes(idents, ", ")
}
