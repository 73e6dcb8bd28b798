package parser

// Visitor is called for each node during Walk. Returning false skips the
// node's children.
type Visitor func(Node) bool

// Walk traverses the tree rooted at node in depth-first pre-order, children
// in source order.
func Walk(node Node, visitor Visitor) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Statements {
			Walk(s, visitor)
		}

	case *VarStatement:
		walkBinding(n.Name, n.Index, n.Value, visitor)
	case *ConstStatement:
		walkBinding(n.Name, n.Index, n.Value, visitor)

	case *ReturnStatement:
		Walk(n.ReturnValue, visitor)

	case *ExpressionStatement:
		Walk(n.Expression, visitor)

	case *BlockStatement:
		for _, stmt := range n.Statements {
			Walk(stmt, visitor)
		}

	case *WhileStatement:
		Walk(n.Condition, visitor)
		walkBlock(n.Body, visitor)

	case *ForStatement:
		if n.Init != nil {
			Walk(n.Init, visitor)
		}
		if n.Condition != nil {
			Walk(n.Condition, visitor)
		}
		if n.Iterate != nil {
			Walk(n.Iterate, visitor)
		}
		walkBlock(n.Body, visitor)

	case *FunctionDeclaration:
		if n.Function != nil {
			Walk(n.Function, visitor)
		}

	case *TypeDeclaration:
		walkIdent(n.Name, visitor)
		for _, m := range n.Members {
			Walk(m, visitor)
		}

	case *ModelDeclaration:
		walkIdent(n.Name, visitor)
		for _, m := range n.Members {
			Walk(m, visitor)
		}

	case *ModelMember:
		walkIdent(n.Name, visitor)
		Walk(n.Type, visitor)

	case *ImportSpec:
		if n.Path != nil {
			Walk(n.Path, visitor)
		}
		walkIdent(n.Name, visitor)

	case *Annotation:
		walkIdent(n.Name, visitor)
		Walk(n.Value, visitor)

	case *PrefixExpression:
		Walk(n.Right, visitor)

	case *InfixExpression:
		Walk(n.Left, visitor)
		Walk(n.Right, visitor)

	case *IncrementExpression:
		walkIdent(n.Name, visitor)
	case *DecrementExpression:
		walkIdent(n.Name, visitor)

	case *RangeLiteral:
		if n.Left != nil {
			Walk(n.Left, visitor)
		}
		if n.Right != nil {
			Walk(n.Right, visitor)
		}

	case *IfExpression:
		Walk(n.Condition, visitor)
		walkBlock(n.Consequence, visitor)
		walkBlock(n.Alternative, visitor)

	case *FunctionLiteral:
		walkIdent(n.Name, visitor)
		for _, param := range n.Parameters {
			Walk(param, visitor)
		}
		walkBlock(n.Body, visitor)

	case *CallExpression:
		Walk(n.Function, visitor)
		for _, arg := range n.Arguments {
			Walk(arg, visitor)
		}

	case *ArrayLiteral:
		for _, el := range n.Elements {
			Walk(el, visitor)
		}

	case *IndexExpression:
		Walk(n.Left, visitor)
		Walk(n.Index, visitor)
		Walk(n.RightIndex, visitor)

	case *HashLiteral:
		for _, pair := range n.Pairs {
			Walk(pair.Key, visitor)
			Walk(pair.Value, visitor)
		}

	case *SwitchExpression:
		Walk(n.Value, visitor)
		for _, c := range n.Cases {
			Walk(c, visitor)
		}

	case *CaseExpression:
		Walk(n.Value, visitor)
		walkBlock(n.Body, visitor)

	case *EnumLiteral:
		walkIdent(n.Name, visitor)
		for _, el := range n.Elements {
			Walk(el, visitor)
		}

	case *EnumElement:
		walkIdent(n.Name, visitor)
		if !n.SelfValued() {
			Walk(n.Value, visitor)
		}

	case *ClassLiteral:
		walkIdent(n.Name, visitor)
		for _, m := range n.Methods {
			Walk(m, visitor)
		}

	case *Identifier, *IntegerLiteral, *FloatLiteral, *StringLiteral,
		*BooleanLiteral, *NullLiteral, *Comment:
		// Leaves
	}
}

// Inspect calls fn for every node under node, including node itself.
func Inspect(node Node, fn func(Node)) {
	Walk(node, func(n Node) bool {
		fn(n)
		return true
	})
}

// Typed nil pointers must not reach Walk as non-nil interfaces.

func walkIdent(ident *Identifier, visitor Visitor) {
	if ident != nil {
		Walk(ident, visitor)
	}
}

func walkBlock(block *BlockStatement, visitor Visitor) {
	if block != nil {
		Walk(block, visitor)
	}
}

func walkBinding(name *Identifier, index *IndexExpression, value Expression, visitor Visitor) {
	if index != nil {
		Walk(index, visitor) // index.Left is the name
	} else {
		walkIdent(name, visitor)
	}
	Walk(value, visitor)
}
