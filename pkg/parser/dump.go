package parser

// Dump converts the tree rooted at node into plain maps and slices that
// encode directly to YAML or JSON. Every map carries "kind" (the node type)
// and "pos" ("line:column"); absent optional children are omitted.
func Dump(node Node) map[string]any {
	if node == nil {
		return nil
	}
	d := map[string]any{
		"kind": kindOf(node),
		"pos":  node.Pos().String(),
	}

	switch n := node.(type) {
	case *Program:
		d["statements"] = dumpStatements(n.Statements)

	case *VarStatement:
		dumpBinding(d, n.Name, n.Index, n.Value)
	case *ConstStatement:
		dumpBinding(d, n.Name, n.Index, n.Value)

	case *ReturnStatement:
		put(d, "value", n.ReturnValue)

	case *ExpressionStatement:
		put(d, "expression", n.Expression)

	case *BlockStatement:
		d["statements"] = dumpStatements(n.Statements)

	case *WhileStatement:
		put(d, "condition", n.Condition)
		putBlock(d, "body", n.Body)

	case *ForStatement:
		if n.Init != nil {
			d["init"] = Dump(n.Init)
		}
		if n.Condition != nil {
			d["condition"] = Dump(n.Condition)
		}
		if n.Iterate != nil {
			d["iterate"] = Dump(n.Iterate)
		}
		putBlock(d, "body", n.Body)

	case *FunctionDeclaration:
		if n.Function != nil {
			d["function"] = Dump(n.Function)
		}

	case *TypeDeclaration:
		putName(d, n.Name)
		d["members"] = dumpExpressions(n.Members)

	case *ModelDeclaration:
		putName(d, n.Name)
		members := make([]any, 0, len(n.Members))
		for _, m := range n.Members {
			members = append(members, Dump(m))
		}
		d["members"] = members

	case *ModelMember:
		putName(d, n.Name)
		put(d, "type", n.Type)

	case *ImportSpec:
		if n.Path != nil {
			d["path"] = n.Path.Value
		}
		putName(d, n.Name)

	case *Annotation:
		putName(d, n.Name)
		put(d, "value", n.Value)

	case *Identifier:
		d["value"] = n.Value
	case *IntegerLiteral:
		d["value"] = n.Value
	case *FloatLiteral:
		d["value"] = n.Value
	case *StringLiteral:
		d["value"] = n.Value
	case *BooleanLiteral:
		d["value"] = n.Value
	case *NullLiteral:
	case *Comment:
		d["value"] = n.Value

	case *PrefixExpression:
		d["operator"] = n.Operator
		put(d, "right", n.Right)

	case *InfixExpression:
		d["operator"] = n.Operator
		put(d, "left", n.Left)
		put(d, "right", n.Right)

	case *IncrementExpression:
		putName(d, n.Name)
		d["prefix"] = n.Prefix
	case *DecrementExpression:
		putName(d, n.Name)
		d["prefix"] = n.Prefix

	case *RangeLiteral:
		d["left"] = n.Left.Value
		d["right"] = n.Right.Value
		d["inclusive"] = n.Inclusive

	case *IfExpression:
		put(d, "condition", n.Condition)
		putBlock(d, "consequence", n.Consequence)
		putBlock(d, "alternative", n.Alternative)

	case *FunctionLiteral:
		putName(d, n.Name)
		params := make([]any, 0, len(n.Parameters))
		for _, param := range n.Parameters {
			params = append(params, param.Value)
		}
		d["parameters"] = params
		putBlock(d, "body", n.Body)

	case *CallExpression:
		put(d, "function", n.Function)
		d["arguments"] = dumpExpressions(n.Arguments)

	case *ArrayLiteral:
		d["elements"] = dumpExpressions(n.Elements)

	case *IndexExpression:
		put(d, "left", n.Left)
		put(d, "index", n.Index)
		d["has_colon"] = n.HasColon
		put(d, "right_index", n.RightIndex)

	case *HashLiteral:
		pairs := make([]any, 0, len(n.Pairs))
		for _, pair := range n.Pairs {
			pairs = append(pairs, map[string]any{"key": Dump(pair.Key), "value": Dump(pair.Value)})
		}
		d["pairs"] = pairs

	case *SwitchExpression:
		put(d, "value", n.Value)
		cases := make([]any, 0, len(n.Cases))
		for _, c := range n.Cases {
			cases = append(cases, Dump(c))
		}
		d["cases"] = cases

	case *CaseExpression:
		put(d, "value", n.Value)
		d["default"] = n.Default
		putBlock(d, "body", n.Body)

	case *EnumLiteral:
		putName(d, n.Name)
		elements := make([]any, 0, len(n.Elements))
		for _, el := range n.Elements {
			elements = append(elements, Dump(el))
		}
		d["elements"] = elements

	case *EnumElement:
		putName(d, n.Name)
		put(d, "value", n.Value)

	case *ClassLiteral:
		putName(d, n.Name)
		methods := make([]any, 0, len(n.Methods))
		for _, m := range n.Methods {
			methods = append(methods, Dump(m))
		}
		d["methods"] = methods
	}
	return d
}

// kindOf names the node's variant, e.g. "InfixExpression".
func kindOf(node Node) string {
	switch node.(type) {
	case *Program:
		return "Program"
	case *VarStatement:
		return "VarStatement"
	case *ConstStatement:
		return "ConstStatement"
	case *ReturnStatement:
		return "ReturnStatement"
	case *ExpressionStatement:
		return "ExpressionStatement"
	case *BlockStatement:
		return "BlockStatement"
	case *WhileStatement:
		return "WhileStatement"
	case *ForStatement:
		return "ForStatement"
	case *FunctionDeclaration:
		return "FunctionDeclaration"
	case *TypeDeclaration:
		return "TypeDeclaration"
	case *ModelDeclaration:
		return "ModelDeclaration"
	case *ModelMember:
		return "ModelMember"
	case *ImportSpec:
		return "ImportSpec"
	case *Annotation:
		return "Annotation"
	case *Identifier:
		return "Identifier"
	case *IntegerLiteral:
		return "IntegerLiteral"
	case *FloatLiteral:
		return "FloatLiteral"
	case *StringLiteral:
		return "StringLiteral"
	case *BooleanLiteral:
		return "BooleanLiteral"
	case *NullLiteral:
		return "NullLiteral"
	case *Comment:
		return "Comment"
	case *PrefixExpression:
		return "PrefixExpression"
	case *InfixExpression:
		return "InfixExpression"
	case *IncrementExpression:
		return "IncrementExpression"
	case *DecrementExpression:
		return "DecrementExpression"
	case *RangeLiteral:
		return "RangeLiteral"
	case *IfExpression:
		return "IfExpression"
	case *FunctionLiteral:
		return "FunctionLiteral"
	case *CallExpression:
		return "CallExpression"
	case *ArrayLiteral:
		return "ArrayLiteral"
	case *IndexExpression:
		return "IndexExpression"
	case *HashLiteral:
		return "HashLiteral"
	case *SwitchExpression:
		return "SwitchExpression"
	case *CaseExpression:
		return "CaseExpression"
	case *EnumLiteral:
		return "EnumLiteral"
	case *EnumElement:
		return "EnumElement"
	case *ClassLiteral:
		return "ClassLiteral"
	}
	return "Unknown"
}

func put(d map[string]any, key string, expr Expression) {
	if expr != nil {
		d[key] = Dump(expr)
	}
}

func putBlock(d map[string]any, key string, block *BlockStatement) {
	if block != nil {
		d[key] = Dump(block)
	}
}

func putName(d map[string]any, name *Identifier) {
	if name != nil {
		d["name"] = name.Value
	}
}

func dumpBinding(d map[string]any, name *Identifier, index *IndexExpression, value Expression) {
	putName(d, name)
	if index != nil {
		d["index"] = Dump(index)
	}
	put(d, "value", value)
}

func dumpStatements(stmts []Statement) []any {
	out := make([]any, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, Dump(s))
	}
	return out
}

func dumpExpressions(exprs []Expression) []any {
	out := make([]any, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, Dump(e))
	}
	return out
}
