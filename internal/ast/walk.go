package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *Block:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *Declaration:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Type != nil {
			Walk(n.Type, fn)
		}

	case *Type:
		if n.Name != nil {
			Walk(n.Name, fn)
		}

	case *LoopStmt:
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *BreakStmt:
		// no children

	case *FunctionStmt:
		if n.Decl != nil {
			Walk(n.Decl, fn)
		}
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *CallStmt:
		if n.Call != nil {
			Walk(n.Call, fn)
		}

	case *TryCatchStmt:
		if n.Try != nil {
			Walk(n.Try, fn)
		}
		if n.CatchName != nil {
			Walk(n.CatchName, fn)
		}
		if n.Catch != nil {
			Walk(n.Catch, fn)
		}

	case *ThrowStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *ImportStmt:
		if n.Path != nil {
			Walk(n.Path, fn)
		}

	case *ModuleStmt:
		if n.Name != nil {
			Walk(n.Name, fn)
		}

	case *VariableStmt:
		if n.Decl != nil {
			Walk(n.Decl, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *AssignStmt:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *IfStmt:
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}
		for _, clause := range n.ElseIfs {
			Walk(clause, fn)
		}
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *ElseIf:
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *ClassStmt:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *ConditionalExpr:
		for _, term := range n.Terms {
			Walk(term, fn)
		}

	case *BinaryExpr:
		for _, term := range n.Terms {
			Walk(term, fn)
		}

	case *IndexExpr:
		if n.Target != nil {
			Walk(n.Target, fn)
		}
		if n.Index != nil {
			Walk(n.Index, fn)
		}

	case *CallExpr:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	}
}
