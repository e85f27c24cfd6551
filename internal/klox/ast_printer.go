package klox

import (
	"fmt"
	"strings"
)

// AstPrinter renders a parsed program as a Lisp-like parenthesized
// expression, one line per statement. It exists only for --debug; it is
// never on the path from source to evaluated program.
type AstPrinter struct{}

// Print renders every statement in stmts, one per line.
func (p *AstPrinter) Print(stmts []Stmt) string {
	var b strings.Builder
	for _, stmt := range stmts {
		s, _ := stmt.Accept(p)
		fmt.Fprintln(&b, s)
	}
	return b.String()
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%s", name)
	for _, expr := range exprs {
		s, _ := expr.Accept(p)
		fmt.Fprintf(&b, " %v", s)
	}
	b.WriteString(")")
	return b.String()
}

func (p *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	if expr.Value == nil {
		return "nil", nil
	}
	return stringify(expr.Value), nil
}

func (p *AstPrinter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}

func (p *AstPrinter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	return p.parenthesize("= "+expr.Name.Lexeme, expr.Val), nil
}

func (p *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return p.parenthesize(expr.Op.Lexeme, expr.Expr), nil
}

func (p *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	return p.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs), nil
}

func (p *AstPrinter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	return p.parenthesize(expr.Op.Lexeme, expr.Lhs, expr.Rhs), nil
}

func (p *AstPrinter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return p.parenthesize("group", expr.Expr), nil
}

func (p *AstPrinter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	return p.parenthesize("call", append([]Expr{expr.Callee}, expr.Args...)...), nil
}

func (p *AstPrinter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	return p.parenthesize("get "+expr.Name.Lexeme, expr.Object), nil
}

func (p *AstPrinter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	return p.parenthesize("set "+expr.Name.Lexeme, expr.Object, expr.Val), nil
}

func (p *AstPrinter) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return "this", nil
}

func (p *AstPrinter) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	return "(super " + expr.Method.Lexeme + ")", nil
}

func (p *AstPrinter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(block")
	for _, s := range stmt.Stmts {
		v, _ := s.Accept(p)
		fmt.Fprintf(&b, " %v", v)
	}
	b.WriteString(")")
	return b.String(), nil
}

func (p *AstPrinter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	return p.parenthesize(";", stmt.Expr), nil
}

func (p *AstPrinter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	return p.parenthesize("print", stmt.Expr), nil
}

func (p *AstPrinter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	return p.parenthesize("var "+stmt.Name.Lexeme, stmt.Init), nil
}

func (p *AstPrinter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	if stmt.ElseBranch == nil {
		return p.parenthesize2("if", stmt.Cond, stmt.ThenBranch), nil
	}
	return p.parenthesize3("if-else", stmt.Cond, stmt.ThenBranch, stmt.ElseBranch), nil
}

func (p *AstPrinter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	return p.parenthesize2("while", stmt.Cond, stmt.Body), nil
}

func (p *AstPrinter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "(fun %s(", stmt.Name.Lexeme)
	for i, param := range stmt.Params {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(param.Lexeme)
	}
	b.WriteString(")")
	for _, s := range stmt.Body {
		v, _ := s.Accept(p)
		fmt.Fprintf(&b, " %v", v)
	}
	b.WriteString(")")
	return b.String(), nil
}

func (p *AstPrinter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	if stmt.Val == nil {
		return "(return)", nil
	}
	return p.parenthesize("return", stmt.Val), nil
}

func (p *AstPrinter) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "(class %s", stmt.Name.Lexeme)
	if stmt.Superclass != nil {
		fmt.Fprintf(&b, " < %s", stmt.Superclass.Name.Lexeme)
	}
	for _, m := range stmt.Methods {
		v, _ := m.Accept(p)
		fmt.Fprintf(&b, " %v", v)
	}
	b.WriteString(")")
	return b.String(), nil
}

// parenthesize2 and parenthesize3 mix an Expr and Stmt operands, which
// parenthesize cannot do since it only accepts Expr.
func (p *AstPrinter) parenthesize2(name string, cond Expr, body Stmt) string {
	condStr, _ := cond.Accept(p)
	bodyStr, _ := body.Accept(p)
	return fmt.Sprintf("(%s %v %v)", name, condStr, bodyStr)
}

func (p *AstPrinter) parenthesize3(name string, cond Expr, then, els Stmt) string {
	condStr, _ := cond.Accept(p)
	thenStr, _ := then.Accept(p)
	elseStr, _ := els.Accept(p)
	return fmt.Sprintf("(%s %v %v %v)", name, condStr, thenStr, elseStr)
}
