package klox

// Code generated by cmd/genast; see that tool before hand-editing node
// shapes.

// Stmt is implemented by every statement node.
type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}

// StmtVisitor dispatches over the closed set of statement node kinds.
type StmtVisitor interface {
	VisitBlockStmt(stmt *BlockStmt) (interface{}, error)
	VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitVarStmt(stmt *VarStmt) (interface{}, error)
	VisitIfStmt(stmt *IfStmt) (interface{}, error)
	VisitWhileStmt(stmt *WhileStmt) (interface{}, error)
	VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error)
	VisitReturnStmt(stmt *ReturnStmt) (interface{}, error)
	VisitClassStmt(stmt *ClassStmt) (interface{}, error)
}

// BlockStmt introduces a new lexical scope around Stmts.
type BlockStmt struct {
	Stmts []Stmt
}

func NewBlockStmt(Stmts []Stmt) *BlockStmt {
	return &BlockStmt{Stmts}
}

func (stmt *BlockStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitBlockStmt(stmt)
}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

func NewExpressionStmt(Expr Expr) *ExpressionStmt {
	return &ExpressionStmt{Expr}
}

func (stmt *ExpressionStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitExpressionStmt(stmt)
}

// PrintStmt evaluates Expr and writes its stringified form.
type PrintStmt struct {
	Expr Expr
}

func NewPrintStmt(Expr Expr) *PrintStmt {
	return &PrintStmt{Expr}
}

func (stmt *PrintStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitPrintStmt(stmt)
}

// VarStmt declares Name in the current environment, bound to the evaluated
// Init (Literal(nil) when the source omitted an initializer).
type VarStmt struct {
	Name *Token
	Init Expr
}

func NewVarStmt(Name *Token, Init Expr) *VarStmt {
	return &VarStmt{Name, Init}
}

func (stmt *VarStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitVarStmt(stmt)
}

// IfStmt runs ThenBranch or ElseBranch depending on Cond. ElseBranch is nil
// when the source has no "else".
type IfStmt struct {
	Cond       Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func NewIfStmt(Cond Expr, ThenBranch Stmt, ElseBranch Stmt) *IfStmt {
	return &IfStmt{Cond, ThenBranch, ElseBranch}
}

func (stmt *IfStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitIfStmt(stmt)
}

// WhileStmt re-evaluates Cond before every run of Body. "for" loops desugar
// into this node.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

func NewWhileStmt(Cond Expr, Body Stmt) *WhileStmt {
	return &WhileStmt{Cond, Body}
}

func (stmt *WhileStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitWhileStmt(stmt)
}

// FunctionStmt declares a named function, and is reused verbatim for class
// method bodies.
type FunctionStmt struct {
	Name   *Token
	Params []*Token
	Body   []Stmt
}

func NewFunctionStmt(Name *Token, Params []*Token, Body []Stmt) *FunctionStmt {
	return &FunctionStmt{Name, Params, Body}
}

func (stmt *FunctionStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitFunctionStmt(stmt)
}

// ReturnStmt unwinds the current call, carrying Val (nil when the source
// wrote a bare "return;").
type ReturnStmt struct {
	Keyword *Token
	Val     Expr
}

func NewReturnStmt(Keyword *Token, Val Expr) *ReturnStmt {
	return &ReturnStmt{Keyword, Val}
}

func (stmt *ReturnStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitReturnStmt(stmt)
}

// ClassStmt declares a class, optionally extending Superclass, with Methods
// as its method table.
type ClassStmt struct {
	Name       *Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func NewClassStmt(Name *Token, Superclass *VariableExpr, Methods []*FunctionStmt) *ClassStmt {
	return &ClassStmt{Name, Superclass, Methods}
}

func (stmt *ClassStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitClassStmt(stmt)
}
