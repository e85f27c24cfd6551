package klox

import (
	"fmt"
	"io"
)

// Interpreter walks a resolved program, maintaining a current environment
// pointer that advances as execution enters and leaves scopes. It
// implements both ExprVisitor and StmtVisitor.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[Expr]int
	output      io.Writer
	reporter    Reporter
}

// NewInterpreter creates an interpreter that writes "print" output to
// output and reports runtime errors to reporter. The global scope is
// seeded with the "clock" native function.
func NewInterpreter(output io.Writer, reporter Reporter) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", nativeClock{})
	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      make(map[Expr]int),
		output:      output,
		reporter:    reporter,
	}
}

// Interpret executes each statement of the program in order, stopping and
// reporting at the first runtime error.
func (in *Interpreter) Interpret(statements []Stmt) {
	for _, stmt := range statements {
		if err := in.exec(stmt); err != nil {
			in.reporter.Report(err)
			return
		}
	}
}

// resolve records that expr, evaluated in the scope active at its
// reference site, names a binding depth environments out. Called only by
// the Resolver.
func (in *Interpreter) resolve(expr Expr, depth int) {
	in.locals[expr] = depth
}

func (in *Interpreter) exec(stmt Stmt) error {
	_, err := stmt.Accept(in)
	return err
}

func (in *Interpreter) eval(expr Expr) (interface{}, error) {
	return expr.Accept(in)
}

func (in *Interpreter) execBlock(stmts []Stmt, env *Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) VisitBlockStmt(stmt *BlockStmt) (interface{}, error) {
	return nil, in.execBlock(stmt.Stmts, NewEnvironment(in.environment))
}

func (in *Interpreter) VisitClassStmt(stmt *ClassStmt) (interface{}, error) {
	var superclass *Class
	if stmt.Superclass != nil {
		value, err := in.eval(stmt.Superclass)
		if err != nil {
			return nil, err
		}
		var ok bool
		superclass, ok = value.(*Class)
		if !ok {
			return nil, NewRuntimeError(stmt.Superclass.Name, "Superclass must be a class.")
		}
	}

	in.environment.Define(stmt.Name.Lexeme, nil)

	env := in.environment
	if stmt.Superclass != nil {
		env = NewEnvironment(in.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function)
	for _, method := range stmt.Methods {
		isInitializer := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = newFunction(method, env, isInitializer)
	}

	class := newClass(stmt.Name.Lexeme, superclass, methods)
	return nil, in.environment.Assign(stmt.Name, class)
}

func (in *Interpreter) VisitExpressionStmt(stmt *ExpressionStmt) (interface{}, error) {
	_, err := in.eval(stmt.Expr)
	return nil, err
}

func (in *Interpreter) VisitFunctionStmt(stmt *FunctionStmt) (interface{}, error) {
	fn := newFunction(stmt, in.environment, false)
	in.environment.Define(stmt.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitIfStmt(stmt *IfStmt) (interface{}, error) {
	cond, err := in.eval(stmt.Cond)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return nil, in.exec(stmt.ThenBranch)
	}
	if stmt.ElseBranch != nil {
		return nil, in.exec(stmt.ElseBranch)
	}
	return nil, nil
}

func (in *Interpreter) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	value, err := in.eval(stmt.Expr)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.output, stringify(value))
	return nil, nil
}

func (in *Interpreter) VisitReturnStmt(stmt *ReturnStmt) (interface{}, error) {
	var value interface{}
	if stmt.Val != nil {
		var err error
		value, err = in.eval(stmt.Val)
		if err != nil {
			return nil, err
		}
	}
	return nil, &returnSignal{value}
}

func (in *Interpreter) VisitVarStmt(stmt *VarStmt) (interface{}, error) {
	value, err := in.eval(stmt.Init)
	if err != nil {
		return nil, err
	}
	in.environment.Define(stmt.Name.Lexeme, value)
	return nil, nil
}

func (in *Interpreter) VisitWhileStmt(stmt *WhileStmt) (interface{}, error) {
	for {
		cond, err := in.eval(stmt.Cond)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		if err := in.exec(stmt.Body); err != nil {
			return nil, err
		}
	}
}

func (in *Interpreter) VisitAssignExpr(expr *AssignExpr) (interface{}, error) {
	value, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}

	if distance, ok := in.locals[expr]; ok {
		in.environment.AssignAt(distance, expr.Name, value)
	} else if err := in.globals.Assign(expr.Name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.eval(expr.Rhs)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Type {
	case BANG_EQUAL:
		return !isEqual(lhs, rhs), nil
	case EQUAL_EQUAL:
		return isEqual(lhs, rhs), nil
	case GREATER:
		l, r, ok := numberOperands(lhs, rhs)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		return l > r, nil
	case GREATER_EQUAL:
		l, r, ok := numberOperands(lhs, rhs)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		return l >= r, nil
	case LESS:
		l, r, ok := numberOperands(lhs, rhs)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		return l < r, nil
	case LESS_EQUAL:
		l, r, ok := numberOperands(lhs, rhs)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		return l <= r, nil
	case MINUS:
		l, r, ok := numberOperands(lhs, rhs)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		return l - r, nil
	case PLUS:
		if l, ok := lhs.(float64); ok {
			if r, ok := rhs.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := lhs.(string); ok {
			if r, ok := rhs.(string); ok {
				return l + r, nil
			}
		}
		return nil, NewRuntimeError(expr.Op, "Operands must be two numbers or two strings.")
	case SLASH:
		l, r, ok := numberOperands(lhs, rhs)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		return l / r, nil
	case STAR:
		l, r, ok := numberOperands(lhs, rhs)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operands must be numbers.")
		}
		return l * r, nil
	}
	panic("klox: unreachable binary operator " + expr.Op.Type.String())
}

func (in *Interpreter) VisitCallExpr(expr *CallExpr) (interface{}, error) {
	callee, err := in.eval(expr.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]interface{}, len(expr.Args))
	for i, argExpr := range expr.Args {
		arg, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, NewRuntimeError(expr.Paren, "Can only call functions and classes.")
	}
	if len(args) != callable.Arity() {
		return nil, NewRuntimeError(expr.Paren, fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) VisitGetExpr(expr *GetExpr) (interface{}, error) {
	object, err := in.eval(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Only instances have properties.")
	}
	return instance.get(expr.Name)
}

func (in *Interpreter) VisitGroupingExpr(expr *GroupingExpr) (interface{}, error) {
	return in.eval(expr.Expr)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Value, nil
}

func (in *Interpreter) VisitLogicalExpr(expr *LogicalExpr) (interface{}, error) {
	lhs, err := in.eval(expr.Lhs)
	if err != nil {
		return nil, err
	}

	if expr.Op.Type == OR {
		if isTruthy(lhs) {
			return lhs, nil
		}
	} else if !isTruthy(lhs) {
		return lhs, nil
	}
	return in.eval(expr.Rhs)
}

func (in *Interpreter) VisitSetExpr(expr *SetExpr) (interface{}, error) {
	object, err := in.eval(expr.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*Instance)
	if !ok {
		return nil, NewRuntimeError(expr.Name, "Only instances have fields.")
	}
	value, err := in.eval(expr.Val)
	if err != nil {
		return nil, err
	}
	instance.set(expr.Name, value)
	return value, nil
}

func (in *Interpreter) VisitSuperExpr(expr *SuperExpr) (interface{}, error) {
	distance := in.locals[expr]
	superclass := in.environment.GetAt(distance, "super").(*Class)
	instance := in.environment.GetAt(distance-1, "this").(*Instance)

	method := superclass.findMethod(expr.Method.Lexeme)
	if method == nil {
		return nil, NewRuntimeError(expr.Method, fmt.Sprintf("Undefined property '%s'.", expr.Method.Lexeme))
	}
	return method.bind(instance), nil
}

func (in *Interpreter) VisitThisExpr(expr *ThisExpr) (interface{}, error) {
	return in.lookUpVariable(expr.Keyword, expr)
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	right, err := in.eval(expr.Expr)
	if err != nil {
		return nil, err
	}

	switch expr.Op.Type {
	case BANG:
		return !isTruthy(right), nil
	case MINUS:
		num, ok := right.(float64)
		if !ok {
			return nil, NewRuntimeError(expr.Op, "Operand must be a number.")
		}
		return -num, nil
	}
	panic("klox: unreachable unary operator " + expr.Op.Type.String())
}

func (in *Interpreter) VisitVariableExpr(expr *VariableExpr) (interface{}, error) {
	return in.lookUpVariable(expr.Name, expr)
}

// lookUpVariable reads name at the resolver-computed distance from the
// current environment, or from globals when the expression was never
// recorded (an unresolved, i.e. global, reference).
func (in *Interpreter) lookUpVariable(name *Token, expr Expr) (interface{}, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func numberOperands(lhs, rhs interface{}) (float64, float64, bool) {
	l, ok := lhs.(float64)
	if !ok {
		return 0, 0, false
	}
	r, ok := rhs.(float64)
	if !ok {
		return 0, 0, false
	}
	return l, r, true
}

// isEqual implements Lox's "==": nil equals only nil; scalars compare by
// value; callables and instances compare by identity (pointer equality,
// carried here by Go's own == over interface values holding pointers).
func isEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}
