package klox

import (
	"fmt"
	"time"
)

// Callable is implemented by every value that can appear as the callee of
// a CallExpr: user-defined functions and methods, classes (construction),
// and native functions.
type Callable interface {
	Arity() int
	Call(in *Interpreter, args []interface{}) (interface{}, error)
	String() string
}

// returnSignal carries a Return statement's value up the call stack. It is
// propagated through the error return channel rather than through Value,
// since any Value (including nil) is a legitimate thing to return.
type returnSignal struct {
	value interface{}
}

func (r *returnSignal) Error() string {
	return fmt.Sprintf("return %s", stringify(r.value))
}

// Function is a user-defined function or method: its declaration plus the
// environment that was live when it was declared. Invocation never nests
// the call's environment inside the caller's; it nests inside closure, so
// a closure keeps seeing the scope it was created in regardless of who
// calls it.
type Function struct {
	decl          *FunctionStmt
	closure       *Environment
	isInitializer bool
}

func newFunction(decl *FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{decl: decl, closure: closure, isInitializer: isInitializer}
}

func (fn *Function) Arity() int {
	return len(fn.decl.Params)
}

func (fn *Function) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	env := NewEnvironment(fn.closure)
	for i, param := range fn.decl.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.execBlock(fn.decl.Body, env)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			if fn.isInitializer {
				return fn.closure.GetAt(0, "this"), nil
			}
			return ret.value, nil
		}
		return nil, err
	}

	if fn.isInitializer {
		return fn.closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

func (fn *Function) String() string {
	return fmt.Sprintf("<fn %s>", fn.decl.Name.Lexeme)
}

// bind returns a copy of fn whose closure is a fresh environment, nested
// inside fn's own closure, that binds "this" to instance. Binding the same
// method to two instances produces two independent Functions sharing no
// state but the original declaration and outer closure.
func (fn *Function) bind(instance *Instance) *Function {
	env := NewEnvironment(fn.closure)
	env.Define("this", instance)
	return newFunction(fn.decl, env, fn.isInitializer)
}

// Class is a Lox class value: its name, optional superclass, and method
// table. Calling a Class constructs an Instance.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func newClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// findMethod looks up name on the class, walking the superclass chain.
func (c *Class) findMethod(name string) *Function {
	if fn, ok := c.Methods[name]; ok {
		return fn
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil
}

func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	instance := newInstance(c)
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return c.Name
}

// Instance is an instance of a Class: a field table plus a back-reference
// to the class that created it. Fields are created on first assignment;
// they are looked up before methods, so a field can shadow a method of the
// same name.
type Instance struct {
	class  *Class
	fields map[string]interface{}
}

func newInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]interface{})}
}

func (i *Instance) get(name *Token) (interface{}, error) {
	if value, ok := i.fields[name.Lexeme]; ok {
		return value, nil
	}
	if method := i.class.findMethod(name.Lexeme); method != nil {
		return method.bind(i), nil
	}
	return nil, NewRuntimeError(name, fmt.Sprintf("Undefined property '%s'.", name.Lexeme))
}

func (i *Instance) set(name *Token, value interface{}) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.class.Name)
}

// nativeClock is the interpreter's single built-in: a zero-arity function
// returning seconds since an arbitrary epoch, with subsecond resolution.
type nativeClock struct{}

func (nativeClock) Arity() int {
	return 0
}

func (nativeClock) Call(in *Interpreter, args []interface{}) (interface{}, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}

func (nativeClock) String() string {
	return "<native fn>"
}
