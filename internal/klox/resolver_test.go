package klox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resolveSource(t *testing.T, src string) *mockReporter {
	t.Helper()
	report := newMockReporter()
	scan := NewScanner([]rune(src), report)
	toks := scan.Scan()
	parser := NewParser(toks, report)
	stmts := parser.Parse()
	if report.HadError() {
		return report
	}

	var out strings.Builder
	interp := NewInterpreter(&out, report)
	resolver := NewResolver(interp, report)
	resolver.Resolve(stmts)
	return report
}

func TestResolveValidProgramsHaveNoErrors(t *testing.T) {
	testCases := []string{
		`var a = 1; { var b = a + 1; print b; }`,
		`fun f(a, b) { return a + b; } print f(1, 2);`,
		`class Cake { init(f) { this.flavor = f; } describe() { return this.flavor; } }`,
		`class A { m() { return 1; } } class B < A { m() { return super.m(); } }`,
		`for (var i = 0; i < 3; i = i + 1) print i;`,
	}
	for _, src := range testCases {
		report := resolveSource(t, src)
		assert.Falsef(t, report.HadError(), "unexpected errors for %q: %v", src, report.errors)
	}
}

func TestResolveSelfReferencingInitializerIsError(t *testing.T) {
	report := resolveSource(t, `var a = "outer"; { var a = a; }`)
	assert.True(t, report.HadError())
	if assert.Len(t, report.errors, 1) {
		assert.Equal(t, "[line 1] Error at 'a': Can't read local variable in its own initializer.", report.errors[0].Error())
	}
}

func TestResolveRedeclarationInSameScopeIsError(t *testing.T) {
	report := resolveSource(t, `{ var a = 1; var a = 2; }`)
	assert.True(t, report.HadError())
	if assert.Len(t, report.errors, 1) {
		assert.Equal(t, "[line 1] Error at 'a': Already a variable with this name in this scope.", report.errors[0].Error())
	}
}

func TestResolveRedeclarationAtGlobalScopeIsAllowed(t *testing.T) {
	report := resolveSource(t, `var a = 1; var a = 2; print a;`)
	assert.False(t, report.HadError())
}

func TestResolveReturnOutsideFunctionIsError(t *testing.T) {
	report := resolveSource(t, `return 1;`)
	assert.True(t, report.HadError())
	if assert.Len(t, report.errors, 1) {
		assert.Equal(t, "[line 1] Error at 'return': Can't return from top-level code.", report.errors[0].Error())
	}
}

func TestResolveReturnValueFromInitializerIsError(t *testing.T) {
	report := resolveSource(t, `class Cake { init() { return 1; } }`)
	assert.True(t, report.HadError())
	if assert.Len(t, report.errors, 1) {
		assert.Equal(t, "[line 1] Error at 'return': Can't return a value from an initializer.", report.errors[0].Error())
	}
}

func TestResolveBareReturnFromInitializerIsAllowed(t *testing.T) {
	report := resolveSource(t, `class Cake { init() { return; } }`)
	assert.False(t, report.HadError())
}

func TestResolveThisOutsideClassIsError(t *testing.T) {
	report := resolveSource(t, `print this;`)
	assert.True(t, report.HadError())
	if assert.Len(t, report.errors, 1) {
		assert.Equal(t, "[line 1] Error at 'this': Can't use 'this' outside of a class.", report.errors[0].Error())
	}
}

func TestResolveSuperOutsideClassIsError(t *testing.T) {
	report := resolveSource(t, `print super.m();`)
	assert.True(t, report.HadError())
	if assert.Len(t, report.errors, 1) {
		assert.Equal(t, "[line 1] Error at 'super': Can't use 'super' outside of a class.", report.errors[0].Error())
	}
}

func TestResolveSuperInClassWithNoSuperclassIsError(t *testing.T) {
	report := resolveSource(t, `class A { m() { return super.m(); } }`)
	assert.True(t, report.HadError())
	if assert.Len(t, report.errors, 1) {
		assert.Equal(t, "[line 1] Error at 'super': Can't use 'super' in a class with no superclass.", report.errors[0].Error())
	}
}

func TestResolveClassCannotInheritFromItself(t *testing.T) {
	report := resolveSource(t, `class Cake < Cake {}`)
	assert.True(t, report.HadError())
	if assert.Len(t, report.errors, 1) {
		assert.Equal(t, "[line 1] Error at 'Cake': A class can't inherit from itself.", report.errors[0].Error())
	}
}

func TestResolveLocalDistanceForNestedBlocks(t *testing.T) {
	report := newMockReporter()
	scan := NewScanner([]rune(`
var a = "global";
{
  var a = "outer";
  {
    var a = "inner";
    print a;
  }
}
`), report)
	toks := scan.Scan()
	parser := NewParser(toks, report)
	stmts := parser.Parse()
	assert.False(t, report.HadError())

	var out strings.Builder
	interp := NewInterpreter(&out, report)
	resolver := NewResolver(interp, report)
	resolver.Resolve(stmts)
	assert.False(t, report.HadError())

	// The "print a" reference sits two blocks deep, in the same scope that
	// declares "inner": zero hops to reach it.
	found := false
	for expr, distance := range interp.locals {
		if v, ok := expr.(*VariableExpr); ok && v.Name.Lexeme == "a" {
			found = true
			assert.Equal(t, 0, distance)
		}
	}
	assert.True(t, found)
}
