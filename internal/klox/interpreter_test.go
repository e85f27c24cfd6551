package klox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// evalPrint interprets a single "print <expr>;" statement built from expr
// and returns the stringified output, with trailing newline trimmed.
func evalPrint(t *testing.T, expr Expr) (string, *mockReporter) {
	t.Helper()
	report := newMockReporter()
	var out strings.Builder
	interp := NewInterpreter(&out, report)
	interp.Interpret([]Stmt{NewPrintStmt(expr)})
	return strings.TrimSpace(out.String()), report
}

func TestInterpretLiteralExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval string
	}{
		{NewLiteralExpr(1.0), "1"},
		{NewLiteralExpr(3.14), "3.14"},
		{NewLiteralExpr(3.14000), "3.14"},
		{NewLiteralExpr(4294967296.0), "4294967296"},
		{NewLiteralExpr("hello"), "hello"},
		{NewLiteralExpr("hello\nworld"), "hello\nworld"},
		{NewLiteralExpr(true), "true"},
		{NewLiteralExpr(false), "false"},
		{NewLiteralExpr(nil), "nil"},
	}

	for _, tc := range testCases {
		got, report := evalPrint(t, tc.expr)
		assert.False(t, report.HadError())
		assert.Equal(t, tc.eval, got)
	}
}

func TestInterpretUnaryExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval string
	}{
		{
			NewUnaryExpr(
				NewToken(MINUS, "-", nil, 1),
				NewLiteralExpr(3.14)),
			"-3.14",
		},
		{
			NewUnaryExpr(
				NewToken(BANG, "!", nil, 1),
				NewLiteralExpr(true)),
			"false",
		},
		{
			NewUnaryExpr(
				NewToken(MINUS, "-", nil, 1),
				NewUnaryExpr(
					NewToken(MINUS, "-", nil, 1),
					NewLiteralExpr(3.14))),
			"3.14",
		},
		{
			NewUnaryExpr(
				NewToken(BANG, "!", nil, 1),
				NewUnaryExpr(
					NewToken(BANG, "!", nil, 1),
					NewLiteralExpr(true))),
			"true",
		},
	}

	for _, tc := range testCases {
		got, report := evalPrint(t, tc.expr)
		assert.False(t, report.HadError())
		assert.Equal(t, tc.eval, got)
	}
}

func TestInterpretBinaryExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval string
	}{
		// FACTOR
		{NewBinaryExpr(NewToken(STAR, "*", nil, 1), NewLiteralExpr(2.0), NewLiteralExpr(3.0)), "6"},
		{NewBinaryExpr(NewToken(SLASH, "/", nil, 1), NewLiteralExpr(6.0), NewLiteralExpr(3.0)), "2"},
		{
			NewBinaryExpr(
				NewToken(SLASH, "/", nil, 1),
				NewBinaryExpr(NewToken(STAR, "*", nil, 1), NewLiteralExpr(2.0), NewLiteralExpr(3.0)),
				NewLiteralExpr(4.0)),
			"1.5",
		},
		// TERM
		{NewBinaryExpr(NewToken(PLUS, "+", nil, 1), NewLiteralExpr(2.0), NewLiteralExpr(3.0)), "5"},
		{NewBinaryExpr(NewToken(MINUS, "-", nil, 1), NewLiteralExpr(6.0), NewLiteralExpr(3.0)), "3"},
		{NewBinaryExpr(NewToken(PLUS, "+", nil, 1), NewLiteralExpr("foo"), NewLiteralExpr("bar")), "foobar"},
		// COMPARISON
		{NewBinaryExpr(NewToken(GREATER, ">", nil, 1), NewLiteralExpr(6.0), NewLiteralExpr(3.0)), "true"},
		{NewBinaryExpr(NewToken(LESS_EQUAL, "<=", nil, 1), NewLiteralExpr(2.0), NewLiteralExpr(3.0)), "true"},
		// EQUALITY
		{NewBinaryExpr(NewToken(EQUAL_EQUAL, "==", nil, 1), NewLiteralExpr(2.0), NewLiteralExpr(3.0)), "false"},
		{NewBinaryExpr(NewToken(BANG_EQUAL, "!=", nil, 1), NewLiteralExpr(6.0), NewLiteralExpr(3.0)), "true"},
		{NewBinaryExpr(NewToken(EQUAL_EQUAL, "==", nil, 1), NewLiteralExpr("6"), NewLiteralExpr(true)), "false"},
		{NewBinaryExpr(NewToken(EQUAL_EQUAL, "==", nil, 1), NewLiteralExpr(nil), NewLiteralExpr(nil)), "true"},
		// COMBINE EXPRs WITH DIFFERENT PRECEDENCE
		{
			NewBinaryExpr(
				NewToken(STAR, "*", nil, 1),
				NewLiteralExpr(2.0),
				NewUnaryExpr(NewToken(MINUS, "-", nil, 1), NewLiteralExpr(3.0))),
			"-6",
		},
	}

	for _, tc := range testCases {
		got, report := evalPrint(t, tc.expr)
		assert.False(t, report.HadError())
		assert.Equal(t, tc.eval, got)
	}
}

func TestInterpretGroupingExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval string
	}{
		{NewGroupingExpr(NewLiteralExpr(3.14)), "3.14"},
		{
			NewGroupingExpr(NewUnaryExpr(NewToken(MINUS, "-", nil, 1), NewLiteralExpr(3.14))),
			"-3.14",
		},
		{
			NewBinaryExpr(
				NewToken(STAR, "*", nil, 1),
				NewLiteralExpr(3.0),
				NewGroupingExpr(NewBinaryExpr(NewToken(PLUS, "+", nil, 1), NewLiteralExpr(2.0), NewLiteralExpr(2.0)))),
			"12",
		},
	}

	for _, tc := range testCases {
		got, report := evalPrint(t, tc.expr)
		assert.False(t, report.HadError())
		assert.Equal(t, tc.eval, got)
	}
}

func TestInterpretRuntimeErrors(t *testing.T) {
	testCases := []struct {
		expr Expr
		want string
	}{
		{
			NewBinaryExpr(NewToken(GREATER, ">", nil, 1), NewLiteralExpr("6"), NewLiteralExpr(3.0)),
			"Operands must be numbers.\n[line 1]",
		},
		{
			NewUnaryExpr(NewToken(MINUS, "-", nil, 1), NewLiteralExpr("6")),
			"Operand must be a number.\n[line 1]",
		},
		{
			NewBinaryExpr(NewToken(PLUS, "+", nil, 1), NewLiteralExpr(true), NewLiteralExpr("6")),
			"Operands must be two numbers or two strings.\n[line 1]",
		},
	}

	for _, tc := range testCases {
		got, report := evalPrint(t, tc.expr)
		assert.Empty(t, got)
		assert.True(t, report.HadRuntimeError())
		if assert.Len(t, report.errors, 1) {
			assert.Equal(t, tc.want, report.errors[0].Error())
		}
	}
}

// run drives a full program through the Driver, mirroring what the CLI
// does, and returns its stdout.
func run(t *testing.T, src string) (string, *Driver) {
	t.Helper()
	var stdout, stderr strings.Builder
	driver := NewDriver(&stdout, &stderr, false)
	driver.TestMode = true
	driver.run(src)
	return stdout.String(), driver
}

func TestInterpretVarAndAssignment(t *testing.T) {
	out, driver := run(t, `
var a = 1;
var b = 2;
a = a + b;
print a;
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "3\n", out)
}

func TestInterpretBlockScoping(t *testing.T) {
	out, driver := run(t, `
var a = "outer";
{
  var a = "inner";
  print a;
}
print a;
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "inner\nouter\n", out)
}

func TestInterpretIfElse(t *testing.T) {
	out, driver := run(t, `
if (1 < 2) print "yes"; else print "no";
if (1 > 2) print "yes"; else print "no";
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "yes\nno\n", out)
}

func TestInterpretWhileLoop(t *testing.T) {
	out, driver := run(t, `
var i = 0;
var sum = 0;
while (i < 5) {
  sum = sum + i;
  i = i + 1;
}
print sum;
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "10\n", out)
}

func TestInterpretForLoop(t *testing.T) {
	out, driver := run(t, `
var sum = 0;
for (var i = 1; i <= 4; i = i + 1) sum = sum + i;
print sum;
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "10\n", out)
}

func TestInterpretFunctionsAndReturn(t *testing.T) {
	out, driver := run(t, `
fun fib(n) {
  if (n <= 1) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(8);
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "21\n", out)
}

func TestInterpretClosuresCaptureDeclarationEnvironment(t *testing.T) {
	out, driver := run(t, `
fun makeCounter() {
  var count = 0;
  fun counter() {
    count = count + 1;
    return count;
  }
  return counter;
}
var c1 = makeCounter();
var c2 = makeCounter();
print c1();
print c1();
print c2();
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "1\n2\n1\n", out)
}

func TestInterpretClasses(t *testing.T) {
	out, driver := run(t, `
class Cake {
  init(flavor) {
    this.flavor = flavor;
  }
  describe() {
    return "a " + this.flavor + " cake";
  }
}
var cake = Cake("chocolate");
print cake.describe();
print cake;
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "a chocolate cake\nCake instance\n", out)
}

func TestInterpretInheritanceAndSuper(t *testing.T) {
	out, driver := run(t, `
class Dessert {
  init(name) {
    this.name = name;
  }
  describe() {
    return "a dessert called " + this.name;
  }
}
class Cake < Dessert {
  describe() {
    return super.describe() + ", which is cake";
  }
}
print Cake("tres leches").describe();
`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "a dessert called tres leches, which is cake\n", out)
}

func TestInterpretNativeClock(t *testing.T) {
	out, driver := run(t, `print clock() > 0;`)
	assert.False(t, driver.HadError())
	assert.Equal(t, "true\n", out)
}

func TestInterpretCallNonCallable(t *testing.T) {
	out, driver := run(t, `var x = 1; x();`)
	assert.Empty(t, out)
	assert.True(t, driver.HadRuntimeError())
}

func TestInterpretUndefinedProperty(t *testing.T) {
	_, driver := run(t, `
class Cake {}
var cake = Cake();
print cake.flavor;
`)
	assert.True(t, driver.HadRuntimeError())
}

func TestInterpretSuperclassMustBeClass(t *testing.T) {
	_, driver := run(t, `
var NotAClass = 1;
class Cake < NotAClass {}
`)
	assert.True(t, driver.HadRuntimeError())
}
