package sqltpl

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"testing"
)

type (
	B  = testing.B
	T  = testing.T
	TB = testing.TB
)

type list = []interface{}

func eq(t TB, exp, act interface{}) {
	t.Helper()
	if !reflect.DeepEqual(exp, act) {
		t.Fatalf("expected:\n%#v\nactual:\n%#v", exp, act)
	}
}

// Compares a statement against expected text and args, normalizing the
// nil/empty distinction in the arg list, which we don't care about.
func testStmt(t TB, text string, args list, stmt Statement) {
	t.Helper()
	eq(t, text, stmt.String())
	eq(t, args, normArgs(stmt.Args))
}

func testFrag(t TB, text string, args list, frag Fragment) {
	t.Helper()
	eq(t, text, frag.Text)
	eq(t, args, normArgs(frag.Args))
}

func normArgs(args list) list {
	if args == nil {
		return list{}
	}
	return args
}

func errIs(t TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf(`expected error %v to match %v`, err, target)
	}
}

func panics(t TB, msg string, fun func()) {
	t.Helper()
	val := catchAny(fun)

	if val == nil {
		t.Fatalf(`expected %v to panic, found no panic`, funcName(fun))
	}

	str := fmt.Sprint(val)
	if !strings.Contains(str, msg) {
		t.Fatalf(
			`expected %v to panic with a message containing %q, found %q`,
			funcName(fun), msg, str,
		)
	}
}

func funcName(val interface{}) string {
	return runtime.FuncForPC(reflect.ValueOf(val).Pointer()).Name()
}

func catchAny(fun func()) (val interface{}) {
	defer recAny(&val)
	fun()
	return
}

func recAny(ptr *interface{}) { *ptr = recover() }

// Counts placeholder markers in generated text. Valid because this package
// never emits a bare `?` except as a placeholder.
func countPlaceholders(stmt Statement) int {
	return strings.Count(stmt.String(), `?`)
}
