package sqltpl

import (
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"
)

// The only placeholder this package ever generates. Positional, never
// numbered. Adapting to drivers that want `$1` or `:name` is an external
// concern.
const placeholderChar = '?'

/*
Legacy marker for skipping a value. A plain string containing this substring is
treated as the empty branch of a conditional sub-template and contributes
nothing to the output: no text, no placeholder, no argument. Carried over for
compatibility with the conditional-inclusion idiom where a disabled branch is
represented by leftover template source text. Matches the marker substring, not
any structure; prefer `If`, which expresses the same intent explicitly.
*/
const SkipMarker = "sql`"

/*
Interface that allows compatibility between different statement variants.
Splicing, supported by `Interpolate` and `NamedQ`, detects instances of this
interface rather than only the concrete types `Statement` and `Fragment`,
allowing external code to implement its own variants.
*/
type ISql interface{ StatementAppend(*Statement) }

/*
A parametrized query: plain SQL text with positional `?` placeholders, and the
matching ordered list of arguments. The unit handed to a database driver.
Produced by `Interpolate`, `NamedQ`, and `Tx.Commit`.

The number of `?` placeholders contributed by non-raw interpolations always
equals the number of arguments minus those contributed by spliced fragments.
*/
type Statement struct {
	Text []byte
	Args []interface{}
}

// Implement `fmt.Stringer`. Returns the query text, performing a free cast.
func (self Statement) String() string {
	return bytesToMutableString(self.Text)
}

// Shortcut for `self.String(), self.Args`. Go database drivers tend to require
// `string, []interface{}` as inputs for queries and statements.
func (self Statement) Reify() (string, []interface{}) {
	return self.String(), self.Args
}

/*
Implement `ISql`. A statement used as an interpolated value is spliced into the
outer statement verbatim, combining the arguments.
*/
func (self Statement) StatementAppend(out *Statement) {
	out.Text = append(out.Text, self.Text...)
	out.Args = append(out.Args, self.Args...)
}

/*
The tagged-template entry point. Takes N+1 literal text segments and N
interpolated values, and folds them into a `Statement`, classifying each value
structurally:

	• nil, or a plain string containing `SkipMarker` → skipped entirely.
	• `Fragment`, `Statement`, or any `ISql` → text spliced verbatim, its own
	  arguments appended.
	• `Assoc`, or a struct with `db` tags → `key = ?, key = ?` assignment
	  list, values appended in order.
	• slice or array, except `[]byte` → `(?, ?, ...)`, elements appended in
	  order; an empty slice yields `()`.
	• everything else → a single `?` placeholder and one appended argument.

Booleans are ordinary scalars, never coerced. Zero-length segments are legal.
Output is a pure function of the inputs.

Panics with `ErrArityMismatch` unless `len(args) == len(segments)-1` (the
all-empty call is also legal).

For example, this:

	stmt := Interpolate(
		[]string{`select * from users where id in `, ``},
		[]int{1, 2, 3},
	)

Is equivalent to this:

	stmt := Statement{
		Text: []byte(`select * from users where id in (?, ?, ?)`),
		Args: []interface{}{1, 2, 3},
	}
*/
func Interpolate(segments []string, args ...interface{}) Statement {
	var stmt Statement
	stmt.Interpolate(segments, args...)
	return stmt
}

// Appends an interpolated template to an existing statement. See the function
// `Interpolate`.
func (self *Statement) Interpolate(segments []string, args ...interface{}) {
	if len(segments) == 0 && len(args) == 0 {
		return
	}

	if len(args) != len(segments)-1 {
		panic(Err{
			Code:  ErrCodeArityMismatch,
			While: `interpolating template`,
			Cause: fmt.Errorf(`expected %v values for %v segments, got %v`, len(segments)-1, len(segments), len(args)),
		})
	}

	for i, segment := range segments {
		appendStr(&self.Text, segment)
		if i < len(args) {
			self.appendValue(args[i])
		}
	}
}

/*
Classifies one interpolated value and renders it. The order of cases is
significant: the skip marker wins over scalar strings, and concrete fragment
types win over the generic struct and slice checks.
*/
func (self *Statement) appendValue(val interface{}) {
	switch val := val.(type) {
	case nil:

	case string:
		if strings.Contains(val, SkipMarker) {
			return
		}
		self.appendParam(val)

	case Fragment:
		val.StatementAppend(self)

	case Statement:
		val.StatementAppend(self)

	case Assoc:
		val.StatementAppend(self)

	case []byte:
		// Binds as a single blob value, not as a list.
		self.appendParam(val)

	case driver.Valuer:
		self.appendParam(val)

	case ISql:
		val.StatementAppend(self)

	default:
		self.appendReflected(val)
	}
}

// Fallback for values without a concrete case: slices become lists, structs
// become assignment lists, nil pointers are skipped, the rest are scalars.
func (self *Statement) appendReflected(val interface{}) {
	rval := reflect.ValueOf(val)

	switch rval.Kind() {
	case reflect.Slice, reflect.Array:
		self.appendList(rval)

	case reflect.Struct:
		if isScannableRtype(rval.Type()) {
			self.appendParam(val)
		} else {
			StructAssoc(val).StatementAppend(self)
		}

	case reflect.Ptr:
		if rval.IsNil() {
			return
		}
		self.appendValue(rval.Elem().Interface())

	default:
		self.appendParam(val)
	}
}

func (self *Statement) appendList(rval reflect.Value) {
	appendStr(&self.Text, `(`)
	for i := 0; i < rval.Len(); i++ {
		if i > 0 {
			appendStr(&self.Text, `, `)
		}
		self.appendParam(rval.Index(i).Interface())
	}
	appendStr(&self.Text, `)`)
}

// Appends one `?` placeholder and the corresponding argument.
func (self *Statement) appendParam(val interface{}) {
	self.Text = append(self.Text, placeholderChar)
	self.Args = append(self.Args, val)
}

/*
Conditional inclusion helper. Returns the value when the condition holds, and
nil otherwise; interpolating nil contributes nothing to the output. The
structural replacement for the legacy `SkipMarker` convention:

	Interpolate(
		[]string{`select * from users `, ``},
		If(filtered, Raw(`where deleted_at is null`)),
	)
*/
func If(ok bool, val interface{}) interface{} {
	if ok {
		return val
	}
	return nil
}
