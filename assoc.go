package sqltpl

// Convenience function for creating a named field without composite literal
// noise.
func Named(name string, value interface{}) Field {
	return Field{Name: name, Value: value}
}

// One `name = value` pair. See `Assoc`.
type Field struct {
	Name  string
	Value interface{}
}

/*
Ordered sequence of `name = value` pairs. The package's "mapping" variant for
interpolation: rendered as an SQL assignment list such as an `update set`
clause. Go maps are deliberately not used for this purpose because their
iteration order is unspecified; `Assoc` makes the insertion-order guarantee
structural.

For example, this:

	stmt := Interpolate(
		[]string{`update users set `, ``},
		Assoc{Named(`name`, `Mira`), Named(`age`, 30)},
	)

Is equivalent to this:

	stmt := Statement{
		Text: []byte(`update users set name = ?, age = ?`),
		Args: []interface{}{`Mira`, 30},
	}
*/
type Assoc []Field

/*
Implement `ISql`. Renders `name = ?` for each field, comma-joined, without
surrounding parens, appending each value as an argument in order. Field names
are spliced verbatim; they are part of the trusted SQL text, not bound values.

Known issue, inherited from the assignment-list shape: when empty, this
contributes nothing, which may leave invalid SQL around it. Don't interpolate
an empty `Assoc`.
*/
func (self Assoc) StatementAppend(out *Statement) {
	for i, field := range self {
		if i > 0 {
			appendStr(&out.Text, `, `)
		}
		appendStr(&out.Text, field.Name)
		appendStr(&out.Text, ` = `)
		out.appendParam(field.Value)
	}
}

// Returns true if there are no fields.
func (self Assoc) IsEmpty() bool { return len(self) == 0 }

/*
Scans a struct, converting fields tagged with `db` into an `Assoc` in field
declaration order. The input must be a struct or a struct pointer. A nil
pointer is fine and produces a nil result. Panics on other inputs. Treats
embedded structs as part of enclosing structs.

Declaration order makes struct interpolation deterministic, satisfying the
same ordering guarantee as a hand-written `Assoc`.
*/
func StructAssoc(input interface{}) Assoc {
	var assoc Assoc
	traverseStructDbFields(input, func(name string, value interface{}) {
		assoc = append(assoc, Named(name, value))
	})
	return assoc
}

/*
Scans a struct, collecting the `db` column names in field declaration order.
The input must be a struct or a struct pointer. Useful together with
`GroupBy`:

	GroupBy(StructCols(SomeStructType{}))
*/
func StructCols(input interface{}) []string {
	var cols []string
	traverseStructDbFields(input, func(name string, _ interface{}) {
		cols = append(cols, name)
	})
	return cols
}
