package sqltpl

import (
	"fmt"
	"strings"
)

const (
	JoinInner JoinType = 0
	JoinLeft  JoinType = 1
	JoinRight JoinType = 2
	JoinFull  JoinType = 3
)

// Enum for SQL join types. The zero value is `JoinInner`.
type JoinType byte

// Implement `fmt.Stringer` for use in generated SQL.
func (self JoinType) String() string {
	switch self {
	case JoinLeft:
		return `LEFT`
	case JoinRight:
		return `RIGHT`
	case JoinFull:
		return `FULL`
	default:
		return `INNER`
	}
}

// Implement `fmt.GoStringer` for debug purposes. Returns valid Go code
// representing this value.
func (self JoinType) GoString() string {
	switch self {
	case JoinLeft:
		return `sqltpl.JoinLeft`
	case JoinRight:
		return `sqltpl.JoinRight`
	case JoinFull:
		return `sqltpl.JoinFull`
	default:
		return `sqltpl.JoinInner`
	}
}

/*
Builds a `case` expression from condition-result pairs, in order:

	CaseWhen(`status`, Assoc{Named(`active`, 1), Named(`inactive`, 0)})

produces the fragment text:

	CASE WHEN status = ? THEN ? WHEN status = ? THEN ? END

with arguments interleaved condition first: `active`, 1, `inactive`, 0.
Conditions are bound values, not spliced text; only the field name is trusted
verbatim.
*/
func CaseWhen(field string, cases Assoc) Fragment {
	var stmt Statement
	appendStr(&stmt.Text, `CASE`)

	for _, entry := range cases {
		appendStr(&stmt.Text, ` WHEN `)
		appendStr(&stmt.Text, field)
		appendStr(&stmt.Text, ` = `)
		stmt.appendParam(entry.Name)
		appendStr(&stmt.Text, ` THEN `)
		stmt.appendParam(entry.Value)
	}

	appendStr(&stmt.Text, ` END`)
	return Fragment{Text: stmt.String(), Args: stmt.Args}
}

/*
Builds one or more join clauses from table-condition pairs, in order:

	Join(Assoc{Named(`posts p`, `p.user_id = u.id`)}, JoinLeft)

produces:

	LEFT JOIN posts p ON p.user_id = u.id

The join type defaults to `JoinInner`. Conditions must be strings and are
spliced verbatim with no bound arguments; keeping unsafe interpolation out of
them is the caller's responsibility.
*/
func Join(joins Assoc, typ ...JoinType) Fragment {
	var jtype JoinType
	if len(typ) > 0 {
		jtype = typ[0]
	}

	var buf []byte
	for i, entry := range joins {
		cond, ok := entry.Value.(string)
		if !ok {
			panic(Err{
				Code:  ErrCodeInvalidInput,
				While: `building join clause`,
				Cause: fmt.Errorf(`join condition for table %q must be a string, got %T`, entry.Name, entry.Value),
			})
		}

		if i > 0 {
			appendStr(&buf, ` `)
		}
		appendStr(&buf, jtype.String())
		appendStr(&buf, ` JOIN `)
		appendStr(&buf, entry.Name)
		appendStr(&buf, ` ON `)
		appendStr(&buf, cond)
	}
	return Fragment{Text: bytesToMutableString(buf)}
}

/*
Builds an `order by` clause. A plain string is wrapped verbatim:

	OrderBy(`created_at desc`) → ORDER BY created_at desc

An `Assoc` of field-direction pairs is rendered in order, upper-casing the
direction regardless of input case:

	OrderBy(Assoc{Named(`name`, `asc`), Named(`age`, `Desc`)})
	→ ORDER BY name ASC, age DESC

Panics with `ErrInvalidInput` for any other input shape, and for non-string
directions.
*/
func OrderBy(order interface{}) Fragment {
	switch order := order.(type) {
	case string:
		return Fragment{Text: `ORDER BY ` + order}

	case Assoc:
		var buf []byte
		appendStr(&buf, `ORDER BY `)
		for i, entry := range order {
			dir, ok := entry.Value.(string)
			if !ok {
				panic(Err{
					Code:  ErrCodeInvalidInput,
					While: `building order by clause`,
					Cause: fmt.Errorf(`direction for field %q must be a string, got %T`, entry.Name, entry.Value),
				})
			}

			if i > 0 {
				appendStr(&buf, `, `)
			}
			appendStr(&buf, entry.Name)
			appendStr(&buf, ` `)
			appendStr(&buf, strings.ToUpper(dir))
		}
		return Fragment{Text: bytesToMutableString(buf)}

	default:
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: `building order by clause`,
			Cause: fmt.Errorf(`expected string or Assoc, got %T`, order),
		})
	}
}

/*
Builds a `group by` clause from a single field or an ordered list of fields:

	GroupBy(`country`)                    → GROUP BY country
	GroupBy([]string{`country`, `city`})  → GROUP BY country, city

Panics with `ErrInvalidInput` for any other input shape.
*/
func GroupBy(fields interface{}) Fragment {
	switch fields := fields.(type) {
	case string:
		return Fragment{Text: `GROUP BY ` + fields}

	case []string:
		return Fragment{Text: `GROUP BY ` + strings.Join(fields, `, `)}

	default:
		panic(Err{
			Code:  ErrCodeInvalidInput,
			While: `building group by clause`,
			Cause: fmt.Errorf(`expected string or []string, got %T`, fields),
		})
	}
}

/*
Builds a `limit` clause, with an optional offset:

	Limit(10)     → LIMIT ?          with arguments [10]
	Limit(10, 20) → LIMIT ? OFFSET ? with arguments [10, 20]

The fragment is self-bound: it carries the count and offset in its own
arguments, so splicing it contributes both the placeholders and the values. An
explicit zero offset still produces the `OFFSET ?` form.
*/
func Limit(count int, offset ...int) Fragment {
	if len(offset) > 0 {
		return Fragment{Text: `LIMIT ? OFFSET ?`, Args: []interface{}{count, offset[0]}}
	}
	return Fragment{Text: `LIMIT ?`, Args: []interface{}{count}}
}
