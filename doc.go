/*
SQL templating: turns a sequence of literal SQL text segments interleaved with
dynamic values into a parametrized query: plain SQL text with positional `?`
placeholders and a matched ordered list of arguments. Oriented towards writing
PLAIN SQL with safer, less error-prone ad-hoc construction, without a query
builder DSL or ORM.

Key Features

• You write plain SQL. There's no DSL in Go.

• Values are classified structurally: scalars become `?` placeholders with
arguments, slices become `(?, ?, ...)` lists, ordered `Assoc` pairs become
`key = ?` assignment lists, `Fragment` values are spliced verbatim.

• Composable: `Statement` and `Fragment` values used as arguments are
automatically spliced, combining the arguments.

• Supports named parameters such as :ident via `NamedQ`, converting them into
positional `?` placeholders.

• Supports converting structs into assignment lists and column lists via
`db` tags.

• Thin clause helpers: `CaseWhen`, `Join`, `OrderBy`, `GroupBy`, `Limit`, and
a statement-batching accumulator `Tx`.

The generated placeholder is always the positional `?` character, never
numbered. Translating to another placeholder dialect, executing queries, and
managing connections are the caller's concern; the `(text, args)` pair
returned by `Statement.Reify` is the sole boundary towards the caller's SQL
driver.

Examples

See `Interpolate`, `NamedQ`, `Raw`, `BeginTransaction`.
*/
package sqltpl
