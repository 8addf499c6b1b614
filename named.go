package sqltpl

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitranim/sqlp"
)

/*
If true (default), unused named arguments cause panics in `NamedQ`. If false,
unused arguments are ok. Turning this off can be convenient in development,
when changing queries rapidly.
*/
var CheckUnused = true

/*
Appends code with named parameters. The code must have named parameters in the
form ":identifier". The keys in the arguments map must have the form
"identifier", without a leading ":".

Internally, converts named parameters to positional placeholders of the form
`?`, the same ones generated by `Interpolate`. Because `?` is unnumbered, a
name used more than once re-appends its argument for every occurrence.

Composable: arguments implementing `ISql`, such as `Fragment` and `Statement`,
are spliced rather than bound.

The argument map's iteration order never affects the output; placeholders and
arguments follow the order of appearance in the code. Panics when: the code is
malformed; the code has ordinal parameters such as "$1"; a parameter doesn't
have a corresponding argument; an argument doesn't have a corresponding
parameter (unless `CheckUnused` is off).

For example, this:

	stmt := NamedQ(
		`select * from users where role = :role and org = :org`,
		map[string]interface{}{`role`: `admin`, `org`: 7},
	)

Is equivalent to this:

	stmt := Statement{
		Text: []byte(`select * from users where role = ? and org = ?`),
		Args: []interface{}{`admin`, 7},
	}
*/
func NamedQ(src string, args map[string]interface{}) Statement {
	var stmt Statement
	stmt.AppendNamed(src, args)
	return stmt
}

// Appends code with named parameters to an existing statement. See `NamedQ`.
func (self *Statement) AppendNamed(src string, args map[string]interface{}) {
	used := make(map[string]struct{}, len(args))

	for _, node := range Preparse(src) {
		switch node := node.(type) {
		case sqlp.NodeOrdinalParam:
			panic(Err{
				Code:  ErrCodeUnexpectedParameter,
				While: `appending named statement`,
				Cause: fmt.Errorf(`expected only named params, got ordinal param %q`, node),
			})

		case sqlp.NodeNamedParam:
			arg, found := args[string(node)]
			if !found {
				panic(Err{
					Code:  ErrCodeMissingArgument,
					While: `appending named statement`,
					Cause: fmt.Errorf(`missing named argument %q`, node),
				})
			}

			used[string(node)] = struct{}{}

			impl, _ := arg.(ISql)
			if impl != nil {
				impl.StatementAppend(self)
			} else {
				self.appendParam(arg)
			}

		default:
			node.Append(&self.Text)
		}
	}

	if CheckUnused {
		for key := range args {
			_, ok := used[key]
			if !ok {
				panic(Err{
					Code:  ErrCodeUnusedArgument,
					While: `appending named statement`,
					Cause: fmt.Errorf(`unused named argument %q`, key),
				})
			}
		}
	}
}

// Upper bound on distinct source strings kept tokenized. Past this, the least
// recently used entries are evicted and re-tokenized on demand.
const preparseCacheSize = 512

var prepCache, _ = lru.New[string, sqlp.Nodes](preparseCacheSize)

/*
Returns the tokenized form of the given source string. Panics if tokenization
fails. Caches the result in a bounded LRU keyed by the source string, reusing
it for future calls; named-parameter queries tend to be static format strings,
so repeated calls are nearly free. Used internally by `NamedQ`. User code
shouldn't have to call this, but it's exported just in case.
*/
func Preparse(src string) sqlp.Nodes {
	nodes, ok := prepCache.Get(src)
	if ok {
		return nodes
	}

	nodes = tokenize(src)
	prepCache.Add(src, nodes)
	return nodes
}

func tokenize(src string) sqlp.Nodes {
	var nodes sqlp.Nodes
	tokenizer := sqlp.Tokenizer{Source: src}

	for {
		node := tokenizer.Next()
		if node == nil {
			return nodes
		}
		nodes = append(nodes, node)
	}
}
