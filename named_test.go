package sqltpl

import "testing"

type dict = map[string]interface{}

func TestNamedQ(t *testing.T) {
	t.Run("converts_named_to_positional", func(t *T) {
		testStmt(t,
			`select * from users where role = ? and org = ?`,
			list{`admin`, 7},
			NamedQ(
				`select * from users where role = :role and org = :org`,
				dict{`role`: `admin`, `org`: 7},
			),
		)
	})

	t.Run("reused_name_reappends_arg", func(t *T) {
		testStmt(t,
			`where low < ? and high > ?`,
			list{10, 10},
			NamedQ(`where low < :limit and high > :limit`, dict{`limit`: 10}),
		)
	})

	t.Run("arg_order_follows_appearance_not_map_order", func(t *T) {
		testStmt(t,
			`select ?, ?, ?`,
			list{1, 2, 3},
			NamedQ(`select :one, :two, :three`, dict{`three`: 3, `two`: 2, `one`: 1}),
		)
	})

	t.Run("fragment_args_are_spliced", func(t *T) {
		testStmt(t,
			`select * from users where name like ? LIMIT ?`,
			list{`%mira%`, 10},
			NamedQ(
				`select * from users :filter :page`,
				dict{
					`filter`: Raw(`where name like ?`, `%mira%`),
					`page`:   Limit(10),
				},
			),
		)
	})

	t.Run("statement_args_are_spliced", func(t *T) {
		inner := Interpolate([]string{`id in `, ``}, []int{1, 2})

		testStmt(t,
			`select * from users where id in (?, ?)`,
			list{1, 2},
			NamedQ(`select * from users where :cond`, dict{`cond`: inner}),
		)
	})

	t.Run("missing_argument", func(t *T) {
		panics(t, `MissingArgument`, func() {
			NamedQ(`where id = :id`, nil)
		})
	})

	t.Run("ordinal_param_rejected", func(t *T) {
		panics(t, `UnexpectedParameter`, func() {
			NamedQ(`where id = $1`, dict{`id`: 10})
		})
	})

	t.Run("unused_argument", func(t *T) {
		panics(t, `UnusedArgument`, func() {
			NamedQ(`where id = :id`, dict{`id`: 10, `stray`: 20})
		})
	})

	t.Run("unused_allowed_when_check_disabled", func(t *T) {
		defer func(prev bool) { CheckUnused = prev }(CheckUnused)
		CheckUnused = false

		testStmt(t,
			`where id = ?`,
			list{10},
			NamedQ(`where id = :id`, dict{`id`: 10, `stray`: 20}),
		)
	})
}

func TestPreparse(t *testing.T) {
	t.Run("caches_tokenized_source", func(t *T) {
		const src = `select * from users where id = :id`

		first := Preparse(src)
		second := Preparse(src)
		eq(t, first, second)
	})

	t.Run("cached_statements_stay_correct", func(t *T) {
		const src = `where org = :org`

		testStmt(t, `where org = ?`, list{1}, NamedQ(src, dict{`org`: 1}))
		testStmt(t, `where org = ?`, list{2}, NamedQ(src, dict{`org`: 2}))
	})
}
