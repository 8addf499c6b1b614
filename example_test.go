package sqltpl_test

import (
	"fmt"

	s "github.com/sqltpl/sqltpl"
)

func ExampleInterpolate() {
	stmt := s.Interpolate(
		[]string{`select * from users where id in `, ` and role = `, ``},
		[]int{1, 2, 3},
		`admin`,
	)

	text, args := stmt.Reify()
	fmt.Println(text)
	fmt.Println(args)

	// Output:
	// select * from users where id in (?, ?, ?) and role = ?
	// [1 2 3 admin]
}

func ExampleInterpolate_assignments() {
	stmt := s.Interpolate(
		[]string{`update users set `, ` where id = `, ``},
		s.Assoc{s.Named(`name`, `Mira`), s.Named(`age`, 30)},
		7,
	)

	text, args := stmt.Reify()
	fmt.Println(text)
	fmt.Println(args)

	// Output:
	// update users set name = ?, age = ? where id = ?
	// [Mira 30 7]
}

func ExampleNamedQ() {
	stmt := s.NamedQ(
		`select * from users where role = :role :page`,
		map[string]interface{}{
			`role`: `admin`,
			`page`: s.Limit(10, 20),
		},
	)

	text, args := stmt.Reify()
	fmt.Println(text)
	fmt.Println(args)

	// Output:
	// select * from users where role = ? LIMIT ? OFFSET ?
	// [admin 10 20]
}

func ExampleRaw() {
	pattern := `%` + s.Escape(`100%`) + `%`

	stmt := s.Interpolate(
		[]string{`select * from notes `, ``},
		s.Raw(`where body like '`+pattern+`'`),
	)

	fmt.Println(stmt.String())

	// Output:
	// select * from notes where body like '%100\%%'
}

func ExampleBeginTransaction() {
	tx := s.BeginTransaction()
	tx.Add([]string{`insert into users (name) values (`, `)`}, `John`)
	tx.Add([]string{`update stats set users = users + 1`})

	text, args := tx.Commit().Reify()
	fmt.Println(text)
	fmt.Println(args)

	// Output:
	// insert into users (name) values (?); update stats set users = users + 1
	// [John]
}
