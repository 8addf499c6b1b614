package sqltpl

import (
	"fmt"
	"strings"
)

const (
	TxOpen       TxState = 0
	TxCommitted  TxState = 1
	TxRolledBack TxState = 2
)

// Enum for the accumulator lifecycle: open, committed, rolled back. The two
// non-open states are terminal.
type TxState byte

// Implement `fmt.Stringer` for debug purposes.
func (self TxState) String() string {
	switch self {
	case TxCommitted:
		return `committed`
	case TxRolledBack:
		return `rolled back`
	default:
		return `open`
	}
}

/*
Statement-batching accumulator. Collects interpolated statements and joins them
into one combined statement with a shared argument list. "Transaction" here
means "batch of statements accumulated for atomic submission by the caller";
this type never talks to a database, and the caller is responsible for
executing the committed statement within a real transactional context.

An explicit state machine: operations are legal only while open, and any
operation on a committed or rolled-back accumulator panics with
`ErrInvalidState`. A single accumulator is not meant for concurrent mutation
without external synchronization.

	tx := BeginTransaction()
	tx.Add([]string{`insert into users (name) values `, ``}, []string{`Mira`})
	tx.Add([]string{`update stats set users = users + 1`})
	stmt := tx.Commit()
*/
type Tx struct {
	state TxState
	texts []string
	args  []interface{}
}

// Returns an empty accumulator in the open state.
func BeginTransaction() *Tx { return &Tx{} }

// Returns the current lifecycle state.
func (self *Tx) State() TxState { return self.state }

/*
Interpolates the template (see `Interpolate`) and accumulates the resulting
statement. Legal only while open.
*/
func (self *Tx) Add(segments []string, args ...interface{}) {
	self.mustBeOpen(`adding statement to transaction`)

	stmt := Interpolate(segments, args...)
	self.texts = append(self.texts, stmt.String())
	self.args = append(self.args, stmt.Args...)
}

/*
Transitions to the committed state and returns the combined statement: the
accumulated query texts joined with "; ", and the flattened arguments in the
order the statements were added. Legal only while open.
*/
func (self *Tx) Commit() Statement {
	self.mustBeOpen(`committing transaction`)

	self.state = TxCommitted
	return Statement{
		Text: []byte(strings.Join(self.texts, `; `)),
		Args: self.args,
	}
}

/*
Transitions to the rolled-back state, discarding everything accumulated. Legal
only while open.
*/
func (self *Tx) Rollback() {
	self.mustBeOpen(`rolling back transaction`)

	self.state = TxRolledBack
	self.texts = nil
	self.args = nil
}

func (self *Tx) mustBeOpen(while string) {
	if self.state != TxOpen {
		panic(Err{
			Code:  ErrCodeInvalidState,
			While: while,
			Cause: fmt.Errorf(`transaction is already %v`, self.state),
		})
	}
}
