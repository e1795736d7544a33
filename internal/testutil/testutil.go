// Package testutil carries the table-driven check helpers shared by
// the test suites.
package testutil

import (
	. "gopkg.in/check.v1"
)

type Entry struct {
	Obtained    interface{}
	Checker     Checker
	Expected    interface{}
	Description string
}

type TestSlice []Entry

func (s TestSlice) Test(c *C) {
	for _, t := range s {
		c.Check(t.Obtained, t.Checker, t.Expected, Commentf(t.Description))
	}
}

// ErrorCheck discards a value and keeps its error, so error cases fit
// on one table row.
func ErrorCheck(_ interface{}, err error) error {
	return err
}
