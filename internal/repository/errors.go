package repository

import "fmt"

// PersistenceError marks storage-layer unavailability. Handlers treat the
// stored copy as an audit/cache side effect: on this error they log and still
// return the fetched data to the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
