package apperrors

import "fmt"

// ReadError wraps a store-level failure on the read path (query, count,
// aggregate, distinct values). It is propagated to the API layer as-is,
// never retried.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("store read failed: %v", e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError wraps a store-level failure on the write path (constraint
// violation, connectivity loss). A failed InsertMany retains no rows from
// that call.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("store write failed: %v", e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ImportAborted reports a bulk import that stopped partway, whether a
// batch exhausted its retry budget or the file itself became unreadable.
// Committed counts the rows from batches flushed before the failure;
// those stay committed, there is no cross-batch rollback.
type ImportAborted struct {
	Committed int
	Err       error
}

func (e *ImportAborted) Error() string {
	return fmt.Sprintf("import aborted after %d committed rows: %v", e.Committed, e.Err)
}

func (e *ImportAborted) Unwrap() error { return e.Err }
