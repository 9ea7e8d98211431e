package services

import "fmt"

// Read-path failures and submission failures travel as distinct error
// types so handlers can pick the right surface: a generic 500 payload
// for reads, a flash notice plus redirect for submissions. "Not found"
// is never an error; lookups return a nil recipe instead.

// BackendError wraps any storage failure on a read path.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Submission stages, in workflow order.
const (
	StageValidate = "validate"
	StageUpload   = "upload"
	StageInsert   = "insert"
)

// SubmissionError wraps a failure in the submit-recipe workflow and
// records which stage broke.
type SubmissionError struct {
	Stage string
	Err   error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit recipe (%s): %v", e.Stage, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
