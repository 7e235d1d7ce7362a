package qerr

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction errors, raised at graph-build time.
const (
	// ErrCodeDuplicateColumn indicates a derived column name collides with
	// an existing column in the same pipeline scope.
	ErrCodeDuplicateColumn ErrorCode = "DUPLICATE_COLUMN"
	// ErrCodeArityMismatch indicates a callback's argument count does not
	// match its bound column list.
	ErrCodeArityMismatch ErrorCode = "ARITY_MISMATCH"
	// ErrCodePipelineClosed indicates an attempt to extend a pipeline whose
	// run has already started.
	ErrCodePipelineClosed ErrorCode = "PIPELINE_CLOSED"
)

// Resolution errors, raised during row evaluation.
const (
	// ErrCodeUnknownColumn indicates no source or derived column matches the
	// requested name.
	ErrCodeUnknownColumn ErrorCode = "UNKNOWN_COLUMN"
	// ErrCodeTypeMismatch indicates the stored or derived type differs from
	// the type a callback expects.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
)

// Execution errors.
const (
	// ErrCodeWorkerFailed wraps the first error raised inside a parallel
	// worker; the run's partial results are discarded.
	ErrCodeWorkerFailed ErrorCode = "WORKER_FAILED"
	// ErrCodeInternal indicates an engine invariant was violated.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
