package message

import "errors"

var (
	// ErrMessageNotFound is returned when no message matches.
	ErrMessageNotFound = errors.New("message.repository: message not found")

	// ErrBuildQuery is returned when the SQL query cannot be built.
	ErrBuildQuery = errors.New("message.repository: failed to build query")

	// ErrExecQuery is returned when the SQL query fails to execute.
	ErrExecQuery = errors.New("message.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("message.repository: failed to scan row")
)
