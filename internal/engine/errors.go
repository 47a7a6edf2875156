package engine

import "fmt"

// NotFoundError indicates an operation referenced a task id absent from
// the ledger. Recoverable: the caller decides what to show.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("task %d not found", e.ID)
}

// QuotaError indicates the free-tier pending task limit was hit.
// The caller typically answers with an upgrade prompt.
type QuotaError struct {
	Limit int
}

func (e QuotaError) Error() string {
	return fmt.Sprintf("free plan allows at most %d pending tasks", e.Limit)
}
