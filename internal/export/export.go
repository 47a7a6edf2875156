// Package export serializes the task ledger for backup. Pure
// serialization of existing data: CSV for spreadsheets, JSON for a
// lossless backup that import can restore.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Mjlc31/EASYDAY/internal/storage"
)

var csvHeader = []string{"id", "title", "description", "quadrant", "due_date", "created_at", "completed", "completed_at"}

// WriteCSV dumps the ledger as CSV. encoding/csv quotes embedded commas
// and doubles embedded quotes, so free-text fields survive.
func WriteCSV(w io.Writer, tasks []storage.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, t := range tasks {
		rec := []string{
			strconv.FormatInt(t.ID, 10),
			t.Title,
			strDeref(t.Description),
			t.Quadrant,
			timeDeref(t.DueDate),
			t.CreatedAt.Format(time.RFC3339),
			strconv.FormatBool(t.Completed),
			timeDeref(t.CompletedAt),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("csv row %d: %w", t.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return nil
}

// taskJSON is the backup shape. It mirrors storage.Task field for field
// so the round trip is lossless.
type taskJSON struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Quadrant    string     `json:"quadrant"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func WriteJSON(w io.Writer, tasks []storage.Task) error {
	out := make([]taskJSON, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskJSON(t))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("json export: %w", err)
	}
	return nil
}

// ReadJSON parses a JSON backup back into tasks.
func ReadJSON(r io.Reader) ([]storage.Task, error) {
	var in []taskJSON
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return nil, fmt.Errorf("json import: %w", err)
	}
	out := make([]storage.Task, 0, len(in))
	for _, t := range in {
		out = append(out, storage.Task(t))
	}
	return out, nil
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeDeref(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
