// Package analytics derives read-only statistics from the task list.
// Nothing here mutates state; callers recompute on demand.
//
// All date bucketing uses local calendar days. UTC-based grouping merges
// tasks completed either side of a local midnight, so every helper goes
// through DayKey/SameLocalDay.
package analytics

import (
	"time"

	"github.com/Mjlc31/EASYDAY/internal/storage"
)

// DayKey returns the local YYYY-MM-DD key for a timestamp.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// SameLocalDay reports whether two timestamps fall on the same local
// calendar date. This is date equality, not a 24h window.
func SameLocalDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	ay, am, ad := al.Date()
	by, bm, bd := bl.Date()
	return ay == by && am == bm && ad == bd
}

// TimeOfDay partitions completed tasks by the local hour of completion.
type TimeOfDay struct {
	Morning   int // [05:00, 12:00)
	Afternoon int // [12:00, 18:00)
	Night     int // [18:00, 24:00) ∪ [00:00, 05:00)
}

func (d TimeOfDay) Total() int {
	return d.Morning + d.Afternoon + d.Night
}

// Proportions returns each bucket's share of the total. An empty total is
// treated as 1 so the shares are well-defined zeros.
func (d TimeOfDay) Proportions() (morning, afternoon, night float64) {
	total := d.Total()
	if total < 1 {
		total = 1
	}
	return float64(d.Morning) / float64(total),
		float64(d.Afternoon) / float64(total),
		float64(d.Night) / float64(total)
}

func TimeOfDayDistribution(tasks []storage.Task) TimeOfDay {
	var d TimeOfDay
	for _, t := range tasks {
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		h := t.CompletedAt.Local().Hour()
		switch {
		case h >= 5 && h < 12:
			d.Morning++
		case h >= 12 && h < 18:
			d.Afternoon++
		default:
			d.Night++
		}
	}
	return d
}

// DayCount is one heatmap cell.
type DayCount struct {
	Date  string // local YYYY-MM-DD
	Count int
}

// Heatmap counts completed tasks per local calendar day over the trailing
// window of the given number of days, ending today. Missing days are
// zero-filled; output is newest first. The window size is the caller's
// concern (premium tiers see more history).
func Heatmap(tasks []storage.Task, now time.Time, days int) []DayCount {
	if days <= 0 {
		return nil
	}

	counts := make(map[string]int, days)
	out := make([]DayCount, 0, days)
	for i := 0; i < days; i++ {
		key := DayKey(now.AddDate(0, 0, -i))
		counts[key] = 0
		out = append(out, DayCount{Date: key})
	}

	for _, t := range tasks {
		if !t.Completed || t.CompletedAt == nil {
			continue
		}
		key := DayKey(*t.CompletedAt)
		if _, ok := counts[key]; ok {
			counts[key]++
		}
	}

	for i := range out {
		out[i].Count = counts[out[i].Date]
	}
	return out
}

// DaySummary is the structured input to the weekly report generator.
type DaySummary struct {
	Date      string
	Completed int
	Total     int
}

// WeeklyHistory emits per-day completed counts for the trailing 7 local
// days, newest first.
func WeeklyHistory(tasks []storage.Task, now time.Time) []DaySummary {
	cells := Heatmap(tasks, now, 7)
	out := make([]DaySummary, 0, len(cells))
	for _, c := range cells {
		out = append(out, DaySummary{Date: c.Date, Completed: c.Count, Total: c.Count})
	}
	return out
}

// ConsecutiveCompletionDays counts how many days in a row, ending today,
// have at least one completion.
func ConsecutiveCompletionDays(tasks []storage.Task, now time.Time, window int) int {
	streak := 0
	for _, c := range Heatmap(tasks, now, window) {
		if c.Count == 0 {
			break
		}
		streak++
	}
	return streak
}

func PendingCount(tasks []storage.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed {
			n++
		}
	}
	return n
}

// UrgentPendingCount counts incomplete Q1 tasks.
func UrgentPendingCount(tasks []storage.Task) int {
	n := 0
	for _, t := range tasks {
		if !t.Completed && t.Quadrant == "Q1" {
			n++
		}
	}
	return n
}

func CompletedTodayCount(tasks []storage.Task, now time.Time) int {
	n := 0
	for _, t := range tasks {
		if t.Completed && t.CompletedAt != nil && SameLocalDay(*t.CompletedAt, now) {
			n++
		}
	}
	return n
}
