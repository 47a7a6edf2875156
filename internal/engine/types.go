package engine

import (
	"fmt"
	"strings"
)

// Quadrant is the Eisenhower classification of a task.
type Quadrant string

const (
	Q1 Quadrant = "Q1" // urgent & important
	Q2 Quadrant = "Q2" // important, not urgent
	Q3 Quadrant = "Q3" // urgent, not important
	Q4 Quadrant = "Q4" // neither
)

// Quadrants lists all variants in cycle order.
var Quadrants = []Quadrant{Q1, Q2, Q3, Q4}

func (q Quadrant) IsValid() bool {
	switch q {
	case Q1, Q2, Q3, Q4:
		return true
	default:
		return false
	}
}

// Next returns the successor in the fixed cyclic order Q1→Q2→Q3→Q4→Q1.
func (q Quadrant) Next() Quadrant {
	for i, v := range Quadrants {
		if v == q {
			return Quadrants[(i+1)%len(Quadrants)]
		}
	}
	return DefaultQuadrant
}

// Title returns the matrix heading for the quadrant.
func (q Quadrant) Title() string {
	switch q {
	case Q1:
		return "URGENT & IMPORTANT"
	case Q2:
		return "IMPORTANT & NOT URGENT"
	case Q3:
		return "URGENT & NOT IMPORTANT"
	case Q4:
		return "NEITHER URGENT NOR IMPORTANT"
	default:
		return string(q)
	}
}

// DefaultQuadrant is used when user input is missing/invalid.
const DefaultQuadrant Quadrant = Q2

func ParseQuadrant(input string) (Quadrant, error) {
	s := strings.TrimSpace(strings.ToUpper(input))
	q := Quadrant(s)
	if !q.IsValid() {
		return "", fmt.Errorf("invalid quadrant: %q", input)
	}
	return q, nil
}
