package storage

import "time"

type Task struct {
	ID          int64
	Title       string
	Description *string
	Quadrant    string
	DueDate     *time.Time
	CreatedAt   time.Time
	Completed   bool
	CompletedAt *time.Time
}

type User struct {
	Key            string
	XP             int
	Level          int
	TasksCompleted int
	Streak         int
	LastLogin      *time.Time
	IsPremium      bool
}

type Badge struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Unlocked    bool
}
