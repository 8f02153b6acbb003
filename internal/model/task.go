package model

import "time"

// TaskStatus is the closed set of task states exposed by the backend.
// The pending -> in-progress promotion happens server-side; this client only
// ever requests the in-progress -> completed transition.
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

// TaskUser is the assignee as embedded in admin task listings.
type TaskUser struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Task is a unit of assigned work.
type Task struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	Status      TaskStatus `json:"status"`
	User        *TaskUser  `json:"user,omitempty"` // populated on admin listings only
}
