package models

import "time"

// TaskStatus enumerates the workflow states of a task.
type TaskStatus string

const (
	// TaskStatusActive marks a task that is being worked on.
	TaskStatusActive TaskStatus = "active"

	// TaskStatusWaiting marks a task that is parked until something
	// external unblocks it.
	TaskStatusWaiting TaskStatus = "waiting"
)

// Task is a personal to-do item owned by one staff account.
type Task struct {
	// ID is the document identifier assigned by the store.
	ID string `json:"id"`

	// UserID is the account ID of the owner. Tasks are listed per owner.
	UserID string `json:"user_id"`

	// Text is the free-form task description.
	Text string `json:"text"`

	// Status is the current workflow state.
	Status TaskStatus `json:"status"`

	// CreatedAt orders the task list, newest first.
	CreatedAt time.Time `json:"created_at"`
}
