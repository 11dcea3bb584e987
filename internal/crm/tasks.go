// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crm

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/docstore"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/models"
)

const tasksCollection = "tasks"

// Task document field names.
const (
	taskFieldUserID    = "user_id"
	taskFieldText      = "text"
	taskFieldStatus    = "status"
	taskFieldCreatedAt = "created_at"
)

type taskService struct {
	store  docstore.DocumentStore
	logger *logger.Logger
}

// NewTaskService constructs a [TaskService] backed by the document store.
func NewTaskService(store docstore.DocumentStore, log *logger.Logger) TaskService {
	log.Debug().Msg("creating task service")
	return &taskService{store: store, logger: log}
}

// Add implements [TaskService]. New tasks always start active.
func (s *taskService) Add(ctx context.Context, userID, text string) (models.Task, error) {
	log := logger.FromContext(ctx)

	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, ErrEmptyText
	}

	createdAt := time.Now().UTC()
	id, err := s.store.Add(ctx, tasksCollection, map[string]any{
		taskFieldUserID:    userID,
		taskFieldText:      text,
		taskFieldStatus:    string(models.TaskStatusActive),
		taskFieldCreatedAt: createdAt.Format(time.RFC3339),
	})
	if err != nil {
		log.Err(err).Str("func", "*taskService.Add").Msg("error saving task")
		return models.Task{}, ErrStorage
	}

	return models.Task{
		ID:        id,
		UserID:    userID,
		Text:      text,
		Status:    models.TaskStatusActive,
		CreatedAt: createdAt,
	}, nil
}

// List implements [TaskService]. Tasks belong to exactly one owner; the
// result is ordered newest first.
func (s *taskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	documents, err := s.store.Query(ctx, tasksCollection, taskFieldUserID, userID)
	if err != nil {
		log.Err(err).Str("func", "*taskService.List").Msg("error querying tasks")
		return nil, ErrStorage
	}

	tasks := make([]models.Task, 0, len(documents))
	for _, doc := range documents {
		tasks = append(tasks, taskFromDocument(doc))
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})

	return tasks, nil
}

// UpdateStatus implements [TaskService].
func (s *taskService) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error {
	log := logger.FromContext(ctx)

	if status != models.TaskStatusActive && status != models.TaskStatusWaiting {
		return ErrInvalidStatus
	}

	if _, err := s.store.Get(ctx, tasksCollection, id); err != nil {
		if errors.Is(err, docstore.ErrDocumentNotFound) {
			return ErrNotFound
		}
		log.Err(err).Str("func", "*taskService.UpdateStatus").Msg("error loading task")
		return ErrStorage
	}

	err := s.store.Upsert(ctx, tasksCollection, id, map[string]any{
		taskFieldStatus: string(status),
	}, true)
	if err != nil {
		log.Err(err).Str("func", "*taskService.UpdateStatus").Msg("error updating task status")
		return ErrStorage
	}

	return nil
}

// Delete implements [TaskService].
func (s *taskService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.store.Delete(ctx, tasksCollection, id); err != nil {
		log.Err(err).Str("func", "*taskService.Delete").Msg("error deleting task")
		return ErrStorage
	}

	return nil
}

func taskFromDocument(doc docstore.Document) models.Task {
	task := models.Task{
		ID:     doc.ID,
		UserID: stringField(doc.Fields, taskFieldUserID),
		Text:   stringField(doc.Fields, taskFieldText),
		Status: models.TaskStatus(stringField(doc.Fields, taskFieldStatus)),
	}
	if ts, err := time.Parse(time.RFC3339, stringField(doc.Fields, taskFieldCreatedAt)); err == nil {
		task.CreatedAt = ts
	}
	return task
}

func stringField(fields map[string]any, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}
	return ""
}
