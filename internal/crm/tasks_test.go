// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/docstore"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/internal/mock"
	"github.com/MKhiriev/go-chem-crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTaskService(t *testing.T) (TaskService, *mock.MockDocumentStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock.NewMockDocumentStore(ctrl)
	return NewTaskService(store, logger.Nop()), store
}

func TestTaskAdd_CreatesActiveTask(t *testing.T) {
	svc, store := newTaskService(t)

	store.EXPECT().Add(gomock.Any(), "tasks", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields map[string]any) (string, error) {
			assert.Equal(t, "uid-1", fields["user_id"])
			assert.Equal(t, "call supplier about HCl drums", fields["text"])
			assert.Equal(t, "active", fields["status"])
			assert.Contains(t, fields, "created_at")
			return "task-1", nil
		})

	task, err := svc.Add(context.Background(), "uid-1", "  call supplier about HCl drums  ")

	require.NoError(t, err)
	assert.Equal(t, "task-1", task.ID)
	assert.Equal(t, models.TaskStatusActive, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestTaskAdd_EmptyTextRejected(t *testing.T) {
	svc, _ := newTaskService(t)

	_, err := svc.Add(context.Background(), "uid-1", "   ")

	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestTaskList_NewestFirst(t *testing.T) {
	svc, store := newTaskService(t)

	older := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	store.EXPECT().Query(gomock.Any(), "tasks", "user_id", "uid-1").
		Return([]docstore.Document{
			{ID: "t-old", Fields: map[string]any{
				"user_id": "uid-1", "text": "old", "status": "waiting",
				"created_at": older.Format(time.RFC3339),
			}},
			{ID: "t-new", Fields: map[string]any{
				"user_id": "uid-1", "text": "new", "status": "active",
				"created_at": newer.Format(time.RFC3339),
			}},
		}, nil)

	tasks, err := svc.List(context.Background(), "uid-1")

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "t-new", tasks[0].ID)
	assert.Equal(t, "t-old", tasks[1].ID)
	assert.Equal(t, models.TaskStatusWaiting, tasks[1].Status)
}

func TestTaskUpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  models.TaskStatus
		exists  bool
		wantErr error
	}{
		{name: "to waiting", status: models.TaskStatusWaiting, exists: true},
		{name: "back to active", status: models.TaskStatusActive, exists: true},
		{name: "invalid status", status: "done", exists: true, wantErr: ErrInvalidStatus},
		{name: "missing task", status: models.TaskStatusWaiting, exists: false, wantErr: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store := newTaskService(t)

			if tt.wantErr == nil || errors.Is(tt.wantErr, ErrNotFound) {
				getCall := store.EXPECT().Get(gomock.Any(), "tasks", "task-1")
				if tt.exists {
					getCall.Return(docstore.Document{ID: "task-1"}, nil)
				} else {
					getCall.Return(docstore.Document{}, docstore.ErrDocumentNotFound)
				}
			}
			if tt.wantErr == nil {
				store.EXPECT().Upsert(gomock.Any(), "tasks", "task-1",
					map[string]any{"status": string(tt.status)}, true).Return(nil)
			}

			err := svc.UpdateStatus(context.Background(), "task-1", tt.status)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTaskDelete_StorageFailure(t *testing.T) {
	svc, store := newTaskService(t)

	store.EXPECT().Delete(gomock.Any(), "tasks", "task-1").
		Return(errors.New("disk full"))

	err := svc.Delete(context.Background(), "task-1")

	assert.ErrorIs(t, err, ErrStorage)
}
