package crm

//go:generate mockgen -source=interfaces.go -destination=../mock/crm_services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-chem-crm/models"
)

// TaskService manages the personal to-do list of one account.
type TaskService interface {
	// Add creates an active task for userID and returns it.
	Add(ctx context.Context, userID, text string) (models.Task, error)

	// List returns userID's tasks, newest first.
	List(ctx context.Context, userID string) ([]models.Task, error)

	// UpdateStatus moves a task between active and waiting.
	UpdateStatus(ctx context.Context, id string, status models.TaskStatus) error

	// Delete removes a task.
	Delete(ctx context.Context, id string) error
}

// PriceUpdateService manages the shared price-update notice board.
type PriceUpdateService interface {
	Add(ctx context.Context, description string) (models.PriceUpdate, error)
	List(ctx context.Context) ([]models.PriceUpdate, error)
	Delete(ctx context.Context, id string) error
}

// OceanFreightService manages the shared ocean-freight notice board.
type OceanFreightService interface {
	Add(ctx context.Context, description string) (models.OceanFreight, error)
	List(ctx context.Context) ([]models.OceanFreight, error)
	Delete(ctx context.Context, id string) error
}

// StaffService manages sales-staff accounts from the back office.
type StaffService interface {
	// List returns all staff profiles ordered by name.
	List(ctx context.Context) ([]models.StaffUser, error)

	// Add creates a provider account plus its staff profile. A profile with
	// the same email already present fails with [ErrEmailAlreadyInUse]
	// before the provider is contacted.
	Add(ctx context.Context, name, email, password, role string) (models.StaffUser, error)

	// Update rewrites the editable profile fields (name, role, status).
	Update(ctx context.Context, staff models.StaffUser) error

	// Delete removes the staff profile document. The provider account is
	// left untouched.
	Delete(ctx context.Context, id string) error
}
