// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-chem-crm/internal/docstore"
	"github.com/MKhiriev/go-chem-crm/internal/identity"
	"github.com/MKhiriev/go-chem-crm/internal/logger"
	"github.com/MKhiriev/go-chem-crm/models"
)

type staffService struct {
	store    docstore.DocumentStore
	accounts identity.AccountClient
	logger   *logger.Logger
}

// NewStaffService constructs a [StaffService] over the document store and
// the account provider.
func NewStaffService(store docstore.DocumentStore, accounts identity.AccountClient, log *logger.Logger) StaffService {
	log.Debug().Msg("creating staff service")
	return &staffService{store: store, accounts: accounts, logger: log}
}

// List implements [StaffService].
func (s *staffService) List(ctx context.Context) ([]models.StaffUser, error) {
	log := logger.FromContext(ctx)

	documents, err := s.store.List(ctx, models.ProfilesCollection, models.ProfileFieldDisplayName, false)
	if err != nil {
		log.Err(err).Str("func", "*staffService.List").Msg("error listing staff profiles")
		return nil, ErrStorage
	}

	staff := make([]models.StaffUser, 0, len(documents))
	for _, doc := range documents {
		staff = append(staff, staffFromDocument(doc))
	}

	return staff, nil
}

// Add implements [StaffService]. The duplicate check runs against our own
// profile records before the provider is contacted, so a taken email costs
// zero provider calls.
//
// Creating the provider account rebinds the client's credential to the new
// (unverified) account, which signs the operator out; they log back in after
// adding staff.
func (s *staffService) Add(ctx context.Context, name, email, password, role string) (models.StaffUser, error) {
	log := logger.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if name == "" {
		return models.StaffUser{}, ErrEmptyText
	}
	if !validStaffRole(role) {
		return models.StaffUser{}, ErrInvalidStatus
	}

	existing, err := s.store.Query(ctx, models.ProfilesCollection, models.ProfileFieldEmail, email)
	if err != nil {
		log.Err(err).Str("func", "*staffService.Add").Msg("error checking for existing profile")
		return models.StaffUser{}, ErrStorage
	}
	if len(existing) > 0 {
		return models.StaffUser{}, ErrEmailAlreadyInUse
	}

	account, err := s.accounts.SignUp(ctx, email, password)
	if err != nil {
		log.Warn().Err(err).Str("func", "*staffService.Add").Msg("provider rejected staff account")
		if identity.IsProviderCode(err, identity.CodeEmailExists) {
			return models.StaffUser{}, ErrEmailAlreadyInUse
		}
		return models.StaffUser{}, ErrProvider
	}

	if err = s.accounts.SetDisplayName(ctx, name); err != nil {
		log.Warn().Err(err).Str("func", "*staffService.Add").Msg("setting staff display name failed")
	}
	if err = s.accounts.SendVerificationEmail(ctx); err != nil {
		log.Warn().Err(err).Str("func", "*staffService.Add").Msg("sending staff verification email failed")
	}

	err = s.store.Upsert(ctx, models.ProfilesCollection, account.ID, map[string]any{
		models.ProfileFieldEmail:       email,
		models.ProfileFieldDisplayName: name,
		models.ProfileFieldRole:        role,
		models.ProfileFieldStatus:      models.StaffStatusPending,
		models.ProfileFieldVerified:    false,
		models.ProfileFieldCreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}, false)
	if err != nil {
		log.Err(err).Str("func", "*staffService.Add").Msg("error saving staff profile")
		return models.StaffUser{}, ErrStorage
	}

	return models.StaffUser{
		ID:     account.ID,
		Name:   name,
		Email:  email,
		Role:   role,
		Status: models.StaffStatusPending,
	}, nil
}

// Update implements [StaffService].
func (s *staffService) Update(ctx context.Context, staff models.StaffUser) error {
	log := logger.FromContext(ctx)

	if !validStaffRole(staff.Role) || !validStaffStatus(staff.Status) {
		return ErrInvalidStatus
	}

	if _, err := s.store.Get(ctx, models.ProfilesCollection, staff.ID); err != nil {
		if errors.Is(err, docstore.ErrDocumentNotFound) {
			return ErrNotFound
		}
		log.Err(err).Str("func", "*staffService.Update").Msg("error loading staff profile")
		return ErrStorage
	}

	err := s.store.Upsert(ctx, models.ProfilesCollection, staff.ID, map[string]any{
		models.ProfileFieldDisplayName: staff.Name,
		models.ProfileFieldRole:        staff.Role,
		models.ProfileFieldStatus:      staff.Status,
	}, true)
	if err != nil {
		log.Err(err).Str("func", "*staffService.Update").Msg("error updating staff profile")
		return ErrStorage
	}

	return nil
}

// Delete implements [StaffService]. Only the profile document is removed;
// disabling the provider account is a back-office action outside the client.
func (s *staffService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.store.Delete(ctx, models.ProfilesCollection, id); err != nil {
		log.Err(err).Str("func", "*staffService.Delete").Msg("error deleting staff profile")
		return ErrStorage
	}

	return nil
}

func staffFromDocument(doc docstore.Document) models.StaffUser {
	staff := models.StaffUser{
		ID:     doc.ID,
		Name:   stringField(doc.Fields, models.ProfileFieldDisplayName),
		Email:  stringField(doc.Fields, models.ProfileFieldEmail),
		Role:   stringField(doc.Fields, models.ProfileFieldRole),
		Status: stringField(doc.Fields, models.ProfileFieldStatus),
	}
	if staff.Role == "" {
		staff.Role = models.StaffRoleUser
	}
	if staff.Status == "" {
		staff.Status = models.StaffStatusPending
	}
	return staff
}

func validStaffRole(role string) bool {
	switch role {
	case models.StaffRoleAdministrator, models.StaffRoleManager, models.StaffRoleUser:
		return true
	}
	return false
}

func validStaffStatus(status string) bool {
	switch status {
	case models.StaffStatusActive, models.StaffStatusPending, models.StaffStatusInactive:
		return true
	}
	return false
}
