package models

// Staff roles recognised by the CRM. Role gates nothing in this core; it is
// carried for display and for the back office to act on.
const (
	StaffRoleAdministrator = "Administrator"
	StaffRoleManager       = "Manager"
	StaffRoleUser          = "User"
)

// Staff statuses. A freshly added user stays Pending until their email is
// verified and they complete a first login.
const (
	StaffStatusActive   = "Active"
	StaffStatusPending  = "Pending"
	StaffStatusInactive = "Inactive"
)

// StaffUser is the back-office view of a sales-staff account: the provider
// account joined with the CRM-only fields kept in the document store.
type StaffUser struct {
	// ID is the provider account ID, also the profile document ID.
	ID string `json:"id"`

	// Name is the display name shown in staff lists.
	Name string `json:"name"`

	// Email is the lowercase-normalized login email.
	Email string `json:"email"`

	// Role is one of the StaffRole* constants.
	Role string `json:"role"`

	// Status is one of the StaffStatus* constants.
	Status string `json:"status"`
}
