package user

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/usergraph-backend/internal/domain"
)

// GetUserInput holds parameters for fetching one user.
// Fields limits what is read from storage; empty means everything.
type GetUserInput struct {
	ID     string
	Fields []domain.UserField
}

// Validate validates the get user input.
func (i GetUserInput) Validate() error {
	return validateID(i.ID)
}

// CreateUserInput holds parameters for creating a user.
type CreateUserInput struct {
	Name *string
}

// Validate validates the create user input.
func (i CreateUserInput) Validate() error {
	var ve domain.ValidationError
	validateName(&ve, i.Name)
	return ve.Err()
}

// UpdateUserInput holds parameters for renaming a user.
// A nil Name leaves the stored name untouched unless ClearName is set,
// in which case the name is stored as null.
type UpdateUserInput struct {
	ID        string
	Name      *string
	ClearName bool
	Fields    []domain.UserField
}

// Validate validates the update user input.
func (i UpdateUserInput) Validate() error {
	var ve domain.ValidationError
	if strings.TrimSpace(i.ID) == "" {
		ve.Add("id", "required")
	}
	validateName(&ve, i.Name)
	if i.ClearName && i.Name != nil {
		ve.Add("name", "cannot both set and clear")
	}
	return ve.Err()
}

// DeleteUserInput holds parameters for deleting a user.
type DeleteUserInput struct {
	ID     string
	Fields []domain.UserField
}

// Validate validates the delete user input.
func (i DeleteUserInput) Validate() error {
	return validateID(i.ID)
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.NewValidationError("id", "required")
	}
	return nil
}

func validateName(ve *domain.ValidationError, name *string) {
	if name != nil && utf8.RuneCountInString(*name) > domain.MaxNameLength {
		ve.Add("name", "too long")
	}
}
