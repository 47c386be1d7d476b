package retro

import (
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// CreateRetroInput holds the parameters for creating a retrospective.
type CreateRetroInput struct {
	ID          string // optional, generated when empty
	Name        string
	Team        string
	CreatedBy   string // defaults to the session user
	IsAnonymous bool
}

// Validate checks all fields and collects all errors.
func (i CreateRetroInput) Validate() error {
	var errs []domain.FieldError

	if len(i.ID) > domain.MaxIDLength {
		errs = append(errs, domain.FieldError{Field: "id", Message: "max 64 characters"})
	}
	errs = append(errs, checkName(i.Name)...)
	errs = append(errs, checkTeam(i.Team)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateRetroInput holds the parameters for updating a retrospective.
type UpdateRetroInput struct {
	RetroID     string
	Name        *string
	Team        *string
	IsAnonymous *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateRetroInput) Validate() error {
	var errs []domain.FieldError

	if i.RetroID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name == nil && i.Team == nil && i.IsAnonymous == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, checkName(*i.Name)...)
	}
	if i.Team != nil {
		errs = append(errs, checkTeam(*i.Team)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRetrosInput narrows the retrospective listing.
type ListRetrosInput struct {
	Team  string
	Limit int
}

// Validate checks all fields and collects all errors.
func (i ListRetrosInput) Validate() error {
	if i.Limit < 0 || i.Limit > MaxListLimit {
		return domain.NewValidationError("limit", "must be between 0 and 200")
	}
	return nil
}

func checkName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return []domain.FieldError{{Field: "name", Message: "required"}}
	case len(name) > MaxNameLength:
		return []domain.FieldError{{Field: "name", Message: "max 200 characters"}}
	}
	return nil
}

func checkTeam(team string) []domain.FieldError {
	team = strings.TrimSpace(team)
	switch {
	case team == "":
		return []domain.FieldError{{Field: "team", Message: "required"}}
	case len(team) > MaxTeamLength:
		return []domain.FieldError{{Field: "team", Message: "max 100 characters"}}
	}
	return nil
}
