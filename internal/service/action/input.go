package action

import (
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// CreateActionInput holds the parameters for a new action item.
type CreateActionInput struct {
	RetroID  string
	ID       string // optional, generated when empty
	Text     string
	Assignee string // optional
	CardID   string // optional source card
}

// Validate checks all fields and collects all errors.
func (i CreateActionInput) Validate() error {
	var errs []domain.FieldError

	if i.RetroID == "" {
		errs = append(errs, domain.FieldError{Field: "retrospectiveId", Message: "required"})
	}
	if len(i.ID) > domain.MaxIDLength {
		errs = append(errs, domain.FieldError{Field: "id", Message: "max 64 characters"})
	}
	if fe := checkText(i.Text); fe != nil {
		errs = append(errs, *fe)
	}
	if len(strings.TrimSpace(i.Assignee)) > MaxAssigneeLength {
		errs = append(errs, domain.FieldError{Field: "assignee", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateActionInput is a partial update. An empty Assignee clears it.
type UpdateActionInput struct {
	ActionID  string
	Text      *string
	Assignee  *string
	Completed *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateActionInput) Validate() error {
	var errs []domain.FieldError

	if i.ActionID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Text == nil && i.Assignee == nil && i.Completed == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Text != nil {
		if fe := checkText(*i.Text); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if i.Assignee != nil && len(strings.TrimSpace(*i.Assignee)) > MaxAssigneeLength {
		errs = append(errs, domain.FieldError{Field: "assignee", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkText(text string) *domain.FieldError {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return &domain.FieldError{Field: "text", Message: "required"}
	case len(text) > MaxTextLength:
		return &domain.FieldError{Field: "text", Message: "max 1000 characters"}
	}
	return nil
}
