package group

import (
	"slices"
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// CreateGroupInput holds the parameters for grouping cards.
type CreateGroupInput struct {
	RetroID string
	ID      string // optional, generated when empty
	Title   string
	CardIDs []string
}

// Validate checks all fields and collects all errors. Duplicate card ids
// count once.
func (i CreateGroupInput) Validate() error {
	var errs []domain.FieldError

	if i.RetroID == "" {
		errs = append(errs, domain.FieldError{Field: "retrospectiveId", Message: "required"})
	}
	if len(i.ID) > domain.MaxIDLength {
		errs = append(errs, domain.FieldError{Field: "id", Message: "max 64 characters"})
	}
	if fe := checkTitle(i.Title); fe != nil {
		errs = append(errs, *fe)
	}

	ids := i.uniqueCardIDs()
	switch {
	case slices.Contains(ids, ""):
		errs = append(errs, domain.FieldError{Field: "cardIds", Message: "must not contain empty ids"})
	case len(ids) < MinGroupSize:
		errs = append(errs, domain.FieldError{Field: "cardIds", Message: "at least 2 distinct cards required"})
	case len(ids) > MaxGroupMembers:
		errs = append(errs, domain.FieldError{Field: "cardIds", Message: "too many cards"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateGroupInput) uniqueCardIDs() []string {
	out := make([]string, 0, len(i.CardIDs))
	for _, id := range i.CardIDs {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// MembershipInput names a group and one card.
type MembershipInput struct {
	GroupID string
	CardID  string
}

// Validate checks all fields and collects all errors.
func (i MembershipInput) Validate() error {
	var errs []domain.FieldError

	if i.GroupID == "" {
		errs = append(errs, domain.FieldError{Field: "groupId", Message: "required"})
	}
	if i.CardID == "" {
		errs = append(errs, domain.FieldError{Field: "cardId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkTitle(title string) *domain.FieldError {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return &domain.FieldError{Field: "title", Message: "required"}
	case len(title) > MaxTitleLength:
		return &domain.FieldError{Field: "title", Message: "max 200 characters"}
	}
	return nil
}
