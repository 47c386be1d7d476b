package card

import (
	"strings"

	"github.com/heartmarshall/retroboard-backend/internal/domain"
)

// CreateCardInput holds the parameters for posting a card.
type CreateCardInput struct {
	RetroID  string
	ID       string // optional, generated when empty
	Category string
	Content  string
	Author   string // defaults to the session user
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.RetroID == "" {
		errs = append(errs, domain.FieldError{Field: "retrospectiveId", Message: "required"})
	}
	if len(i.ID) > domain.MaxIDLength {
		errs = append(errs, domain.FieldError{Field: "id", Message: "max 64 characters"})
	}
	if _, ok := domain.ParseCategory(i.Category); !ok {
		errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of hot, disappointment, fantasy"})
	}
	errs = append(errs, checkText("content", i.Content, MaxContentLength)...)
	if len(i.Author) > MaxAuthorLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCardInput holds the parameters for editing a card.
type UpdateCardInput struct {
	CardID   string
	Content  *string
	Category *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Content == nil && i.Category == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Content != nil {
		errs = append(errs, checkText("content", *i.Content, MaxContentLength)...)
	}
	if i.Category != nil {
		if _, ok := domain.ParseCategory(*i.Category); !ok {
			errs = append(errs, domain.FieldError{Field: "category", Message: "must be one of hot, disappointment, fantasy"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ToggleVoteInput identifies the card and voter.
type ToggleVoteInput struct {
	CardID string
	UserID string // defaults to the session user
}

// Validate checks all fields and collects all errors.
func (i ToggleVoteInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == "" {
		errs = append(errs, domain.FieldError{Field: "cardId", Message: "required"})
	}
	if strings.TrimSpace(i.UserID) == "" {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddCommentInput holds the parameters for commenting on a card.
type AddCommentInput struct {
	CardID  string
	ID      string // optional, generated when empty
	Author  string // defaults to the session user
	Content string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == "" {
		errs = append(errs, domain.FieldError{Field: "cardId", Message: "required"})
	}
	if len(i.ID) > domain.MaxIDLength {
		errs = append(errs, domain.FieldError{Field: "id", Message: "max 64 characters"})
	}
	errs = append(errs, checkText("content", i.Content, MaxCommentLength)...)
	if len(i.Author) > MaxAuthorLength {
		errs = append(errs, domain.FieldError{Field: "author", Message: "max 100 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkText(field, value string, maxLen int) []domain.FieldError {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return []domain.FieldError{{Field: field, Message: "required"}}
	case len(value) > maxLen:
		return []domain.FieldError{{Field: field, Message: "too long"}}
	}
	return nil
}
