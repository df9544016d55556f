package auth

import (
	"regexp"
	"strings"
	"time"

	"github.com/heartmarshall/timetrack-backend/internal/domain"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,30}$`)

// RegisterInput holds parameters for user registration.
type RegisterInput struct {
	Email    string
	Username string
	Password string
	Timezone string // optional, defaults to UTC
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 254 || !strings.Contains(email[1:], "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid"})
	}

	if !usernameRe.MatchString(strings.TrimSpace(i.Username)) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "3-30 characters: letters, digits, _ or -"})
	}

	// bcrypt truncates input beyond 72 bytes
	switch {
	case len(i.Password) < 8:
		errs = append(errs, domain.FieldError{Field: "password", Message: "min 8 characters"})
	case len(i.Password) > 72:
		errs = append(errs, domain.FieldError{Field: "password", Message: "max 72 characters"})
	}

	if i.Timezone != "" {
		if _, err := time.LoadLocation(i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for token refresh operation.
type RefreshInput struct {
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSettingsInput holds parameters for profile settings updates.
type UpdateSettingsInput struct {
	Name     *string
	Timezone *string
}

// Validate checks all fields and collects all errors.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == nil && i.Timezone == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Timezone != nil {
		if _, err := time.LoadLocation(*i.Timezone); err != nil {
			errs = append(errs, domain.FieldError{Field: "timezone", Message: "unknown IANA timezone"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
