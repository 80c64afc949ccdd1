package project

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/liammahoney/site-api/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
	maxTechnologies   = 50
	maxTechnologyLen  = 50
)

// CreateInput holds the fields of a new project.
// A nil Technologies means the field was absent from the request.
type CreateInput struct {
	Title        string
	Link         string
	Repo         string
	Description  string
	Technologies []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	if errs := i.fieldErrors(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i CreateInput) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}

	if strings.TrimSpace(i.Link) == "" {
		errs = append(errs, domain.FieldError{Field: "link", Message: "required"})
	} else if !isWebURL(i.Link) {
		errs = append(errs, domain.FieldError{Field: "link", Message: "must be an http or https URL"})
	}

	if strings.TrimSpace(i.Repo) != "" && !isWebURL(i.Repo) {
		errs = append(errs, domain.FieldError{Field: "repo", Message: "must be an http or https URL"})
	}

	description := strings.TrimSpace(i.Description)
	if description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if i.Technologies == nil {
		errs = append(errs, domain.FieldError{Field: "technologies", Message: "required"})
	}
	if len(i.Technologies) > maxTechnologies {
		errs = append(errs, domain.FieldError{Field: "technologies", Message: "max 50 items"})
	}
	for _, tech := range i.Technologies {
		if utf8.RuneCountInString(strings.TrimSpace(tech)) > maxTechnologyLen {
			errs = append(errs, domain.FieldError{Field: "technologies", Message: "items max 50 characters"})
			break
		}
	}

	return errs
}

// apply copies the normalized input onto p.
func (i CreateInput) apply(p *domain.Project) {
	p.Title = domain.CompactText(i.Title)
	p.Link = strings.TrimSpace(i.Link)
	p.Repo = strings.TrimSpace(i.Repo)
	p.Description = strings.TrimSpace(i.Description)
	p.Technologies = domain.NormalizeTechnologies(i.Technologies)
}

// UpdateInput replaces every editable field of the project with ID.
type UpdateInput struct {
	ID uuid.UUID
	CreateInput
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "_id", Message: "required"})
	}
	errs = append(errs, i.fieldErrors()...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isWebURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
