package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yusufkecer/fitness-crm-backend/internal/fitness"
)

const DateLayout = "2006-01-02"

var (
	ErrFirstNameRequired = errors.New("first_name is required")
	ErrLastNameRequired  = errors.New("last_name is required")
	ErrPhoneRequired     = errors.New("phone is required")
	ErrInvalidBirthDate  = errors.New("birth_date must be YYYY-MM-DD")
	ErrInvalidEmail      = errors.New("email is invalid")
)

type Client struct {
	ID         string        `json:"id"`
	TrainerID  int64         `json:"-"`
	FirstName  string        `json:"first_name"`
	LastName   string        `json:"last_name"`
	MiddleName string        `json:"middle_name"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	BirthDate  *string       `json:"birth_date"`
	Gender     string        `json:"gender"`
	Notes      string        `json:"notes"`
	Profile    ClientProfile `json:"profile"`
	IsActive   bool          `json:"is_active"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	LastVisit  *time.Time    `json:"last_visit"`
	DeletedAt  *time.Time    `json:"deleted_at"`
}

// FullName is "Last First Middle" with empty parts skipped.
func (c *Client) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.LastName, c.FirstName, c.MiddleName} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Age returns completed years at now. ok is false when the birth date is
// missing, unparsable or in the future.
func (c *Client) Age(now time.Time) (int, bool) {
	if c.BirthDate == nil {
		return 0, false
	}
	born, err := time.Parse(DateLayout, *c.BirthDate)
	if err != nil {
		return 0, false
	}
	return AgeAt(born, now)
}

func AgeAt(born, now time.Time) (int, bool) {
	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}

type CreateClientRequest struct {
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	MiddleName string         `json:"middle_name"`
	Phone      string         `json:"phone"`
	Email      string         `json:"email"`
	BirthDate  *string        `json:"birth_date"`
	Gender     string         `json:"gender"`
	Notes      string         `json:"notes"`
	Profile    *ClientProfile `json:"profile"`
}

// Normalize trims all text fields and maps gender to "male", "female" or "".
func (r *CreateClientRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.MiddleName = strings.TrimSpace(r.MiddleName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.TrimSpace(r.Email)
	r.Notes = strings.TrimSpace(r.Notes)
	r.Gender = string(fitness.ParseGender(r.Gender))
	if r.Profile != nil {
		r.Profile.Normalize()
	}
	if r.BirthDate != nil {
		bd := strings.TrimSpace(*r.BirthDate)
		if bd == "" {
			r.BirthDate = nil
		} else {
			r.BirthDate = &bd
		}
	}
}

func (r *CreateClientRequest) Validate() error {
	if r.FirstName == "" {
		return ErrFirstNameRequired
	}
	if r.LastName == "" {
		return ErrLastNameRequired
	}
	if r.Phone == "" {
		return ErrPhoneRequired
	}
	if r.Email != "" && !validEmail(r.Email) {
		return ErrInvalidEmail
	}
	if r.BirthDate != nil && !validDate(*r.BirthDate) {
		return ErrInvalidBirthDate
	}
	for _, f := range []struct {
		name  string
		value string
		limit int
	}{
		{"first_name", r.FirstName, MaxNameLen},
		{"last_name", r.LastName, MaxNameLen},
		{"middle_name", r.MiddleName, MaxNameLen},
		{"phone", r.Phone, MaxPhoneLen},
		{"email", r.Email, MaxEmailLen},
	} {
		if err := checkChars(f.name, f.value, f.limit); err != nil {
			return err
		}
	}
	if err := checkBytes("notes", r.Notes, MaxTextBytes); err != nil {
		return err
	}
	if r.Profile != nil {
		return r.Profile.Validate()
	}
	return nil
}

func (r *CreateClientRequest) ToClient(trainerID int64) *Client {
	c := &Client{
		TrainerID:  trainerID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		MiddleName: r.MiddleName,
		Phone:      r.Phone,
		Email:      r.Email,
		BirthDate:  r.BirthDate,
		Gender:     r.Gender,
		Notes:      r.Notes,
		IsActive:   true,
	}
	if r.Profile != nil {
		c.Profile = *r.Profile
	}
	return c
}

var clientFieldLimits = map[string]int{
	"first_name":  MaxNameLen,
	"last_name":   MaxNameLen,
	"middle_name": MaxNameLen,
	"phone":       MaxPhoneLen,
	"email":       MaxEmailLen,
}

// ClientUpdateFields lists the columns a PATCH may touch.
var ClientUpdateFields = map[string]bool{
	"first_name":  true,
	"last_name":   true,
	"middle_name": true,
	"phone":       true,
	"email":       true,
	"birth_date":  true,
	"gender":      true,
	"notes":       true,
	"profile":     true,
}

// NormalizeClientUpdate drops unknown keys, validates the rest and returns
// column values ready for the repository. A null or empty birth_date clears it.
// profile replaces the whole questionnaire and is returned as a JSON string;
// null clears it.
func NormalizeClientUpdate(raw map[string]any) (map[string]any, error) {
	fields := make(map[string]any, len(raw))
	for k, v := range raw {
		if !ClientUpdateFields[k] {
			continue
		}

		if (k == "birth_date" || k == "profile") && v == nil {
			fields[k] = nil
			continue
		}
		if k == "profile" {
			p, err := DecodeProfile(v)
			if err != nil {
				return nil, err
			}
			doc, err := json.Marshal(p)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidProfile, err)
			}
			fields[k] = string(doc)
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, errors.New(k + " must be a string")
		}
		s = strings.TrimSpace(s)

		switch k {
		case "first_name":
			if s == "" {
				return nil, ErrFirstNameRequired
			}
		case "last_name":
			if s == "" {
				return nil, ErrLastNameRequired
			}
		case "phone":
			if s == "" {
				return nil, ErrPhoneRequired
			}
		case "email":
			if s != "" && !validEmail(s) {
				return nil, ErrInvalidEmail
			}
		case "notes":
			if err := checkBytes(k, s, MaxTextBytes); err != nil {
				return nil, err
			}
		case "gender":
			s = string(fitness.ParseGender(s))
		case "birth_date":
			if s == "" {
				fields[k] = nil
				continue
			}
			if !validDate(s) {
				return nil, ErrInvalidBirthDate
			}
		}
		if limit, ok := clientFieldLimits[k]; ok {
			if err := checkChars(k, s, limit); err != nil {
				return nil, err
			}
		}
		fields[k] = s
	}
	return fields, nil
}

type ClientStats struct {
	TotalActive  int `json:"total_active"`
	InTrash      int `json:"in_trash"`
	NewThisMonth int `json:"new_this_month"`
}

func validDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func validEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && at < len(s)-1 && !strings.ContainsAny(s, " \t")
}
