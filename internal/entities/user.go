package entities

import (
	"strings"
)

type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
)

type Education struct {
	School string `json:"school" validate:"required"`
	Degree string `json:"degree" validate:"required"`
	Year   string `json:"year"`
}

type Experience struct {
	Company     string `json:"company" validate:"required"`
	Role        string `json:"role" validate:"required"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

type Certification struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer" validate:"required"`
	Link   string `json:"link,omitempty" validate:"omitempty,url"`
	Date   string `json:"date,omitempty"`
}

type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub    string `json:"github,omitempty" validate:"omitempty,url"`
	Portfolio string `json:"portfolio,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
}

type User struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           Role            `json:"role"`
	ResumeText     string          `json:"resumeText,omitempty"`
	CompanyName    string          `json:"companyName,omitempty"`
	JobAlerts      []JobAlert      `json:"jobAlerts,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Location       string          `json:"location,omitempty"`
	Education      []Education     `json:"education,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Certificates   []string        `json:"certificates,omitempty"` // legacy free-form list, superseded by Certifications
	Certifications []Certification `json:"certifications,omitempty"`
	Socials        *SocialLinks    `json:"socials,omitempty"`
	Bio            string          `json:"bio,omitempty"`
	TelegramChatID int64           `json:"telegramChatId,omitempty"`
}

func NewUser(name, email string, role Role) User {
	email = NormalizeEmail(email)
	if strings.TrimSpace(name) == "" {
		name, _, _ = strings.Cut(email, "@")
	}
	return User{
		ID:    NewID(),
		Name:  strings.TrimSpace(name),
		Email: email,
		Role:  role,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u User) HasEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}

func (u User) IsCandidate() bool {
	return u.Role == RoleCandidate
}

func (u User) IsRecruiter() bool {
	return u.Role == RoleRecruiter
}
