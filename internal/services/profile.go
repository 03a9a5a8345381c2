package services

import (
	"context"
	"strings"

	"github.com/maxaizer/talenthub/internal/entities"
)

// ProfileInput holds every editable profile field. Identity, email, role and
// alerts are not part of it.
type ProfileInput struct {
	Name           string                   `json:"name" validate:"required"`
	Phone          string                   `json:"phone"`
	Location       string                   `json:"location"`
	Bio            string                   `json:"bio"`
	ResumeText     string                   `json:"resumeText"`
	CompanyName    string                   `json:"companyName"`
	Education      []entities.Education     `json:"education" validate:"dive"`
	Experience     []entities.Experience    `json:"experience" validate:"dive"`
	Certificates   []string                 `json:"certificates"`
	Certifications []entities.Certification `json:"certifications" validate:"dive"`
	Socials        *entities.SocialLinks    `json:"socials"`
}

type ProfileService struct {
	store *Store
}

func NewProfileService(store *Store) *ProfileService {
	return &ProfileService{store: store}
}

func (p *ProfileService) UpdateProfile(ctx context.Context, input ProfileInput) (entities.User, error) {
	if err := validateInput(input); err != nil {
		return entities.User{}, err
	}

	var user entities.User
	_, err := p.store.update(ctx, func(snapshot entities.Snapshot) (entities.Snapshot, error) {
		current, err := requireUser(snapshot)
		if err != nil {
			return snapshot, err
		}

		current.Name = strings.TrimSpace(input.Name)
		current.Phone = input.Phone
		current.Location = input.Location
		current.Bio = input.Bio
		current.ResumeText = input.ResumeText
		current.CompanyName = input.CompanyName
		current.Education = input.Education
		current.Experience = input.Experience
		current.Certificates = input.Certificates
		current.Certifications = input.Certifications
		current.Socials = input.Socials

		user = current
		return snapshot.WithUser(current), nil
	})
	return user, err
}
