package entities

import (
	"strings"

	"github.com/samber/lo"
)

type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "Entry"
	LevelMid    ExperienceLevel = "Mid"
	LevelSenior ExperienceLevel = "Senior"
	LevelLead   ExperienceLevel = "Lead"
)

type Job struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Description     string          `json:"description"`
	Requirements    []string        `json:"requirements"`
	Location        string          `json:"location"`
	Field           string          `json:"field"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	PostedAt        Date            `json:"postedAt"`
	Deadline        *Date           `json:"deadline,omitempty"`
	RecruiterID     string          `json:"recruiterId"`
	Salary          string          `json:"salary,omitempty"`
}

// ParseRequirements splits a comma-separated list, trimming entries and dropping empty ones.
func ParseRequirements(list string) []string {
	return lo.Compact(lo.Map(strings.Split(list, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	}))
}

// SearchableText is the lowercased text alerts and searches are matched against.
func (j Job) SearchableText() string {
	parts := append([]string{j.Title, j.Company, j.Description}, j.Requirements...)
	return strings.ToLower(strings.Join(parts, " "))
}
