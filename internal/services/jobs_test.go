package services

import (
	"context"
	"testing"

	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/maxaizer/talenthub/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Post_SplitsRequirementsAndPrependsJob(t *testing.T) {
	env := newTestEnv(t, defaultOptions())
	recruiter := env.login(t, "jane@techflow.com")

	posted := make(chan events.JobPosted, 1)
	require.NoError(t, env.bus.Subscribe(events.JobPostedTopic, func(e events.JobPosted) { posted <- e }))

	job, err := env.jobs.Post(context.Background(), PostJobInput{
		Title:        "Go Engineer",
		Description:  "Build services",
		Requirements: " Go ,  Kubernetes, ",
		Location:     "Remote",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Kubernetes"}, job.Requirements)
	assert.Equal(t, "TechFlow", job.Company)
	assert.Equal(t, recruiter.ID, job.RecruiterID)
	assert.Equal(t, entities.Today(), job.PostedAt)
	assert.Equal(t, entities.LevelMid, job.ExperienceLevel)
	assert.Equal(t, "Software Engineering", job.Field)

	jobs := env.store.Snapshot().Jobs
	assert.Len(t, jobs, 17)
	assert.Equal(t, job, jobs[0])
	assert.Equal(t, job.ID, (<-posted).Job.ID)
}

func Test_Post_CompanyFallback(t *testing.T) {
	env := newTestEnv(t, defaultOptions())
	env.register(t, "Raj", "raj@example.com", entities.RoleRecruiter)

	job, err := env.jobs.Post(context.Background(), PostJobInput{Title: "QA", Description: "Test", Location: "Pune"})
	require.NoError(t, err)
	assert.Equal(t, "My Company", job.Company)
}

func Test_Post_Rejections(t *testing.T) {
	env := newTestEnv(t, defaultOptions())
	input := PostJobInput{Title: "QA", Description: "Test", Location: "Pune"}

	_, err := env.jobs.Post(context.Background(), input)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	env.login(t, "john@example.com")
	_, err = env.jobs.Post(context.Background(), input)
	assert.ErrorIs(t, err, ErrForbidden)

	env.login(t, "jane@techflow.com")
	_, err = env.jobs.Post(context.Background(), PostJobInput{Title: "QA", Location: "Pune"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.jobs.Post(context.Background(), PostJobInput{
		Title: "QA", Description: "Test", Location: "Pune", ExperienceLevel: "Intern",
	})
	assert.ErrorIs(t, err, ErrValidation)

	assert.Len(t, env.store.Snapshot().Jobs, 16)
}

func Test_List_Filters(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	assert.Len(t, env.jobs.List(JobFilter{}), 16)

	byTitleOrCompany := env.jobs.List(JobFilter{Search: "GOOGLE"})
	require.Len(t, byTitleOrCompany, 1)
	assert.Equal(t, "mnc-1", byTitleOrCompany[0].ID)

	inBangalore := env.jobs.List(JobFilter{Location: "bangalore", ExperienceLevel: entities.LevelSenior})
	assert.ElementsMatch(t, []string{"mnc-1", "st-2", "st-3"}, jobIDs(inBangalore))

	design := env.jobs.List(JobFilter{Field: "Design"})
	assert.Equal(t, []string{"st-3"}, jobIDs(design))
}

func Test_Get_UnknownJobFails(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	job, err := env.jobs.Get("st-1")
	require.NoError(t, err)
	assert.Equal(t, "Zomato", job.Company)

	_, err = env.jobs.Get("nope")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func jobIDs(jobs []entities.Job) []string {
	ids := make([]string, 0, len(jobs))
	for _, job := range jobs {
		ids = append(ids, job.ID)
	}
	return ids
}

func Test_Fields_ListsDistinctFields(t *testing.T) {
	env := newTestEnv(t, defaultOptions())

	assert.ElementsMatch(t, []string{
		"Software Engineering", "Artificial Intelligence", "Cloud Computing", "Data Science",
		"Design", "Marketing", "Mobile Development",
	}, env.jobs.Fields())
}
