package services

import (
	"context"
	"testing"

	"github.com/maxaizer/talenthub/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CandidateStats_CountsOwnApplications(t *testing.T) {
	applications := []entities.Application{
		{Status: entities.StatusOffer, AIScore: 80},
		{Status: entities.StatusInterview, AIScore: 71},
		{Status: entities.StatusApplied, AIScore: 70},
	}

	stats := candidateStats(applications)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Offers)
	assert.Equal(t, 1, stats.Interviews)
	assert.Equal(t, 74, stats.AverageScore)
	assert.Len(t, stats.ByStatus, len(entities.Statuses))
}

func Test_CandidateStats_WhenEmpty_ShouldBeZero(t *testing.T) {
	stats := candidateStats(nil)
	assert.Equal(t, 0, stats.AverageScore)
	for _, count := range stats.ByStatus {
		assert.Zero(t, count.Count)
	}
}

func Test_RecruiterStats_CountsOnlyOwnJobs(t *testing.T) {
	env := newTestEnv(t, defaultOptions())
	env.login(t, "john@example.com")
	first := env.apply(t, "mnc-1", graphQLAssessment)
	env.apply(t, "mnc-1", graphQLAssessment)
	env.apply(t, "mnc-2", graphQLAssessment)

	env.login(t, "jane@techflow.com")
	_, err := env.applications.UpdateStatus(context.Background(), first.ID, entities.StatusOffer)
	require.NoError(t, err)

	stats, err := NewAnalyticsService(env.store).RecruiterStats()
	require.NoError(t, err)

	assert.Equal(t, []StatusCount{
		{Status: entities.StatusApplied, Count: 1},
		{Status: entities.StatusScreening, Count: 0},
		{Status: entities.StatusInterview, Count: 0},
		{Status: entities.StatusOffer, Count: 1},
		{Status: entities.StatusRejected, Count: 0},
	}, stats.ByStatus)
	assert.Equal(t, []JobApplications{
		{JobID: "mnc-1", Title: "Senior Software Engineer (L5)", Applications: 2},
		{JobID: "mnc-3", Title: "Research Scientist - AI/ML", Applications: 0},
	}, stats.ByJob)

	_, err = NewAnalyticsService(env.store).CandidateStats()
	assert.ErrorIs(t, err, ErrForbidden)
}
