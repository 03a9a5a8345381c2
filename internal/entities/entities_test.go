package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseRequirements_TrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"Go", "Kubernetes"}, ParseRequirements("  Go , Kubernetes  "))
	assert.Equal(t, []string{"React", "SQL"}, ParseRequirements("React,, ,SQL"))
	assert.Empty(t, ParseRequirements(""))
}

func Test_Date_JSONRoundTrip(t *testing.T) {
	date := NewDate(time.Date(2024, 3, 1, 17, 45, 0, 0, time.UTC))

	data, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Equal(t, date, parsed)
}

func Test_Date_RejectsWrongLayout(t *testing.T) {
	var parsed Date
	assert.Error(t, json.Unmarshal([]byte(`"01/03/2024"`), &parsed))
}

func Test_NewUser_DefaultsNameToEmailLocalPart(t *testing.T) {
	user := NewUser("", "  Alice.Smith@Example.com ", RoleCandidate)

	assert.Equal(t, "alice.smith", user.Name)
	assert.Equal(t, "alice.smith@example.com", user.Email)
	assert.Equal(t, RoleCandidate, user.Role)
	assert.NotEmpty(t, user.ID)
}

func Test_NewApplication_CopiesAssessment(t *testing.T) {
	job := Job{ID: "job-1"}
	candidate := User{ID: "cand-1"}
	result := AssessmentResult{
		Score:          82,
		MatchingPoints: []string{"React", "TypeScript"},
		MissingSkills:  []string{"GraphQL"},
	}
	date := NewDate(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC))

	app := NewApplication(job, candidate, result, date)

	assert.Equal(t, "job-1", app.JobID)
	assert.Equal(t, "cand-1", app.CandidateID)
	assert.Equal(t, StatusApplied, app.Status)
	assert.Equal(t, 82, app.AIScore)
	assert.Equal(t, "React, TypeScript", app.Feedback)
	assert.Equal(t, []string{"GraphQL"}, app.MissingSkills)
	assert.Equal(t, date, app.AppliedDate)
}

func Test_ApplicationStatus_ForwardTransitions(t *testing.T) {
	assert.True(t, StatusApplied.CanMoveForwardTo(StatusInterview))
	assert.True(t, StatusScreening.CanMoveForwardTo(StatusRejected))
	assert.True(t, StatusInterview.CanMoveForwardTo(StatusInterview))
	assert.False(t, StatusInterview.CanMoveForwardTo(StatusScreening))
	assert.False(t, StatusOffer.CanMoveForwardTo(StatusRejected))
	assert.False(t, StatusRejected.CanMoveForwardTo(StatusApplied))
}

func Test_JobAlert_Matches(t *testing.T) {
	job := Job{
		Title:        "Backend Platform Engineer",
		Company:      "Swiggy",
		Description:  "Solve logistics problems at scale.",
		Requirements: []string{"Java", "Golang", "Redis"},
		Location:     "Bangalore, KA",
	}

	assert.True(t, JobAlert{Keywords: "golang redis", Location: "bangalore"}.Matches(job))
	assert.True(t, JobAlert{Keywords: "Backend"}.Matches(job))
	assert.False(t, JobAlert{Keywords: "golang", Location: "Pune"}.Matches(job))
	assert.False(t, JobAlert{Keywords: "golang kafka"}.Matches(job))
}

func Test_Snapshot_WithUserRefreshesSession(t *testing.T) {
	user := User{ID: "u1", Name: "Old"}
	snapshot := Snapshot{Users: []User{user}, CurrentUser: &user}

	updated := user
	updated.Name = "New"
	next := snapshot.WithUser(updated)

	assert.Equal(t, "New", next.Users[0].Name)
	assert.Equal(t, "New", next.CurrentUser.Name)
	assert.Equal(t, "Old", snapshot.Users[0].Name)

	next = next.WithUser(User{ID: "u2"})
	assert.Len(t, next.Users, 2)
	assert.Equal(t, "u1", next.CurrentUser.ID)
}
