package events

import "github.com/maxaizer/talenthub/internal/entities"

var (
	JobPostedTopic                = "JobPostedEvent"
	ApplicationSubmittedTopic     = "ApplicationSubmittedEvent"
	ApplicationStatusChangedTopic = "ApplicationStatusChangedEvent"
)

type JobPosted struct {
	Job entities.Job
}

type ApplicationSubmitted struct {
	Application entities.Application
	Job         entities.Job
}

type ApplicationStatusChanged struct {
	Application entities.Application
	Job         entities.Job
	Previous    entities.ApplicationStatus
}
