package entities

import (
	"slices"
)

// Snapshot is the whole dashboard state. Commands never modify a snapshot in
// place, they build a new one.
type Snapshot struct {
	Users        []User
	CurrentUser  *User
	Jobs         []Job
	Applications []Application
}

func (s Snapshot) Clone() Snapshot {
	clone := Snapshot{
		Users:        slices.Clone(s.Users),
		Jobs:         slices.Clone(s.Jobs),
		Applications: slices.Clone(s.Applications),
	}
	if s.CurrentUser != nil {
		user := *s.CurrentUser
		clone.CurrentUser = &user
	}
	return clone
}

func (s Snapshot) FindUser(id string) (User, bool) {
	idx := slices.IndexFunc(s.Users, func(u User) bool { return u.ID == id })
	if idx < 0 {
		return User{}, false
	}
	return s.Users[idx], true
}

func (s Snapshot) FindUserByEmail(email string) (User, bool) {
	idx := slices.IndexFunc(s.Users, func(u User) bool { return u.HasEmail(email) })
	if idx < 0 {
		return User{}, false
	}
	return s.Users[idx], true
}

func (s Snapshot) FindJob(id string) (Job, bool) {
	idx := slices.IndexFunc(s.Jobs, func(j Job) bool { return j.ID == id })
	if idx < 0 {
		return Job{}, false
	}
	return s.Jobs[idx], true
}

func (s Snapshot) FindApplication(id string) (Application, bool) {
	idx := slices.IndexFunc(s.Applications, func(a Application) bool { return a.ID == id })
	if idx < 0 {
		return Application{}, false
	}
	return s.Applications[idx], true
}

func (s Snapshot) HasApplied(candidateID, jobID string) bool {
	return slices.ContainsFunc(s.Applications, func(a Application) bool {
		return a.CandidateID == candidateID && a.JobID == jobID
	})
}

// WithUser upserts the user into the roster and refreshes the session user if it is the same account.
func (s Snapshot) WithUser(user User) Snapshot {
	next := s.Clone()
	idx := slices.IndexFunc(next.Users, func(u User) bool { return u.ID == user.ID })
	if idx < 0 {
		next.Users = append(next.Users, user)
	} else {
		next.Users[idx] = user
	}
	if next.CurrentUser != nil && next.CurrentUser.ID == user.ID {
		next.CurrentUser = &user
	}
	return next
}
