package models

import (
	"encoding/base64"
	"fmt"
	"time"
)

type Organization struct {
	ID                int64
	Login             string
	Name              string
	Type              string
	Email             string
	BillingEmail      string
	OwnedPrivateRepos int64
	PlanName          string
	FilledSeats       int
}

type Member struct {
	Login string
	Name  string
	Email string
}

type Membership struct {
	Login string
	Role  string
	State string
}

type Team struct {
	ID   int64
	Name string
	Slug string
}

type Invitation struct {
	ID        int64
	Login     string
	Email     string
	Inviter   string
	CreatedAt time.Time
}

// Quota is the remaining core API budget and when it resets.
type Quota struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// GlobalID returns the GraphQL node id of the organization and its decoded form.
func (o Organization) GlobalID() (encoded, decoded string) {
	decoded = fmt.Sprintf("%03d:%s%d", len(o.Type), o.Type, o.ID)
	return base64.StdEncoding.EncodeToString([]byte(decoded)), decoded
}

// TeamSync is the outcome of making a team's roster match a desired set of logins.
type TeamSync struct {
	Team      Team
	Removed   []string
	Added     []string
	Unchanged []string
}

// RemovalResult describes what happened when removing a login from an organization.
type RemovalResult struct {
	Login               string
	Role                string
	IsOwner             bool
	RemovedMembership   bool
	RemovedCollaborator bool
}
