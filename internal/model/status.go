package model

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

var statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted}

// ParseStatus normalizes any casing of a known status name.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for _, st := range statuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", &ValidationError{Field: "status", Reason: fmt.Sprintf("unknown status %q", s)}
}

func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusRejected, StatusCancelled, StatusCompleted},
	StatusRejected: {StatusApproved, StatusCancelled},
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, t := range transitions[s] {
		if t == to {
			return true
		}
	}
	return false
}

type AccountStatus string

const (
	AccountActive   AccountStatus = "Active"
	AccountInactive AccountStatus = "Inactive"
)

func ParseAccountStatus(s string) (AccountStatus, error) {
	switch {
	case strings.EqualFold(strings.TrimSpace(s), string(AccountActive)):
		return AccountActive, nil
	case strings.EqualFold(strings.TrimSpace(s), string(AccountInactive)):
		return AccountInactive, nil
	}
	return "", &ValidationError{Field: "status", Reason: "must be Active or Inactive"}
}

type Role int

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleUser
)

func RoleFromTypeCode(code int) Role {
	switch code {
	case 0:
		return RoleAdmin
	case 1:
		return RoleUser
	default:
		return RoleUnknown
	}
}

func ParseRole(s string) Role {
	switch s {
	case "admin":
		return RoleAdmin
	case "user":
		return RoleUser
	}
	return RoleUnknown
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleUser:
		return "user"
	}
	return "unknown"
}
