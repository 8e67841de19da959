package model

import (
	"strings"
	"time"
)

type Department struct {
	ID   int64
	Name string
}

type Account struct {
	ID           int64
	TypeCode     int
	DepartmentID int64
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Username     string
	PasswordHash string
	Status       AccountStatus
}

func (a *Account) Role() Role { return RoleFromTypeCode(a.TypeCode) }

func (a *Account) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

type CourtType struct {
	ID          int64
	Description string
}

type Court struct {
	ID          int64
	CourtTypeID int64
	Description string
}

// Reservation is a booking of [Start, End) on one court. Date is the civil
// day the reservation belongs to, held as midnight UTC (see DateOf).
type Reservation struct {
	ID        int64
	AccountID int64
	CourtID   int64
	Date      time.Time
	Start     time.Time
	End       time.Time
	Status    Status
	Remark    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active reports whether r still holds its slot.
func (r *Reservation) Active() bool { return r.Status != StatusCancelled }

// ReservationDetail is a reservation joined with display fields.
type ReservationDetail struct {
	Reservation
	Username     string
	UserFullName string
	CourtName    string
	CourtType    string
	Department   string
}

type Scope int

const (
	ScopeAll Scope = iota
	ScopeAccount
	ScopeDate
)

// ReservationQuery selects a read projection. Ordering depends on Scope:
// account is newest date first, date is active-only by court and start,
// all is newest created first.
type ReservationQuery struct {
	Scope     Scope
	AccountID int64
	Date      time.Time
	Status    Status // optional extra filter
}

// DateOf returns the civil day of t (in t's own location) as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate compares civil days only.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
