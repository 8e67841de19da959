package reservation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"court-reservation-api/internal/model"
)

// Policy holds the booking rules checked before any availability lookup.
type Policy struct {
	MinHours      int
	MaxHours      int
	OpenHour      int // earliest start, local hour
	CloseHour     int // latest end, local hour
	HorizonMonths int
	MinRemarkLen  int
	Location      *time.Location
}

func DefaultPolicy() Policy {
	return Policy{
		MinHours:      1,
		MaxHours:      4,
		OpenHour:      7,
		CloseHour:     20,
		HorizonMonths: 3,
		MinRemarkLen:  10,
		Location:      time.Local,
	}
}

func (p Policy) loc() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

func invalid(field, reason string) error {
	return &model.ValidationError{Field: field, Reason: reason}
}

// checkInterval is the shape check shared by availability and create:
// start < end and both on date in the booking time zone.
func checkInterval(date, start, end time.Time, loc *time.Location) error {
	if date.IsZero() {
		return invalid("date", "required")
	}
	if start.IsZero() || end.IsZero() {
		return invalid("time", "start and end required")
	}
	if !end.After(start) {
		return invalid("time", "end must be after start")
	}
	if !model.SameDate(start.In(loc), date) || !model.SameDate(end.In(loc), date) {
		return invalid("time", "start and end must fall on the reservation date")
	}
	return nil
}

// Validate applies every create-time rule relative to now.
func (p Policy) Validate(now time.Time, req CreateRequest) error {
	loc := p.loc()
	if err := checkInterval(req.Date, req.Start, req.End, loc); err != nil {
		return err
	}

	d := req.End.Sub(req.Start)
	if d%time.Hour != 0 {
		return invalid("duration", "must be a whole number of hours")
	}
	if h := int(d / time.Hour); h < p.MinHours || h > p.MaxHours {
		return invalid("duration", fmt.Sprintf("must be between %d and %d hours", p.MinHours, p.MaxHours))
	}

	y, m, dd := req.Date.Date()
	open := time.Date(y, m, dd, p.OpenHour, 0, 0, 0, loc)
	closing := time.Date(y, m, dd, p.CloseHour, 0, 0, 0, loc)
	if req.Start.Before(open) || req.End.After(closing) {
		return invalid("time", fmt.Sprintf("must be within %02d:00-%02d:00", p.OpenHour, p.CloseHour))
	}

	today := model.DateOf(now.In(loc))
	if model.DateOf(req.Date).Before(today) {
		return invalid("date", "cannot reserve a past date")
	}
	if req.Start.Before(now) {
		return invalid("time", "cannot reserve a past time slot")
	}
	if model.DateOf(req.Date).After(today.AddDate(0, p.HorizonMonths, 0)) {
		return invalid("date", fmt.Sprintf("beyond the %d-month booking horizon", p.HorizonMonths))
	}

	remark := strings.TrimSpace(req.Remark)
	if remark == "" {
		return invalid("remark", "purpose is required")
	}
	if utf8.RuneCountInString(remark) < p.MinRemarkLen {
		return invalid("remark", fmt.Sprintf("purpose should be at least %d characters long", p.MinRemarkLen))
	}
	return nil
}
