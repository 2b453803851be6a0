package reservation

import (
	"fmt"
	"strings"
	"time"
)

type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if start.IsZero() || end.IsZero() {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// EndsAfter reports whether the slot is still running or upcoming at t.
func (ts TimeSlot) EndsAfter(t time.Time) bool {
	return ts.end.After(t)
}

// StartsWithin reports whether the slot starts inside [from, to).
func (ts TimeSlot) StartsWithin(from, to time.Time) bool {
	return !ts.start.Before(from) && ts.start.Before(to)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

// Day is the local calendar day of date in loc as [midnight, next midnight). DST days are
// 23 or 25 hours long.
func Day(date time.Time, loc *time.Location) (from, to time.Time) {
	d := date.In(loc)
	from = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}

type Places struct {
	value int
}

func NewPlaces(value int) (Places, error) {
	if value < 0 {
		return Places{}, ErrInvalidPlaces
	}
	return Places{value: value}, nil
}

func (p Places) Int() int {
	return p.value
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
