package reservation

import (
	"time"
)

type Draft struct {
	HourStart        time.Time
	HourEnd          time.Time
	Description      string
	RequiredMaterial string
	TotalPlaces      int
	ShopEvent        bool
	DifficultyID     *int64
	GameID           *int64
	TableID          *int64
}

// Changes carries only the fields a caller supplied; nil means "keep".
type Changes struct {
	HourStart        *time.Time
	HourEnd          *time.Time
	Description      *string
	RequiredMaterial *string
	TotalPlaces      *int
	DifficultyID     *int64
	GameID           *int64
	TableID          *int64
}

type Reservation struct {
	id               int64
	timeSlot         TimeSlot
	description      Note
	requiredMaterial Note
	totalPlaces      Places
	shopEvent        bool
	eventID          *string
	upcomingNotified bool
	difficultyID     *int64
	gameID           *int64
	tableID          *int64
	createdAt        time.Time
	updatedAt        time.Time
}

func NewReservation(d Draft) (*Reservation, error) {
	slot, err := NewTimeSlot(d.HourStart, d.HourEnd)
	if err != nil {
		return nil, err
	}
	places, err := NewPlaces(d.TotalPlaces)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		timeSlot:         slot,
		description:      NewNote(d.Description),
		requiredMaterial: NewNote(d.RequiredMaterial),
		totalPlaces:      places,
		shopEvent:        d.ShopEvent,
		difficultyID:     d.DifficultyID,
		gameID:           d.GameID,
		tableID:          d.TableID,
	}, nil
}

func ReconstructReservation(
	id int64,
	timeSlot TimeSlot,
	description, requiredMaterial string,
	totalPlaces int,
	shopEvent bool,
	eventID *string,
	upcomingNotified bool,
	difficultyID, gameID, tableID *int64,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:               id,
		timeSlot:         timeSlot,
		description:      NewNote(description),
		requiredMaterial: NewNote(requiredMaterial),
		totalPlaces:      Places{value: totalPlaces},
		shopEvent:        shopEvent,
		eventID:          eventID,
		upcomingNotified: upcomingNotified,
		difficultyID:     difficultyID,
		gameID:           gameID,
		tableID:          tableID,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// Apply merges the supplied changes. The reservation is left untouched on error.
func (r *Reservation) Apply(c Changes) error {
	start := r.timeSlot.Start()
	if c.HourStart != nil {
		start = *c.HourStart
	}
	end := r.timeSlot.End()
	if c.HourEnd != nil {
		end = *c.HourEnd
	}
	slot, err := NewTimeSlot(start, end)
	if err != nil {
		return err
	}

	places := r.totalPlaces
	if c.TotalPlaces != nil {
		if places, err = NewPlaces(*c.TotalPlaces); err != nil {
			return err
		}
	}

	r.timeSlot = slot
	r.totalPlaces = places
	if c.Description != nil {
		r.description = NewNote(*c.Description)
	}
	if c.RequiredMaterial != nil {
		r.requiredMaterial = NewNote(*c.RequiredMaterial)
	}
	if c.DifficultyID != nil {
		r.difficultyID = c.DifficultyID
	}
	if c.GameID != nil {
		r.gameID = c.GameID
	}
	if c.TableID != nil {
		r.tableID = c.TableID
	}
	return nil
}

// AssignEvent derives the event id from the current game, table and start date.
func (r *Reservation) AssignEvent(loc *time.Location) error {
	if !r.shopEvent {
		return ErrNotShopEvent
	}
	if r.gameID == nil || r.tableID == nil {
		return ErrEventNeedsGameTable
	}
	id := EventID(*r.gameID, *r.tableID, r.timeSlot.Start(), loc)
	r.eventID = &id
	return nil
}

// MarkUpcomingNotified flips the upcoming-notification flag once. It reports false when the
// flag was already set, so callers never send twice.
func (r *Reservation) MarkUpcomingNotified() bool {
	if r.upcomingNotified {
		return false
	}
	r.upcomingNotified = true
	return true
}

func (r *Reservation) SetID(id int64) {
	r.id = id
}

func (r *Reservation) ID() int64                { return r.id }
func (r *Reservation) TimeSlot() TimeSlot       { return r.timeSlot }
func (r *Reservation) Description() string      { return r.description.String() }
func (r *Reservation) RequiredMaterial() string { return r.requiredMaterial.String() }
func (r *Reservation) TotalPlaces() int         { return r.totalPlaces.Int() }
func (r *Reservation) IsShopEvent() bool        { return r.shopEvent }
func (r *Reservation) EventID() *string         { return r.eventID }
func (r *Reservation) UpcomingNotified() bool   { return r.upcomingNotified }
func (r *Reservation) DifficultyID() *int64     { return r.difficultyID }
func (r *Reservation) GameID() *int64           { return r.gameID }
func (r *Reservation) TableID() *int64          { return r.tableID }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }
