//go:build unit || e2e

package builder

import (
	"time"

	domres "tabletop-reserve/internal/domain/reservation"
	reqdto "tabletop-reserve/internal/handler/dto/request"
	"tabletop-reserve/internal/usecase/commands"
	"tabletop-reserve/internal/usecase/readmodel"
)

type ReservationBuilder struct {
	ID               int64
	HourStart        time.Time
	HourEnd          time.Time
	Description      string
	RequiredMaterial string
	TotalPlaces      int
	ShopEvent        bool
	EventID          *string
	Notified         bool
	DifficultyID     *int64
	GameID           *int64
	Game             *string
	TableID          *int64
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2030, time.March, 14, 18, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:               1,
		HourStart:        start,
		HourEnd:          start.Add(3 * time.Hour),
		Description:      "Friday campaign night",
		RequiredMaterial: "Dice",
		TotalPlaces:      4,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithSlot(start time.Time, length time.Duration) *ReservationBuilder {
	b.HourStart = start
	b.HourEnd = start.Add(length)
	return b
}

func (b *ReservationBuilder) WithGame(id int64) *ReservationBuilder {
	b.GameID = &id
	return b
}

func (b *ReservationBuilder) WithTable(id int64) *ReservationBuilder {
	b.TableID = &id
	return b
}

// AsEvent marks the reservation as a shop event with a precomputed event id.
func (b *ReservationBuilder) AsEvent(eventID string) *ReservationBuilder {
	b.ShopEvent = true
	b.EventID = &eventID
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *domres.Reservation {
	slot, err := domres.NewTimeSlot(b.HourStart, b.HourEnd)
	if err != nil {
		panic(err)
	}
	return domres.ReconstructReservation(
		b.ID, slot, b.Description, b.RequiredMaterial, b.TotalPlaces,
		b.ShopEvent, b.EventID, b.Notified,
		b.DifficultyID, b.GameID, b.TableID,
		b.HourStart.Add(-24*time.Hour), b.HourStart.Add(-24*time.Hour),
	)
}

func (b *ReservationBuilder) BuildDraft() domres.Draft {
	return domres.Draft{
		HourStart:        b.HourStart,
		HourEnd:          b.HourEnd,
		Description:      b.Description,
		RequiredMaterial: b.RequiredMaterial,
		TotalPlaces:      b.TotalPlaces,
		ShopEvent:        b.ShopEvent,
		DifficultyID:     b.DifficultyID,
		GameID:           b.GameID,
		TableID:          b.TableID,
	}
}

func (b *ReservationBuilder) BuildCreateInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		HourStart:        b.HourStart,
		HourEnd:          b.HourEnd,
		Description:      b.Description,
		RequiredMaterial: b.RequiredMaterial,
		TotalPlaces:      b.TotalPlaces,
		ShopEvent:        b.ShopEvent,
		DifficultyID:     b.DifficultyID,
		Game:             b.Game,
		TableID:          b.TableID,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		HourStart:        b.HourStart,
		HourEnd:          b.HourEnd,
		Description:      b.Description,
		RequiredMaterial: b.RequiredMaterial,
		TotalPlaces:      b.TotalPlaces,
		ShopEvent:        b.ShopEvent,
		DifficultyID:     b.DifficultyID,
		Game:             b.Game,
		TableID:          b.TableID,
	}
}

func (b *ReservationBuilder) BuildReadModel() *readmodel.ReservationRM {
	rm := &readmodel.ReservationRM{
		ID:               b.ID,
		HourStart:        b.HourStart,
		HourEnd:          b.HourEnd,
		Description:      b.Description,
		RequiredMaterial: b.RequiredMaterial,
		TotalPlaces:      b.TotalPlaces,
		ShopEvent:        b.ShopEvent,
		EventID:          b.EventID,
		UpcomingNotified: b.Notified,
	}
	if b.GameID != nil {
		rm.Game = &readmodel.GameRM{ID: *b.GameID, Name: "Catan"}
	}
	if b.TableID != nil {
		rm.Table = &readmodel.TableRM{ID: *b.TableID, Name: "Table 1", ShopID: 1}
	}
	return rm
}
