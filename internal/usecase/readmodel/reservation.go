package readmodel

import (
	"time"

	"tabletop-reserve/internal/domain/reservation"
)

// Relations selects which associations a read loads besides the reservation row.
type Relations uint8

const (
	// RelCatalog loads difficulty, game and table (with its shop).
	RelCatalog Relations = 1 << iota
	// RelParticipants loads the attached users with their device tokens.
	RelParticipants

	RelAll = RelCatalog | RelParticipants
)

func (r Relations) Has(rel Relations) bool {
	return r&rel == rel
}

type ReservationRM struct {
	ID               int64                     `json:"id"`
	HourStart        time.Time                 `json:"hour_start"`
	HourEnd          time.Time                 `json:"hour_end"`
	Description      string                    `json:"description"`
	RequiredMaterial string                    `json:"required_material"`
	TotalPlaces      int                       `json:"total_places"`
	ShopEvent        bool                      `json:"shop_event"`
	EventID          *string                   `json:"event_id,omitempty"`
	UpcomingNotified bool                      `json:"confirmation_notification"`
	Difficulty       *DifficultyRM             `json:"difficulty,omitempty"`
	Game             *GameRM                   `json:"game,omitempty"`
	Table            *TableRM                  `json:"table,omitempty"`
	Participants     []reservation.Participant `json:"-"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

// ShopName is empty when the table or its shop was not loaded.
func (r *ReservationRM) ShopName() string {
	if r.Table == nil || r.Table.Shop == nil {
		return ""
	}
	return r.Table.Shop.Name
}

func (r *ReservationRM) GameName() string {
	if r.Game == nil {
		return ""
	}
	return r.Game.Name
}

type ParticipationRM struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	ReservationID int64     `json:"reservation_id"`
	Confirmed     bool      `json:"confirmed"`
	CreatedAt     time.Time `json:"created_at"`
}
