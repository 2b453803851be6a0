package request

import (
	"time"

	"tabletop-reserve/internal/usecase/commands"
)

type CreateReservationRequest struct {
	HourStart        time.Time `json:"hour_start" binding:"required"`
	HourEnd          time.Time `json:"hour_end" binding:"required"`
	Description      string    `json:"description" binding:"max=2000"`
	RequiredMaterial string    `json:"required_material" binding:"max=2000"`
	TotalPlaces      int       `json:"total_places"`
	ShopEvent        bool      `json:"shop_event"`
	DifficultyID     *int64    `json:"difficulty_id"`
	// Game is a name fragment or a remote catalog id.
	Game    *string `json:"game" binding:"omitempty,max=200"`
	TableID *int64  `json:"table_id"`
}

func (r *CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		HourStart:        r.HourStart,
		HourEnd:          r.HourEnd,
		Description:      r.Description,
		RequiredMaterial: r.RequiredMaterial,
		TotalPlaces:      r.TotalPlaces,
		ShopEvent:        r.ShopEvent,
		DifficultyID:     r.DifficultyID,
		Game:             r.Game,
		TableID:          r.TableID,
	}
}

type UpdateReservationRequest struct {
	HourStart        *time.Time `json:"hour_start"`
	HourEnd          *time.Time `json:"hour_end"`
	Description      *string    `json:"description" binding:"omitempty,max=2000"`
	RequiredMaterial *string    `json:"required_material" binding:"omitempty,max=2000"`
	TotalPlaces      *int       `json:"total_places"`
	DifficultyID     *int64     `json:"difficulty_id"`
	Game             *string    `json:"game" binding:"omitempty,max=200"`
	TableID          *int64     `json:"table_id"`
}

func (r *UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		HourStart:        r.HourStart,
		HourEnd:          r.HourEnd,
		Description:      r.Description,
		RequiredMaterial: r.RequiredMaterial,
		TotalPlaces:      r.TotalPlaces,
		DifficultyID:     r.DifficultyID,
		Game:             r.Game,
		TableID:          r.TableID,
	}
}

type JoinReservationRequest struct {
	Confirmed bool `json:"confirmed"`
}
