package response

import (
	"time"

	"tabletop-reserve/internal/usecase/readmodel"
)

type ReservationResponse struct {
	ID               int64                   `json:"id"`
	HourStart        time.Time               `json:"hour_start"`
	HourEnd          time.Time               `json:"hour_end"`
	Description      string                  `json:"description"`
	RequiredMaterial string                  `json:"required_material"`
	TotalPlaces      int                     `json:"total_places"`
	ShopEvent        bool                    `json:"shop_event"`
	EventID          *string                 `json:"event_id,omitempty"`
	Notified         bool                    `json:"confirmation_notification"`
	Difficulty       *readmodel.DifficultyRM `json:"difficulty,omitempty"`
	Game             *readmodel.GameRM       `json:"game,omitempty"`
	Table            *readmodel.TableRM      `json:"table,omitempty"`
	Participants     []ParticipantResponse   `json:"participants,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// ParticipantResponse leaves out device tokens.
type ParticipantResponse struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Confirmed bool   `json:"confirmed"`
}

func FromReservationRM(rm *readmodel.ReservationRM) *ReservationResponse {
	res := &ReservationResponse{
		ID:               rm.ID,
		HourStart:        rm.HourStart,
		HourEnd:          rm.HourEnd,
		Description:      rm.Description,
		RequiredMaterial: rm.RequiredMaterial,
		TotalPlaces:      rm.TotalPlaces,
		ShopEvent:        rm.ShopEvent,
		EventID:          rm.EventID,
		Notified:         rm.UpcomingNotified,
		Difficulty:       rm.Difficulty,
		Game:             rm.Game,
		Table:            rm.Table,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
	for _, p := range rm.Participants {
		res.Participants = append(res.Participants, ParticipantResponse{
			UserID:    p.UserID,
			Name:      p.Name,
			Confirmed: p.Confirmed,
		})
	}
	return res
}

func FromReservationList(list []*readmodel.ReservationRM) []*ReservationResponse {
	res := make([]*ReservationResponse, len(list))
	for i, rm := range list {
		res[i] = FromReservationRM(rm)
	}
	return res
}

type ParticipationResponse struct {
	ID            int64     `json:"id"`
	UserID        string    `json:"user_id"`
	ReservationID int64     `json:"reservation_id"`
	Confirmed     bool      `json:"confirmed"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromParticipationRM(p *readmodel.ParticipationRM) *ParticipationResponse {
	return &ParticipationResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		ReservationID: p.ReservationID,
		Confirmed:     p.Confirmed,
		CreatedAt:     p.CreatedAt,
	}
}

type PlayerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func FromPlayers(users []readmodel.UserRM) []PlayerResponse {
	res := make([]PlayerResponse, len(users))
	for i, u := range users {
		res[i] = PlayerResponse{ID: u.ID, Name: u.Name}
	}
	return res
}
