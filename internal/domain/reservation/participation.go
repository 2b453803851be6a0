package reservation

import "time"

// Participation links one user to one reservation with that user's own attendance confirmation.
type Participation struct {
	id            int64
	userID        string
	reservationID int64
	confirmed     bool
	createdAt     time.Time
}

func NewParticipation(userID string, reservationID int64, confirmed bool, now time.Time) *Participation {
	return &Participation{
		userID:        userID,
		reservationID: reservationID,
		confirmed:     confirmed,
		createdAt:     now,
	}
}

func ReconstructParticipation(id int64, userID string, reservationID int64, confirmed bool, createdAt time.Time) *Participation {
	return &Participation{
		id:            id,
		userID:        userID,
		reservationID: reservationID,
		confirmed:     confirmed,
		createdAt:     createdAt,
	}
}

func (p *Participation) Confirm() {
	p.confirmed = true
}

func (p *Participation) SetID(id int64) {
	p.id = id
}

func (p *Participation) ID() int64            { return p.id }
func (p *Participation) UserID() string       { return p.userID }
func (p *Participation) ReservationID() int64 { return p.reservationID }
func (p *Participation) Confirmed() bool      { return p.confirmed }
func (p *Participation) CreatedAt() time.Time { return p.createdAt }

// Participant is a user attached to a reservation, as seen by the fan-out logic.
type Participant struct {
	UserID    string
	Name      string
	Token     *string
	Confirmed bool
}

// FanOutTokens returns each registered device token once, in participant order.
// When excludeUserID is set, that user's token is left out even if another
// participant shares it.
func FanOutTokens(participants []Participant, excludeUserID string) []string {
	var excluded string
	if excludeUserID != "" {
		for _, p := range participants {
			if p.UserID == excludeUserID && p.Token != nil {
				excluded = *p.Token
				break
			}
		}
	}

	seen := make(map[string]struct{}, len(participants))
	tokens := make([]string, 0, len(participants))
	for _, p := range participants {
		if p.Token == nil || *p.Token == "" || p.UserID == excludeUserID {
			continue
		}
		t := *p.Token
		if t == excluded {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens
}
