package shared

import (
	"context"
	"time"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/usecase/readmodel"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	Participations() ParticipationRepository
	Catalog() CatalogRepository
	Users() UserRepository
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (int64, error)
	Update(ctx context.Context, res *reservation.Reservation) error
	Delete(ctx context.Context, id int64) (int64, error)
	// FindByIDForUpdate locks the row until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*reservation.Reservation, error)
	// MarkUpcomingNotified flips the flag only when it is still false and reports whether it did.
	MarkUpcomingNotified(ctx context.Context, id int64) (bool, error)
}

type ParticipationRepository interface {
	Create(ctx context.Context, p *reservation.Participation) (int64, error)
	Find(ctx context.Context, userID string, reservationID int64) (*reservation.Participation, error)
	UpdateConfirmed(ctx context.Context, p *reservation.Participation) error
	Delete(ctx context.Context, id int64) error
	ListParticipants(ctx context.Context, reservationID int64) ([]reservation.Participant, error)
}

type CatalogRepository interface {
	DifficultyByID(ctx context.Context, id int64) (*readmodel.DifficultyRM, error)
	TableByID(ctx context.Context, id int64) (*readmodel.TableRM, error)
	ShopByID(ctx context.Context, id int64) (*readmodel.ShopRM, error)
	// FindGameByName matches a case-insensitive substring of the game name.
	FindGameByName(ctx context.Context, fragment string) (*readmodel.GameRM, error)
	FindGameByExternalID(ctx context.Context, externalID string) (*readmodel.GameRM, error)
	CreateGame(ctx context.Context, game readmodel.GameRM) (int64, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*readmodel.UserRM, error)
}

// ReservationReadStore serves reads outside of a transaction.
type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64, rels readmodel.Relations) (*readmodel.ReservationRM, error)
	FindAll(ctx context.Context) ([]*readmodel.ReservationRM, error)
	FindByTableStartingBetween(ctx context.Context, tableID int64, from, to time.Time) ([]*readmodel.ReservationRM, error)
	FindShopEventsStartingAfter(ctx context.Context, shopID int64, after time.Time) ([]*readmodel.ReservationRM, error)
	FindStartingBetween(ctx context.Context, from, to time.Time, rels readmodel.Relations) ([]*readmodel.ReservationRM, error)
	FindByUserEndingAfter(ctx context.Context, userID string, after time.Time) ([]*readmodel.ReservationRM, error)
	// FindRecentCoPlayers returns other users' participations in reservations shared with
	// userID, newest reservation first, at most limit rows; users may repeat.
	FindRecentCoPlayers(ctx context.Context, userID string, limit int) ([]readmodel.UserRM, error)
}

type CatalogReadStore interface {
	ShopByID(ctx context.Context, id int64) (*readmodel.ShopRM, error)
	UserByID(ctx context.Context, id string) (*readmodel.UserRM, error)
	ParticipationByKey(ctx context.Context, userID string, reservationID int64) (*readmodel.ParticipationRM, error)
}
