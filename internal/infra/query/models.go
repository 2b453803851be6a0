package query

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Reservation struct {
	ID                       int64
	HourStart                pgtype.Timestamptz
	HourEnd                  pgtype.Timestamptz
	Description              string
	RequiredMaterial         string
	TotalPlaces              int32
	ShopEvent                bool
	EventID                  pgtype.Text
	ConfirmationNotification bool
	DifficultyID             pgtype.Int8
	GameID                   pgtype.Int8
	TableID                  pgtype.Int8
	CreatedAt                pgtype.Timestamptz
	UpdatedAt                pgtype.Timestamptz
}

type UserReservation struct {
	ID            int64
	UserID        string
	ReservationID int64
	Confirmed     bool
	CreatedAt     pgtype.Timestamptz
}

type User struct {
	ID                string
	Name              string
	NotificationToken pgtype.Text
}

type Shop struct {
	ID      int64
	Name    string
	LogoUrl pgtype.Text
}

type Difficulty struct {
	ID   int64
	Name string
}

type Game struct {
	ID           int64
	Name         string
	Description  string
	CategoryName string
	ExternalID   pgtype.Text
}

type TableRow struct {
	ID          int64
	ShopID      int64
	Name        string
	ShopName    string
	ShopLogoUrl pgtype.Text
}

// ReservationDetailRow is a reservation with its catalog associations left-joined in.
type ReservationDetailRow struct {
	Reservation
	DifficultyName   pgtype.Text
	GameName         pgtype.Text
	GameDescription  pgtype.Text
	GameCategoryName pgtype.Text
	GameExternalID   pgtype.Text
	TableName        pgtype.Text
	TableShopID      pgtype.Int8
	ShopName         pgtype.Text
	ShopLogoUrl      pgtype.Text
}

type ParticipantRow struct {
	ReservationID     int64
	UserID            string
	Name              string
	NotificationToken pgtype.Text
	Confirmed         bool
}
