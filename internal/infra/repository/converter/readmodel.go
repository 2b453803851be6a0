package converter

import (
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/pkg/pgconv"
	"tabletop-reserve/internal/usecase/readmodel"
)

func ReservationDetailToReadModel(row query.ReservationDetailRow, rels readmodel.Relations) *readmodel.ReservationRM {
	r := row.Reservation
	rm := &readmodel.ReservationRM{
		ID:               r.ID,
		HourStart:        pgconv.TimeFromPgtype(r.HourStart),
		HourEnd:          pgconv.TimeFromPgtype(r.HourEnd),
		Description:      r.Description,
		RequiredMaterial: r.RequiredMaterial,
		TotalPlaces:      int(r.TotalPlaces),
		ShopEvent:        r.ShopEvent,
		EventID:          pgconv.StringPtrFromPgtype(r.EventID),
		UpcomingNotified: r.ConfirmationNotification,
		CreatedAt:        pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(r.UpdatedAt),
	}
	if !rels.Has(readmodel.RelCatalog) {
		return rm
	}

	if r.DifficultyID.Valid && row.DifficultyName.Valid {
		rm.Difficulty = &readmodel.DifficultyRM{ID: r.DifficultyID.Int64, Name: row.DifficultyName.String}
	}
	if r.GameID.Valid && row.GameName.Valid {
		rm.Game = &readmodel.GameRM{
			ID:           r.GameID.Int64,
			Name:         row.GameName.String,
			Description:  row.GameDescription.String,
			CategoryName: row.GameCategoryName.String,
			ExternalID:   pgconv.StringPtrFromPgtype(row.GameExternalID),
		}
	}
	if r.TableID.Valid && row.TableName.Valid {
		rm.Table = &readmodel.TableRM{
			ID:     r.TableID.Int64,
			Name:   row.TableName.String,
			ShopID: row.TableShopID.Int64,
		}
		if row.ShopName.Valid {
			rm.Table.Shop = &readmodel.ShopRM{
				ID:      row.TableShopID.Int64,
				Name:    row.ShopName.String,
				LogoURL: pgconv.StringPtrFromPgtype(row.ShopLogoUrl),
			}
		}
	}
	return rm
}

func GameToReadModel(row query.Game) *readmodel.GameRM {
	return &readmodel.GameRM{
		ID:           row.ID,
		Name:         row.Name,
		Description:  row.Description,
		CategoryName: row.CategoryName,
		ExternalID:   pgconv.StringPtrFromPgtype(row.ExternalID),
	}
}

func TableToReadModel(row query.TableRow) *readmodel.TableRM {
	return &readmodel.TableRM{
		ID:     row.ID,
		Name:   row.Name,
		ShopID: row.ShopID,
		Shop: &readmodel.ShopRM{
			ID:      row.ShopID,
			Name:    row.ShopName,
			LogoURL: pgconv.StringPtrFromPgtype(row.ShopLogoUrl),
		},
	}
}

func ShopToReadModel(row query.Shop) *readmodel.ShopRM {
	return &readmodel.ShopRM{
		ID:      row.ID,
		Name:    row.Name,
		LogoURL: pgconv.StringPtrFromPgtype(row.LogoUrl),
	}
}

func UserToReadModel(row query.User) *readmodel.UserRM {
	return &readmodel.UserRM{
		ID:                row.ID,
		Name:              row.Name,
		NotificationToken: pgconv.StringPtrFromPgtype(row.NotificationToken),
	}
}

func ParticipationToReadModel(row query.UserReservation) *readmodel.ParticipationRM {
	return &readmodel.ParticipationRM{
		ID:            row.ID,
		UserID:        row.UserID,
		ReservationID: row.ReservationID,
		Confirmed:     row.Confirmed,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
