package converter

import (
	"fmt"
	"math"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/pkg/pgconv"
)

func ReservationToCreateParams(res *reservation.Reservation) query.CreateReservationParams {
	slot := res.TimeSlot()
	return query.CreateReservationParams{
		HourStart:        pgconv.TimeToPgtype(slot.Start()),
		HourEnd:          pgconv.TimeToPgtype(slot.End()),
		Description:      res.Description(),
		RequiredMaterial: res.RequiredMaterial(),
		TotalPlaces:      placesToInt32(res.TotalPlaces()),
		ShopEvent:        res.IsShopEvent(),
		EventID:          pgconv.StringPtrToPgtype(res.EventID()),
		DifficultyID:     pgconv.Int64PtrToPgtype(res.DifficultyID()),
		GameID:           pgconv.Int64PtrToPgtype(res.GameID()),
		TableID:          pgconv.Int64PtrToPgtype(res.TableID()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) query.UpdateReservationParams {
	slot := res.TimeSlot()
	return query.UpdateReservationParams{
		ID:               res.ID(),
		HourStart:        pgconv.TimeToPgtype(slot.Start()),
		HourEnd:          pgconv.TimeToPgtype(slot.End()),
		Description:      res.Description(),
		RequiredMaterial: res.RequiredMaterial(),
		TotalPlaces:      placesToInt32(res.TotalPlaces()),
		EventID:          pgconv.StringPtrToPgtype(res.EventID()),
		DifficultyID:     pgconv.Int64PtrToPgtype(res.DifficultyID()),
		GameID:           pgconv.Int64PtrToPgtype(res.GameID()),
		TableID:          pgconv.Int64PtrToPgtype(res.TableID()),
	}
}

// ReservationToDomain trusts the row: the schema enforces the same invariants as the domain.
func ReservationToDomain(row query.Reservation) (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(pgconv.TimeFromPgtype(row.HourStart), pgconv.TimeFromPgtype(row.HourEnd))
	if err != nil {
		return nil, fmt.Errorf("reservation %d has an invalid slot: %w", row.ID, err)
	}

	return reservation.ReconstructReservation(
		row.ID,
		slot,
		row.Description,
		row.RequiredMaterial,
		int(row.TotalPlaces),
		row.ShopEvent,
		pgconv.StringPtrFromPgtype(row.EventID),
		row.ConfirmationNotification,
		pgconv.Int64PtrFromPgtype(row.DifficultyID),
		pgconv.Int64PtrFromPgtype(row.GameID),
		pgconv.Int64PtrFromPgtype(row.TableID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func ParticipationToDomain(row query.UserReservation) *reservation.Participation {
	return reservation.ReconstructParticipation(
		row.ID,
		row.UserID,
		row.ReservationID,
		row.Confirmed,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func ParticipantToDomain(row query.ParticipantRow) reservation.Participant {
	return reservation.Participant{
		UserID:    row.UserID,
		Name:      row.Name,
		Token:     pgconv.StringPtrFromPgtype(row.NotificationToken),
		Confirmed: row.Confirmed,
	}
}

func placesToInt32(places int) int32 {
	if places > math.MaxInt32 {
		panic(fmt.Sprintf("total places out of int32 range: %d", places))
	}
	return int32(places)
}
