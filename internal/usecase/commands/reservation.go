package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/pkg/errs"
	"tabletop-reserve/internal/pkg/metrics"
	"tabletop-reserve/internal/pkg/patch"
	"tabletop-reserve/internal/usecase/readmodel"
	"tabletop-reserve/internal/usecase/shared"
)

type CreateReservationInput struct {
	HourStart        time.Time
	HourEnd          time.Time
	Description      string
	RequiredMaterial string
	TotalPlaces      int
	ShopEvent        bool
	DifficultyID     *int64
	// Game is a name fragment or a remote catalog id.
	Game    *string
	TableID *int64
}

// UpdateReservationInput: nil fields are left unchanged.
type UpdateReservationInput struct {
	HourStart        *time.Time
	HourEnd          *time.Time
	Description      *string
	RequiredMaterial *string
	TotalPlaces      *int
	DifficultyID     *int64
	Game             *string
	TableID          *int64
}

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput, shopID int64) (*readmodel.ReservationRM, error)
	Update(ctx context.Context, in UpdateReservationInput, id int64) (*readmodel.ReservationRM, error)
	Delete(ctx context.Context, id int64) error
}

type reservationCommandsImpl struct {
	uow        shared.UnitOfWork
	reads      shared.ReservationReadStore
	games      shared.GameLookupGateway
	dispatcher *shared.Dispatcher
	loc        *time.Location
	logger     *slog.Logger
}

// NewReservationCommands accepts a nil games gateway; unknown games then fail with NotFound.
func NewReservationCommands(
	uow shared.UnitOfWork,
	reads shared.ReservationReadStore,
	games shared.GameLookupGateway,
	dispatcher *shared.Dispatcher,
	loc *time.Location,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:        uow,
		reads:      reads,
		games:      games,
		dispatcher: dispatcher,
		loc:        loc,
		logger:     logger,
	}
}

type resolvedRefs struct {
	difficultyID *int64
	tableID      *int64
}

func (c *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput, shopID int64) (*readmodel.ReservationRM, error) {
	view, shop, err := c.create(ctx, in, shopID)
	if err != nil {
		return nil, shared.Classify(c.logger, "create reservation", err)
	}

	if shop != nil {
		c.announceEvent(ctx, shop, view)
	}
	return view, nil
}

func (c *reservationCommandsImpl) create(ctx context.Context, in CreateReservationInput, shopID int64) (*readmodel.ReservationRM, *readmodel.ShopRM, error) {
	if _, err := reservation.NewTimeSlot(in.HourStart, in.HourEnd); err != nil {
		return nil, nil, shared.BadRequest(err)
	}

	gameID, err := c.resolveGame(ctx, in.Game)
	if err != nil {
		return nil, nil, err
	}

	var (
		shop *readmodel.ShopRM
		id   int64
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		refs, err := resolveDifficultyAndTable(ctx, tx.Catalog(), in.DifficultyID, in.TableID)
		if err != nil {
			return err
		}

		entity, err := reservation.NewReservation(reservation.Draft{
			HourStart:        in.HourStart,
			HourEnd:          in.HourEnd,
			Description:      in.Description,
			RequiredMaterial: in.RequiredMaterial,
			TotalPlaces:      in.TotalPlaces,
			ShopEvent:        in.ShopEvent,
			DifficultyID:     refs.difficultyID,
			GameID:           gameID,
			TableID:          refs.tableID,
		})
		if err != nil {
			return shared.BadRequest(err)
		}

		if entity.IsShopEvent() {
			shop, err = tx.Catalog().ShopByID(ctx, shopID)
			if err != nil {
				return shared.NotFoundOr(err, "Shop not found")
			}
			if err := entity.AssignEvent(c.loc); err != nil {
				return shared.BadRequest(err)
			}
		}

		id, err = tx.Reservations().Create(ctx, entity)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	c.logger.Info("Reservation created", "reservation_id", id, "shop_event", in.ShopEvent, "shop_id", shopID)

	view, err := c.reads.FindByID(ctx, id, readmodel.RelCatalog)
	if err != nil {
		return nil, nil, errs.Wrap(err, "read back created reservation")
	}
	return view, shop, nil
}

func (c *reservationCommandsImpl) Update(ctx context.Context, in UpdateReservationInput, id int64) (*readmodel.ReservationRM, error) {
	view, err := c.update(ctx, in, id)
	if err != nil {
		return nil, shared.Classify(c.logger, "update reservation", err)
	}
	return view, nil
}

func (c *reservationCommandsImpl) update(ctx context.Context, in UpdateReservationInput, id int64) (*readmodel.ReservationRM, error) {
	var gameID *int64
	if in.Game != nil {
		// Missing reservations are reported before anything about the game.
		if _, err := c.reads.FindByID(ctx, id, 0); err != nil {
			return nil, shared.NotFoundOr(err, "reserve %d not found", id)
		}
		var err error
		if gameID, err = c.resolveGame(ctx, in.Game); err != nil {
			return nil, err
		}
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return shared.NotFoundOr(err, "reserve %d not found", id)
		}

		refs, err := resolveDifficultyAndTable(ctx, tx.Catalog(), in.DifficultyID, in.TableID)
		if err != nil {
			return err
		}

		eventKey := eventKeyOf(entity, c.loc)
		if err := entity.Apply(reservation.Changes{
			HourStart:        in.HourStart,
			HourEnd:          in.HourEnd,
			Description:      in.Description,
			RequiredMaterial: in.RequiredMaterial,
			TotalPlaces:      in.TotalPlaces,
			DifficultyID:     refs.difficultyID,
			GameID:           gameID,
			TableID:          refs.tableID,
		}); err != nil {
			return shared.BadRequest(err)
		}

		if entity.IsShopEvent() && eventKeyOf(entity, c.loc) != eventKey {
			if err := entity.AssignEvent(c.loc); err != nil {
				return shared.BadRequest(err)
			}
		}

		return tx.Reservations().Update(ctx, entity)
	})
	if err != nil {
		return nil, err
	}

	view, err := c.reads.FindByID(ctx, id, readmodel.RelCatalog)
	if err != nil {
		return nil, errs.Wrap(err, "read back updated reservation")
	}
	return view, nil
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, id int64) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		affected, err := tx.Reservations().Delete(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errs.NotFound("reserve %d not found", id)
		}
		return nil
	})
	if err != nil {
		return shared.Classify(c.logger, "delete reservation", err)
	}

	c.logger.Info("Reservation deleted", "reservation_id", id)
	return nil
}

// resolveGame tries a local name match, then a local external-id match, then the remote
// catalog. Remote hits are stored locally so the next lookup stays local.
func (c *reservationCommandsImpl) resolveGame(ctx context.Context, value *string) (*int64, error) {
	if value == nil {
		return nil, nil
	}
	ref := strings.TrimSpace(*value)
	if ref == "" {
		return nil, nil
	}

	var local *readmodel.GameRM
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := findLocalGame(ctx, tx.Catalog(), ref)
		local = g
		return err
	})
	if err != nil {
		return nil, err
	}
	if local != nil {
		return &local.ID, nil
	}

	if c.games == nil || !isExternalGameID(ref) {
		return nil, errs.NotFound("Game not found")
	}

	meta, err := c.games.FetchGameByExternalID(ctx, ref)
	if err != nil {
		return nil, errs.Wrapf(err, "fetch game %s from remote catalog", ref)
	}
	if meta == nil {
		return nil, errs.NotFound("Game not found")
	}

	return c.storeRemoteGame(ctx, ref, meta)
}

func (c *reservationCommandsImpl) storeRemoteGame(ctx context.Context, externalID string, meta *shared.GameMetadata) (*int64, error) {
	var id int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Catalog().CreateGame(ctx, readmodel.GameRM{
			Name:         meta.Name,
			Description:  meta.Description,
			CategoryName: meta.CategoryName,
			ExternalID:   &externalID,
		})
		return err
	})
	if infra.IsKind(err, infra.KindDuplicateKey) {
		// Another request stored the same remote game first.
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			g, err := tx.Catalog().FindGameByExternalID(ctx, externalID)
			if err != nil {
				return err
			}
			id = g.ID
			return nil
		})
	}
	if err != nil {
		return nil, err
	}

	c.logger.Info("Game imported from remote catalog", "game_id", id, "external_id", externalID, "name", meta.Name)
	return &id, nil
}

func (c *reservationCommandsImpl) announceEvent(ctx context.Context, shop *readmodel.ShopRM, view *readmodel.ReservationRM) {
	title := fmt.Sprintf("New event at %s", shop.Name)
	body := fmt.Sprintf("%s on %s", view.GameName(), shared.LocalDate(view.HourStart, c.loc))
	c.dispatcher.Topic(ctx, metrics.KindNewEvent, reservation.ShopTopic(shop.ID), title, body,
		patch.Coalesce(shop.LogoURL, ""), "reservation_id", view.ID, "shop_id", shop.ID)
}

func findLocalGame(ctx context.Context, catalog shared.CatalogRepository, ref string) (*readmodel.GameRM, error) {
	g, err := catalog.FindGameByName(ctx, ref)
	if err == nil {
		return g, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	g, err = catalog.FindGameByExternalID(ctx, ref)
	if err == nil {
		return g, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	return nil, nil
}

func resolveDifficultyAndTable(ctx context.Context, catalog shared.CatalogRepository, difficultyID, tableID *int64) (resolvedRefs, error) {
	var refs resolvedRefs
	if difficultyID != nil {
		d, err := catalog.DifficultyByID(ctx, *difficultyID)
		if err != nil {
			return refs, shared.NotFoundOr(err, "Difficulty not found")
		}
		refs.difficultyID = &d.ID
	}
	if tableID != nil {
		t, err := catalog.TableByID(ctx, *tableID)
		if err != nil {
			return refs, shared.NotFoundOr(err, "Table not found")
		}
		refs.tableID = &t.ID
	}
	return refs, nil
}

// eventKeyOf captures the inputs of the event id so updates only re-derive it when needed.
func eventKeyOf(r *reservation.Reservation, loc *time.Location) string {
	return fmt.Sprintf("%v-%v-%s",
		patch.Coalesce(r.GameID(), 0),
		patch.Coalesce(r.TableID(), 0),
		shared.LocalDate(r.TimeSlot().Start(), loc))
}

// Remote catalog ids are numeric; anything else can only be a local name.
func isExternalGameID(ref string) bool {
	_, err := strconv.ParseUint(ref, 10, 64)
	return err == nil
}
