//go:build unit

// Package sharedtest holds an in-memory implementation of the persistence ports. Writes inside
// Within are applied to a working copy that only replaces the committed state when fn succeeds.
package sharedtest

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/usecase/readmodel"
	"tabletop-reserve/internal/usecase/shared"
)

type state struct {
	nextID         int64
	reservations   map[int64]reservation.Reservation
	participations map[int64]reservation.Participation
	users          map[string]readmodel.UserRM
	shops          map[int64]readmodel.ShopRM
	tables         map[int64]readmodel.TableRM
	difficulties   map[int64]readmodel.DifficultyRM
	games          map[int64]readmodel.GameRM
}

func (s *state) clone() *state {
	return &state{
		nextID:         s.nextID,
		reservations:   maps.Clone(s.reservations),
		participations: maps.Clone(s.participations),
		users:          maps.Clone(s.users),
		shops:          maps.Clone(s.shops),
		tables:         maps.Clone(s.tables),
		difficulties:   maps.Clone(s.difficulties),
		games:          maps.Clone(s.games),
	}
}

func (s *state) id() int64 {
	s.nextID++
	return s.nextID
}

type Store struct {
	mu       sync.Mutex
	st       *state
	failures map[string]error
	// Commits counts successful Within calls.
	Commits int
}

var (
	_ shared.UnitOfWork           = (*Store)(nil)
	_ shared.ReservationReadStore = (*Store)(nil)
	_ shared.CatalogReadStore     = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		st: &state{
			reservations:   map[int64]reservation.Reservation{},
			participations: map[int64]reservation.Participation{},
			users:          map[string]readmodel.UserRM{},
			shops:          map[int64]readmodel.ShopRM{},
			tables:         map[int64]readmodel.TableRM{},
			difficulties:   map[int64]readmodel.DifficultyRM{},
			games:          map[int64]readmodel.GameRM{},
		},
		failures: map[string]error{},
	}
}

// FailNext makes the next call of op return err. Ops are named "<port>.<Method>",
// e.g. "Reservations.MarkUpcomingNotified" or "Reads.FindAll".
func (s *Store) FailNext(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

// takeFailure expects s.mu to be held.
func (s *Store) takeFailure(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

// ---- seeding ----

func (s *Store) AddUser(id, name string, token *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[id] = readmodel.UserRM{ID: id, Name: name, NotificationToken: token}
}

func (s *Store) AddShop(name string, logoURL *string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.id()
	s.st.shops[id] = readmodel.ShopRM{ID: id, Name: name, LogoURL: logoURL}
	return id
}

func (s *Store) AddTable(shopID int64, name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.id()
	s.st.tables[id] = readmodel.TableRM{ID: id, Name: name, ShopID: shopID}
	return id
}

func (s *Store) AddDifficulty(name string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.id()
	s.st.difficulties[id] = readmodel.DifficultyRM{ID: id, Name: name}
	return id
}

func (s *Store) AddGame(name string, externalID *string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.id()
	s.st.games[id] = readmodel.GameRM{ID: id, Name: name, ExternalID: externalID}
	return id
}

// AddReservation stores r as-is and returns its new id.
func (s *Store) AddReservation(r *reservation.Reservation) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.id()
	r.SetID(id)
	s.st.reservations[id] = *r
	return id
}

func (s *Store) AddParticipation(userID string, reservationID int64, confirmed bool) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.st.id()
	p := reservation.ReconstructParticipation(id, userID, reservationID, confirmed, time.Time{})
	s.st.participations[id] = *p
	return id
}

// ---- inspection ----

func (s *Store) Reservation(id int64) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.st.reservations[id]
	return &r, ok
}

func (s *Store) ReservationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.reservations)
}

func (s *Store) GameCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.games)
}

func (s *Store) Participation(userID string, reservationID int64) (*reservation.Participation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := findParticipation(s.st, userID, reservationID)
	return p, ok
}

// ---- UnitOfWork ----

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &memTx{store: s, st: work}); err != nil {
		return err
	}
	s.st = work
	s.Commits++
	return nil
}

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Reservations() shared.ReservationRepository     { return &memReservations{t} }
func (t *memTx) Participations() shared.ParticipationRepository { return &memParticipations{t} }
func (t *memTx) Catalog() shared.CatalogRepository              { return &memCatalog{t} }
func (t *memTx) Users() shared.UserRepository                   { return &memUsers{t} }

type memReservations struct{ *memTx }

func (r *memReservations) Create(_ context.Context, res *reservation.Reservation) (int64, error) {
	if err := r.store.takeFailure("Reservations.Create"); err != nil {
		return 0, err
	}
	id := r.st.id()
	res.SetID(id)
	r.st.reservations[id] = *res
	return id, nil
}

func (r *memReservations) Update(_ context.Context, res *reservation.Reservation) error {
	if err := r.store.takeFailure("Reservations.Update"); err != nil {
		return err
	}
	if _, ok := r.st.reservations[res.ID()]; !ok {
		return infra.NotFound("reservation not found")
	}
	r.st.reservations[res.ID()] = *res
	return nil
}

func (r *memReservations) Delete(_ context.Context, id int64) (int64, error) {
	if err := r.store.takeFailure("Reservations.Delete"); err != nil {
		return 0, err
	}
	if _, ok := r.st.reservations[id]; !ok {
		return 0, nil
	}
	delete(r.st.reservations, id)
	for pid, p := range r.st.participations {
		if p.ReservationID() == id {
			delete(r.st.participations, pid)
		}
	}
	return 1, nil
}

func (r *memReservations) FindByIDForUpdate(_ context.Context, id int64) (*reservation.Reservation, error) {
	if err := r.store.takeFailure("Reservations.FindByIDForUpdate"); err != nil {
		return nil, err
	}
	res, ok := r.st.reservations[id]
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return &res, nil
}

func (r *memReservations) MarkUpcomingNotified(_ context.Context, id int64) (bool, error) {
	if err := r.store.takeFailure("Reservations.MarkUpcomingNotified"); err != nil {
		return false, err
	}
	res, ok := r.st.reservations[id]
	if !ok {
		return false, nil
	}
	claimed := res.MarkUpcomingNotified()
	r.st.reservations[id] = res
	return claimed, nil
}

type memParticipations struct{ *memTx }

func (p *memParticipations) Create(_ context.Context, part *reservation.Participation) (int64, error) {
	if err := p.store.takeFailure("Participations.Create"); err != nil {
		return 0, err
	}
	if _, ok := p.st.reservations[part.ReservationID()]; !ok {
		return 0, infra.WrapRepoErr("reservation missing", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := findParticipation(p.st, part.UserID(), part.ReservationID()); ok {
		return 0, infra.WrapRepoErr("participation exists", nil, infra.KindDuplicateKey)
	}
	id := p.st.id()
	part.SetID(id)
	p.st.participations[id] = *part
	return id, nil
}

func (p *memParticipations) Find(_ context.Context, userID string, reservationID int64) (*reservation.Participation, error) {
	part, ok := findParticipation(p.st, userID, reservationID)
	if !ok {
		return nil, infra.NotFound("participation not found")
	}
	return part, nil
}

func (p *memParticipations) UpdateConfirmed(_ context.Context, part *reservation.Participation) error {
	if _, ok := p.st.participations[part.ID()]; !ok {
		return infra.NotFound("participation not found")
	}
	p.st.participations[part.ID()] = *part
	return nil
}

func (p *memParticipations) Delete(_ context.Context, id int64) error {
	delete(p.st.participations, id)
	return nil
}

func (p *memParticipations) ListParticipants(_ context.Context, reservationID int64) ([]reservation.Participant, error) {
	if err := p.store.takeFailure("Participations.ListParticipants"); err != nil {
		return nil, err
	}
	return participantsOf(p.st, reservationID), nil
}

type memCatalog struct{ *memTx }

func (c *memCatalog) DifficultyByID(_ context.Context, id int64) (*readmodel.DifficultyRM, error) {
	d, ok := c.st.difficulties[id]
	if !ok {
		return nil, infra.NotFound("difficulty not found")
	}
	return &d, nil
}

func (c *memCatalog) TableByID(_ context.Context, id int64) (*readmodel.TableRM, error) {
	t, ok := tableWithShop(c.st, id)
	if !ok {
		return nil, infra.NotFound("table not found")
	}
	return t, nil
}

func (c *memCatalog) ShopByID(_ context.Context, id int64) (*readmodel.ShopRM, error) {
	sh, ok := c.st.shops[id]
	if !ok {
		return nil, infra.NotFound("shop not found")
	}
	return &sh, nil
}

func (c *memCatalog) FindGameByName(_ context.Context, fragment string) (*readmodel.GameRM, error) {
	needle := strings.ToLower(fragment)
	var matches []readmodel.GameRM
	for _, g := range c.st.games {
		if strings.Contains(strings.ToLower(g.Name), needle) {
			matches = append(matches, g)
		}
	}
	if len(matches) == 0 {
		return nil, infra.NotFound("game not found")
	}
	slices.SortFunc(matches, func(a, b readmodel.GameRM) int {
		return cmp.Or(cmp.Compare(len(a.Name), len(b.Name)), cmp.Compare(a.ID, b.ID))
	})
	return &matches[0], nil
}

func (c *memCatalog) FindGameByExternalID(_ context.Context, externalID string) (*readmodel.GameRM, error) {
	for _, g := range c.st.games {
		if g.ExternalID != nil && *g.ExternalID == externalID {
			return &g, nil
		}
	}
	return nil, infra.NotFound("game not found")
}

func (c *memCatalog) CreateGame(_ context.Context, game readmodel.GameRM) (int64, error) {
	if err := c.store.takeFailure("Catalog.CreateGame"); err != nil {
		return 0, err
	}
	if game.ExternalID != nil {
		for _, g := range c.st.games {
			if g.ExternalID != nil && *g.ExternalID == *game.ExternalID {
				return 0, infra.WrapRepoErr("game exists", nil, infra.KindDuplicateKey)
			}
		}
	}
	game.ID = c.st.id()
	c.st.games[game.ID] = game
	return game.ID, nil
}

type memUsers struct{ *memTx }

func (u *memUsers) FindByID(_ context.Context, id string) (*readmodel.UserRM, error) {
	user, ok := u.st.users[id]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return &user, nil
}

// ---- read stores ----

func (s *Store) FindByID(_ context.Context, id int64, rels readmodel.Relations) (*readmodel.ReservationRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure("Reads.FindByID"); err != nil {
		return nil, err
	}
	res, ok := s.st.reservations[id]
	if !ok {
		return nil, infra.NotFound("reservation not found")
	}
	return toReadModel(s.st, &res, rels), nil
}

func (s *Store) FindAll(_ context.Context) ([]*readmodel.ReservationRM, error) {
	return s.list("Reads.FindAll", readmodel.RelCatalog, func(*reservation.Reservation) bool { return true })
}

func (s *Store) FindByTableStartingBetween(_ context.Context, tableID int64, from, to time.Time) ([]*readmodel.ReservationRM, error) {
	return s.list("Reads.FindByTableStartingBetween", readmodel.RelCatalog, func(r *reservation.Reservation) bool {
		return r.TableID() != nil && *r.TableID() == tableID && r.TimeSlot().StartsWithin(from, to)
	})
}

func (s *Store) FindShopEventsStartingAfter(_ context.Context, shopID int64, after time.Time) ([]*readmodel.ReservationRM, error) {
	s.mu.Lock()
	tables := maps.Clone(s.st.tables)
	s.mu.Unlock()

	return s.list("Reads.FindShopEventsStartingAfter", readmodel.RelCatalog, func(r *reservation.Reservation) bool {
		if !r.IsShopEvent() || r.EventID() == nil || r.TableID() == nil {
			return false
		}
		t, ok := tables[*r.TableID()]
		return ok && t.ShopID == shopID && r.TimeSlot().Start().After(after)
	})
}

func (s *Store) FindStartingBetween(_ context.Context, from, to time.Time, rels readmodel.Relations) ([]*readmodel.ReservationRM, error) {
	return s.list("Reads.FindStartingBetween", rels, func(r *reservation.Reservation) bool {
		return r.TimeSlot().StartsWithin(from, to)
	})
}

func (s *Store) FindByUserEndingAfter(_ context.Context, userID string, after time.Time) ([]*readmodel.ReservationRM, error) {
	s.mu.Lock()
	joined := map[int64]bool{}
	for _, p := range s.st.participations {
		if p.UserID() == userID {
			joined[p.ReservationID()] = true
		}
	}
	s.mu.Unlock()

	return s.list("Reads.FindByUserEndingAfter", readmodel.RelCatalog, func(r *reservation.Reservation) bool {
		return joined[r.ID()] && r.TimeSlot().EndsAfter(after)
	})
}

func (s *Store) FindRecentCoPlayers(_ context.Context, userID string, limit int) ([]readmodel.UserRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type row struct {
		start time.Time
		id    int64
		user  readmodel.UserRM
	}
	var rows []row
	for _, mine := range s.st.participations {
		if mine.UserID() != userID {
			continue
		}
		res, ok := s.st.reservations[mine.ReservationID()]
		if !ok {
			continue
		}
		for _, other := range s.st.participations {
			if other.ReservationID() != mine.ReservationID() || other.UserID() == userID {
				continue
			}
			rows = append(rows, row{start: res.TimeSlot().Start(), id: other.ID(), user: s.st.users[other.UserID()]})
		}
	}
	slices.SortFunc(rows, func(a, b row) int {
		return cmp.Or(b.start.Compare(a.start), cmp.Compare(b.id, a.id))
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}

	result := make([]readmodel.UserRM, len(rows))
	for i, r := range rows {
		result[i] = r.user
	}
	return result, nil
}

func (s *Store) ShopByID(_ context.Context, id int64) (*readmodel.ShopRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.st.shops[id]
	if !ok {
		return nil, infra.NotFound("shop not found")
	}
	return &sh, nil
}

func (s *Store) UserByID(_ context.Context, id string) (*readmodel.UserRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[id]
	if !ok {
		return nil, infra.NotFound("user not found")
	}
	return &u, nil
}

func (s *Store) ParticipationByKey(_ context.Context, userID string, reservationID int64) (*readmodel.ParticipationRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := findParticipation(s.st, userID, reservationID)
	if !ok {
		return nil, infra.NotFound("participation not found")
	}
	return &readmodel.ParticipationRM{
		ID:            p.ID(),
		UserID:        p.UserID(),
		ReservationID: p.ReservationID(),
		Confirmed:     p.Confirmed(),
		CreatedAt:     p.CreatedAt(),
	}, nil
}

func (s *Store) list(op string, rels readmodel.Relations, keep func(*reservation.Reservation) bool) ([]*readmodel.ReservationRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(op); err != nil {
		return nil, err
	}

	var matched []reservation.Reservation
	for _, r := range s.st.reservations {
		if keep(&r) {
			matched = append(matched, r)
		}
	}
	slices.SortFunc(matched, func(a, b reservation.Reservation) int {
		return cmp.Or(a.TimeSlot().Start().Compare(b.TimeSlot().Start()), cmp.Compare(a.ID(), b.ID()))
	})

	result := make([]*readmodel.ReservationRM, len(matched))
	for i := range matched {
		result[i] = toReadModel(s.st, &matched[i], rels)
	}
	return result, nil
}

// ---- helpers ----

func findParticipation(st *state, userID string, reservationID int64) (*reservation.Participation, bool) {
	for _, p := range st.participations {
		if p.UserID() == userID && p.ReservationID() == reservationID {
			return &p, true
		}
	}
	return nil, false
}

func participantsOf(st *state, reservationID int64) []reservation.Participant {
	var parts []reservation.Participation
	for _, p := range st.participations {
		if p.ReservationID() == reservationID {
			parts = append(parts, p)
		}
	}
	slices.SortFunc(parts, func(a, b reservation.Participation) int { return cmp.Compare(a.ID(), b.ID()) })

	result := make([]reservation.Participant, len(parts))
	for i, p := range parts {
		u := st.users[p.UserID()]
		result[i] = reservation.Participant{
			UserID:    p.UserID(),
			Name:      u.Name,
			Token:     u.NotificationToken,
			Confirmed: p.Confirmed(),
		}
	}
	return result
}

func tableWithShop(st *state, id int64) (*readmodel.TableRM, bool) {
	t, ok := st.tables[id]
	if !ok {
		return nil, false
	}
	if sh, ok := st.shops[t.ShopID]; ok {
		t.Shop = &sh
	}
	return &t, true
}

func toReadModel(st *state, r *reservation.Reservation, rels readmodel.Relations) *readmodel.ReservationRM {
	rm := &readmodel.ReservationRM{
		ID:               r.ID(),
		HourStart:        r.TimeSlot().Start(),
		HourEnd:          r.TimeSlot().End(),
		Description:      r.Description(),
		RequiredMaterial: r.RequiredMaterial(),
		TotalPlaces:      r.TotalPlaces(),
		ShopEvent:        r.IsShopEvent(),
		EventID:          r.EventID(),
		UpcomingNotified: r.UpcomingNotified(),
		CreatedAt:        r.CreatedAt(),
		UpdatedAt:        r.UpdatedAt(),
	}
	if rels.Has(readmodel.RelCatalog) {
		if id := r.DifficultyID(); id != nil {
			if d, ok := st.difficulties[*id]; ok {
				rm.Difficulty = &d
			}
		}
		if id := r.GameID(); id != nil {
			if g, ok := st.games[*id]; ok {
				rm.Game = &g
			}
		}
		if id := r.TableID(); id != nil {
			if t, ok := tableWithShop(st, *id); ok {
				rm.Table = t
			}
		}
	}
	if rels.Has(readmodel.RelParticipants) {
		rm.Participants = participantsOf(st, r.ID())
	}
	return rm
}
