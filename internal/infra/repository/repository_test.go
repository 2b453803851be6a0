//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/infra/query"
	"tabletop-reserve/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQueries struct {
	mock.Mock
}

func (m *MockQueries) GetUser(ctx context.Context, db query.DBTX, id string) (query.User, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.User), args.Error(1)
}

func (m *MockQueries) CreateUserReservation(ctx context.Context, db query.DBTX, arg query.CreateUserReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) GetUserReservation(ctx context.Context, db query.DBTX, userID string, reservationID int64) (query.UserReservation, error) {
	args := m.Called(ctx, db, userID, reservationID)
	return args.Get(0).(query.UserReservation), args.Error(1)
}

func (m *MockQueries) UpdateUserReservationConfirmed(ctx context.Context, db query.DBTX, id int64, confirmed bool) (int64, error) {
	args := m.Called(ctx, db, id, confirmed)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) DeleteUserReservation(ctx context.Context, db query.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) ListParticipants(ctx context.Context, db query.DBTX, reservationIDs []int64) ([]query.ParticipantRow, error) {
	args := m.Called(ctx, db, reservationIDs)
	return args.Get(0).([]query.ParticipantRow), args.Error(1)
}

func (m *MockQueries) CreateReservation(ctx context.Context, db query.DBTX, arg query.CreateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) UpdateReservation(ctx context.Context, db query.DBTX, arg query.UpdateReservationParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) DeleteReservation(ctx context.Context, db query.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQueries) GetReservationForUpdate(ctx context.Context, db query.DBTX, id int64) (query.Reservation, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(query.Reservation), args.Error(1)
}

func (m *MockQueries) MarkUpcomingNotified(ctx context.Context, db query.DBTX, id int64) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestUserRepository_FindByID(t *testing.T) {
	token := "token-ana"

	tests := []struct {
		name       string
		mockReturn query.User
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			mockReturn: query.User{ID: "ana", Name: "Ana", NotificationToken: pgconv.StringPtrToPgtype(&token)},
		},
		{
			name:       "user not found",
			mockReturn: query.User{},
			mockError:  pgx.ErrNoRows,
			wantKind:   infra.KindNotFound,
		},
		{
			name:       "database error",
			mockReturn: query.User{},
			mockError:  assert.AnError,
			wantKind:   infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockQueries)
			mockQueries.On("GetUser", mock.Anything, mock.Anything, "ana").Return(tt.mockReturn, tt.mockError)

			repo := &UserRepository{queries: mockQueries}
			user, err := repo.FindByID(context.Background(), "ana")

			if tt.wantKind != "" {
				assert.Nil(t, user)
				assert.True(t, infra.IsKind(err, tt.wantKind), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Ana", user.Name)
				require.NotNil(t, user.NotificationToken)
				assert.Equal(t, token, *user.NotificationToken)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestParticipationRepository_Create(t *testing.T) {
	p := reservation.NewParticipation("ana", 7, true, time.Date(2030, time.March, 1, 9, 0, 0, 0, time.UTC))

	t.Run("returns the new id", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("CreateUserReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(arg query.CreateUserReservationParams) bool {
			return arg.UserID == "ana" && arg.ReservationID == 7 && arg.Confirmed
		})).Return(int64(12), nil)

		repo := &ParticipationRepository{queries: mockQueries}
		id, err := repo.Create(context.Background(), p)

		require.NoError(t, err)
		assert.Equal(t, int64(12), id)
		mockQueries.AssertExpectations(t)
	})

	t.Run("unique violation is a duplicate key", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("CreateUserReservation", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "user_reservations_user_id_reservation_id_key"})

		repo := &ParticipationRepository{queries: mockQueries}
		_, err := repo.Create(context.Background(), p)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("missing user is a foreign key violation", func(t *testing.T) {
		mockQueries := new(MockQueries)
		mockQueries.On("CreateUserReservation", mock.Anything, mock.Anything, mock.Anything).
			Return(int64(0), &pgconn.PgError{Code: "23503"})

		repo := &ParticipationRepository{queries: mockQueries}
		_, err := repo.Create(context.Background(), p)

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}

func TestParticipationRepository_Find(t *testing.T) {
	mockQueries := new(MockQueries)
	mockQueries.On("GetUserReservation", mock.Anything, mock.Anything, "ana", int64(7)).
		Return(query.UserReservation{ID: 3, UserID: "ana", ReservationID: 7, Confirmed: false}, nil)
	mockQueries.On("GetUserReservation", mock.Anything, mock.Anything, "bob", int64(7)).
		Return(query.UserReservation{}, pgx.ErrNoRows)

	repo := &ParticipationRepository{queries: mockQueries}

	p, err := repo.Find(context.Background(), "ana", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.ID())
	assert.False(t, p.Confirmed())

	_, err = repo.Find(context.Background(), "bob", 7)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestParticipationRepository_ZeroRowsAffected(t *testing.T) {
	mockQueries := new(MockQueries)
	mockQueries.On("DeleteUserReservation", mock.Anything, mock.Anything, int64(3)).Return(int64(0), nil)

	repo := &ParticipationRepository{queries: mockQueries}
	err := repo.Delete(context.Background(), 3)

	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReservationRepository_Update(t *testing.T) {
	start := time.Date(2030, time.March, 14, 18, 0, 0, 0, time.UTC)
	row := query.Reservation{
		ID:          5,
		HourStart:   pgconv.TimeToPgtype(start),
		HourEnd:     pgconv.TimeToPgtype(start.Add(2 * time.Hour)),
		Description: "Friday campaign night",
		TotalPlaces: 4,
		GameID:      pgtype.Int8{Int64: 3, Valid: true},
	}

	mockQueries := new(MockQueries)
	mockQueries.On("GetReservationForUpdate", mock.Anything, mock.Anything, int64(5)).Return(row, nil)
	mockQueries.On("UpdateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(arg query.UpdateReservationParams) bool {
		return arg.ID == 5
	})).Return(int64(0), nil)

	repo := &ReservationRepository{queries: mockQueries}
	res, err := repo.FindByIDForUpdate(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.ID())
	require.NotNil(t, res.GameID())
	assert.Equal(t, int64(3), *res.GameID())

	err = repo.Update(context.Background(), res)
	assert.True(t, infra.IsKind(err, infra.KindNotFound), "deleted between lock and write")
	mockQueries.AssertExpectations(t)
}

func TestReservationRepository_MarkUpcomingNotified(t *testing.T) {
	mockQueries := new(MockQueries)
	mockQueries.On("MarkUpcomingNotified", mock.Anything, mock.Anything, int64(5)).Return(int64(1), nil).Once()
	mockQueries.On("MarkUpcomingNotified", mock.Anything, mock.Anything, int64(5)).Return(int64(0), nil).Once()

	repo := &ReservationRepository{queries: mockQueries}

	claimed, err := repo.MarkUpcomingNotified(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.MarkUpcomingNotified(context.Background(), 5)
	require.NoError(t, err)
	assert.False(t, claimed, "already flagged by another run")
}
