//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tabletop-reserve/internal/pkg/clock"
	"tabletop-reserve/internal/pkg/errs"
	"tabletop-reserve/internal/pkg/metrics"
	"tabletop-reserve/internal/usecase/commands"
	"tabletop-reserve/internal/usecase/shared"
	"tabletop-reserve/internal/usecase/shared/sharedtest"
	"tabletop-reserve/tests/common/builder"
	sharedmock "tabletop-reserve/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParticipationCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *sharedtest.Store
	mockCtrl *gomock.Controller
	notifier *sharedmock.MockNotificationGateway
	cmds     commands.ParticipationCommands

	reserveID int64
}

func (s *ParticipationCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	loc, err := time.LoadLocation("Europe/Madrid")
	s.Require().NoError(err)

	s.store = sharedtest.NewStore()
	s.store.AddUser("ana", "Ana", ptr("token-ana"))
	s.store.AddUser("bob", "Bob", ptr("token-bob"))
	s.store.AddUser("cleo", "Cleo", nil)
	s.store.AddUser("dan", "Dan", ptr("token-ana"))
	s.reserveID = s.store.AddReservation(builder.NewReservationBuilder().
		WithSlot(time.Date(2030, time.March, 14, 18, 0, 0, 0, time.UTC), 2*time.Hour).
		BuildDomain())

	s.mockCtrl = gomock.NewController(s.T())
	s.notifier = sharedmock.NewMockNotificationGateway(s.mockCtrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := shared.NewDispatcher(s.notifier, metrics.NewNop(), logger)
	clk := clock.NewMockClock(time.Date(2030, time.March, 1, 9, 0, 0, 0, time.UTC))
	s.cmds = commands.NewParticipationCommands(s.store, dispatcher, clk, loc, logger)
}

func (s *ParticipationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParticipationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ParticipationCommandsTestSuite))
}

// ================================================================================
// AddUserToReserve
// ================================================================================

func (s *ParticipationCommandsTestSuite) TestAddUserToReserve() {
	s.Run("first player joins silently", func() {
		p, err := s.cmds.AddUserToReserve(s.ctx, "ana", s.reserveID, false)
		s.Require().NoError(err)

		s.Equal("ana", p.UserID)
		s.Equal(s.reserveID, p.ReservationID)
		s.False(p.Confirmed)
		s.Equal(time.Date(2030, time.March, 1, 9, 0, 0, 0, time.UTC), p.CreatedAt)
	})

	s.Run("earlier participants are notified, the joiner is not", func() {
		s.notifier.EXPECT().
			SendMulticast(gomock.Any(), []string{"token-ana"}, "New player", "Bob joined your reservation on 14/03/2030 19:00").
			Return(nil)

		p, err := s.cmds.AddUserToReserve(s.ctx, "bob", s.reserveID, true)
		s.Require().NoError(err)
		s.True(p.Confirmed)
	})

	s.Run("joining twice is a conflict", func() {
		_, err := s.cmds.AddUserToReserve(s.ctx, "ana", s.reserveID, false)
		s.True(errs.Is(err, errs.ErrConflict), "got %v", err)
	})

	s.Run("unknown user", func() {
		_, err := s.cmds.AddUserToReserve(s.ctx, "ghost", s.reserveID, false)
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("unknown reservation", func() {
		_, err := s.cmds.AddUserToReserve(s.ctx, "cleo", 999, false)
		s.True(errs.Is(err, errs.ErrNotFound))
		_, joined := s.store.Participation("cleo", 999)
		s.False(joined)
	})

	s.Run("failed push does not fail the join", func() {
		s.notifier.EXPECT().SendMulticast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		_, err := s.cmds.AddUserToReserve(s.ctx, "cleo", s.reserveID, false)
		s.Require().NoError(err)
		_, joined := s.store.Participation("cleo", s.reserveID)
		s.True(joined)
	})
}

// ================================================================================
// ConfirmReserveForUser
// ================================================================================

func (s *ParticipationCommandsTestSuite) TestConfirmReserveForUser() {
	s.Run("not joined is a failed precondition", func() {
		_, err := s.cmds.ConfirmReserveForUser(s.ctx, "ana", s.reserveID)
		s.True(errs.Is(err, errs.ErrPreconditionFailed), "got %v", err)
	})

	s.Run("confirms the participation", func() {
		s.store.AddParticipation("ana", s.reserveID, false)

		p, err := s.cmds.ConfirmReserveForUser(s.ctx, "ana", s.reserveID)
		s.Require().NoError(err)
		s.True(p.Confirmed)

		stored, _ := s.store.Participation("ana", s.reserveID)
		s.True(stored.Confirmed())
	})

	s.Run("confirming again is harmless", func() {
		p, err := s.cmds.ConfirmReserveForUser(s.ctx, "ana", s.reserveID)
		s.Require().NoError(err)
		s.True(p.Confirmed)
	})
}

// ================================================================================
// DeleteReserveFromUser
// ================================================================================

func (s *ParticipationCommandsTestSuite) TestDeleteReserveFromUser() {
	s.Run("not joined is a failed precondition", func() {
		err := s.cmds.DeleteReserveFromUser(s.ctx, "bob", s.reserveID)
		s.True(errs.Is(err, errs.ErrPreconditionFailed))
	})

	s.Run("remaining players are told who left", func() {
		s.store.AddParticipation("ana", s.reserveID, true)
		s.store.AddParticipation("bob", s.reserveID, true)
		s.store.AddParticipation("cleo", s.reserveID, false)

		s.notifier.EXPECT().
			SendMulticast(gomock.Any(), []string{"token-bob"}, "Player left", "Ana left your reservation on 14/03/2030 19:00").
			Return(nil)

		s.Require().NoError(s.cmds.DeleteReserveFromUser(s.ctx, "ana", s.reserveID))
		_, joined := s.store.Participation("ana", s.reserveID)
		s.False(joined)
	})

	s.Run("a shared device token is not notified about its own owner", func() {
		s.store.AddParticipation("dan", s.reserveID, false)
		s.store.AddParticipation("ana", s.reserveID, false)

		// dan shares ana's device; bob is the only other device left.
		s.notifier.EXPECT().
			SendMulticast(gomock.Any(), []string{"token-bob"}, "Player left", "Dan left your reservation on 14/03/2030 19:00").
			Return(nil)

		s.Require().NoError(s.cmds.DeleteReserveFromUser(s.ctx, "dan", s.reserveID))
	})

	s.Run("nobody left to notify", func() {
		solo := s.store.AddReservation(builder.NewReservationBuilder().BuildDomain())
		s.store.AddParticipation("bob", solo, true)

		s.Require().NoError(s.cmds.DeleteReserveFromUser(s.ctx, "bob", solo))
	})
}
