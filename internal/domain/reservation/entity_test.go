//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"tabletop-reserve/internal/domain/reservation"
	"tabletop-reserve/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func madrid(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	return loc
}

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := reservation.NewReservation(builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Description = "  trimmed  " }).
			BuildDraft())
		require.NoError(t, err)

		assert.Equal(t, "trimmed", actual.Description())
		assert.Equal(t, 4, actual.TotalPlaces())
		assert.Equal(t, 3*time.Hour, actual.TimeSlot().Duration())
		assert.Nil(t, actual.EventID())
		assert.False(t, actual.UpcomingNotified())
	})

	cases := []struct {
		name   string
		mutate func(*builder.ReservationBuilder)
		errIs  error
	}{
		{
			name:   "end equal to start",
			mutate: func(b *builder.ReservationBuilder) { b.HourEnd = b.HourStart },
			errIs:  reservation.ErrInvalidTimeSlot,
		},
		{
			name:   "end before start",
			mutate: func(b *builder.ReservationBuilder) { b.HourEnd = b.HourStart.Add(-time.Minute) },
			errIs:  reservation.ErrInvalidTimeSlot,
		},
		{
			name:   "missing start",
			mutate: func(b *builder.ReservationBuilder) { b.HourStart = time.Time{} },
			errIs:  reservation.ErrInvalidTimeSlot,
		},
		{
			name:   "negative places",
			mutate: func(b *builder.ReservationBuilder) { b.TotalPlaces = -1 },
			errIs:  reservation.ErrInvalidPlaces,
		},
		{
			name:   "zero places allowed",
			mutate: func(b *builder.ReservationBuilder) { b.TotalPlaces = 0 },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.NewReservation(builder.NewReservationBuilder().With(tc.mutate).BuildDraft())
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReservation_Apply(t *testing.T) {
	t.Run("only supplied fields change", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithGame(7).WithTable(3).BuildDomain()
		before := r.TimeSlot()

		err := r.Apply(reservation.Changes{
			Description: ptr("new description"),
			TotalPlaces: ptr(6),
		})
		require.NoError(t, err)

		assert.Equal(t, "new description", r.Description())
		assert.Equal(t, 6, r.TotalPlaces())
		assert.Equal(t, "Dice", r.RequiredMaterial())
		assert.Equal(t, before, r.TimeSlot())
		assert.Equal(t, int64(7), *r.GameID())
		assert.Equal(t, int64(3), *r.TableID())
	})

	t.Run("new end is checked against the kept start", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		err := r.Apply(reservation.Changes{HourEnd: ptr(r.TimeSlot().Start().Add(-time.Hour))})
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("rejected changes leave the reservation untouched", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		err := r.Apply(reservation.Changes{
			Description: ptr("should not stick"),
			TotalPlaces: ptr(-2),
		})
		require.ErrorIs(t, err, reservation.ErrInvalidPlaces)
		assert.Equal(t, "Friday campaign night", r.Description())
		assert.Equal(t, 4, r.TotalPlaces())
	})
}

func TestReservation_AssignEvent(t *testing.T) {
	loc := madrid(t)

	t.Run("event id uses the local calendar date", func(t *testing.T) {
		// 23:30 UTC on the 14th is already the 15th in Madrid.
		start := time.Date(2030, time.March, 14, 23, 30, 0, 0, time.UTC)
		r := builder.NewReservationBuilder().WithSlot(start, time.Hour).WithGame(5).WithTable(2).
			With(func(b *builder.ReservationBuilder) { b.ShopEvent = true }).BuildDomain()

		require.NoError(t, r.AssignEvent(loc))
		assert.Equal(t, "5-2-15/03/2030", *r.EventID())
	})

	t.Run("requires game and table", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithGame(5).
			With(func(b *builder.ReservationBuilder) { b.ShopEvent = true }).BuildDomain()
		assert.ErrorIs(t, r.AssignEvent(loc), reservation.ErrEventNeedsGameTable)
		assert.Nil(t, r.EventID())
	})

	t.Run("only shop events get an id", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithGame(5).WithTable(2).BuildDomain()
		assert.ErrorIs(t, r.AssignEvent(loc), reservation.ErrNotShopEvent)
	})
}

func TestReservation_MarkUpcomingNotified(t *testing.T) {
	r := builder.NewReservationBuilder().BuildDomain()

	assert.True(t, r.MarkUpcomingNotified())
	assert.True(t, r.UpcomingNotified())
	assert.False(t, r.MarkUpcomingNotified(), "second claim must be refused")
}

func TestEventID(t *testing.T) {
	loc := madrid(t)
	same := reservation.EventID(1, 2, time.Date(2030, 6, 1, 9, 0, 0, 0, loc), loc)
	later := reservation.EventID(1, 2, time.Date(2030, 6, 1, 21, 0, 0, 0, loc), loc)
	nextDay := reservation.EventID(1, 2, time.Date(2030, 6, 2, 9, 0, 0, 0, loc), loc)

	assert.Equal(t, "1-2-01/06/2030", same)
	assert.Equal(t, same, later)
	assert.NotEqual(t, same, nextDay)
}

func TestFirstPerEvent(t *testing.T) {
	type item struct {
		name  string
		event *string
	}
	items := []item{
		{"a1", ptr("a")},
		{"none", nil},
		{"b1", ptr("b")},
		{"a2", ptr("a")},
		{"c1", ptr("c")},
		{"b2", ptr("b")},
	}

	got := reservation.FirstPerEvent(items, func(i item) *string { return i.event })

	names := make([]string, len(got))
	for i, it := range got {
		names[i] = it.name
	}
	if diff := cmp.Diff([]string{"a1", "b1", "c1"}, names); diff != "" {
		t.Errorf("FirstPerEvent mismatch (-want +got):\n%s", diff)
	}
}

func TestFanOutTokens(t *testing.T) {
	participants := []reservation.Participant{
		{UserID: "u1", Token: ptr("t1")},
		{UserID: "u2", Token: nil},
		{UserID: "u3", Token: ptr("t3")},
		{UserID: "u4", Token: ptr("t1")},
		{UserID: "u5", Token: ptr("")},
		{UserID: "u6", Token: ptr("t6")},
	}

	cases := []struct {
		name    string
		exclude string
		want    []string
	}{
		{name: "everyone, duplicates once", want: []string{"t1", "t3", "t6"}},
		{name: "excluded user's token dropped even if shared", exclude: "u1", want: []string{"t3", "t6"}},
		{name: "excluding a user without token", exclude: "u2", want: []string{"t1", "t3", "t6"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := reservation.FanOutTokens(participants, tc.exclude)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FanOutTokens mismatch (-want +got):\n%s", diff)
			}
		})
	}

	assert.Empty(t, reservation.FanOutTokens(nil, ""))
}

func TestDay(t *testing.T) {
	loc := madrid(t)

	t.Run("window starts at local midnight", func(t *testing.T) {
		from, to := reservation.Day(time.Date(2030, 3, 14, 23, 30, 0, 0, time.UTC), loc)
		assert.Equal(t, time.Date(2030, 3, 15, 0, 0, 0, 0, loc), from)
		assert.Equal(t, 24*time.Hour, to.Sub(from))
	})

	t.Run("DST change shortens the day", func(t *testing.T) {
		from, to := reservation.Day(time.Date(2030, 3, 31, 12, 0, 0, 0, loc), loc)
		assert.Equal(t, 23*time.Hour, to.Sub(from))
	})
}

func TestParticipation(t *testing.T) {
	now := time.Date(2030, 1, 1, 10, 0, 0, 0, time.UTC)
	p := reservation.NewParticipation("u1", 9, false, now)

	assert.Equal(t, now, p.CreatedAt())
	assert.False(t, p.Confirmed())
	p.Confirm()
	assert.True(t, p.Confirmed())
}
