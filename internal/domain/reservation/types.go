package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeSlot     = errors.New("hour_end must be after hour_start")
	ErrInvalidPlaces       = errors.New("total places cannot be negative")
	ErrEventNeedsGameTable = errors.New("shop events require a game and a table")
	ErrNotShopEvent        = errors.New("reservation is not a shop event")
)

const eventDateLayout = "02/01/2006"

// EventID groups occurrences of the same game at the same table on the same calendar day.
// The day is taken in loc so late-evening events do not spill into the next UTC date.
func EventID(gameID, tableID int64, start time.Time, loc *time.Location) string {
	return fmt.Sprintf("%d-%d-%s", gameID, tableID, start.In(loc).Format(eventDateLayout))
}

// ShopTopic is the push topic every follower of a shop is subscribed to.
func ShopTopic(shopID int64) string {
	return fmt.Sprintf("shop_%d", shopID)
}

// FirstPerEvent keeps the first item of every event group, preserving order.
// Items without an event id are dropped.
func FirstPerEvent[T any](items []T, eventID func(T) *string) []T {
	seen := make(map[string]struct{}, len(items))
	result := make([]T, 0, len(items))
	for _, item := range items {
		id := eventID(item)
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		result = append(result, item)
	}
	return result
}
