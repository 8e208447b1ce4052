package store_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharanyanjs/Hotel-management-system/internal/domain"
	"github.com/sharanyanjs/Hotel-management-system/internal/store"
)

func day(n int) time.Time {
	return time.Date(2026, time.September, n, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	inv    *store.Inventory
	ledger *store.Ledger
	john   *domain.Customer
	room   *domain.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	inv := store.NewInventory()
	room := mustRoom(t, "101", 100)
	require.NoError(t, inv.Register(room))
	john, err := domain.NewCustomer("John", "Doe", "john@email.com")
	require.NoError(t, err)
	return &fixture{inv: inv, ledger: store.NewLedger(inv), john: john, room: room}
}

func TestLedger_BookAndAvailability(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	require.True(t, f.ledger.IsAvailable(f.room, day(10), day(12)))

	res, err := f.ledger.Book(f.john, f.room, day(10), day(12))
	require.NoError(t, err)
	assert.Equal(t, "101", res.Room.Number)
	assert.Equal(t, 1, f.ledger.Count())

	assert.False(t, f.ledger.IsAvailable(f.room, day(10), day(12)))
	assert.False(t, f.ledger.IsAvailable(f.room, day(11), day(13)))
}

func TestLedger_AdjacentStaysDoNotConflict(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.ledger.Book(f.john, f.room, day(10), day(12))
	require.NoError(t, err)

	// check-out day equals next check-in day: allowed
	_, err = f.ledger.Book(f.john, f.room, day(12), day(14))
	require.NoError(t, err)

	// intersecting range: rejected
	_, err = f.ledger.Book(f.john, f.room, day(11), day(13))
	require.ErrorIs(t, err, domain.ErrRoomUnavailable)

	assert.Equal(t, 2, f.ledger.Count())
}

func TestLedger_BookValidationOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.ledger.Book(nil, f.room, day(10), day(12))
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)

	_, err = f.ledger.Book(f.john, nil, day(10), day(12))
	require.ErrorIs(t, err, domain.ErrNilRoom)

	_, err = f.ledger.Book(f.john, f.room, time.Time{}, day(12))
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)

	_, err = f.ledger.Book(f.john, f.room, day(12), day(12))
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)

	ghost := mustRoom(t, "999", 50)
	_, err = f.ledger.Book(f.john, ghost, day(10), day(12))
	require.ErrorIs(t, err, domain.ErrUnknownRoom)
}

func TestLedger_FindAvailable(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	require.NoError(t, f.inv.Register(mustRoom(t, "102", 80)))
	require.NoError(t, f.inv.Register(mustRoom(t, "103", 120)))

	_, err := f.ledger.Book(f.john, f.room, day(10), day(12))
	require.NoError(t, err)

	rooms, err := f.ledger.FindAvailable(day(10), day(12))
	require.NoError(t, err)
	var numbers []string
	for _, r := range rooms {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"102", "103"}, numbers)

	// idempotent: same query, same result
	rooms2, err := f.ledger.FindAvailable(day(10), day(12))
	require.NoError(t, err)
	require.Len(t, rooms2, len(rooms))
	for i := range rooms {
		assert.Same(t, rooms[i], rooms2[i])
	}

	// the booked room reappears outside the stay
	rooms3, err := f.ledger.FindAvailable(day(12), day(14))
	require.NoError(t, err)
	numbers = nil
	for _, r := range rooms3 {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"101", "102", "103"}, numbers)

	_, err = f.ledger.FindAvailable(day(12), day(10))
	require.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestLedger_ReservationsFor(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	require.NoError(t, f.inv.Register(mustRoom(t, "102", 80)))

	jane, err := domain.NewCustomer("Jane", "Smith", "jane@email.com")
	require.NoError(t, err)

	_, err = f.ledger.Book(f.john, f.room, day(10), day(12))
	require.NoError(t, err)
	room102, _, _ := f.inv.Lookup("102")
	_, err = f.ledger.Book(f.john, room102, day(10), day(11))
	require.NoError(t, err)
	_, err = f.ledger.Book(jane, f.room, day(12), day(14))
	require.NoError(t, err)

	johns := f.ledger.ReservationsFor(f.john)
	require.Len(t, johns, 2)
	assert.Equal(t, "101", johns[0].Room.Number)
	assert.Equal(t, "102", johns[1].Room.Number)

	assert.Len(t, f.ledger.ReservationsFor(jane), 1)
	assert.Len(t, f.ledger.All(), 3)
	assert.Equal(t, 3, f.ledger.Count())
	assert.True(t, f.ledger.RoomExists("101"))
	assert.False(t, f.ledger.RoomExists("999"))
}

// N concurrent attempts at fully overlapping stays on one room must yield
// exactly one success.
func TestLedger_ConcurrentDoubleBookingPrevented(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	const n = 64
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.ledger.Book(f.john, f.room, day(10), day(12))
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, domain.ErrRoomUnavailable):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(n-1), conflicts.Load())
	assert.Equal(t, 1, f.ledger.Count())
}

// Distinct rooms book independently under the same contention.
func TestLedger_ConcurrentDistinctRooms(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	for _, n := range []string{"102", "103", "104"} {
		require.NoError(t, f.inv.Register(mustRoom(t, n, 80)))
	}

	var wg sync.WaitGroup
	for _, n := range []string{"101", "102", "103", "104"} {
		wg.Add(1)
		go func(number string) {
			defer wg.Done()
			room, _, err := f.inv.Lookup(number)
			if err != nil {
				t.Errorf("lookup %s: %v", number, err)
				return
			}
			if _, err := f.ledger.Book(f.john, room, day(10), day(12)); err != nil {
				t.Errorf("book %s: %v", number, err)
			}
		}(n)
	}
	wg.Wait()
	assert.Equal(t, 4, f.ledger.Count())
}
