package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAppendDefaultsToToday(t *testing.T) {
	t.Parallel()

	l := New(nil)
	ev := l.Append(uuid.New(), "Arroz", 3, decimal.RequireFromString("30.00"), "")
	require.Equal(t, DateOf(time.Now()), ev.Date)
	require.Equal(t, 1, l.Len())
	require.NotEqual(t, uuid.Nil, ev.ID)
}

func TestAppendKeepsEventsForAnyProduct(t *testing.T) {
	t.Parallel()

	l := New(nil)
	// ürünün var olup olmadığı sorgulanmaz, geçmiş kayıtlar serbest
	l.Append(uuid.New(), "Silinmiş Ürün", -2, decimal.RequireFromString("-10.00"), "2025-01-01")
	require.Equal(t, 1, l.Len())
}

func TestLedgerSizeMonotonic(t *testing.T) {
	t.Parallel()

	l := New(nil)
	sizes := []int{l.Len()}
	for i := 0; i < 5; i++ {
		l.Append(uuid.New(), "X", 1, decimal.NewFromInt(1), "")
		sizes = append(sizes, l.Len())
	}
	for i := 1; i < len(sizes); i++ {
		require.Greater(t, sizes[i], sizes[i-1])
	}
}

func TestQueryFiltersByDate(t *testing.T) {
	t.Parallel()

	l := New(nil)
	l.Append(uuid.New(), "A", 1, decimal.NewFromInt(1), "2025-08-30")
	l.Append(uuid.New(), "B", 2, decimal.NewFromInt(2), "2025-08-31")
	l.Append(uuid.New(), "C", 3, decimal.NewFromInt(3), "2025-08-31")

	var names []string
	for ev := range l.Query(func(date string) bool { return date == "2025-08-31" }) {
		names = append(names, ev.ProductName)
	}
	require.Equal(t, []string{"B", "C"}, names)
}

func TestQueryRestartable(t *testing.T) {
	t.Parallel()

	l := New(nil)
	l.Append(uuid.New(), "A", 1, decimal.NewFromInt(1), "2025-08-31")
	l.Append(uuid.New(), "B", 1, decimal.NewFromInt(1), "2025-08-31")

	seq := l.Query(func(string) bool { return true })

	// ilk dolaşım erken kesilir
	for range seq {
		break
	}
	// ikinci dolaşım baştan başlar
	count := 0
	for range seq {
		count++
	}
	require.Equal(t, 2, count)
}

func TestWindowNewestFirst(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 31, 15, 0, 0, 0, time.Local)
	dates := Window(now, WindowDays)
	require.Len(t, dates, 10)
	require.Equal(t, "2025-08-31", dates[0])
	require.Equal(t, "2025-08-22", dates[9])
}

func TestInWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 8, 31, 15, 0, 0, 0, time.Local)
	require.True(t, InWindow("2025-08-31", now, WindowDays))
	require.True(t, InWindow("2025-08-22", now, WindowDays))
	require.False(t, InWindow("2025-08-21", now, WindowDays))
	require.False(t, InWindow("2025-09-01", now, WindowDays))
}

func TestWindowShiftsWithClock(t *testing.T) {
	t.Parallel()

	// pencere veriden değil duvar saatinden hesaplanır: gün değişince kayar
	day1 := time.Date(2025, 8, 31, 23, 0, 0, 0, time.Local)
	day2 := day1.Add(2 * time.Hour)
	require.True(t, InWindow("2025-08-22", day1, WindowDays))
	require.False(t, InWindow("2025-08-22", day2, WindowDays))
}
