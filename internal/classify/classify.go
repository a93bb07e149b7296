// Package classify partitions a ticket snapshot into the dashboard's two
// buckets. Classification is a pure function of (snapshot, now): the day
// window is recomputed on every call because "today" moves under a
// long-running process, and bucket membership is always rederived from the
// status flag rather than cached.
package classify

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/Ptxer/Ticket/internal/domain"
)

// Buckets holds today's tickets split by status, both in descending
// datetime order.
type Buckets struct {
	Active   []domain.Ticket
	Finished []domain.Ticket
}

// Classify sorts the snapshot descending by datetime (stable, so equal
// timestamps keep their fetch order), keeps only tickets inside now's local
// midnight-to-midnight window, and splits by the active status flag.
func Classify(snapshot []domain.Ticket, now time.Time) Buckets {
	sorted := make([]domain.Ticket, len(snapshot))
	copy(sorted, snapshot)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Datetime.After(sorted[j].Datetime)
	})

	start, end := DayWindow(now)
	today := lo.Filter(sorted, func(t domain.Ticket, _ int) bool {
		return !t.Datetime.Before(start) && !t.Datetime.After(end)
	})

	active, finished := lo.FilterReject(today, func(t domain.Ticket, _ int) bool {
		return t.Status.Active()
	})
	return Buckets{Active: active, Finished: finished}
}

// DayWindow returns the inclusive [00:00:00, 23:59:59.999999999] bounds of
// now's calendar date in now's location.
func DayWindow(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
