package snapshot

import (
	"github.com/samber/lo"

	"github.com/Ptxer/Ticket/internal/domain"
)

// Arrivals returns the tickets present in current but absent from previous,
// matched by id only. Two deliberate gates, kept for behavioral
// compatibility with the upstream dashboard:
//
//   - an empty previous set reports nothing: the first successful fetch is a
//     baseline, not a notification event;
//   - a same-length or shrinking transition reports nothing, even when the
//     id sets differ (a simultaneous add+remove of equal count goes
//     undetected).
func Arrivals(previous, current []domain.Ticket) []domain.Ticket {
	if len(previous) == 0 || len(current) <= len(previous) {
		return nil
	}
	seen := lo.SliceToMap(previous, func(t domain.Ticket) (string, struct{}) {
		return t.ID, struct{}{}
	})
	return lo.Filter(current, func(t domain.Ticket, _ int) bool {
		_, ok := seen[t.ID]
		return !ok
	})
}
