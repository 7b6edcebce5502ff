package report

import (
	"sort"

	"edu-crm/internal/features/user"
	"edu-crm/pkg/utils"
)

// ownerAggregates carries the four grouped counts consumed by the
// rollup, each keyed by user id and computed once for the full owner
// universe.
type ownerAggregates struct {
	Inquiries    map[string]int64
	Converted    map[string]int64
	Interactions map[string]int64
	ThisMonth    map[string]int64
}

// buildUserPerformance produces one row per roster user, zero-filling
// counts for users absent from an aggregate, sorted descending by
// inquiry count. Ties keep the roster order.
func buildUserPerformance(roster []user.User, agg ownerAggregates) []UserPerformance {
	rows := make([]UserPerformance, 0, len(roster))
	for _, u := range roster {
		id := u.ID.Hex()
		inquiries := agg.Inquiries[id]
		converted := agg.Converted[id]

		rows = append(rows, UserPerformance{
			UserID:         id,
			Name:           u.Name,
			Email:          u.Email,
			Role:           utils.Humanize(u.Role),
			Inquiries:      inquiries,
			Converted:      converted,
			ConversionRate: percentOf(converted, inquiries),
			Interactions:   agg.Interactions[id],
			NewThisMonth:   agg.ThisMonth[id],
			JoinedAt:       u.CreatedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Inquiries > rows[j].Inquiries
	})
	return rows
}
