package aggregate

import (
	"sort"

	"skillscout/internal/model"
)

// Rank sorts postings by date, most recent first. Postings without a
// parseable date sort after all dated ones; ties keep their input order.
func Rank(postings []model.JobPosting) []model.JobPosting {
	out := make([]model.JobPosting, len(postings))
	copy(out, postings)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PostedAt, out[j].PostedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})

	return out
}
