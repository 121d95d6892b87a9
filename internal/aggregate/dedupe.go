package aggregate

import "skillscout/internal/model"

// Dedupe collapses the working list to one posting per URL. The list is
// traversed front to back: when several postings share a URL, the last one
// encountered wins, keeping the position of the first. The operation is
// idempotent.
func Dedupe(postings []model.JobPosting) []model.JobPosting {
	out := make([]model.JobPosting, 0, len(postings))
	index := make(map[string]int, len(postings))

	for _, p := range postings {
		if i, seen := index[p.URL]; seen {
			out[i] = p
			continue
		}
		index[p.URL] = len(out)
		out = append(out, p)
	}

	return out
}
