package matching

// BuildRecommendations toma los primeros maxResults y los numera desde 1.
// Lista vacía => resultado vacío (no es error).
func BuildRecommendations(in []MatchCandidate, maxResults int) []Recommendation {
	if maxResults < 0 {
		maxResults = 0
	}
	n := min(len(in), maxResults)

	out := make([]Recommendation, 0, n)
	for i, c := range in[:n] {
		out = append(out, Recommendation{
			Rank: i + 1,
			User: OwnerSummary{
				ID:   c.Owner.ID,
				Name: c.Owner.Name,
				Dogs: c.Owner.DogNames(),
			},
			Distance:           c.Distance,
			CommonTimes:        c.CommonTimes,
			CompatibilityScore: c.Score,
			DogCompatibility:   c.Details,
		})
	}
	return out
}
