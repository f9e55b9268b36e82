package matching

import "sort"

// FilterByLocation deja los candidatos a <= maxDistance del owner, sin incluirlo a él mismo.
// Salida ordenada por distancia asc; empates conservan el orden de entrada.
func FilterByLocation(query Owner, pool []Owner, maxDistance float64) []MatchCandidate {
	out := make([]MatchCandidate, 0, len(pool))
	for _, o := range pool {
		if o.ID == query.ID {
			continue
		}

		d := Distance(query.Location, o.Location)
		if d <= maxDistance {
			out = append(out, MatchCandidate{Owner: o, Distance: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})

	return out
}

// FilterByAvailability descarta candidatos sin franjas en común.
// CommonTimes respeta el orden en que el owner consultante lista sus franjas.
func FilterByAvailability(query Owner, in []MatchCandidate) []MatchCandidate {
	out := make([]MatchCandidate, 0, len(in))
	for _, c := range in {
		common := commonSlots(query.Availability, c.Owner.Availability)
		if len(common) == 0 {
			continue
		}
		c.CommonTimes = common
		out = append(out, c)
	}
	return out
}

func commonSlots(mine, theirs []TimeSlot) []TimeSlot {
	set := make(map[TimeSlot]struct{}, len(theirs))
	for _, s := range theirs {
		set[s] = struct{}{}
	}

	seen := make(map[TimeSlot]struct{}, len(mine))
	out := make([]TimeSlot, 0)
	for _, s := range mine {
		if _, ok := set[s]; !ok {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
