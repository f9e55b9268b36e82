package matching

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// ScoreCompatibility aplica el gate de vacunas y puntúa cada candidato.
// Quedan solo los de score total > 0, ordenados desc (estable: empates mantienen
// el orden por distancia que traen de las fases anteriores).
//
// workers > 1 puntúa candidatos en paralelo; el resultado es idéntico al secuencial.
func ScoreCompatibility(query Owner, in []MatchCandidate, workers int) []MatchCandidate {
	scored := make([]MatchCandidate, len(in))
	keep := make([]bool, len(in))

	score := func(i int) {
		c, ok := scoreCandidate(query, in[i])
		scored[i] = c
		keep[i] = ok
	}

	if workers > 1 && len(in) > 1 {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := range in {
			g.Go(func() error {
				score(i)
				return nil
			})
		}
		_ = g.Wait() // score no devuelve errores
	} else {
		for i := range in {
			score(i)
		}
	}

	out := make([]MatchCandidate, 0, len(in))
	for i, c := range scored {
		if keep[i] {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

func scoreCandidate(query Owner, c MatchCandidate) (MatchCandidate, bool) {
	// Gate todo-o-nada: un solo perro sin vacunas (de cualquier lado) descarta el par.
	if !allVaccinated(query.Dogs) || !allVaccinated(c.Owner.Dogs) {
		return c, false
	}

	total := 0
	details := make([]DogPairCompatibility, 0, len(query.Dogs)*len(c.Owner.Dogs))
	for _, mine := range query.Dogs {
		for _, theirs := range c.Owner.Dogs {
			p := PairScore(mine, theirs)
			details = append(details, p)
			total += p.Score
		}
	}

	if total <= 0 {
		return c, false
	}

	c.Score = total
	c.Details = details
	return c, true
}

func allVaccinated(dogs []Dog) bool {
	for _, d := range dogs {
		if !d.Vaccinated {
			return false
		}
	}
	return true
}

// PairScore suma las contribuciones independientes de tamaño, energía,
// temperamento y raza para un par de perros.
func PairScore(a, b Dog) DogPairCompatibility {
	score := 0
	notes := make([]string, 0, 4)

	switch {
	case a.Size == b.Size:
		score += 3
		notes = append(notes, fmt.Sprintf("Same size (%s)", a.Size))
	case a.Size == SizeMedium && (b.Size == SizeSmall || b.Size == SizeLarge),
		b.Size == SizeMedium && (a.Size == SizeSmall || a.Size == SizeLarge):
		score++
		notes = append(notes, "Compatible sizes")
	}

	switch {
	case a.Energy == b.Energy:
		score += 3
		notes = append(notes, fmt.Sprintf("Matching energy levels (%s)", a.Energy))
	case a.Energy == EnergyMedium || b.Energy == EnergyMedium:
		score++
		notes = append(notes, "Adaptable energy levels")
	}

	switch {
	case a.Friendliness == Friendly && b.Friendliness == Friendly:
		score += 3
		notes = append(notes, "Both dogs are friendly")
	case a.Friendliness != Aggressive && b.Friendliness != Aggressive:
		score++
		notes = append(notes, "Neither dog is aggressive")
	default:
		score -= 2
		notes = append(notes, "Potential aggression issues")
	}

	if a.Breed == b.Breed {
		score++
		notes = append(notes, fmt.Sprintf("Same breed (%s)", a.Breed))
	}

	return DogPairCompatibility{
		Dog1:  a.Name,
		Dog2:  b.Name,
		Score: score,
		Notes: notes,
	}
}
