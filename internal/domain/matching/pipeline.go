package matching

const (
	DefaultMaxDistance = 50.0
	DefaultMaxResults  = 5
)

// Options parámetros ajustables de una corrida.
type Options struct {
	MaxDistance float64
	MaxResults  int
	// Workers > 1 habilita puntuación paralela por candidato.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		MaxDistance: DefaultMaxDistance,
		MaxResults:  DefaultMaxResults,
		Workers:     1,
	}
}

// Stats cuenta cuántos candidatos sobreviven a cada fase.
type Stats struct {
	Pool       int
	Nearby     int
	Available  int
	Compatible int
	Returned   int
}

// Run ejecuta las cuatro fases en orden sobre un pool en memoria.
// Cada fase consume la salida de la anterior; nunca se re-evalúa un candidato descartado.
func Run(query Owner, pool []Owner, opts Options) ([]Recommendation, Stats) {
	st := Stats{Pool: len(pool)}

	nearby := FilterByLocation(query, pool, opts.MaxDistance)
	st.Nearby = len(nearby)

	available := FilterByAvailability(query, nearby)
	st.Available = len(available)

	compatible := ScoreCompatibility(query, available, opts.Workers)
	st.Compatible = len(compatible)

	recs := BuildRecommendations(compatible, opts.MaxResults)
	st.Returned = len(recs)

	return recs, st
}
