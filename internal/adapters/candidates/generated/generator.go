package generated

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"dog-playdate-matcher/internal/domain/matching"
)

var (
	dogNames = []string{"Buddy", "Max", "Bella", "Lucy", "Charlie", "Cooper", "Luna", "Bailey", "Daisy", "Sadie"}
	breeds   = []string{"Labrador", "Beagle", "German Shepherd", "Poodle", "Bulldog", "Golden Retriever", "Chihuahua", "Pug", "Husky", "Boxer"}
	sizes    = []matching.SizeCategory{matching.SizeSmall, matching.SizeMedium, matching.SizeLarge}
	energies = []matching.EnergyLevel{matching.EnergyLow, matching.EnergyMedium, matching.EnergyHigh}
	tempers  = []matching.Friendliness{matching.Friendly, matching.Neutral, matching.Aggressive}

	ownerNames     = []string{"Alice", "Bob", "Charlie", "David", "Eve", "Frank", "Grace", "Henry", "Isabel", "Jack"}
	genders        = []string{"Male", "Female", "Other"}
	relationships  = []string{"Single", "In a Relationship", "Married"}
	availabilities = [][]matching.TimeSlot{
		{matching.SlotMorning, matching.SlotAfternoon},
		{matching.SlotAfternoon, matching.SlotEvening},
		{matching.SlotMorning, matching.SlotEvening},
		{matching.SlotMorning, matching.SlotAfternoon, matching.SlotEvening},
	}
)

// Generator produce owners aleatorios con su propio *rand.Rand (nunca el global).
// Es seguro para uso concurrente.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New crea un generador. seed == 0 => semilla basada en el reloj.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}
}

// Generate devuelve n owners con ids "1".."n".
func (g *Generator) Generate(n int) []matching.Owner {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]matching.Owner, 0, max(n, 0))
	for i := range n {
		out = append(out, g.owner(strconv.Itoa(i+1)))
	}
	return out
}

func (g *Generator) owner(id string) matching.Owner {
	dogs := make([]matching.Dog, 0, 3)
	for range 1 + g.rnd.IntN(3) {
		dogs = append(dogs, g.dog())
	}

	return matching.Owner{
		ID:                 id,
		Name:               pick(g.rnd, ownerNames),
		Gender:             pick(g.rnd, genders),
		RelationshipStatus: pick(g.rnd, relationships),
		Location: matching.Coordinates{
			Lat: -90 + g.rnd.Float64()*180,
			Lon: -180 + g.rnd.Float64()*360,
		},
		Availability: append([]matching.TimeSlot(nil), pick(g.rnd, availabilities)...),
		Dogs:         dogs,
	}
}

func (g *Generator) dog() matching.Dog {
	return matching.Dog{
		Name:         pick(g.rnd, dogNames),
		Breed:        pick(g.rnd, breeds),
		Age:          fmt.Sprintf("%d years %d months", 1+g.rnd.IntN(10), 1+g.rnd.IntN(12)),
		Size:         pick(g.rnd, sizes),
		SizeLb:       10 + g.rnd.IntN(111),
		Energy:       pick(g.rnd, energies),
		Friendliness: pick(g.rnd, tempers),
		Vaccinated:   g.rnd.IntN(2) == 1,
	}
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// Source adapta el generador como matching.CandidateSource (pool fijo de tamaño size por request).
type Source struct {
	gen  *Generator
	size int
}

func NewSource(gen *Generator, size int) *Source {
	return &Source{gen: gen, size: size}
}

func (s *Source) ListCandidates(ctx context.Context) ([]matching.Owner, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.gen.Generate(s.size), nil
}
