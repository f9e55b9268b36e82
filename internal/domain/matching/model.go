package matching

// SizeCategory define el tamaño del perro.
type SizeCategory string

const (
	SizeSmall  SizeCategory = "Small"
	SizeMedium SizeCategory = "Medium"
	SizeLarge  SizeCategory = "Large"
)

// EnergyLevel define el nivel de energía del perro.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "Low"
	EnergyMedium EnergyLevel = "Medium"
	EnergyHigh   EnergyLevel = "High"
)

// Friendliness define el temperamento con otros perros.
type Friendliness string

const (
	Friendly   Friendliness = "Friendly"
	Neutral    Friendliness = "Neutral"
	Aggressive Friendliness = "Aggressive"
)

// TimeSlot es una franja horaria de disponibilidad.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "Morning"
	SlotAfternoon TimeSlot = "Afternoon"
	SlotEvening   TimeSlot = "Evening"
)

// Coordinates en grados (lat, lon).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Dog es inmutable una vez construido; pertenece a un solo Owner.
type Dog struct {
	Name   string
	Breed  string
	Age    string // texto libre, p.ej. "3 years 2 months"
	Size   SizeCategory
	SizeLb int

	Energy       EnergyLevel
	Friendliness Friendliness
	Vaccinated   bool
}

// Owner es un dueño elegible para ser emparejado.
// ID identifica al owner dentro de una corrida (se usa para excluir self-matches).
type Owner struct {
	ID                 string
	Name               string
	Gender             string
	RelationshipStatus string

	Location     Coordinates
	Availability []TimeSlot
	Dogs         []Dog // siempre >= 1 (validado en el borde)
}

// DogNames devuelve los nombres de los perros en orden.
func (o Owner) DogNames() []string {
	out := make([]string, 0, len(o.Dogs))
	for _, d := range o.Dogs {
		out = append(out, d.Name)
	}
	return out
}

// DogPairCompatibility es el resultado de comparar un par (perro, perro).
type DogPairCompatibility struct {
	Dog1  string
	Dog2  string
	Score int
	Notes []string
}

// MatchCandidate es transitorio: vive solo durante una corrida del pipeline.
type MatchCandidate struct {
	Owner       Owner
	Distance    float64
	CommonTimes []TimeSlot
	Score       int
	Details     []DogPairCompatibility
}

// OwnerSummary es la vista reducida del candidato en la respuesta.
type OwnerSummary struct {
	ID   string
	Name string
	Dogs []string
}

// Recommendation es una entrada del ranking final (Rank empieza en 1).
type Recommendation struct {
	Rank               int
	User               OwnerSummary
	Distance           float64
	CommonTimes        []TimeSlot
	CompatibilityScore int
	DogCompatibility   []DogPairCompatibility
}
