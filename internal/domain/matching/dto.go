package matching

import (
	"fmt"

	"dog-playdate-matcher/internal/validation"
)

// DogPayload es el formato de wire de un perro (nombres de campo del API público).
type DogPayload struct {
	Name          string `json:"dog_name" validate:"required"`
	Breed         string `json:"dog_breed" validate:"required"`
	Age           string `json:"dog_age"`
	Size          string `json:"dog_size" validate:"required,oneof=Small Medium Large"`
	SizeLb        int    `json:"dog_size_in_lb" validate:"gte=0"`
	Energy        string `json:"dog_energy" validate:"required,oneof=Low Medium High"`
	Friendly      string `json:"dog_friendly" validate:"required,oneof=Friendly Neutral Aggressive"`
	ShotsUpToDate bool   `json:"shots_up_to_date"`
}

// OwnerPayload es el formato de wire de un owner. location = [lat, lon].
type OwnerPayload struct {
	ID                 string       `json:"id" validate:"required"`
	Name               string       `json:"name" validate:"required"`
	Gender             string       `json:"gender"`
	RelationshipStatus string       `json:"relationship_status"`
	Location           []float64    `json:"location" validate:"len=2"`
	Availability       []string     `json:"availability" validate:"dive,oneof=Morning Afternoon Evening"`
	Dogs               []DogPayload `json:"dogs" validate:"required,min=1,max=10,dive"`
}

// ValidateOwner valida un owner suelto (p.ej. leído de una fuente externa).
func ValidateOwner(p OwnerPayload) *validation.RequestValidationError {
	if verr := validation.Struct(p); verr != nil {
		return verr
	}
	return validateLocation("location", p.Location)
}

// validateLocation revisa rangos; asume len == 2 ya validado.
func validateLocation(field string, loc []float64) *validation.RequestValidationError {
	if verr := validation.Var(field+"[0]", loc[0], "latitude"); verr != nil {
		return verr
	}
	return validation.Var(field+"[1]", loc[1], "longitude")
}

// ToOwner convierte a modelo de dominio. Llamar solo sobre payloads validados.
func (p OwnerPayload) ToOwner() Owner {
	slots := make([]TimeSlot, 0, len(p.Availability))
	for _, s := range p.Availability {
		slots = append(slots, TimeSlot(s))
	}

	dogs := make([]Dog, 0, len(p.Dogs))
	for _, d := range p.Dogs {
		dogs = append(dogs, Dog{
			Name:         d.Name,
			Breed:        d.Breed,
			Age:          d.Age,
			Size:         SizeCategory(d.Size),
			SizeLb:       d.SizeLb,
			Energy:       EnergyLevel(d.Energy),
			Friendliness: Friendliness(d.Friendly),
			Vaccinated:   d.ShotsUpToDate,
		})
	}

	var loc Coordinates
	if len(p.Location) == 2 {
		loc = Coordinates{Lat: p.Location[0], Lon: p.Location[1]}
	}

	return Owner{
		ID:                 p.ID,
		Name:               p.Name,
		Gender:             p.Gender,
		RelationshipStatus: p.RelationshipStatus,
		Location:           loc,
		Availability:       slots,
		Dogs:               dogs,
	}
}

// NewOwnerPayload convierte de dominio a wire.
func NewOwnerPayload(o Owner) OwnerPayload {
	slots := make([]string, 0, len(o.Availability))
	for _, s := range o.Availability {
		slots = append(slots, string(s))
	}

	dogs := make([]DogPayload, 0, len(o.Dogs))
	for _, d := range o.Dogs {
		dogs = append(dogs, DogPayload{
			Name:          d.Name,
			Breed:         d.Breed,
			Age:           d.Age,
			Size:          string(d.Size),
			SizeLb:        d.SizeLb,
			Energy:        string(d.Energy),
			Friendly:      string(d.Friendliness),
			ShotsUpToDate: d.Vaccinated,
		})
	}

	return OwnerPayload{
		ID:                 o.ID,
		Name:               o.Name,
		Gender:             o.Gender,
		RelationshipStatus: o.RelationshipStatus,
		Location:           []float64{o.Location.Lat, o.Location.Lon},
		Availability:       slots,
		Dogs:               dogs,
	}
}

type findMatchesRequest struct {
	UserToMatch OwnerPayload `json:"user_to_match"`
	// nil/ausente => usa la fuente de candidatos configurada.
	UsersData []OwnerPayload `json:"users_data" validate:"omitempty,max=1000,dive"`
}

func (r findMatchesRequest) validate() *validation.RequestValidationError {
	if verr := validation.Struct(r); verr != nil {
		return verr
	}
	if verr := validateLocation("user_to_match.location", r.UserToMatch.Location); verr != nil {
		return verr
	}
	for i, u := range r.UsersData {
		if verr := validateLocation(fmt.Sprintf("users_data[%d].location", i), u.Location); verr != nil {
			return verr
		}
	}
	return nil
}

type dogCompatibilityResponse struct {
	Dog1  string   `json:"dog1"`
	Dog2  string   `json:"dog2"`
	Score int      `json:"score"`
	Notes []string `json:"notes"`
}

type ownerSummaryResponse struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Dogs []string `json:"dogs"`
}

type recommendationResponse struct {
	Rank               int                        `json:"rank"`
	User               ownerSummaryResponse       `json:"user"`
	Distance           float64                    `json:"distance"`
	CommonTimes        []string                   `json:"common_times"`
	CompatibilityScore int                        `json:"compatibility_score"`
	DogCompatibility   []dogCompatibilityResponse `json:"dog_compatibility"`
}

type matchResponse struct {
	Matches []recommendationResponse `json:"matches"`
}

type generateUsersResponse struct {
	Users []OwnerPayload `json:"users"`
}

type errorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

func toMatchResponse(recs []Recommendation) matchResponse {
	out := matchResponse{Matches: make([]recommendationResponse, 0, len(recs))}
	for _, r := range recs {
		times := make([]string, 0, len(r.CommonTimes))
		for _, t := range r.CommonTimes {
			times = append(times, string(t))
		}

		details := make([]dogCompatibilityResponse, 0, len(r.DogCompatibility))
		for _, d := range r.DogCompatibility {
			details = append(details, dogCompatibilityResponse{
				Dog1:  d.Dog1,
				Dog2:  d.Dog2,
				Score: d.Score,
				Notes: d.Notes,
			})
		}

		out.Matches = append(out.Matches, recommendationResponse{
			Rank: r.Rank,
			User: ownerSummaryResponse{
				ID:   r.User.ID,
				Name: r.User.Name,
				Dogs: r.User.Dogs,
			},
			Distance:           r.Distance,
			CommonTimes:        times,
			CompatibilityScore: r.CompatibilityScore,
			DogCompatibility:   details,
		})
	}
	return out
}
