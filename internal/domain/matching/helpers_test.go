package matching

// -------------------------
// Builders para tests
// -------------------------

func testDog(name string, opts ...func(*Dog)) Dog {
	d := Dog{
		Name:         name,
		Breed:        "Labrador",
		Age:          "3 years 2 months",
		Size:         SizeMedium,
		SizeLb:       55,
		Energy:       EnergyMedium,
		Friendliness: Friendly,
		Vaccinated:   true,
	}
	for _, o := range opts {
		o(&d)
	}
	return d
}

func withSize(s SizeCategory) func(*Dog) { return func(d *Dog) { d.Size = s } }

func withEnergy(e EnergyLevel) func(*Dog) { return func(d *Dog) { d.Energy = e } }

func withTemper(f Friendliness) func(*Dog) { return func(d *Dog) { d.Friendliness = f } }

func withBreed(b string) func(*Dog) { return func(d *Dog) { d.Breed = b } }

func unvaccinated(d *Dog) { d.Vaccinated = false }

func testOwner(id string, lat, lon float64, slots []TimeSlot, dogs ...Dog) Owner {
	if len(dogs) == 0 {
		dogs = []Dog{testDog("Dog-" + id)}
	}
	return Owner{
		ID:                 id,
		Name:               "Owner " + id,
		Gender:             "Other",
		RelationshipStatus: "Single",
		Location:           Coordinates{Lat: lat, Lon: lon},
		Availability:       slots,
		Dogs:               dogs,
	}
}

var allDay = []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}
