package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	nyc := Coordinates{Lat: 40.7128, Lon: -74.0060}
	london := Coordinates{Lat: 51.5074, Lon: -0.1278}

	assert.Equal(t, 0.0, Distance(nyc, nyc))
	assert.InDelta(t, 5570, Distance(nyc, london), 10)
	assert.Equal(t, Distance(nyc, london), Distance(london, nyc))

	// un grado de latitud ~ 111.19 km
	assert.InDelta(t, 111.19, Distance(Coordinates{Lat: 0, Lon: 0}, Coordinates{Lat: 1, Lon: 0}), 0.01)

	// antipodas: media circunferencia, sin NaN
	d := Distance(Coordinates{Lat: 0, Lon: 0}, Coordinates{Lat: 0, Lon: 180})
	assert.InDelta(t, 20015.09, d, 0.1)
}

func TestFilterByLocation_ExcludesSelfAndFarAway(t *testing.T) {
	me := testOwner("me", 40.0, -74.0, allDay)
	pool := []Owner{
		me,
		testOwner("far", 41.0, -74.0, allDay),   // ~111 km
		testOwner("near", 40.1, -74.0, allDay),  // ~11 km
		testOwner("close", 40.0, -74.0, allDay), // 0 km
	}

	got := FilterByLocation(me, pool, 50)
	require.Len(t, got, 2)
	assert.Equal(t, "close", got[0].Owner.ID)
	assert.Equal(t, "near", got[1].Owner.ID)

	for _, c := range got {
		assert.NotEqual(t, me.ID, c.Owner.ID)
		assert.LessOrEqual(t, c.Distance, 50.0)
		assert.Empty(t, c.CommonTimes)
		assert.Zero(t, c.Score)
	}
}

func TestFilterByLocation_ThresholdIsInclusive(t *testing.T) {
	me := testOwner("me", 0, 0, allDay)
	other := testOwner("o", 1, 0, allDay)
	d := Distance(me.Location, other.Location)

	assert.Len(t, FilterByLocation(me, []Owner{other}, d), 1)
	assert.Empty(t, FilterByLocation(me, []Owner{other}, d-1e-9))
}

func TestFilterByLocation_StableOnTies(t *testing.T) {
	me := testOwner("me", 10, 10, allDay)
	pool := []Owner{
		testOwner("b", 10.2, 10, allDay),
		testOwner("a1", 10.1, 10, allDay),
		testOwner("a2", 10.1, 10, allDay),
		testOwner("a3", 10.1, 10, allDay),
	}

	got := FilterByLocation(me, pool, 50)
	ids := make([]string, 0, len(got))
	for i, c := range got {
		ids = append(ids, c.Owner.ID)
		if i > 0 {
			assert.LessOrEqual(t, got[i-1].Distance, c.Distance)
		}
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "b"}, ids)
}

func TestFilterByLocation_EmptyPool(t *testing.T) {
	me := testOwner("me", 0, 0, allDay)
	assert.Empty(t, FilterByLocation(me, nil, 50))
}

func TestFilterByAvailability(t *testing.T) {
	me := testOwner("me", 0, 0, []TimeSlot{SlotEvening, SlotMorning})
	in := []MatchCandidate{
		{Owner: testOwner("both", 0, 0, []TimeSlot{SlotMorning, SlotAfternoon, SlotEvening}), Distance: 1},
		{Owner: testOwner("none", 0, 0, []TimeSlot{SlotAfternoon}), Distance: 2},
		{Owner: testOwner("one", 0, 0, []TimeSlot{SlotMorning}), Distance: 3},
		{Owner: testOwner("empty", 0, 0, nil), Distance: 4},
	}

	got := FilterByAvailability(me, in)
	require.Len(t, got, 2)

	assert.Equal(t, "both", got[0].Owner.ID)
	// orden del owner consultante, no del candidato
	assert.Equal(t, []TimeSlot{SlotEvening, SlotMorning}, got[0].CommonTimes)
	assert.Equal(t, 1.0, got[0].Distance)

	assert.Equal(t, "one", got[1].Owner.ID)
	assert.Equal(t, []TimeSlot{SlotMorning}, got[1].CommonTimes)

	for _, c := range got {
		assert.NotEmpty(t, c.CommonTimes)
		assert.Subset(t, me.Availability, c.CommonTimes)
		assert.Subset(t, c.Owner.Availability, c.CommonTimes)
	}
}

func TestFilterByAvailability_DuplicateSlotsCollapsed(t *testing.T) {
	me := testOwner("me", 0, 0, []TimeSlot{SlotMorning, SlotMorning, SlotEvening})
	in := []MatchCandidate{{Owner: testOwner("o", 0, 0, []TimeSlot{SlotMorning, SlotEvening, SlotMorning})}}

	got := FilterByAvailability(me, in)
	require.Len(t, got, 1)
	assert.Equal(t, []TimeSlot{SlotMorning, SlotEvening}, got[0].CommonTimes)
}
