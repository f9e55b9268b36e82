package generated

import (
	"context"
	"strconv"
	"testing"

	"dog-playdate-matcher/internal/domain/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ProducesValidOwners(t *testing.T) {
	g := New(42)
	owners := g.Generate(50)
	require.Len(t, owners, 50)

	for i, o := range owners {
		assert.Equal(t, strconv.Itoa(i+1), o.ID)
		assert.GreaterOrEqual(t, len(o.Dogs), 1)
		assert.LessOrEqual(t, len(o.Dogs), 3)
		assert.NotEmpty(t, o.Availability)

		// lo generado debe pasar la misma validación de borde que un request real
		verr := matching.ValidateOwner(matching.NewOwnerPayload(o))
		assert.Nil(t, verr, "owner %s: %v", o.ID, verr)

		for _, d := range o.Dogs {
			assert.GreaterOrEqual(t, d.SizeLb, 10)
			assert.LessOrEqual(t, d.SizeLb, 120)
		}
	}
}

func TestGenerate_SameSeedIsDeterministic(t *testing.T) {
	a := New(7).Generate(10)
	b := New(7).Generate(10)
	assert.Equal(t, a, b)
}

func TestGenerate_ZeroOrNegative(t *testing.T) {
	g := New(1)
	assert.Empty(t, g.Generate(0))
	assert.Empty(t, g.Generate(-3))
}

func TestSource_ListCandidates(t *testing.T) {
	src := NewSource(New(3), 20)

	owners, err := src.ListCandidates(context.Background())
	require.NoError(t, err)
	assert.Len(t, owners, 20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.ListCandidates(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
