package simulate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seatgrid/grid"
	"github.com/katalvlaran/seatgrid/simulate"
)

// referenceLayout is the canonical 10×10 sample: it settles at 37
// occupied seats under the Adjacent(1,4,0) rule and 26 under the
// Visible(5,0) rule.
const referenceLayout = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL`

// smallLayout is a 4×4 mixed layout that needs more than one evaluation
// round to settle under Adjacent(1,4,0).
const smallLayout = `##.#
L#L.
#L#L
.LL#`

func mustParse(t *testing.T, layout string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseString(layout)
	require.NoError(t, err)

	return g
}

// TestAdjacent_Errors verifies Method construction guards.
func TestAdjacent_Errors(t *testing.T) {
	_, err := simulate.Adjacent(0, 4, 0)
	assert.ErrorIs(t, err, simulate.ErrBadRadius)

	_, err = simulate.Adjacent(1, -1, 0)
	assert.ErrorIs(t, err, simulate.ErrBadThreshold)

	_, err = simulate.Adjacent(1, 4, -1)
	assert.ErrorIs(t, err, simulate.ErrBadThreshold)
}

// TestVisible_Errors verifies Method construction guards.
func TestVisible_Errors(t *testing.T) {
	_, err := simulate.Visible(-1, 0)
	assert.ErrorIs(t, err, simulate.ErrBadThreshold)

	_, err = simulate.Visible(5, -1)
	assert.ErrorIs(t, err, simulate.ErrBadThreshold)
}

// TestNew_Errors verifies Simulator construction guards.
func TestNew_Errors(t *testing.T) {
	g := mustParse(t, smallLayout)

	_, err := simulate.New(nil, simulate.DefaultAdjacent())
	assert.ErrorIs(t, err, simulate.ErrNilGrid)

	_, err = simulate.New(g, simulate.Method{})
	assert.ErrorIs(t, err, simulate.ErrBadMethod, "the zero Method must be rejected")

	_, err = simulate.New(g, simulate.DefaultAdjacent(), simulate.WithParallelism(0))
	assert.ErrorIs(t, err, simulate.ErrBadOption)

	_, err = simulate.New(g, simulate.DefaultAdjacent(), simulate.WithMaxSteps(-1))
	assert.ErrorIs(t, err, simulate.ErrBadOption)
}

// TestRun_AdjacentReference settles the canonical layout under the
// Adjacent rule and checks the literal expected total.
func TestRun_AdjacentReference(t *testing.T) {
	sim, err := simulate.New(mustParse(t, referenceLayout), simulate.DefaultAdjacent())
	require.NoError(t, err)

	occupied, err := sim.Run()
	require.NoError(t, err)
	assert.Equal(t, 37, occupied)
	assert.True(t, sim.Converged())
}

// TestRun_VisibleReference settles the canonical layout under the
// Visible rule and checks the literal expected total.
func TestRun_VisibleReference(t *testing.T) {
	sim, err := simulate.New(mustParse(t, referenceLayout), simulate.DefaultVisible())
	require.NoError(t, err)

	occupied, err := sim.Run()
	require.NoError(t, err)
	assert.Equal(t, 26, occupied)
	assert.True(t, sim.Converged())
}

// TestStep_MultiRound drives the 4×4 layout round by round and checks
// it takes strictly more than one evaluation round to settle.
func TestStep_MultiRound(t *testing.T) {
	sim, err := simulate.New(mustParse(t, smallLayout), simulate.DefaultAdjacent())
	require.NoError(t, err)

	rounds := 0
	for {
		_, changed := sim.Step()
		rounds++
		if !changed {
			break
		}
		require.Less(t, rounds, 100, "layout must settle")
	}
	assert.Greater(t, rounds, 1, "settling must take more than one round")
	assert.True(t, sim.Converged())
	assert.Equal(t, 6, sim.Occupied())
}

// TestRun_FixedPoint checks that re-applying the rule to a settled grid
// changes nothing, under both rules.
func TestRun_FixedPoint(t *testing.T) {
	for _, m := range []simulate.Method{simulate.DefaultAdjacent(), simulate.DefaultVisible()} {
		sim, err := simulate.New(mustParse(t, referenceLayout), m)
		require.NoError(t, err)
		final, err := sim.Run()
		require.NoError(t, err)

		// Further steps on the settled simulator are no-ops.
		occupied, changed := sim.Step()
		assert.False(t, changed)
		assert.Equal(t, final, occupied)

		// A fresh simulator on the settled grid converges in zero rounds.
		resim, err := simulate.New(sim.Grid(), m)
		require.NoError(t, err)
		occupied, err = resim.Run()
		require.NoError(t, err)
		assert.Equal(t, final, occupied)
		assert.Equal(t, 0, resim.Steps())
	}
}

// TestRun_NoSeats checks that an all-Floor layout settles immediately
// with zero occupied seats.
func TestRun_NoSeats(t *testing.T) {
	sim, err := simulate.New(mustParse(t, "...\n...\n..."), simulate.DefaultAdjacent())
	require.NoError(t, err)

	occupied, err := sim.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, occupied)
	assert.Equal(t, 0, sim.Steps())
	assert.True(t, sim.Converged())
}

// TestRun_FloorInvariance checks that Floor tiles survive any number of
// rounds in place.
func TestRun_FloorInvariance(t *testing.T) {
	start := mustParse(t, referenceLayout)
	sim, err := simulate.New(start, simulate.DefaultVisible())
	require.NoError(t, err)
	_, err = sim.Run()
	require.NoError(t, err)

	final := sim.Grid()
	require.Equal(t, start.Len(), final.Len())
	for i := 0; i < start.Len(); i++ {
		if start.At(i) == grid.Floor {
			assert.Equal(t, grid.Floor, final.At(i), "floor at index %d must not change", i)
		} else {
			assert.True(t, final.At(i).IsSeat(), "seat at index %d must stay a seat", i)
		}
	}
}

// TestRun_CallerGridUntouched ensures the simulator works on its own copy.
func TestRun_CallerGridUntouched(t *testing.T) {
	g := mustParse(t, referenceLayout)
	before := g.Tiles()

	sim, err := simulate.New(g, simulate.DefaultAdjacent())
	require.NoError(t, err)
	_, err = sim.Run()
	require.NoError(t, err)

	assert.Equal(t, before, g.Tiles(), "caller's grid must not be mutated")
}

// TestRun_Parallel checks that worker-split counting matches the
// sequential results exactly.
func TestRun_Parallel(t *testing.T) {
	for _, m := range []simulate.Method{simulate.DefaultAdjacent(), simulate.DefaultVisible()} {
		seq, err := simulate.New(mustParse(t, referenceLayout), m)
		require.NoError(t, err)
		par, err := simulate.New(mustParse(t, referenceLayout), m, simulate.WithParallelism(4))
		require.NoError(t, err)

		want, err := seq.Run()
		require.NoError(t, err)
		got, err := par.Run()
		require.NoError(t, err)

		assert.Equal(t, want, got)
		assert.Equal(t, seq.Steps(), par.Steps())
		assert.Equal(t, seq.Grid().Tiles(), par.Grid().Tiles())
	}
}

// TestRun_MaxSteps checks the opt-in ceiling surfaces ErrNoConvergence.
func TestRun_MaxSteps(t *testing.T) {
	sim, err := simulate.New(mustParse(t, referenceLayout), simulate.DefaultAdjacent(),
		simulate.WithMaxSteps(1))
	require.NoError(t, err)

	_, err = sim.Run()
	assert.ErrorIs(t, err, simulate.ErrNoConvergence)
	assert.False(t, sim.Converged())
}

// TestStep_Deterministic re-runs the same layout and compares the full
// step sequence.
func TestStep_Deterministic(t *testing.T) {
	a, err := simulate.New(mustParse(t, referenceLayout), simulate.DefaultVisible())
	require.NoError(t, err)
	b, err := simulate.New(mustParse(t, referenceLayout), simulate.DefaultVisible())
	require.NoError(t, err)

	for {
		occA, chA := a.Step()
		occB, chB := b.Step()
		require.Equal(t, chA, chB)
		require.Equal(t, occA, occB)
		if !chA {
			break
		}
	}
}
