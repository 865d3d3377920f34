// SPDX-License-Identifier: MIT
// Package builder_test verifies constructor topology, labels, weights and
// error paths, and that generated campuses route as expected.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/reach"
	"github.com/katalvlaran/campusnav/route"
)

// one returns the single node labelled label.
func one(t *testing.T, m *core.BuildingMap, label string) core.NodeID {
	t.Helper()
	ids := m.FindByLabel(label)
	require.Lenf(t, ids, 1, "label %q", label)

	return ids[0]
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cons []builder.Constructor
		want error
	}{
		{"nil constructor", []builder.Constructor{nil}, builder.ErrConstructFailed},
		{"chain too short", []builder.Constructor{builder.Chain(1, 1)}, builder.ErrTooFewNodes},
		{"chain negative weight", []builder.Constructor{builder.Chain(3, -1)}, core.ErrInvalidWeight},
		{"corridor floor 0", []builder.Constructor{builder.Corridor(builder.CorridorLayout{Floor: 0, Junctions: 2})}, builder.ErrBadFloor},
		{"corridor no junctions", []builder.Constructor{builder.Corridor(builder.CorridorLayout{Floor: 1})}, builder.ErrTooFewNodes},
		{"corridor three rooms per junction", []builder.Constructor{builder.Corridor(builder.CorridorLayout{Floor: 1, Junctions: 1, RoomsPerJunction: 3})}, builder.ErrConstructFailed},
		{"stairwell single floor", []builder.Constructor{builder.Stairwell("S", 1, 0, 0, 1)}, builder.ErrBadFloor},
		{"stairwell without corridor", []builder.Constructor{builder.Stairwell("S", 1, 0, 0, 1, 2)}, builder.ErrConstructFailed},
		{"passage same building", []builder.Constructor{builder.Passage(1, builder.Door{Building: 1}, builder.Door{Building: 1})}, builder.ErrConstructFailed},
		{"campus no buildings", []builder.Constructor{builder.Campus(builder.CampusConfig{Floors: 1, Junctions: 1})}, builder.ErrTooFewNodes},
		{"campus passage floor", []builder.Constructor{builder.Campus(builder.CampusConfig{Buildings: 1, Floors: 2, Junctions: 1, PassageFloor: 3})}, builder.ErrBadFloor},
		{"campus stair placement", []builder.Constructor{builder.Campus(builder.CampusConfig{Buildings: 1, Floors: 2, Junctions: 1, Stairs: "roof"})}, builder.ErrConstructFailed},
		{"demo twice", []builder.Constructor{builder.Demo(), builder.Demo()}, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.Build(tc.cons...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, m)
		})
	}
}

func TestChain(t *testing.T) {
	t.Parallel()
	m, err := builder.Build(builder.Chain(5, 7))
	require.NoError(t, err)
	assert.Equal(t, 5, m.Len())
	assert.Equal(t, 4, m.EdgeCount())

	p := route.FindShortestPath(one(t, m, "N0"), one(t, m, "N4"), m)
	assert.Equal(t, 28.0, p.Cost)
	assert.Len(t, p.Nodes, 5)
}

func TestCorridor_Layout(t *testing.T) {
	t.Parallel()
	m, err := builder.Build(builder.Corridor(builder.CorridorLayout{
		Building: 1, Floor: 2, Junctions: 3, RoomsPerJunction: 2,
	}))
	require.NoError(t, err)
	assert.Equal(t, 9, m.Len())
	assert.Equal(t, 2+6, m.EdgeCount())

	j1 := one(t, m, builder.CorridorLabel(1, 2, 1))
	j2 := one(t, m, builder.CorridorLabel(1, 2, 2))
	r1 := one(t, m, "1.201")
	r2 := one(t, m, "1.202")
	r3 := one(t, m, "1.203")

	w, ok := m.Weight(j1, j2)
	require.True(t, ok)
	assert.Equal(t, int64(builder.DefaultSpacing), w)
	assert.True(t, m.HasEdge(j1, r1))
	assert.True(t, m.HasEdge(j1, r2))
	assert.True(t, m.HasEdge(j2, r3))

	n1, _ := m.Node(r1)
	n2, _ := m.Node(r2)
	assert.Less(t, n1.Y, n2.Y, "odd rooms are on the north side")
	nj, _ := m.Node(j1)
	assert.True(t, nj.IsCorridor())
	assert.Equal(t, 2, nj.Floor)
}

func TestStairwell_AttachesToNearestJunction(t *testing.T) {
	t.Parallel()
	m, err := builder.BuildWith(
		[]builder.Option{builder.WithStairWeight(30)},
		builder.Corridor(builder.CorridorLayout{Building: 1, Floor: 1, Junctions: 3}),
		builder.Corridor(builder.CorridorLayout{Building: 1, Floor: 2, Junctions: 3}),
		builder.Stairwell("East", 1, 4*builder.DefaultSpacing, 0, 1, 2),
	)
	require.NoError(t, err)

	s1 := one(t, m, "East F1")
	s2 := one(t, m, "East F2")
	w, ok := m.Weight(s1, s2)
	require.True(t, ok)
	assert.Equal(t, int64(30), w)
	assert.True(t, m.HasEdge(s1, one(t, m, builder.CorridorLabel(1, 1, 3))))
	assert.True(t, m.HasEdge(s2, one(t, m, builder.CorridorLabel(1, 2, 3))))

	n, _ := m.Node(s1)
	assert.Equal(t, core.VerticalConnector, n.Kind)
}

func TestWeightPolicies(t *testing.T) {
	t.Parallel()
	m, err := builder.BuildWith(
		[]builder.Option{builder.WithWeightFn(builder.FixedWeight(3))},
		builder.Corridor(builder.CorridorLayout{Building: 1, Floor: 1, Junctions: 2, Spacing: 80}),
	)
	require.NoError(t, err)
	w, _ := m.Weight(one(t, m, builder.CorridorLabel(1, 1, 1)), one(t, m, builder.CorridorLabel(1, 1, 2)))
	assert.Equal(t, int64(3), w)

	assert.Panics(t, func() { builder.FixedWeight(-1) })
	assert.Panics(t, func() { builder.WithStairWeight(-1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestCampus(t *testing.T) {
	t.Parallel()
	cfg := builder.CampusConfig{
		Buildings: 2, Floors: 3, Junctions: 4, RoomsPerJunction: 2,
		Stairs: builder.StairsEnds,
	}
	m, err := builder.Build(builder.Campus(cfg))
	require.NoError(t, err)

	// Per building: 3 floors × (4 junctions + 8 rooms) + 2 stairwells × 3 landings.
	assert.Equal(t, 2*(3*12+6)+2, m.Len())
	// Per building: 3 × (3 + 8) corridor edges + 2 × (3 attachments + 2 flights).
	assert.Equal(t, 2*(33+10)+3, m.EdgeCount())

	st := m.Stats()
	assert.Equal(t, 12, st.Connectors)
	assert.Equal(t, 2, st.Transitions)
	assert.Equal(t, 2, st.Buildings)
	assert.Equal(t, 6, st.Floors, "distinct (building, floor) levels")

	require.Len(t, reach.Components(m), 1, "every node is reachable")

	// 1.101 → 2.301: corridor east, passage, west stairs of building 2 up two flights.
	p := route.FindShortestPath(one(t, m, "1.101"), one(t, m, "2.301"), m)
	require.True(t, p.Reachable())
	require.NoError(t, route.Validate(m, p))
	assert.Equal(t, 690.0, p.Cost)
}

func TestRoomLabel(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1.203", builder.RoomLabel(1, 2, 3))
	assert.Equal(t, "2.1199", builder.RoomLabel(2, 11, 99))
	assert.Equal(t, "1.1-101", builder.RoomLabel(1, 1, 101))
	assert.Equal(t, "1.1101", builder.RoomLabel(1, 11, 1))
}

func TestCampus_LabelsUnique(t *testing.T) {
	t.Parallel()
	// 102 rooms per floor and two-digit floors: the layout where "b.fkk"
	// alone would repeat labels.
	m, err := builder.Build(builder.Campus(builder.CampusConfig{
		Buildings: 2, Floors: 11, Junctions: 51, RoomsPerJunction: 2,
	}))
	require.NoError(t, err)

	seen := make(map[string]core.NodeID, m.Len())
	for _, id := range m.Nodes() {
		n, _ := m.Node(id)
		prev, dup := seen[n.Label]
		require.Falsef(t, dup, "label %q used by %d and %d", n.Label, prev, id)
		seen[n.Label] = id
	}

	a := one(t, m, builder.RoomLabel(1, 1, 101))
	b := one(t, m, builder.RoomLabel(1, 11, 1))
	assert.NotEqual(t, a, b)
	p := route.FindShortestPath(a, b, m)
	require.True(t, p.Reachable())
	require.NoError(t, route.Validate(m, p))
}

func TestCampus_SingleFloorAndWestStairs(t *testing.T) {
	t.Parallel()
	flat, err := builder.Build(builder.Campus(builder.CampusConfig{Buildings: 3, Floors: 1, Junctions: 2}))
	require.NoError(t, err)
	assert.Equal(t, 0, flat.Stats().Connectors)
	assert.Equal(t, 4, flat.Stats().Transitions)
	assert.Len(t, reach.Components(flat), 1)

	west, err := builder.Build(builder.Campus(builder.CampusConfig{Buildings: 1, Floors: 4, Junctions: 2, Stairs: builder.StairsWest}))
	require.NoError(t, err)
	assert.Equal(t, 4, west.Stats().Connectors)
	assert.Len(t, reach.Components(west), 1)

	center, err := builder.Build(builder.Campus(builder.CampusConfig{Buildings: 1, Floors: 2, Junctions: 3, Stairs: builder.StairsCenter}))
	require.NoError(t, err)
	s := one(t, center, "Stairs 1 Center F1")
	assert.True(t, center.HasEdge(s, one(t, center, builder.CorridorLabel(1, 1, 2))))
}

func TestDemo(t *testing.T) {
	t.Parallel()
	m, err := builder.Build(builder.Demo())
	require.NoError(t, err)
	assert.Equal(t, 44, m.Len())
	assert.Equal(t, 44, m.EdgeCount())
	assert.Len(t, reach.Components(m), 1)

	// The west stairwell is the cheap way up to 273.
	p := route.FindShortestPath(one(t, m, "Entrance"), one(t, m, "273"), m)
	assert.Equal(t, 350.0, p.Cost)
	labels := make([]string, len(p.Nodes))
	for i, id := range p.Nodes {
		n, _ := m.Node(id)
		labels[i] = n.Label
	}
	assert.Equal(t, []string{"Entrance", "Corridor 1-1", "Stairs 1 West", "Stairs 2 West", "Corridor 2-1", "273"}, labels)

	// Coordinates are scaled for display.
	e, _ := m.Node(one(t, m, "Entrance"))
	assert.Equal(t, 67, e.X)
	assert.Equal(t, 472, e.Y)
}

func TestApply(t *testing.T) {
	t.Parallel()
	m, err := builder.Build(builder.Corridor(builder.CorridorLayout{Building: 1, Floor: 1, Junctions: 2}))
	require.NoError(t, err)

	require.NoError(t, builder.Apply(m, nil,
		builder.Corridor(builder.CorridorLayout{Building: 1, Floor: 2, Junctions: 2}),
		builder.Stairwell("West", 1, 0, 0, 1, 2),
	))
	assert.Equal(t, 6, m.Len())

	assert.ErrorIs(t, builder.Apply(nil, nil), builder.ErrConstructFailed)
	assert.ErrorIs(t, builder.Apply(m, nil, nil), builder.ErrConstructFailed)
}

func TestApply_RollsBackOnFailure(t *testing.T) {
	t.Parallel()
	m, err := builder.Build(builder.Corridor(builder.CorridorLayout{Building: 1, Floor: 1, Junctions: 2}))
	require.NoError(t, err)
	nodes, adj, edges := m.Nodes(), m.AdjacencyList(), m.EdgeCount()

	// The stairwell lands on floor 1, then finds no corridor on floor 3.
	err = builder.Apply(m, nil,
		builder.Corridor(builder.CorridorLayout{Building: 1, Floor: 2, Junctions: 2}),
		builder.Stairwell("West", 1, 0, 0, 1, 3),
	)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	assert.Equal(t, nodes, m.Nodes())
	assert.Equal(t, adj, m.AdjacencyList())
	assert.Equal(t, edges, m.EdgeCount())
	assert.Empty(t, m.FindByLabel("West F1"))
	assert.Empty(t, m.FindByLabel(builder.CorridorLabel(1, 2, 1)))
}
