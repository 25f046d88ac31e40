package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func snapshotOf(titles ...string) Snapshot {
	snapshot := make(Snapshot, len(titles))
	for i, title := range titles {
		snapshot[i] = Option{Title: title, Position: i}
	}
	return snapshot
}

func TestMatchOptionExactWinsOverLongerCandidate(t *testing.T) {
	snapshot := snapshotOf("Bogota D.C.", "Bogota")

	m := MatchOption("Bogota", snapshot)

	assert.Equal(t, MatchExact, m.Kind)
	assert.Equal(t, "Bogota", m.Option.Title)
}

func TestMatchOptionNormalizedEqualityIsExact(t *testing.T) {
	snapshot := snapshotOf("Cédula de Ciudadanía")

	m := MatchOption("cedula de ciudadania", snapshot)

	assert.Equal(t, MatchExact, m.Kind)
	assert.Equal(t, "Cédula de Ciudadanía", m.Option.Title)
}

func TestMatchOptionPartialSubstring(t *testing.T) {
	snapshot := snapshotOf("Bogota D.C.")

	m := MatchOption("bogota", snapshot)

	assert.Equal(t, MatchPartial, m.Kind)
	assert.Equal(t, "Bogota D.C.", m.Option.Title)
}

func TestMatchOptionFirstPartialWins(t *testing.T) {
	snapshot := snapshotOf("Norte de Medellin", "Sur de Medellin")

	m := MatchOption("medellin", snapshot)

	assert.Equal(t, MatchPartial, m.Kind)
	assert.Equal(t, "Norte de Medellin", m.Option.Title)
	assert.Equal(t, 0, m.Option.Position)
}

func TestMatchOptionExactBeatsEarlierPartial(t *testing.T) {
	// A partial candidate appearing before the exact one must not win.
	snapshot := snapshotOf("Medellin Norte", "Medellin")

	m := MatchOption("medellin", snapshot)

	assert.Equal(t, MatchExact, m.Kind)
	assert.Equal(t, "Medellin", m.Option.Title)
	assert.Equal(t, 1, m.Option.Position)
}

func TestMatchOptionNone(t *testing.T) {
	snapshot := snapshotOf("Bogota", "Medellin", "Cali")

	m := MatchOption("Atlantis", snapshot)

	assert.Equal(t, MatchNone, m.Kind)
}

func TestMatchOptionEmptyTargetNeverMatches(t *testing.T) {
	snapshot := snapshotOf("Bogota")

	assert.Equal(t, MatchNone, MatchOption("", snapshot).Kind)
	assert.Equal(t, MatchNone, MatchOption("  , .", snapshot).Kind)
}

func TestSnapshotTitles(t *testing.T) {
	snapshot := Snapshot{
		{Title: "Bogota", Position: 0},
		{Title: "Cali", Position: 2},
	}
	assert.Equal(t, []string{"Bogota", "Cali"}, snapshot.Titles())
}
