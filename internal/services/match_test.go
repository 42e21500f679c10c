package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acutia-backend/internal/seed"
)

func TestMatchService_SubsetBoundsOverFullPool(t *testing.T) {
	// Pool of 48: floor(48*0.4)=19, floor(48*0.7)=33.
	for s := int64(0); s < 50; s++ {
		env := newTestEnv(s)

		result := env.match.Search("")

		n := len(result.Matches)
		assert.GreaterOrEqual(t, n, 19, "seed %d", s)
		assert.LessOrEqual(t, n, 33, "seed %d", s)
	}
}

func TestMatchService_ScoresWithinBounds(t *testing.T) {
	for s := int64(0); s < 20; s++ {
		env := newTestEnv(s)

		result := env.match.Search("")

		require.NotEmpty(t, result.Matches)
		for _, p := range result.Matches {
			assert.GreaterOrEqual(t, p.MatchScore, 60, "seed %d photo %s", s, p.ID)
			assert.LessOrEqual(t, p.MatchScore, 97, "seed %d photo %s", s, p.ID)
		}
	}
}

func TestMatchService_EventScopeFiltersPool(t *testing.T) {
	env := newTestEnv(7)

	result := env.match.Search("evt-2")

	require.NotEmpty(t, result.Matches)
	for _, p := range result.Matches {
		assert.Equal(t, "evt-2", p.EventID)
	}

	// 48 photos over 5 events: evt-2 holds at most 10, so the 70% cap
	// keeps the result strictly below the scoped pool size.
	assert.LessOrEqual(t, len(result.Matches), 7)
}

func TestMatchService_EmptyPoolReturnsEmptyResult(t *testing.T) {
	env := newTestEnv(1)

	result := env.match.Search("evt-does-not-exist")

	assert.NotNil(t, result.Matches)
	assert.Empty(t, result.Matches)
}

func TestMatchService_ResultIsPersisted(t *testing.T) {
	env := newTestEnv(3)

	result := env.match.Search("")

	assert.Equal(t, result.Matches, env.match.Matched())
}

func TestMatchService_NewSearchOverwritesPrevious(t *testing.T) {
	env := newTestEnv(3)

	env.match.Search("")
	second := env.match.Search("evt-1")

	assert.Equal(t, second.Matches, env.match.Matched())
}

func TestMatchService_UniqueSelection(t *testing.T) {
	env := newTestEnv(11)

	result := env.match.Search("")

	ids := make(map[string]struct{}, len(result.Matches))
	for _, p := range result.Matches {
		ids[p.ID] = struct{}{}
	}
	assert.Len(t, ids, len(result.Matches), "no photo is selected twice")
}

func TestMatchService_PoolSizeMatchesSeed(t *testing.T) {
	env := newTestEnv(1)
	assert.Len(t, env.catalog.Photos(), seed.PhotoPoolSize)
}
