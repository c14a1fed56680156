package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robustls/robustls/internal/fuzzy"
)

func TestSimilarityIdentical(t *testing.T) {
	assert.Equal(t, 1.0, fuzzy.Similarity("Human", "Human"))
}

func TestSimilarityCloser(t *testing.T) {
	closer := fuzzy.Similarity("Huma", "Human")
	farther := fuzzy.Similarity("Huma", "Zombie")
	assert.Greater(t, closer, farther)
}

func TestRankFilterCapsAndMarksIncomplete(t *testing.T) {
	candidates := []string{"Human", "Humanoid", "Humus", "Zombie", "Dwarf"}
	scored, incomplete := fuzzy.RankFilter("Hum", candidates, 0.5, 2)
	assert.Len(t, scored, 2)
	assert.True(t, incomplete)
}

func TestRankFilterNotIncompleteUnderCap(t *testing.T) {
	candidates := []string{"Human"}
	scored, incomplete := fuzzy.RankFilter("Human", candidates, 0.6, 100)
	assert.Len(t, scored, 1)
	assert.False(t, incomplete)
}
