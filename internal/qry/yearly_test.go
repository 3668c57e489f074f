//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package qry

import (
	"math"
	"testing"

	"github.com/cdlopez/LDASongServer/internal/corpus"
	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearlyMeanAllTopics(t *testing.T) {
	// two songs in 2005: topic-wise averages of the two distributions
	sc := &corpus.SongCorpus{
		Assignments: []str.SongTopicAssignment{
			asgnrow("Hips Don't Lie", str.NewNullInt(2005), 1, "Love", 0.62, [5]float64{0.62, 0.10, 0.10, 0.09, 0.09}),
			asgnrow("Día de Enero", str.NewNullInt(2005), 2, "Nostalgia", 0.55, [5]float64{0.05, 0.55, 0.15, 0.15, 0.10}),
		},
	}

	ym := YearlyMeanAllTopics(sc)
	require.Len(t, ym, 1)
	assert.Equal(t, 2005, ym[0].Year)

	want := []float64{0.335, 0.325, 0.125, 0.12, 0.095}
	for i, w := range want {
		assert.InDelta(t, w, float64(ym[0].Means[i]), 1e-9, "topic %d", i+1)
	}
}

func TestYearlyMeanAllTopicsAlignedBuckets(t *testing.T) {
	ym := YearlyMeanAllTopics(testcorpus())

	// the null-year row contributes nothing; the rest bucket into 1998 and 2005, ascending
	require.Len(t, ym, 2)
	assert.Equal(t, 1998, ym[0].Year)
	assert.Equal(t, 2005, ym[1].Year)
}

func TestYearlyMeanForTopic(t *testing.T) {
	ym := YearlyMeanForTopic(testcorpus(), 1)
	require.Len(t, ym, 2)

	assert.Equal(t, 1998, ym[0].Year)
	assert.InDelta(t, 0.48, float64(ym[0].Mean), 1e-12)

	// 2005 holds exactly three rows: (0.62 + 0.05 + 0.71) / 3
	assert.Equal(t, 2005, ym[1].Year)
	assert.InDelta(t, (0.62+0.05+0.71)/3, float64(ym[1].Mean), 1e-12)
}

func TestYearlyMeanForTopicSkipsNaN(t *testing.T) {
	sc := &corpus.SongCorpus{
		Assignments: []str.SongTopicAssignment{
			asgnrow("a", str.NewNullInt(2001), 1, "Love", 0.5, [5]float64{0.5, 0.1, 0.1, 0.1, 0.2}),
			asgnrow("b", str.NewNullInt(2001), 1, "Love", 0.5, [5]float64{math.NaN(), 0.3, 0.1, 0.1, 0.2}),
		},
	}

	ym := YearlyMeanForTopic(sc, 1)
	require.Len(t, ym, 1)
	// the NaN cell is excluded, not treated as zero: mean is 0.5, not 0.25
	assert.InDelta(t, 0.5, float64(ym[0].Mean), 1e-12)

	// the other topics still average both rows
	all := YearlyMeanAllTopics(sc)
	require.Len(t, all, 1)
	assert.InDelta(t, 0.2, float64(all[0].Means[1]), 1e-12)
}

func TestYearlyMeanForTopicOutOfRange(t *testing.T) {
	assert.Empty(t, YearlyMeanForTopic(testcorpus(), 0))
	assert.Empty(t, YearlyMeanForTopic(testcorpus(), 6))
}
