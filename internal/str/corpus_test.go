//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullIntJSON(t *testing.T) {
	b, e := json.Marshal(NewNullInt(2005))
	require.NoError(t, e)
	assert.Equal(t, "2005", string(b))

	b, e = json.Marshal(NullInt{})
	require.NoError(t, e)
	assert.Equal(t, "null", string(b), "an unknown year is null on the wire, never zero")
}

func TestJSONFloat(t *testing.T) {
	b, e := json.Marshal(JSONFloat(0.62))
	require.NoError(t, e)
	assert.Equal(t, "0.62", string(b))

	// encoding/json chokes on bare NaN; a failed coercion must still serialize
	b, e = json.Marshal(JSONFloat(math.NaN()))
	require.NoError(t, e)
	assert.Equal(t, "null", string(b))
}

func TestHasProb(t *testing.T) {
	a := SongTopicAssignment{TopicDistribution: [5]float64{0.5, math.NaN(), 0.1, 0.1, 0.3}}
	assert.True(t, a.HasProb(1))
	assert.False(t, a.HasProb(2))
	assert.False(t, a.HasProb(0))
	assert.False(t, a.HasProb(6))
}
