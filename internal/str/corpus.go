//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cdlopez/LDASongServer/internal/vv"
)

//
// THE THREE SOURCE SCHEMAS; see corpus.Load() for how the rows get built
//

// NullInt - an int that might not be there; upstream cells are sometimes blank or junk and that must not poison a row
type NullInt struct {
	Int   int
	Valid bool
}

// NewNullInt - a valid NullInt
func NewNullInt(i int) NullInt {
	return NullInt{Int: i, Valid: true}
}

func (n NullInt) String() string {
	if !n.Valid {
		return vv.UNDATEDSONG
	}
	return fmt.Sprintf("%d", n.Int)
}

// MarshalJSON - an invalid NullInt is null on the wire, never a fake zero
func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Int)
}

// JSONFloat - a float64 that marshals NaN as null; encoding/json refuses bare NaN
type JSONFloat float64

func (f JSONFloat) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(f)) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

// TopicWordWeight - one row of the topic-word source: a word's weight inside one topic
type TopicWordWeight struct {
	TopicID int     `json:"topic"`
	Word    string  `json:"word"`
	Weight  float64 `json:"weight"` // NaN if the cell would not parse
	Rank    float64 `json:"rank"`   // NaN if the cell would not parse
}

// SongTopicAssignment - one row of the assignment source: a song and its topic distribution
type SongTopicAssignment struct {
	Song              string
	Year              NullInt
	DominantTopicID   NullInt
	DominantTopicName string
	DominantProb      float64
	TopicDistribution [vv.NUMBEROFTOPICS]float64 // index i = probability mass on topic i+1; NaN for unparseable cells
	NormalizedKey     string                     // derived; see corpus.NormalizeTitle()
}

// HasProb - is slot i (1-indexed topic id) a real number?
func (s *SongTopicAssignment) HasProb(topicid int) bool {
	if topicid < 1 || topicid > vv.NUMBEROFTOPICS {
		return false
	}
	return !math.IsNaN(s.TopicDistribution[topicid-1])
}

// SongLyrics - one row of the lyric source
type SongLyrics struct {
	Song          string
	Year          NullInt
	Lyrics        string
	NormalizedKey string
}
