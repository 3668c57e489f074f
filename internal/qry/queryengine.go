//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package qry

import (
	"math"
	"sort"

	"github.com/cdlopez/LDASongServer/internal/corpus"
	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/cdlopez/LDASongServer/internal/vv"
)

//
// THE READ-ONLY QUERIES THE PRESENTATION LAYER CALLS
//
// every function here is a pure scan over the loaded corpus; nothing is mutated, and an
// unknown song/topic yields an empty result, never a fault: "no data" is a normal outcome
//

// WordWeight - one keyword of a topic
type WordWeight struct {
	Word   string        `json:"word"`
	Weight str.JSONFloat `json:"weight"`
}

// SongYearProb - one song dominated by a topic
type SongYearProb struct {
	Song string        `json:"song"`
	Year str.NullInt   `json:"year"`
	Prob str.JSONFloat `json:"dominant_prob"`
}

// TopicSlot - one of the five slots of a song's topic distribution
type TopicSlot struct {
	TopicID int           `json:"topic"`
	Name    string        `json:"name"`
	Prob    str.JSONFloat `json:"prob"`
}

// TopicIDName - one row of the id-to-name table
type TopicIDName struct {
	TopicID int    `json:"topic_id"`
	Name    string `json:"nombre_topic"`
}

// TopicKeywords - the top N words of a topic, heaviest first
func TopicKeywords(sc *corpus.SongCorpus, topicid int, limit int) []WordWeight {
	var kw []WordWeight
	for i := range sc.TopicWords {
		if sc.TopicWords[i].TopicID == topicid {
			kw = append(kw, WordWeight{Word: sc.TopicWords[i].Word, Weight: str.JSONFloat(sc.TopicWords[i].Weight)})
		}
	}

	// stable: ties keep their file order; unparseable weights sink to the bottom
	sort.SliceStable(kw, func(i, j int) bool {
		a := float64(kw[i].Weight)
		b := float64(kw[j].Weight)
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a > b
	})

	if limit > 0 && len(kw) > limit {
		kw = kw[:limit]
	}

	return kw
}

// SongsDominatedBy - every song whose dominant topic is this one; oldest first, unknown years last
func SongsDominatedBy(sc *corpus.SongCorpus, topicid int) []SongYearProb {
	var syp []SongYearProb
	for i := range sc.Assignments {
		a := &sc.Assignments[i]
		if a.DominantTopicID.Valid && a.DominantTopicID.Int == topicid {
			syp = append(syp, SongYearProb{Song: a.Song, Year: a.Year, Prob: str.JSONFloat(a.DominantProb)})
		}
	}

	sort.SliceStable(syp, func(i, j int) bool {
		yi, yj := syp[i].Year, syp[j].Year
		if yi.Valid != yj.Valid {
			return yi.Valid
		}
		if yi.Valid && yi.Int != yj.Int {
			return yi.Int < yj.Int
		}
		pi := float64(syp[i].Prob)
		pj := float64(syp[j].Prob)
		if math.IsNaN(pi) {
			return false
		}
		if math.IsNaN(pj) {
			return true
		}
		return pi > pj
	})

	return syp
}

// TopicDistributionFor - the five (name, probability) slots of one song, as the model reported them
func TopicDistributionFor(sc *corpus.SongCorpus, title string) ([]TopicSlot, bool) {
	a, found := sc.FindSongByTitle(title)
	if !found {
		return nil, false
	}

	// upstream rounding means the five values need not sum to 1; pass them through untouched
	slots := make([]TopicSlot, vv.NUMBEROFTOPICS)
	for t := 1; t <= vv.NUMBEROFTOPICS; t++ {
		slots[t-1] = TopicSlot{
			TopicID: t,
			Name:    sc.TopicName(t),
			Prob:    str.JSONFloat(a.TopicDistribution[t-1]),
		}
	}

	return slots, true
}

// SongList - every assignment-side title, in file order; this is what the song selector offers
func SongList(sc *corpus.SongCorpus) []string {
	sl := make([]string, len(sc.Assignments))
	for i := range sc.Assignments {
		sl[i] = sc.Assignments[i].Song
	}
	return sl
}

// TopicIDList - the distinct topic ids present in the topic-word data, ascending
func TopicIDList(sc *corpus.SongCorpus) []int {
	seen := make(map[int]struct{})
	for i := range sc.TopicWords {
		seen[sc.TopicWords[i].TopicID] = struct{}{}
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// TopicNameTable - the id-to-name rows, ascending by id
func TopicNameTable(sc *corpus.SongCorpus) []TopicIDName {
	rows := make([]TopicIDName, 0, len(sc.TopicNames))
	for id, n := range sc.TopicNames {
		rows = append(rows, TopicIDName{TopicID: id, Name: n})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].TopicID < rows[j].TopicID })
	return rows
}
