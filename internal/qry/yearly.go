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
	"gonum.org/v1/gonum/stat"
)

//
// PER-YEAR AGGREGATION
//
// rows with an unknown year never enter a bucket; cells that failed coercion never enter a
// mean: a missing number is missing, not zero
//

// YearMean - one year bucket of one topic's average probability
type YearMean struct {
	Year int           `json:"year"`
	Mean str.JSONFloat `json:"mean"`
}

// YearMeans - one year bucket of all five topics' averages; the series share these buckets
type YearMeans struct {
	Year  int                              `json:"year"`
	Means [vv.NUMBEROFTOPICS]str.JSONFloat `json:"means"`
}

// YearlyMeanForTopic - mean Topic_{id} probability per year, oldest year first
func YearlyMeanForTopic(sc *corpus.SongCorpus, topicid int) []YearMean {
	if topicid < 1 || topicid > vv.NUMBEROFTOPICS {
		return nil
	}

	buckets := make(map[int][]float64)
	for i := range sc.Assignments {
		a := &sc.Assignments[i]
		if !a.Year.Valid {
			continue
		}
		if p := a.TopicDistribution[topicid-1]; !math.IsNaN(p) {
			buckets[a.Year.Int] = append(buckets[a.Year.Int], p)
		}
	}

	ym := make([]YearMean, 0, len(buckets))
	for y, vals := range buckets {
		ym = append(ym, YearMean{Year: y, Mean: str.JSONFloat(stat.Mean(vals, nil))})
	}
	sort.Slice(ym, func(i, j int) bool { return ym[i].Year < ym[j].Year })

	return ym
}

// YearlyMeanAllTopics - all five series at once so the charts get identical year buckets
func YearlyMeanAllTopics(sc *corpus.SongCorpus) []YearMeans {
	buckets := make(map[int]*[vv.NUMBEROFTOPICS][]float64)
	for i := range sc.Assignments {
		a := &sc.Assignments[i]
		if !a.Year.Valid {
			continue
		}
		if _, ok := buckets[a.Year.Int]; !ok {
			buckets[a.Year.Int] = &[vv.NUMBEROFTOPICS][]float64{}
		}
		for t := 0; t < vv.NUMBEROFTOPICS; t++ {
			if p := a.TopicDistribution[t]; !math.IsNaN(p) {
				buckets[a.Year.Int][t] = append(buckets[a.Year.Int][t], p)
			}
		}
	}

	ym := make([]YearMeans, 0, len(buckets))
	for y, vals := range buckets {
		row := YearMeans{Year: y}
		for t := 0; t < vv.NUMBEROFTOPICS; t++ {
			// stat.Mean of an empty bucket is NaN; it goes out as null, not as a made-up zero
			row.Means[t] = str.JSONFloat(stat.Mean(vals[t], nil))
		}
		ym = append(ym, row)
	}
	sort.Slice(ym, func(i, j int) bool { return ym[i].Year < ym[j].Year })

	return ym
}
