//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"fmt"
	"sync"
	"time"

	"github.com/cdlopez/LDASongServer/internal/lnch"
	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/cdlopez/LDASongServer/internal/vv"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	msg = lnch.Msg
)

//
// THE JOINED, VALIDATED, IMMUTABLE VIEW OF THE THREE SOURCES
//

// SongCorpus - everything the query layer will ever read; built once, never mutated
type SongCorpus struct {
	TopicWords  []str.TopicWordWeight
	Assignments []str.SongTopicAssignment
	Lyrics      []str.SongLyrics
	TopicNames  map[int]string
}

// TopicName - display name for a topic id, with a synthetic fallback for ids the assignment data never named
func (sc *SongCorpus) TopicName(id int) string {
	if n, ok := sc.TopicNames[id]; ok {
		return n
	}
	return fmt.Sprintf(vv.SYNTHETICTOPICNAME, id)
}

// FindSongByTitle - normalized-key scan of the assignment rows; first match wins
func (sc *SongCorpus) FindSongByTitle(title string) (str.SongTopicAssignment, bool) {
	// duplicate normalized keys are a tolerated data-quality wrinkle: file order decides
	k := NormalizeTitle(title)
	for i := range sc.Assignments {
		if sc.Assignments[i].NormalizedKey == k {
			return sc.Assignments[i], true
		}
	}
	return str.SongTopicAssignment{}, false
}

// FindLyricsByTitle - normalized-key scan of the lyric rows; first match wins
func (sc *SongCorpus) FindLyricsByTitle(title string) (str.SongLyrics, bool) {
	k := NormalizeTitle(title)
	for i := range sc.Lyrics {
		if sc.Lyrics[i].NormalizedKey == k {
			return sc.Lyrics[i], true
		}
	}
	return str.SongLyrics{}, false
}

// BuildTopicNameMap - dedup the (dominant_topic, nombre_topic) pairs seen across the assignment rows
func BuildTopicNameMap(assignments []str.SongTopicAssignment) map[int]string {
	// an id that shows up with two names keeps the last one seen; validation does not resolve this
	tn := make(map[int]string)
	for i := range assignments {
		if !assignments[i].DominantTopicID.Valid || assignments[i].DominantTopicName == "" {
			continue
		}
		tn[assignments[i].DominantTopicID.Int] = assignments[i].DominantTopicName
	}
	return tn
}

//
// PROCESS-WIDE MEMOIZED LOAD
//
// the sources are static files: load them exactly once, on first demand, and serve the
// cached result until the process restarts; restart is the only invalidation event
//

var (
	corpusonce sync.Once
	thecorpus  *SongCorpus
)

// Corpus - the one and only SongCorpus; the first caller pays for the load
func Corpus() *SongCorpus {
	corpusonce.Do(func() { thecorpus = loadcorpus() })
	return thecorpus
}

// loadcorpus - read and validate the three sources concurrently; any load-time error refuses to serve
func loadcorpus() *SongCorpus {
	const (
		TW = "%d topic-word rows built: []TopicWordWeight"
		AS = "%d song assignments built: []SongTopicAssignment"
		LY = "%d lyric rows built: []SongLyrics"
		TN = "topic-name map built (%d topics)"
	)

	cfg := lnch.Config
	sc := &SongCorpus{}
	start := time.Now()

	// pretty-printing "1,234" style counts
	pp := message.NewPrinter(language.English)

	var awaiting sync.WaitGroup
	var failures [3]error

	awaiting.Add(1)
	go func() {
		defer awaiting.Done()
		previous := time.Now()
		sc.TopicWords, failures[0] = LoadTopicWords(cfg.TopicWordsFile, cfg.Decoders)
		msg.Timer("C1", pp.Sprintf(TW, len(sc.TopicWords)), start, previous)
	}()

	awaiting.Add(1)
	go func() {
		defer awaiting.Done()
		previous := time.Now()
		sc.Assignments, failures[1] = LoadAssignments(cfg.AssignmentsFile, cfg.Decoders)
		msg.Timer("C2", pp.Sprintf(AS, len(sc.Assignments)), start, previous)
	}()

	awaiting.Add(1)
	go func() {
		defer awaiting.Done()
		previous := time.Now()
		sc.Lyrics, failures[2] = LoadLyrics(cfg.LyricsFile)
		msg.Timer("C3", pp.Sprintf(LY, len(sc.Lyrics)), start, previous)
	}()

	awaiting.Wait()

	for _, e := range failures {
		// schema/decode problems are unrecoverable: refuse to start rather than serve bad aggregates
		msg.EF(e, "loadcorpus()")
	}

	sc.TopicNames = BuildTopicNameMap(sc.Assignments)
	msg.FYI(fmt.Sprintf(TN, len(sc.TopicNames)))

	return sc
}
