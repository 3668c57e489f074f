//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"strconv"

	"github.com/cdlopez/LDASongServer/internal/corpus"
	"github.com/cdlopez/LDASongServer/internal/gen"
	"github.com/cdlopez/LDASongServer/internal/qry"
	"github.com/cdlopez/LDASongServer/internal/vlt"
	"github.com/labstack/echo/v4"
)

//
// THE "POR TÓPICO" AND "VISTA GLOBAL" VIEWS
//
// a topic id with no data yields empty sequences; the presentation layer renders
// "no data", and nothing here ever raises on a bad id
//

// RtTopicKeywords - the heaviest words of one topic; "/topic/words/2" or "/topic/words/2/20"
func RtTopicKeywords(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtTopicKeywords()") })

	type JSFeeder struct {
		TopicID  int              `json:"topic"`
		Name     string           `json:"name"`
		Keywords []qry.WordWeight `json:"keywords"`
	}

	sc := corpus.Corpus()
	tid := topicparam(c)

	user := vlt.ReadUUIDCookie(c)
	s := vlt.AllSessions.GetSess(user)

	n := s.WordsPerTopic
	if nn, e := strconv.Atoi(c.Param("n")); e == nil && nn > 0 {
		n = nn
	}

	jsf := JSFeeder{
		TopicID:  tid,
		Name:     sc.TopicName(tid),
		Keywords: qry.TopicKeywords(sc, tid, n),
	}

	return gen.JSONresponse(c, jsf)
}

// RtTopicSongs - the songs this topic dominates: oldest first, unknown years last
func RtTopicSongs(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtTopicSongs()") })

	type JSFeeder struct {
		TopicID int                `json:"topic"`
		Name    string             `json:"name"`
		Songs   []qry.SongYearProb `json:"songs"`
	}

	sc := corpus.Corpus()
	tid := topicparam(c)

	// remember the selection
	user := vlt.ReadUUIDCookie(c)
	s := vlt.AllSessions.GetSess(user)
	s.TopicID = tid
	vlt.AllSessions.InsertSess(s)

	jsf := JSFeeder{
		TopicID: tid,
		Name:    sc.TopicName(tid),
		Songs:   qry.SongsDominatedBy(sc, tid),
	}

	return gen.JSONresponse(c, jsf)
}

// RtTopicYearly - one topic's mean probability per year across the whole corpus
func RtTopicYearly(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtTopicYearly()") })

	type JSFeeder struct {
		TopicID int            `json:"topic"`
		Name    string         `json:"name"`
		Series  []qry.YearMean `json:"series"`
	}

	sc := corpus.Corpus()
	tid := topicparam(c)

	jsf := JSFeeder{
		TopicID: tid,
		Name:    sc.TopicName(tid),
		Series:  qry.YearlyMeanForTopic(sc, tid),
	}

	return gen.JSONresponse(c, jsf)
}

// RtYearlyAll - all five topic series over shared year buckets, plus the display names
func RtYearlyAll(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtYearlyAll()") })

	type JSFeeder struct {
		Names  []string        `json:"names"`
		Series []qry.YearMeans `json:"series"`
	}

	sc := corpus.Corpus()

	jsf := JSFeeder{Series: qry.YearlyMeanAllTopics(sc)}
	for _, t := range qry.TopicIDList(sc) {
		jsf.Names = append(jsf.Names, fmt.Sprintf("%d: %s", t, sc.TopicName(t)))
	}

	return gen.JSONresponse(c, jsf)
}

// RtTopicNames - the deduplicated id-to-name table
func RtTopicNames(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtTopicNames()") })

	type JSFeeder struct {
		Topics []qry.TopicIDName `json:"topics"`
	}

	return gen.JSONresponse(c, JSFeeder{Topics: qry.TopicNameTable(corpus.Corpus())})
}

// topicparam - the topic id as sent; junk parses to 0 and 0 matches nothing
func topicparam(c echo.Context) int {
	tid, e := strconv.Atoi(c.Param("id"))
	if e != nil {
		return 0
	}
	return tid
}
