//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/url"

	"github.com/cdlopez/LDASongServer/internal/corpus"
	"github.com/cdlopez/LDASongServer/internal/gen"
	"github.com/cdlopez/LDASongServer/internal/qry"
	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/cdlopez/LDASongServer/internal/vlt"
	"github.com/labstack/echo/v4"
)

//
// THE "POR CANCIÓN" VIEWS
//
// an unknown title is an expected outcome, not a fault: the response carries a warning
// string and the presentation layer shows a notice instead of a chart
//

const (
	WARNNOSONG  = "no song matches '%s' in the assignment data"
	WARNNOLYRIC = "no lyrics found for '%s'"
)

// RtSongList - every title the selector can offer, in file order
func RtSongList(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtSongList()") })

	type JSFeeder struct {
		Songs []string `json:"songs"`
	}

	return gen.JSONresponse(c, JSFeeder{Songs: qry.SongList(corpus.Corpus())})
}

// RtSongInfo - one song's card: year, dominant topic, and that topic's keywords
func RtSongInfo(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtSongInfo()") })

	type JSFeeder struct {
		Song         string           `json:"song"`
		Year         str.NullInt      `json:"year"`
		TopicID      str.NullInt      `json:"dominant_topic"`
		TopicName    string           `json:"nombre_topic"`
		DominantProb str.JSONFloat    `json:"dominant_prob"`
		Keywords     []qry.WordWeight `json:"keywords"`
		HasLyrics    bool             `json:"haslyrics"`
		Warning      string           `json:"warning,omitempty"`
	}

	title := songparam(c)
	sc := corpus.Corpus()

	a, found := sc.FindSongByTitle(title)
	if !found {
		return gen.JSONresponse(c, JSFeeder{Song: title, Warning: fmt.Sprintf(WARNNOSONG, title)})
	}

	// remember the selection so the presentation layer can redraw this song later
	user := vlt.ReadUUIDCookie(c)
	s := vlt.AllSessions.GetSess(user)
	s.Song = a.Song
	vlt.AllSessions.InsertSess(s)

	jsf := JSFeeder{
		Song:         a.Song,
		Year:         a.Year,
		TopicID:      a.DominantTopicID,
		TopicName:    a.DominantTopicName,
		DominantProb: str.JSONFloat(a.DominantProb),
	}

	if a.DominantTopicID.Valid {
		jsf.Keywords = qry.TopicKeywords(sc, a.DominantTopicID.Int, s.WordsPerTopic)
	}

	_, jsf.HasLyrics = sc.FindLyricsByTitle(title)

	return gen.JSONresponse(c, jsf)
}

// RtSongLyrics - the raw lyric text for one song; joined only via the normalized title
func RtSongLyrics(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtSongLyrics()") })

	type JSFeeder struct {
		Song    string      `json:"song"`
		Year    str.NullInt `json:"year"`
		Lyrics  string      `json:"lyrics"`
		Warning string      `json:"warning,omitempty"`
	}

	title := songparam(c)

	l, found := corpus.Corpus().FindLyricsByTitle(title)
	if !found {
		return gen.JSONresponse(c, JSFeeder{Song: title, Warning: fmt.Sprintf(WARNNOLYRIC, title)})
	}

	return gen.JSONresponse(c, JSFeeder{Song: l.Song, Year: l.Year, Lyrics: l.Lyrics})
}

// RtSongTopics - the five-slot topic distribution of one song, named and unrenormalized
func RtSongTopics(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtSongTopics()") })

	type JSFeeder struct {
		Song    string          `json:"song"`
		Slots   []qry.TopicSlot `json:"distribution"`
		Warning string          `json:"warning,omitempty"`
	}

	title := songparam(c)

	slots, found := qry.TopicDistributionFor(corpus.Corpus(), title)
	if !found {
		return gen.JSONresponse(c, JSFeeder{Song: title, Warning: fmt.Sprintf(WARNNOSONG, title)})
	}

	return gen.JSONresponse(c, JSFeeder{Song: title, Slots: slots})
}

// songparam - the title as sent; browsers url-escape the spanish titles
func songparam(c echo.Context) string {
	title := c.Param("title")
	if u, e := url.PathUnescape(title); e == nil {
		title = u
	}
	return title
}
