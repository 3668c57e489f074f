//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"github.com/cdlopez/LDASongServer/internal/corpus"
	"github.com/cdlopez/LDASongServer/internal/gen"
	"github.com/cdlopez/LDASongServer/internal/qry"
	"github.com/cdlopez/LDASongServer/internal/vlt"
	"github.com/cdlopez/LDASongServer/internal/vv"
	"github.com/labstack/echo/v4"
)

// RtFrontpage - the corpus overview the presentation layer draws its landing page from
func RtFrontpage(c echo.Context) error {
	c.Response().After(func() { msg.LogPaths("RtFrontpage()") })

	type JSFeeder struct {
		Version    string            `json:"version"`
		Songs      int               `json:"songs"`
		WithLyrics int               `json:"songswithlyrics"`
		TopicWords int               `json:"topicwordrows"`
		Topics     []qry.TopicIDName `json:"topics"`
		SongList   []string          `json:"songlist"`
	}

	vlt.ReadUUIDCookie(c)

	sc := corpus.Corpus()

	jsf := JSFeeder{
		Version:    vv.VERSION,
		Songs:      len(sc.Assignments),
		WithLyrics: len(sc.Lyrics),
		TopicWords: len(sc.TopicWords),
		Topics:     qry.TopicNameTable(sc),
		SongList:   qry.SongList(sc),
	}

	return gen.JSONresponse(c, jsf)
}
