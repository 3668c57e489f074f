//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cdlopez/LDASongServer/internal/lnch"
	"github.com/cdlopez/LDASongServer/internal/vv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	msg = lnch.Msg
)

// StartEchoServer - start serving; this blocks and does not return while the program remains alive
func StartEchoServer() {
	const (
		LLOGFMT = "r: ${status}\tt: ${latency_human}\tu: ${uri}\n"
		RLOGFMT = "${remote_ip}\t${custom}\t${status}\t${bytes_out}\t${uri}\n"
	)

	// ctf - a CustomTagFunc return a short user agent
	ctf := func(c echo.Context, buf *bytes.Buffer) (int, error) {
		ua := strings.Split(c.Request().UserAgent(), " ")
		if len(ua) == 0 {
			return 0, nil
		} else {
			last := ua[len(ua)-1]
			buf.Write([]byte(last))
			return 1, nil
		}
	}

	//
	// SETUP
	//

	e := echo.New()

	switch lnch.Config.EchoLog {
	case 3:
		e.Use(middleware.Logger())
	case 2:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: RLOGFMT, CustomTagFunc: ctf}))
	case 1:
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{Format: LLOGFMT}))
	default:
		// do nothing
	}

	e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(vv.MAXECHOREQPERSECONDPERIP)))

	e.Use(middleware.Recover())

	if lnch.Config.Gzip {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{Level: 5}))
	}

	//
	// ROUTES
	//

	//
	// [a] frontpage ("rt-frontpage.go")
	//

	e.GET("/", RtFrontpage)

	//
	// [b] the per-song views ("rt-songs.go")
	//

	e.GET("/songs", RtSongList)                    // the selector's contents
	e.GET("/song/info/:title", RtSongInfo)         // "u: /song/info/Hips Don't Lie"
	e.GET("/song/lyrics/:title", RtSongLyrics)     // "u: /song/lyrics/Día de Enero"
	e.GET("/song/topics/:title", RtSongTopics)     // the five-slot distribution for one song

	//
	// [c] the per-topic views ("rt-topics.go")
	//

	e.GET("/topic/words/:id", RtTopicKeywords)     // "u: /topic/words/2" or "/topic/words/2/20"
	e.GET("/topic/words/:id/:n", RtTopicKeywords)  //
	e.GET("/topic/songs/:id", RtTopicSongs)        // songs where this topic dominates
	e.GET("/topic/yearly/:id", RtTopicYearly)      // one topic's mean probability per year

	//
	// [d] the global views ("rt-topics.go")
	//

	e.GET("/yearly/all", RtYearlyAll)              // all five series, aligned year buckets
	e.GET("/topicnames", RtTopicNames)             // the id-to-name table

	//
	// [e] session handling ("rt-session.go")
	//

	e.GET("/setoption/:opt", RtSetOption)          // "u: /setoption/topic/2"
	e.GET("/session", RtSessionInfo)
	e.GET("/reset/session", RtResetSession)

	e.HideBanner = true
	e.HidePort = false
	e.Debug = false
	e.DisableHTTP2 = true
	e.Logger.Fatal(e.Start(fmt.Sprintf("%s:%d", lnch.Config.HostIP, lnch.Config.HostPort)))
}
