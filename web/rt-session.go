//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cdlopez/LDASongServer/internal/gen"
	"github.com/cdlopez/LDASongServer/internal/vlt"
	"github.com/cdlopez/LDASongServer/internal/vv"
	"github.com/labstack/echo/v4"
)

// RtSetOption - modify the session in light of the selection made
func RtSetOption(c echo.Context) error {
	const (
		FAIL1 = "RtSetOption() was given bad input: %s"
	)

	user := vlt.ReadUUIDCookie(c)
	optandval := c.Param("opt")
	if u, e := url.PathUnescape(optandval); e == nil {
		optandval = u
	}
	parsed := strings.SplitN(optandval, "/", 2)

	if len(parsed) != 2 {
		msg.WARN(fmt.Sprintf(FAIL1, optandval))
		return c.String(http.StatusOK, "")
	}

	opt := parsed[0]
	val := parsed[1]

	s := vlt.AllSessions.GetSess(user)

	switch opt {
	case "song":
		s.Song = val
	case "topic":
		tid, e := strconv.Atoi(val)
		if e != nil || tid < 1 || tid > vv.NUMBEROFTOPICS {
			msg.WARN(fmt.Sprintf(FAIL1, optandval))
			return c.String(http.StatusOK, "")
		}
		s.TopicID = tid
	case "words":
		wt, e := strconv.Atoi(val)
		if e != nil {
			msg.WARN(fmt.Sprintf(FAIL1, optandval))
			return c.String(http.StatusOK, "")
		}
		if wt < vv.MINWORDSPERTOPIC {
			wt = vv.MINWORDSPERTOPIC
		}
		if wt > vv.MAXWORDSPERTOPIC {
			wt = vv.MAXWORDSPERTOPIC
		}
		s.WordsPerTopic = wt
	default:
		msg.WARN(fmt.Sprintf(FAIL1, optandval))
		return c.String(http.StatusOK, "")
	}

	vlt.AllSessions.InsertSess(s)
	return c.String(http.StatusOK, "")
}

// RtSessionInfo - the current selections, so the presentation layer can redraw where it left off
func RtSessionInfo(c echo.Context) error {
	user := vlt.ReadUUIDCookie(c)
	return gen.JSONresponse(c, vlt.AllSessions.GetSess(user))
}

// RtResetSession - forget the client's selections and hand out a fresh cookie
func RtResetSession(c echo.Context) error {
	user := vlt.ReadUUIDCookie(c)
	vlt.AllSessions.Delete(user)
	vlt.WriteUUIDCookie(c)
	return RtSessionInfo(c)
}
