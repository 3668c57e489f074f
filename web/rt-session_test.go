//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/cdlopez/LDASongServer/internal/vlt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setoptioncall - run RtSetOption as though the client clicked a selector
func setoptioncall(t *testing.T, id string, optandval string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "ID", Value: id})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/setoption/:opt")
	c.SetParamNames("opt")
	c.SetParamValues(optandval)
	require.NoError(t, RtSetOption(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	return rec
}

func TestRtSetOption(t *testing.T) {
	const ID = "test-session-setoption"
	defer vlt.AllSessions.Delete(ID)

	setoptioncall(t, ID, "topic/3")
	assert.Equal(t, 3, vlt.AllSessions.GetSess(ID).TopicID)

	setoptioncall(t, ID, "song/Hips Don't Lie")
	s := vlt.AllSessions.GetSess(ID)
	assert.Equal(t, "Hips Don't Lie", s.Song)
	assert.Equal(t, 3, s.TopicID, "setting the song must not clobber the topic")
}

func TestRtSetOptionClampsWords(t *testing.T) {
	const ID = "test-session-words"
	defer vlt.AllSessions.Delete(ID)

	setoptioncall(t, ID, "words/99")
	assert.Equal(t, 30, vlt.AllSessions.GetSess(ID).WordsPerTopic)

	setoptioncall(t, ID, "words/1")
	assert.Equal(t, 5, vlt.AllSessions.GetSess(ID).WordsPerTopic)

	setoptioncall(t, ID, "words/20")
	assert.Equal(t, 20, vlt.AllSessions.GetSess(ID).WordsPerTopic)
}

func TestRtSetOptionRejectsJunk(t *testing.T) {
	const ID = "test-session-junk"
	defer vlt.AllSessions.Delete(ID)

	setoptioncall(t, ID, "topic/7")
	setoptioncall(t, ID, "topic/love")
	setoptioncall(t, ID, "words/lots")
	setoptioncall(t, ID, "volume/11")
	setoptioncall(t, ID, "noslashatall")

	// every one of those yields 200 and leaves the session at its defaults
	s := vlt.AllSessions.GetSess(ID)
	assert.Equal(t, 0, s.TopicID)
	assert.Equal(t, "", s.Song)
}

func TestRtSessionInfo(t *testing.T) {
	const ID = "test-session-info"
	defer vlt.AllSessions.Delete(ID)

	vlt.AllSessions.InsertSess(str.ServerSession{ID: ID, Song: "Inevitable", TopicID: 2, WordsPerTopic: 15})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/session", nil)
	req.AddCookie(&http.Cookie{Name: "ID", Value: ID})
	rec := httptest.NewRecorder()
	require.NoError(t, RtSessionInfo(e.NewContext(req, rec)))

	var s str.ServerSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &s))
	assert.Equal(t, "Inevitable", s.Song)
	assert.Equal(t, 2, s.TopicID)
}

func TestRtResetSession(t *testing.T) {
	const ID = "test-session-reset"

	vlt.AllSessions.InsertSess(str.ServerSession{ID: ID, Song: "La Tortura", TopicID: 4, WordsPerTopic: 15})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reset/session", nil)
	req.AddCookie(&http.Cookie{Name: "ID", Value: ID})
	rec := httptest.NewRecorder()
	require.NoError(t, RtResetSession(e.NewContext(req, rec)))
	defer vlt.AllSessions.Delete(ID)

	// the old selections are gone: what remains under this id is a blank default
	s := vlt.AllSessions.GetSess(ID)
	assert.Equal(t, "", s.Song)
	assert.Equal(t, 0, s.TopicID)

	// a replacement cookie went out with the response
	var fresh string
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "ID" {
			fresh = ck.Value
		}
	}
	require.NotEmpty(t, fresh)
	assert.NotEqual(t, ID, fresh)
}
