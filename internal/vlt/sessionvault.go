//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cdlopez/LDASongServer/internal/lnch"
	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

//
// THREAD SAFE INFRASTRUCTURE: MUTEX
//
// the corpus itself is immutable and needs no locking; the sessions are the one piece of
// mutable state in the server, so they live behind this vault
//

var (
	AllSessions = MakeSessionVault()
)

// MakeSessionVault - called only once; yields the AllSessions vault
func MakeSessionVault() SessionVault {
	return SessionVault{
		SessionMap: make(map[string]str.ServerSession),
		mutex:      sync.RWMutex{},
	}
}

// SessionVault - there should be only one of these; and it contains all the sessions
type SessionVault struct {
	SessionMap map[string]str.ServerSession
	mutex      sync.RWMutex
}

func (sv *SessionVault) InsertSess(s str.ServerSession) {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	sv.SessionMap[s.ID] = s
}

func (sv *SessionVault) Delete(id string) {
	sv.mutex.Lock()
	defer sv.mutex.Unlock()
	delete(sv.SessionMap, id)
}

func (sv *SessionVault) IsInVault(id string) bool {
	sv.mutex.RLock()
	defer sv.mutex.RUnlock()
	_, b := sv.SessionMap[id]
	return b
}

func (sv *SessionVault) GetSess(id string) str.ServerSession {
	sv.mutex.RLock()
	defer sv.mutex.RUnlock()
	s, found := sv.SessionMap[id]
	if !found {
		s = MakeDefaultSession(id)
	}
	return s
}

// MakeDefaultSession - fresh selections for a client we have not seen before
func MakeDefaultSession(id string) str.ServerSession {
	return str.ServerSession{
		ID:            id,
		WordsPerTopic: lnch.Config.WordsPerTopic,
	}
}

// cookies here for import issues

// ReadUUIDCookie - find the ID of the client
func ReadUUIDCookie(c echo.Context) string {
	cookie, err := c.Cookie("ID")
	if err != nil {
		id := WriteUUIDCookie(c)
		return id
	}
	id := cookie.Value

	if !AllSessions.IsInVault(id) {
		AllSessions.InsertSess(MakeDefaultSession(id))
	}

	return id
}

// WriteUUIDCookie - set the ID of the client
func WriteUUIDCookie(c echo.Context) string {
	cookie := new(http.Cookie)
	cookie.Name = "ID"
	cookie.Path = "/"
	cookie.Value = uuid.New().String()
	cookie.Expires = time.Now().Add(4800 * time.Hour)
	c.SetCookie(cookie)
	lnch.Msg.TMI(fmt.Sprintf("WriteUUIDCookie() - new ID set: %s", cookie.Value))
	return cookie.Value
}
