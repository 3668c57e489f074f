//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vlt

import (
	"testing"

	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/cdlopez/LDASongServer/internal/vv"
	"github.com/stretchr/testify/assert"
)

func TestSessionVault(t *testing.T) {
	sv := MakeSessionVault()

	assert.False(t, sv.IsInVault("abc"))

	sv.InsertSess(str.ServerSession{ID: "abc", Song: "La Tortura", TopicID: 3, WordsPerTopic: 20})
	assert.True(t, sv.IsInVault("abc"))

	s := sv.GetSess("abc")
	assert.Equal(t, "La Tortura", s.Song)
	assert.Equal(t, 3, s.TopicID)

	sv.Delete("abc")
	assert.False(t, sv.IsInVault("abc"))
}

func TestGetSessUnknownYieldsDefault(t *testing.T) {
	sv := MakeSessionVault()

	s := sv.GetSess("never-seen")
	assert.Equal(t, "never-seen", s.ID)
	assert.Equal(t, "", s.Song)
	assert.Equal(t, vv.DEFAULTWORDSPERTOPIC, s.WordsPerTopic)
}
