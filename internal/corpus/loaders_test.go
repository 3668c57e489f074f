//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/cdlopez/LDASongServer/internal/vv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var alldecoders = []string{vv.ENCUTF8, vv.ENCLATIN1, vv.ENCCP1252}

func writetemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, content, vv.WRITEPERMS))
	return p
}

func TestReadDelimitedLatin1Fallback(t *testing.T) {
	// 0xED is "í" in latin-1 and invalid utf-8: the cascade has to move past utf-8
	p := writetemp(t, "l1.csv", []byte("song,year\nD\xeda de Enero,2006\n"))

	records, e := ReadDelimited(p, alldecoders)
	require.NoError(t, e)
	require.Len(t, records, 2)
	assert.Equal(t, "Día de Enero", records[1][0])
}

func TestReadDelimitedCP1252(t *testing.T) {
	// 0x93 is a smart quote in cp1252; skip latin-1 to prove the cascade order is honored
	p := writetemp(t, "cp.csv", []byte("song,year\n\x93Loba\x94,2009\n"))

	records, e := ReadDelimited(p, []string{vv.ENCUTF8, vv.ENCCP1252})
	require.NoError(t, e)
	assert.Equal(t, "“Loba”", records[1][0])
}

func TestReadDelimitedExhausted(t *testing.T) {
	// an unterminated quote breaks csv parsing under every encoding
	p := writetemp(t, "bad.csv", []byte("song,year\n\"no closing quote\n"))

	_, e := ReadDelimited(p, alldecoders)
	var dfe *DecodeFallbackExhausted
	require.ErrorAs(t, e, &dfe)
	assert.Equal(t, alldecoders, dfe.Attempted)
}

func TestLoadTopicWords(t *testing.T) {
	p := writetemp(t, "tw.csv", []byte(
		"topic,word,weight,rank\n"+
			"1,amor,0.031,1\n"+
			"1,corazon,not-a-number,2\n"+
			"2,noche,0.028,1\n"+
			"oops,junk,0.5,3\n"))

	tww, e := LoadTopicWords(p, alldecoders)
	require.NoError(t, e)

	// the junk-topic row is dropped; the junk-weight row survives with NaN
	require.Len(t, tww, 3)
	assert.Equal(t, "amor", tww[0].Word)
	assert.Equal(t, 1, tww[1].TopicID)
	assert.True(t, math.IsNaN(tww[1].Weight))
	assert.Equal(t, 2, tww[2].TopicID)
}

func TestLoadTopicWordsSchemaError(t *testing.T) {
	p := writetemp(t, "norank.csv", []byte("topic,word,weight\n1,amor,0.031\n"))

	_, e := LoadTopicWords(p, alldecoders)
	var se *SchemaError
	require.ErrorAs(t, e, &se)
	assert.Equal(t, []string{"rank"}, se.Missing)
	assert.Contains(t, se.Error(), "rank")
}

func TestLoadAssignments(t *testing.T) {
	p := writetemp(t, "asgn.csv", []byte(
		"song,year,dominant_topic,nombre_topic,dominant_prob,Topic_1,Topic_2,Topic_3,Topic_4,Topic_5\n"+
			"Hips Don't Lie,2005,1,Love,0.62,0.62,0.10,0.10,0.09,0.09\n"+
			"Día de Enero,,2,Nostalgia,0.55,0.05,0.55,bad,0.15,0.10\n"))

	asgn, e := LoadAssignments(p, alldecoders)
	require.NoError(t, e)
	require.Len(t, asgn, 2)

	first := asgn[0]
	assert.Equal(t, "Hips Don't Lie", first.Song)
	assert.True(t, first.Year.Valid)
	assert.Equal(t, 2005, first.Year.Int)
	assert.Equal(t, 1, first.DominantTopicID.Int)
	assert.InDelta(t, 0.62, first.TopicDistribution[0], 1e-12)
	assert.Equal(t, "hips don't lie", first.NormalizedKey)

	second := asgn[1]
	assert.False(t, second.Year.Valid, "a blank year must load as an invalid NullInt, not abort the row")
	assert.True(t, math.IsNaN(second.TopicDistribution[2]), "an unparseable cell is NaN, not zero")
	assert.Equal(t, "dia de enero", second.NormalizedKey)
}

func TestLoadAssignmentsSchemaError(t *testing.T) {
	p := writetemp(t, "thin.csv", []byte("song,year\nLoba,2009\n"))

	_, e := LoadAssignments(p, alldecoders)
	var se *SchemaError
	require.ErrorAs(t, e, &se)
	// every absent column is named, sorted
	assert.Equal(t, []string{"Topic_1", "Topic_2", "Topic_3", "Topic_4", "Topic_5",
		"dominant_prob", "dominant_topic", "nombre_topic"}, se.Missing)
}

func writelyricsxlsx(t *testing.T, header []interface{}, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, r := range rows {
		cell, e := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, e)
		require.NoError(t, f.SetSheetRow(sheet, cell, &r))
	}
	p := filepath.Join(t.TempDir(), "lyr.xlsx")
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())
	return p
}

func TestLoadLyrics(t *testing.T) {
	p := writelyricsxlsx(t,
		[]interface{}{"song", "year", "lyrics"},
		[][]interface{}{
			{"Ojos Así", 1998, "ay ay ay..."},
			{"Antología", nil, nil},
		})

	lyr, e := LoadLyrics(p)
	require.NoError(t, e)
	require.Len(t, lyr, 2)

	assert.Equal(t, "Ojos Así", lyr[0].Song)
	assert.Equal(t, "ojos asi", lyr[0].NormalizedKey)
	assert.Equal(t, 1998, lyr[0].Year.Int)
	assert.Equal(t, "ay ay ay...", lyr[0].Lyrics)

	// a short row must not panic: the trailing cells read as empty
	assert.False(t, lyr[1].Year.Valid)
	assert.Equal(t, "", lyr[1].Lyrics)
}

func TestLoadLyricsSchemaError(t *testing.T) {
	p := writelyricsxlsx(t,
		[]interface{}{"song", "year"},
		[][]interface{}{{"Loba", 2009}})

	_, e := LoadLyrics(p)
	var se *SchemaError
	require.ErrorAs(t, e, &se)
	assert.Equal(t, []string{"lyrics"}, se.Missing)
}
