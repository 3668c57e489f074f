//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cdlopez/LDASongServer/internal/gen"
	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/cdlopez/LDASongServer/internal/vv"
	"github.com/xuri/excelize/v2"
)

//
// THE THREE LOADERS
//
// schema problems are fatal; bad cells are not: a weight that will not parse becomes NaN,
// a year that will not parse becomes an invalid NullInt, and the row still loads
//

// LoadTopicWords - the topic-word weight csv: {topic, word, weight, rank}
func LoadTopicWords(path string, encodings []string) ([]str.TopicWordWeight, error) {
	const (
		FAIL1 = "LoadTopicWords() dropping row %d of '%s': unparseable topic id '%s'"
	)

	records, e := ReadDelimited(path, encodings)
	if e != nil {
		return nil, e
	}

	cols, e := checkschema(path, vv.REQTOPICWORDCOLS, records)
	if e != nil {
		return nil, e
	}

	var tww []str.TopicWordWeight
	for i, row := range records[1:] {
		tid, ok := toint(row[cols["topic"]])
		if !ok {
			// a topic-word row without a topic id cannot be filed anywhere
			msg.WARN(fmt.Sprintf(FAIL1, i+2, path, row[cols["topic"]]))
			continue
		}
		tww = append(tww, str.TopicWordWeight{
			TopicID: tid,
			Word:    strings.TrimSpace(row[cols["word"]]),
			Weight:  tofloat(row[cols["weight"]]),
			Rank:    tofloat(row[cols["rank"]]),
		})
	}

	return tww, nil
}

// LoadAssignments - the per-song csv: {song, year, dominant_topic, nombre_topic, dominant_prob, Topic_1..Topic_5}
func LoadAssignments(path string, encodings []string) ([]str.SongTopicAssignment, error) {
	records, e := ReadDelimited(path, encodings)
	if e != nil {
		return nil, e
	}

	cols, e := checkschema(path, vv.REQASSIGNMENTCOLS, records)
	if e != nil {
		return nil, e
	}

	var asgn []str.SongTopicAssignment
	for _, row := range records[1:] {
		a := str.SongTopicAssignment{
			Song:              strings.TrimSpace(row[cols["song"]]),
			Year:              tonullint(row[cols["year"]]),
			DominantTopicID:   tonullint(row[cols["dominant_topic"]]),
			DominantTopicName: strings.TrimSpace(row[cols["nombre_topic"]]),
			DominantProb:      tofloat(row[cols["dominant_prob"]]),
		}
		for t := 1; t <= vv.NUMBEROFTOPICS; t++ {
			a.TopicDistribution[t-1] = tofloat(row[cols[fmt.Sprintf("Topic_%d", t)]])
		}
		a.NormalizedKey = NormalizeTitle(a.Song)
		asgn = append(asgn, a)
	}

	return asgn, nil
}

// LoadLyrics - the lyric spreadsheet: {song, year, lyrics}; a real xlsx workbook, not delimited text
func LoadLyrics(path string) ([]str.SongLyrics, error) {
	const (
		FAIL1 = "LoadLyrics() could not close '%s'"
	)

	f, e := excelize.OpenFile(path)
	if e != nil {
		return nil, e
	}
	defer func() {
		if err := f.Close(); err != nil {
			msg.WARN(fmt.Sprintf(FAIL1, path))
		}
	}()

	// the export always has a single sheet; read whichever one is first
	rows, e := f.GetRows(f.GetSheetName(0))
	if e != nil {
		return nil, e
	}

	cols, e := checkschema(path, vv.REQLYRICCOLS, rows)
	if e != nil {
		return nil, e
	}

	var lyr []str.SongLyrics
	for _, row := range rows[1:] {
		// excelize trims trailing empty cells from a row
		cell := func(n string) string {
			if cols[n] < len(row) {
				return row[cols[n]]
			}
			return ""
		}
		l := str.SongLyrics{
			Song:   strings.TrimSpace(cell("song")),
			Year:   tonullint(cell("year")),
			Lyrics: cell("lyrics"),
		}
		l.NormalizedKey = NormalizeTitle(l.Song)
		lyr = append(lyr, l)
	}

	return lyr, nil
}

//
// SCHEMA AND COERCION HELPERS
//

// checkschema - map column names to indices; a missing required column is a SchemaError
func checkschema(source string, required []string, records [][]string) (map[string]int, error) {
	if len(records) == 0 {
		return nil, &SchemaError{Source: source, Missing: required}
	}

	header := records[0]
	if len(header) > 0 {
		// excel likes to prepend a BOM to the first header cell
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	cols := make(map[string]int)
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}

	missing := gen.MissingColumns(required, gen.StringMapKeysIntoSlice(cols))
	if len(missing) != 0 {
		return nil, &SchemaError{Source: source, Missing: missing}
	}

	return cols, nil
}

// tofloat - best-effort numeric coercion; the failure value is NaN, not zero
func tofloat(cell string) float64 {
	f, e := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if e != nil {
		return math.NaN()
	}
	return f
}

// toint - best-effort integer coercion; "2005.0" style cells count as integers
func toint(cell string) (int, bool) {
	cell = strings.TrimSpace(cell)
	if i, e := strconv.Atoi(cell); e == nil {
		return i, true
	}
	if f, e := strconv.ParseFloat(cell, 64); e == nil && f == math.Trunc(f) && !math.IsNaN(f) {
		return int(f), true
	}
	return 0, false
}

// tonullint - like toint, but the failure value is an explicitly invalid NullInt
func tonullint(cell string) str.NullInt {
	if i, ok := toint(cell); ok {
		return str.NewNullInt(i)
	}
	return str.NullInt{}
}
