//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/cdlopez/LDASongServer/internal/vv"
	"golang.org/x/text/encoding/charmap"
)

//
// DELIMITED TEXT WITH AN UNRELIABLE ENCODING
//
// the csv exports come from an uncontrolled pipeline: sometimes utf-8, sometimes latin-1,
// sometimes excel-flavored cp1252; try each in turn and take the first one that parses
//

// ReadDelimited - read a csv file into records, trying each encoding in order until one parses
func ReadDelimited(path string, encodings []string) ([][]string, error) {
	const (
		FYI = "ReadDelimited() read '%s' as %s: %d rows"
	)

	raw, e := os.ReadFile(path)
	if e != nil {
		return nil, e
	}

	var lasterr error
	for _, enc := range encodings {
		decoded, e := decodebytes(raw, enc)
		if e != nil {
			lasterr = e
			continue
		}

		r := csv.NewReader(bytes.NewReader(decoded))
		records, e := r.ReadAll()
		if e != nil {
			lasterr = e
			continue
		}

		msg.PEEK(fmt.Sprintf(FYI, path, enc, len(records)))
		return records, nil
	}

	return nil, &DecodeFallbackExhausted{Source: path, Attempted: encodings, LastErr: lasterr}
}

// decodebytes - turn raw file bytes into utf-8 bytes via the named encoding
func decodebytes(raw []byte, encoding string) ([]byte, error) {
	const (
		FAIL1 = "not valid utf-8"
		FAIL2 = "unknown encoding '%s'"
	)

	switch strings.ToLower(encoding) {
	case vv.ENCUTF8, "utf8":
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf(FAIL1)
		}
		return raw, nil
	case vv.ENCLATIN1, "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder().Bytes(raw)
	case vv.ENCCP1252, "windows-1252":
		return charmap.Windows1252.NewDecoder().Bytes(raw)
	default:
		return nil, fmt.Errorf(FAIL2, encoding)
	}
}
