//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package corpus

import (
	"fmt"
	"strings"
)

//
// LOAD-TIME FAILURES: if you see one of these the data is unusable and the server should refuse to start
//

// SchemaError - a source is missing one or more of its required columns
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("'%s' is missing required column(s): %s", e.Source, strings.Join(e.Missing, ", "))
}

// DecodeFallbackExhausted - none of the attempted encodings yielded a parseable file
type DecodeFallbackExhausted struct {
	Source    string
	Attempted []string
	LastErr   error
}

func (e *DecodeFallbackExhausted) Error() string {
	return fmt.Sprintf("'%s' could not be decoded as any of [%s]; last error: %v",
		e.Source, strings.Join(e.Attempted, ", "), e.LastErr)
}
