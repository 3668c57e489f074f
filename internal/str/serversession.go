//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

//
// SERVERSESSIONS
//

// ServerSession - the explorer's current selections; the presentation layer reads these back when it redraws
type ServerSession struct {
	ID            string
	Song          string `json:"song"`
	TopicID       int    `json:"topic"`
	WordsPerTopic int    `json:"wordspertopic"`
}
