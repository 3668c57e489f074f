//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	AssignmentsFile string
	BlackAndWhite   bool
	Decoders        []string // ordered decode attempts for the delimited sources
	EchoLog         int      // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	Gzip            bool
	HostIP          string
	HostPort        int
	LogLevel        int
	LyricsFile      string
	ProfileCPU      bool
	ProfileMEM      bool
	QuietStart      bool
	TickerActive    bool
	TopicWordsFile  string
	WordsPerTopic   int
}
