//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package mm

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MAND                 = -1
	CRIT                 = 0
	WARN                 = 1
	NOTE                 = 2
	FYI                  = 3
	PEEK                 = 4
	TMI                  = 5
	TIMETRACKERMSGTHRESH = FYI
	RESET                = "\033[0m"
	BLUE1                = "\033[38;5;38m"  // DeepSkyBlue2
	BLUE2                = "\033[38;5;68m"  // SteelBlue3
	CYAN1                = "\033[38;5;109m" // LightSkyBlue3
	CYAN2                = "\033[38;5;117m" // SkyBlue1
	GREEN                = "\033[38;5;70m"  // Chartreuse3
	RED1                 = "\033[38;5;160m" // Red3
	RED2                 = "\033[38;5;168m" // HotPink3
	YELLOW1              = "\033[38;5;178m" // Gold3
	YELLOW2              = "\033[38;5;143m" // DarkKhaki
	GREY1                = "\033[38;5;254m" // Grey89
	GREY2                = "\033[38;5;247m" // Grey62
	GREY3                = "\033[38;5;242m" // Grey42
	WHITE                = "\033[38;5;255m" // Grey93
	BLINK                = "\033[30;0;5m"
	PANIC                = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
	PANIC2               = "[%s%s v.%s%s] (%s%s%s) %sUNRECOVERABLE ERROR%s\n"
)

// NewMessageMaker - build the MessageMaker that everyone shares; lnch will Reconfigure() it after flags are parsed
func NewMessageMaker(name string, shortname string, version string) *MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}
	return &MessageMaker{
		Name:       name,
		Shortname:  shortname,
		Version:    version,
		LaunchTime: time.Now(),
		Win:        w,
	}
}

type MessageMaker struct {
	Name       string
	Shortname  string
	Version    string
	LaunchTime time.Time
	LogLevel   int
	BW         bool
	Tick       bool
	Win        bool
	mtx        sync.RWMutex
}

// Reconfigure - adopt the post-launch configuration values
func (m *MessageMaker) Reconfigure(loglevel int, bw bool, tick bool) {
	m.mtx.Lock()
	defer m.mtx.Unlock()
	m.LogLevel = loglevel
	m.BW = bw
	m.Tick = tick
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[LSS] FindSongByTitle() found no match for 'Romani'"

	if m.LogLevel < threshold {
		return
	}

	if !m.Win && !m.BW {
		var color string

		switch threshold {
		case MAND:
			color = GREEN
		case CRIT:
			color = RED1
		case WARN:
			color = YELLOW2
		case NOTE:
			color = YELLOW1
		case FYI:
			color = CYAN2
		case PEEK:
			color = BLUE2
		case TMI:
			color = GREY3
		default:
			color = WHITE
		}
		fmt.Printf("[%s%s%s] %s%s%s\n", YELLOW1, m.Shortname, RESET, color, message, RESET)
	} else {
		// terminal color codes not w's friend
		fmt.Printf("[%s] %s\n", m.Shortname, message)
	}
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, MAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, CRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, WARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, NOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, FYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, PEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, TMI) }

// Color - color text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[git: C4%sC0]" ==> green text for the %s
	swap := strings.NewReplacer("C1", "", "C2", "", "C3", "", "C4", "", "C5", "", "C6", "", "C7", "", "C0", "")

	if !m.Win && !m.BW {
		swap = strings.NewReplacer("C1", YELLOW1, "C2", CYAN2, "C3", BLUE1, "C4", GREEN, "C5", RED1,
			"C6", GREY3, "C7", BLINK, "C0", RESET)
	}
	tagged = swap.Replace(tagged)
	return tagged
}

// Styled - style text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	const (
		BOLD    = "\033[1m"
		ITAL    = "\033[3m"
		UNDER   = "\033[4m"
		REVERSE = "\033[7m"
		STRIKE  = "\033[9m"
	)
	swap := strings.NewReplacer("S1", "", "S2", "", "S3", "", "S4", "", "S5", "", "S0", "")

	if !m.Win && !m.BW {
		swap = strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S4", STRIKE, "S5", REVERSE,
			"S0", RESET)
	}
	tagged = swap.Replace(tagged)
	return tagged
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// Error - just panic...
func (m *MessageMaker) Error(err error) {
	if err != nil {
		fmt.Printf(PANIC, YELLOW2, m.Name, m.Version, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// EF - report error and function
func (m *MessageMaker) EF(err error, fn string) {
	if err != nil {
		fmt.Printf(PANIC2, YELLOW2, m.Name, m.Version, RESET, CYAN2, fn, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	if !m.Win {
		os.Exit(e)
	} else {
		m.Emit(fmt.Sprintf(HANG, m.Name, SUSP), -1)
		time.Sleep(SUSP * time.Second)
		os.Exit(e)
	}
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[A2: 0.021s][Δ: 0.009s] 147 song assignments loaded"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Now().Sub(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Now().Sub(start).Seconds()) + d + o
	m.Emit(o, TIMETRACKERMSGTHRESH)
}

// LogPaths - increment the route counter for this route; feeds the ticker
func (m *MessageMaker) LogPaths(fn string) {
	// sample output: "[LSS] RtTopicSongs() current heap: 12M"
	const (
		HEAP = "%s current heap: %s"
		MPR  = PEEK
	)

	PIUpdate <- fn

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	b := fmt.Sprintf("%dM", mem.HeapAlloc/1024/1024)
	m.Emit(fmt.Sprintf(HEAP, fn, b), MPR)
}

// Ticker - requires running with the "-tk" flag; feed basic use states to the console and update them indefinitely
func (m *MessageMaker) Ticker(wait time.Duration) {
	// sample output:
	//  ----------------- [10:24:28] LSS uptime: 1m0s -----------------
	//SongInfo: 51 * TopicSongs: 6 * YearlyAll: 2

	const (
		CLEAR     = "\033[2K"
		CLEARRT   = "\033[0K"
		HEAD      = "\r"
		CURSHOME  = "\033[1;1H"
		FIRSTLINE = "\033[2;1H"
		CURSSAVE  = "\033[s"
		CURSREST  = "\033[u"
		PADDING   = "  -----------------  "
		STATTMPL  = "%s: C2%dC0"
		UPTIME    = "[S1C6%vC0]  C5S1%s uptime: C1%vC0  [S1C6%sC0]"
	)

	// ANSI escape codes do not work in windows
	if !m.Tick || m.Win {
		return
	}
	var mem runtime.MemStats

	// the uptime line
	t := func(up time.Duration) {
		runtime.ReadMemStats(&mem)
		heap := fmt.Sprintf("%dM", mem.HeapAlloc/1024/1024)
		tick := fmt.Sprintf(UPTIME, time.Now().Format(time.TimeOnly), m.Shortname, up.Truncate(time.Second), heap)
		tick = m.ColStyle(PADDING + tick + PADDING)
		fmt.Printf(CURSSAVE + CURSHOME + CLEAR + HEAD + tick + CURSREST)
	}

	// the routes-hit line
	s := func() {
		responder := PIReply{req: true, response: make(chan map[string]int)}
		PIRequest <- responder
		ctr := <-responder.response

		var pairs []string
		for k, v := range ctr {
			this := strings.TrimPrefix(k, "Rt")
			this = strings.TrimSuffix(this, "()")
			pairs = append(pairs, fmt.Sprintf(STATTMPL, this, v))
		}

		sort.Strings(pairs)

		fmt.Printf(CURSSAVE + FIRSTLINE)
		out := m.Color(strings.Join(pairs, " C6*C0 "))
		fmt.Printf(out + CLEARRT)
		fmt.Println()
		fmt.Printf(CLEAR + CURSREST)
	}

	for {
		up := time.Since(m.LaunchTime)
		t(up)
		s()
		time.Sleep(wait)
	}
}

//
// CHANNEL-BASED PATHINFO REPORTING TO COMMUNICATE STATS BETWEEN ROUTINES
//

// PIReply - PathInfoHub helper struct for returning the PathInfo
type PIReply struct {
	req      bool
	response chan map[string]int
}

var (
	PIUpdate  = make(chan string, 2*runtime.NumCPU())
	PIRequest = make(chan PIReply)
)

// PathInfoHub - log routes that pass through MessageMaker.LogPaths; note that we are assuming only one mm is logging
func PathInfoHub() {
	var (
		PathsCalled = make(map[string]int)
	)

	increm := func(p string) {
		if _, ok := PathsCalled[p]; ok {
			PathsCalled[p]++
		} else {
			PathsCalled[p] = 1
		}
	}

	// the main loop; it will never exit
	for {
		select {
		case upd := <-PIUpdate:
			increm(upd)
		case req := <-PIRequest:
			req.response <- PathsCalled
		}
	}
}
