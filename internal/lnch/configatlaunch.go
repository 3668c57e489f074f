//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cdlopez/LDASongServer/internal/mm"
	"github.com/cdlopez/LDASongServer/internal/str"
	"github.com/cdlopez/LDASongServer/internal/vv"
)

var (
	Config = BuildDefaultConfig()
	Msg    = mm.NewMessageMaker(vv.MYNAME, vv.SHORTNAME, vv.VERSION)
)

// BuildDefaultConfig - the baseline settings; a JSON config file and/or command line flags overwrite them
func BuildDefaultConfig() *str.CurrentConfiguration {
	return &str.CurrentConfiguration{
		AssignmentsFile: vv.DEFAULTASSIGNMENTSFILE,
		BlackAndWhite:   vv.BLACKANDWHITE,
		Decoders:        strings.Split(vv.DECODELIST, ","),
		EchoLog:         vv.DEFAULTECHOLOGLEVEL,
		Gzip:            vv.USEGZIP,
		HostIP:          vv.SERVEDFROMHOST,
		HostPort:        vv.SERVEDFROMPORT,
		LogLevel:        vv.DEFAULTGOLOGLEVEL,
		LyricsFile:      vv.DEFAULTLYRICSFILE,
		ProfileCPU:      false,
		ProfileMEM:      false,
		QuietStart:      false,
		TickerActive:    vv.TICKERISACTIVE,
		TopicWordsFile:  vv.DEFAULTTOPICWORDSFILE,
		WordsPerTopic:   vv.DEFAULTWORDSPERTOPIC,
	}
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL2 = "Could not open '%s'"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	// the config file can sit next to the binary or in ~/.config/
	var cfgfile string
	for _, p := range []string{vv.CONFIGLOCATION + "/" + vv.CONFIGBASIC, h + vv.CONFIGBASIC} {
		if _, e := os.Stat(p); e == nil {
			cfgfile = p
			break
		}
	}

	if cfgfile != "" {
		loadedcfg, e := os.Open(cfgfile)
		if e != nil {
			Msg.PEEK(fmt.Sprintf(FAIL2, cfgfile))
		} else {
			decoderc := json.NewDecoder(loadedcfg)
			confc := str.CurrentConfiguration{}
			errc := decoderc.Decode(&confc)
			_ = loadedcfg.Close()
			if errc == nil {
				Config = &confc
			} else {
				Msg.CRIT(fmt.Sprintf(FAIL1, cfgfile))
			}
		}
	}

	args := os.Args[1:]

	for i, a := range args {
		switch a {
		case "-v":
			fmt.Println(vv.VERSION)
			os.Exit(1)
		case "-af":
			Config.AssignmentsFile = args[i+1]
		case "-bw":
			Config.BlackAndWhite = true
		case "-dl":
			Config.Decoders = strings.Split(args[i+1], ",")
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.EchoLog = ll
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			printversion()
			fmt.Println(Msg.ColStyle(fmt.Sprintf(HELPTEXT, vv.CONFIGBASIC, h+vv.CONFIGBASIC,
				vv.DEFAULTASSIGNMENTSFILE, vv.DECODELIST, vv.DEFAULTLYRICSFILE, vv.DEFAULTTOPICWORDSFILE,
				vv.SERVEDFROMHOST, vv.SERVEDFROMPORT, vv.DEFAULTWORDSPERTOPIC)))
			os.Exit(1)
		case "-lf":
			Config.LyricsFile = args[i+1]
		case "-pc":
			Config.ProfileCPU = true
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sp":
			pp, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.HostPort = pp
		case "-tk":
			Config.TickerActive = true
		case "-tf":
			Config.TopicWordsFile = args[i+1]
		case "-wt":
			wt, err := strconv.Atoi(args[i+1])
			Msg.Error(err)
			Config.WordsPerTopic = wt
		default:
			// do nothing: this is either a flag value or a typo
		}
	}

	// a sparse json config zeroes whatever it does not mention
	if len(Config.Decoders) == 0 {
		Config.Decoders = strings.Split(vv.DECODELIST, ",")
	}

	if Config.WordsPerTopic < vv.MINWORDSPERTOPIC {
		Config.WordsPerTopic = vv.MINWORDSPERTOPIC
	}
	if Config.WordsPerTopic > vv.MAXWORDSPERTOPIC {
		Config.WordsPerTopic = vv.MAXWORDSPERTOPIC
	}

	Msg.Reconfigure(Config.LogLevel, Config.BlackAndWhite, Config.TickerActive)

	if !Config.QuietStart {
		printversion()
	}
}

func printversion() {
	const (
		SN = "[C1%sC0] C2%sC0 (C5v.%sC0)"
	)
	v := fmt.Sprintf(SN, vv.SHORTNAME, vv.MYNAME, vv.VERSION)
	fmt.Println(Msg.Color(v))
}
