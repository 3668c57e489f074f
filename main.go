//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"fmt"

	"github.com/cdlopez/LDASongServer/internal/corpus"
	"github.com/cdlopez/LDASongServer/internal/lnch"
	"github.com/cdlopez/LDASongServer/internal/mm"
	"github.com/cdlopez/LDASongServer/internal/vv"
	"github.com/cdlopez/LDASongServer/web"
	"github.com/pkg/profile"
)

func main() {
	lnch.ConfigAtLaunch()

	// go tool pprof --pdf ./LDASongServer /path/to/cpu.pprof > profile.pdf
	if lnch.Config.ProfileCPU {
		defer profile.Start().Stop()
	} else if lnch.Config.ProfileMEM {
		defer profile.Start(profile.MemProfile).Stop()
	}

	msg := lnch.Msg

	versioninfo := fmt.Sprintf("%s (v.%s)", vv.MYNAME, vv.VERSION)
	versioninfo = versioninfo + fmt.Sprintf(" [loglevel=%d]", lnch.Config.LogLevel)
	msg.MAND(versioninfo)

	// the load is lazy and memoized, but nobody wants the first click to pay for it
	_ = corpus.Corpus()

	go mm.PathInfoHub()
	go msg.Ticker(vv.TICKERDELAY)

	web.StartEchoServer()
}
