//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

import "time"

const (
	MYNAME    = "LDASongServer"
	SHORTNAME = "LSS"
	VERSION   = "1.0.0"

	CONFIGLOCATION = "."
	CONFIGALTAPTH  = "%s/.config/" // %s = os.UserHomeDir()
	CONFIGBASIC    = "lss-conf.json"

	DEFAULTTOPICWORDSFILE  = "shakira_lda_topic_words.csv"
	DEFAULTASSIGNMENTSFILE = "shak_topicos_canciones.csv"
	DEFAULTLYRICSFILE      = "shak.xlsx"

	// the upstream export pipeline is uncontrolled: any of these may show up
	ENCUTF8    = "utf-8"
	ENCLATIN1  = "latin-1"
	ENCCP1252  = "cp1252"
	DECODELIST = ENCUTF8 + "," + ENCLATIN1 + "," + ENCCP1252

	NUMBEROFTOPICS           = 5
	DEFAULTWORDSPERTOPIC     = 15
	MINWORDSPERTOPIC         = 5
	MAXWORDSPERTOPIC         = 30
	SYNTHETICTOPICNAME       = "Topic %d" // only seen if an id never shows up in the assignment data
	UNDATEDSONG              = "s/f"      // "sin fecha"
	MAXTITLELENGTH           = 110
	DEFAULTECHOLOGLEVEL      = 0
	DEFAULTGOLOGLEVEL        = 0
	SERVEDFROMHOST           = "127.0.0.1"
	SERVEDFROMPORT           = 8000
	MAXECHOREQPERSECONDPERIP = 60
	JSONINDENT               = "  "
	TICKERISACTIVE           = false
	TICKERDELAY              = 30 * time.Second
	USEGZIP                  = false
	BLACKANDWHITE            = false
	WRITEPERMS               = 0644
)

// the three fixed source schemas; a missing column is fatal at load

var (
	REQTOPICWORDCOLS  = []string{"topic", "word", "weight", "rank"}
	REQASSIGNMENTCOLS = []string{"song", "year", "dominant_topic", "nombre_topic", "dominant_prob",
		"Topic_1", "Topic_2", "Topic_3", "Topic_4", "Topic_5"}
	REQLYRICCOLS = []string{"song", "year", "lyrics"}
)
