//    LDASongServer
//    Copyright: C. D. Lopez 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

const (
	HELPTEXT = `S1command line optionsS0:
   C1-afC0 {file} - path to the song-topic assignment csv (default: "C3%[3]sC0")
   C1-bwC0       - disable color output in the console
   C1-dlC0 {lst} - ordered, comma-separated decode attempts for the csv sources (default: "C3%[4]sC0")
   C1-elC0 {num} - set echo server log level (C30C0-C33C0)
   C1-glC0 {num} - set golang log level (C30C0-C35C0)
   C1-gzC0       - enable gzip compression of the server's output
   C1-hC0        - print this help information
   C1-lfC0 {file} - path to the lyric spreadsheet (default: "C3%[5]sC0")
   C1-pcC0       - write a cpu profile on exit
   C1-pmC0       - write a memory profile on exit
   C1-qC0        - quieter startup
   C1-saC0 {addr} - set the server address (default: "C3%[7]sC0")
   C1-spC0 {num} - set the server port (default: "C3%[8]dC0")
   C1-tfC0 {file} - path to the topic-word weight csv (default: "C3%[6]sC0")
   C1-tkC0       - turn on the uptime/use ticker
   C1-vC0        - print version and exit
   C1-wtC0 {num} - default number of keywords to report per topic (default: "C3%[9]dC0")
     (a JSON config file named "C3%[1]sC0" beside the binary or at "C3%[2]sC0" is read before the flags)
`
)
