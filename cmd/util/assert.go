// Package util carries the small helpers shared by the command line tools:
// fatal error handling, flag plumbing and file opening.
package util

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strconv"
)

func init() {
	log.SetFlags(0)
}

func Warnf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Warning logs err if it is non-nil and reports whether it did. An optional
// leading format string and arguments prefix the message.
func Warning(err error, v ...interface{}) bool {
	if err != nil {
		if len(v) == 0 {
			Warnf("WARNING: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Warnf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
		return true
	}
	return false
}

func Fatalf(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

// Assert quits with a diagnostic if err is non-nil. An optional leading
// format string and arguments prefix the message.
func Assert(err error, v ...interface{}) {
	if err != nil {
		if len(v) == 0 {
			Fatalf("ERROR: %s.", err)
		} else {
			format := v[0].(string)
			v = v[1:]
			Fatalf("%s: %s.", fmt.Sprintf(format, v...), err)
		}
	}
}

// AssertNArg quits with the usage message unless exactly n positional
// arguments were given.
func AssertNArg(n int) {
	if flag.NArg() != n {
		flag.Usage()
	}
}

// FlagParse installs a usage function describing the positional arguments
// and parses the command line.
func FlagParse(positional, desc string) {
	flag.Usage = func() {
		log.Printf("Usage: %s [flags] %s\n",
			path.Base(os.Args[0]), positional)
		if len(desc) > 0 {
			log.Printf("%s\n", desc)
		}
		flag.PrintDefaults()
		os.Exit(1)
	}
	flag.Parse()
}

func OpenFile(path string) *os.File {
	f, err := os.Open(path)
	Assert(err, "Could not open file '%s'", path)
	return f
}

func CreateFile(path string) *os.File {
	f, err := os.Create(path)
	Assert(err, "Could not create file '%s'", path)
	return f
}

func ParseInt(str string) int {
	num, err := strconv.ParseInt(str, 10, 32)
	Assert(err, "Could not parse '%s' as an integer", str)
	return int(num)
}
