// Package cli implements the tux3 command line interface.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"google.golang.org/grpc"

	"tux3.org/tux3/defaults"
	"tux3.org/tux3/util/grpcunix"
	"tux3.org/tux3/version"
)

type config struct {
	Debug   bool
	DataDir string
}

// Tux3 gives subcommands access to global flags, such as the data
// directory.
var Tux3 config

var errUsage = errors.New("bad usage")

func usage(progName string) {
	fmt.Fprintf(os.Stderr, `Usage:
  %[1]s [flags] server run [-flush-interval=DUR] [-external-flusher]
  %[1]s [flags] server ping
  %[1]s [flags] volume create NAME
  %[1]s [flags] volume sync [-unify=allow|none|force] NAME
  %[1]s version

Flags:
`, progName)
	flag.CommandLine.PrintDefaults()
}

func dialControl() (*grpc.ClientConn, error) {
	return grpcunix.Dial(filepath.Join(Tux3.DataDir, "control"))
}

func dispatch(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "version":
		fmt.Println(version.Version)
		return nil
	case "server":
		if len(args) < 2 {
			return errUsage
		}
		switch args[1] {
		case "run":
			return serverRun(args[2:])
		case "ping":
			return serverPing(args[2:])
		}
		return errUsage
	case "volume":
		if len(args) < 2 {
			return errUsage
		}
		switch args[1] {
		case "create":
			return volumeCreate(args[2:])
		case "sync":
			return volumeSync(args[2:])
		}
		return errUsage
	}
	return errUsage
}

// Main is the primary entry point into the tux3 command line
// application.
func Main() (exitstatus int) {
	progName := filepath.Base(os.Args[0])
	log.SetFlags(0)
	log.SetPrefix(progName + ": ")

	flag.CommandLine.Init(progName, flag.ContinueOnError)
	flag.CommandLine.Usage = func() { usage(progName) }
	flag.BoolVar(&Tux3.Debug, "debug", false, "debug output")
	// absolute path makes the control socket show up nicer in `ss`
	// output
	flag.StringVar(&Tux3.DataDir, "data-dir", defaults.DataDir(), "path to filesystem state")
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if !filepath.IsAbs(Tux3.DataDir) {
		abs, err := filepath.Abs(Tux3.DataDir)
		if err != nil {
			log.Printf("error: %v", err)
			return 1
		}
		Tux3.DataDir = abs
	}

	err := dispatch(flag.Args())
	if err == errUsage {
		usage(progName)
		return 2
	}
	if err != nil {
		log.Printf("error: %v", err)
		return 1
	}
	return 0
}
