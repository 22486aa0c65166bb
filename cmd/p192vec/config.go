package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"

	"p192.mleku.dev/vector"
)

const (
	defaultSeed       = "p192vec"
	defaultCount      = 100
	defaultDebugLevel = "info"
)

// config defines the configuration options for p192vec.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Seed       string `short:"s" long:"seed" description:"Seed for the deterministic operand generator"`
	Count      int    `short:"n" long:"count" description:"Number of random vectors per operation, in addition to the edge cases"`
	Ops        string `long:"ops" description:"Comma separated operations to cover (default all)"`
	OutFile    string `short:"o" long:"out" description:"Write generated vectors to this file instead of stdout"`
	CheckFile  string `short:"c" long:"check" description:"Check the vectors in this file instead of generating"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`

	ops []vector.Op
}

// parseOps splits the --ops value into operations.
func parseOps(s string) ([]vector.Op, error) {
	if s == "" {
		return nil, nil
	}
	var out []vector.Op
	for _, name := range strings.Split(s, ",") {
		op, err := vector.ParseOp(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, op)
	}
	return out, nil
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, error) {
	// Default config.
	cfg := config{
		Seed:       defaultSeed,
		Count:      defaultCount,
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	funcName := "loadConfig"
	if cfg.Count < 0 {
		err := fmt.Errorf("%s: the count may not be negative", funcName)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	if _, ok := btclog.LevelFromString(cfg.DebugLevel); !ok {
		err := fmt.Errorf("%s: the specified debug level [%v] is invalid",
			funcName, cfg.DebugLevel)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	ops, err := parseOps(cfg.Ops)
	if err != nil {
		err = fmt.Errorf("%s: %v", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}
	cfg.ops = ops

	return &cfg, nil
}
