// Command p192vec generates reference vectors for the P-192 field arithmetic
// or checks a previously written vector file against it.
package main

import (
	"io"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"

	"p192.mleku.dev/vector"
)

var log btclog.Logger

// setupLogging routes the command and vector package logs through one
// backend at the configured level.
func setupLogging(w io.Writer, level string) {
	backend := btclog.NewBackend(w)
	lvl, _ := btclog.LevelFromString(level)

	log = backend.Logger("P192V")
	log.SetLevel(lvl)

	vecLog := backend.Logger("VECT")
	vecLog.SetLevel(lvl)
	vector.UseLogger(vecLog)
}

func generate(cfg *config) error {
	vs, err := vector.Generate([]byte(cfg.Seed), cfg.ops, cfg.Count)
	if err != nil {
		return err
	}

	// Catch a broken build before handing out vectors.
	if err := vector.CheckAll(vs); err != nil {
		return errors.Wrap(err, "self check")
	}

	out := os.Stdout
	if cfg.OutFile != "" {
		f, err := os.Create(cfg.OutFile)
		if err != nil {
			return errors.Wrap(err, "create output file")
		}
		defer f.Close()
		out = f
	}
	if err := vector.Write(out, vs); err != nil {
		return err
	}
	if cfg.OutFile != "" {
		log.Infof("Wrote %d vectors to %s", len(vs), cfg.OutFile)
	}
	return nil
}

func check(cfg *config) error {
	f, err := os.Open(cfg.CheckFile)
	if err != nil {
		return errors.Wrap(err, "open vector file")
	}
	defer f.Close()

	vs, err := vector.Read(f)
	if err != nil {
		return errors.Wrapf(err, "parse %s", cfg.CheckFile)
	}
	return vector.CheckAll(vs)
}

func realMain() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs go to stderr so that generated vectors can be piped from stdout.
	setupLogging(os.Stderr, cfg.DebugLevel)

	if cfg.CheckFile != "" {
		return check(cfg)
	}
	return generate(cfg)
}

func main() {
	if err := realMain(); err != nil {
		if log != nil {
			log.Errorf("%v", err)
		}
		os.Exit(1)
	}
}
