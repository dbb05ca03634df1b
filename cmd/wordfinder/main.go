package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/twiby/rsScrabble/config"
	"github.com/twiby/rsScrabble/shell"
	"github.com/twiby/rsScrabble/solver"
)

var (
	GitVersion string
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wordfinder [flags] [<rack> <board>]")
	fmt.Fprintln(os.Stderr, "with no rack and board, an interactive prompt is opened.")
}

func main() {
	os.Exit(run())
}

// run returns the exit status. Deferred cleanup happens before main exits.
func run() int {
	// Determine the directory of the executable. We will use this
	// directory to find the data files if an absolute path is not
	// provided for these!
	ex, err := os.Executable()
	if err != nil {
		panic(err)
	}
	exPath := filepath.Dir(ex)

	cfg := config.DefaultConfig()
	args, err := cfg.Load(os.Args[1:])
	if err != nil {
		usage()
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	cfg.AdjustRelativePaths(exPath)

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	output.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("%s", i)
	}
	output.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%s:", i)
	}

	var logger zerolog.Logger
	if cfg.GetBool(config.ConfigDebug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger
	logger.Debug().Str("version", GitVersion).Interface("config", cfg.SanitizedSettings()).
		Msg("Debug logging is on")

	if cfg.GetString(config.ConfigCPUProfile) != "" {
		f, err := os.Create(cfg.GetString(config.ConfigCPUProfile))
		if err != nil {
			panic("could not create CPU profile: " + err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			panic("could not start CPU profile: " + err.Error())
		}
		defer pprof.StopCPUProfile()
	}

	wf, err := solver.NewFromConfig(cfg)
	if err != nil {
		log.Error().Err(err).Msg("could not load the dictionary")
		return 1
	}

	switch len(args) {
	case 0:
		if err := runShell(cfg, wf); err != nil {
			log.Error().Err(err).Msg("could not open the prompt")
			return 1
		}
	case 2:
		if err := oneShot(os.Stdout, wf, cfg.GetString(config.ConfigOutput), args[0], args[1]); err != nil {
			log.Error().Err(err).Msg("bad query")
			return 1
		}
	default:
		usage()
		return 2
	}
	return 0
}

// oneShot writes the best play of rack on boardMsg to w.
func oneShot(w io.Writer, wf *solver.WordFinder, output, rack, boardMsg string) error {
	m, err := wf.GetBestPlay(rack, boardMsg)
	if err != nil {
		return err
	}
	out, err := shell.FormatMove(m, output)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func runShell(cfg *config.Config, wf *solver.WordFinder) error {
	sc, err := shell.NewShellController(cfg, wf)
	if err != nil {
		return err
	}
	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	go func() {
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Debug().Msg("got quit signal...")
		close(done)
	}()
	go sc.Loop(sig)
	<-done
	return nil
}
