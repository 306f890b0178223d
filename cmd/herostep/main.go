// Command herostep is a small terminal playground for the herostep movement
// engine: walk, run and travel around a demo level full of traps.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"

	"codeberg.org/herostep/herostep"
)

// UI dimensions: two log lines, the map, and a status line.
const (
	UIWidth  = herostep.MapWidth
	UIHeight = herostep.MapHeight + 3
)

var log = herostep.Logger

func main() {
	optLevel := flag.String("m", "", "path to an ASCII level file (default: built-in demo level)")
	optSeed := flag.Uint64("seed", 1, "random seed")
	optReplay := flag.String("r", "", "path to replay file (_ means default location)")
	optGameLogs := flag.Bool("l", false, "write game messages to the log file")
	optVersion := flag.Bool("version", false, "print build info")
	opt256colors := flag.Bool("x", false, "use xterm 256-color palette (solarized approximation)")
	optLight := flag.Bool("light", false, "use light color scheme")
	flag.Parse()

	if *optVersion {
		fmt.Printf("herostep\t%v\n", herostep.Version)
		if bi, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(bi)
		}
		os.Exit(0)
	}
	if *opt256colors {
		ColorMode = ColorMode256
	}
	DarkColors = !*optLight
	cfg, _, err := LoadConfig()
	if err != nil {
		log.WithError(err).Warn("loading config")
	}
	if *optGameLogs {
		cfg.LogGame = true
	}
	if *optReplay != "" {
		RunReplay(*optReplay)
		return
	}
	rows := demoLevel
	if *optLevel != "" {
		rows, err = readLevel(*optLevel)
		if err != nil {
			log.WithError(err).Fatal("reading level")
		}
	}
	RunGame(cfg, rows, *optLevel == "", *optSeed)
}

// readLevel reads an ASCII level file, one map row per line.
func readLevel(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n"), nil
}

// RunGame starts the game on the given level.
func RunGame(cfg herostep.Config, rows []string, demo bool, seed uint64) {
	md, err := newModel(cfg, rows, demo, seed)
	if err != nil {
		log.WithError(err).Fatal("building level")
	}
	var repw io.WriteCloser
	dir, err := DataDir()
	if err == nil {
		replay, err := os.Create(filepath.Join(dir, "replay"))
		if err == nil {
			repw = replay
		} else {
			log.WithError(err).Warn("writing to replay file")
		}
	} else {
		log.Warn(err)
	}
	defer func() {
		if repw != nil {
			if err := repw.Close(); err != nil {
				log.WithError(err).Warn("closing replay file")
			}
		}
		c := md.g.Config
		c.LogGame = false
		if err := SaveConfig(c); err != nil {
			log.WithError(err).Warn("saving config")
		}
	}()
	app := gruid.NewApp(gruid.AppConfig{
		Driver:      newDriver(),
		Model:       md,
		FrameWriter: repw,
	})
	if f := setLogOutput(); f != nil {
		defer f.Close()
	}
	err = app.Start(context.Background())
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

// RunReplay runs the given replay file.
func RunReplay(file string) {
	if file == "_" {
		dir, err := DataDir()
		if err != nil {
			log.Fatal(err)
		}
		file = filepath.Join(dir, "replay")
	}
	replay, err := os.Open(file)
	if err != nil {
		log.WithError(err).Fatal("loading replay file")
	}
	defer replay.Close()
	fd, err := gruid.NewFrameDecoder(replay)
	if err != nil {
		log.WithError(err).Fatal("frame decoder")
	}
	rep := ui.NewReplay(ui.ReplayConfig{
		Grid:         gruid.NewGrid(UIWidth, UIHeight),
		FrameDecoder: fd,
	})
	app := gruid.NewApp(gruid.AppConfig{
		Driver: newDriver(),
		Model:  rep,
	})
	if f := setLogOutput(); f != nil {
		defer f.Close()
	}
	if err := app.Start(context.Background()); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

// setLogOutput sends diagnostics to the logs file in the data directory, so
// that they do not mess with the terminal screen.
func setLogOutput() *os.File {
	dataDir, err := DataDir()
	if err != nil {
		log.Warn(err)
		return nil
	}
	f, err := os.Create(filepath.Join(dataDir, "logs.txt"))
	if err != nil {
		log.Warn(err)
		return nil
	}
	log.SetOutput(f)
	return f
}

// subSig is a subscription that intercepts SIGTERM for closing the game
// gracefully.
func subSig(ctx context.Context, msgs chan<- gruid.Msg) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	select {
	case <-ctx.Done():
	case <-sig:
		msgs <- gruid.MsgQuit{}
	}
}
