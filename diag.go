package herostep

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the diagnostics logger. Game messages meant for the player go
// through a Sink instead. Its level and format are read from the
// HEROSTEP_LOG_LEVEL and HEROSTEP_LOG_FORMAT environment variables.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	lg := logrus.New()
	level, err := logrus.ParseLevel(os.Getenv("HEROSTEP_LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	lg.SetLevel(level)
	if strings.ToLower(os.Getenv("HEROSTEP_LOG_FORMAT")) == "json" {
		lg.SetFormatter(&logrus.JSONFormatter{})
	} else {
		lg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	lg.SetOutput(os.Stderr)
	return lg
}

// Fault describes an internal-consistency fault: a state the engine should
// never reach. Faults are logged and the step goes on, unless the Strict
// option is set, in which case the engine panics with the Fault.
type Fault struct {
	Op  string
	Msg string
}

func (f Fault) Error() string {
	return fmt.Sprintf("%s: %s", f.Op, f.Msg)
}

// impossible reports an internal-consistency fault.
func (g *Game) impossible(op, format string, a ...any) {
	f := Fault{Op: op, Msg: fmt.Sprintf(format, a...)}
	g.Faults = append(g.Faults, f)
	Logger.WithFields(logrus.Fields{
		"turn":  g.Turn,
		"pos":   g.Hero.P,
		"fault": f.Op,
	}).Error(f.Msg)
	if g.Config.Strict {
		panic(f)
	}
}
