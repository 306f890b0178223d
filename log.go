package herostep

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Sink receives user-visible messages.
type Sink interface {
	Message(text string, style LogStyle)
}

// Logs is the default message sink: a game log folding repeated messages.
type Logs struct {
	Entries  []LogEntry // all the game log entries
	Index    int        // index of next log entry
	NextTick int        // index of first log entry in a turn
}

// LogEntry describes a log entry.
type LogEntry struct {
	Text  string   // text for entry
	Index int      // index of entry in log
	Tick  bool     // whether first entry in a turn
	Style LogStyle // style
	Dups  int      // number of duplicates of current entry
}

func (e LogEntry) String() string {
	s := e.Text
	if e.Dups > 0 {
		s += fmt.Sprintf(" (%d×)", e.Dups+1)
	}
	return s
}

// MarkupString returns the entry with @rune style markup, for use with
// ui.StyledText markups.
func (e LogEntry) MarkupString() string {
	tick := ""
	if e.Tick {
		tick = "• "
	}
	return fmt.Sprintf("%s@%c%s@N", tick, e.Style.Rune(), e.String())
}

// LogStyle describes various logging styles.
type LogStyle int

const (
	LogNormal     LogStyle = iota
	LogConfirm             // message asking for confirmation
	LogError               // game error or internal fault
	LogHurtMons            // when monsters are hurt
	LogHurtPlayer          // when the hero is hurt
	LogNotable             // when you discover or hear something notable
	LogSpecial             // important special message
	LogStatusEnd           // when a hero's status ends
)

// Rune returns the markup @rune corresponding to each log style.
func (st LogStyle) Rune() rune {
	var r rune
	switch st {
	case LogConfirm:
		r = 'M'
	case LogError:
		r = 'R'
	case LogHurtMons:
		r = 'G'
	case LogHurtPlayer:
		r = 'O'
	case LogNotable:
		r = 'Y'
	case LogSpecial:
		r = 'C'
	case LogStatusEnd:
		r = 'B'
	default:
		r = 'N'
	}
	return r
}

// Message implements Sink.
func (l *Logs) Message(text string, style LogStyle) {
	e := LogEntry{Text: text, Index: l.Index, Style: style}
	if e.Index == l.NextTick {
		e.Tick = true
	}
	if !e.Tick && len(l.Entries) > 0 {
		le := &l.Entries[len(l.Entries)-1]
		if le.Text == e.Text {
			le.Dups++
			return
		}
	}
	l.Entries = append(l.Entries, e)
	l.Index++
	if len(l.Entries) > 100000 {
		l.Entries = l.Entries[10000:]
	}
}

// Tick marks the beginning of a new turn: the next entry starts a new group.
func (l *Logs) Tick() {
	l.NextTick = l.Index
}

// Last returns the text of the last entry, or the empty string.
func (l *Logs) Last() string {
	if len(l.Entries) == 0 {
		return ""
	}
	return l.Entries[len(l.Entries)-1].Text
}

// Texts returns the texts of all entries, without duplicate counts.
func (l *Logs) Texts() []string {
	ts := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		ts[i] = e.Text
	}
	return ts
}

func (g *Game) Log(s string) {
	g.LogStyled(s, LogNormal)
}

func (g *Game) Logf(format string, a ...any) {
	g.LogStyled(fmt.Sprintf(format, a...), LogNormal)
}

func (g *Game) LogfStyled(format string, style LogStyle, a ...any) {
	g.LogStyled(fmt.Sprintf(format, a...), style)
}

// LogStyled sends a message to the game's sink.
func (g *Game) LogStyled(s string, style LogStyle) {
	s = UpperFirst(s)
	if g.Config.LogGame {
		Logger.WithFields(logrus.Fields{"turn": g.Turn, "depth": g.Level.Depth}).Info(s)
	}
	g.sink.Message(s, style)
}
