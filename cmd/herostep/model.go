package main

import (
	"fmt"
	"time"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
	"github.com/sirupsen/logrus"

	"codeberg.org/herostep/herostep"
)

// AutoDelay is the delay between two travel steps.
const AutoDelay = 30 * time.Millisecond

// PackCapacity is the weight the hero can carry before being burdened.
const PackCapacity = 120

// mode describes the input mode of the model.
type mode int

const (
	modeNormal mode = iota
	modePrompt      // a step awaits a yes/no answer
	modeDirection   // a prefix key awaits a direction
	modeDead
	modeQuit
)

// prefix is a key that changes the meaning of the next direction key.
type prefix int

const (
	prefixNone prefix = iota
	prefixRush
	prefixCorridor
	prefixFight
	prefixNoPickup
)

// model implements gruid.Model and drives a herostep game.
type model struct {
	gd     gruid.Grid
	g      *herostep.Game
	vision *herostep.FOVVision
	log    *ui.Label
	status *ui.Label
	mode   mode
	prefix prefix
	pack   []herostep.Object
	kills  int
}

// msgAuto asks for the next travel step. Its value is the turn it was
// scheduled for, so that stale timers are ignored.
type msgAuto int

func newModel(cfg herostep.Config, rows []string, demo bool, seed uint64) (*model, error) {
	l, p, err := herostep.ParseLevel(rows)
	if err != nil {
		return nil, err
	}
	if err := populate(l, demo); err != nil {
		return nil, err
	}
	md := &model{
		gd:     gruid.NewGrid(UIWidth, UIHeight),
		vision: herostep.NewFOVVision(),
	}
	hooks := herostep.Hooks{
		Combat:    herostep.CombatFunc(md.attack),
		Inventory: herostep.InventoryFunc(md.addToPack),
		Boulders:  herostep.BoulderFunc(md.boulderPushed),
		Vision:    md.vision,
	}
	md.g = herostep.New(cfg, l, herostep.NewHero(p), hooks, herostep.NewRand(seed))
	md.log = ui.NewLabel(ui.StyledText{}.WithMarkups(Markups))
	md.status = ui.NewLabel(ui.StyledText{}.WithMarkups(Markups))
	md.status.AdjustWidth = false
	md.g.Logf("Welcome! Use hjklyubn to move, shift to run, _ or a click to travel.")
	return md, nil
}

// attack is a toy combat resolution: every blow kills.
func (md *model) attack(m *herostep.Monster) bool {
	g := md.g
	if m.Peaceful {
		g.LogfStyled("You hit %s, who gets angry!", herostep.LogHurtMons, m.The())
		m.Peaceful = false
		m.Asleep = false
		return true
	}
	g.LogfStyled("You kill %s!", herostep.LogHurtMons, m.The())
	g.Level.RemoveMonster(m)
	md.kills++
	return true
}

func (md *model) addToPack(o herostep.Object) bool {
	h := md.g.Hero
	w := o.Weight * max(o.Quantity, 1)
	if o.Class != herostep.ClassCoin && h.Load+w > 2*PackCapacity {
		return false
	}
	md.pack = append(md.pack, o)
	h.Load += w
	h.Encumbrance = herostep.Encumbrance(min(h.Load/PackCapacity, int(herostep.Overloaded)))
	return true
}

func (md *model) boulderPushed(from, to gruid.Point, filled bool) {
	log.WithFields(logrus.Fields{"from": from, "to": to, "filled": filled}).Debug("boulder pushed")
}

func (md *model) Init() gruid.Effect {
	return gruid.Sub(subSig)
}

// Update implements gruid.Model.Update.
func (md *model) Update(msg gruid.Msg) gruid.Effect {
	switch msg := msg.(type) {
	case gruid.MsgQuit:
		md.mode = modeQuit
		return gruid.End()
	case msgAuto:
		return md.updateAuto(msg)
	case gruid.MsgKeyDown:
		if md.g.Running() {
			// any key interrupts travel
			md.g.CancelAuto()
			return nil
		}
		return md.updateKeyDown(msg)
	case gruid.MsgMouse:
		if md.mode != modeNormal || msg.Action != gruid.MouseMain {
			return nil
		}
		p := msg.P.Sub(mapOffset)
		if !p.In(gruid.NewRange(0, 0, herostep.MapWidth, herostep.MapHeight)) {
			return nil
		}
		return md.travel(p)
	}
	return nil
}

var keyDirs = map[gruid.Key]gruid.Point{
	"h": {-1, 0},
	"j": {0, 1},
	"k": {0, -1},
	"l": {1, 0},
	"y": {-1, -1},
	"u": {1, -1},
	"b": {-1, 1},
	"n": {1, 1},

	gruid.KeyArrowLeft:  {-1, 0},
	gruid.KeyArrowDown:  {0, 1},
	gruid.KeyArrowUp:    {0, -1},
	gruid.KeyArrowRight: {1, 0},
}

var runKeyDirs = map[gruid.Key]gruid.Point{
	"H": {-1, 0},
	"J": {0, 1},
	"K": {0, -1},
	"L": {1, 0},
	"Y": {-1, -1},
	"U": {1, -1},
	"B": {-1, 1},
	"N": {1, 1},
}

func (md *model) updateKeyDown(msg gruid.MsgKeyDown) gruid.Effect {
	switch md.mode {
	case modeDead:
		md.mode = modeQuit
		return gruid.End()
	case modePrompt:
		return md.updatePrompt(msg)
	case modeDirection:
		return md.updateDirection(msg)
	}
	g := md.g
	if g.Hero.Helpless() && msg.Key != "Q" {
		g.EndTurn()
		md.checkDead()
		return nil
	}
	if dir, ok := keyDirs[msg.Key]; ok {
		if msg.Mod&gruid.ModShift != 0 {
			return md.run(dir, herostep.RunUntilBlocked)
		}
		return md.step(g.AttemptStep(dir))
	}
	if dir, ok := runKeyDirs[msg.Key]; ok {
		return md.run(dir, herostep.RunUntilBlocked)
	}
	switch msg.Key {
	case "g":
		md.askDirection(prefixRush)
	case "G":
		md.askDirection(prefixCorridor)
	case "F":
		md.askDirection(prefixFight)
	case "m":
		md.askDirection(prefixNoPickup)
	case "_", ">":
		if p, ok := md.findStairs(); ok {
			return md.travel(p)
		}
		g.Log("You do not know where the stairs are.")
	case ".", "s":
		g.EndTurn()
		md.checkDead()
	case "a":
		g.Config.Autopickup = !g.Config.Autopickup
		g.Logf("Autopickup: %s.", onOff(g.Config.Autopickup))
	case "c":
		g.Config.Confirm = !g.Config.Confirm
		g.Logf("Confirm attacks on peacefuls: %s.", onOff(g.Config.Confirm))
	case "p":
		g.Config.ParanoidTrap = !g.Config.ParanoidTrap
		g.Logf("Paranoid about traps: %s.", onOff(g.Config.ParanoidTrap))
	case "i":
		md.listPack()
	case "Q":
		md.mode = modeQuit
		return gruid.End()
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (md *model) askDirection(pr prefix) {
	md.prefix = pr
	md.mode = modeDirection
}

func (md *model) updateDirection(msg gruid.MsgKeyDown) gruid.Effect {
	pr := md.prefix
	md.prefix = prefixNone
	md.mode = modeNormal
	dir, ok := keyDirs[msg.Key]
	if !ok {
		return nil
	}
	g := md.g
	switch pr {
	case prefixRush:
		return md.run(dir, herostep.RunRush)
	case prefixCorridor:
		return md.run(dir, herostep.RunCorridor)
	case prefixFight:
		return md.step(g.Fight(dir))
	case prefixNoPickup:
		return md.step(g.MoveNoPickup(dir))
	}
	return nil
}

func (md *model) updatePrompt(msg gruid.MsgKeyDown) gruid.Effect {
	g := md.g
	var res herostep.StepResult
	switch msg.Key {
	case "y", "Y":
		res = g.Resume(true)
	case "n", "N", gruid.KeyEscape, gruid.KeyEnter, gruid.KeySpace:
		res = g.Resume(false)
	default:
		return nil
	}
	md.mode = modeNormal
	if g.Running() {
		// a travel step was confirmed
		return md.autoCmd()
	}
	return md.step(res)
}

// step handles the result of a single attempted step.
func (md *model) step(res herostep.StepResult) gruid.Effect {
	if res.Suspended() {
		md.mode = modePrompt
		return nil
	}
	log.WithFields(logrus.Fields{"reason": res.Reason, "moved": res.Moved}).Debug("step")
	md.checkDead()
	return nil
}

func (md *model) run(dir gruid.Point, style herostep.RunStyle) gruid.Effect {
	rr := md.g.StartRun(dir, style)
	log.WithFields(logrus.Fields{"style": style, "stop": rr.Stop, "steps": rr.Steps}).Debug("run")
	if rr.Prompt != nil {
		md.mode = modePrompt
		return nil
	}
	md.checkDead()
	return nil
}

func (md *model) travel(dest gruid.Point) gruid.Effect {
	return md.handleTravel(md.g.StartTravel(dest))
}

func (md *model) updateAuto(msg msgAuto) gruid.Effect {
	g := md.g
	if int(msg) != g.Turn || !g.Running() || md.mode != modeNormal {
		return nil
	}
	return md.handleTravel(g.ContinueTravel())
}

func (md *model) handleTravel(tr herostep.TravelResult) gruid.Effect {
	switch {
	case tr.Prompt != nil:
		md.mode = modePrompt
		return nil
	case tr.Stop == herostep.StopNone:
		return md.autoCmd()
	}
	log.WithFields(logrus.Fields{"stop": tr.Stop, "steps": tr.Steps}).Debug("travel")
	md.checkDead()
	return nil
}

// autoCmd schedules the next travel step.
func (md *model) autoCmd() gruid.Effect {
	n := md.g.Turn
	return gruid.Cmd(func() gruid.Msg {
		t := time.NewTimer(AutoDelay)
		<-t.C
		return msgAuto(n)
	})
}

func (md *model) checkDead() {
	if md.g.Hero.IsDead() {
		md.g.CancelAuto()
		md.mode = modeDead
	}
}

// findStairs returns the position of discovered down stairs.
func (md *model) findStairs() (gruid.Point, bool) {
	l := md.g.Level
	it := l.Terrain.Iterator()
	for it.Next() {
		if it.Cell() == herostep.StairsDown && l.IsSeen(it.P()) {
			return it.P(), true
		}
	}
	return gruid.Point{}, false
}

func (md *model) listPack() {
	g := md.g
	if len(md.pack) == 0 {
		g.Log("Your pack is empty.")
		return
	}
	s := ""
	for i, o := range md.pack {
		if i > 0 {
			s += ", "
		}
		s += o.String()
	}
	g.Log(fmt.Sprintf("You carry %s (weight %d).", s, g.Hero.Load))
}
