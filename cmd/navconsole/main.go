// Copyright (c) 2026, The Input Core Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command navconsole is an interactive REPL for exercising a
// navigation manager by hand: create groups, move the cursor over
// them, dispatch raw device events, and dump validation/HID state
// without wiring up a full application (spec §1.4's ambient test
// tooling).
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/inputcore/engine/action"
	"github.com/inputcore/engine/config"
	"github.com/inputcore/engine/device"
	"github.com/inputcore/engine/ecs"
	"github.com/inputcore/engine/engine"
	"github.com/inputcore/engine/events"
	"github.com/inputcore/engine/math2"
	"github.com/inputcore/engine/nav"
	"github.com/mattn/go-shellwords"
	"github.com/muesli/termenv"
)

var out = termenv.NewOutput(os.Stdout)

func info(format string, args ...any) {
	fmt.Fprintln(os.Stdout, out.String(fmt.Sprintf(format, args...)).Foreground(termenv.ANSICyan))
}

func warn(format string, args ...any) {
	fmt.Fprintln(os.Stdout, out.String(fmt.Sprintf(format, args...)).Foreground(termenv.ANSIYellow))
}

func fail(format string, args ...any) {
	fmt.Fprintln(os.Stdout, out.String(fmt.Sprintf(format, args...)).Foreground(termenv.ANSIRed).Bold())
}

// discardPublisher swallows every cursor/nav event; navconsole only
// cares about the resulting state, not the event stream.
type discardPublisher struct{}

func (discardPublisher) Publish(events.Types, any) {}

func main() {
	reg := newConsoleRegistry()
	cursorID := reg.newEntity(0, 0, 1, 1)
	worldID := reg.newEntity(0, 0, 0, 0)
	broad := func(pos math2.Vector2) []ecs.Entity {
		var hits []ecs.Entity
		for e, tr := range reg.transforms {
			if tr.Rect().ContainsPoint(pos) {
				hits = append(hits, e)
			}
		}
		return hits
	}

	loader := config.NewLoader(config.DefaultPath)
	s := engine.Init(reg, cursorID, worldID, broad, discardPublisher{}, loader.Load())

	info("navconsole ready. type 'help' for commands, 'quit' to exit.")
	repl(reg, s)
}

func repl(reg *consoleRegistry, s *engine.InputState) {
	parser := shellwords.NewParser()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, out.String("navconsole> ").Foreground(termenv.ANSIGreen))
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		args, err := parser.Parse(line)
		if err != nil {
			fail("parse error: %v", err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if done := dispatch(reg, s, args[0], args[1:]); done {
			return
		}
	}
}

func dispatch(reg *consoleRegistry, s *engine.InputState, cmd string, args []string) bool {
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
	case "entity":
		cmdEntity(reg, args)
	case "group":
		cmdGroup(s, args)
	case "add":
		cmdAdd(s, args)
	case "select":
		cmdSelect(s, args)
	case "bind":
		cmdBind(s, args)
	case "press":
		cmdPress(s, args)
	case "navigate":
		cmdNavigate(s, args)
	case "tick":
		cmdTick(s, args)
	case "dump":
		cmdDump(s, args)
	default:
		warn("unknown command %q, type 'help'", cmd)
	}
	return false
}

func printHelp() {
	info(strings.Join([]string{
		"entity <x> <y> <w> <h>         create an entity, prints its id",
		"group <name>                   create a navigation group",
		"add <group> <entity>           add an entity to a group",
		"select <group> <index>         set a group's selected index",
		"bind <action> <keycode>        bind a keyboard-press action",
		"press <keycode>                dispatch a keyboard keydown/up pair",
		"navigate <group> <up|down|left|right>   move focus one step",
		"tick <seconds>                 advance one frame by dt seconds",
		"dump                           print nav.Manager.Validate() and HID state",
		"quit                           exit",
	}, "\n"))
}

func cmdEntity(reg *consoleRegistry, args []string) {
	if len(args) != 4 {
		fail("usage: entity <x> <y> <w> <h>")
		return
	}
	vals := make([]float32, 4)
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			fail("bad number %q: %v", a, err)
			return
		}
		vals[i] = float32(f)
	}
	e := reg.newEntity(vals[0], vals[1], vals[2], vals[3])
	info("entity %d", e)
}

func cmdGroup(s *engine.InputState, args []string) {
	if len(args) != 1 {
		fail("usage: group <name>")
		return
	}
	s.Nav.CreateGroup(args[0])
	info("group %q created", args[0])
}

func cmdAdd(s *engine.InputState, args []string) {
	if len(args) != 2 {
		fail("usage: add <group> <entity>")
		return
	}
	id, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		fail("bad entity id %q: %v", args[1], err)
		return
	}
	s.Nav.AddEntity(args[0], ecs.Entity(id))
	info("added %d to %q", id, args[0])
}

func cmdSelect(s *engine.InputState, args []string) {
	if len(args) != 2 {
		fail("usage: select <group> <index>")
		return
	}
	idx, err := strconv.Atoi(args[1])
	if err != nil {
		fail("bad index %q: %v", args[1], err)
		return
	}
	s.Nav.SetSelected(args[0], idx)
	info("selected %d in %q", idx, args[0])
}

func cmdBind(s *engine.InputState, args []string) {
	if len(args) != 2 {
		fail("usage: bind <action> <keycode>")
		return
	}
	code, err := strconv.Atoi(args[1])
	if err != nil {
		fail("bad keycode %q: %v", args[1], err)
		return
	}
	s.Action.Bind(args[0], action.Binding{Device: device.Keyboard, Code: int32(code), Trigger: action.Pressed})
	info("bound %q to keyboard code %d", args[0], code)
}

func cmdPress(s *engine.InputState, args []string) {
	if len(args) != 1 {
		fail("usage: press <keycode>")
		return
	}
	code, err := strconv.Atoi(args[0])
	if err != nil {
		fail("bad keycode %q: %v", args[0], err)
		return
	}
	raw := []device.Event{
		{Kind: device.Keyboard, Code: int32(code), Down: true},
		{Kind: device.Keyboard, Code: int32(code), Down: false},
	}
	s.Update(engine.MousePos{}, 1.0/60, raw, "", nil)
	s.FinalizeFrame(1.0 / 60)
	info("dispatched keydown/up %d", code)
}

func cmdNavigate(s *engine.InputState, args []string) {
	if len(args) != 2 {
		fail("usage: navigate <group> <up|down|left|right>")
		return
	}
	dir, ok := parseDirection(args[1])
	if !ok {
		fail("unknown direction %q", args[1])
		return
	}
	s.Update(engine.MousePos{}, 1.0/60, nil, args[0], &dir)
	s.FinalizeFrame(1.0 / 60)
	sel, found := s.Nav.GetSelected(args[0])
	if !found {
		warn("group %q has no selection", args[0])
		return
	}
	info("%q selected %d", args[0], sel)
}

func cmdTick(s *engine.InputState, args []string) {
	dt := float32(1.0 / 60)
	if len(args) == 1 {
		f, err := strconv.ParseFloat(args[0], 32)
		if err != nil {
			fail("bad dt %q: %v", args[0], err)
			return
		}
		dt = float32(f)
	}
	s.Update(engine.MousePos{}, dt, nil, "", nil)
	s.FinalizeFrame(dt)
	info("ticked %.4fs", dt)
}

func cmdDump(s *engine.InputState, _ []string) {
	if problems := s.Nav.Validate(); problems != "" {
		fail("nav invariants broken: %s", problems)
	} else {
		info("nav invariants hold")
	}
	info("hid mode: %s", s.HID.State().LastType)
	info("locks active: %v", s.Locks.Active())
	info("paused: %v", s.Paused)
}

func parseDirection(s string) (nav.Direction, bool) {
	switch strings.ToLower(s) {
	case "up":
		return nav.Up, true
	case "down":
		return nav.Down, true
	case "left":
		return nav.Left, true
	case "right":
		return nav.Right, true
	default:
		return 0, false
	}
}
