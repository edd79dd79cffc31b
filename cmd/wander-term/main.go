package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/npcwander/sim"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

func main() {
	specName := flag.String("spec", "", "npc prefab in prefabs/ (default npc.yaml)")
	count := flag.Int("n", 6, "number of npcs to spawn")
	seed := flag.Uint64("seed", 1, "random seed")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	flag.Parse()

	world, err := sim.New(sim.Options{Spec: *specName, Count: *count, Seed: *seed, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer world.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	newTerminalView(screen, world).run()
}

type terminalView struct {
	screen tcell.Screen
	world  *sim.World
}

func newTerminalView(screen tcell.Screen, world *sim.World) *terminalView {
	return &terminalView{screen: screen, world: world}
}

func (v *terminalView) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := max(now.Sub(last).Seconds(), 0)
			last = now
			v.world.Step(dt)
			v.draw()
		}
	}
}

func (v *terminalView) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			return false
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}
