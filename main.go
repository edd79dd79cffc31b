package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/npcwander/ecs/component"
	"github.com/milk9111/npcwander/sim"
)

func main() {
	specName := flag.String("spec", "", "npc prefab in prefabs/ (default npc.yaml)")
	count := flag.Int("n", 12, "number of npcs to spawn")
	seed := flag.Uint64("seed", 1, "random seed")
	debug := flag.Bool("debug", false, "draw wander bounds and headings")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	headless := flag.Bool("headless", false, "run without a window and log state changes")
	frames := flag.Int("frames", 600, "frames to simulate in headless mode")
	dt := flag.Float64("dt", 1.0/60, "seconds per frame in headless mode")
	flag.Parse()

	world, err := sim.New(sim.Options{Spec: *specName, Count: *count, Seed: *seed, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer world.Close()

	if *headless {
		world.Run(*frames, *dt, func(frame uint64, tr component.WanderTransition) {
			log.Printf("frame %d: npc %d %s -> %s for %.2fs at (%.2f, %.2f)", frame, tr.Entity, tr.From, tr.To, tr.Duration, tr.X, tr.Y)
		})
		return
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("npcwander - " + world.Spec.Name)

	if err := ebiten.RunGame(NewGame(world, *debug)); err != nil {
		log.Fatal(err)
	}
}
