// Package bounce is a bouncing-ball simulation engine with an [Ebitengine]
// front end.
//
// A [World] owns a fixed set of circular [Body] values inside a rectangle.
// Each frame [World.Step] integrates every body by Δt, reflects velocity
// components on wall contact, and then resolves every unordered pair of
// overlapping bodies with an equal-mass elastic impulse. Renderers read the
// result through [World.DrawCommands].
//
// # Quick start
//
//	cfg := bounce.DefaultConfig()
//	bounce.NewSpawner(bounce.Seed()).Populate(&cfg,
//		bounce.CornerPositions(cfg.Width, cfg.Height, cfg.Radius), nil)
//	world, err := bounce.NewWorld(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	bounce.Run(world, bounce.RunConfig{Title: "Bouncing Balls"})
//
// For headless use call [World.Step] (or [World.Advance]) yourself and read
// [World.DrawCommands] after each frame.
//
// # Behavior worth knowing
//
// Collisions change velocities only. Overlapping bodies are not pushed apart,
// so two bodies can visibly interpenetrate for a few frames. Two bodies with
// coincident centers are nudged 1e-3 units apart along x instead.
//
// Pairs are resolved in ascending index order within a frame, and a body's
// velocity may already reflect an earlier pair. Results are deterministic but
// order dependent.
//
// Δt is not capped. A long pause can tunnel bodies through each other; set
// [World.MaxStep] to split large steps into substeps.
//
// Sibling packages provide a terminal renderer (term), collision sounds
// (audio), the staged block animation (stage), a mouse-following arrow
// (steer), and a Donburi event bridge (the bounce/ecs module).
//
// [Ebitengine]: https://ebitengine.org
package bounce
