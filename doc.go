// Package swoop moves 2D objects along B-spline paths.
//
// Swoop computes positions and lean rotations; it does not draw anything.
// Any type that can report and accept a position is animatable by
// implementing [Target]. Types that also implement [Rotatable] can bank
// toward their direction of travel.
//
// # Quick start
//
// Create a [Manager], add animations, and call [Manager.Update] once per
// frame with the frame time:
//
//	m := swoop.NewManager()
//	card := swoop.NewBody("card", 100, 400)
//	m.Add(card, []swoop.Vec2{{100, 400}, {300, 0}, {520, 560}}, 2.0, swoop.Options{
//		Degree: 2,
//		Easing: swoop.InOutQuint,
//		Lean:   swoop.LeanConfig{Enabled: true},
//	})
//
//	// each frame
//	m.Update(dt)
//
// # Paths
//
// [NewSpline] builds a clamped B-spline: it always starts on the first
// control point and ends on the last. Degree 1 draws straight segments
// through every point; degree 2 and above give smooth curves. A [Spline] is
// immutable and can be shared by many instances.
//
// # Easing
//
// Easing functions remap normalized time before it is used to sample the
// path. The full Penner set is available as functions ([OutQuart],
// [InOutBack], ...) and by name through [Easing] for configuration files.
// [FromTween] and [EasingFunc.Tween] convert to and from [gween] easing
// functions.
//
// # Lean
//
// With [LeanConfig.Enabled] an instance samples the path tangent slightly
// ahead, turns it into a heading, soft-clamps it with tanh, levels it out
// near the end and damps the displayed angle. The rotation is always set
// relative to the target's base orientation, never accumulated.
//
// # Sequencing
//
// [Queue] runs moves, pauses and whole spline animations one after another.
// Scripts in YAML or JSON can build a queue with [ParseScript], and named
// animation presets load from YAML with [LoadPresets] and hot-reload with
// [WatchPresets].
//
// # ECS
//
// The swoop/ecs package drives animations on [Donburi] entities.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package swoop
