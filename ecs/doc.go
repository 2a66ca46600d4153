// Package ecs drives swoop animations on Donburi entities.
//
// Entities carry a [Transform] component that plays the role of a
// swoop.Target. [Animate] attaches a [Motion] to an entity and [System]
// ticks every motion once per frame, removes finished ones and publishes a
// [Completed] event for each.
//
// Usage:
//
//	sys := ecs.NewSystem()
//	e := world.Create(ecs.Transform)
//	ecs.Animate(world, e, points, 1.5, swoop.Options{Degree: 2})
//
//	// each frame
//	sys.Update(world, dt)
//	ecs.CompletedEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
