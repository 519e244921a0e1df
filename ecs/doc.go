// Package ecs bridges press trackers into a [Donburi] world.
//
// [Hooks] returns press hooks that publish every lifecycle emission to
// [PressEventType] and every pressed-state change to [PressChangeEventType].
// Systems subscribe to those and drain them with ProcessEvents.
//
// Usage:
//
//	tr := press.NewTracker(ecs.Hooks(world, "ok"))
//	tr.Attach(button)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
