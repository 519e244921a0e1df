package ecs

import (
	"github.com/phanxgames/press"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PressEvent is a press lifecycle emission tagged with the name the hooks
// were created with.
type PressEvent struct {
	Name string
	press.PressEvent
}

// PressChange reports a pressed-state transition.
type PressChange struct {
	Name    string
	Pressed bool
}

// PressEventType is the Donburi event type for press lifecycle events.
var PressEventType = events.NewEventType[PressEvent]()

// PressChangeEventType is the Donburi event type for pressed-state changes.
var PressChangeEventType = events.NewEventType[PressChange]()

// Hooks returns press hooks publishing into world. Events are queued until
// the world processes them.
func Hooks(world donburi.World, name string) press.Hooks {
	emit := func(e press.PressEvent) {
		PressEventType.Publish(world, PressEvent{Name: name, PressEvent: e})
	}
	return press.Hooks{
		OnPressStart: emit,
		OnPressEnd:   emit,
		OnPressUp:    emit,
		OnPress:      emit,
		OnPressChange: func(pressed bool) {
			PressChangeEventType.Publish(world, PressChange{Name: name, Pressed: pressed})
		},
	}
}
