package selection

import (
	"github.com/google/uuid"
)

// EventBus forwards selection events between components. Handlers run
// synchronously on the UI event loop that drove the change; there is
// no locking because no other goroutine touches selection state.
type EventBus struct {
	onChanged map[string]func()
	onCleared map[string]func()
}

func NewEventBus() *EventBus {
	return &EventBus{
		onChanged: make(map[string]func()),
		onCleared: make(map[string]func()),
	}
}

// ConnectChanged registers a handler for selection changes (begin,
// extend, freeze) and returns a handle for Disconnect.
func (e *EventBus) ConnectChanged(handler func()) string {
	id := uuid.New().String()
	e.onChanged[id] = handler
	return id
}

// ConnectCleared registers a handler for selection teardown.
func (e *EventBus) ConnectCleared(handler func()) string {
	id := uuid.New().String()
	e.onCleared[id] = handler
	return id
}

// Disconnect removes a handler registered by either Connect call.
func (e *EventBus) Disconnect(id string) {
	delete(e.onChanged, id)
	delete(e.onCleared, id)
}

func (e *EventBus) emitChanged() {
	for _, handler := range e.onChanged {
		handler()
	}
}

func (e *EventBus) emitCleared() {
	for _, handler := range e.onCleared {
		handler()
	}
}
