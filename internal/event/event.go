// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe — отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners, exists := d.listeners[eventType]
	if !exists {
		return
	}
	for i, l := range listeners {
		if l == listener {
			rest := make([]Listener, 0, len(listeners)-1)
			rest = append(rest, listeners[:i]...)
			d.listeners[eventType] = append(rest, listeners[i+1:]...)
			break
		}
	}
}

// Dispatch — отправка события всем подписчикам.
// Подписчик может отписаться прямо из OnEvent: обход идёт по снимку списка.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}

// Emit — короткая форма Dispatch(Event{Type, Data}).
func (d *Dispatcher) Emit(eventType EventType, data interface{}) {
	d.Dispatch(Event{Type: eventType, Data: data})
}

// ListenerCount — число подписчиков на тип события.
func (d *Dispatcher) ListenerCount(eventType EventType) int {
	return len(d.listeners[eventType])
}
