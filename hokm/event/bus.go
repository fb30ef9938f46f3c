package event

// Bus fans payloads out to registered listeners. A listener receives only the
// events whose listener interface it implements.
type Bus struct {
	listeners []interface{}
}

func NewBus() *Bus {
	return &Bus{listeners: make([]interface{}, 0)}
}

func (b *Bus) AddListener(listener interface{}) {
	b.listeners = append(b.listeners, listener)
}
