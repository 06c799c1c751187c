package game

import "sync"

type sentEvent struct {
	kind   string // "caller" or "group"
	target string // connID or pin
	event  string
	args   []interface{}
}

// fakeMessenger records every delivery so tests can assert on exactly
// what the coordinator published and to whom.
type fakeMessenger struct {
	mu     sync.Mutex
	events []sentEvent
	groups map[string]map[string]bool
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{groups: make(map[string]map[string]bool)}
}

func (f *fakeMessenger) AddToGroup(connID, pin string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.groups[pin] == nil {
		f.groups[pin] = make(map[string]bool)
	}
	f.groups[pin][connID] = true
}

func (f *fakeMessenger) RemoveFromGroup(connID, pin string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.groups[pin]; ok {
		delete(g, connID)
		if len(g) == 0 {
			delete(f.groups, pin)
		}
	}
}

func (f *fakeMessenger) SendToCaller(connID, event string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, sentEvent{kind: "caller", target: connID, event: event, args: args})
}

func (f *fakeMessenger) SendToGroup(pin, event string, args ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, sentEvent{kind: "group", target: pin, event: event, args: args})
}

func (f *fakeMessenger) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = nil
}

func (f *fakeMessenger) named(event string) []sentEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentEvent
	for _, e := range f.events {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeMessenger) last(event string) (sentEvent, bool) {
	all := f.named(event)
	if len(all) == 0 {
		return sentEvent{}, false
	}
	return all[len(all)-1], true
}

func (f *fakeMessenger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// fixedGenerator returns a recognizable non-empty board and counts
// invocations.
func fixedGenerator(calls *int) BoardGenerator {
	return func() Board {
		*calls++
		b := NewBoard()
		b.SetCell(0, 0, 5)
		return b
	}
}
