package session

import "sync"

// StoreModal is the create-store dialog state. hasOpened distinguishes
// "the user dismissed the modal this visit" from "never shown": the
// dashboard resolver reopens the modal only when it has not been opened
// yet, so dismissing it does not trap the user in a reopen loop.
type StoreModal struct {
	mu        sync.Mutex
	isOpen    bool
	hasOpened bool
}

// Open shows the modal and records that it has been shown.
func (m *StoreModal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isOpen = true
	m.hasOpened = true
}

// Close hides the modal. reset also clears the has-opened flag so the
// next dashboard visit may show it again; session resets and deep-link
// departures pass true, plain dismissal passes false.
func (m *StoreModal) Close(reset bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.isOpen = false
	if reset {
		m.hasOpened = false
	}
}

// IsOpen reports whether the modal is currently visible.
func (m *StoreModal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isOpen
}

// HasOpened reports whether the modal has been shown this visit.
func (m *StoreModal) HasOpened() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.hasOpened
}
