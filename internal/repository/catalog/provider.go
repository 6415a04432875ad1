package catalog

import "sync/atomic"

// Provider hands out the loaded store to consumers that start before the
// catalog load completes. Until Set is called, Get reports not-ready.
type Provider struct {
	v atomic.Pointer[Store]
}

// Set publishes the loaded store.
func (p *Provider) Set(s *Store) {
	p.v.Store(s)
}

// Get returns the store and whether it has been loaded yet.
func (p *Provider) Get() (*Store, bool) {
	s := p.v.Load()
	return s, s != nil
}
