package services

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// flowTTL bounds how long an abandoned flow (never finished, never cancelled)
// stays resident. One hour comfortably covers a checkout session.
const flowTTL = time.Hour

type flowEntry struct {
	flow    *BookingFlow
	created time.Time
}

// FlowStore keeps the live booking flows, one per customer session.
// Cancelled and spent flows are removed by the handlers that finish them;
// abandoned ones are evicted once they outlive flowTTL.
type FlowStore struct {
	mu    sync.Mutex
	flows map[string]flowEntry
}

func NewFlowStore() *FlowStore {
	return &FlowStore{flows: map[string]flowEntry{}}
}

// Put registers a flow and returns its id. Expired flows are swept here, so
// the map stays bounded by the creation rate within one TTL window.
func (s *FlowStore) Put(flow *BookingFlow) string {
	// lightweight unique id (time + rand) to avoid heavy deps
	id := strconv.FormatInt(time.Now().UnixNano(), 10) + "-" + strconv.Itoa(rand.Intn(1000000))

	now := time.Now()
	s.mu.Lock()
	for k, e := range s.flows {
		if now.Sub(e.created) > flowTTL {
			delete(s.flows, k)
		}
	}
	s.flows[id] = flowEntry{flow: flow, created: now}
	s.mu.Unlock()
	return id
}

// Get returns the flow for an id. An entry past its TTL is evicted and
// reported as a miss.
func (s *FlowStore) Get(id string) (*BookingFlow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.flows[id]
	if !ok {
		return nil, false
	}
	if time.Since(e.created) > flowTTL {
		delete(s.flows, id)
		return nil, false
	}
	return e.flow, true
}

func (s *FlowStore) Remove(id string) {
	s.mu.Lock()
	delete(s.flows, id)
	s.mu.Unlock()
}
