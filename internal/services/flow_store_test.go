package services

import (
	"testing"
	"time"

	"carrental/internal/repositories"
)

func TestFlowStorePutGetRemove(t *testing.T) {
	store := NewFlowStore()
	flow := NewBookingFlow(NewCatalogCache(), repositories.BookingRepository{}, repositories.PaymentRepository{})

	id := store.Put(flow)
	if id == "" {
		t.Fatalf("expected non-empty flow id")
	}

	got, ok := store.Get(id)
	if !ok || got != flow {
		t.Fatalf("expected stored flow back, got %v %v", got, ok)
	}

	store.Remove(id)
	if _, ok := store.Get(id); ok {
		t.Fatalf("expected flow to be gone after remove")
	}
}

func TestFlowStoreIDsAreUnique(t *testing.T) {
	store := NewFlowStore()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := store.Put(NewBookingFlow(NewCatalogCache(), repositories.BookingRepository{}, repositories.PaymentRepository{}))
		if seen[id] {
			t.Fatalf("duplicate flow id %s", id)
		}
		seen[id] = true
	}
}

func TestFlowStoreEvictsAbandonedFlows(t *testing.T) {
	store := NewFlowStore()
	id := store.Put(NewBookingFlow(NewCatalogCache(), repositories.BookingRepository{}, repositories.PaymentRepository{}))

	store.mu.Lock()
	e := store.flows[id]
	e.created = time.Now().Add(-flowTTL - time.Minute)
	store.flows[id] = e
	store.mu.Unlock()

	if _, ok := store.Get(id); ok {
		t.Fatalf("expected expired flow to be evicted on Get")
	}

	// the eviction is permanent, not just filtered from the lookup
	store.mu.Lock()
	_, still := store.flows[id]
	store.mu.Unlock()
	if still {
		t.Fatalf("expired flow must be deleted from the store")
	}
}

func TestFlowStorePutSweepsExpired(t *testing.T) {
	store := NewFlowStore()
	stale := store.Put(NewBookingFlow(NewCatalogCache(), repositories.BookingRepository{}, repositories.PaymentRepository{}))

	store.mu.Lock()
	e := store.flows[stale]
	e.created = time.Now().Add(-2 * flowTTL)
	store.flows[stale] = e
	store.mu.Unlock()

	fresh := store.Put(NewBookingFlow(NewCatalogCache(), repositories.BookingRepository{}, repositories.PaymentRepository{}))

	store.mu.Lock()
	_, staleKept := store.flows[stale]
	_, freshKept := store.flows[fresh]
	store.mu.Unlock()
	if staleKept {
		t.Fatalf("put must sweep expired flows")
	}
	if !freshKept {
		t.Fatalf("put must keep the fresh flow")
	}
}

func TestFlowStoreGetUnknown(t *testing.T) {
	store := NewFlowStore()
	if _, ok := store.Get("nope"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}
