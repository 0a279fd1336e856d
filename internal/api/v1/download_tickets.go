package v1

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// A finished export stays on disk briefly and is fetched with a single-use
// ticket, so the download works as a plain browser GET.

type downloadTicket struct {
	path     string
	filename string
	issuedAt time.Time
	ttl      time.Duration
}

func (t downloadTicket) expired(now time.Time) bool {
	return now.Sub(t.issuedAt) > t.ttl
}

// ticketRegistry issues and redeems download tickets. Claiming a ticket
// removes it, so each one can be redeemed at most once. Expired tickets are
// swept whenever a new one is issued.
type ticketRegistry struct {
	mu      sync.Mutex
	now     func() time.Time
	tickets map[string]downloadTicket
}

func newTicketRegistry() *ticketRegistry {
	return &ticketRegistry{now: time.Now, tickets: make(map[string]downloadTicket)}
}

func (r *ticketRegistry) issue(path, filename string, ttl time.Duration) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, t := range r.tickets {
		if t.expired(now) {
			delete(r.tickets, id)
		}
	}

	id := uuid.NewString()
	r.tickets[id] = downloadTicket{path: path, filename: filename, issuedAt: now, ttl: ttl}
	return id
}

func (r *ticketRegistry) claim(id string) (downloadTicket, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tickets[id]
	if !ok {
		return downloadTicket{}, false
	}
	delete(r.tickets, id)
	if t.expired(r.now()) {
		return downloadTicket{}, false
	}
	return t, true
}
