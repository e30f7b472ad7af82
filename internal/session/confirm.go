package session

import (
	"errors"
	"sync"
)

// ErrConfirmationPending rejects a second prompt while one is unresolved.
// Rejecting beats queueing here: a queued destructive prompt would surface
// after the user has lost the context it referred to.
var ErrConfirmationPending = errors.New("a confirmation is already pending")

// Confirmer is the single-slot request/response channel behind destructive
// actions and draft-restore offers. Request hands out a pending confirmation;
// the UI resolves it exactly once. Resolving false must be a complete no-op
// for the caller.
type Confirmer struct {
	mu      sync.Mutex
	pending *Confirmation
}

type Confirmation struct {
	Message string

	c      *Confirmer
	result chan bool
	once   sync.Once
}

func NewConfirmer() *Confirmer {
	return &Confirmer{}
}

func (c *Confirmer) Request(message string) (*Confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		return nil, ErrConfirmationPending
	}
	p := &Confirmation{
		Message: message,
		c:       c,
		result:  make(chan bool, 1),
	}
	c.pending = p
	return p, nil
}

// Resolve answers the prompt. Extra calls are ignored.
func (p *Confirmation) Resolve(ok bool) {
	p.once.Do(func() {
		p.c.mu.Lock()
		p.c.pending = nil
		p.c.mu.Unlock()
		p.result <- ok
	})
}

// Done yields the eventual answer.
func (p *Confirmation) Done() <-chan bool {
	return p.result
}
