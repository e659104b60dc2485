/*
Package tracker implements the in-memory duty tracking demo.

Unlike the standard domain, tracked duties are keyed by a small integer
number, live only for the process lifetime, and carry a completion flag.
The store is the source of truth; there is no persistence behind it.
*/
package tracker

import (
	"fmt"
	"sort"
	"sync"

	"github.com/forgeline/coinage/internal/platform/apperr"
)

// Duty is a tracked duty. KSBs are free-form code strings; the tracker does
// not resolve them against the standard domain.
type Duty struct {
	Number      int      `json:"number"`
	Description string   `json:"description"`
	KSBs        []string `json:"ksbs"`
	Complete    bool     `json:"complete"`
	Status      string   `json:"status"`
}

const (
	statusComplete   = "Duty Complete!"
	statusIncomplete = "Duty Not Completed!"
)

func (duty *Duty) refreshStatus() {
	if duty.Complete {
		duty.Status = statusComplete
	} else {
		duty.Status = statusIncomplete
	}
}

// Store holds tracked duties keyed by number. Safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	duties map[int]*Duty
}

func NewStore() *Store {
	return &Store{duties: make(map[int]*Duty)}
}

// Add registers a new duty. Numbers are unique.
func (store *Store) Add(number int, description string, ksbs []string) (*Duty, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.duties[number]; exists {
		return nil, apperr.Duplicate(fmt.Sprintf("Duty with number '%d' already exists.", number))
	}

	duty := &Duty{
		Number:      number,
		Description: description,
		KSBs:        append([]string{}, ksbs...),
	}
	duty.refreshStatus()
	store.duties[number] = duty
	return cloneDuty(duty), nil
}

// List returns all tracked duties ordered by number.
func (store *Store) List() []*Duty {
	store.mu.RLock()
	defer store.mu.RUnlock()

	duties := make([]*Duty, 0, len(store.duties))
	for _, duty := range store.duties {
		duties = append(duties, cloneDuty(duty))
	}
	sort.Slice(duties, func(i, j int) bool { return duties[i].Number < duties[j].Number })
	return duties
}

// Get returns the duty with the given number.
func (store *Store) Get(number int) (*Duty, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	duty, ok := store.duties[number]
	if !ok {
		return nil, apperr.NotFound("Duty")
	}
	return cloneDuty(duty), nil
}

// Edit replaces a duty's description and KSB list.
func (store *Store) Edit(number int, description string, ksbs []string) (*Duty, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	duty, ok := store.duties[number]
	if !ok {
		return nil, apperr.NotFound("Duty")
	}

	duty.Description = description
	duty.KSBs = append([]string{}, ksbs...)
	return cloneDuty(duty), nil
}

// Delete removes a duty. Deleting an absent number is not an error, which
// keeps the operation idempotent for retrying clients.
func (store *Store) Delete(number int) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.duties, number)
}

// MarkComplete flips a duty's completion flag on.
func (store *Store) MarkComplete(number int) (*Duty, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	duty, ok := store.duties[number]
	if !ok {
		return nil, apperr.NotFound("Duty")
	}

	duty.Complete = true
	duty.refreshStatus()
	return cloneDuty(duty), nil
}

// Reset drops every tracked duty.
func (store *Store) Reset() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.duties = make(map[int]*Duty)
}

func cloneDuty(duty *Duty) *Duty {
	clone := *duty
	clone.KSBs = append([]string{}, duty.KSBs...)
	return &clone
}
