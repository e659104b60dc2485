package standard

import (
	"context"
	"sort"
	"sync"

	"github.com/forgeline/coinage/internal/platform/apperr"
)

/*
MemoryStore is an in-memory implementation of all three repositories.

It backs the service and handler tests, where spinning up PostgreSQL is not
worth the cost, and mirrors the database semantics the postgres stores rely
on: unique coin names, unique codes per table, replace-all junction writes,
and cascading junction cleanup on entity deletion.

The repository interfaces collide on method names, so the store is consumed
through the Coins, Duties, and KSBs views, which all share the same state
and lock.
*/
type MemoryStore struct {
	mu sync.RWMutex

	coins  map[string]*Coin
	duties map[string]*Duty
	ksbs   map[Kind]map[string]*KSB

	// coinDuties and ksbDuties hold junction rows keyed by the non-duty
	// side, preserving insertion order.
	coinDuties map[string][]string
	ksbDuties  map[Kind]map[string][]string
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	ksbs := make(map[Kind]map[string]*KSB, len(kindOrder))
	ksbDuties := make(map[Kind]map[string][]string, len(kindOrder))
	for _, kind := range kindOrder {
		ksbs[kind] = make(map[string]*KSB)
		ksbDuties[kind] = make(map[string][]string)
	}

	return &MemoryStore{
		coins:      make(map[string]*Coin),
		duties:     make(map[string]*Duty),
		ksbs:       ksbs,
		coinDuties: make(map[string][]string),
		ksbDuties:  ksbDuties,
	}
}

// Coins returns the store's CoinRepository view.
func (store *MemoryStore) Coins() CoinRepository { return &memoryCoins{store} }

// Duties returns the store's DutyRepository view.
func (store *MemoryStore) Duties() DutyRepository { return &memoryDuties{store} }

// KSBs returns the store's KSBRepository view.
func (store *MemoryStore) KSBs() KSBRepository { return &memoryKSBs{store} }

// LinkDutyKSB records a junction row between a duty and a KSB. The API has
// no write surface for these junctions; test fixtures seed them directly.
func (store *MemoryStore) LinkDutyKSB(dutyID, ksbID string, kind Kind) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.ksbDuties[kind][ksbID] = append(store.ksbDuties[kind][ksbID], dutyID)
}

type memoryCoins struct{ store *MemoryStore }
type memoryDuties struct{ store *MemoryStore }
type memoryKSBs struct{ store *MemoryStore }

// # CoinRepository view

func (view *memoryCoins) List(_ context.Context) ([]*Coin, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	coins := make([]*Coin, 0, len(store.coins))
	for _, coin := range store.coins {
		coins = append(coins, &Coin{ID: coin.ID, Name: coin.Name})
	}
	sort.Slice(coins, func(i, j int) bool { return coins[i].ID < coins[j].ID })
	return coins, nil
}

func (view *memoryCoins) ListWithDuties(_ context.Context) ([]*Coin, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	coins := make([]*Coin, 0, len(store.coins))
	for _, coin := range store.coins {
		coins = append(coins, store.hydrateCoin(coin))
	}
	sort.Slice(coins, func(i, j int) bool { return coins[i].ID < coins[j].ID })
	return coins, nil
}

func (view *memoryCoins) FindByID(_ context.Context, id string) (*Coin, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	coin, ok := store.coins[id]
	if !ok {
		return nil, apperr.NotFound("Coin")
	}
	return &Coin{ID: coin.ID, Name: coin.Name}, nil
}

func (view *memoryCoins) FindByIDWithDuties(_ context.Context, id string) (*Coin, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	coin, ok := store.coins[id]
	if !ok {
		return nil, apperr.NotFound("Coin")
	}
	return store.hydrateCoin(coin), nil
}

func (view *memoryCoins) Create(_ context.Context, coin *Coin) error {
	store := view.store
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.coins {
		if existing.Name == coin.Name {
			return apperr.Duplicate("Coin already exists. Please choose another name.")
		}
	}

	store.coins[coin.ID] = &Coin{ID: coin.ID, Name: coin.Name}
	if coin.DutyIDs != nil {
		store.coinDuties[coin.ID] = append([]string(nil), coin.DutyIDs...)
	}
	return nil
}

func (view *memoryCoins) Update(_ context.Context, coin *Coin) error {
	store := view.store
	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.coins[coin.ID]
	if !ok {
		return apperr.NotFound("Coin")
	}

	if coin.Name != "" {
		for id, other := range store.coins {
			if id != coin.ID && other.Name == coin.Name {
				return apperr.Duplicate("Coin already exists. Please choose another name.")
			}
		}
		existing.Name = coin.Name
	}

	if coin.DutyIDs != nil {
		store.coinDuties[coin.ID] = append([]string(nil), coin.DutyIDs...)
	}
	return nil
}

func (view *memoryCoins) Delete(_ context.Context, id string) error {
	store := view.store
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.coins[id]; !ok {
		return apperr.NotFound("Coin")
	}

	delete(store.coins, id)
	delete(store.coinDuties, id)
	return nil
}

// # DutyRepository view

func (view *memoryDuties) List(_ context.Context) ([]*Duty, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	duties := make([]*Duty, 0, len(store.duties))
	for _, duty := range store.duties {
		duties = append(duties, cloneDuty(duty))
	}
	sort.Slice(duties, func(i, j int) bool { return duties[i].Code < duties[j].Code })
	return duties, nil
}

func (view *memoryDuties) FindByCode(_ context.Context, code string) (*Duty, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	duty := store.dutyByCode(code)
	if duty == nil {
		return nil, apperr.NotFound("Duty")
	}
	return cloneDuty(duty), nil
}

func (view *memoryDuties) FindByCodeWithCoins(_ context.Context, code string) (*Duty, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	duty := store.dutyByCode(code)
	if duty == nil {
		return nil, apperr.NotFound("Duty")
	}

	hydrated := cloneDuty(duty)
	hydrated.Coins = []*Coin{}
	coinIDs := make([]string, 0)
	for coinID, dutyIDs := range store.coinDuties {
		for _, dutyID := range dutyIDs {
			if dutyID == duty.ID {
				coinIDs = append(coinIDs, coinID)
				break
			}
		}
	}
	sort.Strings(coinIDs)
	for _, coinID := range coinIDs {
		if coin, ok := store.coins[coinID]; ok {
			hydrated.Coins = append(hydrated.Coins, &Coin{ID: coin.ID, Name: coin.Name})
		}
	}
	return hydrated, nil
}

func (view *memoryDuties) ResolveCodes(_ context.Context, codes []string) (map[string]string, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	resolved := make(map[string]string, len(codes))
	for _, code := range codes {
		if duty := store.dutyByCode(code); duty != nil {
			resolved[code] = duty.ID
		}
	}
	return resolved, nil
}

func (view *memoryDuties) ResolveIDs(_ context.Context, ids []string) (map[string]bool, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	resolved := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := store.duties[id]; ok {
			resolved[id] = true
		}
	}
	return resolved, nil
}

func (view *memoryDuties) Create(_ context.Context, duty *Duty) error {
	store := view.store
	store.mu.Lock()
	defer store.mu.Unlock()

	if store.dutyByCode(duty.Code) != nil {
		return apperr.Duplicate("Duty already exists. Please choose another code.")
	}
	for _, existing := range store.duties {
		if existing.Name == duty.Name {
			return apperr.Duplicate("Duty already exists. Please choose another name.")
		}
	}

	store.duties[duty.ID] = cloneDuty(duty)
	return nil
}

func (view *memoryDuties) Delete(_ context.Context, code string) error {
	store := view.store
	store.mu.Lock()
	defer store.mu.Unlock()

	duty := store.dutyByCode(code)
	if duty == nil {
		return apperr.NotFound("Duty")
	}

	delete(store.duties, duty.ID)
	for coinID, dutyIDs := range store.coinDuties {
		store.coinDuties[coinID] = removeID(dutyIDs, duty.ID)
	}
	for _, kind := range kindOrder {
		for ksbID, dutyIDs := range store.ksbDuties[kind] {
			store.ksbDuties[kind][ksbID] = removeID(dutyIDs, duty.ID)
		}
	}
	return nil
}

// # KSBRepository view

func (view *memoryKSBs) List(_ context.Context) ([]*KSB, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	var ksbs []*KSB
	for _, kind := range kindOrder {
		perKind := make([]*KSB, 0, len(store.ksbs[kind]))
		for _, ksb := range store.ksbs[kind] {
			perKind = append(perKind, cloneKSB(ksb))
		}
		sort.Slice(perKind, func(i, j int) bool { return perKind[i].Code < perKind[j].Code })
		ksbs = append(ksbs, perKind...)
	}
	return ksbs, nil
}

func (view *memoryKSBs) FindByCodeWithDuties(_ context.Context, code string) (*KSB, error) {
	store := view.store
	store.mu.RLock()
	defer store.mu.RUnlock()

	for _, kind := range kindOrder {
		for _, ksb := range store.ksbs[kind] {
			if ksb.Code != code {
				continue
			}

			hydrated := cloneKSB(ksb)
			hydrated.Duties = []*Duty{}
			for _, dutyID := range store.ksbDuties[kind][ksb.ID] {
				if duty, ok := store.duties[dutyID]; ok {
					hydrated.Duties = append(hydrated.Duties, cloneDuty(duty))
				}
			}
			return hydrated, nil
		}
	}
	return nil, apperr.NotFound("KSB")
}

func (view *memoryKSBs) Create(_ context.Context, ksb *KSB) error {
	store := view.store
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, existing := range store.ksbs[ksb.Kind] {
		if existing.Code == ksb.Code {
			return apperr.Duplicate("KSB already exists. Please choose another code.")
		}
		if existing.Name == ksb.Name {
			return apperr.Duplicate("KSB already exists. Please choose another name.")
		}
	}

	store.ksbs[ksb.Kind][ksb.ID] = cloneKSB(ksb)
	return nil
}

func (view *memoryKSBs) Delete(_ context.Context, code string) error {
	store := view.store
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, kind := range kindOrder {
		for id, ksb := range store.ksbs[kind] {
			if ksb.Code == code {
				delete(store.ksbs[kind], id)
				delete(store.ksbDuties[kind], id)
				return nil
			}
		}
	}
	return apperr.NotFound("KSB")
}

// # Internals

func (store *MemoryStore) hydrateCoin(coin *Coin) *Coin {
	hydrated := &Coin{ID: coin.ID, Name: coin.Name, Duties: []*Duty{}}
	for _, dutyID := range store.coinDuties[coin.ID] {
		if duty, ok := store.duties[dutyID]; ok {
			hydrated.Duties = append(hydrated.Duties, cloneDuty(duty))
		}
	}
	return hydrated
}

func (store *MemoryStore) dutyByCode(code string) *Duty {
	for _, duty := range store.duties {
		if duty.Code == code {
			return duty
		}
	}
	return nil
}

func cloneDuty(duty *Duty) *Duty {
	return &Duty{ID: duty.ID, Code: duty.Code, Name: duty.Name, Description: duty.Description}
}

func cloneKSB(ksb *KSB) *KSB {
	return &KSB{ID: ksb.ID, Code: ksb.Code, Name: ksb.Name, Description: ksb.Description, Kind: ksb.Kind}
}

func removeID(ids []string, target string) []string {
	kept := ids[:0]
	for _, id := range ids {
		if id != target {
			kept = append(kept, id)
		}
	}
	return kept
}
