package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// ErrAccountNotFound is returned by lookups for unknown account ids.
var ErrAccountNotFound = errors.New("account not found")

// Repository is the exclusive owner of all accounts: it allocates ids,
// constructs accounts and is the only index for looking them up. Ids are
// "ACC" plus a monotonically increasing integer starting at 1; ids are
// never reused.
type Repository struct {
	mu       sync.RWMutex
	nextID   int
	order    []string
	accounts map[string]*Account
}

// NewRepository creates an empty in-memory account store.
func NewRepository() *Repository {
	return &Repository{nextID: 1, accounts: make(map[string]*Account)}
}

// Create allocates the next account id and stores a zero-balance account
// for the given owner.
func (r *Repository) Create(owner Customer, typ AccountType) *Account {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := fmt.Sprintf("ACC%d", r.nextID)
	r.nextID++
	acc := newAccount(id, owner, typ)
	r.accounts[id] = acc
	r.order = append(r.order, id)
	return acc
}

// Find resolves an account by exact id.
func (r *Repository) Find(id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", id, ErrAccountNotFound)
	}
	return acc, nil
}

// ListAll returns every account in creation order.
func (r *Repository) ListAll() []*Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.order, func(id string, _ int) *Account {
		return r.accounts[id]
	})
}

// FindByOwnerName returns the accounts whose owner name matches
// case-insensitively. No match is an empty slice, not an error.
func (r *Repository) FindByOwnerName(name string) []*Account {
	return lo.Filter(r.ListAll(), func(a *Account, _ int) bool {
		return strings.EqualFold(a.Owner.Name, name)
	})
}
