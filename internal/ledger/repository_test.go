package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	repo := NewRepository()

	a := repo.Create(Customer{Name: "Alice", Email: "a@x.com"}, TypeSavings)
	b := repo.Create(Customer{Name: "Bob", Email: "b@x.com"}, TypeCurrent)
	c := repo.Create(Customer{Name: "Carol", Email: "c@x.com"}, TypeSavings)

	assert.Equal(t, "ACC1", a.ID)
	assert.Equal(t, "ACC2", b.ID)
	assert.Equal(t, "ACC3", c.ID)
	assert.True(t, a.Balance().IsZero())
}

func TestFindResolvesExactID(t *testing.T) {
	repo := NewRepository()
	created := repo.Create(Customer{Name: "Alice", Email: "a@x.com"}, TypeSavings)

	found, err := repo.Find(created.ID)
	require.NoError(t, err)
	assert.Same(t, created, found)

	_, err = repo.Find("ACC999")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestListAllReturnsCreationOrder(t *testing.T) {
	repo := NewRepository()
	repo.Create(Customer{Name: "Alice", Email: "a@x.com"}, TypeSavings)
	repo.Create(Customer{Name: "Bob", Email: "b@x.com"}, TypeCurrent)
	repo.Create(Customer{Name: "Carol", Email: "c@x.com"}, TypeSavings)

	all := repo.ListAll()
	require.Len(t, all, 3)
	assert.Equal(t, []string{"ACC1", "ACC2", "ACC3"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestFindByOwnerNameIsCaseInsensitive(t *testing.T) {
	repo := NewRepository()
	repo.Create(Customer{Name: "Alice", Email: "a@x.com"}, TypeSavings)
	repo.Create(Customer{Name: "alice", Email: "a2@x.com"}, TypeCurrent)
	repo.Create(Customer{Name: "Bob", Email: "b@x.com"}, TypeCurrent)

	lower := repo.FindByOwnerName("alice")
	upper := repo.FindByOwnerName("ALICE")
	require.Len(t, lower, 2)
	assert.Equal(t, lower, upper)

	none := repo.FindByOwnerName("nobody")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
