package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imaut/internal/core/apperror"
	"imaut/internal/core/types"
	"imaut/internal/domain"
	"imaut/internal/domain/account"
	"imaut/internal/domain/product"
)

var (
	_ domain.Repository[*account.Account] = (*Repository[*account.Account])(nil)
	_ domain.Pinger                       = (*Repository[*account.Account])(nil)
)

func newAccount(name string) *account.Account {
	return &account.Account{
		Name: types.Ptr(name),
		Type: types.Ptr("CUSTOMER"),
		BankDetails: []account.BankDetails{
			{AccountName: types.Ptr(name), Iban: types.Ptr("ES00"), Bic: types.Ptr("BIC"), BankName: types.Ptr("Bank")},
		},
	}
}

func TestSave_AssignsIdentifiers(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[*account.Account](account.EntityName)

	in := newAccount("a")
	saved, err := repo.Save(ctx, in)
	require.NoError(t, err)

	assert.EqualValues(t, 1, saved.ID)
	assert.EqualValues(t, 1, saved.BankDetails[0].ID)
	assert.EqualValues(t, 1, saved.BankDetails[0].AccountID)
	assert.True(t, in.IsNew(), "input must not be modified")

	second, err := repo.Save(ctx, newAccount("b"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, second.ID)
	assert.EqualValues(t, 2, second.BankDetails[0].ID)
}

func TestSave_ReplacesExisting(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[*account.Account](account.EntityName)

	saved, err := repo.Save(ctx, newAccount("a"))
	require.NoError(t, err)

	saved.Name = types.Ptr("renamed")
	saved.BankDetails = nil
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", *got.Name)
	assert.Empty(t, got.BankDetails)
	assert.Equal(t, 1, repo.Len())
}

func TestSave_UnknownIDIsNotFound(t *testing.T) {
	repo := NewRepository[*product.Product](product.EntityName)

	p := &product.Product{Name: types.Ptr("x")}
	p.SetID(77)
	_, err := repo.Save(context.Background(), p)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFindByID_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[*account.Account](account.EntityName)

	saved, err := repo.Save(ctx, newAccount("a"))
	require.NoError(t, err)

	got, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	*got.Name = "mutated"

	again, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", *again.Name)
}

func TestFindByID_Missing(t *testing.T) {
	repo := NewRepository[*account.Account](account.EntityName)

	_, err := repo.FindByID(context.Background(), 5)
	assert.True(t, apperror.IsNotFound(err))
}

func TestFindAll_OrderedAndEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[*account.Account](account.EntityName)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	for _, n := range []string{"a", "b", "c"} {
		_, err := repo.Save(ctx, newAccount(n))
		require.NoError(t, err)
	}

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.EqualValues(t, 1, all[0].ID)
	assert.EqualValues(t, 3, all[2].ID)
}

func TestDeleteByID_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[*account.Account](account.EntityName)

	saved, err := repo.Save(ctx, newAccount("a"))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, saved.ID))
	require.NoError(t, repo.DeleteByID(ctx, saved.ID))

	exists, err := repo.ExistsByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSave_Concurrent(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository[*product.Product](product.EntityName)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Save(ctx, &product.Product{Name: types.Ptr("p")})
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, repo.Len())
}
