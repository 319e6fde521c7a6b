package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imaut/internal/core/apperror"
	"imaut/internal/core/patch"
	"imaut/internal/core/types"
	"imaut/internal/core/validation"
	"imaut/internal/domain"
	"imaut/internal/domain/account"
	"imaut/internal/infrastructure/storage/memory"
)

type accountService = domain.ResourceService[*account.Account, account.CreateRequest, account.Patch, account.Response]

func newAccountService(t *testing.T) (*accountService, *memory.Repository[*account.Account]) {
	t.Helper()
	repo := memory.NewRepository[*account.Account](account.EntityName)
	svc := domain.NewResourceService(domain.ResourceServiceConfig[*account.Account, account.CreateRequest, account.Patch, account.Response]{
		Repo:       repo,
		Mapper:     account.NewMapper(validation.MustNew()),
		EntityName: account.EntityName,
	})
	return svc, repo
}

func mustPatch(t *testing.T, doc string) account.Patch {
	t.Helper()
	var p account.Patch
	require.NoError(t, patch.Decode([]byte(doc), &p))
	return p
}

func validRequest() account.CreateRequest {
	return account.CreateRequest{Name: types.Ptr("Acme"), Type: types.Ptr("CUSTOMER")}
}

func TestResourceService_ListEmpty(t *testing.T) {
	svc, _ := newAccountService(t)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestResourceService_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService(t)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, created.Equal(got))
	assert.Equal(t, "Acme", *got.Name)
}

func TestResourceService_GetMissing(t *testing.T) {
	svc, _ := newAccountService(t)

	_, err := svc.Get(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestResourceService_Update(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService(t)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, mustPatch(t, `{"phone":"600","id":999}`))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "600", *updated.Phone)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, updated.Equal(got))
}

func TestResourceService_UpdateInvalidLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService(t)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, mustPatch(t, `{"name":null,"phone":"600"}`))
	require.True(t, apperror.IsValidationFailed(err))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, created.Equal(got))
}

func TestResourceService_UpdateMissing(t *testing.T) {
	svc, _ := newAccountService(t)

	_, err := svc.Update(context.Background(), 12, mustPatch(t, `{}`))
	assert.True(t, apperror.IsNotFound(err))
}

func TestResourceService_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAccountService(t)

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, 9999))
	assert.Equal(t, 0, repo.Len())
}

func TestResourceService_Hooks(t *testing.T) {
	ctx := context.Background()
	svc, _ := newAccountService(t)

	var events []domain.HookEvent
	record := func(ev domain.HookEvent) domain.Hook[*account.Account] {
		return func(context.Context, *account.Account) error {
			events = append(events, ev)
			return nil
		}
	}
	svc.Hooks().OnAfterCreate(record(domain.AfterCreate))
	svc.Hooks().OnAfterUpdate(record(domain.AfterUpdate))
	svc.Hooks().OnAfterDelete(record(domain.AfterDelete))

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)
	_, err = svc.Update(ctx, created.ID, mustPatch(t, `{"phone":"1"}`))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))
	require.NoError(t, svc.Delete(ctx, created.ID))

	assert.Equal(t, []domain.HookEvent{domain.AfterCreate, domain.AfterUpdate, domain.AfterDelete}, events)
}

func TestResourceService_AfterHookFailureDoesNotFail(t *testing.T) {
	svc, _ := newAccountService(t)
	svc.Hooks().OnAfterCreate(func(context.Context, *account.Account) error {
		return errors.New("broker down")
	})

	_, err := svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestResourceService_BeforeHookAborts(t *testing.T) {
	ctx := context.Background()
	svc, repo := newAccountService(t)
	svc.Hooks().On(domain.BeforeCreate, func(context.Context, *account.Account) error {
		return apperror.NewValidation("rejected")
	})

	_, err := svc.Create(ctx, validRequest())
	require.Error(t, err)
	assert.Equal(t, 0, repo.Len())
}
