package resource_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"imaut/internal/core/id"
	"imaut/internal/domain/account"
	"imaut/internal/infrastructure/storage/postgres"
)

const bankDetailsTable = "bank_details"

// AccountRepo stores accounts and their bank details.
// Bank details are loaded eagerly and replaced as a whole on save.
type AccountRepo struct {
	*BaseRepo[*account.Account]
	bankCols []string
}

func NewAccountRepo(txm *postgres.TxManager) *AccountRepo {
	return &AccountRepo{
		BaseRepo: NewBaseRepo(txm, "account", account.EntityName, func() *account.Account { return &account.Account{} }),
		bankCols: postgres.ExtractDBColumns[account.BankDetails](),
	}
}

// FindAll returns accounts ordered by id with their bank details.
func (r *AccountRepo) FindAll(ctx context.Context) ([]*account.Account, error) {
	accounts, err := r.BaseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return accounts, nil
	}

	ids := make([]id.ID, 0, len(accounts))
	for _, a := range accounts {
		ids = append(ids, a.ID)
	}

	details, err := r.loadBankDetails(ctx, ids...)
	if err != nil {
		return nil, err
	}

	byAccount := make(map[id.ID][]account.BankDetails, len(accounts))
	for _, d := range details {
		byAccount[d.AccountID] = append(byAccount[d.AccountID], d)
	}
	for _, a := range accounts {
		a.BankDetails = byAccount[a.ID]
	}
	return accounts, nil
}

func (r *AccountRepo) FindByID(ctx context.Context, entityID id.ID) (*account.Account, error) {
	a, err := r.BaseRepo.FindByID(ctx, entityID)
	if err != nil {
		return a, err
	}

	if a.BankDetails, err = r.loadBankDetails(ctx, entityID); err != nil {
		return a, err
	}
	return a, nil
}

// Save writes the account row, then replaces its bank details.
// Callers run it inside a transaction.
func (r *AccountRepo) Save(ctx context.Context, a *account.Account) (*account.Account, error) {
	saved, err := r.BaseRepo.Save(ctx, a)
	if err != nil {
		return saved, err
	}

	if err := r.deleteBankDetails(ctx, saved.ID); err != nil {
		return saved, err
	}

	for i := range saved.BankDetails {
		d := &saved.BankDetails[i]
		d.AccountID = saved.ID

		sql, args, err := r.insertBankDetailsQuery(*d).ToSql()
		if err != nil {
			return saved, fmt.Errorf("build insert: %w", err)
		}
		if err := r.querier(ctx).QueryRow(ctx, sql, args...).Scan(&d.ID); err != nil {
			return saved, fmt.Errorf("insert %s: %w", bankDetailsTable, err)
		}
	}
	return saved, nil
}

func (r *AccountRepo) loadBankDetails(ctx context.Context, accountIDs ...id.ID) ([]account.BankDetails, error) {
	sql, args, err := r.selectBankDetailsQuery(accountIDs...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var details []account.BankDetails
	if err := pgxscan.Select(ctx, r.querier(ctx), &details, sql, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", bankDetailsTable, err)
	}
	return details, nil
}

func (r *AccountRepo) deleteBankDetails(ctx context.Context, accountID id.ID) error {
	sql, args, err := r.deleteBankDetailsQuery(accountID).ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	if _, err := r.querier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete %s: %w", bankDetailsTable, err)
	}
	return nil
}

func (r *AccountRepo) deleteBankDetailsQuery(accountID id.ID) squirrel.DeleteBuilder {
	return r.Builder().
		Delete(bankDetailsTable).
		Where(squirrel.Eq{"account_id": accountID})
}

func (r *AccountRepo) selectBankDetailsQuery(accountIDs ...id.ID) squirrel.SelectBuilder {
	return r.Builder().
		Select(r.bankCols...).
		From(bankDetailsTable).
		Where(squirrel.Eq{"account_id": accountIDs}).
		OrderBy("account_id", "id")
}

func (r *AccountRepo) insertBankDetailsQuery(d account.BankDetails) squirrel.InsertBuilder {
	return r.Builder().
		Insert(bankDetailsTable).
		Columns("account_id", "account_name", "iban", "bic", "bank_name").
		Values(d.AccountID, d.AccountName, d.Iban, d.Bic, d.BankName).
		Suffix("RETURNING id")
}
