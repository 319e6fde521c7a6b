package resource_repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imaut/internal/core/id"
	"imaut/internal/core/types"
	"imaut/internal/domain/account"
	"imaut/internal/domain/product"
)

func TestBaseRepo_InsertSQL(t *testing.T) {
	repo := NewProductRepo(nil)
	p := &product.Product{
		Name:     types.Ptr("Widget"),
		NetPrice: types.MoneyPtr(types.MustMoney("1.25")),
		Currency: types.Ptr("EUR"),
		Unit:     types.Ptr("pc"),
	}

	sql, args, err := repo.insertQuery(p).ToSql()
	require.NoError(t, err)

	// SetMap sorts columns by name.
	assert.Equal(t, "INSERT INTO product (currency,description,name,net_price,unit) VALUES ($1,$2,$3,$4,$5) RETURNING id", sql)
	assert.Len(t, args, 5)
	assert.Equal(t, p.Currency, args[0])
}

func TestBaseRepo_UpdateSQL(t *testing.T) {
	repo := NewProductRepo(nil)
	p := &product.Product{Name: types.Ptr("Widget")}
	p.SetID(9)

	sql, args, err := repo.updateQuery(p).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE product SET currency = $1, description = $2, name = $3, net_price = $4, unit = $5 WHERE id = $6", sql)
	assert.Equal(t, id.ID(9), args[5])
}

func TestBaseRepo_SelectSQL(t *testing.T) {
	repo := NewClientRepo(nil)

	sql, _, err := repo.baseSelect().OrderBy("id").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, vat_number, street_address, postcode, city, country FROM client ORDER BY id", sql)
}

func TestBaseRepo_ColumnValuesSkipID(t *testing.T) {
	repo := NewClientRepo(nil)
	values := repo.columnValues(repo.newFn())

	assert.NotContains(t, values, "id")
	assert.Len(t, values, 6)
}

func TestAccountRepo_BankDetailsSQL(t *testing.T) {
	repo := NewAccountRepo(nil)

	sql, args, err := repo.selectBankDetailsQuery(1, 2).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, account_id, account_name, iban, bic, bank_name FROM bank_details WHERE account_id IN ($1,$2) ORDER BY account_id, id", sql)
	assert.Equal(t, []any{id.ID(1), id.ID(2)}, args)

	d := account.BankDetails{AccountID: 3, Iban: types.Ptr("ES00")}
	sql, args, err = repo.insertBankDetailsQuery(d).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO bank_details (account_id,account_name,iban,bic,bank_name) VALUES ($1,$2,$3,$4,$5) RETURNING id", sql)
	assert.Equal(t, id.ID(3), args[0])
}

func TestAccountRepo_BankDetailsQueries(t *testing.T) {
	repo := NewAccountRepo(nil)
	insert := repo.insertBankDetailsQuery(account.BankDetails{
		AccountID:   4,
		AccountName: types.Ptr("Main"),
		Iban:        types.Ptr("ES00"),
		Bic:         types.Ptr("BIC1"),
		BankName:    types.Ptr("Bank"),
	})

	tests := []struct {
		name     string
		build    func() (string, []any, error)
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "select single account",
			build:    repo.selectBankDetailsQuery(7).ToSql,
			wantSQL:  "SELECT id, account_id, account_name, iban, bic, bank_name FROM bank_details WHERE account_id IN ($1) ORDER BY account_id, id",
			wantArgs: []any{id.ID(7)},
		},
		{
			name:     "select several accounts",
			build:    repo.selectBankDetailsQuery(1, 2, 3).ToSql,
			wantSQL:  "SELECT id, account_id, account_name, iban, bic, bank_name FROM bank_details WHERE account_id IN ($1,$2,$3) ORDER BY account_id, id",
			wantArgs: []any{id.ID(1), id.ID(2), id.ID(3)},
		},
		{
			name:     "delete by owner",
			build:    repo.deleteBankDetailsQuery(5).ToSql,
			wantSQL:  "DELETE FROM bank_details WHERE account_id = $1",
			wantArgs: []any{id.ID(5)},
		},
		{
			name:    "insert keeps column order",
			build:   insert.ToSql,
			wantSQL: "INSERT INTO bank_details (account_id,account_name,iban,bic,bank_name) VALUES ($1,$2,$3,$4,$5) RETURNING id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			if tt.wantArgs != nil {
				assert.Equal(t, tt.wantArgs, args)
			}
		})
	}
}

func TestAccountRepo_AccountColumns(t *testing.T) {
	repo := NewAccountRepo(nil)

	sql, _, err := repo.baseSelect().ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, email, phone, type, account_details_client_id FROM account", sql)
}
