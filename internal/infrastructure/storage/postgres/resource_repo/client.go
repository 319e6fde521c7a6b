package resource_repo

import (
	"imaut/internal/domain/client"
	"imaut/internal/infrastructure/storage/postgres"
)

// ClientRepo stores clients in the client table.
type ClientRepo struct {
	*BaseRepo[*client.Client]
}

func NewClientRepo(txm *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		BaseRepo: NewBaseRepo(txm, "client", client.EntityName, func() *client.Client { return &client.Client{} }),
	}
}
