package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/rndpresence/presence-backend-go/internal/pkg/database"
)

type txKey struct{}

// GetQuerier returns either the transaction carried by ctx or the pool.
// Used in repositories to support both transactional and non-transactional
// operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
