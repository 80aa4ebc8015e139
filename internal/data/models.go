package data

import (
	"database/sql"
	"errors"
)

var (
	ErrGeneralRecordNotFound = errors.New("finance record not found")
	ErrGeneralEditConflict   = errors.New("edit conflict")
)

// Models wraps the per-domain model types. Each holds the shared
// connection pool.
type Models struct {
	Users  UserModel
	Tokens TokenModel
	Ledger LedgerModel
	Goals  GoalModel
}

func NewModels(db *sql.DB) Models {
	return Models{
		Users:  UserModel{DB: db},
		Tokens: TokenModel{DB: db},
		Ledger: LedgerModel{DB: db},
		Goals:  GoalModel{DB: db},
	}
}
