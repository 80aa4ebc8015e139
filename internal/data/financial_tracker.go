package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SamruddhiShinde-hub/monivue/internal/finance"
	"github.com/SamruddhiShinde-hub/monivue/internal/validator"
)

type LedgerModel struct {
	DB *sql.DB
}

var (
	DefaultLedgerDBContextTimeout = 5 * time.Second
)

var (
	ErrInvalidEntryKind = errors.New("invalid ledger entry kind")
)

// EntryKind partitions the ledger into the tracked collections. Each kind
// backs one route group.
type EntryKind string

const (
	EntryKindIncome      EntryKind = "income"
	EntryKindExpense     EntryKind = "expense"
	EntryKindAsset       EntryKind = "asset"
	EntryKindInvestment  EntryKind = "investment"
	EntryKindLiability   EntryKind = "liability"
	EntryKindMonthlyDebt EntryKind = "monthly_debt"
)

// Map a kind string from a request to a corresponding constant
func MapToEntryKind(kind string) (EntryKind, error) {
	switch kind {
	case "income":
		return EntryKindIncome, nil
	case "expense":
		return EntryKindExpense, nil
	case "asset":
		return EntryKindAsset, nil
	case "investment":
		return EntryKindInvestment, nil
	case "liability":
		return EntryKindLiability, nil
	case "monthly_debt":
		return EntryKindMonthlyDebt, nil
	default:
		return "", ErrInvalidEntryKind
	}
}

// LedgerEntry is one tracked record: an income, expense, asset, investment,
// liability or monthly debt payment. The amount is stored exactly as the
// user entered it; parsing happens leniently at aggregation time so a
// malformed amount never blocks a save from being displayed back.
type LedgerEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Kind      EntryKind `json:"kind"`
	Category  string    `json:"category"`
	Amount    string    `json:"amount"`
	EntryDate time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidateName(v *validator.Validator, name, key string) {
	v.Check(name != "", key, "must be provided")
	v.Check(len(name) <= 255, key, "must not be more than 255 bytes long")
}

// validate a ledger entry
func ValidateLedgerEntry(v *validator.Validator, entry *LedgerEntry) {
	_, err := MapToEntryKind(string(entry.Kind))
	v.Check(err == nil, "kind", "must be a valid entry kind")
	ValidateName(v, entry.Category, "category")
	v.Check(entry.Amount != "", "amount", "must be provided")
	_, ok := finance.ParseAmount(entry.Amount)
	v.Check(ok, "amount", "must start with a number")
	v.Check(!entry.EntryDate.IsZero(), "date", "must be provided")
}

// CreateNewLedgerEntry saves an entry for a user, filling in the generated
// fields on the way back.
func (m LedgerModel) CreateNewLedgerEntry(userID int64, entry *LedgerEntry) error {
	ctx, cancel := contextGenerator(context.Background(), DefaultLedgerDBContextTimeout)
	defer cancel()

	query := `
		INSERT INTO ledger_entries (user_id, kind, category, amount, entry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := m.DB.QueryRowContext(ctx, query,
		userID,
		entry.Kind,
		entry.Category,
		entry.Amount,
		entry.EntryDate,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create ledger entry: %w", err)
	}
	entry.UserID = userID
	return nil
}

// GetLedgerEntryByID retrieves a single entry, scoped to its owner.
func (m LedgerModel) GetLedgerEntryByID(userID, entryID int64) (*LedgerEntry, error) {
	ctx, cancel := contextGenerator(context.Background(), DefaultLedgerDBContextTimeout)
	defer cancel()

	var entry LedgerEntry
	query := `
		SELECT id, user_id, kind, category, amount, entry_date, created_at, updated_at
		FROM ledger_entries
		WHERE id = $1 AND user_id = $2`
	err := m.DB.QueryRowContext(ctx, query, entryID, userID).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Kind,
		&entry.Category,
		&entry.Amount,
		&entry.EntryDate,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrGeneralRecordNotFound
		default:
			return nil, fmt.Errorf("failed to get ledger entry: %w", err)
		}
	}
	return &entry, nil
}

// GetAllLedgerEntriesByKind returns every entry of one kind for a user,
// newest entry date first.
func (m LedgerModel) GetAllLedgerEntriesByKind(userID int64, kind EntryKind) ([]*LedgerEntry, error) {
	ctx, cancel := contextGenerator(context.Background(), DefaultLedgerDBContextTimeout)
	defer cancel()

	query := `
		SELECT id, user_id, kind, category, amount, entry_date, created_at, updated_at
		FROM ledger_entries
		WHERE user_id = $1 AND kind = $2
		ORDER BY entry_date DESC, id DESC`
	rows, err := m.DB.QueryContext(ctx, query, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	defer rows.Close()

	return scanLedgerEntries(rows)
}

// GetRecentLedgerEntries returns the latest entries for a user across all
// kinds, for the overview's recent activity feed.
func (m LedgerModel) GetRecentLedgerEntries(userID int64, limit int) ([]*LedgerEntry, error) {
	ctx, cancel := contextGenerator(context.Background(), DefaultLedgerDBContextTimeout)
	defer cancel()

	query := `
		SELECT id, user_id, kind, category, amount, entry_date, created_at, updated_at
		FROM ledger_entries
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`
	rows, err := m.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent ledger entries: %w", err)
	}
	defer rows.Close()

	return scanLedgerEntries(rows)
}

// UpdateLedgerEntry saves changes to an entry's category, amount and date.
// The kind of an entry never changes after creation.
func (m LedgerModel) UpdateLedgerEntry(userID int64, entry *LedgerEntry) error {
	ctx, cancel := contextGenerator(context.Background(), DefaultLedgerDBContextTimeout)
	defer cancel()

	query := `
		UPDATE ledger_entries
		SET category = $1, amount = $2, entry_date = $3, updated_at = now()
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at`
	err := m.DB.QueryRowContext(ctx, query,
		entry.Category,
		entry.Amount,
		entry.EntryDate,
		entry.ID,
		userID,
	).Scan(&entry.UpdatedAt)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrGeneralRecordNotFound
		default:
			return fmt.Errorf("failed to update ledger entry: %w", err)
		}
	}
	return nil
}

// DeleteLedgerEntryByID removes an entry, scoped to its owner.
func (m LedgerModel) DeleteLedgerEntryByID(userID, entryID int64) error {
	ctx, cancel := contextGenerator(context.Background(), DefaultLedgerDBContextTimeout)
	defer cancel()

	query := `
		DELETE FROM ledger_entries
		WHERE id = $1 AND user_id = $2`
	result, err := m.DB.ExecContext(ctx, query, entryID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry: %w", err)
	}
	if affected == 0 {
		return ErrGeneralRecordNotFound
	}
	return nil
}

func scanLedgerEntries(rows *sql.Rows) ([]*LedgerEntry, error) {
	entries := []*LedgerEntry{}
	for rows.Next() {
		var entry LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Kind,
			&entry.Category,
			&entry.Amount,
			&entry.EntryDate,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return entries, nil
}

// ToFinanceEntries converts stored rows to the aggregation input shape.
func ToFinanceEntries(entries []*LedgerEntry) []finance.Entry {
	converted := make([]finance.Entry, 0, len(entries))
	for _, entry := range entries {
		converted = append(converted, finance.Entry{
			Category: entry.Category,
			Amount:   entry.Amount,
			Date:     entry.EntryDate,
		})
	}
	return converted
}
