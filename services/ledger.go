package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/Alejandro-Val/FinanceTracker/models"
	"github.com/Alejandro-Val/FinanceTracker/utils"
)

// LedgerService owns create/update/delete of transaction records and keeps
// the category/account transaction counters in step.
//
// Counter maintenance is best-effort by design: the primary write commits on
// its own, and each counter adjustment is issued afterwards as an
// independent atomic increment. If a counter write fails the record is still
// authoritative and the failure is only logged; CounterService.ReportDrift
// surfaces the resulting divergence.
type LedgerService struct {
	DB       *sql.DB
	Counters *CounterService
	Resolver *OptionResolver
	Broker   *Broker
}

func NewLedgerService(db *sql.DB, counters *CounterService, resolver *OptionResolver, broker *Broker) *LedgerService {
	return &LedgerService{
		DB:       db,
		Counters: counters,
		Resolver: resolver,
		Broker:   broker,
	}
}

// counterMove is one pending counter transfer for a reference that changed
// on update: decrement the previous holder, increment the new one. Each
// reference yields at most one move regardless of how many fields changed.
type counterMove struct {
	Dec string
	Inc string
}

// newCounterMove reports whether a reference changed and, if so, the single
// move to apply.
func newCounterMove(prevID, newID string) (counterMove, bool) {
	if prevID == newID {
		return counterMove{}, false
	}
	return counterMove{Dec: prevID, Inc: newID}, true
}

// checkReferences verifies that the category and account belong to ownerID
// and that the status exists. Cross-tenant references are treated the same
// as missing ones.
func (s *LedgerService) checkReferences(ctx context.Context, ownerID, categoryID, accountID, statusID string) error {
	var exists bool

	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM transaction_categories WHERE id = $1 AND owner_id = $2)
	`, categoryID, ownerID).Scan(&exists)
	if err != nil {
		return &models.StoreError{Op: "check category reference", Err: err}
	}
	if !exists {
		return &models.ReferenceError{Collection: "category", ID: categoryID}
	}

	err = s.DB.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM transaction_accounts WHERE id = $1 AND owner_id = $2)
	`, accountID, ownerID).Scan(&exists)
	if err != nil {
		return &models.StoreError{Op: "check account reference", Err: err}
	}
	if !exists {
		return &models.ReferenceError{Collection: "account", ID: accountID}
	}

	err = s.DB.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM transaction_statuses WHERE id = $1)
	`, statusID).Scan(&exists)
	if err != nil {
		return &models.StoreError{Op: "check status reference", Err: err}
	}
	if !exists {
		return &models.ReferenceError{Collection: "status", ID: statusID}
	}

	return nil
}

// Create validates the request, writes the record, then increments the
// referenced category's and account's counters by one each.
func (s *LedgerService) Create(ctx context.Context, ownerID string, req *models.CreateTransactionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if err := s.checkReferences(ctx, ownerID, req.CategoryID, req.AccountID, req.StatusID); err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO transactions (id, owner_id, date, description, type, amount, category_id, account_id, status_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, id, ownerID, req.Date, req.Description, req.Type, req.Amount, req.CategoryID, req.AccountID, req.StatusID)
	if err != nil {
		return "", &models.StoreError{Op: "insert transaction", Err: err}
	}

	// Counter writes come after the committed insert; failures drift, they
	// don't abort.
	if err := s.Counters.AdjustCategory(ctx, req.CategoryID, 1); err != nil {
		utils.SafeError("increment category %s after create: %v", req.CategoryID, err)
	}
	if err := s.Counters.AdjustAccount(ctx, req.AccountID, 1); err != nil {
		utils.SafeError("increment account %s after create: %v", req.AccountID, err)
	}

	s.Broker.Publish(Event{Collection: CollectionTransactions, Action: ActionCreated, ID: id, OwnerID: ownerID})
	utils.LogLedgerAction("create", id, ownerID)

	return id, nil
}

// Update overwrites the record's mutable fields. Whether the category
// reference changed and whether the account reference changed are two
// independent toggles; each moves exactly one count from the previous holder
// to the new one.
func (s *LedgerService) Update(ctx context.Context, ownerID, id string, req *models.UpdateTransactionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.checkReferences(ctx, ownerID, req.CategoryID, req.AccountID, req.StatusID); err != nil {
		return err
	}

	result, err := s.DB.ExecContext(ctx, `
		UPDATE transactions
		SET date = $3, description = $4, type = $5, amount = $6,
		    category_id = $7, account_id = $8, status_id = $9, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
	`, id, ownerID, req.Date, req.Description, req.Type, req.Amount, req.CategoryID, req.AccountID, req.StatusID)
	if err != nil {
		return &models.StoreError{Op: "update transaction", Err: err}
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return &models.NotFoundError{Collection: "transaction", ID: id}
	}

	if move, changed := newCounterMove(req.PreviousCategoryID, req.CategoryID); changed {
		if err := s.Counters.AdjustCategory(ctx, move.Dec, -1); err != nil {
			utils.SafeError("decrement category %s after update: %v", move.Dec, err)
		}
		if err := s.Counters.AdjustCategory(ctx, move.Inc, 1); err != nil {
			utils.SafeError("increment category %s after update: %v", move.Inc, err)
		}
	}
	if move, changed := newCounterMove(req.PreviousAccountID, req.AccountID); changed {
		if err := s.Counters.AdjustAccount(ctx, move.Dec, -1); err != nil {
			utils.SafeError("decrement account %s after update: %v", move.Dec, err)
		}
		if err := s.Counters.AdjustAccount(ctx, move.Inc, 1); err != nil {
			utils.SafeError("increment account %s after update: %v", move.Inc, err)
		}
	}

	s.Broker.Publish(Event{Collection: CollectionTransactions, Action: ActionUpdated, ID: id, OwnerID: ownerID})
	utils.LogLedgerAction("update", id, ownerID)

	return nil
}

// Delete removes the record and decrements the supplied category and account
// counters by one each. The caller names the ids being decremented; the
// decrements are attempted even if the parent rows are already gone (a
// missing parent is a logged no-op and never blocks the deletion).
func (s *LedgerService) Delete(ctx context.Context, ownerID, id, categoryID, accountID string) error {
	result, err := s.DB.ExecContext(ctx, `
		DELETE FROM transactions WHERE id = $1 AND owner_id = $2
	`, id, ownerID)
	if err != nil {
		return &models.StoreError{Op: "delete transaction", Err: err}
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return &models.NotFoundError{Collection: "transaction", ID: id}
	}

	if err := s.Counters.AdjustCategory(ctx, categoryID, -1); err != nil {
		utils.SafeError("decrement category %s after delete: %v", categoryID, err)
	}
	if err := s.Counters.AdjustAccount(ctx, accountID, -1); err != nil {
		utils.SafeError("decrement account %s after delete: %v", accountID, err)
	}

	s.Broker.Publish(Event{Collection: CollectionTransactions, Action: ActionDeleted, ID: id, OwnerID: ownerID})
	utils.LogLedgerAction("delete", id, ownerID)

	return nil
}

const listQuery = `
	SELECT t.id, t.date, t.description, t.type, t.amount, t.owner_id, t.created_at, t.updated_at,
	       c.id, c.name,
	       a.id, a.name, a.institution, a.color,
	       s.id, s.name
	FROM transactions t
	LEFT JOIN transaction_categories c ON c.id = t.category_id
	LEFT JOIN transaction_accounts a ON a.id = t.account_id
	LEFT JOIN transaction_statuses s ON s.id = t.status_id
	WHERE t.owner_id = $1`

// List returns all of a user's transactions with category/account/status
// resolved to option projections. Dangling references come back as null
// options, not errors.
func (s *LedgerService) List(ctx context.Context, ownerID string) ([]models.Transaction, error) {
	rows, err := s.DB.QueryContext(ctx, listQuery+` ORDER BY t.date DESC`, ownerID)
	if err != nil {
		return nil, &models.StoreError{Op: "list transactions", Err: err}
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// Latest returns the n most recent transactions by date.
func (s *LedgerService) Latest(ctx context.Context, ownerID string, n int) ([]models.Transaction, error) {
	rows, err := s.DB.QueryContext(ctx, listQuery+` ORDER BY t.date DESC LIMIT $2`, ownerID, n)
	if err != nil {
		return nil, &models.StoreError{Op: "latest transactions", Err: err}
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	transactions := []models.Transaction{}

	for rows.Next() {
		var t models.Transaction
		var date time.Time
		var catID, catName sql.NullString
		var accID, accName, accInstitution, accColor sql.NullString
		var statusID, statusName sql.NullString

		err := rows.Scan(
			&t.ID, &date, &t.Description, &t.Type, &t.Amount, &t.OwnerID, &t.CreatedAt, &t.UpdatedAt,
			&catID, &catName,
			&accID, &accName, &accInstitution, &accColor,
			&statusID, &statusName,
		)
		if err != nil {
			return nil, &models.StoreError{Op: "scan transaction", Err: err}
		}

		t.Date = date
		if catID.Valid {
			t.Category = &models.Option{Value: catID.String, Label: catName.String}
		}
		if accID.Valid {
			t.Account = &models.Option{
				Value:       accID.String,
				Label:       accName.String,
				Institution: accInstitution.String,
				Color:       accColor.String,
			}
		}
		if statusID.Valid {
			t.Status = &models.Option{Value: statusID.String, Label: statusName.String}
		}

		transactions = append(transactions, t)
	}

	if err := rows.Err(); err != nil {
		return nil, &models.StoreError{Op: "scan transactions", Err: err}
	}

	return transactions, nil
}
