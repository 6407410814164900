package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/khuynh22/financial-tracker/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new user in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO finance.users (username, email, password_hash, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Username, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM finance.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// FindUserByID retrieves a user by id
func (r *Repository) FindUserByID(id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, email, password_hash, created_at
		FROM finance.users
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateAccount creates a new account in the registry
func (r *Repository) CreateAccount(account *models.Account) error {
	query := `
		INSERT INTO finance.accounts (user_id, name, account_type, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, account.UserID, account.Name, account.Type).
		Scan(&account.ID, &account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// ListAccounts returns the user's accounts in creation order
func (r *Repository) ListAccounts(userID int64) ([]models.Account, error) {
	query := `
		SELECT id, user_id, name, account_type, created_at
		FROM finance.accounts
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(&acc.ID, &acc.UserID, &acc.Name, &acc.Type, &acc.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

// DeleteAccount removes the account if owned by the user. Deleting a missing
// or foreign account is a silent no-op. Snapshot values are never cascaded;
// orphaned keys are skipped by derivations.
func (r *Repository) DeleteAccount(userID, accountID int64) error {
	query := `DELETE FROM finance.accounts WHERE id = $1 AND user_id = $2`
	if _, err := r.db.Exec(query, accountID, userID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

// CreateSnapshot stores a new snapshot record with its values as a JSON blob
func (r *Repository) CreateSnapshot(snap *models.Snapshot) error {
	data, err := json.Marshal(snap.Values)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot values: %w", err)
	}
	query := `
		INSERT INTO finance.snapshots (user_id, snapshot_date, data, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err = r.db.QueryRow(query, snap.UserID, snap.Date, data).
		Scan(&snap.ID, &snap.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	return nil
}

// UpdateSnapshot replaces the values of an existing snapshot owned by the user
func (r *Repository) UpdateSnapshot(userID, snapshotID int64, values map[string]models.Balance) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot values: %w", err)
	}
	query := `UPDATE finance.snapshots SET data = $1 WHERE id = $2 AND user_id = $3`
	res, err := r.db.Exec(query, data, snapshotID, userID)
	if err != nil {
		return fmt.Errorf("failed to update snapshot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update snapshot: %w", err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// ListSnapshots returns the user's snapshots ascending by date string.
// ISO dates make string order chronological; duplicate dates are all kept.
func (r *Repository) ListSnapshots(userID int64) ([]models.Snapshot, error) {
	query := `
		SELECT id, user_id, snapshot_date, data, created_at
		FROM finance.snapshots
		WHERE user_id = $1
		ORDER BY snapshot_date, id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []models.Snapshot{}
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}
	return snapshots, rows.Err()
}

// LatestSnapshot returns the user's snapshot with the maximum date string,
// or nil when the user has none
func (r *Repository) LatestSnapshot(userID int64) (*models.Snapshot, error) {
	query := `
		SELECT id, user_id, snapshot_date, data, created_at
		FROM finance.snapshots
		WHERE user_id = $1
		ORDER BY snapshot_date DESC, id DESC
		LIMIT 1`
	row := r.db.QueryRow(query, userID)
	snap, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (models.Snapshot, error) {
	var snap models.Snapshot
	var data []byte
	if err := row.Scan(&snap.ID, &snap.UserID, &snap.Date, &data, &snap.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return snap, err
		}
		return snap, fmt.Errorf("failed to scan snapshot: %w", err)
	}
	if err := json.Unmarshal(data, &snap.Values); err != nil {
		return snap, fmt.Errorf("failed to decode snapshot values: %w", err)
	}
	return snap, nil
}

// CreatePayment stores a new payment due entry
func (r *Repository) CreatePayment(payment *models.Payment) error {
	query := `
		INSERT INTO finance.payments (user_id, card_name, due_date, amount_due, created_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, payment.UserID, payment.CardName, payment.DueDate, payment.AmountDue).
		Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// ListPayments returns the user's payment entries ascending by due date
func (r *Repository) ListPayments(userID int64) ([]models.Payment, error) {
	query := `
		SELECT id, user_id, card_name, due_date, amount_due, created_at
		FROM finance.payments
		WHERE user_id = $1
		ORDER BY due_date, id`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

// FindPaymentsDueWithin returns all payments, across users, due between now
// and now+days. Used by the reminder job.
func (r *Repository) FindPaymentsDueWithin(days int) ([]models.Payment, error) {
	from := time.Now().Format(models.DateFormat)
	to := time.Now().AddDate(0, 0, days).Format(models.DateFormat)
	query := `
		SELECT id, user_id, card_name, due_date, amount_due, created_at
		FROM finance.payments
		WHERE due_date >= $1 AND due_date <= $2
		ORDER BY user_id, due_date, id`
	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find due payments: %w", err)
	}
	defer rows.Close()
	return collectPayments(rows)
}

func collectPayments(rows *sql.Rows) ([]models.Payment, error) {
	payments := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.UserID, &p.CardName, &p.DueDate, &p.AmountDue, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
