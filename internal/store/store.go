// Package store provides the SQLite-backed persistence for the deposit
// ledger and the contract settings.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fincal/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Store wraps the SQLite database holding the ledger and settings.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetDeposit upserts a deposit for the given date. A zero amount deletes
// the record instead of storing a zero.
func (s *Store) SetDeposit(date time.Time, amount float64) error {
	key := model.DateKey(date)

	if amount == 0 {
		_, err := s.db.Exec("DELETE FROM daily_deposits WHERE date = ?", key)
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT INTO daily_deposits (date, amount, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET amount = excluded.amount, updated_at = excluded.updated_at`,
		key, amount, now, now,
	)
	return err
}

// Deposit returns the deposit for a date, 0 when absent.
func (s *Store) Deposit(date time.Time) (float64, error) {
	var amount float64
	err := s.db.QueryRow("SELECT amount FROM daily_deposits WHERE date = ?", model.DateKey(date)).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// AllDeposits reads the whole ledger.
func (s *Store) AllDeposits() (model.Ledger, error) {
	rows, err := s.db.Query("SELECT date, amount FROM daily_deposits")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	ledger := make(model.Ledger)
	for rows.Next() {
		var date string
		var amount float64
		if err := rows.Scan(&date, &amount); err != nil {
			return nil, err
		}
		ledger[date] = amount
	}
	return ledger, rows.Err()
}

// SaveSettings replaces the single active contract record: previous rows
// are discarded and the new record inserted in one transaction.
func (s *Store) SaveSettings(cs model.ContractSettings) error {
	history := cs.RateHistory
	if history == nil {
		history = []model.RateChange{}
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("encoding rate history: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM contract_settings"); err != nil {
		return err
	}

	_, err = tx.Exec(`INSERT INTO contract_settings
		(start_date, end_date, initial_rate, rate_history, contract_amount, saved_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		cs.StartDate.Format(model.DateLayout),
		cs.EndDate.Format(model.DateLayout),
		cs.InitialRate,
		string(historyJSON),
		cs.ContractAmount,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Settings reads the current contract record. When none has been saved
// yet it returns the documented defaults (a one-year window starting
// today, zero rate, empty history, zero amount) rather than an error.
func (s *Store) Settings() (model.ContractSettings, error) {
	var startStr, endStr, historyJSON string
	var cs model.ContractSettings

	err := s.db.QueryRow(`SELECT start_date, end_date, initial_rate, rate_history, contract_amount
		FROM contract_settings ORDER BY id DESC LIMIT 1`).
		Scan(&startStr, &endStr, &cs.InitialRate, &historyJSON, &cs.ContractAmount)
	if err == sql.ErrNoRows {
		return model.DefaultSettings(time.Now()), nil
	}
	if err != nil {
		return model.ContractSettings{}, err
	}

	if cs.StartDate, err = time.Parse(model.DateLayout, startStr); err != nil {
		return model.ContractSettings{}, fmt.Errorf("parsing start date: %w", err)
	}
	if cs.EndDate, err = time.Parse(model.DateLayout, endStr); err != nil {
		return model.ContractSettings{}, fmt.Errorf("parsing end date: %w", err)
	}
	if err := json.Unmarshal([]byte(historyJSON), &cs.RateHistory); err != nil {
		return model.ContractSettings{}, fmt.Errorf("decoding rate history: %w", err)
	}

	return cs, nil
}
