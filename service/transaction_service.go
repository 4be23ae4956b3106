package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"oft-transacts/logger"
	"oft-transacts/model"
	"oft-transacts/repository"
	"time"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidAmount    = errors.New("amount_cents must be greater than zero")
	ErrInvalidDirection = errors.New("direction must be credit or debit")
)

// TransactionService pages through and appends to account ledgers.
// Every operation verifies account ownership before touching rows.
type TransactionService struct {
	db              *sql.DB
	accounts        *AccountService
	transactionRepo repository.ITransactionRepository
	pageSize        int
	maxPageSize     int
}

func NewTransactionService(db *sql.DB, accounts *AccountService, transactionRepo repository.ITransactionRepository, pageSize, maxPageSize int) *TransactionService {
	return &TransactionService{
		db:              db,
		accounts:        accounts,
		transactionRepo: transactionRepo,
		pageSize:        pageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListTransactions returns one page of the account's history, both
// posted and deleted rows (the page is an audit trail, not a balance
// view), ordered by occurred_at descending with trans_id descending as
// the tie-break. pageSize falls back to the configured default and is
// capped at the configured maximum.
func (s *TransactionService) ListTransactions(ctx context.Context, userID, accountID, page, pageSize int) (*model.TransactsPage, error) {
	if _, err := s.accounts.GetOwnedAccount(accountID, userID); err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}

	total, err := s.transactionRepo.CountByAccountID(accountID)
	if err != nil {
		return nil, fmt.Errorf("could not count transactions: %w", err)
	}

	offset := (page - 1) * pageSize
	items, err := s.transactionRepo.ListByAccountID(accountID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("could not list transactions: %w", err)
	}
	if items == nil {
		items = []*model.Transaction{}
	}

	return &model.TransactsPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  offset+pageSize < total,
	}, nil
}

// CreateTransaction validates and appends a posted ledger entry with
// occurred_at set to the current time. The insert runs in a single
// database transaction; there is no visible intermediate state.
func (s *TransactionService) CreateTransaction(ctx context.Context, userID, accountID int, req model.CreateTransactRequest) (*model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"user_id":      userID,
		"account_id":   accountID,
		"amount_cents": req.AmountCents,
		"direction":    req.Direction,
	})

	if _, err := s.accounts.GetOwnedAccount(accountID, userID); err != nil {
		return nil, err
	}

	if req.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Direction != model.DirectionCredit && req.Direction != model.DirectionDebit {
		return nil, ErrInvalidDirection
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	transaction := &model.Transaction{
		AccountID:   accountID,
		OccurredAt:  time.Now().UTC(),
		AmountCents: req.AmountCents,
		Direction:   req.Direction,
		Status:      model.StatusPosted,
		Notes:       req.Notes,
	}

	if err := s.transactionRepo.CreateTransaction(tx, transaction); err != nil {
		return nil, fmt.Errorf("could not create transaction record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	s.accounts.InvalidateAccountsCache(ctx, userID)

	log.Info("Transaction recorded successfully")
	return transaction, nil
}
