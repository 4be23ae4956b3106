// file: service/account_service.go

package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"oft-transacts/model"
	"oft-transacts/repository"
	"time"
)

// ErrAccountAccessDenied covers both a missing account and one owned by
// another user, so the error code never leaks whether the id exists.
var ErrAccountAccessDenied = errors.New("access denied to this account")

const accountsCacheTTL = 10 * time.Minute

// AccountService reads account balances and guards account ownership.
type AccountService struct {
	repo        repository.IAccountRepository
	cacheClient ICacheClient
}

func NewAccountService(repo repository.IAccountRepository, cacheClient ICacheClient) *AccountService {
	return &AccountService{
		repo:        repo,
		cacheClient: cacheClient,
	}
}

// ListAccountsForUser lists the user's accounts with current balances,
// utilizing a cache-aside strategy. Cached entries are invalidated on
// every balance-affecting write, so a hit is never stale.
func (s *AccountService) ListAccountsForUser(ctx context.Context, userID int) ([]*model.AccountBalance, error) {
	cacheKey := accountsCacheKey(userID)

	cached, err := s.cacheClient.Get(ctx, cacheKey).Result()
	if err == nil {
		var accounts []*model.AccountBalance
		if err := json.Unmarshal([]byte(cached), &accounts); err == nil {
			return accounts, nil
		}
	}

	accounts, err := s.repo.GetAccountBalancesByUserID(userID)
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []*model.AccountBalance{}
	}

	if data, err := json.Marshal(accounts); err == nil {
		s.cacheClient.Set(ctx, cacheKey, data, accountsCacheTTL)
	}

	return accounts, nil
}

// GetOwnedAccount confirms the account exists and belongs to userID
// before returning it. Every account-scoped operation goes through here.
func (s *AccountService) GetOwnedAccount(accountID, userID int) (*model.Account, error) {
	account, err := s.repo.GetAccountByID(accountID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAccountAccessDenied
		}
		return nil, err
	}
	if account.UserID != userID {
		return nil, ErrAccountAccessDenied
	}
	return account, nil
}

// InvalidateAccountsCache drops the user's cached balance list after a
// write so the next read reflects the new transaction.
func (s *AccountService) InvalidateAccountsCache(ctx context.Context, userID int) {
	s.cacheClient.Del(ctx, accountsCacheKey(userID))
}

func accountsCacheKey(userID int) string {
	return fmt.Sprintf("accounts:%d", userID)
}
