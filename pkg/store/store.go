package store

import (
	"context"
	"sync"
	"time"

	"github.com/arenapay/walletflow/internal/logging"
	"github.com/arenapay/walletflow/pkg/client"
	"github.com/arenapay/walletflow/pkg/entities"
	"github.com/arenapay/walletflow/pkg/scheduler"
)

// Store holds the last-known wallet snapshot and transaction list. The
// server is the sole source of truth; the cache is replaced wholesale on a
// successful fetch and left untouched on failure, so readers always see the
// most recent good state. Last successful write wins across flows.
type Store struct {
	api    client.WalletAPI
	logger *logging.Logger

	mu           sync.RWMutex
	account      *entities.WalletAccount
	transactions []*entities.Transaction

	refresher *scheduler.Scheduler
}

// NewStore creates a wallet state store backed by the given API client
func NewStore(api client.WalletAPI, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default
	}
	return &Store{
		api:    api,
		logger: logger,
	}
}

// Refresh fetches the wallet snapshot and replaces the cached one. On
// failure the prior snapshot stays available (stale-but-available). A
// cancelled context discards the result without touching the cache, so a
// torn-down screen can never publish a late write.
func (s *Store) Refresh(ctx context.Context) error {
	account, err := s.api.GetWallet(ctx)
	if err != nil {
		s.logger.Warn("Wallet refresh failed, keeping prior snapshot: %v", err)
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	s.account = account
	s.mu.Unlock()

	s.logger.Debug("Wallet snapshot refreshed for account %s", account.AccountNumber)
	return nil
}

// RefreshTransactions fetches the transaction list, replace-on-success with
// the same stale-on-failure policy as Refresh
func (s *Store) RefreshTransactions(ctx context.Context) error {
	transactions, err := s.api.GetTransactions(ctx)
	if err != nil {
		s.logger.Warn("Transaction refresh failed, keeping prior list: %v", err)
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	s.mu.Lock()
	s.transactions = transactions
	s.mu.Unlock()
	return nil
}

// ApplySnapshot installs a snapshot returned by a mutating call (add-cash
// verify, redeem), saving the redundant refresh round-trip
func (s *Store) ApplySnapshot(account *entities.WalletAccount) {
	if account == nil {
		return
	}
	s.mu.Lock()
	s.account = account
	s.mu.Unlock()
	s.logger.Debug("Wallet snapshot applied from mutating response")
}

// Account returns a copy of the cached snapshot, if one has been fetched
func (s *Store) Account() (*entities.WalletAccount, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.account == nil {
		return nil, false
	}
	accountCopy := *s.account
	return &accountCopy, true
}

// Transactions returns a copy of the cached transaction list
func (s *Store) Transactions() []*entities.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// StartAutoRefresh begins periodic background refreshes of the snapshot and
// transaction list. Readers are eventually consistent either way; this just
// bounds the staleness. Stops when ctx is cancelled or StopAutoRefresh runs.
func (s *Store) StartAutoRefresh(ctx context.Context, interval time.Duration) {
	s.mu.Lock()
	if s.refresher != nil {
		s.mu.Unlock()
		return
	}
	refresher := scheduler.NewScheduler(s.logger)
	s.refresher = refresher
	s.mu.Unlock()

	refresher.AddTask("wallet_refresh", interval, s.Refresh)
	refresher.AddTask("transaction_refresh", interval, s.RefreshTransactions)
	refresher.Start(ctx)
}

// StopAutoRefresh stops the background refresher, if running
func (s *Store) StopAutoRefresh() {
	s.mu.Lock()
	refresher := s.refresher
	s.refresher = nil
	s.mu.Unlock()

	if refresher != nil {
		refresher.Stop()
	}
}
