package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/arenapay/walletflow/internal/config"
	"github.com/arenapay/walletflow/internal/logging"
	"github.com/arenapay/walletflow/pkg/audit"
	"github.com/arenapay/walletflow/pkg/client"
	"github.com/arenapay/walletflow/pkg/entities"
	"github.com/arenapay/walletflow/pkg/session"
	"github.com/arenapay/walletflow/pkg/store"
)

func usage() {
	fmt.Println("Usage: wallettool <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  balance                        show the wallet snapshot")
	fmt.Println("  transactions                   list transaction history")
	fmt.Println("  redeem -amount N               redeem a fixed amount")
	fmt.Println("  record -amount N -type T [-desc D]  write a manual ledger entry")
	fmt.Println("  audit                          export transaction history to Elasticsearch")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Configuration error:", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	sessions := session.NewProvider(&session.Session{Token: cfg.APIToken})
	sessions.OnSignOut(func() {
		logger.Error("Session was rejected by the wallet service")
	})

	api := client.NewClient(cfg.APIBaseURL, cfg.APITimeout, sessions, logger)
	wallet := store.NewStore(api, logger)
	ctx := context.Background()

	switch os.Args[1] {
	case "balance":
		if err := wallet.Refresh(ctx); err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		account, _ := wallet.Account()
		fmt.Printf("Account:      %s\n", account.AccountNumber)
		fmt.Printf("Available:    %s\n", account.AvailableBalance)
		fmt.Printf("Withdrawable: %s\n", account.WithdrawableBalance)
		fmt.Printf("Locked:       %s\n", account.LockedBalance)

	case "transactions":
		transactions, err := api.GetTransactions(ctx)
		if err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		for _, txn := range transactions {
			fmt.Printf("%s  %-14s %10s  %s\n",
				txn.CreatedAt.Format("2006-01-02 15:04"), txn.Type, txn.SignedAmount(), txn.Description)
		}

	case "redeem":
		fs := flag.NewFlagSet("redeem", flag.ExitOnError)
		amount := fs.String("amount", "", "amount to redeem")
		fs.Parse(os.Args[2:])

		value, err := decimal.NewFromString(*amount)
		if err != nil {
			fmt.Println("Invalid amount:", *amount)
			os.Exit(1)
		}
		account, err := api.Redeem(ctx, value)
		if err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		wallet.ApplySnapshot(account)
		fmt.Printf("Redeemed %s, available balance is now %s\n", value, account.AvailableBalance)

	case "record":
		fs := flag.NewFlagSet("record", flag.ExitOnError)
		amount := fs.String("amount", "", "transaction amount")
		txType := fs.String("type", "", "transaction type")
		desc := fs.String("desc", "manual entry", "description")
		fs.Parse(os.Args[2:])

		value, err := decimal.NewFromString(*amount)
		if err != nil {
			fmt.Println("Invalid amount:", *amount)
			os.Exit(1)
		}
		entryType := entities.TransactionType(*txType)
		if !entryType.Valid() {
			fmt.Println("Invalid transaction type:", *txType)
			os.Exit(1)
		}
		if err := api.RecordTransaction(ctx, client.RecordTransactionRequest{
			Amount:      value,
			Type:        entryType,
			Description: *desc,
		}); err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		fmt.Println("Ledger entry recorded")

	case "audit":
		if err := wallet.Refresh(ctx); err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		account, _ := wallet.Account()

		transactions, err := api.GetTransactions(ctx)
		if err != nil {
			logger.LogError(err)
			os.Exit(1)
		}

		indexer, err := audit.NewIndexer(&audit.Config{
			URL:      cfg.ElasticURL,
			Username: cfg.ElasticUsername,
			Password: cfg.ElasticPassword,
			Index:    cfg.ElasticIndex,
		}, logger)
		if err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		if err := indexer.EnsureIndex(ctx); err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		if err := indexer.IndexTransactions(ctx, account.AccountNumber, transactions); err != nil {
			logger.LogError(err)
			os.Exit(1)
		}
		fmt.Printf("Exported %d transactions to %s\n", len(transactions), cfg.ElasticIndex)

	default:
		usage()
		os.Exit(1)
	}
}
