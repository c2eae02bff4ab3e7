package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/arenapay/walletflow/internal/logging"
	"github.com/arenapay/walletflow/pkg/entities"
)

// Config holds configuration options for the audit indexer
type Config struct {
	URL      string
	Username string
	Password string
	Index    string
}

// Indexer exports fetched transaction history into Elasticsearch for
// operator-side analysis. It is a one-way export tool; the wallet layer
// never reads anything back from the index.
type Indexer struct {
	client *elasticsearch.Client
	index  string
	logger *logging.Logger
}

// NewIndexer creates an audit indexer
func NewIndexer(cfg *Config, logger *logging.Logger) (*Indexer, error) {
	if logger == nil {
		logger = logging.Default
	}

	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.URL},
	}
	if cfg.Username != "" && cfg.Password != "" {
		esCfg.Username = cfg.Username
		esCfg.Password = cfg.Password
	}

	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating Elasticsearch client: %w", err)
	}

	index := cfg.Index
	if index == "" {
		index = "wallet-transactions"
	}

	return &Indexer{
		client: client,
		index:  index,
		logger: logger,
	}, nil
}

// ESTransaction represents a wallet transaction document in Elasticsearch.
// Amounts are json.Number so they serialize as bare numerics, matching the
// double fields in the index mapping.
type ESTransaction struct {
	AccountNo     string      `json:"account_no"`
	TransactionID string      `json:"transaction_id"`
	Type          string      `json:"type"`
	Amount        json.Number `json:"amount"`
	SignedAmount  json.Number `json:"signed_amount"`
	Description   string      `json:"description"`
	CreatedAt     time.Time   `json:"created_at"`
	IndexedAt     time.Time   `json:"indexed_at"`
}

// EnsureIndex creates the target index if it does not already exist
func (i *Indexer) EnsureIndex(ctx context.Context) error {
	exists, err := esapi.IndicesExistsRequest{Index: []string{i.index}}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("error checking index: %w", err)
	}
	defer exists.Body.Close()
	if exists.StatusCode == 200 {
		return nil
	}

	mapping := `{
		"mappings": {
			"properties": {
				"account_no":     { "type": "keyword" },
				"transaction_id": { "type": "keyword" },
				"type":           { "type": "keyword" },
				"amount":         { "type": "double" },
				"signed_amount":  { "type": "double" },
				"description":    { "type": "text" },
				"created_at":     { "type": "date" },
				"indexed_at":     { "type": "date" }
			}
		}
	}`

	res, err := esapi.IndicesCreateRequest{
		Index: i.index,
		Body:  bytes.NewReader([]byte(mapping)),
	}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("error creating index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}
	return nil
}

// IndexTransactions indexes a batch of transactions for one account. Each
// document is keyed by transaction ID, so re-running the export is
// idempotent.
func (i *Indexer) IndexTransactions(ctx context.Context, accountNo string, transactions []*entities.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	now := time.Now()
	for _, txn := range transactions {
		doc := ESTransaction{
			AccountNo:     accountNo,
			TransactionID: txn.ID,
			Type:          string(txn.Type),
			Amount:        json.Number(txn.Amount.String()),
			SignedAmount:  json.Number(txn.SignedAmount().String()),
			Description:   txn.Description,
			CreatedAt:     txn.CreatedAt,
			IndexedAt:     now,
		}

		jsonData, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("error marshaling transaction %s: %w", txn.ID, err)
		}

		res, err := i.client.Index(
			i.index,
			bytes.NewReader(jsonData),
			i.client.Index.WithContext(ctx),
			i.client.Index.WithDocumentID(txn.ID),
		)
		if err != nil {
			return fmt.Errorf("error indexing transaction %s: %w", txn.ID, err)
		}
		res.Body.Close()

		if res.IsError() {
			return fmt.Errorf("error indexing transaction %s: %s", txn.ID, res.String())
		}
	}

	i.logger.Info("Indexed %d transactions for account %s", len(transactions), accountNo)
	return nil
}
