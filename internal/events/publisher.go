// Package events publishes committed ledger transactions to NATS.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"github.com/nats-io/nats.go"
)

const (
	defaultSubjectPrefix = "transactions"
	clientName           = "topup-ledgerd"
	reconnectWait        = 2 * time.Second
	maxReconnects        = 60
)

// ErrNilConn reports a publisher built without a connection.
var ErrNilConn = errors.New("events: nil connection")

// Conn is the subset of *nats.Conn used by Publisher.
type Conn interface {
	Publish(subject string, data []byte) error
}

// Connect dials NATS with the reconnect policy used by ledgerd.
func Connect(url string) (*nats.Conn, error) {
	conn, err := nats.Connect(url,
		nats.Name(clientName),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(maxReconnects),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return conn, nil
}

// Payload is the wire form of a transaction event.
type Payload struct {
	TransactionID string          `json:"transaction_id"`
	AccountID     string          `json:"account_id"`
	Kind          string          `json:"kind"`
	ProductID     string          `json:"product_id,omitempty"`
	Amount        string          `json:"amount"`
	SignedAmount  string          `json:"signed_amount"`
	Status        string          `json:"status"`
	Target        string          `json:"target"`
	ReferenceID   string          `json:"reference_id,omitempty"`
	Metadata      json.RawMessage `json:"metadata"`
	Balance       string          `json:"balance"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

var _ ledger.EventPublisher = (*Publisher)(nil)

// Publisher implements ledger.EventPublisher on a NATS connection.
type Publisher struct {
	conn   Conn
	prefix string
}

// PublisherOption configures a Publisher.
type PublisherOption func(*Publisher)

// WithSubjectPrefix replaces the leading subject token.
func WithSubjectPrefix(prefix string) PublisherOption {
	return func(publisher *Publisher) {
		trimmed := strings.Trim(strings.TrimSpace(prefix), ".")
		if trimmed != "" {
			publisher.prefix = trimmed
		}
	}
}

// NewPublisher returns a Publisher that writes to conn.
func NewPublisher(conn Conn, options ...PublisherOption) (*Publisher, error) {
	if conn == nil {
		return nil, ErrNilConn
	}
	publisher := &Publisher{conn: conn, prefix: defaultSubjectPrefix}
	for _, option := range options {
		option(publisher)
	}
	return publisher, nil
}

// Subject is <prefix>.<kind>.<status>, e.g. transactions.purchase.success.
func (publisher *Publisher) Subject(transaction ledger.Transaction) string {
	return publisher.prefix + "." + transaction.Kind.String() + "." + transaction.Status.String()
}

// PublishTransaction serializes the event and publishes it.
func (publisher *Publisher) PublishTransaction(ctx context.Context, event ledger.TransactionEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(NewPayload(event))
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	subject := publisher.Subject(event.Transaction)
	if err := publisher.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// NewPayload flattens a ledger event into its wire form.
func NewPayload(event ledger.TransactionEvent) Payload {
	transaction := event.Transaction
	payload := Payload{
		TransactionID: transaction.ID.String(),
		AccountID:     transaction.AccountID.String(),
		Kind:          transaction.Kind.String(),
		Amount:        ledger.FormatMoney(transaction.Amount),
		SignedAmount:  ledger.FormatMoney(transaction.SignedAmount()),
		Status:        transaction.Status.String(),
		Target:        transaction.Target,
		ReferenceID:   transaction.ReferenceID,
		Metadata:      json.RawMessage(transaction.Metadata.String()),
		Balance:       ledger.FormatMoney(event.Balance),
		OccurredAt:    event.OccurredAt.UTC(),
	}
	if productID, ok := transaction.Product(); ok {
		payload.ProductID = productID.String()
	}
	return payload
}
