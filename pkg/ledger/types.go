package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits a monetary amount may carry.
const moneyScale int32 = 2

// maxAmountExclusive bounds amounts to what a numeric(15,2) column holds.
var maxAmountExclusive = decimal.New(1, 13)

// AccountID identifies a balance-holding account.
type AccountID struct {
	value string
}

// ProductID identifies a catalog product.
type ProductID struct {
	value string
}

// ProviderID identifies a catalog service provider.
type ProviderID struct {
	value string
}

// TransactionID identifies a transaction record.
type TransactionID struct {
	value string
}

// IdempotencyKey scopes duplicate detection. It is stored as the transaction reference id.
type IdempotencyKey struct {
	value string
}

// Target is the customer number a purchase is delivered to (phone, meter, customer id).
type Target struct {
	value string
}

// MetadataJSON stores a JSON snapshot attached to a transaction.
type MetadataJSON struct {
	value string
}

// PositiveAmount is a strictly positive monetary amount with at most two fractional digits.
type PositiveAmount struct {
	value decimal.Decimal
}

// NewAccountID validates and normalizes an account id.
func NewAccountID(raw string) (AccountID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return AccountID{}, fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	return AccountID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id AccountID) String() string {
	return id.value
}

// IsZero reports whether the identifier was never set.
func (id AccountID) IsZero() bool {
	return id.value == ""
}

// NewProductID validates and normalizes a product id.
func NewProductID(raw string) (ProductID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ProductID{}, fmt.Errorf("%w: empty value", ErrInvalidProductID)
	}
	return ProductID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id ProductID) String() string {
	return id.value
}

// IsZero reports whether the identifier was never set.
func (id ProductID) IsZero() bool {
	return id.value == ""
}

// NewProviderID validates and normalizes a provider id.
func NewProviderID(raw string) (ProviderID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ProviderID{}, fmt.Errorf("%w: empty value", ErrInvalidProviderID)
	}
	return ProviderID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id ProviderID) String() string {
	return id.value
}

// IsZero reports whether the identifier was never set.
func (id ProviderID) IsZero() bool {
	return id.value == ""
}

// NewTransactionID validates and normalizes a transaction id.
func NewTransactionID(raw string) (TransactionID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return TransactionID{}, fmt.Errorf("%w: empty value", ErrInvalidTransactionID)
	}
	return TransactionID{value: trimmed}, nil
}

// String returns the normalized identifier.
func (id TransactionID) String() string {
	return id.value
}

// IsZero reports whether the identifier was never set.
func (id TransactionID) IsZero() bool {
	return id.value == ""
}

// NewIdempotencyKey validates and normalizes an idempotency key.
func NewIdempotencyKey(raw string) (IdempotencyKey, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return IdempotencyKey{}, fmt.Errorf("%w: empty value", ErrInvalidIdempotencyKey)
	}
	return IdempotencyKey{value: trimmed}, nil
}

// OptionalIdempotencyKey returns the zero key for blank input instead of failing.
func OptionalIdempotencyKey(raw string) IdempotencyKey {
	return IdempotencyKey{value: strings.TrimSpace(raw)}
}

// String returns the normalized key.
func (key IdempotencyKey) String() string {
	return key.value
}

// IsZero reports whether no key was supplied.
func (key IdempotencyKey) IsZero() bool {
	return key.value == ""
}

// NewTarget validates and normalizes a delivery target.
func NewTarget(raw string) (Target, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Target{}, fmt.Errorf("%w: empty value", ErrInvalidTarget)
	}
	return Target{value: trimmed}, nil
}

// String returns the normalized target.
func (target Target) String() string {
	return target.value
}

// NewMetadataJSON validates metadata string (defaulting to "{}" for empty inputs).
func NewMetadataJSON(raw string) (MetadataJSON, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		normalized = "{}"
	}
	if !json.Valid([]byte(normalized)) {
		return MetadataJSON{}, fmt.Errorf("%w: must be valid json", ErrInvalidMetadataJSON)
	}
	return MetadataJSON{value: normalized}, nil
}

// String returns the normalized JSON blob.
func (metadata MetadataJSON) String() string {
	if metadata.value == "" {
		return "{}"
	}
	return metadata.value
}

// NewPositiveAmount validates an amount: strictly positive, at most two fractional digits.
func NewPositiveAmount(value decimal.Decimal) (PositiveAmount, error) {
	if !value.IsPositive() {
		return PositiveAmount{}, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	if !value.Equal(value.Round(moneyScale)) {
		return PositiveAmount{}, fmt.Errorf("%w: at most %d fractional digits", ErrInvalidAmount, moneyScale)
	}
	if value.GreaterThanOrEqual(maxAmountExclusive) {
		return PositiveAmount{}, fmt.Errorf("%w: must be less than %s", ErrInvalidAmount, maxAmountExclusive.String())
	}
	return PositiveAmount{value: value}, nil
}

// ParsePositiveAmount parses a decimal string such as "25000" or "10.50".
func ParsePositiveAmount(raw string) (PositiveAmount, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return PositiveAmount{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return NewPositiveAmount(value)
}

// Decimal returns the amount as a decimal value.
func (amount PositiveAmount) Decimal() decimal.Decimal {
	return amount.value
}

// Negated returns the amount as a debit delta.
func (amount PositiveAmount) Negated() decimal.Decimal {
	return amount.value.Neg()
}

// IsValid reports whether the amount was produced by a constructor.
func (amount PositiveAmount) IsValid() bool {
	return amount.value.IsPositive()
}

// String formats the amount with two fractional digits.
func (amount PositiveAmount) String() string {
	return FormatMoney(amount.value)
}

// FormatMoney renders a monetary value with two fractional digits.
func FormatMoney(value decimal.Decimal) string {
	return value.StringFixed(moneyScale)
}

// NormalizeMoney rounds a stored value back to money precision.
func NormalizeMoney(value decimal.Decimal) decimal.Decimal {
	return value.Round(moneyScale)
}

// Account is a user's balance record.
type Account struct {
	ID          AccountID
	Email       string
	FullName    string
	PhoneNumber string
	Balance     decimal.Decimal
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ContactTarget is the default delivery target: the phone number, falling back to email.
func (account Account) ContactTarget() string {
	if strings.TrimSpace(account.PhoneNumber) != "" {
		return account.PhoneNumber
	}
	return account.Email
}

// AccountInput carries the fields needed to open an account.
type AccountInput struct {
	Email       string
	FullName    string
	PhoneNumber string
	CreatedAt   time.Time
}

// NewAccountInput validates registration data. Email is lowercased.
func NewAccountInput(email string, fullName string, phoneNumber string, createdAt time.Time) (AccountInput, error) {
	normalizedEmail := strings.ToLower(strings.TrimSpace(email))
	if normalizedEmail == "" || !strings.Contains(normalizedEmail, "@") {
		return AccountInput{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	normalizedName := strings.TrimSpace(fullName)
	if normalizedName == "" {
		return AccountInput{}, fmt.Errorf("%w: empty value", ErrInvalidName)
	}
	return AccountInput{
		Email:       normalizedEmail,
		FullName:    normalizedName,
		PhoneNumber: strings.TrimSpace(phoneNumber),
		CreatedAt:   createdAt,
	}, nil
}

// ProfileUpdate changes contact details on an account. Nil fields are left as they are.
type ProfileUpdate struct {
	AccountID   AccountID
	FullName    *string
	PhoneNumber *string
	At          time.Time
}

// NewProfileUpdate validates a profile change. A provided name must not be blank;
// an empty phone number clears it.
func NewProfileUpdate(accountID AccountID, fullName *string, phoneNumber *string, at time.Time) (ProfileUpdate, error) {
	if accountID.IsZero() {
		return ProfileUpdate{}, fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	update := ProfileUpdate{AccountID: accountID, At: at}
	if fullName != nil {
		normalizedName := strings.TrimSpace(*fullName)
		if normalizedName == "" {
			return ProfileUpdate{}, fmt.Errorf("%w: empty value", ErrInvalidName)
		}
		update.FullName = &normalizedName
	}
	if phoneNumber != nil {
		normalizedPhone := strings.TrimSpace(*phoneNumber)
		update.PhoneNumber = &normalizedPhone
	}
	return update, nil
}

// BalanceDelta describes one atomic balance mutation.
type BalanceDelta struct {
	AccountID AccountID
	// Amount is signed: negative debits, positive credits.
	Amount decimal.Decimal
	// Floor is the minimum balance allowed after the mutation.
	Floor decimal.Decimal
	// ExpectedVersion pins the account version observed by the caller; negative disables the check.
	ExpectedVersion int64
	At              time.Time
}

// TransactionKind distinguishes balance-affecting events.
type TransactionKind string

const (
	TransactionKindPurchase TransactionKind = "purchase"
	TransactionKindTopUp    TransactionKind = "top_up"
)

// String returns the kind name.
func (kind TransactionKind) String() string {
	return string(kind)
}

// ParseTransactionKind validates a stored kind.
func ParseTransactionKind(raw string) (TransactionKind, error) {
	switch TransactionKind(raw) {
	case TransactionKindPurchase, TransactionKindTopUp:
		return TransactionKind(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionKind, raw)
	}
}

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "pending"
	TransactionStatusProcessing TransactionStatus = "processing"
	TransactionStatusSuccess    TransactionStatus = "success"
	TransactionStatusFailed     TransactionStatus = "failed"
	TransactionStatusCancelled  TransactionStatus = "cancelled"
)

// String returns the status name.
func (status TransactionStatus) String() string {
	return string(status)
}

// IsTerminal reports whether the status can no longer change.
func (status TransactionStatus) IsTerminal() bool {
	switch status {
	case TransactionStatusSuccess, TransactionStatusFailed, TransactionStatusCancelled:
		return true
	default:
		return false
	}
}

// Refunds reports whether reaching this status returns the debited amount.
func (status TransactionStatus) Refunds() bool {
	return status == TransactionStatusFailed || status == TransactionStatusCancelled
}

// CanTransitionTo enforces pending -> processing -> terminal.
func (status TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch status {
	case TransactionStatusPending:
		return next == TransactionStatusProcessing || next.IsTerminal()
	case TransactionStatusProcessing:
		return next.IsTerminal()
	default:
		return false
	}
}

// ParseTransactionStatus validates a status value.
func ParseTransactionStatus(raw string) (TransactionStatus, error) {
	switch TransactionStatus(raw) {
	case TransactionStatusPending, TransactionStatusProcessing, TransactionStatusSuccess, TransactionStatusFailed, TransactionStatusCancelled:
		return TransactionStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionStatus, raw)
	}
}

// ParseSettlementOutcome accepts only terminal statuses.
func ParseSettlementOutcome(raw string) (TransactionStatus, error) {
	status, err := ParseTransactionStatus(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil || !status.IsTerminal() {
		return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, raw)
	}
	return status, nil
}

// Transaction is an immutable-once-terminal record of one balance-affecting event.
type Transaction struct {
	ID        TransactionID
	AccountID AccountID
	Kind      TransactionKind
	// ProductID is zero for top-ups.
	ProductID ProductID
	// Amount is the unsigned magnitude; see SignedAmount.
	Amount      decimal.Decimal
	Status      TransactionStatus
	Target      string
	ReferenceID string
	Notes       string
	Metadata    MetadataJSON
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SignedAmount is negative for purchases and positive for top-ups.
func (transaction Transaction) SignedAmount() decimal.Decimal {
	if transaction.Kind == TransactionKindPurchase {
		return transaction.Amount.Neg()
	}
	return transaction.Amount
}

// Product returns the purchased product id; top-ups report false.
func (transaction Transaction) Product() (ProductID, bool) {
	return transaction.ProductID, !transaction.ProductID.IsZero()
}

// AffectsBalance reports whether the transaction's amount is currently reflected in the balance.
func (transaction Transaction) AffectsBalance() bool {
	return !transaction.Status.Refunds()
}

// TransactionInput is a validated transaction row ready to be appended.
type TransactionInput struct {
	AccountID   AccountID
	Kind        TransactionKind
	ProductID   ProductID
	Amount      PositiveAmount
	Status      TransactionStatus
	Target      string
	ReferenceID IdempotencyKey
	Notes       string
	Metadata    MetadataJSON
	CreatedAt   time.Time
}

// NewPurchaseInput validates a purchase row.
func NewPurchaseInput(accountID AccountID, product Product, amount PositiveAmount, status TransactionStatus, target Target, referenceID IdempotencyKey, notes string, createdAt time.Time) (TransactionInput, error) {
	if accountID.IsZero() {
		return TransactionInput{}, fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	if product.ID.IsZero() {
		return TransactionInput{}, fmt.Errorf("%w: empty value", ErrInvalidProductID)
	}
	if !amount.IsValid() {
		return TransactionInput{}, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	if status != TransactionStatusPending && status != TransactionStatusSuccess {
		return TransactionInput{}, fmt.Errorf("%w: purchases start pending or success", ErrInvalidTransactionStatus)
	}
	if target.String() == "" {
		return TransactionInput{}, fmt.Errorf("%w: empty value", ErrInvalidTarget)
	}
	metadata, err := productSnapshot(product)
	if err != nil {
		return TransactionInput{}, err
	}
	return TransactionInput{
		AccountID:   accountID,
		Kind:        TransactionKindPurchase,
		ProductID:   product.ID,
		Amount:      amount,
		Status:      status,
		Target:      target.String(),
		ReferenceID: referenceID,
		Notes:       strings.TrimSpace(notes),
		Metadata:    metadata,
		CreatedAt:   createdAt,
	}, nil
}

// NewTopUpInput validates a top-up row. Top-ups are immediately successful.
func NewTopUpInput(account Account, amount PositiveAmount, referenceID IdempotencyKey, createdAt time.Time) (TransactionInput, error) {
	if account.ID.IsZero() {
		return TransactionInput{}, fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	if !amount.IsValid() {
		return TransactionInput{}, fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	if referenceID.IsZero() {
		return TransactionInput{}, fmt.Errorf("%w: top-ups require a reference", ErrInvalidIdempotencyKey)
	}
	return TransactionInput{
		AccountID:   account.ID,
		Kind:        TransactionKindTopUp,
		Amount:      amount,
		Status:      TransactionStatusSuccess,
		Target:      account.ContactTarget(),
		ReferenceID: referenceID,
		Notes:       fmt.Sprintf("Balance top-up of %s", amount.String()),
		Metadata:    MetadataJSON{value: "{}"},
		CreatedAt:   createdAt,
	}, nil
}

func productSnapshot(product Product) (MetadataJSON, error) {
	raw, err := json.Marshal(map[string]string{
		"product_name":  product.Name,
		"nominal_value": product.NominalValue,
		"provider_id":   product.ProviderID.String(),
		"price":         FormatMoney(product.Price),
	})
	if err != nil {
		return MetadataJSON{}, fmt.Errorf("%w: %v", ErrInvalidMetadataJSON, err)
	}
	return MetadataJSON{value: string(raw)}, nil
}

// Page bounds a history query.
type Page struct {
	limit  int
	offset int
}

// NewPage validates pagination. A zero limit selects the default.
func NewPage(limit int, offset int) (Page, error) {
	if limit < 0 || limit > maxPageLimit {
		return Page{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidPagination, maxPageLimit)
	}
	if offset < 0 {
		return Page{}, fmt.Errorf("%w: offset must not be negative", ErrInvalidPagination)
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	return Page{limit: limit, offset: offset}, nil
}

// Limit returns the page size.
func (page Page) Limit() int {
	if page.limit == 0 {
		return defaultPageLimit
	}
	return page.limit
}

// Offset returns the number of rows skipped.
func (page Page) Offset() int {
	return page.offset
}

// AccountStore holds balances and supports atomic read-modify-write.
type AccountStore interface {
	CreateAccount(ctx context.Context, input AccountInput) (Account, error)
	GetAccount(ctx context.Context, accountID AccountID) (Account, error)
	// UpdateAccountProfile writes name and phone changes and bumps updated_at; balance and version are untouched.
	UpdateAccountProfile(ctx context.Context, update ProfileUpdate) (Account, error)
	// LockAccount reads the account and holds it exclusively until the surrounding transaction ends.
	LockAccount(ctx context.Context, accountID AccountID) (Account, error)
	// ApplyDelta checks the floor and writes the new balance as one indivisible step.
	ApplyDelta(ctx context.Context, delta BalanceDelta) (Account, error)
}

// TransactionLog is the append-only store of transaction records.
type TransactionLog interface {
	InsertTransaction(ctx context.Context, input TransactionInput) (Transaction, error)
	GetTransaction(ctx context.Context, transactionID TransactionID) (Transaction, error)
	LockTransaction(ctx context.Context, transactionID TransactionID) (Transaction, error)
	FindTransactionByReference(ctx context.Context, referenceID IdempotencyKey) (Transaction, error)
	UpdateTransactionStatus(ctx context.Context, transactionID TransactionID, from, to TransactionStatus, at time.Time) (Transaction, error)
	ListTransactions(ctx context.Context, accountID AccountID, page Page) ([]Transaction, error)
}

// Store is the persistence contract used by Service.
type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error
	AccountStore
	CatalogStore
	TransactionLog
}
