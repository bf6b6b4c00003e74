package ledger

import (
	"errors"
	"testing"
)

func TestNewAccountID(test *testing.T) {
	test.Parallel()
	cases := []struct {
		name    string
		input   string
		wantErr error
		wantVal string
	}{
		{name: "valid", input: " acct-123 ", wantVal: "acct-123"},
		{name: "empty", input: "   ", wantErr: ErrInvalidAccountID},
	}
	for _, testCase := range cases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			result, err := NewAccountID(testCase.input)
			if testCase.wantErr != nil {
				if !errors.Is(err, testCase.wantErr) {
					test.Fatalf("expected error %v, got %v", testCase.wantErr, err)
				}
				return
			}
			if err != nil {
				test.Fatalf("unexpected error: %v", err)
			}
			if result.String() != testCase.wantVal {
				test.Fatalf("expected %q, got %q", testCase.wantVal, result.String())
			}
		})
	}
}

func TestIdentifierConstructorsRejectBlank(test *testing.T) {
	test.Parallel()
	if _, err := NewProductID(""); !errors.Is(err, ErrInvalidProductID) {
		test.Fatalf("expected ErrInvalidProductID, got %v", err)
	}
	if _, err := NewProviderID(" "); !errors.Is(err, ErrInvalidProviderID) {
		test.Fatalf("expected ErrInvalidProviderID, got %v", err)
	}
	if _, err := NewTransactionID(""); !errors.Is(err, ErrInvalidTransactionID) {
		test.Fatalf("expected ErrInvalidTransactionID, got %v", err)
	}
	if _, err := NewIdempotencyKey("   "); !errors.Is(err, ErrInvalidIdempotencyKey) {
		test.Fatalf("expected ErrInvalidIdempotencyKey, got %v", err)
	}
	if _, err := NewTarget(""); !errors.Is(err, ErrInvalidTarget) {
		test.Fatalf("expected ErrInvalidTarget, got %v", err)
	}
	if key := OptionalIdempotencyKey("  "); !key.IsZero() {
		test.Fatalf("expected blank optional key to be zero")
	}
}

func TestParsePositiveAmount(test *testing.T) {
	test.Parallel()
	cases := []struct {
		name    string
		input   string
		wantErr error
		wantVal string
	}{
		{name: "integer", input: "25000", wantVal: "25000.00"},
		{name: "two decimals", input: "10.50", wantVal: "10.50"},
		{name: "zero", input: "0", wantErr: ErrInvalidAmount},
		{name: "negative", input: "-5", wantErr: ErrInvalidAmount},
		{name: "too precise", input: "1.005", wantErr: ErrInvalidAmount},
		{name: "garbage", input: "ten", wantErr: ErrInvalidAmount},
		{name: "largest storable", input: "9999999999999.99", wantVal: "9999999999999.99"},
		{name: "column overflow", input: "10000000000000", wantErr: ErrInvalidAmount},
		{name: "far beyond column", input: "1e20", wantErr: ErrInvalidAmount},
	}
	for _, testCase := range cases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			amount, err := ParsePositiveAmount(testCase.input)
			if testCase.wantErr != nil {
				if !errors.Is(err, testCase.wantErr) {
					test.Fatalf("expected error %v, got %v", testCase.wantErr, err)
				}
				return
			}
			if err != nil {
				test.Fatalf("unexpected error: %v", err)
			}
			if amount.String() != testCase.wantVal {
				test.Fatalf("expected %q, got %q", testCase.wantVal, amount.String())
			}
			if !amount.Negated().Neg().Equal(amount.Decimal()) {
				test.Fatalf("negation mismatch")
			}
		})
	}
}

func TestNewMetadataJSON(test *testing.T) {
	test.Parallel()
	if _, err := NewMetadataJSON("{"); !errors.Is(err, ErrInvalidMetadataJSON) {
		test.Fatalf("expected ErrInvalidMetadataJSON, got %v", err)
	}
	metadata, err := NewMetadataJSON("")
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if metadata.String() != "{}" {
		test.Fatalf("expected {}, got %q", metadata.String())
	}
}

func TestTransactionStatusTransitions(test *testing.T) {
	test.Parallel()
	cases := []struct {
		from TransactionStatus
		to   TransactionStatus
		want bool
	}{
		{from: TransactionStatusPending, to: TransactionStatusProcessing, want: true},
		{from: TransactionStatusPending, to: TransactionStatusSuccess, want: true},
		{from: TransactionStatusPending, to: TransactionStatusCancelled, want: true},
		{from: TransactionStatusProcessing, to: TransactionStatusFailed, want: true},
		{from: TransactionStatusProcessing, to: TransactionStatusPending, want: false},
		{from: TransactionStatusSuccess, to: TransactionStatusFailed, want: false},
		{from: TransactionStatusFailed, to: TransactionStatusSuccess, want: false},
		{from: TransactionStatusCancelled, to: TransactionStatusProcessing, want: false},
	}
	for _, testCase := range cases {
		if got := testCase.from.CanTransitionTo(testCase.to); got != testCase.want {
			test.Fatalf("%s -> %s: expected %t, got %t", testCase.from, testCase.to, testCase.want, got)
		}
	}
}

func TestParseSettlementOutcome(test *testing.T) {
	test.Parallel()
	outcome, err := ParseSettlementOutcome(" Failed ")
	if err != nil || outcome != TransactionStatusFailed {
		test.Fatalf("expected failed, got %s (%v)", outcome, err)
	}
	for _, raw := range []string{"pending", "processing", "done"} {
		if _, err := ParseSettlementOutcome(raw); !errors.Is(err, ErrInvalidOutcome) {
			test.Fatalf("%q: expected ErrInvalidOutcome, got %v", raw, err)
		}
	}
}

func TestNewPage(test *testing.T) {
	test.Parallel()
	page, err := NewPage(0, 0)
	if err != nil {
		test.Fatalf("unexpected error: %v", err)
	}
	if page.Limit() != defaultPageLimit || page.Offset() != 0 {
		test.Fatalf("unexpected default page %+v", page)
	}
	for _, bad := range [][2]int{{-1, 0}, {maxPageLimit + 1, 0}, {10, -1}} {
		if _, err := NewPage(bad[0], bad[1]); !errors.Is(err, ErrInvalidPagination) {
			test.Fatalf("%v: expected ErrInvalidPagination, got %v", bad, err)
		}
	}
}

func TestParseCategory(test *testing.T) {
	test.Parallel()
	category, err := ParseCategory(" E_Money ")
	if err != nil || category != CategoryEMoney {
		test.Fatalf("expected e_money, got %s (%v)", category, err)
	}
	if _, err := ParseCategory("lottery"); !errors.Is(err, ErrInvalidCategory) {
		test.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
	if len(AllCategories()) != 10 {
		test.Fatalf("expected ten categories")
	}
}

func TestAccountContactTarget(test *testing.T) {
	test.Parallel()
	withPhone := Account{Email: "a@example.com", PhoneNumber: "0811"}
	if withPhone.ContactTarget() != "0811" {
		test.Fatalf("expected phone target")
	}
	withoutPhone := Account{Email: "a@example.com"}
	if withoutPhone.ContactTarget() != "a@example.com" {
		test.Fatalf("expected email target")
	}
}

func TestNewPurchaseInputValidation(test *testing.T) {
	test.Parallel()
	validAccountID := AccountID{value: "acct-1"}
	validProduct := Product{ID: ProductID{value: "prod-1"}, Name: "Pulsa 10k", Price: mustDecimal(test, "10000")}
	validAmount := mustPositiveAmount(test, "10000")
	validTarget := mustTarget(test, purchaseTarget)

	testCases := []struct {
		name      string
		accountID AccountID
		product   Product
		amount    PositiveAmount
		status    TransactionStatus
		target    Target
		wantErr   error
	}{
		{name: "invalid account id", product: validProduct, amount: validAmount, status: TransactionStatusSuccess, target: validTarget, wantErr: ErrInvalidAccountID},
		{name: "invalid product", accountID: validAccountID, amount: validAmount, status: TransactionStatusSuccess, target: validTarget, wantErr: ErrInvalidProductID},
		{name: "invalid amount", accountID: validAccountID, product: validProduct, status: TransactionStatusSuccess, target: validTarget, wantErr: ErrInvalidAmount},
		{name: "invalid status", accountID: validAccountID, product: validProduct, amount: validAmount, status: TransactionStatusFailed, target: validTarget, wantErr: ErrInvalidTransactionStatus},
		{name: "invalid target", accountID: validAccountID, product: validProduct, amount: validAmount, status: TransactionStatusPending, wantErr: ErrInvalidTarget},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			_, err := NewPurchaseInput(testCase.accountID, testCase.product, testCase.amount, testCase.status, testCase.target, IdempotencyKey{}, "", fixedTime)
			if !errors.Is(err, testCase.wantErr) {
				test.Fatalf(errorMismatchMessage, testCase.wantErr, err)
			}
		})
	}
}
