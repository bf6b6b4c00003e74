package grpcserver

import (
	"context"
	"errors"

	"github.com/MarkoPoloResearchLab/topup/api/topup/v1"
	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ErrorAccountNotFound         = "account_not_found"
	ErrorProductNotFound         = "product_not_found"
	ErrorProviderNotFound        = "provider_not_found"
	ErrorTransactionNotFound     = "transaction_not_found"
	ErrorProductInactive         = "product_inactive"
	ErrorInsufficientFunds       = "insufficient_funds"
	ErrorTransactionClosed       = "transaction_closed"
	ErrorInvalidTransition       = "invalid_transition"
	ErrorConflict                = "conflict"
	ErrorDuplicateIdempotencyKey = "duplicate_idempotency_key"
	ErrorAccountExists           = "account_exists"
	ErrorInvalidAccountID        = "invalid_account_id"
	ErrorInvalidProductID        = "invalid_product_id"
	ErrorInvalidProviderID       = "invalid_provider_id"
	ErrorInvalidTransactionID    = "invalid_transaction_id"
	ErrorInvalidIdempotencyKey   = "invalid_idempotency_key"
	ErrorInvalidTarget           = "invalid_target"
	ErrorInvalidAmount           = "invalid_amount"
	ErrorInvalidCategory         = "invalid_category"
	ErrorInvalidOutcome          = "invalid_outcome"
	ErrorInvalidPagination       = "invalid_pagination"
	ErrorInvalidEmail            = "invalid_email"
	ErrorInvalidName             = "invalid_name"
	ErrorInvalidArgument         = "invalid_argument"
	ErrorDeadlineExceeded        = "deadline_exceeded"
	ErrorCancelled               = "cancelled"
	ErrorInternal                = "internal"
)

type errorRule struct {
	target  error
	code    codes.Code
	message string
}

// errorRules are matched in order.
var errorRules = []errorRule{
	{ledger.ErrAccountNotFound, codes.NotFound, ErrorAccountNotFound},
	{ledger.ErrProductNotFound, codes.NotFound, ErrorProductNotFound},
	{ledger.ErrProviderNotFound, codes.NotFound, ErrorProviderNotFound},
	{ledger.ErrTransactionNotFound, codes.NotFound, ErrorTransactionNotFound},
	{ledger.ErrProductInactive, codes.FailedPrecondition, ErrorProductInactive},
	{ledger.ErrInsufficientFunds, codes.FailedPrecondition, ErrorInsufficientFunds},
	{ledger.ErrTransactionClosed, codes.FailedPrecondition, ErrorTransactionClosed},
	{ledger.ErrInvalidTransition, codes.FailedPrecondition, ErrorInvalidTransition},
	{ledger.ErrConflict, codes.Aborted, ErrorConflict},
	{ledger.ErrDuplicateIdempotencyKey, codes.AlreadyExists, ErrorDuplicateIdempotencyKey},
	{ledger.ErrAccountExists, codes.AlreadyExists, ErrorAccountExists},
	{ledger.ErrInvalidAccountID, codes.InvalidArgument, ErrorInvalidAccountID},
	{ledger.ErrInvalidProductID, codes.InvalidArgument, ErrorInvalidProductID},
	{ledger.ErrInvalidProviderID, codes.InvalidArgument, ErrorInvalidProviderID},
	{ledger.ErrInvalidTransactionID, codes.InvalidArgument, ErrorInvalidTransactionID},
	{ledger.ErrInvalidIdempotencyKey, codes.InvalidArgument, ErrorInvalidIdempotencyKey},
	{ledger.ErrInvalidTarget, codes.InvalidArgument, ErrorInvalidTarget},
	{ledger.ErrInvalidAmount, codes.InvalidArgument, ErrorInvalidAmount},
	{ledger.ErrInvalidCategory, codes.InvalidArgument, ErrorInvalidCategory},
	{ledger.ErrInvalidOutcome, codes.InvalidArgument, ErrorInvalidOutcome},
	{ledger.ErrInvalidPagination, codes.InvalidArgument, ErrorInvalidPagination},
	{ledger.ErrInvalidEmail, codes.InvalidArgument, ErrorInvalidEmail},
	{ledger.ErrInvalidName, codes.InvalidArgument, ErrorInvalidName},
	{context.DeadlineExceeded, codes.DeadlineExceeded, ErrorDeadlineExceeded},
	{context.Canceled, codes.Canceled, ErrorCancelled},
}

// LedgerServer exposes the ledger engine over gRPC.
type LedgerServer struct {
	topupv1.UnimplementedLedgerServiceServer
	service *ledger.Service
	catalog ledger.CatalogReader
}

// ServerOption configures a LedgerServer.
type ServerOption func(*LedgerServer)

// WithCatalogReader serves catalog listings from reader instead of the service.
func WithCatalogReader(reader ledger.CatalogReader) ServerOption {
	return func(server *LedgerServer) {
		if reader != nil {
			server.catalog = reader
		}
	}
}

// NewLedgerServer constructs a gRPC server for the ledger service.
func NewLedgerServer(service *ledger.Service, options ...ServerOption) *LedgerServer {
	server := &LedgerServer{service: service, catalog: service}
	for _, option := range options {
		option(server)
	}
	return server
}

func (server *LedgerServer) OpenAccount(ctx context.Context, request *topupv1.OpenAccountRequest) (*topupv1.AccountResponse, error) {
	account, err := server.service.OpenAccount(ctx, request.GetEmail(), request.GetFullName(), request.GetPhoneNumber())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &topupv1.AccountResponse{Account: toAccountMessage(account)}, nil
}

func (server *LedgerServer) GetAccount(ctx context.Context, request *topupv1.GetAccountRequest) (*topupv1.AccountResponse, error) {
	accountID, err := ledger.NewAccountID(request.GetAccountId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	account, err := server.service.Account(ctx, accountID)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &topupv1.AccountResponse{Account: toAccountMessage(account)}, nil
}

func (server *LedgerServer) UpdateProfile(ctx context.Context, request *topupv1.UpdateProfileRequest) (*topupv1.AccountResponse, error) {
	accountID, err := ledger.NewAccountID(request.GetAccountId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	account, err := server.service.UpdateProfile(ctx, accountID, request.FullName, request.PhoneNumber)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &topupv1.AccountResponse{Account: toAccountMessage(account)}, nil
}

func (server *LedgerServer) TopUp(ctx context.Context, request *topupv1.TopUpRequest) (*topupv1.AccountResponse, error) {
	accountID, err := ledger.NewAccountID(request.GetAccountId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	amount, err := ledger.ParsePositiveAmount(request.GetAmount())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	account, err := server.service.TopUp(ctx, accountID, amount, ledger.OptionalIdempotencyKey(request.GetReferenceId()))
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &topupv1.AccountResponse{Account: toAccountMessage(account)}, nil
}

func (server *LedgerServer) Purchase(ctx context.Context, request *topupv1.PurchaseRequest) (*topupv1.TransactionResponse, error) {
	accountID, err := ledger.NewAccountID(request.GetAccountId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	productID, err := ledger.NewProductID(request.GetProductId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	target, err := ledger.NewTarget(request.GetTarget())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	key := ledger.OptionalIdempotencyKey(request.GetIdempotencyKey())
	transaction, err := server.service.Purchase(ctx, accountID, productID, target, request.GetNotes(), key)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &topupv1.TransactionResponse{Transaction: toTransactionMessage(transaction)}, nil
}

func (server *LedgerServer) MarkProcessing(ctx context.Context, request *topupv1.MarkProcessingRequest) (*topupv1.TransactionResponse, error) {
	transactionID, err := ledger.NewTransactionID(request.GetTransactionId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transaction, err := server.service.MarkProcessing(ctx, transactionID)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &topupv1.TransactionResponse{Transaction: toTransactionMessage(transaction)}, nil
}

func (server *LedgerServer) Settle(ctx context.Context, request *topupv1.SettleRequest) (*topupv1.TransactionResponse, error) {
	transactionID, err := ledger.NewTransactionID(request.GetTransactionId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	outcome, err := ledger.ParseSettlementOutcome(request.GetOutcome())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transaction, err := server.service.Settle(ctx, transactionID, outcome)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	return &topupv1.TransactionResponse{Transaction: toTransactionMessage(transaction)}, nil
}

func (server *LedgerServer) ListTransactions(ctx context.Context, request *topupv1.ListTransactionsRequest) (*topupv1.ListTransactionsResponse, error) {
	accountID, err := ledger.NewAccountID(request.GetAccountId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	page, err := ledger.NewPage(int(request.GetLimit()), int(request.GetOffset()))
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	transactions, err := server.service.ListTransactions(ctx, accountID, page)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	response := &topupv1.ListTransactionsResponse{Transactions: make([]*topupv1.Transaction, 0, len(transactions))}
	for _, transaction := range transactions {
		response.Transactions = append(response.Transactions, toTransactionMessage(transaction))
	}
	return response, nil
}

func (server *LedgerServer) ListCategories(ctx context.Context, _ *topupv1.ListCategoriesRequest) (*topupv1.ListCategoriesResponse, error) {
	categories, err := server.catalog.ListCategories(ctx)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	response := &topupv1.ListCategoriesResponse{Categories: make([]string, 0, len(categories))}
	for _, category := range categories {
		response.Categories = append(response.Categories, category.String())
	}
	return response, nil
}

func (server *LedgerServer) ListProviders(ctx context.Context, request *topupv1.ListProvidersRequest) (*topupv1.ListProvidersResponse, error) {
	category, err := ledger.ParseCategory(request.GetCategory())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	providers, err := server.catalog.ListProviders(ctx, category)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	response := &topupv1.ListProvidersResponse{Providers: make([]*topupv1.Provider, 0, len(providers))}
	for _, provider := range providers {
		response.Providers = append(response.Providers, &topupv1.Provider{
			ProviderId: provider.ID.String(),
			Name:       provider.Name,
			Category:   provider.Category.String(),
			LogoUrl:    provider.LogoURL,
		})
	}
	return response, nil
}

func (server *LedgerServer) ListProducts(ctx context.Context, request *topupv1.ListProductsRequest) (*topupv1.ListProductsResponse, error) {
	providerID, err := ledger.NewProviderID(request.GetProviderId())
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	products, err := server.catalog.ListProducts(ctx, providerID)
	if err != nil {
		return nil, mapToGRPCError(err)
	}
	response := &topupv1.ListProductsResponse{Products: make([]*topupv1.Product, 0, len(products))}
	for _, product := range products {
		response.Products = append(response.Products, &topupv1.Product{
			ProductId:    product.ID.String(),
			ProviderId:   product.ProviderID.String(),
			Name:         product.Name,
			Description:  product.Description,
			Price:        ledger.FormatMoney(product.Price),
			NominalValue: product.NominalValue,
		})
	}
	return response, nil
}

func toAccountMessage(account ledger.Account) *topupv1.Account {
	return &topupv1.Account{
		AccountId:      account.ID.String(),
		Email:          account.Email,
		FullName:       account.FullName,
		PhoneNumber:    account.PhoneNumber,
		Balance:        ledger.FormatMoney(account.Balance),
		Version:        account.Version,
		CreatedUnixUtc: account.CreatedAt.UTC().Unix(),
		UpdatedUnixUtc: account.UpdatedAt.UTC().Unix(),
	}
}

func toTransactionMessage(transaction ledger.Transaction) *topupv1.Transaction {
	message := &topupv1.Transaction{
		TransactionId:  transaction.ID.String(),
		AccountId:      transaction.AccountID.String(),
		Kind:           transaction.Kind.String(),
		Amount:         ledger.FormatMoney(transaction.Amount),
		Status:         transaction.Status.String(),
		Target:         transaction.Target,
		ReferenceId:    transaction.ReferenceID,
		Notes:          transaction.Notes,
		MetadataJson:   transaction.Metadata.String(),
		CreatedUnixUtc: transaction.CreatedAt.UTC().Unix(),
		UpdatedUnixUtc: transaction.UpdatedAt.UTC().Unix(),
	}
	if productID, ok := transaction.Product(); ok {
		message.ProductId = productID.String()
	}
	return message
}

func mapToGRPCError(source error) error {
	for _, rule := range errorRules {
		if errors.Is(source, rule.target) {
			return status.Error(rule.code, rule.message)
		}
	}
	if ledger.IsValidationError(source) {
		return status.Error(codes.InvalidArgument, ErrorInvalidArgument)
	}
	return status.Error(codes.Internal, ErrorInternal)
}
