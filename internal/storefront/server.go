package storefront

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MarkoPoloResearchLab/topup/api/topup/v1"
	"github.com/MarkoPoloResearchLab/topup/internal/grpcserver"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const idempotencyKeyHeader = "Idempotency-Key"

// Run boots the HTTP façade using the supplied configuration.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	dialCtx, dialCancel := context.WithTimeout(ctx, 10*time.Second)
	conn, err := grpcserver.Dial(dialCtx, cfg.LedgerAddress, cfg.LedgerInsecure)
	dialCancel()
	if err != nil {
		return err
	}
	defer conn.Close()

	validator, err := NewTokenValidator([]byte(cfg.TokenSigningKey), cfg.TokenIssuer)
	if err != nil {
		return fmt.Errorf("token validator: %w", err)
	}
	handler := NewHandler(topupv1.NewLedgerServiceClient(conn), cfg, logger)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           NewRouter(cfg, handler, validator),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", zap.String("addr", cfg.ListenAddr))
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
			logger.Warn("server shutdown error", zap.Error(shutdownErr))
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// NewRouter wires the public catalog routes and the authenticated account routes.
func NewRouter(cfg Config, handler *Handler, validator *TokenValidator) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Origin", "Accept", "Authorization", idempotencyKeyHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalog := router.Group("/api")
	catalog.GET("/categories", handler.handleCategories)
	catalog.GET("/categories/:category/providers", handler.handleProviders)
	catalog.GET("/providers/:id/products", handler.handleProducts)

	account := router.Group("/api")
	account.Use(validator.GinMiddleware())
	account.GET("/account", handler.handleAccount)
	account.PATCH("/account", handler.handleUpdateProfile)
	account.POST("/topups", handler.handleTopUp)
	account.POST("/purchases", handler.handlePurchase)
	account.GET("/transactions", handler.handleTransactions)

	return router
}

// Handler translates storefront HTTP requests into ledger RPCs.
type Handler struct {
	logger       *zap.Logger
	ledgerClient topupv1.LedgerServiceClient
	cfg          Config
}

// NewHandler constructs a Handler.
func NewHandler(ledgerClient topupv1.LedgerServiceClient, cfg Config, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{logger: logger, ledgerClient: ledgerClient, cfg: cfg}
}

type topUpRequest struct {
	Amount      string `json:"amount"`
	ReferenceID string `json:"reference_id"`
}

// profileRequest leaves a field untouched when it is absent from the body.
type profileRequest struct {
	FullName    *string `json:"full_name"`
	PhoneNumber *string `json:"phone_number"`
}

type purchaseRequest struct {
	ProductID string `json:"product_id"`
	Target    string `json:"target"`
	Notes     string `json:"notes"`
}

func (handler *Handler) handleAccount(ctx *gin.Context) {
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.LedgerTimeout)
	defer cancel()
	response, err := handler.ledgerClient.GetAccount(requestCtx, &topupv1.GetAccountRequest{AccountId: accountIDFrom(ctx)})
	if err != nil {
		handler.respondLedgerError(ctx, "account lookup failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"account": response.Account})
}

func (handler *Handler) handleUpdateProfile(ctx *gin.Context) {
	var request profileRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.LedgerTimeout)
	defer cancel()
	response, err := handler.ledgerClient.UpdateProfile(requestCtx, &topupv1.UpdateProfileRequest{
		AccountId:   accountIDFrom(ctx),
		FullName:    request.FullName,
		PhoneNumber: request.PhoneNumber,
	})
	if err != nil {
		handler.respondLedgerError(ctx, "profile update failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"account": response.Account})
}

func (handler *Handler) handleTopUp(ctx *gin.Context) {
	var request topUpRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.LedgerTimeout)
	defer cancel()
	response, err := handler.ledgerClient.TopUp(requestCtx, &topupv1.TopUpRequest{
		AccountId:   accountIDFrom(ctx),
		Amount:      request.Amount,
		ReferenceId: request.ReferenceID,
	})
	if err != nil {
		handler.respondLedgerError(ctx, "top up failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"account": response.Account})
}

func (handler *Handler) handlePurchase(ctx *gin.Context) {
	var request purchaseRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid_payload", "expected JSON body"))
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.LedgerTimeout)
	defer cancel()
	response, err := handler.ledgerClient.Purchase(requestCtx, &topupv1.PurchaseRequest{
		AccountId:      accountIDFrom(ctx),
		ProductId:      request.ProductID,
		Target:         request.Target,
		Notes:          request.Notes,
		IdempotencyKey: ctx.GetHeader(idempotencyKeyHeader),
	})
	if err != nil {
		handler.respondLedgerError(ctx, "purchase failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"transaction": response.Transaction})
}

func (handler *Handler) handleTransactions(ctx *gin.Context) {
	limit, err := queryInt(ctx, "limit", handler.cfg.HistoryLimit, 1, maxHistoryLimit)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(grpcserver.ErrorInvalidPagination, err.Error()))
		return
	}
	offset, err := queryInt(ctx, "offset", 0, 0, math.MaxInt32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(grpcserver.ErrorInvalidPagination, err.Error()))
		return
	}
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.LedgerTimeout)
	defer cancel()
	response, err := handler.ledgerClient.ListTransactions(requestCtx, &topupv1.ListTransactionsRequest{
		AccountId: accountIDFrom(ctx),
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		handler.respondLedgerError(ctx, "transaction history failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"transactions": response.Transactions})
}

func (handler *Handler) handleCategories(ctx *gin.Context) {
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.LedgerTimeout)
	defer cancel()
	response, err := handler.ledgerClient.ListCategories(requestCtx, &topupv1.ListCategoriesRequest{})
	if err != nil {
		handler.respondLedgerError(ctx, "category listing failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": response.Categories})
}

func (handler *Handler) handleProviders(ctx *gin.Context) {
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.LedgerTimeout)
	defer cancel()
	response, err := handler.ledgerClient.ListProviders(requestCtx, &topupv1.ListProvidersRequest{Category: ctx.Param("category")})
	if err != nil {
		handler.respondLedgerError(ctx, "provider listing failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"providers": response.Providers})
}

func (handler *Handler) handleProducts(ctx *gin.Context) {
	requestCtx, cancel := context.WithTimeout(ctx.Request.Context(), handler.cfg.LedgerTimeout)
	defer cancel()
	response, err := handler.ledgerClient.ListProducts(requestCtx, &topupv1.ListProductsRequest{ProviderId: ctx.Param("id")})
	if err != nil {
		handler.respondLedgerError(ctx, "product listing failed", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"products": response.Products})
}

func (handler *Handler) respondLedgerError(ctx *gin.Context, message string, err error) {
	httpStatus, code := httpStatusFor(err)
	if httpStatus == http.StatusBadGateway {
		handler.logger.Error(message, zap.String("account_id", accountIDFrom(ctx)), zap.Error(err))
	}
	ctx.JSON(httpStatus, errorResponse(code, message))
}

// httpStatusFor maps a ledger RPC error to an HTTP status and the stable error code.
func httpStatusFor(err error) (int, string) {
	statusInfo, ok := status.FromError(err)
	if !ok {
		return http.StatusBadGateway, "ledger_error"
	}
	switch statusInfo.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, statusInfo.Message()
	case codes.NotFound:
		return http.StatusNotFound, statusInfo.Message()
	case codes.FailedPrecondition:
		if statusInfo.Message() == grpcserver.ErrorInsufficientFunds {
			return http.StatusPaymentRequired, statusInfo.Message()
		}
		return http.StatusConflict, statusInfo.Message()
	case codes.AlreadyExists, codes.Aborted:
		return http.StatusConflict, statusInfo.Message()
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout, grpcserver.ErrorDeadlineExceeded
	default:
		return http.StatusBadGateway, "ledger_error"
	}
}

// queryInt reads an optional integer query parameter bounded to [minimum, maximum].
func queryInt(ctx *gin.Context, name string, fallback int, minimum int, maximum int) (int, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	if value < minimum || value > maximum {
		return 0, fmt.Errorf("%s must be between %d and %d", name, minimum, maximum)
	}
	return value, nil
}

func errorResponse(code string, message string) gin.H {
	return gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	}
}
