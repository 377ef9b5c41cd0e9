package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/nutech-integrasi/wallet-api/internal/domain"
	"github.com/nutech-integrasi/wallet-api/internal/transport/api/response"
)

type WalletHandler struct {
	svs WalletServicer
}

func NewWalletHandler(svs WalletServicer) *WalletHandler {
	return &WalletHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

// Balance GET BalanceRoute. Текущий баланс авторизованного юзера.
func (h *WalletHandler) Balance(c *gin.Context) {
	currentUserEmail := getUserEmailFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.GetBalance(reqCtx, currentUserEmail)
	if err != nil {
		abortWithWalletError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, http.StatusOK, "get balance successful", BalanceResponse{
		Balance: balance.InexactFloat64(),
	})
}

type TopUpParams struct {
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

// TopUp POST TopUpRoute. Пополняет баланс на amount.
func (h *WalletHandler) TopUp(c *gin.Context) {
	currentUserEmail := getUserEmailFromContext(c)

	var params TopUpParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil || !params.Amount.IsPositive() {
		response.AbortJSON(c, http.StatusBadRequest, http.StatusBadRequest, "amount must be positive", nil)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.TopUp(reqCtx, currentUserEmail, params.Amount)
	if err != nil {
		abortWithWalletError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, http.StatusOK, "top up successful", BalanceResponse{
		Balance: balance.InexactFloat64(),
	})
}

type TransactionParams struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

// Transaction POST TransactionRoute. Списывает amount с баланса; сообщение
// в ответе зависит от типа транзакции.
func (h *WalletHandler) Transaction(c *gin.Context) {
	currentUserEmail := getUserEmailFromContext(c)

	var params TransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil || !params.Amount.IsPositive() {
		response.AbortJSON(c, http.StatusBadRequest, http.StatusBadRequest, "amount must be positive", nil)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.Transact(reqCtx, currentUserEmail, params.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrNotEnoughBalance) {
			response.AbortJSON(c, http.StatusBadRequest, http.StatusBadRequest, "insufficient balance", nil)
			return
		}
		abortWithWalletError(c, err)
		return
	}

	msg := transactionMessage(domain.TransactionType(params.Type))
	response.JSON(c, http.StatusOK, http.StatusOK, msg, BalanceResponse{
		Balance: balance.InexactFloat64(),
	})
}

func transactionMessage(t domain.TransactionType) string {
	switch t {
	case domain.TransactionCredit:
		return "Credit payment successful"
	case domain.TransactionGameVoucher:
		return "Game voucher purchased successfully"
	default:
		return "Transaction successful"
	}
}

// abortWithWalletError общие для кошелька ошибки. Юзер мог исчезнуть из
// хранилища после выдачи токена - это 404, а не 500.
func abortWithWalletError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		response.AbortJSON(c, http.StatusNotFound, http.StatusNotFound, "user not found", nil)
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).
		SetType(gin.ErrorTypePrivate)
}
