package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nutech-integrasi/wallet-api/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RegisterRoute    = "/register"
	LoginRoute       = "/login"
	BalanceRoute     = "/balance"
	TopUpRoute       = "/topup"
	TransactionRoute = "/transaction"
)

type RouterArgs struct {
	Logger        *logrus.Logger
	UserService   UserServicer
	WalletService WalletServicer
	JWTSecretKey  []byte
}

func New(args RouterArgs) *gin.Engine {
	if err := registerValidators(); err != nil {
		panic(err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	walletHandler := NewWalletHandler(args.WalletService)

	r.POST(RegisterRoute, authHandler.Register)
	r.POST(LoginRoute, authHandler.Login)

	authorized := r.Group("/", middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	authorized.GET(BalanceRoute, walletHandler.Balance)
	authorized.POST(TopUpRoute, walletHandler.TopUp)
	authorized.POST(TransactionRoute, walletHandler.Transaction)

	return r
}
