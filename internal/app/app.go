package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/nutech-integrasi/wallet-api/internal/config"
	"github.com/nutech-integrasi/wallet-api/internal/repository/memrepo"
	"github.com/nutech-integrasi/wallet-api/internal/service"
	"github.com/nutech-integrasi/wallet-api/internal/transport/api"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)

	userRepo := memrepo.NewUserRepository()
	services := service.Factory(userRepo, []byte(a.Config.JWTSecretKey))

	if seedErr := seedFixtureUser(notifyCtx, services.UserService); seedErr != nil {
		return fmt.Errorf("app run: %s", seedErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:        a.Logger,
		UserService:   services.UserService,
		WalletService: services.WalletService,
		JWTSecretKey:  []byte(a.Config.JWTSecretKey),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// seedFixtureUser хранилище живет только в памяти процесса, поэтому
// стартовый юзер создается при каждом запуске заново.
func seedFixtureUser(ctx context.Context, userService *service.UserService) error {
	_, err := userService.Register(ctx, service.RegisterUserArgs{
		Email:     "user@nutech-integrasi.com",
		FirstName: "User",
		LastName:  "Nutech",
		Password:  "abcdef1234",
	})
	if err != nil {
		return fmt.Errorf("seeding fixture user: %s", err.Error())
	}
	return nil
}
