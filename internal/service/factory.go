package service

import (
	"github.com/nutech-integrasi/wallet-api/internal/domain"
	"github.com/nutech-integrasi/wallet-api/internal/service/psswd"
)

type AppServices struct {
	UserService   *UserService
	WalletService *WalletService
}

func Factory(userRepo domain.UserRepository, jwtSecret []byte) *AppServices {
	var hasher psswd.PasswordHash

	return &AppServices{
		UserService:   NewUserService(userRepo, hasher, jwtSecret),
		WalletService: NewWalletService(userRepo),
	}
}
