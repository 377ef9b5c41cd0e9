package service

import (
	"context"
	"time"

	"github.com/nutech-integrasi/wallet-api/internal/domain"
	"github.com/nutech-integrasi/wallet-api/internal/service/tokens"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const JWTTokenExpire = 12 * time.Hour

type UserService struct {
	userRepo       domain.UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(userRepo domain.UserRepository, hasher PasswordHasher, jwtTokenSecret []byte) *UserService {
	return &UserService{
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}
}

type RegisterUserArgs struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// Register хеширует пароль и создает юзера с нулевым балансом. Токен при
// регистрации не выдается - юзер должен залогиниться.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, errors.Wrap(hashErr, "registering user")
	}

	user, createErr := s.userRepo.CreateUser(ctx, domain.User{
		Email:     args.Email,
		FirstName: args.FirstName,
		LastName:  args.LastName,
		Password:  password,
		Balance:   decimal.Zero,
	})
	if createErr != nil {
		return nil, errors.Wrap(createErr, "registering user")
	}
	return user, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует юзера по паре email/пароль. Возвращает 3 значения:
// юзер, подписанный jwt токен с клеймом email и ошибку.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindUserByEmail(ctx, args.Email)
	if findErr != nil {
		return nil, "", errors.Wrap(findErr, "logging in user")
	}

	if !s.hasher.ComparePassword(args.Password, user.Password) {
		return nil, "", errors.Wrap(domain.ErrPasswordMissMatch, "logging in user")
	}

	token, tokenErr := tokens.GenerateUserJWT(user.Email, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", errors.Wrap(tokenErr, "logging in user")
	}
	return user, token, nil
}
