package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/nutech-integrasi/wallet-api/internal/domain"
	"github.com/nutech-integrasi/wallet-api/internal/logger"
	"github.com/nutech-integrasi/wallet-api/internal/service"
	"github.com/nutech-integrasi/wallet-api/internal/transport/api/mocks"
	"github.com/nutech-integrasi/wallet-api/internal/transport/api/response"
	"github.com/nutech-integrasi/wallet-api/internal/transport/api/testutils"
)

// envelopeBody конверт ответа в том виде, в котором его видит клиент.
type envelopeBody struct {
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
	Data map[string]any `json:"data"`
}

func decodeEnvelope(s *suite.Suite, res *http.Response) envelopeBody {
	defer res.Body.Close() //nolint:errcheck
	var body envelopeBody
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	return body
}

type AuthHandlerTestSuite struct {
	suite.Suite
	mockUserService *mocks.MockUserServicer
	router          *gin.Engine
	jwtSecret       []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())

	s.mockUserService = mocks.NewMockUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		UserService:  s.mockUserService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *AuthHandlerTestSuite) TestRegister() {
	argsOk := service.RegisterUserArgs{
		Email:     "new@x.com",
		FirstName: "New",
		LastName:  "User",
		Password:  "password1",
	}
	argsDup := service.RegisterUserArgs{
		Email:     "user@nutech-integrasi.com",
		FirstName: "User",
		LastName:  "Nutech",
		Password:  "abcdef1234",
	}

	s.mockUserService.EXPECT().Register(gomock.Any(), argsOk).Return(&domain.User{Email: argsOk.Email}, nil)
	s.mockUserService.EXPECT().Register(gomock.Any(), argsDup).Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name        string
		payload     gin.H
		wantStatus  int
		wantCode    int
		wantMessage string
	}{
		{
			name: "created",
			payload: gin.H{
				"email": argsOk.Email, "first_name": argsOk.FirstName,
				"last_name": argsOk.LastName, "password": argsOk.Password,
			},
			wantStatus:  http.StatusCreated,
			wantCode:    http.StatusCreated,
			wantMessage: "registration succeeded, please log in",
		}, {
			name: "duplicate email",
			payload: gin.H{
				"email": argsDup.Email, "first_name": argsDup.FirstName,
				"last_name": argsDup.LastName, "password": argsDup.Password,
			},
			wantStatus:  http.StatusConflict,
			wantCode:    http.StatusConflict,
			wantMessage: "user already exists",
		}, {
			name: "bad email format",
			payload: gin.H{
				"email": "not-an-email", "first_name": "A",
				"last_name": "B", "password": "password1",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    response.CodeBadEmailFormat,
			wantMessage: "email format invalid",
		}, {
			name: "short password",
			payload: gin.H{
				"email": "short@x.com", "first_name": "A",
				"last_name": "B", "password": "pass1",
			},
			wantStatus:  http.StatusBadRequest,
			wantCode:    http.StatusBadRequest,
			wantMessage: "password too short",
		}, {
			// валидность email не спасает короткий пароль, и наоборот.
			name: "bad email wins over short password",
			payload: gin.H{
				"email": "not-an-email", "first_name": "A",
				"last_name": "B", "password": "pass1",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeBadEmailFormat,
		}, {
			name:       "empty body",
			payload:    nil,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			var payload []byte
			if t.payload != nil {
				payload, _ = json.Marshal(t.payload)
			}

			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RegisterRoute,
				Body:   bytes.NewReader(payload),
			})

			s.Equal(t.wantStatus, res.StatusCode)

			body := decodeEnvelope(&s.Suite, res)
			if t.wantCode != 0 {
				s.Equal(t.wantCode, body.Status.Code)
			}
			if t.wantMessage != "" {
				s.Equal(t.wantMessage, body.Status.Message)
			}
		})
	}
}

func (s *AuthHandlerTestSuite) TestLogin() {
	argsOk := service.LoginUserArgs{Email: "user@nutech-integrasi.com", Password: "abcdef1234"}
	argsUnknown := service.LoginUserArgs{Email: "missing@x.com", Password: "abcdef1234"}
	argsWrongPass := service.LoginUserArgs{Email: "user@nutech-integrasi.com", Password: "wrong pass"}

	s.mockUserService.EXPECT().
		Login(gomock.Any(), argsOk).
		Return(&domain.User{Email: argsOk.Email}, "signed.jwt.token", nil)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), argsUnknown).
		Return(nil, "", domain.ErrRecordNotFound)
	s.mockUserService.EXPECT().
		Login(gomock.Any(), argsWrongPass).
		Return(nil, "", domain.ErrPasswordMissMatch)

	cases := []struct {
		name        string
		payload     gin.H
		wantStatus  int
		wantCode    int
		wantMessage string
		wantToken   string
	}{
		{
			name:        "ok",
			payload:     gin.H{"email": argsOk.Email, "password": argsOk.Password},
			wantStatus:  http.StatusOK,
			wantCode:    http.StatusOK,
			wantMessage: "login successful",
			wantToken:   "signed.jwt.token",
		}, {
			name:        "unknown email",
			payload:     gin.H{"email": argsUnknown.Email, "password": argsUnknown.Password},
			wantStatus:  http.StatusUnauthorized,
			wantCode:    response.CodeBadCredentials,
			wantMessage: "email not found",
		}, {
			name:        "wrong password",
			payload:     gin.H{"email": argsWrongPass.Email, "password": argsWrongPass.Password},
			wantStatus:  http.StatusUnauthorized,
			wantCode:    response.CodeBadCredentials,
			wantMessage: "invalid credentials",
		}, {
			name:        "bad email format",
			payload:     gin.H{"email": "nope", "password": "abcdef1234"},
			wantStatus:  http.StatusBadRequest,
			wantCode:    response.CodeBadEmailFormat,
			wantMessage: "email format invalid",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			payload, _ := json.Marshal(t.payload)

			res := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    LoginRoute,
				Body:   bytes.NewReader(payload),
			})

			s.Equal(t.wantStatus, res.StatusCode)

			body := decodeEnvelope(&s.Suite, res)
			s.Equal(t.wantCode, body.Status.Code)
			s.Equal(t.wantMessage, body.Status.Message)

			if t.wantToken != "" {
				s.Equal(t.wantToken, body.Data["token"])
			}
		})
	}
}
