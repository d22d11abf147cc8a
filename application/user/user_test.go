package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/hub-fulfillment/application/user"
	"github.com/muhammadheryan/hub-fulfillment/cmd/config"
	"github.com/muhammadheryan/hub-fulfillment/constant"
	redismocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/hub-fulfillment/mocks/repository/user"
	"github.com/muhammadheryan/hub-fulfillment/model"
	cerr "github.com/muhammadheryan/hub-fulfillment/utils/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fields struct {
	userRepo  *usermocks.UserRepository
	redisRepo *redismocks.Repository
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestUserApp_Register(t *testing.T) {
	req := &model.RegisterRequest{
		Name:     "Anita Menon",
		Email:    "anita@example.com",
		Phone:    "9847000001",
		Password: "password123",
	}

	tests := []struct {
		name     string
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new customer",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "anita@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "9847000001"}).Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
					return ent.Email == "anita@example.com" && ent.Role == constant.UserRoleCustomer &&
						bcrypt.CompareHashAndPassword([]byte(ent.PasswordHash), []byte("password123")) == nil
				})).Return(&model.UserEntity{ID: 1, Name: "Anita Menon", Email: "anita@example.com"}, nil).Once()
			},
			want: &model.RegisterResponse{Name: "Anita Menon", Email: "anita@example.com"},
		},
		{
			name: "error: email already exists",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "anita@example.com"}).
					Return(&model.UserEntity{ID: 2}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: phone already exists",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "anita@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "9847000001"}).
					Return(&model.UserEntity{ID: 2}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: create fails",
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("duplicate key")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{userRepo: usermocks.NewUserRepository(t), redisRepo: redismocks.NewRepository(t)}
			tt.mockCall(f)

			s := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)
			got, err := s.Register(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Register() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if err.Error() != cerr.SetCustomError(tt.errCode).Error() {
					t.Errorf("Register() error = %v, want %v", err, cerr.SetCustomError(tt.errCode))
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Register() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		password   string
		mockCall   func(t *testing.T, f fields)
		wantRole   constant.UserRole
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name:       "success: hub manager by email",
			identifier: "manager@example.com",
			password:   "password123",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "manager@example.com"}).Return(&model.UserEntity{
					ID: 5, Name: "Hub Manager", Email: "manager@example.com", Role: constant.UserRoleHubManager,
					PasswordHash: hashed(t, "password123"),
				}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"),
					&model.Session{UserID: 5, Role: constant.UserRoleHubManager}, time.Hour).Return(nil).Once()
			},
			wantRole: constant.UserRoleHubManager,
		},
		{
			name:       "success: legacy user without role logs in as customer",
			identifier: "9847000001",
			password:   "password123",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Phone: "9847000001"}).Return(&model.UserEntity{
					ID: 1, Name: "Anita Menon", Email: "anita@example.com", PasswordHash: hashed(t, "password123"),
				}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"),
					&model.Session{UserID: 1, Role: constant.UserRoleCustomer}, time.Hour).Return(nil).Once()
			},
			wantRole: constant.UserRoleCustomer,
		},
		{
			name:       "error: user not found",
			identifier: "nobody@example.com",
			password:   "password123",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "nobody@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name:       "error: invalid password",
			identifier: "anita@example.com",
			password:   "wrongpassword",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "anita@example.com"}).Return(&model.UserEntity{
					ID: 1, PasswordHash: hashed(t, "password123"),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name:       "error: session store unavailable",
			identifier: "anita@example.com",
			password:   "password123",
			mockCall: func(t *testing.T, f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "anita@example.com"}).Return(&model.UserEntity{
					ID: 1, PasswordHash: hashed(t, "password123"),
				}, nil).Once()
				f.redisRepo.On("SetSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("connection refused")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{userRepo: usermocks.NewUserRepository(t), redisRepo: redismocks.NewRepository(t)}
			tt.mockCall(t, f)

			s := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)
			got, err := s.Login(context.Background(), &model.LoginRequest{Identifier: tt.identifier, Password: tt.password})
			if (err != nil) != tt.wantErr {
				t.Errorf("Login() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				if err.Error() != cerr.SetCustomError(tt.errCode).Error() {
					t.Errorf("Login() error = %v, want %v", err, cerr.SetCustomError(tt.errCode))
				}
				return
			}
			if got.Token == "" {
				t.Errorf("Login() token is empty")
			}
			if got.Role != tt.wantRole {
				t.Errorf("Login() role = %v, want %v", got.Role, tt.wantRole)
			}
		})
	}
}

func TestUserApp_ValidateToken(t *testing.T) {
	login := func(t *testing.T, f fields) (token, jti string) {
		f.userRepo.On("Get", mock.Anything, mock.Anything).Return(&model.UserEntity{
			ID: 5, Role: constant.UserRoleHubManager, PasswordHash: hashed(t, "password123"),
		}, nil).Once()
		f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), mock.Anything, time.Hour).
			Run(func(args mock.Arguments) { jti = args.String(1) }).Return(nil).Once()

		s := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo)
		resp, err := s.Login(context.Background(), &model.LoginRequest{Identifier: "manager@example.com", Password: "password123"})
		require.NoError(t, err)
		return resp.Token, jti
	}

	t.Run("success: live session returns role", func(t *testing.T) {
		f := fields{userRepo: usermocks.NewUserRepository(t), redisRepo: redismocks.NewRepository(t)}
		token, jti := login(t, f)
		f.redisRepo.On("GetSession", mock.Anything, jti).
			Return(&model.Session{UserID: 5, Role: constant.UserRoleHubManager}, nil).Once()

		got, err := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo).ValidateToken(context.Background(), token)
		require.NoError(t, err)
		require.Equal(t, &model.Session{UserID: 5, Role: constant.UserRoleHubManager}, got)
	})

	t.Run("error: session expired", func(t *testing.T) {
		f := fields{userRepo: usermocks.NewUserRepository(t), redisRepo: redismocks.NewRepository(t)}
		token, jti := login(t, f)
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(nil, nil).Once()

		_, err := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo).ValidateToken(context.Background(), token)
		require.Error(t, err)
	})

	t.Run("error: session belongs to another user", func(t *testing.T) {
		f := fields{userRepo: usermocks.NewUserRepository(t), redisRepo: redismocks.NewRepository(t)}
		token, jti := login(t, f)
		f.redisRepo.On("GetSession", mock.Anything, jti).Return(&model.Session{UserID: 6}, nil).Once()

		_, err := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo).ValidateToken(context.Background(), token)
		require.Error(t, err)
	})

	t.Run("error: signed with another secret", func(t *testing.T) {
		f := fields{userRepo: usermocks.NewUserRepository(t), redisRepo: redismocks.NewRepository(t)}
		token, _ := login(t, f)

		other := testConfig()
		other.Auth.JWTSecret = "rotated"
		_, err := appuser.NewUserApp(other, f.userRepo, f.redisRepo).ValidateToken(context.Background(), token)
		require.Error(t, err)
	})

	t.Run("error: garbage token", func(t *testing.T) {
		f := fields{userRepo: usermocks.NewUserRepository(t), redisRepo: redismocks.NewRepository(t)}
		_, err := appuser.NewUserApp(testConfig(), f.userRepo, f.redisRepo).ValidateToken(context.Background(), "not-a-jwt")
		require.Error(t, err)
	})
}
