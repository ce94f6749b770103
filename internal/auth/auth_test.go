package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resource-planner-backend/internal/database/models"
	"resource-planner-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*AuthService, *mocks.MockUserRepositoryInterface, *mocks.MockInvitationRepositoryInterface) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	invitationRepo := mocks.NewMockInvitationRepositoryInterface(ctrl)
	return NewAuthService(userRepo, invitationRepo, "test-signing-key"), userRepo, invitationRepo
}

func testUser(t *testing.T, email, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email:        email,
		PasswordHash: string(hash),
	}
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		user := testUser(t, "jane@example.com", "secret123")

		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(1)
		userRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

		response, err := service.Login(user.Email, "secret123")

		assert.NoError(t, err)
		require.NotNil(t, response)
		assert.NotEmpty(t, response.AccessToken)
		assert.NotEmpty(t, response.RefreshToken)
		assert.Equal(t, "Bearer", response.TokenType)
		assert.Equal(t, int64(3600), response.ExpiresIn)
		assert.Equal(t, user.ID, response.Profile.ID)
		assert.Equal(t, user.Email, response.Profile.Email)
		// Login stamps the last login time
		assert.NotNil(t, user.LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		user := testUser(t, "jane@example.com", "secret123")

		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(1)

		response, err := service.Login(user.Email, "wrong-password")

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "invalid email or password")
	})

	t.Run("unknown email", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)

		userRepo.EXPECT().GetByEmail("nobody@example.com").Return(nil, gorm.ErrRecordNotFound).Times(1)

		response, err := service.Login("nobody@example.com", "secret123")

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "invalid email or password")
	})
}

func TestRegister(t *testing.T) {
	t.Run("invited email", func(t *testing.T) {
		service, userRepo, invitationRepo := newTestService(t)
		email := "new@example.com"
		invitation := &models.Invitation{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: time.Now().Add(-time.Hour),
			},
			Email: email,
		}

		userRepo.EXPECT().GetByEmail(email).Return(nil, gorm.ErrRecordNotFound).Times(1)
		invitationRepo.EXPECT().GetByEmail(email).Return(invitation, nil).Times(1)
		userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
			assert.Equal(t, email, user.Email)
			assert.True(t, user.IsInvited)
			require.NotNil(t, user.InvitedAt)
			assert.Equal(t, invitation.CreatedAt, *user.InvitedAt)
			// The stored hash must verify against the chosen password
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
			return nil
		}).Times(1)
		// Registration consumes the invitation
		invitationRepo.EXPECT().DeleteByEmail(email).Return(nil).Times(1)

		response, err := service.Register(email, "secret123")

		assert.NoError(t, err)
		require.NotNil(t, response)
		assert.NotEmpty(t, response.AccessToken)
		assert.Equal(t, email, response.Profile.Email)
	})

	t.Run("uninvited email", func(t *testing.T) {
		service, userRepo, invitationRepo := newTestService(t)
		email := "stranger@example.com"

		userRepo.EXPECT().GetByEmail(email).Return(nil, gorm.ErrRecordNotFound).Times(1)
		invitationRepo.EXPECT().GetByEmail(email).Return(nil, gorm.ErrRecordNotFound).Times(1)

		response, err := service.Register(email, "secret123")

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "email has not been invited")
	})

	t.Run("existing user", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		user := testUser(t, "jane@example.com", "secret123")

		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(1)

		response, err := service.Register(user.Email, "secret123")

		assert.Error(t, err)
		assert.Nil(t, response)
		assert.Contains(t, err.Error(), "user already exists")
	})
}

func TestInvitations(t *testing.T) {
	t.Run("send invitation", func(t *testing.T) {
		service, userRepo, invitationRepo := newTestService(t)
		email := "new@example.com"

		userRepo.EXPECT().GetByEmail(email).Return(nil, gorm.ErrRecordNotFound).Times(1)
		invitationRepo.EXPECT().GetByEmail(email).Return(nil, gorm.ErrRecordNotFound).Times(1)
		invitationRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

		invitation, err := service.SendInvitation(email)

		assert.NoError(t, err)
		require.NotNil(t, invitation)
		assert.Equal(t, email, invitation.Email)
	})

	t.Run("send invitation for existing user", func(t *testing.T) {
		service, userRepo, _ := newTestService(t)
		user := testUser(t, "jane@example.com", "secret123")

		userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(1)

		invitation, err := service.SendInvitation(user.Email)

		assert.Error(t, err)
		assert.Nil(t, invitation)
		assert.Contains(t, err.Error(), "user already exists")
	})

	t.Run("send duplicate invitation", func(t *testing.T) {
		service, userRepo, invitationRepo := newTestService(t)
		email := "new@example.com"
		existing := &models.Invitation{Email: email}

		userRepo.EXPECT().GetByEmail(email).Return(nil, gorm.ErrRecordNotFound).Times(1)
		invitationRepo.EXPECT().GetByEmail(email).Return(existing, nil).Times(1)

		invitation, err := service.SendInvitation(email)

		assert.Error(t, err)
		assert.Nil(t, invitation)
		assert.Contains(t, err.Error(), "invitation already exists")
	})

	t.Run("revoke invitation", func(t *testing.T) {
		service, _, invitationRepo := newTestService(t)
		email := "new@example.com"
		existing := &models.Invitation{Email: email}

		invitationRepo.EXPECT().GetByEmail(email).Return(existing, nil).Times(1)
		invitationRepo.EXPECT().DeleteByEmail(email).Return(nil).Times(1)

		err := service.RevokeInvitation(email)

		assert.NoError(t, err)
	})

	t.Run("revoke missing invitation", func(t *testing.T) {
		service, _, invitationRepo := newTestService(t)
		email := "new@example.com"

		invitationRepo.EXPECT().GetByEmail(email).Return(nil, gorm.ErrRecordNotFound).Times(1)

		err := service.RevokeInvitation(email)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invitation not found")
	})

	t.Run("is email invited", func(t *testing.T) {
		service, _, invitationRepo := newTestService(t)

		invitationRepo.EXPECT().GetByEmail("invited@example.com").Return(&models.Invitation{Email: "invited@example.com"}, nil).Times(1)
		invitationRepo.EXPECT().GetByEmail("stranger@example.com").Return(nil, gorm.ErrRecordNotFound).Times(1)

		assert.True(t, service.IsEmailInvited("invited@example.com"))
		assert.False(t, service.IsEmailInvited("stranger@example.com"))
	})
}

func TestRefreshTokenRotation(t *testing.T) {
	service, userRepo, _ := newTestService(t)
	user := testUser(t, "jane@example.com", "secret123")

	userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(1)
	userRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	loginResponse, err := service.Login(user.Email, "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, loginResponse.RefreshToken)

	// Refresh re-reads the user so admin changes take effect
	userRepo.EXPECT().GetByID(user.ID).Return(user, nil).Times(1)

	refreshResponse, err := service.RefreshToken(loginResponse.RefreshToken)

	assert.NoError(t, err)
	require.NotNil(t, refreshResponse)
	assert.NotEmpty(t, refreshResponse.AccessToken)
	assert.NotEmpty(t, refreshResponse.RefreshToken)
	assert.NotEqual(t, loginResponse.RefreshToken, refreshResponse.RefreshToken)

	// The old token is single-use
	_, err = service.RefreshToken(loginResponse.RefreshToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh token")
}

func TestRefreshTokenInvalid(t *testing.T) {
	service, _, _ := newTestService(t)

	response, err := service.RefreshToken("never-issued")

	assert.Error(t, err)
	assert.Nil(t, response)
	assert.Contains(t, err.Error(), "invalid refresh token")
}

func TestLogout(t *testing.T) {
	service, userRepo, _ := newTestService(t)
	user := testUser(t, "jane@example.com", "secret123")

	userRepo.EXPECT().GetByEmail(user.Email).Return(user, nil).Times(1)
	userRepo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	loginResponse, err := service.Login(user.Email, "secret123")
	require.NoError(t, err)

	service.Logout(loginResponse.RefreshToken)

	_, err = service.RefreshToken(loginResponse.RefreshToken)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh token")
}

func TestJWTOperations(t *testing.T) {
	service, _, _ := newTestService(t)
	user := &models.User{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email:   "jane@example.com",
		IsAdmin: true,
	}

	// Test token generation
	token, err := service.GenerateJWT(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// Test token validation
	claims, err := service.ValidateJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, user.ID.String(), claims.Subject)

	// Test invalid token
	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepositoryInterface(ctrl)
	invitationRepo := mocks.NewMockInvitationRepositoryInterface(ctrl)

	issuer := NewAuthService(userRepo, invitationRepo, "secret-a")
	verifier := NewAuthService(userRepo, invitationRepo, "secret-b")

	user := &models.User{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email: "jane@example.com",
	}

	token, err := issuer.GenerateJWT(user)
	require.NoError(t, err)

	_, err = verifier.ValidateJWT(token)
	assert.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, _, _ := newTestService(t)
	middleware := NewAuthMiddleware(service)

	user := &models.User{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email: "jane@example.com",
	}
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		email, ok := GetUserEmail(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.Email)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetAuthClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, _, _ := newTestService(t)
	middleware := NewAuthMiddleware(service)

	user := &models.User{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email:   "jane@example.com",
		IsAdmin: true,
	}
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/claims", middleware.RequireAuth(), func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  claims.UserID,
			"email":    claims.Email,
			"is_admin": claims.IsAdmin,
		})
	})

	t.Run("full claims after auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/claims", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.ID.String())
		assert.Contains(t, w.Body.String(), user.Email)
		assert.Contains(t, w.Body.String(), "true")
	})

	t.Run("absent without auth middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())

		claims, ok := GetAuthClaims(c)
		assert.False(t, ok)
		assert.Nil(t, claims)
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, _, _ := newTestService(t)
	middleware := NewAuthMiddleware(service)

	admin := &models.User{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email:   "admin@example.com",
		IsAdmin: true,
	}
	regular := &models.User{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email: "user@example.com",
	}

	adminToken, err := service.GenerateJWT(admin)
	require.NoError(t, err)
	regularToken, err := service.GenerateJWT(regular)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/admin", middleware.RequireAuth(), middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	t.Run("admin token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+adminToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-admin token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+regularToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("no token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
