package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pwiech/footliga/config"
	"github.com/pwiech/footliga/pkg/responses"
	"github.com/pwiech/footliga/pkg/token"
	"github.com/pwiech/footliga/pkg/validator"
	"github.com/pwiech/footliga/utils"

	"github.com/pwiech/footliga/internal/user"
)

// DefaultRole is assigned to every freshly registered account. It grants
// read access only; moderators get "editor" assigned by an admin.
const DefaultRole = "viewer"

// AuthController handles registration, login and token refresh.
type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

func NewAuthController(repo AuthRepository, appConfig *config.Config) *AuthController {
	return &AuthController{repo: repo, appConfig: appConfig}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user with the default viewer role and returns auth tokens.
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "Registration data"
// @Success 201 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 409 {object} responses.ErrorResponse "Username or email taken"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	if existing, _ := ac.repo.GetUserByUsername(req.Username); existing != nil {
		responses.SendError(c, http.StatusConflict, "Username already taken")
		return
	}
	if existing, _ := ac.repo.GetUserByEmail(req.Email); existing != nil {
		responses.SendError(c, http.StatusConflict, "Email already registered")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash password")
		return
	}

	u := user.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: hashed,
	}
	if err := ac.repo.CreateUser(&u); err != nil {
		responses.InternalServerError(c, "Failed to create user")
		return
	}
	if err := ac.repo.AssignRoleToUser(u.ID, DefaultRole); err != nil {
		responses.InternalServerError(c, "Failed to assign default role")
		return
	}

	created, err := ac.repo.GetUserByID(u.ID)
	if err != nil {
		responses.InternalServerError(c, "Failed to load created user")
		return
	}

	resp, err := ac.issueTokens(created)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Account created", resp)
}

// Login godoc
// @Summary Log in
// @Description Authenticates by username or email and returns auth tokens.
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body LoginRequest true "Credentials"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} responses.ErrorResponse "Bad credentials"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	var u *user.User
	var err error
	if strings.Contains(req.LoginIdentifier, "@") {
		u, err = ac.repo.GetUserByEmail(strings.ToLower(req.LoginIdentifier))
	} else {
		u, err = ac.repo.GetUserByUsername(req.LoginIdentifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.Unauthorized(c, "Invalid credentials")
			return
		}
		responses.InternalServerError(c, "Failed to look up user")
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		responses.Unauthorized(c, "Invalid credentials")
		return
	}

	resp, err := ac.issueTokens(u)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Logged in", resp)
}

// RefreshToken godoc
// @Summary Refresh the access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} responses.SuccessResponse{data=AuthResponse}
// @Failure 401 {object} responses.ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh-token [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.ParseError(err)})
		return
	}

	claims, err := token.ValidateJWT(req.RefreshToken, ac.appConfig.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(c, "Invalid or expired refresh token")
		return
	}

	stored, err := ac.repo.GetRefreshToken(req.RefreshToken)
	if err != nil || stored.ExpiresAt.Before(time.Now()) {
		responses.Unauthorized(c, "Refresh token revoked or expired")
		return
	}

	u, err := ac.repo.GetUserByID(claims.UserID)
	if err != nil {
		responses.Unauthorized(c, "User no longer exists")
		return
	}

	// Rotate: the presented refresh token is single-use.
	if err := ac.repo.InvalidateRefreshToken(req.RefreshToken); err != nil {
		responses.InternalServerError(c, "Failed to rotate refresh token")
		return
	}

	resp, err := ac.issueTokens(u)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue tokens")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Token refreshed", resp)
}

func (ac *AuthController) issueTokens(u *user.User) (*AuthResponse, error) {
	role := ""
	if len(u.Roles) > 0 {
		role = u.Roles[0].Name
	}

	accessLifetime := time.Duration(ac.appConfig.JWT.AccessTokenExpiryMinutes) * time.Minute
	access, err := token.GenerateJWT(u.ID, role, ac.appConfig.JWT.AccessTokenSecret, accessLifetime)
	if err != nil {
		return nil, err
	}

	refreshLifetime := time.Duration(ac.appConfig.JWT.RefreshTokenExpiryDays) * 24 * time.Hour
	refresh, err := token.GenerateJWT(u.ID, role, ac.appConfig.JWT.RefreshTokenSecret, refreshLifetime)
	if err != nil {
		return nil, err
	}

	if err := ac.repo.SaveRefreshToken(&user.RefreshToken{
		UserID:    u.ID,
		Token:     refresh,
		ExpiresAt: time.Now().Add(refreshLifetime),
	}); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         FilterUserRecord(u),
	}, nil
}
