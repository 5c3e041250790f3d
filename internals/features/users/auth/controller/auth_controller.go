package controller

import (
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"learnhub_backend/internals/configs"
	"learnhub_backend/internals/features/users/auth/dto"
	authRepo "learnhub_backend/internals/features/users/auth/repository"
	"learnhub_backend/internals/features/users/auth/service"
	studentModel "learnhub_backend/internals/features/users/students/model"
	helper "learnhub_backend/internals/helpers"
	authmw "learnhub_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := authRepo.FindStudentByEmail(ctrl.DB, email)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if existing != nil {
		return helper.JsonError(c, fiber.StatusConflict, "email already registered")
	}

	hashed, err := service.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	student := studentModel.StudentModel{
		StudentName:      req.Name,
		StudentGenre:     req.Genre,
		StudentBirthdate: req.Birthdate,
		StudentEmail:     email,
		StudentPassword:  hashed,
	}
	if err := ctrl.DB.Create(&student).Error; err != nil {
		return helper.JsonFromError(c, err)
	}

	return ctrl.issueTokens(c, service.TokenSubject{
		UserID: student.StudentID,
		Role:   helper.RoleStudent,
	}, fiber.StatusCreated, "registration successful")
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	student, err := authRepo.FindStudentByEmail(ctrl.DB, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := service.CheckPasswordHash(student.StudentPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	return ctrl.issueTokens(c, service.TokenSubject{
		UserID: student.StudentID,
		Role:   helper.RoleStudent,
	}, fiber.StatusOK, "login successful")
}

// POST /api/auth/admin/login — panel login, same credentials shape but
// against the admins table and carrying the authorization level claim.
func (ctrl *AuthController) AdminLogin(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	admin, err := authRepo.FindAdminByEmail(ctrl.DB, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if admin == nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := service.CheckPasswordHash(admin.AdminPassword, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	level := admin.Authorization.AuthorizationLevel
	return ctrl.issueTokens(c, service.TokenSubject{
		UserID:     admin.AdminID,
		Role:       helper.RoleAdmin,
		AdminLevel: &level,
	}, fiber.StatusOK, "login successful")
}

// POST /api/auth/login-google — verifies a Google ID token and signs in
// (or registers) the matching student.
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || claimSet.Email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid Google token")
	}

	email := strings.ToLower(claimSet.Email)
	student, err := authRepo.FindStudentByEmail(ctrl.DB, email)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if student == nil {
		// first Google sign-in registers the student with an unusable password
		random, err := service.HashPassword(service.RefreshTokenHash(req.IDToken))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "failed to register")
		}
		student = &studentModel.StudentModel{
			StudentName:     claimSet.Name,
			StudentEmail:    email,
			StudentPassword: random,
		}
		if err := ctrl.DB.Create(student).Error; err != nil {
			return helper.JsonFromError(c, err)
		}
	}

	return ctrl.issueTokens(c, service.TokenSubject{
		UserID: student.StudentID,
		Role:   helper.RoleStudent,
	}, fiber.StatusOK, "login successful")
}

// POST /api/auth/refresh-token — rotates the refresh token and issues a
// fresh access token.
func (ctrl *AuthController) RefreshToken(c *fiber.Ctx) error {
	refresh := strings.TrimSpace(c.Cookies("refresh_token"))
	if refresh == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refresh = strings.TrimSpace(body.RefreshToken)
	}
	if refresh == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "missing refresh token")
	}

	sub, err := service.ParseRefreshToken(refresh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	oldHash := service.RefreshTokenHash(refresh)
	known, err := authRepo.RefreshTokenExists(ctrl.DB, oldHash)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if !known {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unknown refresh token")
	}

	// re-resolve the actor so disabled accounts lose their sessions
	if sub.Role == helper.RoleAdmin {
		admin, err := authRepo.FindAdminByID(ctrl.DB, sub.UserID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		if admin == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "account no longer exists")
		}
		level := admin.Authorization.AuthorizationLevel
		sub.AdminLevel = &level
	} else {
		student, err := authRepo.FindStudentByID(ctrl.DB, sub.UserID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		if student == nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "account no longer exists")
		}
	}

	access, err := service.CreateAccessToken(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	nextRefresh, record, err := service.CreateRefreshToken(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	if err := authRepo.RotateRefreshToken(ctrl.DB, oldHash, record); err != nil {
		return helper.JsonFromError(c, err)
	}

	setRefreshCookie(c, nextRefresh, record.ExpiresAt)
	return helper.JsonOK(c, "token refreshed", dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: nextRefresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(service.AccessTokenTTL.Seconds()),
	})
}

// POST /api/auth/logout — blacklists the current access token and drops
// the actor's refresh tokens.
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, err := authmw.ExtractBearerToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := authRepo.BlacklistToken(ctrl.DB, tokenString, authmw.TokenExpiry(tokenString)); err != nil {
		return helper.JsonFromError(c, err)
	}
	if err := authRepo.DeleteRefreshTokensForUser(ctrl.DB, userID); err != nil {
		log.Printf("[WARN] refresh token cleanup on logout: %v", err)
	}

	c.ClearCookie("refresh_token")
	return helper.JsonOK(c, "logged out", nil)
}

// GET /api/auth/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if helper.GetUserRole(c) == helper.RoleAdmin {
		admin, err := authRepo.FindAdminByID(ctrl.DB, userID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		if admin == nil {
			return helper.JsonError(c, fiber.StatusNotFound, "account not found")
		}
		level := admin.Authorization.AuthorizationLevel
		return helper.JsonOK(c, "profile", dto.MeResponse{
			ID:        admin.AdminID,
			Name:      admin.AdminName,
			Genre:     admin.AdminGenre,
			Birthdate: admin.AdminBirthdate,
			Email:     admin.AdminEmail,
			Role:      helper.RoleAdmin,
			Level:     &level,
		})
	}

	student, err := authRepo.FindStudentByID(ctrl.DB, userID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if student == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "account not found")
	}
	return helper.JsonOK(c, "profile", dto.MeResponse{
		ID:        student.StudentID,
		Name:      student.StudentName,
		Genre:     student.StudentGenre,
		Birthdate: student.StudentBirthdate,
		Email:     student.StudentEmail,
		Role:      helper.RoleStudent,
		PhotoURL:  student.StudentPhotoURL,
	})
}

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, sub service.TokenSubject, code int, message string) error {
	access, err := service.CreateAccessToken(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	refresh, record, err := service.CreateRefreshToken(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to issue token")
	}
	if err := authRepo.StoreRefreshToken(ctrl.DB, record); err != nil {
		return helper.JsonFromError(c, err)
	}

	setRefreshCookie(c, refresh, record.ExpiresAt)
	return helper.JsonWithCode(c, code, message, dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(service.AccessTokenTTL.Seconds()),
	})
}

func setRefreshCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
		Path:     "/api/auth",
	})
}
