// file: internals/features/users/controller/auth_controller.go
package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "kelasku_backend/internals/features/users/dto"
	userService "kelasku_backend/internals/features/users/service"
	helper "kelasku_backend/internals/helpers"
)

type AuthController struct {
	Service *userService.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{Service: &userService.AuthService{DB: db}}
}

var validateAuth = validator.New()

func setRefreshCookie(c *fiber.Ctx, raw string) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    raw,
		Path:     "/api/auth",
		MaxAge:   int(userService.RefreshTokenTTL / time.Second),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/auth",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// ===================== REGISTER =====================
// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req userDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	user, err := h.Service.Register(req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromUserModel(user))
}

// ===================== LOGIN =====================
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.MapValidationErrors(err))
	}

	user, access, refresh, err := h.Service.Login(req, userService.ClientMeta{
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IP:        c.IP(),
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	setRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Login berhasil", userDTO.LoginResponse{
		AccessToken: access,
		User:        userDTO.FromUserModel(user),
	})
}

// ===================== REFRESH =====================
// POST /api/auth/refresh (refresh token dari cookie, dirotasi setiap kali)
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	user, access, refresh, err := h.Service.Refresh(c.Cookies("refresh_token"), userService.ClientMeta{
		UserAgent: c.Get(fiber.HeaderUserAgent),
		IP:        c.IP(),
	})
	if err != nil {
		clearRefreshCookie(c)
		return helper.FromFiberError(c, err)
	}
	setRefreshCookie(c, refresh)

	return helper.JsonOK(c, "Token diperbarui", userDTO.LoginResponse{
		AccessToken: access,
		User:        userDTO.FromUserModel(user),
	})
}

// ===================== LOGOUT =====================
// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	if err := h.Service.Logout(c.Cookies("refresh_token")); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}
	clearRefreshCookie(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

// ===================== ME =====================
// GET /api/u/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	user, err := h.Service.Me(userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Profil user", userDTO.FromUserModel(user))
}
