// file: internals/features/users/service/auth_service.go
package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	userDTO "kelasku_backend/internals/features/users/dto"
	userModel "kelasku_backend/internals/features/users/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	DB *gorm.DB
}

// ClientMeta: jejak perangkat yang disimpan bersama refresh token.
type ClientMeta struct {
	UserAgent string
	IP        string
}

// ===================== REGISTER =====================
func (s *AuthService) Register(req userDTO.RegisterRequest) (userModel.UserModel, error) {
	var dup int64
	if err := s.DB.Model(&userModel.UserModel{}).
		Where("user_email = ?", req.Email).
		Count(&dup).Error; err != nil {
		return userModel.UserModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal cek email")
	}
	if dup > 0 {
		return userModel.UserModel{}, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return userModel.UserModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: string(hash),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return userModel.UserModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
	}
	return user, nil
}

// ===================== LOGIN =====================
// Mengembalikan access token (HS256, TTL pendek) + refresh token mentah
// untuk di-set sebagai cookie oleh controller.
func (s *AuthService) Login(req userDTO.LoginRequest, meta ClientMeta) (userModel.UserModel, string, string, error) {
	var user userModel.UserModel
	if err := s.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userModel.UserModel{}, "", "", fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return userModel.UserModel{}, "", "", fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return userModel.UserModel{}, "", "", fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.UserIsActive {
		return userModel.UserModel{}, "", "", fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}

	access, err := s.signAccessToken(user)
	if err != nil {
		return userModel.UserModel{}, "", "", err
	}
	refresh, err := s.issueRefreshToken(s.DB, user.UserID, meta)
	if err != nil {
		return userModel.UserModel{}, "", "", err
	}
	return user, access, refresh, nil
}

// ===================== REFRESH =====================
// Rotasi: token lama direvoke di transaksi yang sama dengan penerbitan
// token baru, supaya replay token lama langsung gagal.
func (s *AuthService) Refresh(rawToken string, meta ClientMeta) (userModel.UserModel, string, string, error) {
	if rawToken == "" {
		return userModel.UserModel{}, "", "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak ada")
	}
	hash := hashToken(rawToken)

	var user userModel.UserModel
	var access, refresh string

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		var row userModel.RefreshTokenModel
		if err := tx.Where("refresh_token_hash = ?", hash).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Refresh token tidak dikenal")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek refresh token")
		}
		if row.RefreshTokenRevokedAt != nil || time.Now().After(row.RefreshTokenExpiresAt) {
			return fiber.NewError(fiber.StatusUnauthorized, "Refresh token kedaluwarsa")
		}

		if err := tx.Where("user_id = ?", row.RefreshTokenUserID).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
		}
		if !user.UserIsActive {
			return fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
		}

		now := time.Now()
		if err := tx.Model(&userModel.RefreshTokenModel{}).
			Where("refresh_token_id = ?", row.RefreshTokenID).
			Update("refresh_token_revoked_at", &now).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal revoke token lama")
		}

		var err error
		if access, err = s.signAccessToken(user); err != nil {
			return err
		}
		if refresh, err = s.issueRefreshToken(tx, user.UserID, meta); err != nil {
			return err
		}
		return nil
	}); err != nil {
		return userModel.UserModel{}, "", "", err
	}

	return user, access, refresh, nil
}

// ===================== LOGOUT =====================
func (s *AuthService) Logout(rawToken string) error {
	if rawToken == "" {
		return nil
	}
	now := time.Now()
	return s.DB.Model(&userModel.RefreshTokenModel{}).
		Where("refresh_token_hash = ? AND refresh_token_revoked_at IS NULL", hashToken(rawToken)).
		Update("refresh_token_revoked_at", &now).Error
}

// ===================== ME =====================
func (s *AuthService) Me(userID uuid.UUID) (userModel.UserModel, error) {
	var user userModel.UserModel
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return userModel.UserModel{}, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return userModel.UserModel{}, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil user")
	}
	return user, nil
}

/* =========================================================
   Internal
   ========================================================= */

func (s *AuthService) signAccessToken(user userModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":        user.UserID.String(),
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat access token")
	}
	return signed, nil
}

func (s *AuthService) issueRefreshToken(tx *gorm.DB, userID uuid.UUID, meta ClientMeta) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat refresh token")
	}
	raw := hex.EncodeToString(buf)

	row := userModel.RefreshTokenModel{
		RefreshTokenUserID:    userID,
		RefreshTokenHash:      hashToken(raw),
		RefreshTokenExpiresAt: time.Now().Add(RefreshTokenTTL),
		RefreshTokenUserAgent: meta.UserAgent,
		RefreshTokenIP:        meta.IP,
	}
	if err := tx.Create(&row).Error; err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan refresh token")
	}
	return raw, nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
