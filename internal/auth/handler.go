package auth

import (
	"strings"

	"storseek-backend/internal/config"
	"storseek-backend/internal/database"
	"storseek-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type RegisterAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register-admin
// Bootstrap endpoint: allowed only while no admin account exists.
func RegisterAdminHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if database.DB == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "تسجيل الحسابات يتطلب اتصالاً بقاعدة البيانات")
		}

		var body RegisterAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		if body.Email == "" || body.Password == "" || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "الاسم والبريد الإلكتروني وكلمة المرور مطلوبة")
		}
		if len(body.Password) < 8 {
			return fiber.NewError(fiber.StatusBadRequest, "كلمة المرور يجب أن تكون 8 أحرف على الأقل")
		}

		var count int64
		database.DB.Model(&models.User{}).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusForbidden, "يوجد حساب مسؤول بالفعل")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر تشفير كلمة المرور")
		}

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء الحساب")
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		})
	}
}

// POST /api/auth/login
func LoginHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if database.DB == nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "تسجيل الدخول يتطلب اتصالاً بقاعدة البيانات")
		}

		var body LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "جسم الطلب غير صالح")
		}

		body.Email = strings.TrimSpace(strings.ToLower(body.Email))

		var user models.User
		if err := database.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "البريد الإلكتروني أو كلمة المرور غير صحيحة")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "البريد الإلكتروني أو كلمة المرور غير صحيحة")
		}

		token, err := GenerateToken(cfg.JWTSecret, &user)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "تعذر إنشاء رمز الدخول")
		}

		return c.JSON(fiber.Map{
			"token": token,
			"user": fiber.Map{
				"id":    user.ID,
				"name":  user.Name,
				"email": user.Email,
			},
		})
	}
}

// GET /api/auth/me
func MeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, email := CurrentUser(c)
		if userID == 0 {
			return fiber.NewError(fiber.StatusUnauthorized, "جلسة غير صالحة")
		}

		if database.DB != nil {
			var user models.User
			if err := database.DB.First(&user, userID).Error; err == nil {
				return c.JSON(fiber.Map{
					"id":    user.ID,
					"name":  user.Name,
					"email": user.Email,
				})
			}
		}
		return c.JSON(fiber.Map{
			"id":    userID,
			"email": email,
		})
	}
}
