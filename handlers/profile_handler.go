package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/karigarhub/karigar-backend/database"
	"github.com/karigarhub/karigar-backend/models"
)

func currentUserID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))
	return userID
}

func currentRole(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	return claims["role"].(string)
}

type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Phone        *string `json:"phone"`
	City         *string `json:"city"`
	Address      *string `json:"address"`
	ProfileImage *string `json:"profile_image"`
	DateOfBirth  *string `json:"date_of_birth"`
	Gender       *string `json:"gender"`
	Bio          *string `json:"bio"`
}

func GetProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.City != nil {
		user.City = req.City
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	database.DB.Save(&user)

	return c.JSON(user)
}

func GetMySettings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var settings models.UserSettings
	err := database.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		// First read creates the row with defaults.
		settings = models.UserSettings{UserID: userID}
		if err := database.DB.Create(&settings).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load settings"})
		}
	}

	return c.JSON(settings)
}

type UpdateSettingsRequest struct {
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	EmailNotifications   *bool   `json:"email_notifications"`
	SMSNotifications     *bool   `json:"sms_notifications"`
	PushNotifications    *bool   `json:"push_notifications"`
	MarketingEmails      *bool   `json:"marketing_emails"`
	Language             *string `json:"language"`
	TimeZone             *string `json:"timezone"`
	Theme                *string `json:"theme"`
	PrivacyProfile       *string `json:"privacy_profile"`
	TwoFactorEnabled     *bool   `json:"two_factor_enabled"`
}

func UpdateMySettings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var settings models.UserSettings
	if err := database.DB.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		settings = models.UserSettings{UserID: userID}
	}

	var req UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		settings.SMSNotifications = *req.SMSNotifications
	}
	if req.PushNotifications != nil {
		settings.PushNotifications = *req.PushNotifications
	}
	if req.MarketingEmails != nil {
		settings.MarketingEmails = *req.MarketingEmails
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.TimeZone != nil {
		settings.TimeZone = *req.TimeZone
	}
	if req.Theme != nil {
		settings.Theme = *req.Theme
	}
	if req.PrivacyProfile != nil {
		settings.PrivacyProfile = *req.PrivacyProfile
	}
	if req.TwoFactorEnabled != nil {
		settings.TwoFactorEnabled = *req.TwoFactorEnabled
	}

	if err := database.DB.Save(&settings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save settings"})
	}

	return c.JSON(settings)
}

type AddressRequest struct {
	Label        string  `json:"label" validate:"required"`
	AddressLine1 string  `json:"address_line_1" validate:"required"`
	AddressLine2 *string `json:"address_line_2"`
	City         string  `json:"city" validate:"required"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postal_code"`
	Country      string  `json:"country"`
	IsDefault    bool    `json:"is_default"`
}

func GetMyAddresses(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var addresses []models.UserAddress
	database.DB.Where("user_id = ?", userID).Order("is_default desc, created_at asc").Find(&addresses)

	return c.JSON(addresses)
}

func CreateAddress(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	address := models.UserAddress{
		UserID:       userID,
		Label:        req.Label,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		IsDefault:    req.IsDefault,
	}
	if req.Country != "" {
		address.Country = req.Country
	}

	if req.IsDefault {
		database.DB.Model(&models.UserAddress{}).Where("user_id = ?", userID).Update("is_default", false)
	}

	if err := database.DB.Create(&address).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create address"})
	}

	return c.Status(fiber.StatusCreated).JSON(address)
}

func DeleteAddress(c *fiber.Ctx) error {
	userID := currentUserID(c)
	addressID := c.Params("addressId")

	result := database.DB.Where("id = ? AND user_id = ?", addressID, userID).Delete(&models.UserAddress{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete address"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Address not found"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
