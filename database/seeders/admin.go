package seeders

import (
	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/config"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/auth"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/logger"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin guarantees the back-office account exists. The email and
// password come from ADMIN_EMAIL / ADMIN_PASSWORD.
func SeedAdmin(db *gorm.DB) error {
	email := config.AdminEmail()

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.AdminPassword())
	if err != nil {
		return err
	}

	admin := models.User{
		Email:     email,
		Password:  hash,
		FirstName: "Prince",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("seed: admin account created", "email", email)
	return nil
}
