package bootstrap

import (
	"github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/model"
	badgeService "github.com/devpathindcommunity-india/DevPath-Web-sub001/internal/modules/badge/service"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.Project{},
		&model.ProjectStar{},
		&model.Follower{},
		&model.LoginStamp{},
		&model.LeaderboardEntry{},
	)
}

func SeedAdminUser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).
		Where("email = ?", "admin@devpath.in").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		logrus.Info("admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := model.User{
		Name:         "Administrator",
		Email:        "admin@devpath.in",
		PasswordHash: string(hashedPasswordBytes),
		Role:         "admin",
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	adminProfile := model.Profile{
		UserID:       adminUser.ID,
		Achievements: pq.StringArray{badgeService.EarlyAdopter},
	}

	if err := db.Create(&adminProfile).Error; err != nil {
		return err
	}

	logrus.Info("✅ Admin user seeded successfully")
	logrus.Info("   Email: admin@devpath.in")
	logrus.Info("   Password: admin123")

	return nil
}
