package config

import (
	"github.com/medrecall/medrecall-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var Database *gorm.DB

func Connect(databaseURL string) error {
	var err error
	Database, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	err = Database.AutoMigrate(
		&models.User{},
		&models.Folder{},
		&models.Deck{},
		&models.Flashcard{},
		&models.Planner{},
		&models.File{},
	)
	if err != nil {
		panic("failed to auto migrate database")
	}

	return nil
}
