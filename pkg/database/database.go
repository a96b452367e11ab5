package database

import (
	"fmt"
	"log"

	"elearning_backend/internal/config"
	"elearning_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// Schema changes in release mode only happen behind the -migrate flag.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Certificate{},
			&model.Exam{},
			&model.ExamContainer{},
			&model.Question{},
			&model.ContainerQuestion{},
			&model.QuestionOption{},
			&model.ExamMedia{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	// Default certificates referenced by the exam forms.
	var count int64
	db.Model(&model.Certificate{}).Count(&count)
	if count == 0 {
		defaults := []model.Certificate{
			{Name: "TOEIC Listening & Reading"},
			{Name: "TOEIC Speaking & Writing"},
			{Name: "IELTS Academic"},
			{Name: "IELTS General Training"},
		}
		for _, cert := range defaults {
			db.Create(&cert)
		}
	}

	return db, nil
}
