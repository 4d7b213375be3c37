package database

import (
	"fmt"

	"blitzscan/internal/config"
	"blitzscan/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB(cfg *config.Config) {

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Scan{},
		&models.WhoisScan{},
		&models.NmapScan{},
		&models.FuzzingScan{},
		&models.SubfinderScan{},
		&models.ParamspiderScan{},
		&models.WhatwebScan{},
		&models.TheHarvesterScan{},
		&models.Report{},
	); err != nil {
		logrus.Fatalf("Failed to auto-migrate database: %v", err)
	}

	logrus.Info("Database connection established and migrated")
}
