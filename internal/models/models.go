package models

import (
	"launch-go/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB 全局数据库实例
var DB *gorm.DB

// InitDB 初始化数据库
func InitDB(cfg *config.Config) error {
	var err error

	// 配置GORM
	DB, err = gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{
		// 使用静默模式
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return err
	}

	return nil
}

// AutoMigrate 自动迁移数据库表
func AutoMigrate() error {
	return MigrateAll(DB)
}

// MigrateAll 在指定数据库上迁移全部表
func MigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&Tenant{},
		&User{},
		&BrandGuideline{},
		&Product{},
		&GenerationRule{},
		&GeneratedAsset{},
		&KnowledgeEntry{},
		&RevenueGoal{},
	)
}

// GetDB 获取数据库实例
func GetDB() *gorm.DB {
	return DB
}
