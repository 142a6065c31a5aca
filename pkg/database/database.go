package database

import (
	"fmt"
	"log"

	"question_bank_backend/internal/config"
	"question_bank_backend/internal/model"
	"question_bank_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, migrate bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if migrate {
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
		log.Println("Database migration completed")

		if err := seedSuperuser(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// seedSuperuser 在用户表为空时创建默认管理员账号，并同时签发持久令牌。
// 首次部署后应立即修改默认密码。
func seedSuperuser(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &model.User{
			FirstName:   "Admin",
			Email:       "admin@example.com",
			Password:    string(hashed),
			IsActive:    true,
			IsStaff:     true,
			IsAdmin:     true,
			IsSuperuser: true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		token := &model.AuthToken{Key: util.GenerateTokenKey(), UserID: admin.ID}
		return tx.Create(token).Error
	})
}

// AutoMigrate 迁移题库全部表结构。级联删除由仓储层事务显式执行，
// 不依赖数据库外键动作。
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.AuthToken{},
		&model.Subject{},
		&model.Topic{},
		&model.Image{},
		&model.Question{},
		&model.QuestionOption{},
		&model.Examination{},
	)
}
