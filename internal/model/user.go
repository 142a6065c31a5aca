package model

import "time"

// swagger:model User
type User struct {
	BaseModel
	FirstName    string     `gorm:"size:50" json:"first_name"`
	MiddleName   string     `gorm:"size:50" json:"middle_name"`
	LastName     string     `gorm:"size:50" json:"last_name"`
	Email        string     `gorm:"size:100;unique;not null" json:"email"`
	Password     string     `gorm:"size:100;not null" json:"-"`
	Contact      string     `gorm:"size:13" json:"contact"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	AddressLine1 string     `gorm:"size:200" json:"address_line_1"`
	AddressLine2 string     `gorm:"size:200" json:"address_line_2"`
	State        string     `gorm:"size:200" json:"state"`
	City         string     `gorm:"size:200" json:"city"`
	Zip          string     `gorm:"size:20" json:"zip"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	IsStaff      bool       `gorm:"default:false" json:"is_staff"`
	IsAdmin      bool       `gorm:"default:false" json:"is_admin"`
	IsSuperuser  bool       `gorm:"default:false" json:"is_superuser"`
	LastLogin    *time.Time `json:"last_login"`
}

func (User) TableName() string {
	return "users"
}

// AuthToken 用户创建时签发的唯一持久令牌，一对一，创建后不隐式重签。
// swagger:model AuthToken
type AuthToken struct {
	Key       string    `gorm:"primaryKey;size:40" json:"key"`
	UserID    uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (AuthToken) TableName() string {
	return "auth_tokens"
}
