package user

type Role struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:64;not null" json:"name"`
}

func (Role) TableName() string { return "Role" }

type User struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string  `gorm:"size:255;not null;uniqueIndex" json:"email"`
	LastName     *string `gorm:"size:255" json:"last_name"`
	FirstName    *string `gorm:"size:255" json:"first_name"`
	RoleID       int64   `gorm:"not null;index" json:"role_id"`
	PasswordHash string  `gorm:"size:255" json:"-"`
}

func (User) TableName() string { return "User" }
