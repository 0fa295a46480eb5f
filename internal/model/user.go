package model

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleManager  UserRole = "manager"
)

func IsValidUserRole(role string) bool {
	switch UserRole(role) {
	case RoleCustomer, RoleManager:
		return true
	default:
		return false
	}
}

// 角色在建立時決定，之後不開放自助修改
type User struct {
	UserID       uint     `gorm:"primaryKey" json:"id"`
	Name         string   `gorm:"not null;type:varchar(50)" json:"name"`
	Email        string   `gorm:"unique;not null;type:varchar(100)" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"not null;type:varchar(20);default:customer" json:"role"`
	Orders       []Order  `gorm:"foreignKey:UserID" json:"-"`
	BaseModel
}
