package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	PasswordHash   string    `json:"-"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	Roles          []Role    `gorm:"many2many:user_roles" json:"roles,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (u *User) RoleCodes() []string {
	codes := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		codes = append(codes, r.Code)
	}
	return codes
}

func (u *User) HasRole(code string) bool {
	for _, r := range u.Roles {
		if r.Code == code {
			return true
		}
	}
	return false
}

type Role struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type RegisterUserInput struct {
	Name           string
	Email          string
	Password       string
	Phone          string
	TelegramChatID *int64
}

// Actor is the authenticated caller of a service operation.
type Actor struct {
	UserID string
	Admin  bool
}

func (a Actor) CanAccess(ownerID string) bool {
	return a.Admin || a.UserID == ownerID
}
