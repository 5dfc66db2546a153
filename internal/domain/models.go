package domain

import (
	"time"
)

// Announcement is a homepage announcement with an attached image stored
// in the remote object store. ImageLink and AssetID are set together by
// the upload flow and are never cleared without a replacement asset.
type Announcement struct {
	ID               int64                 `gorm:"primaryKey" json:"id"`
	Title            string                `json:"title"`
	ShortDescription string                `json:"short_description"`
	ImageName        string                `json:"image_name"`
	ShowOnHome       bool                  `json:"show_on_home"`
	CategoryID       *int64                `json:"category_id,omitempty"`
	Category         *AnnouncementCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	ImageLink        string                `json:"image_link"`
	AssetID          string                `json:"asset_id"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

type AnnouncementCategory struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Client is a showcased customer with a logo image and a set of
// products displayed on its page.
type Client struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ImageName   string    `json:"image_name"`
	ImageLink   string    `json:"image_link"`
	AssetID     string    `json:"asset_id"`
	Products    []Product `gorm:"foreignKey:ClientID" json:"products,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Product struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	ClientID    int64     `json:"client_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type User struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"`
	Roles        []RoleUser `gorm:"foreignKey:UserID" json:"roles,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// RoleUser maps a user to a named role ("admin", ...). Pure mapping row,
// consumed by the authorization gate through token claims.
type RoleUser struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	UserRoleName string    `json:"user_role_name"`
	UserID       int64     `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (RoleUser) TableName() string { return "user_role" }

// Models lists every persisted entity for automigration.
func Models() []any {
	return []any{
		&AnnouncementCategory{},
		&Announcement{},
		&Client{},
		&Product{},
		&User{},
		&RoleUser{},
	}
}
