package entity

import "database/sql"

type Community struct {
	Base

	Name        string `gorm:"unique;not null"`
	Username    string
	Image       string
	Description string
	AdminID     sql.NullString

	Members Array[string]
	Threads Array[string]
}
