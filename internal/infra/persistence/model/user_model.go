// Package model contains the GORM persistence models mirroring the database tables.
package model

// UserModel mirrors the 'users' table. IDs come from the table's sequence.
type UserModel struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(255);unique"`
	PasswordHash string `gorm:"type:varchar(255);column:password_hash"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
