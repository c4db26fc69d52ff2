package db_models

type User struct {
	BaseModel
	Username     string `gorm:"size:50;uniqueIndex"`
	PasswordHash string
	Email        string `gorm:"size:100;uniqueIndex"`
	FullName     string `gorm:"size:100"`
	IsActive     bool   `gorm:"default:true"`
}
