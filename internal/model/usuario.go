package model

import "time"

// Usuario keeps the legacy table and primary-key column names so the schema
// stays compatible with databases created by the previous deployment.
type Usuario struct {
	ID           uint      `gorm:"column:pk_usuario;primaryKey" json:"id"`
	Nome         string    `gorm:"size:140" json:"nome"`
	Email        string    `gorm:"size:255;not null;uniqueIndex:usuario_unique_id" json:"email"`
	Senha        string    `gorm:"size:150;not null;uniqueIndex:usuario_unique_id" json:"-"`
	DataInsercao time.Time `gorm:"autoCreateTime" json:"data_insercao"`
}

func (Usuario) TableName() string {
	return "usuario_lista"
}
