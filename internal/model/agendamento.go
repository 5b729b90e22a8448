package model

import "time"

// Agendamento is one haircut booking owned by a Usuario. Cut date and time
// are free-form strings, matching the legacy schema.
type Agendamento struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BarbeiroCorte string    `gorm:"size:255" json:"barbeiro_corte"`
	DataCorte     string    `gorm:"size:255" json:"data_corte"`
	HorarioCorte  string    `gorm:"size:255" json:"horario_corte"`
	TipoCorte     string    `gorm:"size:100" json:"tipo_corte"`
	ValorCorte    float64   `json:"valor_corte"`
	DataInsercao  time.Time `gorm:"autoCreateTime" json:"data_insercao"`
	UsuarioID     uint      `gorm:"not null;index" json:"usuario_id"`
}

func (Agendamento) TableName() string {
	return "usuario_agendamento"
}
