package model

import "time"

// Audit actions published by the services and persisted by the worker.
const (
	AcaoUsuarioCriado      = "usuario.criado"
	AcaoUsuarioRemovido    = "usuario.removido"
	AcaoAgendamentoCriado  = "agendamento.criado"
	AcaoAgendamentoEditado = "agendamento.editado"
)

type AuditEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Acao       string    `gorm:"size:32;not null;index" json:"acao"`
	Entidade   string    `gorm:"size:32;not null" json:"entidade"`
	EntidadeID uint      `gorm:"not null" json:"entidade_id"`
	Detalhe    string    `gorm:"type:text" json:"detalhe"`
	CreatedAt  time.Time `json:"created_at"`
}

func (AuditEvent) TableName() string {
	return "audit_eventos"
}
