package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"barberbook/internal/model"
	"barberbook/internal/repository"
)

var ErrAgendamentoNotFound = errors.New("agendamento not found")

type AgendamentoService struct {
	agendamentoRepo *repository.AgendamentoRepository
	usuarioRepo     *repository.UsuarioRepository
	publisher       AuditPublisher
}

type CreateAgendamentoInput struct {
	UsuarioID     uint
	BarbeiroCorte string
	DataCorte     string
	HorarioCorte  string
	TipoCorte     string
	ValorCorte    float64
}

type EditAgendamentoInput struct {
	BarbeiroCorte string
	DataCorte     string
	HorarioCorte  string
	TipoCorte     string
	ValorCorte    float64
}

func NewAgendamentoService(agendamentoRepo *repository.AgendamentoRepository, usuarioRepo *repository.UsuarioRepository, publisher AuditPublisher) *AgendamentoService {
	return &AgendamentoService{
		agendamentoRepo: agendamentoRepo,
		usuarioRepo:     usuarioRepo,
		publisher:       publisher,
	}
}

// Create persists a new agendamento for an existing usuario and returns the
// owning usuario. The existence check runs before any mutation, so a booking
// can never reference a missing usuario.
func (s *AgendamentoService) Create(ctx context.Context, input CreateAgendamentoInput) (*model.Usuario, error) {
	if input.UsuarioID == 0 {
		return nil, ErrInvalidInput
	}

	usuario, err := s.usuarioRepo.GetByID(ctx, input.UsuarioID)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		slog.Warn("agendamento para usuario inexistente", "usuario_id", input.UsuarioID)
		return nil, ErrUsuarioNotFound
	}

	agendamento := &model.Agendamento{
		BarbeiroCorte: input.BarbeiroCorte,
		DataCorte:     input.DataCorte,
		HorarioCorte:  input.HorarioCorte,
		TipoCorte:     input.TipoCorte,
		ValorCorte:    input.ValorCorte,
		UsuarioID:     usuario.ID,
	}
	if err := s.agendamentoRepo.Create(ctx, agendamento); err != nil {
		return nil, err
	}

	s.auditAgendamento(ctx, model.AcaoAgendamentoCriado, agendamento)
	return usuario, nil
}

// Edit replaces all five editable fields unconditionally. The owning usuario
// cannot be reassigned through this operation.
func (s *AgendamentoService) Edit(ctx context.Context, id uint, input EditAgendamentoInput) (*model.Agendamento, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}

	agendamento, err := s.agendamentoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agendamento == nil {
		return nil, ErrAgendamentoNotFound
	}

	agendamento.BarbeiroCorte = input.BarbeiroCorte
	agendamento.DataCorte = input.DataCorte
	agendamento.HorarioCorte = input.HorarioCorte
	agendamento.TipoCorte = input.TipoCorte
	agendamento.ValorCorte = input.ValorCorte
	if err := s.agendamentoRepo.Update(ctx, agendamento); err != nil {
		return nil, err
	}

	s.auditAgendamento(ctx, model.AcaoAgendamentoEditado, agendamento)
	return agendamento, nil
}

func (s *AgendamentoService) auditAgendamento(ctx context.Context, acao string, agendamento *model.Agendamento) {
	if s.publisher == nil {
		return
	}
	event := model.AuditEvent{
		Acao:       acao,
		Entidade:   "agendamento",
		EntidadeID: agendamento.ID,
		Detalhe:    fmt.Sprintf("usuario_id=%d data=%s horario=%s", agendamento.UsuarioID, agendamento.DataCorte, agendamento.HorarioCorte),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Warn("publish audit event failed", "acao", acao, "error", err)
	}
}
