package app

import (
	"context"
	"errors"
	"log/slog"

	"barberbook/internal/model"
	"barberbook/internal/repository"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUsuarioDuplicado = errors.New("usuario with same email and senha already exists")
	ErrUsuarioNotFound  = errors.New("usuario not found")
)

// AuditPublisher enqueues audit events for asynchronous persistence. A nil
// publisher disables auditing; publish failures never fail the operation.
type AuditPublisher interface {
	Publish(ctx context.Context, event model.AuditEvent) error
}

// UsuarioCache holds usuario rows keyed by id for the lookup endpoint.
type UsuarioCache interface {
	GetUsuario(ctx context.Context, id uint) (*model.Usuario, bool, error)
	SetUsuario(ctx context.Context, usuario *model.Usuario) error
	DeleteUsuario(ctx context.Context, id uint) error
}

type UsuarioService struct {
	usuarioRepo *repository.UsuarioRepository
	cache       UsuarioCache
	publisher   AuditPublisher
}

type RegisterInput struct {
	Nome  string
	Email string
	Senha string
}

func NewUsuarioService(usuarioRepo *repository.UsuarioRepository, cache UsuarioCache, publisher AuditPublisher) *UsuarioService {
	return &UsuarioService{
		usuarioRepo: usuarioRepo,
		cache:       cache,
		publisher:   publisher,
	}
}

func (s *UsuarioService) Register(ctx context.Context, input RegisterInput) (*model.Usuario, error) {
	// Values are stored exactly as received; the only validation is the
	// required check the binding layer also performs.
	if input.Nome == "" || input.Email == "" || input.Senha == "" {
		return nil, ErrInvalidInput
	}

	usuario := &model.Usuario{
		Nome:  input.Nome,
		Email: input.Email,
		Senha: input.Senha,
	}
	if err := s.usuarioRepo.Create(ctx, usuario); err != nil {
		if repository.IsDuplicateEntry(err) {
			return nil, ErrUsuarioDuplicado
		}
		return nil, err
	}

	s.audit(ctx, model.AcaoUsuarioCriado, usuario.ID, usuario.Email)
	return usuario, nil
}

func (s *UsuarioService) ListUsuarios(ctx context.Context) ([]model.Usuario, error) {
	return s.usuarioRepo.List(ctx)
}

func (s *UsuarioService) GetUsuario(ctx context.Context, id uint) (*model.Usuario, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	slog.Info("coletando dados sobre usuario", "usuario_id", id)

	if s.cache != nil {
		if cached, hit, err := s.cache.GetUsuario(ctx, id); err == nil && hit {
			return cached, nil
		}
	}

	usuario, err := s.usuarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		slog.Warn("usuario não encontrado na base", "usuario_id", id)
		return nil, ErrUsuarioNotFound
	}

	if s.cache != nil {
		_ = s.cache.SetUsuario(ctx, usuario)
	}
	return usuario, nil
}

func (s *UsuarioService) DeleteUsuario(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrInvalidInput
	}

	removed, err := s.usuarioRepo.DeleteWithAgendamentos(ctx, id)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrUsuarioNotFound
	}

	if s.cache != nil {
		_ = s.cache.DeleteUsuario(ctx, id)
	}
	s.audit(ctx, model.AcaoUsuarioRemovido, id, "")
	return nil
}

func (s *UsuarioService) audit(ctx context.Context, acao string, id uint, detalhe string) {
	if s.publisher == nil {
		return
	}
	event := model.AuditEvent{
		Acao:       acao,
		Entidade:   "usuario",
		EntidadeID: id,
		Detalhe:    detalhe,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.Warn("publish audit event failed", "acao", acao, "error", err)
	}
}
