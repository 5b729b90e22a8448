package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"barberbook/internal/model"
)

type AgendamentoRepository struct {
	db *gorm.DB
}

func NewAgendamentoRepository(db *gorm.DB) *AgendamentoRepository {
	return &AgendamentoRepository{db: db}
}

func (r *AgendamentoRepository) Create(ctx context.Context, agendamento *model.Agendamento) error {
	if err := r.db.WithContext(ctx).Create(agendamento).Error; err != nil {
		return fmt.Errorf("create agendamento failed: %w", err)
	}
	return nil
}

func (r *AgendamentoRepository) GetByID(ctx context.Context, id uint) (*model.Agendamento, error) {
	var agendamento model.Agendamento
	if err := r.db.WithContext(ctx).First(&agendamento, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query agendamento by id failed: %w", err)
	}
	return &agendamento, nil
}

func (r *AgendamentoRepository) Update(ctx context.Context, agendamento *model.Agendamento) error {
	if err := r.db.WithContext(ctx).Save(agendamento).Error; err != nil {
		return fmt.Errorf("update agendamento failed: %w", err)
	}
	return nil
}
