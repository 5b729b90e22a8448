package repository

import (
	"context"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"barberbook/internal/model"
)

type UsuarioRepository struct {
	db *gorm.DB
}

func NewUsuarioRepository(db *gorm.DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *model.Usuario) error {
	if err := r.db.WithContext(ctx).Create(usuario).Error; err != nil {
		return fmt.Errorf("create usuario failed: %w", err)
	}
	return nil
}

func (r *UsuarioRepository) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	if err := r.db.WithContext(ctx).Find(&usuarios).Error; err != nil {
		return nil, fmt.Errorf("list usuarios failed: %w", err)
	}
	return usuarios, nil
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var usuario model.Usuario
	if err := r.db.WithContext(ctx).First(&usuario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query usuario by id failed: %w", err)
	}
	return &usuario, nil
}

// DeleteWithAgendamentos removes the usuario and its agendamentos in a single
// transaction, so a failure midway leaves the store untouched. The returned
// count is the number of usuario rows removed; zero means the id did not
// exist.
func (r *UsuarioRepository) DeleteWithAgendamentos(ctx context.Context, id uint) (int64, error) {
	var removed int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("usuario_id = ?", id).Delete(&model.Agendamento{}).Error; err != nil {
			return fmt.Errorf("delete agendamentos of usuario failed: %w", err)
		}
		res := tx.Delete(&model.Usuario{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete usuario failed: %w", res.Error)
		}
		removed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// IsDuplicateEntry reports whether err is a unique-constraint violation,
// raised on insert when the (email, senha) pair already exists.
func IsDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysqldriver.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
