package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook/internal/model"
)

func TestAgendamentoRepositoryCreate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgendamentoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuario_agendamento`").
		WithArgs("Carlos Henrique", "14/10/2024", "10:00", "Máquina e Tesoura", 50.0, sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(4, 1))
	mock.ExpectCommit()

	agendamento := &model.Agendamento{
		BarbeiroCorte: "Carlos Henrique",
		DataCorte:     "14/10/2024",
		HorarioCorte:  "10:00",
		TipoCorte:     "Máquina e Tesoura",
		ValorCorte:    50.0,
		UsuarioID:     1,
	}
	err := repo.Create(context.Background(), agendamento)
	require.NoError(t, err)
	assert.Equal(t, uint(4), agendamento.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgendamentoRepositoryGetByIDMissing(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgendamentoRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `usuario_agendamento`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	agendamento, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, agendamento)
}

func TestAgendamentoRepositoryUpdate(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAgendamentoRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `usuario_agendamento` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(context.Background(), &model.Agendamento{
		ID:            4,
		BarbeiroCorte: "João Pedro",
		DataCorte:     "15/10/2024",
		HorarioCorte:  "11:00",
		TipoCorte:     "Tesoura",
		ValorCorte:    40.0,
		UsuarioID:     1,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
