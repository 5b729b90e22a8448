package app

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barberbook/internal/model"
	"barberbook/internal/repository"
)

func TestAgendamentoServiceCreate(t *testing.T) {
	db, mock := newTestDB(t)
	publisher := &fakePublisher{}
	service := NewAgendamentoService(
		repository.NewAgendamentoRepository(db),
		repository.NewUsuarioRepository(db),
		publisher,
	)

	usuarioRows := sqlmock.NewRows([]string{"pk_usuario", "nome", "email", "senha"}).
		AddRow(1, "Pablo Lima", "pablo@gmail.com", "123456")
	mock.ExpectQuery("SELECT \\* FROM `usuario_lista`").WillReturnRows(usuarioRows)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuario_agendamento`").
		WithArgs("Carlos Henrique", "14/10/2024", "10:00", "Máquina e Tesoura", 50.0, sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	usuario, err := service.Create(context.Background(), CreateAgendamentoInput{
		UsuarioID:     1,
		BarbeiroCorte: "Carlos Henrique",
		DataCorte:     "14/10/2024",
		HorarioCorte:  "10:00",
		TipoCorte:     "Máquina e Tesoura",
		ValorCorte:    50.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pablo Lima", usuario.Nome)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, model.AcaoAgendamentoCriado, publisher.events[0].Acao)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgendamentoServiceCreateUsuarioMissing(t *testing.T) {
	db, mock := newTestDB(t)
	publisher := &fakePublisher{}
	service := NewAgendamentoService(
		repository.NewAgendamentoRepository(db),
		repository.NewUsuarioRepository(db),
		publisher,
	)

	mock.ExpectQuery("SELECT \\* FROM `usuario_lista`").
		WillReturnRows(sqlmock.NewRows([]string{"pk_usuario"}))

	_, err := service.Create(context.Background(), CreateAgendamentoInput{UsuarioID: 999999})
	assert.ErrorIs(t, err, ErrUsuarioNotFound)
	assert.Empty(t, publisher.events)
	// nothing was inserted
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAgendamentoServiceEdit(t *testing.T) {
	db, mock := newTestDB(t)
	publisher := &fakePublisher{}
	service := NewAgendamentoService(
		repository.NewAgendamentoRepository(db),
		repository.NewUsuarioRepository(db),
		publisher,
	)

	rows := sqlmock.NewRows([]string{"id", "barbeiro_corte", "data_corte", "horario_corte", "tipo_corte", "valor_corte", "usuario_id"}).
		AddRow(4, "Carlos Henrique", "14/10/2024", "10:00", "Máquina e Tesoura", 50.0, 1)
	mock.ExpectQuery("SELECT \\* FROM `usuario_agendamento`").WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `usuario_agendamento` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	agendamento, err := service.Edit(context.Background(), 4, EditAgendamentoInput{
		BarbeiroCorte: "João Pedro",
		DataCorte:     "15/10/2024",
		HorarioCorte:  "11:00",
		TipoCorte:     "Tesoura",
		ValorCorte:    40.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "João Pedro", agendamento.BarbeiroCorte)
	assert.Equal(t, "15/10/2024", agendamento.DataCorte)
	assert.Equal(t, "11:00", agendamento.HorarioCorte)
	assert.Equal(t, "Tesoura", agendamento.TipoCorte)
	assert.Equal(t, 40.0, agendamento.ValorCorte)
	assert.Equal(t, uint(1), agendamento.UsuarioID)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, model.AcaoAgendamentoEditado, publisher.events[0].Acao)
}

func TestAgendamentoServiceEditMissing(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewAgendamentoService(
		repository.NewAgendamentoRepository(db),
		repository.NewUsuarioRepository(db),
		nil,
	)

	mock.ExpectQuery("SELECT \\* FROM `usuario_agendamento`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := service.Edit(context.Background(), 42, EditAgendamentoInput{})
	assert.ErrorIs(t, err, ErrAgendamentoNotFound)
}
