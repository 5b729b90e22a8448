package response

import (
	"github.com/gin-gonic/gin"

	"barberbook/internal/model"
)

// UsuarioView is the usuario projection returned by every usuario endpoint.
// Senha is never part of any response.
type UsuarioView struct {
	ID    uint   `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type ListagemUsuarios struct {
	Usuarios []UsuarioView `json:"usuarios"`
}

type AgendamentoView struct {
	ID            uint    `json:"id"`
	BarbeiroCorte string  `json:"barbeiro_corte"`
	DataCorte     string  `json:"data_corte"`
	HorarioCorte  string  `json:"horario_corte"`
	TipoCorte     string  `json:"tipo_corte"`
	ValorCorte    float64 `json:"valor_corte"`
	UsuarioID     uint    `json:"usuario_id"`
}

// Erro keeps the historical "mesage" key; existing clients parse it as-is.
type Erro struct {
	Mesage string `json:"mesage"`
}

// Mensagem is the body shape of the delete endpoint, which predates Erro and
// spells the key correctly.
type Mensagem struct {
	Message string `json:"message"`
}

type RemocaoConfirmada struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

func NewUsuarioView(usuario *model.Usuario) UsuarioView {
	return UsuarioView{
		ID:    usuario.ID,
		Nome:  usuario.Nome,
		Email: usuario.Email,
	}
}

func NewListagemUsuarios(usuarios []model.Usuario) ListagemUsuarios {
	views := make([]UsuarioView, 0, len(usuarios))
	for i := range usuarios {
		views = append(views, NewUsuarioView(&usuarios[i]))
	}
	return ListagemUsuarios{Usuarios: views}
}

func NewAgendamentoView(agendamento *model.Agendamento) AgendamentoView {
	return AgendamentoView{
		ID:            agendamento.ID,
		BarbeiroCorte: agendamento.BarbeiroCorte,
		DataCorte:     agendamento.DataCorte,
		HorarioCorte:  agendamento.HorarioCorte,
		TipoCorte:     agendamento.TipoCorte,
		ValorCorte:    agendamento.ValorCorte,
		UsuarioID:     agendamento.UsuarioID,
	}
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Erro{Mesage: message})
}
