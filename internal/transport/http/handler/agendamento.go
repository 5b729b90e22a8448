package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"barberbook/internal/app"
	"barberbook/internal/transport/http/response"
)

const (
	MsgAgendamentoUsuarioNotFound = "Usuario não encontrado na base"
	MsgAgendamentoNotFound        = "Agendamento não encontrado na base"
	MsgAgendamentoInvalido        = "Não foi possível processar o agendamento :/"
)

type AgendamentoHandler struct {
	agendamentoService *app.AgendamentoService
}

type CreateAgendamentoRequest struct {
	UsuarioID     uint    `form:"usuario_id" binding:"required"`
	BarbeiroCorte string  `form:"barbeiro_corte" binding:"max=255"`
	DataCorte     string  `form:"data_corte" binding:"max=255"`
	HorarioCorte  string  `form:"horario_corte" binding:"max=255"`
	TipoCorte     string  `form:"tipo_corte" binding:"max=100"`
	ValorCorte    float64 `form:"valor_corte"`
}

type EditAgendamentoRequest struct {
	BarbeiroCorte string  `form:"barbeiro_corte" binding:"max=255"`
	DataCorte     string  `form:"data_corte" binding:"max=255"`
	HorarioCorte  string  `form:"horario_corte" binding:"max=255"`
	TipoCorte     string  `form:"tipo_corte" binding:"max=100"`
	ValorCorte    float64 `form:"valor_corte"`
}

func NewAgendamentoHandler(agendamentoService *app.AgendamentoService) *AgendamentoHandler {
	return &AgendamentoHandler{agendamentoService: agendamentoService}
}

// Create books a haircut for an existing usuario and answers with the owner's
// projection, matching the contract of the previous deployment.
func (h *AgendamentoHandler) Create(c *gin.Context) {
	var req CreateAgendamentoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, MsgAgendamentoInvalido)
		return
	}

	usuario, err := h.agendamentoService.Create(c.Request.Context(), app.CreateAgendamentoInput{
		UsuarioID:     req.UsuarioID,
		BarbeiroCorte: req.BarbeiroCorte,
		DataCorte:     req.DataCorte,
		HorarioCorte:  req.HorarioCorte,
		TipoCorte:     req.TipoCorte,
		ValorCorte:    req.ValorCorte,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsuarioNotFound), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusNotFound, MsgAgendamentoUsuarioNotFound)
		default:
			response.Error(c, http.StatusInternalServerError, MsgAgendamentoInvalido)
		}
		return
	}

	c.JSON(http.StatusOK, response.NewUsuarioView(usuario))
}

// Edit replaces every editable field of an existing agendamento.
func (h *AgendamentoHandler) Edit(c *gin.Context) {
	agendamentoID64, err := strconv.ParseUint(c.Param("agendamento_id"), 10, 64)
	if err != nil || agendamentoID64 == 0 {
		response.Error(c, http.StatusNotFound, MsgAgendamentoNotFound)
		return
	}

	var req EditAgendamentoRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, MsgAgendamentoInvalido)
		return
	}

	agendamento, err := h.agendamentoService.Edit(c.Request.Context(), uint(agendamentoID64), app.EditAgendamentoInput{
		BarbeiroCorte: req.BarbeiroCorte,
		DataCorte:     req.DataCorte,
		HorarioCorte:  req.HorarioCorte,
		TipoCorte:     req.TipoCorte,
		ValorCorte:    req.ValorCorte,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrAgendamentoNotFound), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusNotFound, MsgAgendamentoNotFound)
		default:
			response.Error(c, http.StatusInternalServerError, MsgAgendamentoInvalido)
		}
		return
	}

	c.JSON(http.StatusOK, response.NewAgendamentoView(agendamento))
}
