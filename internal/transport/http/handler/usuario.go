package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"barberbook/internal/app"
	"barberbook/internal/transport/http/response"
)

// Messages kept byte-for-byte compatible with the previous deployment,
// including the untranslated pt-BR wording.
const (
	MsgUsuarioDuplicado = "Usuario de mesmo email e senha já salvo na base :/"
	MsgUsuarioSaveFail  = "Não foi possível salvar novo item :/"
	MsgUsuarioNotFound  = "Usuario não encontrado na base :/"
	MsgUsuarioRemovido  = "Usuario removido com sucesso"
)

type UsuarioHandler struct {
	usuarioService *app.UsuarioService
}

type CreateUsuarioRequest struct {
	Nome  string `form:"nome" binding:"required,max=140"`
	Email string `form:"email" binding:"required,max=255"`
	Senha string `form:"senha" binding:"required,max=150"`
}

type BuscaUsuarioRequest struct {
	UsuarioID uint `form:"usuario_id" binding:"required"`
}

func NewUsuarioHandler(usuarioService *app.UsuarioService) *UsuarioHandler {
	return &UsuarioHandler{usuarioService: usuarioService}
}

func (h *UsuarioHandler) Create(c *gin.Context) {
	var req CreateUsuarioRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, MsgUsuarioSaveFail)
		return
	}

	usuario, err := h.usuarioService.Register(c.Request.Context(), app.RegisterInput{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsuarioDuplicado):
			response.Error(c, http.StatusConflict, MsgUsuarioDuplicado)
		default:
			response.Error(c, http.StatusBadRequest, MsgUsuarioSaveFail)
		}
		return
	}

	c.JSON(http.StatusOK, response.NewUsuarioView(usuario))
}

func (h *UsuarioHandler) List(c *gin.Context) {
	usuarios, err := h.usuarioService.ListUsuarios(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Erro ao listar usuários :/")
		return
	}

	c.JSON(http.StatusOK, response.NewListagemUsuarios(usuarios))
}

func (h *UsuarioHandler) Get(c *gin.Context) {
	var req BuscaUsuarioRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusNotFound, MsgUsuarioNotFound)
		return
	}

	usuario, err := h.usuarioService.GetUsuario(c.Request.Context(), req.UsuarioID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsuarioNotFound), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusNotFound, MsgUsuarioNotFound)
		default:
			response.Error(c, http.StatusInternalServerError, "Erro ao buscar usuário :/")
		}
		return
	}

	c.JSON(http.StatusOK, response.NewUsuarioView(usuario))
}

func (h *UsuarioHandler) Delete(c *gin.Context) {
	var req BuscaUsuarioRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusNotFound, response.Mensagem{Message: MsgUsuarioNotFound})
		return
	}

	err := h.usuarioService.DeleteUsuario(c.Request.Context(), req.UsuarioID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUsuarioNotFound), errors.Is(err, app.ErrInvalidInput):
			c.JSON(http.StatusNotFound, response.Mensagem{Message: MsgUsuarioNotFound})
		default:
			c.JSON(http.StatusInternalServerError, response.Mensagem{
				Message: fmt.Sprintf("Erro ao deletar o usuário: %s", err),
			})
		}
		return
	}

	c.JSON(http.StatusOK, response.RemocaoConfirmada{
		Message: MsgUsuarioRemovido,
		ID:      req.UsuarioID,
	})
}
