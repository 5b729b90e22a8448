package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DocsHandler struct {
	appName string
}

func NewDocsHandler(appName string) *DocsHandler {
	return &DocsHandler{appName: appName}
}

// Home preserves the original behavior of redirecting the root path to the
// API documentation.
func (h *DocsHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/openapi")
}

// Index serves a minimal OpenAPI description of the booking surface.
func (h *DocsHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"openapi": "3.0.0",
		"info": gin.H{
			"title":   h.appName,
			"version": "1.0.0",
		},
		"paths": gin.H{
			"/usuario": gin.H{
				"post":   gin.H{"summary": "Adiciona um novo usuario", "responses": gin.H{"200": gin.H{}, "409": gin.H{}, "400": gin.H{}}},
				"get":    gin.H{"summary": "Busca um usuario pelo id", "responses": gin.H{"200": gin.H{}, "404": gin.H{}}},
				"delete": gin.H{"summary": "Remove um usuario pelo id", "responses": gin.H{"200": gin.H{}, "404": gin.H{}, "500": gin.H{}}},
			},
			"/usuarios": gin.H{
				"get": gin.H{"summary": "Lista todos os usuarios", "responses": gin.H{"200": gin.H{}}},
			},
			"/agendamento": gin.H{
				"post": gin.H{"summary": "Adiciona um agendamento de corte", "responses": gin.H{"200": gin.H{}, "404": gin.H{}}},
			},
			"/agendamento/{agendamento_id}": gin.H{
				"put": gin.H{"summary": "Edita um agendamento de corte", "responses": gin.H{"200": gin.H{}, "404": gin.H{}}},
			},
		},
	})
}
