package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "barberbook/internal/app"
	"barberbook/internal/bootstrap"
	"barberbook/internal/cache"
	"barberbook/internal/platform/rabbitmq"
	"barberbook/internal/repository"
	"barberbook/internal/transport/http/handler"
	"barberbook/internal/transport/http/middleware"
)

// NewRouter wires repositories, services and handlers onto the gin engine.
// Bootstrap fails startup when Redis or RabbitMQ is unreachable; the nil
// branches below exist for callers that assemble a partial App, such as
// tests, where the lookup cache and audit trail are simply disabled.
func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.CORS(app.Config.App.CORSOrigins))

	usuarioRepo := repository.NewUsuarioRepository(app.MySQL)
	agendamentoRepo := repository.NewAgendamentoRepository(app.MySQL)

	var usuarioCache appsvc.UsuarioCache
	if app.Redis != nil {
		usuarioCache = cache.NewUsuarioCache(app.Redis, time.Duration(app.Config.Redis.UsuarioTTLSeconds)*time.Second)
	}

	var publisher appsvc.AuditPublisher
	if app.MQConn != nil {
		publisher = rabbitmq.NewAuditPublisher(app.MQConn, app.Config.RabbitMQ.AuditQueue)
	}

	usuarioService := appsvc.NewUsuarioService(usuarioRepo, usuarioCache, publisher)
	agendamentoService := appsvc.NewAgendamentoService(agendamentoRepo, usuarioRepo, publisher)

	usuarioHandler := handler.NewUsuarioHandler(usuarioService)
	agendamentoHandler := handler.NewAgendamentoHandler(agendamentoService)
	healthHandler := handler.NewHealthHandler(app)
	docsHandler := handler.NewDocsHandler(app.Config.App.Name)

	router.GET("/", docsHandler.Home)
	router.GET("/openapi", docsHandler.Index)
	router.GET("/healthz", healthHandler.Check)

	router.POST("/usuario", usuarioHandler.Create)
	router.GET("/usuarios", usuarioHandler.List)
	router.GET("/usuario", usuarioHandler.Get)
	router.DELETE("/usuario", usuarioHandler.Delete)

	router.POST("/agendamento", agendamentoHandler.Create)
	router.PUT("/agendamento/:agendamento_id", agendamentoHandler.Edit)

	return router
}
