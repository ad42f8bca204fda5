package api

import (
	"database/sql"
	"fmt"
	stdhttp "net/http"

	intconfig "busstation/internal/config"
	intdb "busstation/internal/db"
	h "busstation/internal/http/handlers"
	"busstation/internal/http/middleware"
	"busstation/internal/http/views"
	"busstation/internal/repositories"
	"busstation/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps are the explicit dependencies the HTTP layer is built from.
type Deps struct {
	DB      *sql.DB
	Dialect intdb.Dialect
	Log     *zap.Logger
}

func NewRouter(env intconfig.Env, deps Deps) (*gin.Engine, error) {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	tmpl, err := views.Load()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.RequestID(), middleware.Logger(log), middleware.Recovery(log), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(stdhttp.StatusMethodNotAllowed, gin.H{
			"error":  "method not allowed",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	repo := repositories.RecordRepository{DB: deps.DB, Dialect: deps.Dialect}
	records := h.NewRecordHandler(services.RecordService{Repo: repo, Log: log})
	docs := &h.DocsHandler{Docs: services.DocsService{Repo: repo, Log: log}}
	system := &h.SystemHandler{DB: deps.DB, Dialect: deps.Dialect, Engine: r}

	r.GET("/health", system.Health)
	r.GET("/db-check", system.DBCheck)
	r.GET("/routes", system.Routes)

	r.GET("/", records.Index)
	r.GET("/table/:name", records.List)
	r.GET("/add/:name", records.AddForm)
	r.POST("/add/:name", records.Add)
	r.GET("/edit/:name/:id", records.EditForm)
	r.POST("/edit/:name/:id", records.Edit)
	r.POST("/delete/:name/:id", records.Delete)

	r.GET("/ticket/:id/pdf", docs.TicketPDF)

	return r, nil
}
