package app

import (
	"github.com/RaulLuz/kanban-spec/internal/cache"
	"github.com/RaulLuz/kanban-spec/internal/config"
	"github.com/RaulLuz/kanban-spec/internal/handlers"
	"github.com/RaulLuz/kanban-spec/internal/repo"
	"github.com/RaulLuz/kanban-spec/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	var (
		boardRepo   repo.BoardRepo
		columnRepo  repo.ColumnRepo
		taskRepo    repo.TaskRepo
		subtaskRepo repo.SubtaskRepo
		themeRepo   repo.ThemeRepo
	)
	if cfg.Storage.Driver == config.DriverPostgres {
		boardRepo = repo.NewPGBoardRepo(db)
		columnRepo = repo.NewPGColumnRepo(db)
		taskRepo = repo.NewPGTaskRepo(db)
		subtaskRepo = repo.NewPGSubtaskRepo(db)
		themeRepo = repo.NewPGThemeRepo(db)
	} else {
		mem := repo.NewMemoryStore()
		boardRepo = mem
		columnRepo = mem.ColumnRepo()
		taskRepo = mem.TaskRepo()
		subtaskRepo = mem.SubtaskRepo()
		themeRepo = mem
	}

	var c *cache.Cache
	if rdb != nil {
		c = cache.New(rdb, cfg.Redis.DefaultTTL.Duration())
	}

	boardSvc := service.NewBoardService(boardRepo, c)
	columnSvc := service.NewColumnService(columnRepo, boardRepo, c)
	taskSvc := service.NewTaskService(taskRepo, columnRepo, c)
	subtaskSvc := service.NewSubtaskService(subtaskRepo, taskRepo, c)
	themeSvc := service.NewThemeService(themeRepo)

	api := r.Group("/api/v1")
	registerBoardRoutes(api, handlers.NewBoardHandler(boardSvc, columnSvc, taskSvc))
	registerColumnRoutes(api, handlers.NewColumnHandler(columnSvc, taskSvc))
	registerTaskRoutes(api, handlers.NewTaskHandler(taskSvc, subtaskSvc))
	registerSubtaskRoutes(api, handlers.NewSubtaskHandler(subtaskSvc))
	registerThemeRoutes(api, handlers.NewThemeHandler(themeSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Kanban API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerBoardRoutes(api *gin.RouterGroup, h *handlers.BoardHandler) {
	api.GET("/boards", h.List)
	api.POST("/boards", h.Create)
	api.GET("/boards/:id", h.Get)
	api.PATCH("/boards/:id", h.Update)
	api.DELETE("/boards/:id", h.Delete)
	api.GET("/boards/:id/columns", h.Columns)
	api.GET("/boards/:id/tasks", h.Tasks)
}

func registerColumnRoutes(api *gin.RouterGroup, h *handlers.ColumnHandler) {
	api.POST("/columns", h.Create)
	api.GET("/columns/:id", h.Get)
	api.PATCH("/columns/:id", h.Update)
	api.DELETE("/columns/:id", h.Delete)
	api.GET("/columns/:id/tasks", h.Tasks)
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks/:id", h.Get)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/move", h.Move)
	api.GET("/tasks/:id/subtasks", h.Subtasks)
	api.POST("/tasks/:id/subtasks", h.CreateSubtask)
}

func registerSubtaskRoutes(api *gin.RouterGroup, h *handlers.SubtaskHandler) {
	api.POST("/subtasks", h.Create)
	api.GET("/subtasks/:id", h.Get)
	api.PATCH("/subtasks/:id", h.Update)
	api.DELETE("/subtasks/:id", h.Delete)
	api.POST("/subtasks/:id/toggle", h.Toggle)
}

func registerThemeRoutes(api *gin.RouterGroup, h *handlers.ThemeHandler) {
	api.GET("/theme", h.Get)
	api.PUT("/theme", h.Set)
	api.POST("/theme/toggle", h.Toggle)
}
