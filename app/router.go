// Package app wires the HTTP surface on top of the core services
package app

import (
	"fmt"
	"time"

	"filedrop/file-api/app/file"
	"filedrop/file-api/app/root"
	"filedrop/file-api/app/user"
	"filedrop/file-api/db"
	"filedrop/file-api/internal"
	"filedrop/file-api/internal/service"
	"filedrop/file-api/internal/storage"
	"filedrop/file-api/pkg/middleware"
	"filedrop/file-api/pkg/security"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewRouter() (*gin.Engine, error) {
	makeLogger()

	database, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	store, err := storage.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob storage, %w", err)
	}

	secret := []byte(viper.GetString("jwt.secret"))

	d := &internal.Deps{
		DB:     database,
		Hasher: security.NewHasher(),
		Store:  store,
	}
	d.Identity = service.NewIdentity(database, d.Hasher, secret)
	d.Files = service.NewFiles(database, store)

	return buildRouter(d, secret), nil
}

func buildRouter(d *internal.Deps, secret []byte) *gin.Engine {
	router := gin.New()

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("host.cors_origins"),
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS", "HEAD"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("requestID", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 5 << 20

	jwt := middleware.NewJWTMiddleware(secret)
	maxUploadSize := viper.GetInt64("upload.max_size")
	cacheStore := persist.NewMemoryStore(time.Minute)

	m := router.Group("/api")
	{
		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		m.HEAD("/heartbeat", root.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		m.HEAD("/validate", jwt, root.Validate)
	}

	u := m.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/users 		-> Registers a new user
		u.POST("", func(c *gin.Context) { user.UserRegister(c, d) })

		// POST /api/users/login 	-> Logs in a user and returns a JWT token
		u.POST("/login", func(c *gin.Context) { user.UserLogin(c, d) })
	}

	f := m.Group("/files")
	{
		// GET /api/files/public	-> Lists public files, no login needed
		f.GET("/public", cache.CacheByRequestURI(cacheStore, 30*time.Second), func(c *gin.Context) { file.FilePublic(c, d) })

		// GET /api/files 		-> Lists the files owned by the caller
		f.GET("", jwt, func(c *gin.Context) { file.FileOwned(c, d) })

		// POST /api/files         	-> Stores a new file and records it in the database
		f.POST("", jwt, middleware.BodySizeLimiter(maxUploadSize+(1<<20)), func(c *gin.Context) { file.FileUpload(c, d) })

		// DELETE /api/files/:id	-> Deletes a file owned by the caller
		f.DELETE("/:id", jwt, func(c *gin.Context) { file.FileDelete(c, d) })
	}

	return router
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
