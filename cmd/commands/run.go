package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"fotolio"
	"fotolio/config"
	"fotolio/internal/application/usecase"
	"fotolio/internal/domain/repository/blob"
	brokerRepository "fotolio/internal/domain/repository/broker"
	"fotolio/internal/infrastructure/blobfs"
	"fotolio/internal/infrastructure/broker"
	"fotolio/internal/infrastructure/database"
	"fotolio/internal/infrastructure/minio"
	"fotolio/internal/presentation/handler"
	"fotolio/internal/presentation/middleware"
	"fotolio/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	log := logger.New(cfg.Logger)

	log.Info("running fotolio", "version", fotolio.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			log.Error("failed to disconnect database", "err", err)
		}
	}()

	userRepo := database.NewUserRepository(db, log)
	albumRepo := database.NewAlbumRepository(db, log)
	photoRepo := database.NewPhotoRepository(db, log)

	blobStore, err := newBlobStore(cfg, log)
	if err != nil {
		ExitOnError(err)
	}

	var publisher brokerRepository.Publisher = broker.NoopPublisher{}
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig, log)
	}

	userService := usecase.NewUserService(userRepo, log)
	albumService := usecase.NewAlbumService(albumRepo, photoRepo, log)
	photoService := usecase.NewPhotoService(photoRepo, blobStore, publisher, log)

	authHandler := handler.NewAuthHandler(userService, cfg.Auth, log)
	albumHandler := handler.NewAlbumHandler(albumService)
	photoHandler := handler.NewPhotoHandler(photoService, blobStore, log)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodPatch, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.Server.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.POST("/auth/register", authHandler.HandleRegister)
	e.POST("/auth/login", authHandler.HandleLogin)

	api := e.Group("", middleware.Auth(cfg.Auth))
	api.GET("/me", authHandler.HandleMe)
	api.PATCH("/me", authHandler.HandleUpdateMe)

	api.POST("/albums", albumHandler.HandleCreate)
	api.GET("/albums", albumHandler.HandleList)
	api.GET("/albums/:id", albumHandler.HandleGet)
	api.PATCH("/albums/:id", albumHandler.HandleUpdate)
	api.DELETE("/albums/:id", albumHandler.HandleDelete)
	api.GET("/albums/:id/photos", photoHandler.HandleListByAlbum)

	api.POST("/photos", photoHandler.HandleUpload)
	api.GET("/photos", photoHandler.HandleList)
	api.GET("/photos/search", photoHandler.HandleSearch)
	api.GET("/photos/:id", photoHandler.HandleGet)
	api.GET("/photos/:id/file", photoHandler.HandleDownload)
	api.PATCH("/photos/:id", photoHandler.HandleUpdate)
	api.DELETE("/photos/:id", photoHandler.HandleDelete)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
}

func newBlobStore(cfg *config.Config, log *logger.Logger) (blob.Store, error) {
	switch cfg.BlobStore.Backend {
	case config.BlobBackendMinIO:
		client, err := minio.New(cfg.MinIOClient, log)
		if err != nil {
			return nil, err
		}
		if err := client.EnsureBucket(context.Background(), cfg.MinIOStore.Bucket); err != nil {
			return nil, err
		}

		return minio.NewStore(client, cfg.MinIOStore, log), nil

	default:
		return blobfs.New(cfg.BlobStore.FS, log)
	}
}
