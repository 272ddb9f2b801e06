// Package main (in api-subfolder) provides launch of the travel API
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhanaviii/AI-Travel-Agent/internal/imageapi"
	"github.com/jhanaviii/AI-Travel-Agent/internal/llm"
	"github.com/jhanaviii/AI-Travel-Agent/internal/mwlogger"
	"github.com/jhanaviii/AI-Travel-Agent/internal/ratelimit"
	"github.com/jhanaviii/AI-Travel-Agent/internal/repository"
	"github.com/jhanaviii/AI-Travel-Agent/internal/service"
	"github.com/jhanaviii/AI-Travel-Agent/internal/storage"
	"github.com/jhanaviii/AI-Travel-Agent/internal/transport"
	"github.com/jhanaviii/AI-Travel-Agent/internal/visualizer"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	// инициализировать конфиг/ считать энвы
	appConfig := config.New()
	appConfig.EnableEnv("")
	if err := appConfig.LoadEnvFiles("./.env"); err != nil {
		log.Printf("No .env file loaded (%v), using process environment", err)
	}

	// стартуем логгер
	zlog.InitConsole()
	if err := zlog.SetLevel(getOr(appConfig, "LOG_LEVEL", "info")); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	// готовим заранее слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := service.Deps{
		PlaceholderImage: appConfig.GetString("PLACEHOLDER_IMAGE_URL"),
		PlaceholderPhoto: appConfig.GetString("PLACEHOLDER_PHOTO_URL"),
	}

	// база не обязательна - без неё работаем на встроенных данных
	dbConn, err := repository.ConnectWithRetries(appConfig, 5, 5*time.Second)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("Database unavailable, serving built-in data")
	} else {
		if err := repository.MigrateWithRetries(dbConn.Master, getOr(appConfig, "MIGRATIONS_PATH", "./migrations"), 5, 5*time.Second); err != nil {
			zlog.Logger.Error().Err(err).Msg("Migrations failed")
		}
		deps.Repo = repository.NewPostgresDestinationRepo(dbConn)
	}

	// бакеты для фото и результатов
	if photos, err := storage.NewImgStorage(appConfig, getOr(appConfig, "PHOTOS_BUCKET", "user-photos"), 3, 5*time.Second); err != nil {
		zlog.Logger.Warn().Err(err).Msg("Photo storage unavailable")
	} else {
		deps.Photos = photos
	}
	if results, err := storage.NewImgStorage(appConfig, getOr(appConfig, "RESULTS_BUCKET", "generated-images"), 3, 5*time.Second); err != nil {
		zlog.Logger.Warn().Err(err).Msg("Results storage unavailable, generated images will be inlined")
	} else {
		deps.Results = results
	}

	// языковая модель
	if key := appConfig.GetString("GEMINI_API_KEY"); key != "" {
		ai, err := llm.NewClient(ctx, key,
			getOr(appConfig, "GEMINI_TEXT_MODEL", "gemini-2.0-flash"),
			getOr(appConfig, "IMAGEN_MODEL", "imagen-3.0-generate-002"))
		if err != nil {
			zlog.Logger.Warn().Err(err).Msg("LLM unavailable")
		} else {
			deps.Text = ai
			deps.Images = ai
		}
	} else {
		zlog.Logger.Warn().Msg("GEMINI_API_KEY is not set, LLM features use built-in data")
	}

	// внешний image API и цепочка визуализации
	imgAPI := imageapi.NewClient(imageapi.Config{
		APIKey:         appConfig.GetString("IMAGE_API_KEY"),
		FaceSwapURL:    appConfig.GetString("FACE_SWAP_API_URL"),
		TextToImageURL: appConfig.GetString("TEXT2IMG_API_URL"),
		// фото пользователей лежат в нашем же MinIO
		TrustedHosts:      storageHosts(appConfig),
		AllowPrivateHosts: appConfig.GetString("ALLOW_PRIVATE_IMAGE_HOSTS") == "true",
	}, &http.Client{})
	deps.TextToImage = imgAPI
	deps.FaceSwapEnabled = imgAPI.FaceSwapEnabled()

	deps.Visualizer = visualizer.New(imgAPI, visualizer.Remote(imgAPI), visualizer.Postcard(), visualizer.Badge())

	// создаем экземпляр сервиса
	var svc TravelAPIService = service.NewTravelService(deps)
	// cоздаем экземпляр хендлера HTTP
	handlers := transport.NewTravelHandler(svc)
	limiter := ratelimit.NewRateLimiter(getInt(appConfig, "RATE_LIMIT_PER_MINUTE", ratelimit.DefaultPerMinute))

	// сетапим сервер
	engine := ginext.New(appConfig.GetString("GIN_MODE"))

	engine.GET("/", handlers.Root)
	engine.GET("/ping", handlers.SimplePinger)
	engine.GET("/health", handlers.Health)
	engine.POST("/api/upload-photo", handlers.UploadPhoto)
	engine.GET("/api/destinations", handlers.ListDestinations)
	engine.GET("/api/continents", handlers.ListContinents)
	engine.POST("/api/generate-visualization", handlers.GenerateVisualization)
	engine.GET("/api/visualizations", handlers.ListVisualizations)
	engine.POST("/api/generate-text-to-image", limiter.Middleware(), handlers.TextToImage)
	engine.GET("/api/destination-suggestions", limiter.Middleware(), handlers.Suggestions)
	engine.POST("/api/generate-personalized-recommendations", limiter.Middleware(), handlers.Recommendations)
	engine.POST("/api/search-bookings", limiter.Middleware(), handlers.SearchBookings)

	srv := &http.Server{
		Addr:              ":" + getOr(appConfig, "APP_PORT", "8000"),
		Handler:           mwlogger.NewMWLogger(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server launch
	go func() {
		log.Printf("Server running on http://localhost%s\n", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Println("Server gracefully stopping...")
			default:
				log.Printf("Server stopped: %v", err)
				stop()
			}
		}
	}()

	// ждем отмены контекста для запуска грейсфул закрытия
	<-ctx.Done()

	shutdown(srv, dbConn)
	log.Println("Exiting app...")
}

func shutdown(srv *http.Server, dbConn *dbpg.DB) {
	log.Println("Interrupt received!!! Starting shutdown sequence...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Println("Failed to shutdown HTTP-server correctly:", err)
	}
	log.Println("HTTP-server stopped.")

	// Closing DB connection
	if dbConn == nil {
		return
	}
	if err := dbConn.Master.Close(); err != nil {
		log.Println("Failed to close DB-conn correctly:", err)
		return
	}
	log.Println("DBconn closed")
}
