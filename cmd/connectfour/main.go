package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/iamasit07/connectfour/internal/config"
	"github.com/iamasit07/connectfour/internal/event"
	"github.com/iamasit07/connectfour/internal/service/bot"
	"github.com/iamasit07/connectfour/internal/service/game"
	transportHttp "github.com/iamasit07/connectfour/internal/transport/http"
	"github.com/iamasit07/connectfour/internal/transport/http/middleware"
	"github.com/iamasit07/connectfour/internal/transport/websocket"
	"github.com/iamasit07/connectfour/internal/ui"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file %s: %v", cfg.LogFile, err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()
	app := ui.NewApp(screen)

	// 2. Engine
	var rng *rand.Rand
	if cfg.BotSeed != 0 {
		rng = rand.New(rand.NewSource(cfg.BotSeed))
	}
	svc := game.New(
		game.WithStrategy(bot.NewEasy(rng)),
		game.WithSecondView(app.SecondView),
	)
	app.Attach(svc)

	// 3. Optional event sinks
	if cfg.WatchEnabled {
		srv := startWatchServer(ctx, cfg, svc)
		defer shutdown(srv)
	}

	if cfg.RedisURL != "" {
		client, err := event.DialRedis(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			log.Printf("[REDIS] Warning: %v. Running without Redis.", err)
		} else {
			defer client.Close()
			forward(ctx, svc, "REDIS", event.NewRedisSink(client, cfg.RedisChannel), cfg.EventBuffer)
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		sink, err := event.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaTopic, event.KafkaAuth{
			User:     cfg.KafkaUser,
			Password: cfg.KafkaPassword,
		})
		if err != nil {
			log.Printf("[KAFKA] Warning: %v. Running without Kafka.", err)
		} else {
			defer sink.Close()
			forward(ctx, svc, "KAFKA", sink, cfg.EventBuffer)
		}
	}

	go func() {
		<-ctx.Done()
		screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	svc.StartGame(cfg.StartMode)
	app.Run()
	log.Println("Game closed")
}

func forward(ctx context.Context, svc *game.Service, name string, sink event.Sink, buffer int) {
	fw := event.NewForwarder(name, sink, buffer, svc.ID)
	svc.Subscribe(fw)
	go fw.Run(ctx)
}

func startWatchServer(ctx context.Context, cfg *config.Config, svc *game.Service) *http.Server {
	hub := websocket.NewConnectionManager()
	forward(ctx, svc, "WS", hub, cfg.EventBuffer)

	allowed := func(origin string) bool {
		return middleware.OriginAllowed(cfg.AllowedOrigins, origin)
	}
	wsHandler := websocket.NewHandler(hub, allowed)

	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = log.Writer()
	gin.DefaultErrorWriter = log.Writer()
	router := transportHttp.NewRouter(cfg.AllowedOrigins, transportHttp.NewWatchHandler(hub), wsHandler.HandleWebSocket)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		log.Printf("[HTTP] Watch server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[HTTP] Watch server error: %v", err)
		}
	}()
	return srv
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[HTTP] Watch server forced to shutdown: %v", err)
	}
}
