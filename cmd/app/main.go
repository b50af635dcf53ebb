package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"cafeapi/cmd/fx/cafe_fx"
	"cafeapi/cmd/fx/config_fx"
	"cafeapi/cmd/fx/db_fx"
	"cafeapi/internal/api"
	"cafeapi/internal/config"
)

func main() {
	app := fx.New(appOptions())

	app.Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		db_fx.Module,
		cafe_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Printf("Starting HTTP server at %s", srv.Addr)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
