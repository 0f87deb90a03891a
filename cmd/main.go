package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/shelfmate/shelfmate-server/api/route"
	"github.com/shelfmate/shelfmate-server/bootstrap"
	"github.com/shelfmate/shelfmate-server/mongo"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := bootstrap.App()
	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	mongo.CreateIndexes(db)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()
	route.Setup(env, timeout, db, engine)

	srv := &http.Server{
		Addr:    env.ServerAddress,
		Handler: engine,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, srv, shutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server stopped")
		return
	}
	log.Info().Msg("server shut down cleanly")
}

// serve runs the server until it fails or ctx is cancelled, then drains
// in-flight requests for at most timeout before returning.
func serve(ctx context.Context, srv *http.Server, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
