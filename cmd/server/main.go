package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/saulo-duarte/quiz-survey-api/internal/config"
	"github.com/saulo-duarte/quiz-survey-api/internal/container"
)

// @title       Quiz Survey API
// @version     1.0
// @description Users, quizzes, questions and answers backed by a relational database.
// @BasePath    /

var envFileFlag = &cli.StringFlag{
	Name:  "env-file",
	Value: ".env",
	Usage: "dotenv file loaded before reading the environment",
}

var serveFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "addr",
		Usage: "listen address, overrides SERVER_ADDR",
	},
	envFileFlag,
}

func main() {
	app := &cli.App{
		Name:   "quiz-survey-api",
		Usage:  "HTTP API for users, quizzes, questions and answers",
		Flags:  serveFlags,
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start the HTTP server",
				Flags:  serveFlags,
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "create or update the database tables",
				Flags:  []cli.Flag{envFileFlag},
				Action: migrate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		config.Logger.WithError(err).Fatal("Server stopped")
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}
	if c.IsSet("addr") {
		cfg.Server.Addr = c.String("addr")
	}

	ctn, err := container.New(cfg)
	if err != nil {
		return err
	}
	defer ctn.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           ctn.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		config.Logger.Infof("Server listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	config.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(c *cli.Context) error {
	cfg, err := config.Load(c.String("env-file"))
	if err != nil {
		return err
	}

	ctn, err := container.New(cfg)
	if err != nil {
		return err
	}
	defer ctn.Close()

	if err := ctn.Migrate(c.Context); err != nil {
		return err
	}
	config.Logger.Info("Database schema is up to date")
	return nil
}
