package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"

	"github.com/axis-learning/axis-server/database"
	"github.com/axis-learning/axis-server/internal/config"
	"github.com/axis-learning/axis-server/server"
	"github.com/axis-learning/axis-server/session"
	sqliteuserrepo "github.com/axis-learning/axis-server/users/sqliterepo"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	_ = godotenv.Load() // optional .env for local development

	c := config.New()
	displayAppname(c.GetAppName())

	db, err := database.New(filepath.Join(c.GetDataFolder(), "axis.db"), database.MigrationsFS())
	if err != nil {
		return fmt.Errorf("database.New: %w", err)
	}
	defer db.Close()

	provider, err := session.NewGoogleProvider(context.Background(), c, c.GetBaseURL()+server.RouteCallback)
	if err != nil {
		return fmt.Errorf("session.NewGoogleProvider: %w", err)
	}

	srv, err := server.New(c, sqliteuserrepo.NewSQLiteUserRepo(db), provider)
	if err != nil {
		return fmt.Errorf("server.New: %w", err)
	}

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
