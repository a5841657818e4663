package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/llm-deploy/api/conf"
	"github.com/llm-deploy/api/evalreq"
	"github.com/llm-deploy/api/http"
)

func main() {
	// On deployment platforms the variables arrive through the process
	// environment, so a missing .env file is fine.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	cfg, err := conf.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	evalReqSrvc := evalreq.NewEvalReqSrvc(cfg.SecretKey)
	httpServer := http.NewHttpServer(evalReqSrvc)

	log.Printf("Starting server on %s", cfg.HTTPAddress)
	err = httpServer.Start(cfg.HTTPAddress)
	log.Printf("Server stopped with error: %v", err)
}
