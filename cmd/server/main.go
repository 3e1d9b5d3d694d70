package main

import (
	"log"

	"github.com/rohanb712/ecotrack/internal/config"
	"github.com/rohanb712/ecotrack/internal/repository"
	"github.com/rohanb712/ecotrack/internal/server"
	"github.com/rohanb712/ecotrack/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.LogLevel,
		Path:       cfg.LogPath,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	repo, err := repository.NewFileActionRepository(cfg.DataFile)
	if err != nil {
		logger.Sugar().Fatalw("failed to init action store", "path", cfg.DataFile, "error", err)
	}

	srv := server.NewServer(cfg, repo)

	logger.Sugar().Infow("starting server", "port", cfg.Port, "data_file", cfg.DataFile)
	if err := srv.Run(":" + cfg.Port); err != nil {
		logger.Sugar().Fatalw("server exited with error", "error", err)
	}
}
