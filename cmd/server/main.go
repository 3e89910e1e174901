package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cloudwego/hertz/pkg/app/server"

	staticcatalog "megbase/internal/adapter/catalog/static"
	httpadapter "megbase/internal/adapter/http"
	"megbase/internal/adapter/repo/file"
	gormrepo "megbase/internal/adapter/repo/gorm"
	"megbase/internal/adapter/repo/memory"
	"megbase/internal/app/game"
	"megbase/internal/app/ports"
	"megbase/internal/domain/catalog"
)

type config struct {
	Addr    string `env:"MEGBASE_ADDR" envDefault:":8080"`
	DBDSN   string `env:"MEGBASE_DB_DSN"`
	SaveDir string `env:"MEGBASE_SAVE_DIR"`
	DataDir string `env:"MEGBASE_DATA_DIR"`
	Seed    int64  `env:"MEGBASE_SEED" envDefault:"0"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	saves, backend, err := buildSaveRepo(cfg)
	if err != nil {
		logger.Error("open save store", "backend", backend, "error", err)
		os.Exit(1)
	}

	cats, err := loadCatalogs(cfg)
	if err != nil {
		logger.Error("load catalogs", "data_dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	h := httpadapter.Handler{
		Game: game.NewUseCase(saves, cats, cfg.Seed, logger),
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info("megbase server listening", "addr", cfg.Addr, "saves", backend)
	s.Spin()
}

// buildSaveRepo picks the save backend from config: postgres when a DSN
// is set, the on-disk store when a save directory is set, otherwise an
// in-memory store that forgets everything on restart.
func buildSaveRepo(cfg config) (ports.SaveRepository, string, error) {
	if dsn := strings.TrimSpace(cfg.DBDSN); dsn != "" {
		db, err := gormrepo.OpenPostgres(dsn)
		if err != nil {
			return nil, "postgres", err
		}
		if err := gormrepo.AutoMigrate(db); err != nil {
			return nil, "postgres", err
		}
		return gormrepo.NewSaveRepo(db), "postgres", nil
	}
	if dir := strings.TrimSpace(cfg.SaveDir); dir != "" {
		repo, err := file.NewSaveRepo(dir)
		if err != nil {
			return nil, "file", err
		}
		return repo, "file", nil
	}
	return memory.NewSaveRepo(), "memory", nil
}

func loadCatalogs(cfg config) (*catalog.Set, error) {
	if dir := strings.TrimSpace(cfg.DataDir); dir != "" {
		return staticcatalog.Loader{Root: dir}.Load()
	}
	return catalog.Default(), nil
}
