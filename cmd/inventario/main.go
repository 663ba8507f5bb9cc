package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-local/internal/application/analytics"
	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
	"github.com/jhoicas/inventario-local/internal/interfaces/cli"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("storage_dir", cfg.Storage.Dir).
		Msg("iniciando aplicación")

	store, err := localstore.New(afero.NewOsFs(), cfg.Storage.Dir, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento local")
	}

	userRepo := localstore.NewUserRepository(store)
	productRepo := localstore.NewProductRepository(store)
	sessionRepo := localstore.NewSessionRepository(store)

	authUC := auth.NewUseCase(userRepo, sessionRepo, cfg.Auth.BcryptCost)
	productUC := usecase.NewProductUseCase(productRepo, sessionRepo)
	exportUC := usecase.NewExportUseCase(productRepo)
	dashboardUC := analytics.NewDashboardUseCase(productRepo)

	root := cli.NewRootCommand(cli.Deps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		ExportUC:       exportUC,
		DashboardUC:    dashboardUC,
		RefreshSeconds: cfg.App.RefreshSeconds,
		Log:            log,
	})

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("comando finalizado con error")
		os.Exit(1)
	}
}
