package main

import (
	"context"

	"github.com/tu-usuario/inventario-core/internal/infrastructure/postgres"
	"github.com/tu-usuario/inventario-core/pkg/config"
	"github.com/tu-usuario/inventario-core/pkg/logger"
)

// Aplica las migraciones embebidas contra la base configurada.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("aplicar migraciones")
	}
	log.Info().Msg("migraciones aplicadas")
}
