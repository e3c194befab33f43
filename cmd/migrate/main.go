package main

import (
	"errors"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"
)

// Uso: go run ./cmd/migrate [up|down]
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	// golang-migrate registra el driver de pgx/v5 bajo el esquema pgx5.
	url := strings.Replace(cfg.DB.ConnectionString(), "postgres://", "pgx5://", 1)

	m, err := migrate.New("file://"+cfg.DB.MigrationsPath, url)
	if err != nil {
		log.Fatal().Err(err).Msg("crear instancia de migración")
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		log.Fatal().Str("direction", direction).Msg("dirección desconocida, use up o down")
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Msg("sin migraciones pendientes")
			return
		}
		log.Fatal().Err(err).Str("direction", direction).Msg("aplicar migraciones")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Fatal().Err(err).Msg("consultar versión de migración")
	}

	log.Info().
		Uint("version", version).
		Bool("dirty", dirty).
		Str("direction", direction).
		Msg("migraciones aplicadas")
}
