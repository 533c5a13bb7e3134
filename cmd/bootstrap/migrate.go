package bootstrap

import (
	"fmt"

	"github.com/AlexCL0320/backend-banco-angeles/config"
	"github.com/AlexCL0320/backend-banco-angeles/internal/infrastructure/database"
)

// OpenMigrator connects to postgres and returns a migrator over the
// embedded migrations, together with a func closing the connection.
func OpenMigrator(cfg *config.Config) (*database.Migrator, func(), error) {
	setupLogger(cfg.Log.Level)

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	migrator, err := database.NewMigrator(db)
	if err != nil {
		closeDB()
		return nil, nil, err
	}
	return migrator, closeDB, nil
}
