package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/conornaught0n/emg-energy-demo/internal/catalog"
	"github.com/conornaught0n/emg-energy-demo/internal/config"
	"github.com/conornaught0n/emg-energy-demo/internal/storage"
)

// initStorage initializes the survey store with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadCatalog returns the configured job type catalog: the override
// file when one is set, the builtin catalog otherwise.
func loadCatalog() (catalog.Catalog, error) {
	path := config.ExpandPath(viper.GetString("catalog.path"))
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
