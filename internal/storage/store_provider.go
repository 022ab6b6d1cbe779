package storage

import (
	"respire/internal/providers"
	"respire/internal/storage/interfaces"
	"respire/internal/structures"
)

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// NewKeyValueStore picks the backend named by store.driver. The file
// backend serves from memory and relies on the scheduler for flushing.
// The sqlite backend lives at store.dbPath, apart from the snapshot file.
func NewKeyValueStore(conf *structures.Config, memory *MemoryStore, logger providers.Logger) (interfaces.KeyValueStoreInterface, error) {
	if conf.Store.Driver == DriverSQLite {
		logger.Infof(providers.TypeApp, "Using sqlite store at %s", conf.Store.DBPath)
		return OpenSQLiteStore(conf.Store.DBPath)
	}
	logger.Infof(providers.TypeApp, "Using file store at %s", conf.Store.FilePath)
	return memory, nil
}
