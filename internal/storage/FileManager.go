package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"respire/internal/providers"
	"respire/internal/storage/interfaces"

	json "github.com/goccy/go-json"
)

const snapshotVersion = 1

// snapshotFile is the on-disk envelope. Unversioned files hold the bare
// key/value object and are migrated on load.
type snapshotFile struct {
	Version int               `json:"version"`
	Values  map[string]string `json:"values"`
}

type FileManager struct {
	store      *MemoryStore
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store *MemoryStore, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

func (f *FileManager) SaveToFile(fileName string) (err error) {
	values := f.store.Snapshot()
	defer func() {
		if err != nil {
			f.store.MarkDirty()
		}
	}()

	jsonData, err := json.Marshal(snapshotFile{Version: snapshotVersion, Values: values})
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(fileName), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressedData, err := f.compressor.Decompress(data)
	if err != nil {
		return err
	}

	var snap snapshotFile
	if err := json.Unmarshal(decompressedData, &snap); err == nil && snap.Version > 0 && snap.Values != nil {
		if snap.Version > snapshotVersion {
			return fmt.Errorf("store file version %d is newer than supported %d", snap.Version, snapshotVersion)
		}
		f.store.Replace(snap.Values)
		return nil
	}

	f.logger.Warnf(providers.TypeApp, "Unversioned store file found, migrating")
	var values map[string]string
	if err := json.Unmarshal(decompressedData, &values); err != nil {
		f.logger.Warnf(providers.TypeApp, "Migration failed")
		return err
	}
	f.store.Replace(values)
	f.store.MarkDirty()
	f.logger.Warnf(providers.TypeApp, "Migration of unversioned store file successful")
	return nil
}
