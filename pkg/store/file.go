package store

import (
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// FileBackend persiste el documento completo como JSON en un único archivo.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend writing to path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Load reads the backing file. A missing file is not an error: the bot
// simply starts fresh. A corrupt file is reported so Open can fall back.
func (f *FileBackend) Load() (*models.State, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewState(), nil
		}
		return nil, err
	}
	state := models.NewState()
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("documento corrupto en %s: %w", f.path, err)
	}
	return state, nil
}

// Save writes the document atomically: temp file in the same directory,
// then rename over the old one.
func (f *FileBackend) Save(state *models.State) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, ".database-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, f.path)
}

// Close no hace nada para el backend de archivo.
func (f *FileBackend) Close() error { return nil }
