// Package localstore implementa la persistencia clave/valor sobre archivos
// JSON locales: una clave por archivo, cada escritura reemplaza el archivo
// completo. Es el equivalente en disco del localStorage del navegador.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Claves de primer nivel del almacenamiento.
const (
	keyUsers        = "users"
	keyCurrentUser  = "currentUser"
	keyProducts     = "products"
	keyRememberUser = "rememberUser"
)

// Store gateway de almacenamiento clave/valor JSON.
//
// Load con clave ausente o archivo corrupto deja el destino en el valor por
// defecto del llamador y no devuelve error; un blob corrupto se registra y se
// trata como ausente. Save y Remove devuelven el fallo envuelto en
// domain.ErrStorage.
type Store struct {
	fs  afero.Fs
	dir string
	log *logger.Logger
}

// New construye el gateway sobre el filesystem indicado. Crea el directorio
// si no existe.
func New(fs afero.Fs, dir string, log *logger.Logger) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: crear directorio %s: %v", domain.ErrStorage, dir, err)
	}
	return &Store{fs: fs, dir: dir, log: log}, nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Save serializa value y reemplaza el contenido de la clave de forma atómica
// a nivel de clave (escritura completa del archivo).
func (s *Store) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("serializar para almacenamiento")
		return fmt.Errorf("%w: serializar %s: %v", domain.ErrStorage, key, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("escribir en almacenamiento")
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// Load deserializa la clave en dest. Si la clave no existe o el contenido
// está corrupto, dest queda como lo entregó el llamador (su valor por
// defecto) y el error es nil.
func (s *Store) Load(key string, dest any) error {
	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		s.log.Warn().Err(err).Str("key", key).Msg("leer del almacenamiento")
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("contenido corrupto, se usa el valor por defecto")
		return nil
	}
	return nil
}

// Remove elimina la clave. Una clave inexistente es un no-op exitoso.
func (s *Store) Remove(key string) error {
	if err := s.fs.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Error().Err(err).Str("key", key).Msg("eliminar del almacenamiento")
		return fmt.Errorf("%w: eliminar %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}

// Exists indica si la clave tiene contenido persistido.
func (s *Store) Exists(key string) bool {
	ok, err := afero.Exists(s.fs, s.path(key))
	return err == nil && ok
}
