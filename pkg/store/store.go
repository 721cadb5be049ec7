// Package store provee la capa de persistencia duradera del bot: un único
// documento en memoria, volcado al backend en cada mutación y, como red de
// seguridad, en un intervalo fijo.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
)

// DefaultFlushInterval is the safety-net flush period. Explicit saves on
// every mutation are still required; the interval only bounds data loss
// after an ungraceful termination.
const DefaultFlushInterval = 60 * time.Second

// Backend carga y guarda el documento de estado completo.
type Backend interface {
	Load() (*models.State, error)
	Save(*models.State) error
	Close() error
}

// Service posee el estado en memoria y serializa todas las mutaciones
// detrás de un mutex: EndGiveaway, Reroll y Claim leen-modifican-persisten
// registros compartidos desde goroutines distintas.
type Service struct {
	mu      sync.Mutex
	state   *models.State
	backend Backend
	stop    chan struct{}
	wg      sync.WaitGroup
}

// Open loads the backing document and returns a ready Service. Loading
// fails soft: a missing or malformed document yields an empty state.
func Open(backend Backend) *Service {
	state, err := backend.Load()
	if err != nil {
		logger.Warn(fmt.Sprintf("Error cargando la base de datos, empezando de cero: %v", err), "Store")
		state = models.NewState()
	}
	if state == nil {
		state = models.NewState()
	}
	state.Normalize()
	return &Service{
		state:   state,
		backend: backend,
		stop:    make(chan struct{}),
	}
}

// View ejecuta fn con acceso de solo lectura al estado.
func (s *Service) View(fn func(*models.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// Update ejecuta fn sobre el estado y, si fn no devuelve error, persiste el
// documento inmediatamente. Un fallo de persistencia se loguea fuerte pero
// no se propaga: el estado en memoria sigue siendo autoritativo hasta el
// próximo volcado exitoso.
func (s *Service) Update(fn func(*models.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.state); err != nil {
		return err
	}
	s.saveLocked()
	return nil
}

func (s *Service) saveLocked() {
	if err := s.backend.Save(s.state); err != nil {
		logger.Error(fmt.Sprintf("ERROR DE GUARDADO: %v", err), "Store")
	}
}

// Flush persiste el estado actual de forma síncrona.
func (s *Service) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveLocked()
}

// StartAutoFlush arranca el volcado periódico de seguridad.
func (s *Service) StartAutoFlush(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Flush()
			case <-s.stop:
				return
			}
		}
	}()
}

// Close detiene el volcado periódico, intenta un guardado final síncrono y
// cierra el backend.
func (s *Service) Close() {
	close(s.stop)
	s.wg.Wait()
	s.Flush()
	if err := s.backend.Close(); err != nil {
		logger.Warn(fmt.Sprintf("Error cerrando el backend: %v", err), "Store")
	}
}
