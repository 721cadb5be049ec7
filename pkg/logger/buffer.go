package logger

import "sync"

// Buffer es un anillo de las últimas líneas de log. Es un servicio
// explícito que se inyecta donde haga falta (comando de logs, stream web),
// no un singleton del proceso, para que los tests puedan crear instancias
// aisladas.
type Buffer struct {
	mu      sync.Mutex
	entries []string
	max     int
	subs    map[chan string]struct{}
}

// NewBuffer creates a ring buffer holding at most max lines.
func NewBuffer(max int) *Buffer {
	if max <= 0 {
		max = 50
	}
	return &Buffer{
		entries: make([]string, 0, max),
		max:     max,
		subs:    make(map[chan string]struct{}),
	}
}

// Append agrega una línea, descartando la más vieja si el anillo está
// lleno, y la reparte a los suscriptores sin bloquear.
func (b *Buffer) Append(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, line)
	if len(b.entries) > b.max {
		b.entries = b.entries[1:]
	}
	for ch := range b.subs {
		select {
		case ch <- line:
		default: // suscriptor lento, se pierde la línea
		}
	}
}

// Snapshot devuelve una copia de las líneas actuales, de vieja a nueva.
func (b *Buffer) Snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the current number of buffered lines.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Subscribe registra un canal que recibirá cada línea nueva.
func (b *Buffer) Subscribe() chan string {
	ch := make(chan string, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe da de baja un canal devuelto por Subscribe.
func (b *Buffer) Unsubscribe(ch chan string) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}
