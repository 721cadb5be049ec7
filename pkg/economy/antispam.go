package economy

import "sync"

// SpamThreshold is how many consecutive messages from the same author
// trigger a penalty.
const SpamThreshold = 5

// SpamTracker cuenta mensajes consecutivos del mismo autor en un canal.
// Es un servicio explícito que se inyecta al manejador de mensajes, no un
// estado global, así cada test crea el suyo.
type SpamTracker struct {
	mu           sync.Mutex
	lastAuthorID string
	consecutive  int
}

// NewSpamTracker creates an empty tracker.
func NewSpamTracker() *SpamTracker {
	return &SpamTracker{}
}

// Observe registra un mensaje de authorID y devuelve true cuando alcanza
// el umbral de spam. Alcanzado el umbral, el contador se reinicia aunque
// el autor esté exento; staff spamming no acumula residuo.
func (t *SpamTracker) Observe(authorID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if authorID == t.lastAuthorID {
		t.consecutive++
	} else {
		t.lastAuthorID = authorID
		t.consecutive = 1
	}
	if t.consecutive >= SpamThreshold {
		t.consecutive = 0
		return true
	}
	return false
}

// Reset clears the streak, used when a moderation action interrupts it.
func (t *SpamTracker) Reset() {
	t.mu.Lock()
	t.lastAuthorID = ""
	t.consecutive = 0
	t.mu.Unlock()
}
