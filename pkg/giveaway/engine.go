package giveaway

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/VortexStudios/VortexBotGo/pkg/logger"
	"github.com/VortexStudios/VortexBotGo/pkg/models"
	"github.com/VortexStudios/VortexBotGo/pkg/store"
)

// MaxWinners is the upper bound accepted for a single giveaway.
const MaxWinners = 20

// EntrySource lista los participantes de un sorteo: los usuarios que
// reaccionaron con la señal de entrada al mensaje del anuncio, sin bots.
type EntrySource interface {
	FetchEntrants(channelID, messageID, signal string) ([]string, error)
}

// Announcer renders giveaway announcements on the platform. The engine
// never builds embeds itself; presentation lives entirely behind this
// interface.
type Announcer interface {
	// PostAnnouncement publishes the live announcement and returns the
	// platform message ID that becomes the giveaway's identity.
	PostAnnouncement(rec *models.GiveawayRecord) (string, error)
	// EditAnnouncement rewrites the announcement into its ended form.
	EditAnnouncement(rec *models.GiveawayRecord) error
	// AnnounceOutcome posts the congratulation (or no-entries notice)
	// in the giveaway channel.
	AnnounceOutcome(rec *models.GiveawayRecord, newWinners []string, reroll bool) error
}

// Publisher emite eventos del motor hacia afuera (MQTT). Puede ser nil.
type Publisher interface {
	Publish(topic string, payload interface{}) error
}

// StartParams carries everything needed to open a giveaway.
type StartParams struct {
	ChannelID   string
	HostID      string
	Prize       string
	Kind        models.PrizeKind
	CoinsAmount int64
	Winners     int
	Duration    time.Duration
}

// Engine es la máquina de estados de sorteos: abre, programa, concluye,
// liquida premios y hace reroll. Toda mutación pasa por el store, que
// serializa; las llamadas de red (entradas, anuncios) quedan fuera del
// candado.
type Engine struct {
	store     *store.Service
	entries   EntrySource
	announcer Announcer
	publisher Publisher
	clock     Clock
	rng       *rand.Rand
	signal    string
	sched     *Scheduler
}

// Options wires an Engine. Publisher may be nil; Clock and Rand default
// to the system clock and a time-seeded generator.
type Options struct {
	Store       *store.Service
	Entries     EntrySource
	Announcer   Announcer
	Publisher   Publisher
	Clock       Clock
	Rand        *rand.Rand
	EntrySignal string
}

// NewEngine builds the engine and its scheduler. Call Start to begin
// firing deadlines.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		store:     opts.Store,
		entries:   opts.Entries,
		announcer: opts.Announcer,
		publisher: opts.Publisher,
		clock:     opts.Clock,
		rng:       opts.Rand,
		signal:    opts.EntrySignal,
	}
	if e.clock == nil {
		e.clock = SystemClock()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.signal == "" {
		e.signal = "🎉"
	}
	e.sched = NewScheduler(e.clock, e.onDeadline)
	return e
}

// Start lanza el scheduler del motor.
func (e *Engine) Start() { e.sched.Start() }

// Stop detiene el scheduler. Los sorteos pendientes se recuperan en el
// próximo arranque.
func (e *Engine) Stop() { e.sched.Stop() }

func (e *Engine) onDeadline(messageID string) {
	if err := e.EndGiveaway(messageID, false); err != nil {
		// Ya terminado (end manual adelantado) no es un problema.
		if err == ErrAlreadyEnded || err == ErrNotFound {
			return
		}
		logger.Error(fmt.Sprintf("No se pudo concluir el sorteo %s: %v", messageID, err), "Giveaways")
	}
}

// StartGiveaway validates params, publishes the announcement, persists
// the record and schedules its deadline. Returns the stored record.
func (e *Engine) StartGiveaway(p StartParams) (*models.GiveawayRecord, error) {
	if p.Prize == "" {
		return nil, newValidationError("premio", "no puede estar vacío")
	}
	if p.Winners < 1 || p.Winners > MaxWinners {
		return nil, newValidationError("ganadores", fmt.Sprintf("debe estar entre 1 y %d", MaxWinners))
	}
	if p.Duration <= 0 {
		return nil, newValidationError("duración", "debe ser mayor que cero")
	}
	if p.Kind == models.PrizeCoins && p.CoinsAmount <= 0 {
		return nil, newValidationError("monedas", "debe ser mayor que cero")
	}

	now := e.clock.Now()
	rec := &models.GiveawayRecord{
		ChannelID:   p.ChannelID,
		Prize:       p.Prize,
		Kind:        p.Kind,
		CoinsAmount: p.CoinsAmount,
		HostID:      p.HostID,
		Winners:     p.Winners,
		StartedAt:   now.UnixMilli(),
		EndsAt:      now.Add(p.Duration).UnixMilli(),
	}

	messageID, err := e.announcer.PostAnnouncement(rec)
	if err != nil {
		return nil, newAdapterError("publicar anuncio", err)
	}
	rec.MessageID = messageID

	err = e.store.Update(func(s *models.State) error {
		s.Giveaways[rec.MessageID] = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.sched.Schedule(rec.MessageID, rec.EndsAtTime())
	e.publish("giveaways/started", rec)
	logger.Success(fmt.Sprintf("Sorteo iniciado: %s (%s, termina en %s)", rec.Prize, rec.MessageID, FormatDuration(p.Duration)), "Giveaways")
	return rec, nil
}

// EndGiveaway concludes a giveaway: draws winners from the current
// entrants, settles prizes, marks the record ended and announces the
// outcome. With force=true an already-ended giveaway is concluded again
// (a full redraw on top of the previous one).
func (e *Engine) EndGiveaway(messageID string, force bool) error {
	rec, err := e.lookup(messageID)
	if err != nil {
		return err
	}
	if rec.Ended && !force {
		return ErrAlreadyEnded
	}

	entrants, err := e.entries.FetchEntrants(rec.ChannelID, rec.MessageID, e.signal)
	if err != nil {
		return newAdapterError("leer entradas", err)
	}
	entrants = dedupe(entrants)
	winners := SelectWinners(e.rng, entrants, rec.Winners)

	var settled *models.GiveawayRecord
	err = e.store.Update(func(s *models.State) error {
		cur, ok := s.Giveaways[messageID]
		if !ok {
			return ErrNotFound
		}
		// Releída bajo candado: otro End pudo ganar la carrera.
		if cur.Ended && !force {
			return ErrAlreadyEnded
		}
		e.settle(s, cur, winners)
		cur.Ended = true
		cur.WinnerMentions = winnerField(winners)
		cur.TotalEntries = len(entrants)
		settled = cur
		return nil
	})
	if err != nil {
		return err
	}

	if err := e.announcer.EditAnnouncement(settled); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo editar el anuncio %s: %v", messageID, err), "Giveaways")
	}
	if err := e.announcer.AnnounceOutcome(settled, winners, false); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo anunciar el resultado de %s: %v", messageID, err), "Giveaways")
	}
	e.publish("giveaways/ended", settled)
	logger.Info(fmt.Sprintf("Sorteo %s concluido con %d entradas y %d ganadores", messageID, len(entrants), len(winners)), "Giveaways")
	return nil
}

// Reroll redraws the giveaway's own winner count from the current
// entrants of an already-ended giveaway. The fresh draw replaces the
// persisted winner list and is settled; prizes already delivered are
// not reversed.
func (e *Engine) Reroll(messageID string) ([]string, error) {
	rec, err := e.lookup(messageID)
	if err != nil {
		return nil, err
	}
	if !rec.Ended {
		return nil, ErrNotEnded
	}

	entrants, err := e.entries.FetchEntrants(rec.ChannelID, rec.MessageID, e.signal)
	if err != nil {
		return nil, newAdapterError("leer entradas", err)
	}
	entrants = dedupe(entrants)
	winners := SelectWinners(e.rng, entrants, rec.Winners)

	var settled *models.GiveawayRecord
	err = e.store.Update(func(s *models.State) error {
		cur, ok := s.Giveaways[messageID]
		if !ok {
			return ErrNotFound
		}
		if !cur.Ended {
			return ErrNotEnded
		}
		e.settle(s, cur, winners)
		cur.WinnerMentions = winnerField(winners)
		cur.TotalEntries = len(entrants)
		settled = cur
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := e.announcer.AnnounceOutcome(settled, winners, true); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo anunciar el reroll de %s: %v", messageID, err), "Giveaways")
	}
	e.publish("giveaways/rerolled", settled)
	logger.Info(fmt.Sprintf("Reroll de %s: %d ganadores nuevos", messageID, len(winners)), "Giveaways")
	return winners, nil
}

// RecoverOnStartup walks every stored giveaway after a boot: the ones
// whose deadline already passed are concluded right away, the rest are
// re-scheduled. Ended records are left alone, so a crash between
// settlement and shutdown never settles twice.
func (e *Engine) RecoverOnStartup() {
	type due struct {
		id      string
		expired bool
		at      time.Time
	}
	var pending []due
	now := e.clock.Now()
	e.store.View(func(s *models.State) {
		for id, rec := range s.Giveaways {
			if rec.Ended {
				continue
			}
			pending = append(pending, due{id: id, expired: !rec.EndsAtTime().After(now), at: rec.EndsAtTime()})
		}
	})

	expired, scheduled := 0, 0
	for _, d := range pending {
		if d.expired {
			expired++
			if err := e.EndGiveaway(d.id, false); err != nil && err != ErrAlreadyEnded {
				logger.Error(fmt.Sprintf("Recuperación: no se pudo concluir %s: %v", d.id, err), "Giveaways")
			}
			continue
		}
		scheduled++
		e.sched.Schedule(d.id, d.at)
	}
	logger.System(fmt.Sprintf("Recuperación de sorteos: %d vencidos concluidos, %d reprogramados", expired, scheduled), "Giveaways")
}

// Get returns the stored record for messageID.
func (e *Engine) Get(messageID string) (*models.GiveawayRecord, error) {
	return e.lookup(messageID)
}

// Active returns every giveaway not yet ended.
func (e *Engine) Active() []*models.GiveawayRecord {
	var out []*models.GiveawayRecord
	e.store.View(func(s *models.State) {
		for _, rec := range s.Giveaways {
			if !rec.Ended {
				out = append(out, rec)
			}
		}
	})
	return out
}

func (e *Engine) lookup(messageID string) (*models.GiveawayRecord, error) {
	var rec *models.GiveawayRecord
	e.store.View(func(s *models.State) {
		rec = s.Giveaways[messageID]
	})
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

// settle credits the prize to each winner. Runs inside a store.Update.
func (e *Engine) settle(s *models.State, rec *models.GiveawayRecord, winners []string) {
	now := e.clock.Now()
	for _, id := range winners {
		acct := s.User(id)
		switch rec.Kind {
		case models.PrizeCoins:
			acct.Coins += rec.CoinsAmount
		default:
			acct.Inventory = append(acct.Inventory, models.InventoryItem{
				Item:   rec.Prize,
				Source: "Giveaway",
				Date:   now.Format(time.RFC3339),
			})
		}
	}
}

func (e *Engine) publish(topic string, rec *models.GiveawayRecord) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish("vortex/"+topic, rec); err != nil {
		logger.Debug(fmt.Sprintf("MQTT no disponible para %s: %v", topic, err), "Giveaways")
	}
}

func mentions(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, "<@"+id+">")
	}
	return out
}

// winnerField is the persisted winner list of a conclusion event. A
// conclusion with no winners stores the no-entries sentinel so the
// record itself carries the outcome.
func winnerField(ids []string) []string {
	if len(ids) == 0 {
		return []string{models.NoEntriesText}
	}
	return mentions(ids)
}
