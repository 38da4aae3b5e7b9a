package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler dispara o Scanner no cron configurado. Um ciclo nunca
// começa enquanto o anterior ainda roda.
type Scheduler struct {
	cron    *cron.Cron
	scanner *Scanner
	timeout time.Duration
	log     zerolog.Logger
	now     func() time.Time

	base   context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	entryID cron.EntryID
}

func NewScheduler(
	scanner *Scanner,
	spec string,
	loc *time.Location,
	timeout time.Duration,
	log zerolog.Logger,
) (*Scheduler, error) {
	cl := cronLogger{log: log}
	base, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		scanner: scanner,
		timeout: timeout,
		log:     log,
		now:     time.Now,
		base:    base,
		cancel:  cancel,
	}

	id, err := s.cron.AddFunc(spec, s.tick)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", spec, err)
	}
	s.entryID = id

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Time("next", s.Next()).Msg("reminder scheduler started")
}

// Next devolve o próximo disparo agendado (zero antes do Start).
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron.Entry(s.entryID).Next
}

// Stop espera o ciclo em andamento terminar. Se ctx expirar antes,
// o ciclo é cancelado e Stop devolve ctx.Err().
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.cancel()
		s.log.Info().Msg("reminder scheduler stopped")
		return nil
	case <-ctx.Done():
		s.cancel()
		s.log.Warn().Msg("reminder scheduler stop timed out, abandoning tick")
		return ctx.Err()
	}
}

// RunOnce executa um ciclo imediatamente, fora do cron.
func (s *Scheduler) RunOnce(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.scanner.Scan(ctx, s.now())
}

func (s *Scheduler) tick() {
	report := s.RunOnce(s.base)

	results := report.Results()
	s.log.Debug().
		Time("at", report.At).
		Int("leads", len(report.Leads)).
		Int("deliveries", len(results)).
		Msg("reminder tick finished")
}

// cronLogger adapta o zerolog à interface de log do cron.
type cronLogger struct {
	log zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
