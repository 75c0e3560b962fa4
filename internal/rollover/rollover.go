package rollover

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"careplan/internal/config"
	"careplan/pkg/logx"
)

type Config struct {
	Enabled     bool
	At          string // wall-clock HH:MM, default "09:00"
	Timezone    string // IANA TZ, e.g. "Asia/Jakarta"; empty means Local
	HistorySize int
}

// RunRecord captures one regeneration run.
type RunRecord struct {
	Started  time.Time
	Duration time.Duration
	Error    string
}

type Service struct {
	mu sync.Mutex

	log logx.Logger
	cfg Config
	loc *time.Location

	parser cron.Parser
	c      *cron.Cron
	job    func(ctx context.Context) error

	queue    chan struct{}
	stopCh   chan struct{}
	runCtx   context.Context
	cancel   context.CancelFunc
	workerWG sync.WaitGroup

	hmu     sync.Mutex
	history []RunRecord
}

func New(cfg Config, log logx.Logger) *Service {
	if log.IsZero() {
		log = logx.Nop()
	}
	return &Service{
		cfg:    cfg,
		log:    log,
		parser: cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor),
	}
}

func (s *Service) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Enabled
}

// SetJob installs the regeneration callback. Must be called before Start.
func (s *Service) SetJob(fn func(ctx context.Context) error) {
	s.mu.Lock()
	s.job = fn
	s.mu.Unlock()
}

// Apply updates config at runtime; a timezone or trigger-time change
// restarts the cron with the definition re-registered.
//
// The old cron is drained without holding s.mu: its registered callback is
// trigger(), which takes the same mutex, so waiting on Stop().Done() under
// the lock would deadlock against an in-flight dispatch.
func (s *Service) Apply(cfg Config) {
	s.mu.Lock()
	oldAt := at(s.cfg)
	oldTZ := strings.TrimSpace(s.cfg.Timezone)
	s.cfg = cfg

	if s.stopCh == nil || (oldAt == at(cfg) && oldTZ == strings.TrimSpace(cfg.Timezone)) {
		s.mu.Unlock()
		return
	}
	old := s.c
	s.c = nil
	s.mu.Unlock()

	if old != nil {
		<-old.Stop().Done()
	}
	s.restart()
}

func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh != nil {
		return nil
	}
	spec, err := dailySpec(at(s.cfg))
	if err != nil {
		return err
	}

	s.stopCh = make(chan struct{})
	s.runCtx, s.cancel = context.WithCancel(ctx)
	// Fresh queue per run so a stale trigger never fires after stop/start.
	s.queue = make(chan struct{}, 1)

	loc := s.loadLocationLocked()
	s.loc = loc
	s.c = cron.New(cron.WithParser(s.parser), cron.WithLocation(loc))
	if _, err := s.c.AddFunc(spec, s.trigger); err != nil {
		s.teardownLocked()
		return err
	}

	runCtx := s.runCtx
	stopCh := s.stopCh
	queue := s.queue
	s.workerWG.Add(1)
	go func() {
		defer s.workerWG.Done()
		s.worker(runCtx, stopCh, queue)
	}()

	s.c.Start()
	s.log.Info("rollover started", logx.String("at", at(s.cfg)), logx.String("tz", loc.String()))
	return nil
}

func (s *Service) Stop(ctx context.Context) {
	s.mu.Lock()
	if s.stopCh == nil {
		s.mu.Unlock()
		return
	}
	stopCh := s.stopCh
	cancel := s.cancel
	c := s.c
	s.teardownLocked()
	s.mu.Unlock()

	close(stopCh)
	if cancel != nil {
		cancel()
	}
	if c != nil {
		<-c.Stop().Done()
	}

	done := make(chan struct{})
	go func() {
		s.workerWG.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		// stop continues in background
	}
	s.log.Info("rollover stopped")
}

func (s *Service) teardownLocked() {
	s.stopCh = nil
	s.cancel = nil
	s.c = nil
	s.queue = nil
	s.runCtx = nil
}

// restart registers and starts a fresh cron for the current config. No-op
// when the service stopped, or another Apply already restarted, while the
// caller was draining the old cron.
func (s *Service) restart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopCh == nil || s.c != nil {
		return
	}
	spec, err := dailySpec(at(s.cfg))
	if err != nil {
		s.log.Warn("invalid rollover time, keeping previous trigger stopped", logx.Err(err))
		return
	}
	loc := s.loadLocationLocked()
	s.loc = loc
	c := cron.New(cron.WithParser(s.parser), cron.WithLocation(loc))
	if _, err := c.AddFunc(spec, s.trigger); err != nil {
		s.log.Warn("rollover re-register failed", logx.Err(err))
		return
	}
	s.c = c
	c.Start()
	s.log.Info("rollover restarted", logx.String("at", at(s.cfg)), logx.String("tz", loc.String()))
}

func (s *Service) trigger() {
	s.mu.Lock()
	q := s.queue
	s.mu.Unlock()
	if q == nil {
		return
	}
	select {
	case q <- struct{}{}:
	default:
		// a regeneration is already pending; the next run covers it
		s.log.Warn("rollover trigger coalesced (previous run still pending)")
	}
}

func (s *Service) worker(ctx context.Context, stopCh <-chan struct{}, queue <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-queue:
			s.runOne(ctx)
		}
	}
}

func (s *Service) runOne(ctx context.Context) {
	s.mu.Lock()
	job := s.job
	historySize := s.cfg.HistorySize
	s.mu.Unlock()
	if job == nil {
		return
	}

	start := time.Now()
	err := job(ctx)
	rec := RunRecord{Started: start, Duration: time.Since(start)}
	if err != nil {
		rec.Error = err.Error()
		s.log.Warn("rollover run failed", logx.Err(err), logx.Duration("dur", rec.Duration))
	} else {
		s.log.Info("rollover run ok", logx.Duration("dur", rec.Duration))
	}

	s.hmu.Lock()
	defer s.hmu.Unlock()
	s.history = append(s.history, rec)
	if historySize <= 0 {
		historySize = 30
	}
	if len(s.history) > historySize {
		s.history = s.history[len(s.history)-historySize:]
	}
}

// History returns recent run records, oldest first.
func (s *Service) History() []RunRecord {
	s.hmu.Lock()
	defer s.hmu.Unlock()
	out := make([]RunRecord, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Service) loadLocationLocked() *time.Location {
	tz := strings.TrimSpace(s.cfg.Timezone)
	if tz == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		s.log.Warn("invalid timezone, falling back to Local", logx.String("tz", tz), logx.Err(err))
		return time.Local
	}
	return loc
}

func at(cfg Config) string {
	if strings.TrimSpace(cfg.At) == "" {
		return "09:00"
	}
	return strings.TrimSpace(cfg.At)
}

// dailySpec converts HH:MM into a 5-field cron spec.
func dailySpec(hhmm string) (string, error) {
	h, m, err := config.ParseHHMM(hhmm)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", m, h), nil
}
