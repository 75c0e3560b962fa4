package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/time/rate"

	"careplan/internal/config"
	"careplan/internal/plan"
	"careplan/internal/rollover"
	"careplan/internal/schedule"
	"careplan/internal/storage"
	"careplan/pkg/logx"
)

// App wires the config manager, logging, planner, scheduler, rollover
// trigger and the optional completion log.
type App struct {
	cfgMgr *config.ConfigManager
	logSvc *logx.Service
	log    logx.Logger

	mu      sync.Mutex
	cfg     *config.Config
	planner *plan.Planner
	sched   *schedule.Scheduler
	store   storage.Store
	roll    *rollover.Service

	// reloadLimiter caps how often a config change may rebuild the planner,
	// on top of the watcher's write debounce.
	reloadLimiter *rate.Limiter

	cancel context.CancelFunc
	wg     sync.WaitGroup
	subCh  chan *config.Config
}

func New(cfgPath string) (*App, error) {
	mgr := config.NewConfigManager(cfgPath)
	cfg, err := mgr.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logSvc, log := logx.New(logxConfig(cfg.Logging))
	mgr.SetLogger(log)
	mgr.SetValidator(func(ctx context.Context, c *config.Config) error {
		return config.Validate(c)
	})

	planner, err := config.BuildPlanner(cfg.Planner)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(storageConfig(cfg.Storage), log)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	a := &App{
		cfgMgr:        mgr,
		logSvc:        logSvc,
		log:           log,
		cfg:           cfg,
		planner:       planner,
		sched:         schedule.New(planner, log),
		store:         store,
		roll:          rollover.New(rolloverConfig(cfg.Rollover), log),
		reloadLimiter: rate.NewLimiter(rate.Limit(1), 2),
	}
	a.roll.SetJob(a.regenerate)
	return a, nil
}

func (a *App) Logger() logx.Logger { return a.log }

// Scheduler returns the live scheduler. Callers must treat Generate and
// MarkComplete as a critical section.
func (a *App) Scheduler() *schedule.Scheduler {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sched
}

func (a *App) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	// Initial generation so queries have a schedule before the first trigger.
	_ = a.regenerate(runCtx)

	if a.roll.Enabled() {
		if err := a.roll.Start(runCtx); err != nil {
			cancel()
			return fmt.Errorf("start rollover: %w", err)
		}
	}

	a.subCh = a.cfgMgr.Subscribe(4)
	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		_ = a.cfgMgr.Watch(runCtx)
	}()
	go func() {
		defer a.wg.Done()
		for {
			select {
			case <-runCtx.Done():
				return
			case cfg, ok := <-a.subCh:
				if !ok {
					return
				}
				a.applyConfig(runCtx, cfg)
			}
		}
	}()

	_, _ = daemon.SdNotify(false, daemon.SdNotifyReady)
	a.log.Info("app started", logx.String("planner", a.cfg.Planner.Name))
	return nil
}

func (a *App) Stop(ctx context.Context) error {
	_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
	if a.cancel != nil {
		a.cancel()
	}
	a.roll.Stop(ctx)
	a.cfgMgr.Unsubscribe(a.subCh)
	a.wg.Wait()

	a.mu.Lock()
	store := a.store
	a.store = nil
	a.mu.Unlock()
	if store != nil {
		_ = store.Close()
	}
	a.log.Info("app stopped")
	return a.logSvc.Close()
}

// regenerate rebuilds the schedule from the current planner state.
func (a *App) regenerate(ctx context.Context) error {
	_ = ctx
	a.mu.Lock()
	defer a.mu.Unlock()
	entries := a.sched.Generate()
	a.log.Debug("schedule rebuilt", logx.Int("entries", len(entries)))
	return nil
}

// CompleteTask marks a scheduled task done and mirrors the decision to the
// completion log when one is configured. Unknown titles return false.
func (a *App) CompleteTask(ctx context.Context, title, date string) bool {
	a.mu.Lock()
	c, ok := a.sched.MarkComplete(title, date)
	store := a.store
	plannerName := a.planner.Name
	a.mu.Unlock()
	if !ok {
		return false
	}
	if store != nil {
		err := store.AppendCompletion(ctx, storage.CompletionEntry{
			Planner:     plannerName,
			Subject:     c.Subject,
			Title:       c.Title,
			Start:       c.Start,
			CompletedOn: c.Date,
			NextDue:     c.NextDue,
		})
		if err != nil {
			a.log.Warn("completion log append failed", logx.Err(err))
		}
	}
	return true
}

// applyConfig handles a validated hot reload.
func (a *App) applyConfig(ctx context.Context, cfg *config.Config) {
	a.mu.Lock()
	old := a.cfg
	a.mu.Unlock()

	changed, attrs := config.SummarizeConfigChange(old, cfg)
	if len(changed) == 0 {
		return
	}
	a.log.Info("config reloaded", append([]logx.Field{
		logx.String("sections", strings.Join(changed, ",")),
	}, attrs...)...)

	for _, section := range changed {
		switch section {
		case "logging":
			a.logSvc.Apply(logxConfig(cfg.Logging))
		case "rollover":
			a.roll.Apply(rolloverConfig(cfg.Rollover))
		case "planner":
			if !a.reloadLimiter.Allow() {
				a.log.Warn("planner rebuild throttled; change applies on next reload")
				continue
			}
			a.rebuildPlanner(ctx, cfg)
		case "storage":
			a.reopenStorage(cfg)
		}
	}

	a.mu.Lock()
	a.cfg = cfg
	a.mu.Unlock()
}

func (a *App) rebuildPlanner(ctx context.Context, cfg *config.Config) {
	planner, err := config.BuildPlanner(cfg.Planner)
	if err != nil {
		// Validated before publish; a failure here means a racing edit.
		a.log.Warn("planner rebuild failed", logx.Err(err))
		return
	}
	a.mu.Lock()
	a.planner = planner
	a.sched = schedule.New(planner, a.log)
	a.mu.Unlock()
	_ = a.regenerate(ctx)
}

func (a *App) reopenStorage(cfg *config.Config) {
	store, err := storage.Open(storageConfig(cfg.Storage), a.log)
	if err != nil {
		a.log.Warn("storage reopen failed; keeping previous store", logx.Err(err))
		return
	}
	a.mu.Lock()
	old := a.store
	a.store = store
	a.mu.Unlock()
	if old != nil {
		_ = old.Close()
	}
}

// ---- config mapping ----

func logxConfig(c config.LoggingConfig) logx.Config {
	return logx.Config{
		Level:   c.Level,
		Console: c.Console,
		File:    logx.FileConfig{Enabled: c.File.Enabled, Path: c.File.Path},
	}
}

func rolloverConfig(c config.RolloverConfig) rollover.Config {
	return rollover.Config{
		Enabled:     c.Enabled,
		At:          config.RolloverAt(c),
		Timezone:    c.Timezone,
		HistorySize: c.HistorySize,
	}
}

func storageConfig(c *config.StorageConfig) storage.Config {
	if c == nil {
		return storage.Config{}
	}
	busy, _ := config.ParseDurationField("storage.busy_timeout", c.BusyTimeout)
	return storage.Config{Driver: c.Driver, Path: c.Path, BusyTimeout: busy}
}
