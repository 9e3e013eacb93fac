package ui

import (
	"context"
	"sync"
	"time"

	"questgen/app"
	"questgen/domain/bank"
	"questgen/internal"
	"questgen/internal/assembly"
	"questgen/internal/engine"
	"questgen/internal/engine/generators"
	"questgen/models"
	"questgen/ports"
)

// Deps collects everything a UI or API server needs to come up
type Deps struct {
	Bank        ports.BankPort
	RNG         ports.RNGPort
	Questions   ports.QuestionRepository
	Worksheets  ports.WorksheetRepository
	Concurrency int64
	CodeSalt    string
}

// serviceState holds the services built once the bank finishes loading.
// The bank loads in a background goroutine; until it is ready handlers
// report a loading state instead of blocking startup.
type serviceState struct {
	deps   Deps
	logger *internal.Logger

	mu          sync.RWMutex
	bank        *bank.Bank
	eng         *engine.Engine
	generator   *app.GeneratorService
	assessments *app.AssessmentService
	loadErr     error
	loadedAt    time.Time
	reloading   bool
}

func newServiceState(deps Deps) *serviceState {
	return &serviceState{
		deps:   deps,
		logger: internal.DefaultLogger.WithTag("BankLoader"),
	}
}

// startLoader kicks off the background bank load
func (st *serviceState) startLoader() {
	st.reload()
}

// reload re-reads the bank source in the background. The current bank keeps
// serving until the new one is ready; a failed reload keeps the old bank.
// Returns false when a load is already running.
func (st *serviceState) reload() bool {
	st.mu.Lock()
	if st.reloading {
		st.mu.Unlock()
		return false
	}
	st.reloading = true
	st.mu.Unlock()

	go func() {
		st.load()
		st.mu.Lock()
		st.reloading = false
		st.mu.Unlock()
	}()
	return true
}

func (st *serviceState) load() {
	started := time.Now()
	st.logger.Info("loading context bank from %s", st.deps.Bank.Describe())

	b, err := st.deps.Bank.Load(context.Background())
	if err != nil {
		st.mu.Lock()
		st.loadErr = err
		st.mu.Unlock()
		st.logger.Error("context bank load failed: %v", err)
		return
	}

	eng := engine.New(b)
	producer := engine.NewProducer(eng, generators.All(), st.deps.RNG)
	builder := assembly.NewBuilder(producer, int(st.deps.Concurrency))
	codec, err := assembly.NewCodec(st.deps.CodeSalt)
	if err != nil {
		st.mu.Lock()
		st.loadErr = err
		st.mu.Unlock()
		st.logger.Error("share code codec setup failed: %v", err)
		return
	}

	st.mu.Lock()
	st.bank = b
	st.eng = eng
	st.generator = app.NewGeneratorService(producer, st.deps.Questions)
	st.assessments = app.NewAssessmentService(builder, codec, st.deps.Worksheets)
	st.loadErr = nil
	st.loadedAt = time.Now()
	st.mu.Unlock()

	st.logger.Info("context bank ready: %d contexts in %d categories (%.0fms)",
		b.Len(), len(b.Categories()), float64(time.Since(started).Microseconds())/1000)
}

// services returns the generator and assessment services once loaded
func (st *serviceState) services() (*app.GeneratorService, *app.AssessmentService, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.generator == nil {
		return nil, nil, false
	}
	return st.generator, st.assessments, true
}

// engine returns the context engine once loaded
func (st *serviceState) engine() (*engine.Engine, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.eng == nil {
		return nil, false
	}
	return st.eng, true
}

// status reports the bank loading lifecycle for the status endpoint
func (st *serviceState) status() models.BankStatus {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if st.bank != nil {
		summary := st.bank.Summarize()
		return models.BankStatus{State: models.BankLoaded, Summary: &summary}
	}
	if st.loadErr != nil {
		return models.BankStatus{State: models.BankFailed, Error: st.loadErr.Error()}
	}
	return models.BankStatus{State: models.BankLoading}
}
