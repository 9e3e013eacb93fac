// Package assembly turns section specs into finished assessments and renders
// them as printable documents. Question generation runs concurrently under a
// bounded semaphore; document order never depends on completion order.
package assembly

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"questgen/domain/assessment"
	"questgen/domain/core"
	"questgen/domain/question"
	"questgen/internal"
	"questgen/internal/engine"
)

// DefaultConcurrency bounds parallel question builds when none is configured
const DefaultConcurrency = 4

// Builder assembles assessments over a question producer
type Builder struct {
	producer *engine.Producer
	sem      *semaphore.Weighted
	logger   *internal.Logger
}

// NewBuilder creates a builder generating at most concurrency questions at a
// time.
func NewBuilder(producer *engine.Producer, concurrency int) *Builder {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Builder{
		producer: producer,
		sem:      semaphore.NewWeighted(int64(concurrency)),
		logger:   internal.DefaultLogger.WithTag("Builder"),
	}
}

// slot pins one question to its place in the document
type slot struct {
	section int
	index   int
	params  engine.Params
}

// Build generates every question in the spec and assembles the document.
// A zero spec seed draws a fresh one; a pinned seed reproduces the exact
// assessment, question for question.
func (b *Builder) Build(ctx context.Context, spec assessment.Spec) (*assessment.Assessment, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	seed := spec.Seed
	if seed == 0 {
		seed = b.producer.NextSeed()
	}

	slots, sections, err := b.plan(spec, seed)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]*question.Question, len(slots))

	buildCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}

	for i := range slots {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := b.sem.Acquire(buildCtx, 1); err != nil {
				fail(err)
				return
			}
			defer b.sem.Release(1)

			q, err := b.producer.Produce(buildCtx, slots[i].params)
			if err != nil {
				fail(err)
				return
			}
			results[i] = q
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	for i := range slots {
		sections[slots[i].section].Questions[slots[i].index] = results[i]
	}

	title := spec.Title
	if title == "" {
		title = defaultTitle(spec.Kind)
	}
	key := spec.AnswerKey
	if key == "" {
		key = assessment.KeyNone
	}

	a := &assessment.Assessment{
		ID:           core.WorksheetID(core.NewID()),
		Kind:         spec.Kind,
		Title:        title,
		Instructions: instructionsFor(spec.Kind),
		AnswerKey:    key,
		Sections:     sections,
		Seed:         seed,
		CreatedAt:    core.Now(),
	}
	b.logger.Info("built %s: %d questions in %.2fms",
		spec.Kind, a.QuestionCount(), float64(time.Since(start).Microseconds())/1000.0)
	return a, nil
}

// plan expands section specs into build slots with per-question seeds and
// difficulties. Slot order is the document order, so seed offsets are stable
// across rebuilds.
func (b *Builder) plan(spec assessment.Spec, seed int64) ([]slot, []assessment.Section, error) {
	bk := b.producer.Engine().Bank()

	var slots []slot
	sections := make([]assessment.Section, len(spec.Sections))
	ordinal := 0
	for si := range spec.Sections {
		ss := spec.Sections[si]

		title := ss.Title
		variations := []question.Variation{ss.Variation}
		if ss.SkillID != "" {
			sk, err := bk.Skill(ss.SkillID)
			if err != nil {
				return nil, nil, err
			}
			if title == "" {
				title = sk.Name
			}
			if ss.Variation == "" {
				variations = sk.Variations
			}
		}
		if title == "" {
			title = ss.Variation.DisplayName()
		}

		difficulties := sectionDifficulties(spec.Kind, ss.Difficulty, ss.Count)
		sections[si] = assessment.Section{
			Title:     title,
			Questions: make([]*question.Question, ss.Count),
		}
		for qi := 0; qi < ss.Count; qi++ {
			slots = append(slots, slot{
				section: si,
				index:   qi,
				params: engine.Params{
					Variation:  variations[qi%len(variations)],
					ContextID:  ss.ContextID,
					Level:      ss.Level,
					Difficulty: difficulties[qi],
					Seed:       seed + int64(ordinal),
				},
			})
			ordinal++
		}
	}
	return slots, sections, nil
}

// sectionDifficulties spreads quiz and test questions across a band around
// the requested difficulty, ascending, so the printed document progresses
// from easier to harder. Practice pages and worksheets hold the requested
// difficulty throughout.
func sectionDifficulties(kind assessment.Kind, d question.Difficulty, count int) []question.Difficulty {
	out := make([]question.Difficulty, count)
	if kind != assessment.KindQuiz && kind != assessment.KindTest || count == 1 {
		for i := range out {
			out[i] = d
		}
		return out
	}

	lo := max(question.MinDifficulty, d-1)
	hi := min(question.MaxDifficulty, d+1)
	span := int(hi - lo)
	for i := range out {
		out[i] = lo + question.Difficulty(i*span/(count-1))
	}
	return out
}

func defaultTitle(kind assessment.Kind) string {
	if kind == assessment.KindPractice {
		return "Mathematics Practice"
	}
	return "Mean " + kind.DisplayName()
}

// instructionsFor returns the printed instructions block for the kind
func instructionsFor(kind assessment.Kind) string {
	switch kind {
	case assessment.KindWorksheet:
		return "Complete all questions. Show your work."
	case assessment.KindQuiz:
		return "Answer all questions. Show your work for full credit. Questions increase in difficulty."
	case assessment.KindTest:
		return "Read each question carefully. Show all your work for full credit. " +
			"Questions progress from easier to more challenging. Use the back of pages if you need more space."
	}
	return "Complete all questions. Show your work."
}
