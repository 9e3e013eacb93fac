package bank

import (
	"fmt"
	"sort"

	"questgen/domain/core"
	"questgen/domain/question"
)

// Bank is the loaded, validated context collection the engine draws from.
// It is immutable after construction; a reload builds a fresh Bank.
type Bank struct {
	contexts   map[core.ContextID]*Context
	order      []core.ContextID
	byCategory map[string][]core.ContextID
	skills     []Skill
	skillIndex map[core.SkillID]*Skill
	names      []string
	source     string
	hash       core.BankHash
	loadedAt   core.Timestamp
}

// CategoryGroup is one category with its contexts, for grouped selectors
type CategoryGroup struct {
	Name     string     `json:"name"`
	Contexts []*Context `json:"contexts"`
}

// Summary is the bank status reported by the UI and the CLI
type Summary struct {
	Contexts    int                        `json:"contexts"`
	Categories  int                        `json:"categories"`
	Skills      int                        `json:"skills"`
	Names       int                        `json:"names"`
	Variations  map[question.Variation]int `json:"variations"`
	Fingerprint string                     `json:"fingerprint"`
	Source      string                     `json:"source"`
	LoadedAt    core.Timestamp             `json:"loaded_at"`
}

// New builds a Bank from validated parts. Context order is preserved for
// stable listings. Every context and skill is validated; the first failure
// aborts construction so a malformed data file cannot half-load.
func New(source string, contexts []Context, skills []Skill, names []string) (*Bank, error) {
	if len(contexts) == 0 {
		return nil, core.ErrEmptyBank
	}

	b := &Bank{
		contexts:   make(map[core.ContextID]*Context, len(contexts)),
		byCategory: make(map[string][]core.ContextID),
		skillIndex: make(map[core.SkillID]*Skill, len(skills)),
		names:      append([]string(nil), names...),
		source:     source,
		loadedAt:   core.Now(),
	}

	for i := range contexts {
		c := contexts[i]
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("context %s: %w", c.ID, err)
		}
		if _, dup := b.contexts[c.ID]; dup {
			return nil, fmt.Errorf("duplicate context id %s", c.ID)
		}
		b.contexts[c.ID] = &c
		b.order = append(b.order, c.ID)
		b.byCategory[c.Category] = append(b.byCategory[c.Category], c.ID)
	}

	b.skills = append([]Skill(nil), skills...)
	for i := range b.skills {
		s := &b.skills[i]
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("skill %s: %w", s.ID, err)
		}
		if _, dup := b.skillIndex[s.ID]; dup {
			return nil, fmt.Errorf("duplicate skill id %s", s.ID)
		}
		b.skillIndex[s.ID] = s
	}

	fingerprint := make(map[string][]string, len(contexts))
	for id, c := range b.contexts {
		variations := make([]string, 0, len(c.Compatible))
		for _, v := range c.Compatible {
			variations = append(variations, v.String())
		}
		fingerprint[id.String()] = variations
	}
	b.hash = core.ComputeBankHash(fingerprint)

	return b, nil
}

// Get returns a context by ID
func (b *Bank) Get(id core.ContextID) (*Context, error) {
	c, ok := b.contexts[id]
	if !ok {
		return nil, core.NewNotFoundError("context", id.String())
	}
	return c, nil
}

// All returns every context in load order
func (b *Bank) All() []*Context {
	out := make([]*Context, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.contexts[id])
	}
	return out
}

// Len returns the number of contexts
func (b *Bank) Len() int { return len(b.contexts) }

// Categories returns the categories present, in canonical order
func (b *Bank) Categories() []string {
	out := make([]string, 0, len(b.byCategory))
	for _, cat := range CategoryOrder() {
		if len(b.byCategory[cat]) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// Grouped returns contexts grouped by category for selectors. Within each
// group contexts sort by name.
func (b *Bank) Grouped() []CategoryGroup {
	groups := make([]CategoryGroup, 0, len(b.byCategory))
	for _, cat := range b.Categories() {
		g := CategoryGroup{Name: cat}
		for _, id := range b.byCategory[cat] {
			g.Contexts = append(g.Contexts, b.contexts[id])
		}
		sort.Slice(g.Contexts, func(i, j int) bool {
			return g.Contexts[i].Name < g.Contexts[j].Name
		})
		groups = append(groups, g)
	}
	return groups
}

// Compatible returns every context supporting the variation, in load order
func (b *Bank) Compatible(v question.Variation) []*Context {
	var out []*Context
	for _, id := range b.order {
		if c := b.contexts[id]; c.Supports(v) {
			out = append(out, c)
		}
	}
	return out
}

// GroupedCompatible returns compatible contexts grouped by category
func (b *Bank) GroupedCompatible(v question.Variation) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	for _, cat := range b.Categories() {
		g := CategoryGroup{Name: cat}
		for _, id := range b.byCategory[cat] {
			if c := b.contexts[id]; c.Supports(v) {
				g.Contexts = append(g.Contexts, c)
			}
		}
		if len(g.Contexts) == 0 {
			continue
		}
		sort.Slice(g.Contexts, func(i, j int) bool {
			return g.Contexts[i].Name < g.Contexts[j].Name
		})
		groups = append(groups, g)
	}
	return groups
}

// AdvertisedVariations returns the variations with at least one compatible
// context, in catalogue order. The UI selector offers exactly these.
func (b *Bank) AdvertisedVariations() []question.Variation {
	var out []question.Variation
	for _, v := range question.AllVariations() {
		if len(b.Compatible(v)) > 0 {
			out = append(out, v)
		}
	}
	return out
}

// Skills returns the worksheet skills in load order
func (b *Bank) Skills() []Skill {
	return append([]Skill(nil), b.skills...)
}

// Skill returns one skill by ID
func (b *Bank) Skill(id core.SkillID) (*Skill, error) {
	s, ok := b.skillIndex[id]
	if !ok {
		return nil, core.NewNotFoundError("skill", id.String())
	}
	return s, nil
}

// Names returns the narrative name pool
func (b *Bank) Names() []string {
	return append([]string(nil), b.names...)
}

// Fingerprint returns the content hash of the bank
func (b *Bank) Fingerprint() core.BankHash { return b.hash }

// Source names where the bank came from: a file path or "builtin"
func (b *Bank) Source() string { return b.source }

// LoadedAt returns when the bank finished loading
func (b *Bank) LoadedAt() core.Timestamp { return b.loadedAt }

// Summarize builds the status snapshot
func (b *Bank) Summarize() Summary {
	variations := make(map[question.Variation]int, len(question.AllVariations()))
	for _, v := range question.AllVariations() {
		if n := len(b.Compatible(v)); n > 0 {
			variations[v] = n
		}
	}
	return Summary{
		Contexts:    b.Len(),
		Categories:  len(b.Categories()),
		Skills:      len(b.skills),
		Names:       len(b.names),
		Variations:  variations,
		Fingerprint: b.hash.Short(),
		Source:      b.source,
		LoadedAt:    b.loadedAt,
	}
}
