// Package catalog provides the read-only list of business models that
// answers are scored against.
package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/bizmatch/internal/domain/model"
)

//go:embed builtin.yaml
var builtin []byte

// Catalog is an immutable, ordered set of business models. Order is the
// tie-break order used when ranking.
type Catalog struct {
	models []model.BusinessModel
	index  map[string]int
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	path string
}

// WithFile replaces the built-in models with those in a YAML file.
func WithFile(path string) Option {
	return func(o *loadOptions) {
		o.path = path
	}
}

// Load builds the catalog from the embedded definitions or, when WithFile
// is given a non-empty path, from that YAML file.
func Load(_ context.Context, opts ...Option) (*Catalog, error) {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	var provider koanf.Provider = embedded(builtin)
	if o.path != "" {
		provider = file.Provider(o.path)
	}
	if err := k.Load(provider, yaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}

	var models []model.BusinessModel
	if err := k.UnmarshalWithConf("models", &models, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}
	return New(models...)
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Load(context.Background())
	if err != nil {
		panic(err)
	}
	return c
}

// New validates models, derives their structured ranges and keeps them in
// the given order.
func New(models ...model.BusinessModel) (*Catalog, error) {
	c := &Catalog{
		models: make([]model.BusinessModel, 0, len(models)),
		index:  make(map[string]int, len(models)),
	}
	for _, m := range models {
		if err := prepare(&m); err != nil {
			return nil, err
		}
		if _, dup := c.index[m.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateModel, m.ID)
		}
		c.index[m.ID] = len(c.models)
		c.models = append(c.models, m)
	}
	return c, nil
}

func prepare(m *model.BusinessModel) error {
	if m.ID == "" || m.Title == "" {
		return fmt.Errorf("%w: id and title are required", ErrInvalidModel)
	}
	switch m.Difficulty {
	case model.Beginner, model.Intermediate, model.Advanced:
	default:
		return fmt.Errorf("%w: %s: unknown difficulty %q", ErrInvalidModel, m.ID, m.Difficulty)
	}
	switch m.Scalability {
	case model.ScalabilityLow, model.ScalabilityMedium, model.ScalabilityHigh, model.ScalabilityVeryHigh:
	default:
		return fmt.Errorf("%w: %s: unknown scalability %q", ErrInvalidModel, m.ID, m.Scalability)
	}

	var err error
	if m.Investment, err = ParseMoneyRange(m.InitialInvestment); err != nil {
		return fmt.Errorf("%w: %s: investment: %w", ErrInvalidModel, m.ID, err)
	}
	if m.Income, err = ParseMoneyRange(m.PotentialIncome); err != nil {
		return fmt.Errorf("%w: %s: income: %w", ErrInvalidModel, m.ID, err)
	}
	if m.WeeklyHours, err = ParseHourRange(m.TimeCommitment); err != nil {
		return fmt.Errorf("%w: %s: time commitment: %w", ErrInvalidModel, m.ID, err)
	}
	m.Pros = nonNil(m.Pros)
	m.Cons = nonNil(m.Cons)
	m.RequiredSkills = nonNil(m.RequiredSkills)
	return nil
}

// Models returns the catalog entries in catalog order.
func (c *Catalog) Models() []model.BusinessModel {
	out := make([]model.BusinessModel, len(c.models))
	copy(out, c.models)
	return out
}

// Get looks up a model by id.
func (c *Catalog) Get(id string) (model.BusinessModel, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.BusinessModel{}, false
	}
	return c.models[i], true
}

// Len returns the number of models.
func (c *Catalog) Len() int { return len(c.models) }

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// embedded serves the compiled-in YAML to koanf.
type embedded []byte

func (e embedded) ReadBytes() ([]byte, error) { return e, nil }

func (e embedded) Read() (map[string]interface{}, error) {
	return nil, errors.New("embedded provider does not support Read")
}
