// Package badges ships the static badge catalogue. Badge ids are never invented at runtime.
package badges

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/munier-ie/stayonx/pkg/entity"
	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var catalogueYAML []byte

type Catalogue struct {
	Version int                      `yaml:"version"`
	Badges  []entity.BadgeDefinition `yaml:"badges"`
	byID    map[string]entity.BadgeDefinition
}

var (
	once     sync.Once
	instance *Catalogue
	loadErr  error
)

// Default returns the embedded catalogue. It panics if the shipped file is invalid.
func Default() *Catalogue {
	once.Do(func() {
		instance, loadErr = Parse(catalogueYAML)
	})
	if loadErr != nil {
		panic("badge catalogue: " + loadErr.Error())
	}
	return instance
}

func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalogue: %w", err)
	}
	if c.Version < 1 {
		return nil, errors.New("catalogue version is missing")
	}
	c.byID = make(map[string]entity.BadgeDefinition, len(c.Badges))
	for _, b := range c.Badges {
		if b.ID == "" {
			return nil, errors.New("badge without id")
		}
		if _, dup := c.byID[b.ID]; dup {
			return nil, fmt.Errorf("duplicate badge id %q", b.ID)
		}
		switch b.Category {
		case entity.BadgeStreak, entity.BadgeConsistency, entity.BadgeLeaderboard, entity.BadgeSpace, entity.BadgeReplies:
		default:
			return nil, fmt.Errorf("badge %q: unknown category %q", b.ID, b.Category)
		}
		if b.Threshold < 1 {
			return nil, fmt.Errorf("badge %q: threshold must be positive", b.ID)
		}
		c.byID[b.ID] = b
	}
	return &c, nil
}

func (c *Catalogue) All() []entity.BadgeDefinition {
	out := make([]entity.BadgeDefinition, len(c.Badges))
	copy(out, c.Badges)
	return out
}

func (c *Catalogue) Get(id string) (entity.BadgeDefinition, bool) {
	b, ok := c.byID[id]
	return b, ok
}

func (c *Catalogue) ByCategory(cat entity.BadgeCategory) []entity.BadgeDefinition {
	var out []entity.BadgeDefinition
	for _, b := range c.Badges {
		if b.Category == cat {
			out = append(out, b)
		}
	}
	return out
}
