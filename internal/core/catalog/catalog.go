// Package catalog defines the set of platforms a target is checked against.
//
// The built-in catalog ships as embedded YAML; users may append entries from
// their own file. A built Catalog never changes.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/imroc/req/v3"
	"gopkg.in/yaml.v3"

	"github.com/namelens/avail/internal/core"
	"github.com/namelens/avail/internal/core/checker"
)

//go:embed catalog.yaml
var defaultYAML []byte

// Entry is one (category, name, template) triple.
type Entry struct {
	Category core.Category
	Name     string
	Kind     core.CheckKind
	Template string
}

type document struct {
	Groups []group `yaml:"groups"`
}

type group struct {
	Category string       `yaml:"category"`
	Kind     string       `yaml:"kind"`
	Entries  []groupEntry `yaml:"entries"`
}

type groupEntry struct {
	Name     string `yaml:"name"`
	Template string `yaml:"template"`
}

// Default returns the built-in catalog entries.
func Default() ([]Entry, error) {
	entries, err := Parse(defaultYAML)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return entries, nil
}

// LoadFile reads catalog entries from a YAML file.
func LoadFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return entries, nil
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) ([]Entry, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	var entries []Entry
	for _, g := range doc.Groups {
		category := core.Category(strings.TrimSpace(g.Category))
		kind := core.CheckKind(strings.ToLower(strings.TrimSpace(g.Kind)))
		for _, e := range g.Entries {
			entries = append(entries, Entry{
				Category: category,
				Name:     strings.TrimSpace(e.Name),
				Kind:     kind,
				Template: strings.TrimSpace(e.Template),
			})
		}
	}

	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Validate checks every entry and rejects duplicate (category, name) pairs.
func Validate(entries []Entry) error {
	seen := make(map[string]struct{}, len(entries))
	var errs []error
	for i, e := range entries {
		if err := validateEntry(e); err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s/%s): %w", i, e.Category, e.Name, err))
			continue
		}
		key := e.Key()
		if _, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf("entry %d: duplicate %s", i, key))
			continue
		}
		seen[key] = struct{}{}
	}
	return errors.Join(errs...)
}

func validateEntry(e Entry) error {
	if e.Category == "" {
		return errors.New("category is required")
	}
	if e.Name == "" {
		return errors.New("name is required")
	}

	switch e.Kind {
	case core.CheckKindHTTP, core.CheckKindDNS:
		if n := strings.Count(e.Template, checker.Placeholder); n != 1 {
			return fmt.Errorf("template must contain exactly one %s, found %d", checker.Placeholder, n)
		}
	case core.CheckKindShorten:
		if e.Template != "" {
			return errors.New("shorten entries take no template")
		}
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
	return nil
}

// Deps are the shared clients handed to every checker.
type Deps struct {
	HTTPClient *req.Client
	Resolver   checker.Resolver
}

// Catalog is an immutable list of checkers.
type Catalog struct {
	checkers []checker.Checker
}

// Build validates entries and constructs one checker per entry.
func Build(entries []Entry, deps Deps) (*Catalog, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}

	c := &Catalog{
		checkers: make([]checker.Checker, 0, len(entries)),
	}
	for _, e := range entries {
		switch e.Kind {
		case core.CheckKindHTTP:
			c.checkers = append(c.checkers, checker.NewHTTPChecker(e.Category, e.Name, e.Template, deps.HTTPClient))
		case core.CheckKindDNS:
			c.checkers = append(c.checkers, checker.NewDNSChecker(e.Category, e.Name, e.Template, deps.Resolver))
		case core.CheckKindShorten:
			c.checkers = append(c.checkers, checker.NewShortenChecker(e.Category, e.Name, deps.Resolver))
		}
	}
	return c, nil
}

// Checkers returns a copy of the checkers in catalog order.
func (c *Catalog) Checkers() []checker.Checker {
	if c == nil {
		return nil
	}
	return append([]checker.Checker(nil), c.checkers...)
}

// Len returns the number of checkers.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.checkers)
}

// Key identifies an entry as "category/name".
func (e Entry) Key() string {
	return string(e.Category) + "/" + e.Name
}

// Without returns entries minus the ones named by keys ("category/name").
// Keys that match nothing are reported as an error so typos do not pass
// silently.
func Without(entries []Entry, keys []string) ([]Entry, error) {
	if len(keys) == 0 {
		return entries, nil
	}

	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[strings.TrimSpace(k)] = false
	}

	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := drop[e.Key()]; ok {
			drop[e.Key()] = true
			continue
		}
		kept = append(kept, e)
	}

	var unknown []string
	for k, matched := range drop {
		if !matched {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("unknown catalog entries: %s", strings.Join(unknown, ", "))
	}
	return kept, nil
}
