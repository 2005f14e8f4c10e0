package scrape

import "fmt"

// Registry holds scrapers in registration order. The collector iterates
// sources in this order for every term, so a run is deterministic for a
// given config.
type Registry struct {
	scrapers []Scraper
	byName   map[string]Scraper
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Scraper)}
}

func (r *Registry) Register(s Scraper) error {
	name := s.Name()
	if name == "" {
		return fmt.Errorf("scraper has empty name")
	}
	if _, dup := r.byName[name]; dup {
		return fmt.Errorf("scraper %q already registered", name)
	}
	r.byName[name] = s
	r.scrapers = append(r.scrapers, s)
	return nil
}

// Scrapers returns the registered scrapers in declared order.
func (r *Registry) Scrapers() []Scraper {
	out := make([]Scraper, len(r.scrapers))
	copy(out, r.scrapers)
	return out
}

func (r *Registry) Len() int { return len(r.scrapers) }
