package capability

import (
	"errors"
	"log"
	"runtime/debug"

	"devapi/internal/domain"
)

// Provider is one optional sample-data transform. Availability is decided
// once at startup by running Check; handlers only ever consult the probed
// Set.
type Provider interface {
	Name() string
	Version() string
	Check() error
	Transform(seq []int) (data interface{}, message string, err error)
}

type Capability struct {
	Provider  Provider
	Available bool
	Err       error
}

// Set holds the probe results in precedence order.
type Set struct {
	caps []Capability
}

var errDisabled = errors.New("disabled by configuration")

// Probe checks every optional provider once. Order matters: the numeric
// transform is preferred over the record transform when both are available.
func Probe(cfg domain.Config) *Set {
	entries := []struct {
		provider Provider
		disabled bool
	}{
		{NewNumeric(), cfg.DisableNumeric},
		{NewRecords(), cfg.DisableRecords},
	}

	s := &Set{}
	for _, e := range entries {
		c := Capability{Provider: e.provider}
		if e.disabled {
			c.Err = errDisabled
			log.Printf("capability: %s disabled by configuration", e.provider.Name())
		} else if err := e.provider.Check(); err != nil {
			c.Err = err
			log.Printf("capability: %s unavailable: %v", e.provider.Name(), err)
		} else {
			c.Available = true
			log.Printf("capability: %s available (%s)", e.provider.Name(), e.provider.Version())
		}
		s.caps = append(s.caps, c)
	}
	return s
}

// Pick returns the first available provider, or false when none is.
func (s *Set) Pick() (Provider, bool) {
	for _, c := range s.caps {
		if c.Available {
			return c.Provider, true
		}
	}
	return nil, false
}

func (s *Set) Available(name string) bool {
	for _, c := range s.caps {
		if c.Provider.Name() == name {
			return c.Available
		}
	}
	return false
}

// All returns the probe results in precedence order.
func (s *Set) All() []Capability {
	return s.caps
}

// moduleVersion resolves a dependency version from build info, so the debug
// endpoints report what was actually linked in.
func moduleVersion(path string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return "unknown"
}
