package khabar

import (
	"net/url"
	"strings"
	"sync"
)

// Registry maps hostnames and logical names to domain configurations.
// It is created once per process, seeded at startup, and safe for
// concurrent use; reads vastly outnumber the rare administrative writes.
type Registry struct {
	mu      sync.RWMutex
	configs map[string]*DomainConfig // name -> config
	hosts   map[string]string        // lower-cased hostname -> name
	names   []string                 // registration order
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		configs: make(map[string]*DomainConfig),
		hosts:   make(map[string]string),
	}
}

// Register inserts or overwrites the configuration under its domain name
// and binds each hostname (lower-cased) to it. With no hostnames the
// domain name itself is bound as the only hostname. Duplicate names
// silently replace the previous configuration; hostnames bound to a
// replaced name keep pointing at the new one.
func (r *Registry) Register(config *DomainConfig, hostnames ...string) error {
	if config == nil || config.DomainName == "" {
		return Errorf(EINVALID, "domain name required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.configs[config.DomainName]; !ok {
		r.names = append(r.names, config.DomainName)
	}
	r.configs[config.DomainName] = config

	if len(hostnames) == 0 {
		hostnames = []string{config.DomainName}
	}
	for _, h := range hostnames {
		r.hosts[strings.ToLower(h)] = config.DomainName
	}
	return nil
}

// ResolveByURL returns the configuration bound to the URL's host, or nil
// if the host is not registered. Matching is case-insensitive and
// ignores scheme and port.
func (r *Registry) ResolveByURL(rawURL string) *DomainConfig {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.hosts[host]
	if !ok {
		return nil
	}
	return r.configs[name]
}

// ResolveByName returns the configuration registered under name, or nil.
func (r *Registry) ResolveByName(name string) *DomainConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configs[name]
}

// Names returns registered domain names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}
