package identity

import (
	"errors"
	"sync"

	"keystone"
)

// Collect runs every probe once. Description and OSVersion are always set;
// the returned error joins the failures of the UUID and fingerprint probes,
// whose fields are left empty.
func Collect(p *Prober) (keystone.DeviceIdentity, error) {
	id := keystone.DeviceIdentity{
		Description: p.DeviceDescription(),
		OSVersion:   p.OSVersion(),
	}

	var errs []error
	if v, err := p.UUID(); err != nil {
		errs = append(errs, err)
	} else {
		id.UUID = v
	}
	if v, err := p.Fingerprint(); err != nil {
		errs = append(errs, err)
	} else {
		id.Fingerprint = v
	}
	return id, errors.Join(errs...)
}

// Cache memoizes probe results for callers that want one value per process.
// Successful values are kept; failures are not, so a later call retries the
// source. Safe for concurrent use.
type Cache struct {
	prober *Prober

	mu          sync.Mutex
	uuid        string
	fingerprint string
	description string
	osVersion   string
}

// NewCache wraps p.
func NewCache(p *Prober) *Cache {
	return &Cache{prober: p}
}

// UUID returns the first UUID successfully generated through this cache.
func (c *Cache) UUID() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.uuid != "" {
		return c.uuid, nil
	}
	v, err := c.prober.UUID()
	if err != nil {
		return "", err
	}
	c.uuid = v
	return v, nil
}

// Fingerprint returns the cached fingerprint, probing on first use.
func (c *Cache) Fingerprint() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fingerprint != "" {
		return c.fingerprint, nil
	}
	v, err := c.prober.Fingerprint()
	if err != nil {
		return "", err
	}
	c.fingerprint = v
	return v, nil
}

func (c *Cache) DeviceDescription() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.description == "" {
		c.description = c.prober.DeviceDescription()
	}
	return c.description
}

func (c *Cache) OSVersion() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.osVersion == "" {
		c.osVersion = c.prober.OSVersion()
	}
	return c.osVersion
}
