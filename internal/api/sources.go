package api

import "context"

// Sources fetches the configured video source catalog. The catalog is
// resolved once per client instance and cached; failures are not cached,
// so a later call retries.
func (c *Client) Sources(ctx context.Context) (*SourceCatalog, error) {
	c.mu.Lock()
	if c.catalog != nil {
		catalog := c.catalog
		c.mu.Unlock()
		return catalog, nil
	}
	c.mu.Unlock()

	var out SourceCatalog
	if err := c.get(ctx, "/video-sources", nil, &out); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.catalog = &out
	c.mu.Unlock()
	return &out, nil
}

// InvalidateSources drops the cached catalog, forcing the next Sources call
// to fetch. Subscribe operations call this after mutating the catalog.
func (c *Client) InvalidateSources() {
	c.mu.Lock()
	c.catalog = nil
	c.mu.Unlock()
}
