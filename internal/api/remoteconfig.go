package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// GetConfig fetches the backend's global configuration.
func (c *Client) GetConfig(ctx context.Context) (RemoteConfig, error) {
	var out RemoteConfig
	if err := c.get(ctx, "/config", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateConfig replaces the backend's global configuration. The backend
// validates before applying, so a rejected edit leaves it untouched.
func (c *Client) UpdateConfig(ctx context.Context, cfg RemoteConfig) (RemoteConfig, error) {
	var out RemoteConfig
	if err := c.put(ctx, "/config", cfg, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PingNotifier asks the backend to send a test notification through the
// supplied notifier definition.
func (c *Client) PingNotifier(ctx context.Context, notifier json.RawMessage) (*TestNotifierResponse, error) {
	var out TestNotifierResponse
	if err := c.post(ctx, "/config/notifiers/ping", notifier, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Lookup resolves a dotted path ("filter_option.video_max_quality") inside
// the configuration. The boolean reports whether the path exists.
func (cfg RemoteConfig) Lookup(path string) (any, bool) {
	current := any(map[string]any(cfg))
	for _, part := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Set assigns a dotted path to a value parsed from raw: JSON when it parses,
// otherwise the literal string. Intermediate objects must already exist so a
// typo cannot invent a new config section.
func (cfg RemoteConfig) Set(path, raw string) error {
	parts := strings.Split(path, ".")
	node := map[string]any(cfg)
	for _, part := range parts[:len(parts)-1] {
		child, ok := node[part].(map[string]any)
		if !ok {
			return fmt.Errorf("config path %q does not exist", path)
		}
		node = child
	}

	leaf := parts[len(parts)-1]
	if _, ok := node[leaf]; !ok {
		return fmt.Errorf("config key %q does not exist", path)
	}
	node[leaf] = parseScalar(raw)
	return nil
}

func parseScalar(raw string) any {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, `"`) {
		var value any
		if err := json.Unmarshal([]byte(trimmed), &value); err == nil {
			return value
		}
	}
	return raw
}
