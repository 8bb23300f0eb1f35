package api

import (
	"encoding/json"
	"testing"
)

func sampleRemoteConfig(t *testing.T) RemoteConfig {
	t.Helper()
	raw := `{
		"video_name": "{{title}}",
		"filter_option": {"video_max_quality": "Quality8k", "no_hdr": false},
		"danmaku_option": {"duration": 12.0, "font_size": 25},
		"concurrent_limit": {"video": 3, "page": 2}
	}`
	var cfg RemoteConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	return cfg
}

func TestRemoteConfigLookup(t *testing.T) {
	cfg := sampleRemoteConfig(t)

	value, ok := cfg.Lookup("filter_option.video_max_quality")
	if !ok || value != "Quality8k" {
		t.Fatalf("unexpected lookup result: %v %v", value, ok)
	}
	if _, ok := cfg.Lookup("filter_option.missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
	if _, ok := cfg.Lookup("video_name.nested"); ok {
		t.Fatal("expected miss when traversing through a scalar")
	}
}

func TestRemoteConfigSetParsesScalars(t *testing.T) {
	cfg := sampleRemoteConfig(t)

	if err := cfg.Set("concurrent_limit.video", "8"); err != nil {
		t.Fatalf("set int: %v", err)
	}
	if value, _ := cfg.Lookup("concurrent_limit.video"); value != int64(8) {
		t.Fatalf("unexpected int: %v", value)
	}

	if err := cfg.Set("filter_option.no_hdr", "true"); err != nil {
		t.Fatalf("set bool: %v", err)
	}
	if value, _ := cfg.Lookup("filter_option.no_hdr"); value != true {
		t.Fatalf("unexpected bool: %v", value)
	}

	if err := cfg.Set("danmaku_option.duration", "15.5"); err != nil {
		t.Fatalf("set float: %v", err)
	}
	if value, _ := cfg.Lookup("danmaku_option.duration"); value != 15.5 {
		t.Fatalf("unexpected float: %v", value)
	}

	if err := cfg.Set("video_name", "{{bvid}}"); err != nil {
		t.Fatalf("set string: %v", err)
	}
	if value, _ := cfg.Lookup("video_name"); value != "{{bvid}}" {
		t.Fatalf("unexpected string: %v", value)
	}
}

func TestRemoteConfigSetRejectsUnknownPaths(t *testing.T) {
	cfg := sampleRemoteConfig(t)

	if err := cfg.Set("filter_option.invented", "1"); err == nil {
		t.Fatal("expected error for unknown leaf")
	}
	if err := cfg.Set("invented.key", "1"); err == nil {
		t.Fatal("expected error for unknown section")
	}
}
