package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LayoutFile != "hud" || cfg.Width != 1280 || cfg.Height != 720 || cfg.TicksPerFrame != 1 || cfg.Debug {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LAYOUT_FILE", "/tmp/panel.yaml")
	t.Setenv("LAYOUT_WATCH_DIR", "/tmp")
	t.Setenv("LAYOUT_WIDTH", "800")
	t.Setenv("LAYOUT_HEIGHT", "600")
	t.Setenv("LAYOUT_TICKS_PER_FRAME", "4")
	t.Setenv("LAYOUT_DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	want := Config{LayoutFile: "/tmp/panel.yaml", WatchDir: "/tmp", Width: 800, Height: 600, TicksPerFrame: 4, Debug: true}
	if *cfg != want {
		t.Fatalf("got %+v, want %+v", *cfg, want)
	}
}

func TestLoadRejects(t *testing.T) {
	cases := map[string][2]string{
		"zero_ticks":     {"LAYOUT_TICKS_PER_FRAME", "0"},
		"negative_width": {"LAYOUT_WIDTH", "-5"},
		"not_a_number":   {"LAYOUT_HEIGHT", "tall"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", kv[0], kv[1])
			}
		})
	}
}
