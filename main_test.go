package main

import (
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/milk9111/spritecollider/config"
)

func TestFlagsOverrideConfig(t *testing.T) {
	loaded := func() config.Config {
		cfg := config.Default()
		cfg.Image = "from-config.png"
		cfg.Debug = true
		cfg.Scale = 2
		cfg.OnFailure = config.PolicyFailFast
		cfg.Watch = false
		return cfg
	}

	cases := []struct {
		name string
		args []string
		want func(*config.Config)
	}{
		{
			name: "unset_flags_keep_config",
			args: nil,
			want: func(*config.Config) {},
		},
		{
			name: "failfast_false_restores_retry",
			args: []string{"-failfast=false"},
			want: func(c *config.Config) { c.OnFailure = config.PolicyRetry },
		},
		{
			name: "failfast_true",
			args: []string{"-failfast"},
			want: func(*config.Config) {},
		},
		{
			name: "debug_false_and_watch",
			args: []string{"-debug=false", "-nowatch=false"},
			want: func(c *config.Config) {
				c.Debug = false
				c.Watch = true
			},
		},
		{
			name: "scale_sensor_and_image",
			args: []string{"-scale", "0.5", "-sensor", "sprite.png"},
			want: func(c *config.Config) {
				c.Scale = 0.5
				c.Sensor = true
				c.Image = "sprite.png"
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var opts options
			fs := newFlagSet(&opts, flag.ContinueOnError)
			if err := fs.Parse(tc.args); err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := loaded()
			opts.apply(&got, fs)

			want := loaded()
			tc.want(&want)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
