package main

import "testing"

func TestSelectMode(t *testing.T) {
	cases := []struct {
		name      string
		stdinTTY  bool
		stdoutTTY bool
		opts      cliOptions
		want      mode
	}{
		{"interactive stdin shows usage", true, true, cliOptions{}, modeUsage},
		{"interactive stdin wins over compact", true, false, cliOptions{compact: true}, modeUsage},
		{"piped in and out copies raw", false, false, cliOptions{}, modeCopy},
		{"terminal out colorizes", false, true, cliOptions{}, modeColorize},
		{"no-color still renders on terminal", false, true, cliOptions{noColor: true}, modeColorize},
		{"forced color beats pipe", false, false, cliOptions{forceColor: true}, modeColorize},
		{"compact works on pipes", false, false, cliOptions{compact: true}, modeCompact},
		{"compact works on terminals", false, true, cliOptions{compact: true}, modeCompact},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectMode(tc.stdinTTY, tc.stdoutTTY, tc.opts); got != tc.want {
				t.Fatalf("selectMode(%v, %v, %+v) = %v, expected %v",
					tc.stdinTTY, tc.stdoutTTY, tc.opts, got, tc.want)
			}
		})
	}
}
