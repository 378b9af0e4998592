package config

import (
	"flag"
	"os"
	"time"

	"github.com/Svmi93/projetHygieneResto-sub000/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only -a, -s and -t are considered; other arguments are filtered out with
// flagx.FilterArgs. Panics on malformed values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend")
	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "session store file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
