package config

import (
	"flag"
	"os"
	"time"

	"github.com/pairspace/loveos/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-n int      nickname cycle interval in seconds (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	nicknameCycleInterval := fs.Int("n", int(cfg.NicknameCycleInterval.Seconds()), "nickname cycle interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NicknameCycleInterval = time.Duration(*nicknameCycleInterval) * time.Second
}
