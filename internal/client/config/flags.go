package config

import (
	"flag"
	"os"
	"time"

	"github.com/mediapp/client-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-g string   gateway root URL
//	-b string   full API base URL (overrides -g)
//	-t string   admin token for admin-only endpoints
//	-d string   path to the local client database
//	-r int      request timeout in seconds
//	-eager      eager profile fetch on login/startup
//
// os.Args is filtered to only the flags handled here (flagx.FilterArgs) so
// other components can define their own flags without interference.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-g", "-b", "-t", "-d", "-r", "-eager"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.GatewayURL, "g", cfg.GatewayURL, "gateway root URL")
	fs.StringVar(&cfg.APIBaseURL, "b", cfg.APIBaseURL, "full API base URL")
	fs.StringVar(&cfg.AdminToken, "t", cfg.AdminToken, "admin token")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "client database path")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.BoolVar(&cfg.EagerProfileFetch, "eager", cfg.EagerProfileFetch, "fetch profile eagerly on login")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
