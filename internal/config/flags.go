package config

import (
	"flag"
	"os"
	"time"

	"github.com/SahilSawant11/mizu/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-store string   backing store variant: "sqlite" or "postgres"
//	-f string       path to the local SQLite file
//	-d string       PostgreSQL DSN
//	-s string       JWT HMAC secret key
//	-u string       S3 root user
//	-p string       S3 root password
//	-b string       S3 bucket name
//	-g string       S3 region
//	-e string       S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-x int          presigned link validity, minutes
//
// The arguments are first filtered with flagx.FilterArgs so that flags
// belonging to other packages (such as -c/-config) do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:],
		[]string{"-store", "-f", "-d", "-s", "-u", "-p", "-b", "-g", "-e", "-x"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Store, "store", config.Store, "backing store variant (sqlite|postgres)")
	fs.StringVar(&config.SQLitePath, "f", config.SQLitePath, "local SQLite database path")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	presignExpiry := fs.Int("x", int(config.S3PresignExpiry.Minutes()), "presign expiry (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.S3PresignExpiry = time.Duration(*presignExpiry) * time.Minute
}
