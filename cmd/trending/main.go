// Command trending extracts GitHub trending repository records from dated
// markdown digest files and loads them into a SQLite database.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	trending "github.com/theskumar/github-trending"
	"github.com/theskumar/github-trending/fs"
	"github.com/theskumar/github-trending/load"
	trendingslog "github.com/theskumar/github-trending/slog"
	"github.com/theskumar/github-trending/sqlite"
)

func main() {
	// A .env file, if present, can set TRENDING_DB and TRENDING_LOG_LEVEL.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input  string `help:"File or directory to scan for digest files." default:"."`
	Output string `help:"Destination database file." default:"trending.db" env:"TRENDING_DB"`
}

// Main represents the program.
type Main struct {
	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Record service for end-to-end testing.
	RecordService trending.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("trending"),
		kong.Description("Extract GitHub trending repository data from markdown files into a SQLite database."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr)

	// Open database
	fmt.Fprintf(stdout, "Connecting to database: %s\n", cli.Output)
	m.DB = sqlite.NewDB(cli.Output)
	if err := m.DB.Open(); err != nil {
		return fmt.Errorf("failed to open database at %q: %w", cli.Output, err)
	}
	defer m.Close()

	m.RecordService = trendingslog.NewLoggingRecordService(sqlite.NewRecordService(m.DB), logger)

	// Find all digest files
	fmt.Fprintf(stdout, "Scanning for markdown files in: %s\n", cli.Input)
	files, err := fs.DiscoverDigests(cli.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", trending.ErrorMessage(err))
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(stderr, "No valid markdown files found matching YYYY-MM-DD.md pattern")
		return trending.Errorf(trending.ENOTFOUND, "no valid input files in %q", cli.Input)
	}

	fmt.Fprintf(stdout, "Found %d markdown files\n", len(files))

	loader := &load.Loader{
		Records: m.RecordService,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
	}

	total, err := loader.Run(ctx, files)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nCompleted! Total repositories processed: %d\n", total)
	fmt.Fprintf(stdout, "Database saved to: %s\n", cli.Output)

	return nil
}

// newLogger builds the operational logger. The level comes from
// TRENDING_LOG_LEVEL and defaults to warn so normal runs only show the
// operator-facing progress and warning lines.
func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if v := os.Getenv("TRENDING_LOG_LEVEL"); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
