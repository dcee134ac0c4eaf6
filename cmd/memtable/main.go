package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/leengari/memtable/internal/config"
	"github.com/leengari/memtable/internal/logging"
)

// cli holds the parsed command line.
type cli struct {
	configPath string
	logLevel   string
	logFormat  string
	seqURL     string

	seed   string
	tables []string
	table  string
	where  []string // field=value conditions
	limit  int
	first  bool
	format string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, sets up logging and dispatches the command.
// It returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	var c cli

	app := kingpin.New("memtable", "In-memory tabular data store.")
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Flag("config", "Path to a TOML config file.").Short('c').StringVar(&c.configPath)
	app.Flag("log-level", "Log level (debug, info, warn, error).").StringVar(&c.logLevel)
	app.Flag("log-format", "Log format (text, json).").EnumVar(&c.logFormat, "text", "json")
	app.Flag("seq-url", "Seq server URL for log shipping.").StringVar(&c.seqURL)

	demo := app.Command("demo", "Run the users walkthrough on a fresh database.")

	show := app.Command("show", "Load a seed file and print its tables.")
	show.Flag("seed", "Seed file (.toml or .json).").StringVar(&c.seed)
	show.Flag("table", "Table to print; repeatable. Defaults to all seeded tables.").Short('t').StringsVar(&c.tables)

	find := app.Command("find", "Scan a seeded table with equality conditions.")
	find.Flag("seed", "Seed file (.toml or .json).").StringVar(&c.seed)
	find.Flag("table", "Table to scan.").Short('t').Required().StringVar(&c.table)
	find.Flag("where", "Condition field=value; repeatable, all must hold.").Short('w').StringsVar(&c.where)
	find.Flag("limit", "Stop after this many matches; 0 scans everything.").Short('n').Default("0").IntVar(&c.limit)
	find.Flag("first", "Return only the first match.").BoolVar(&c.first)

	export := app.Command("export", "Export a seeded table as CSV or JSON.")
	export.Flag("seed", "Seed file (.toml or .json).").StringVar(&c.seed)
	export.Flag("table", "Table to export.").Short('t').Required().StringVar(&c.table)
	export.Flag("format", "Output format.").Default("csv").EnumVar(&c.format, "csv", "json")

	command, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "memtable: %v\n", err)
		return 2
	}

	cfg, err := c.loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "memtable: %v\n", err)
		return 2
	}

	logger, closeFn, err := logging.SetupLogger(stderr, cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "memtable: %v\n", err)
		return 2
	}
	defer closeFn()
	slog.SetDefault(logger)

	if c.seed == "" {
		c.seed = cfg.Seed
	}

	switch command {
	case demo.FullCommand():
		err = runDemo(stdout, logger)
	case show.FullCommand():
		err = runShow(stdout, logger, c)
	case find.FullCommand():
		err = runFind(stdout, logger, c)
	case export.FullCommand():
		err = runExport(stdout, logger, c)
	}
	if err != nil {
		logger.Error("command failed", "command", command, "error", err)
		return 1
	}
	return 0
}

// loadConfig reads the config file and applies flag overrides.
func (c cli) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.logLevel != "" {
		cfg.Log.Level = c.logLevel
	}
	if c.logFormat != "" {
		cfg.Log.Format = c.logFormat
	}
	if c.seqURL != "" {
		cfg.Log.SeqURL = c.seqURL
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
