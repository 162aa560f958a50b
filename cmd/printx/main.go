package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hengadev/printx"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "render":
		renderCommand(os.Args[2:])
	case "init":
		initCommand(os.Args[2:])
	case "version":
		fmt.Printf("printx %s\n", version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  render    Render a JSON or YAML document as indented text\n")
	fmt.Fprintf(os.Stderr, "  init      Write a starter printx.yaml configuration file\n")
	fmt.Fprintf(os.Stderr, "  version   Show version information\n")
	fmt.Fprintf(os.Stderr, "\nRun '%s <command> -h' for help on a specific command.\n", os.Args[0])
}

func renderCommand(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to printx.yaml configuration file")
	format := fs.String("format", "auto", "Input format: json, yaml, or auto (by file extension)")
	maxDepth := fs.Int("max-depth", -1, "Override maximum nesting depth")
	maxSeqLen := fs.Int("max-seq", -1, "Override maximum collection size")
	truncate := fs.Int("truncate", -1, "Override global text truncation limit")
	verbose := fs.Bool("v", false, "Verbose output")

	fs.Parse(args)

	// A .env file, when present, feeds the PRINTX_* variables.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *maxDepth >= 0 {
		cfg.MaxDepth = *maxDepth
	}
	if *maxSeqLen >= 0 {
		cfg.MaxSequenceLength = *maxSeqLen
	}
	if *truncate >= 0 {
		cfg.MaxTextLength = *truncate
	}

	opts := cfg.Options()
	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, printx.WithLogger(logger.With("run_id", uuid.NewString())))
	}

	doc, err := readDocument(fs.Arg(0), *format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input: %v\n", err)
		os.Exit(1)
	}

	p, err := printx.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure printer: %v\n", err)
		os.Exit(1)
	}

	out, err := p.Render(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Render failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}

// loadConfig resolves configuration in increasing precedence: package
// defaults, then the YAML file when one is given, then PRINTX_* environment
// variables.
func loadConfig(path string) (printx.Config, error) {
	if path == "" {
		return printx.LoadConfigFromEnvironment()
	}
	cfg, err := printx.LoadConfigFromFile(path)
	if err != nil {
		return printx.Config{}, err
	}
	return applyEnvironment(cfg)
}

func initCommand(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	configPath := fs.String("config", "printx.yaml", "Path for the configuration file")
	force := fs.Bool("force", false, "Overwrite an existing configuration file")

	fs.Parse(args)

	if _, err := os.Stat(*configPath); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Config file already exists at %s (use -force to overwrite)\n", *configPath)
		os.Exit(1)
	}

	if err := printx.SaveConfigToFile(printx.DefaultConfig(), *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created %s\n", *configPath)
}
