package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"stock-organizer/internal/config"
	"stock-organizer/internal/exporter"
	"stock-organizer/internal/logger"
	"stock-organizer/internal/model"
	"stock-organizer/internal/organizer"
	"stock-organizer/internal/server"
	"stock-organizer/internal/sizes"
	"stock-organizer/internal/ui"
	"stock-organizer/internal/workbook"
)

const (
	appName    = "Stock Organizer"
	appVersion = "1.0.0"
	appDesc    = "Flattens \"Producto:/Bodega:\" inventory reports into a sized product table"
)

var (
	configPath  string
	verbose     bool
	showVersion bool
	inputPath   string
	outputDir   string
	formats     string
	organized   bool
	serve       bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.StringVar(&inputPath, "input", "", "Inventory workbook to organize (.xlsx or .csv)")
	flag.StringVar(&inputPath, "i", "", "Inventory workbook to organize (shorthand)")
	flag.StringVar(&outputDir, "output", "", "Override output directory from config")
	flag.StringVar(&formats, "format", "excel", "Comma-separated output formats (excel,html,word,json,csv)")
	flag.BoolVar(&organized, "organized", false, "Input is an already organized sheet; only re-export it")
	flag.BoolVar(&serve, "serve", false, "Run the HTTP API instead of a batch conversion")
}

func main() {
	exitCode := runSafe()

	// Keep the console window open when launched by double-click
	if !serve && term.IsTerminal(int(os.Stdin.Fd())) {
		waitForEnter()
	}
	os.Exit(exitCode)
}

func runSafe() (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("\n❌ PANIC: %v\n", r)
			code = 1
		}
	}()
	return run()
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	printBanner()

	// 1. Initialize
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if outputDir != "" {
		cfg.Output.Dir = outputDir
		if err := cfg.EnsureOutputDir(); err != nil {
			fmt.Printf("❌ %v\n", err)
			return 1
		}
	}

	if err := logger.Init(os.Stdout, cfg.GetLogPath(), verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()
	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))

	if verbose {
		cfg.Print()
	}

	org, err := newOrganizer(cfg)
	if err != nil {
		logger.Error("%v", err)
		return 1
	}

	if serve {
		if err := runServer(cfg, org); err != nil {
			logger.Error("Server failed: %v", err)
			return 1
		}
		return 0
	}

	if inputPath == "" {
		logger.Error("No input file. Use -input <file.xlsx> or -serve")
		flag.Usage()
		return 1
	}

	written, err := runInputs(cfg, org, inputPath, strings.Split(formats, ","), organized)
	if err != nil {
		logger.Error("Conversion failed: %v", err)
		return 1
	}

	for _, path := range written {
		logger.Info("  → %s", path)
	}
	logger.Info("✅ Done. Check [%s] directory.", cfg.Output.Dir)
	logger.Debug("Log file: %s", logger.GetLogFilePath())
	return 0
}

// waitForEnter pauses execution and waits for user to press Enter
func waitForEnter() {
	fmt.Println("\n==========================================")
	fmt.Println("Execution Finished. Press 'Enter' to exit.")
	fmt.Println("==========================================")
	bufio.NewReader(os.Stdin).ReadBytes('\n')
}

func newOrganizer(cfg *config.Config) (*organizer.Organizer, error) {
	ext, err := sizes.New(cfg.SizeOptions())
	if err != nil {
		return nil, fmt.Errorf("invalid size configuration: %w", err)
	}
	return organizer.New(cfg.ParseOptions(), ext), nil
}

func runServer(cfg *config.Config, org *organizer.Organizer) error {
	if !logger.IsVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, org, appVersion).Run(ctx)
}

// newPipeline draws progress bars only on an interactive stdout
func newPipeline() *ui.Pipeline {
	p := ui.NewPipeline(ui.BatchPhases)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		p.Disable()
	}
	return p
}

type batchOptions struct {
	Input      string
	OutputName string // defaults to output.file_name
	Formats    []string
	Organized  bool
	Pipeline   *ui.Pipeline
}

// runInputs runs one batch for a file, or one per workbook when input is a
// directory. Directory runs name outputs "<file_name>_<input stem>" and keep
// going past failed files.
func runInputs(cfg *config.Config, org *organizer.Organizer, input string, formats []string, organized bool) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, &workbook.UnreadableWorkbookError{Name: input, Err: err}
	}
	if !info.IsDir() {
		return runBatch(cfg, org, batchOptions{
			Input:     input,
			Formats:   formats,
			Organized: organized,
			Pipeline:  newPipeline(),
		})
	}

	files, err := workbook.ScanDirectory(input, cfg.Input.ExcludeDirs)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .xlsx or .csv files in %s", input)
	}
	logger.Info("Found %d workbooks in %s", len(files), input)

	// Parallel runs would interleave their bars; keep them for single-worker scans
	workers := min(cfg.Input.Workers, len(files))
	perFile := make([][]string, len(files))

	var (
		mu     sync.Mutex
		failed []error
	)
	addError := func(file string, err error) {
		mu.Lock()
		failed = append(failed, fmt.Errorf("%s: %w", filepath.Base(file), err))
		mu.Unlock()
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, file := range files {
		eg.Go(func() error {
			stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
			pipeline := newPipeline()
			if workers > 1 {
				pipeline.Disable()
			}
			paths, err := runBatch(cfg, org, batchOptions{
				Input:      file,
				OutputName: cfg.Output.FileName + "_" + stem,
				Formats:    formats,
				Organized:  organized,
				Pipeline:   pipeline,
			})
			perFile[i] = paths
			if err != nil {
				logger.Error("%s: %v", file, err)
				addError(file, err)
			}
			// Failures are collected, not returned, so the other files still run
			return nil
		})
	}
	_ = eg.Wait()

	var written []string
	for _, paths := range perFile {
		written = append(written, paths...)
	}

	if len(failed) > 0 {
		return written, fmt.Errorf("%d of %d workbooks failed: %w", len(failed), len(files), errors.Join(failed...))
	}
	return written, nil
}

// runBatch organizes one file and writes it in every requested format.
// It returns the paths written.
func runBatch(cfg *config.Config, org *organizer.Organizer, opts batchOptions) ([]string, error) {
	exporters := exporter.GetExporters(opts.Formats)
	if len(exporters) == 0 {
		return nil, fmt.Errorf("no valid output format in %q (want %s)",
			strings.Join(opts.Formats, ","), strings.Join(exporter.Formats(), ","))
	}

	pipeline := opts.Pipeline
	outputName := opts.OutputName
	if outputName == "" {
		outputName = cfg.Output.FileName
	}

	// --- Phase 1: Reading ---
	logger.Info("Phase 1: Reading %s...", opts.Input)
	readBar := pipeline.NextPhase(1)

	f, err := os.Open(opts.Input)
	if err != nil {
		return nil, &workbook.UnreadableWorkbookError{Name: opts.Input, Err: err}
	}
	defer f.Close()

	var (
		sheet   model.RawSheet
		records []model.ProductRecord
	)
	if opts.Organized {
		records, err = workbook.ReadRecords(f)
	} else {
		sheet, err = workbook.ReadSheet(f, filepath.Base(opts.Input))
	}
	if err != nil {
		return nil, err
	}
	readBar.Increment()

	// --- Phase 2: Parsing ---
	if opts.Organized {
		logger.Info("Phase 2: Input already organized, %d records", len(records))
		pipeline.NextPhase(1).Increment()
	} else {
		logger.Info("Phase 2: Parsing %d rows...", len(sheet.Rows))
		parseBar := pipeline.NextPhase(len(sheet.Rows))

		records, err = org.Organize(sheet)
		if err != nil {
			return nil, err
		}
		parseBar.Set(len(sheet.Rows))
	}

	summary := model.BuildSummary(records, time.Now().Format("2006-01-02 15:04:05"), filepath.Base(opts.Input))
	logger.Info("Organized %d records in %d warehouses (%d with size)",
		summary.TotalRecords, len(summary.Warehouses), summary.SizedRecords)
	if summary.TextQuantity > 0 {
		logger.Warn("%d records have a non-numeric quantity", summary.TextQuantity)
	}

	// --- Phase 3: Generating ---
	logger.Info("Phase 3: Generating outputs...")
	genBar := pipeline.NextPhase(len(exporters))

	var (
		written      []string
		exportErrors []error
	)
	for _, exp := range exporters {
		genBar.Describe(exp.Name())
		path := cfg.OutputPathFor(outputName, exp.Extension())
		if err := writeExport(path, exp, summary, records); err != nil {
			logger.Error("Export %s failed: %v", exp.Name(), err)
			exportErrors = append(exportErrors, err)
		} else {
			written = append(written, path)
		}
		genBar.Increment()
	}
	pipeline.Finish()
	pipeline.PrintSummary(fmt.Sprintf("%s: %d records, %d outputs", filepath.Base(opts.Input), summary.TotalRecords, len(written)))

	if len(exportErrors) > 0 {
		return written, fmt.Errorf("one or more exports failed: %w", errors.Join(exportErrors...))
	}
	return written, nil
}

func writeExport(path string, exp exporter.Exporter, summary *model.Summary, records []model.ProductRecord) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exp.Export(out, summary, records); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                  STOCK ORGANIZER v1.0.0                   ║
║      Inventario por bodega → tabla con tallas (xlsx)      ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}
