package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/shortscope/shortscope/pkg/analysis"
	"github.com/shortscope/shortscope/pkg/classify"
	"github.com/shortscope/shortscope/pkg/config"
	"github.com/shortscope/shortscope/pkg/domain"
	"github.com/shortscope/shortscope/pkg/runner"
	"github.com/shortscope/shortscope/pkg/store"
	"github.com/shortscope/shortscope/pkg/surface"
)

// Opts with all CLI options
type Opts struct {
	Config  string `short:"c" long:"config" env:"SHORTSCOPE_CONFIG" default:"config.yml" description:"configuration file"`
	Debug   bool   `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool   `short:"V" long:"version" description:"show version info"`
	NoColor bool   `long:"no-color" env:"NO_COLOR" description:"disable color output"`

	TrainCmd struct {
		Profile string `short:"p" long:"profile" default:"all" description:"profile id, or all"`
	} `command:"train" description:"run training sessions until every region in the plan is satisfied"`

	MeasureCmd struct {
		Profile string `short:"p" long:"profile" default:"all" description:"profile id, or all"`
	} `command:"measure" description:"run home feed measurement sessions until the sample target is reached"`

	ProgressCmd struct{} `command:"progress" description:"show collection progress per profile and scope"`

	AnalyzeCmd struct {
		Observed bool `long:"observed" description:"print the raw per-profile tally only, skip inference"`
	} `command:"analyze" description:"aggregate home feed sessions and test visibility against severity"`

	ExportCmd struct {
		Dir string `short:"d" long:"dir" default:"./sessions" description:"output directory"`
	} `command:"export" description:"export sessions to per-session JSON files"`

	ImportCmd struct {
		Dir string `short:"d" long:"dir" default:"./sessions" description:"input directory"`
	} `command:"import" description:"import per-session JSON files into the store"`

	SeedCheckCmd struct {
		Profile string `short:"p" long:"profile" description:"profile id, defaults to the first configured"`
	} `command:"seedcheck" description:"verify the classifier marks every configured seed as related"`

	SetupCmd struct {
		Profile string `short:"p" long:"profile" required:"true" description:"profile id"`
		URL     string `long:"url" default:"https://www.youtube.com/" description:"page to open for login"`
	} `command:"setup" description:"open a browser on the profile identity for manual login"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	color.NoColor = opts.NoColor

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	setupLog(opts.Debug, cfg.LLM.APIKey)

	log.Printf("[INFO] starting shortscope version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, parser.Active.Name, &opts, cfg); err != nil {
		log.Printf("[ERROR] %s failed: %v", parser.Active.Name, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, opts *Opts, cfg *config.Config) error {
	st, err := store.New(ctx, store.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Printf("[WARN] close store: %v", cerr)
		}
	}()

	newSurface := func(ctx context.Context, profileID string) (surface.Surface, error) {
		return surface.NewBrowser(ctx, cfg.Browser, profileID)
	}
	r := runner.New(cfg, st, classify.NewClassifier(cfg.LLM), newSurface)

	switch command {
	case "train":
		if opts.TrainCmd.Profile == "all" {
			return r.TrainAll(ctx)
		}
		return r.Train(ctx, opts.TrainCmd.Profile)

	case "measure":
		if opts.MeasureCmd.Profile == "all" {
			return r.MeasureAll(ctx)
		}
		return r.Measure(ctx, opts.MeasureCmd.Profile)

	case "progress":
		targetFor := func(scope domain.Scope) int {
			if scope == domain.ScopeHome {
				return cfg.Measurement.ItemsPerSession
			}
			return cfg.Training.ItemsPerSession
		}
		rows, err := analysis.BuildProgress(ctx, st, targetFor)
		if err != nil {
			return err
		}
		analysis.WriteProgress(os.Stdout, rows)
		return nil

	case "analyze":
		return analyze(ctx, st, cfg, opts.AnalyzeCmd.Observed)

	case "export":
		n, err := st.ExportJSON(ctx, opts.ExportCmd.Dir)
		if err != nil {
			return err
		}
		log.Printf("[INFO] exported %d sessions to %s", n, opts.ExportCmd.Dir)
		return nil

	case "import":
		scopes := []domain.Scope{domain.ScopeHome}
		for _, name := range cfg.RegionNames() {
			scopes = append(scopes, domain.Scope(name))
		}
		n, err := st.ImportJSON(ctx, opts.ImportCmd.Dir, scopes)
		if err != nil {
			return err
		}
		log.Printf("[INFO] imported %d sessions from %s", n, opts.ImportCmd.Dir)
		return nil

	case "seedcheck":
		profile := opts.SeedCheckCmd.Profile
		if profile == "" {
			profile = cfg.Profiles[0].ID
		}
		results, err := r.SeedCheck(ctx, profile)
		if err != nil {
			return err
		}
		bad := 0
		for _, res := range results {
			if res.Err != nil || !res.Related {
				bad++
			}
		}
		if bad > 0 {
			return fmt.Errorf("%d of %d seeds failed the check", bad, len(results))
		}
		log.Printf("[INFO] all %d seeds check out", len(results))
		return nil

	case "setup":
		return surface.Login(ctx, cfg.Browser, opts.SetupCmd.Profile, opts.SetupCmd.URL)

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func analyze(ctx context.Context, st *store.Store, cfg *config.Config, observedOnly bool) error {
	tally, err := analysis.Aggregate(ctx, st, domain.ScopeHome, cfg.Measurement.CountUnlabeled)
	if err != nil {
		return err
	}
	if observedOnly {
		analysis.WriteObserved(os.Stdout, tally)
		return nil
	}

	res, err := analysis.Evaluate(tally.Regions, cfg.SeverityWeights(), cfg.Analysis.Alpha)
	if err != nil {
		if errors.Is(err, analysis.ErrNoData) {
			return fmt.Errorf("no labeled home feed data yet, run measure first: %w", err)
		}
		return err
	}
	analysis.WriteReport(os.Stdout, tally, res)
	return nil
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
