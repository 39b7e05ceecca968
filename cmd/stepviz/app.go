package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/logger"
	"github.com/katalvlaran/stepviz/metrics"
	"github.com/katalvlaran/stepviz/render"
	"github.com/katalvlaran/stepviz/session"
	"github.com/katalvlaran/stepviz/step"
	"github.com/katalvlaran/stepviz/structure"
)

const (
	flagConfig        = "config"
	flagLogLevel      = "log-level"
	flagLogFormat     = "log-format"
	flagSpeed         = "speed"
	flagInstant       = "instant"
	flagMetricsListen = "metrics-listen"
	flagNoColor       = "no-color"

	shutdownTimeout = 5 * time.Second
)

// app carries what every command shares once the root pre-run has loaded
// the configuration.
type app struct {
	root    *cobra.Command
	cfgFile string
	noColor bool
	stderr  io.Writer

	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Recorder
	server  *http.Server
}

func newApp(stderr io.Writer) *app {
	a := &app{stderr: stderr, log: logger.Discard()}
	a.root = &cobra.Command{
		Use:   "stepviz",
		Short: "Step-by-step visualisation of classic data structures",
		Long: `stepviz plays operations on nine teaching data structures one step at a
time: arrays, strings, linked lists, stacks, queues, matrices, binary search
trees, graphs and hash tables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.configure(cmd); err != nil {
				return fmt.Errorf("failed to initialize configuration: %w", err)
			}

			return nil
		},
	}

	pf := a.root.PersistentFlags()
	pf.StringVar(&a.cfgFile, flagConfig, "", "config file (default is ./stepviz.yaml or $HOME/.config/stepviz/stepviz.yaml)")
	pf.String(flagLogLevel, config.DefaultLogLevel, "log level: debug, info, warn or error")
	pf.String(flagLogFormat, config.DefaultLogFormat, "log format: text or json")
	pf.Float64(flagSpeed, config.DefaultSpeed, "playback speed multiplier")
	pf.Bool(flagInstant, false, "play every step without waiting")
	pf.String(flagMetricsListen, "", "serve Prometheus metrics on this address while the command runs")
	pf.BoolVar(&a.noColor, flagNoColor, false, "disable coloured output")

	a.root.AddCommand(newListCmd(a))
	a.root.AddCommand(newSeedCmd(a))
	a.root.AddCommand(newRunCmd(a))
	a.root.AddCommand(newTourCmd(a))

	return a
}

// Execute runs the command line and stops the metrics server on the way out.
func (a *app) Execute(ctx context.Context) (err error) {
	defer func() {
		err = errors.Join(err, a.shutdown())
	}()

	return a.root.ExecuteContext(ctx)
}

func (a *app) configure(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg, err := config.Load(a.cfgFile,
		config.WithFlag("logging.level", flags.Lookup(flagLogLevel)),
		config.WithFlag("logging.format", flags.Lookup(flagLogFormat)),
		config.WithFlag("playback.speed", flags.Lookup(flagSpeed)),
		config.WithFlag("playback.instant", flags.Lookup(flagInstant)),
	)
	if err != nil {
		return err
	}
	if listen, _ := flags.GetString(flagMetricsListen); listen != "" {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Listen = listen
	}
	a.cfg = cfg

	var errs []error
	if a.log, err = logger.New(cfg.Logging, a.stderr); err != nil {
		a.log = logger.Discard()
		errs = append(errs, fmt.Errorf("initializing logger: %w", err))
	}
	if a.noColor {
		color.NoColor = true
	}

	a.metrics = metrics.New()
	if cfg.Metrics.Enabled {
		if err := a.serveMetrics(cfg.Metrics.Listen); err != nil {
			errs = append(errs, fmt.Errorf("initializing metrics: %w", err))
		}
	}

	return errors.Join(errs...)
}

// serveMetrics binds addr and serves the recorder on /metrics until
// shutdown.
func (a *app) serveMetrics(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	a.server = &http.Server{Addr: ln.Addr().String(), Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("metrics server stopped", logger.Error(err))
		}
	}()
	a.log.Info("serving metrics", slog.String("addr", a.server.Addr))

	return nil
}

func (a *app) shutdown() error {
	if a.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return a.server.Shutdown(ctx)
}

// session opens a session on the seed state of kind with the configured
// playback speed.
func (a *app) session(kind structure.Kind) (*session.Session, error) {
	playback := a.cfg.Playback

	return session.New(kind,
		session.WithLogger(a.log),
		session.WithMetrics(a.metrics),
		session.WithDelay(func(s step.Step) time.Duration { return playback.Scale(s.Delay) }),
	)
}

func (a *app) renderer() *render.Renderer {
	if a.noColor {
		return render.New(render.WithoutColor())
	}

	return render.New()
}
