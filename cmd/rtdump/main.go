package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/riverfjs/richtextify-go"
)

const appName = "rtdump"

type envKey struct{}

type env struct {
	log *zap.Logger
	cfg *richtextify.RenderConfig
}

func envFromContext(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{log: zap.NewNop(), cfg: richtextify.DefaultConfig()}
}

// prepareLogger builds a console logger on stderr so dumps on stdout stay
// clean. Level names are coloured only on terminals.
func prepareLogger(debug bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	if term.IsTerminal(int(os.Stderr.Fd())) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.TimeKey = zapcore.OmitKey
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core).Named(appName)
}

func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	e := &env{log: prepareLogger(cmd.Bool("debug"))}

	var err error
	if e.cfg, err = richtextify.LoadConfig(cmd.String("config")); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	richtextify.SetLogger(e.log)
	e.log.Debug("Program started", zap.Strings("args", os.Args))
	return context.WithValue(ctx, envKey{}, e), nil
}

func destroyAppContext(ctx context.Context, _ *cli.Command) (err error) {
	e := envFromContext(ctx)
	if er := e.log.Sync(); er != nil && !isSyncNoise(er) {
		err = multierr.Append(err, fmt.Errorf("unable to sync log: %w", er))
	}
	return
}

// syncing stderr on some platforms returns EINVAL/ENOTTY
func isSyncNoise(err error) bool {
	s := err.Error()
	return strings.Contains(s, "invalid argument") || strings.Contains(s, "inappropriate ioctl")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            appName,
		Usage:           "converts markup documents to styled text and dumps the result",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug logging"},
		},
		Commands: []*cli.Command{
			{
				Name:      "dump",
				Usage:     "Converts SOURCE and prints runs, ranges, blocks or plain text",
				ArgsUsage: "SOURCE",
				Action:    runDump,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "auto", Usage: "source `FORMAT`: auto, html, markdown, xhtml"},
					&cli.StringFlag{Name: "root", Usage: "CSS `SELECTOR` of the element to convert (html, markdown)"},
					&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Value: "runs", Usage: "output `MODE`: runs, ranges, blocks, plain"},
					&cli.BoolFlag{Name: "fetch", Usage: "fetch media and print placeholder geometry"},
				},
			},
			{
				Name:      "layout",
				Usage:     "Computes on-screen geometry for media of WIDTHxHEIGHT",
				ArgsUsage: "WIDTHxHEIGHT",
				Action:    runLayout,
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "container", Usage: "container width, defaults to configuration"},
				},
			},
			{
				Name:      "dumpconfig",
				Usage:     "Dumps actual configuration (YAML)",
				ArgsUsage: "DESTINATION",
				Action:    outputConfiguration,
			},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		os.Exit(1)
	}
}

func detectFormat(name, flag string) (richtextify.Format, error) {
	switch strings.ToLower(flag) {
	case "html":
		return richtextify.FormatHTML, nil
	case "markdown", "md":
		return richtextify.FormatMarkdown, nil
	case "xhtml", "xml":
		return richtextify.FormatXHTML, nil
	case "", "auto":
	default:
		return 0, fmt.Errorf("unknown format %q", flag)
	}
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".md"), strings.HasSuffix(lower, ".markdown"):
		return richtextify.FormatMarkdown, nil
	case strings.HasSuffix(lower, ".xhtml"), strings.HasSuffix(lower, ".xml"):
		return richtextify.FormatXHTML, nil
	default:
		return richtextify.FormatHTML, nil
	}
}

func runDump(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one SOURCE, got %d", cmd.Args().Len())
	}
	name := cmd.Args().First()

	var (
		data []byte
		err  error
	)
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return fmt.Errorf("unable to read source: %w", err)
	}

	format, err := detectFormat(name, cmd.String("format"))
	if err != nil {
		return err
	}
	opts := []richtextify.Option{
		richtextify.WithConfig(e.cfg),
		richtextify.WithFormat(format),
		richtextify.WithRootSelector(cmd.String("root")),
		richtextify.WithLogger(e.log),
	}

	var doc *richtextify.Document
	if cmd.Bool("fetch") {
		if doc, err = richtextify.Process(ctx, string(data), opts...); err != nil {
			return err
		}
		if doc.FetchErr != nil {
			e.log.Warn("Some media were replaced by stand-ins", zap.Error(doc.FetchErr))
		}
	} else {
		var text richtextify.Text
		switch format {
		case richtextify.FormatMarkdown:
			text, err = richtextify.ConvertMarkdown(string(data), opts...)
		case richtextify.FormatXHTML:
			text, err = richtextify.ConvertXHTML(string(data), opts...)
		default:
			text, err = richtextify.ConvertHTML(string(data), opts...)
		}
		if err != nil {
			return err
		}
		doc = &richtextify.Document{Text: text}
	}
	e.log.Debug("Converted", zap.String("source", name), zap.Stringer("format", format), zap.Int("runs", len(doc.Text)))

	out := os.Stdout
	switch cmd.String("mode") {
	case "runs":
		for i, run := range doc.Text {
			fmt.Fprintf(out, "%4d %q %s\n", i, run.Text, run.Attrs)
		}
	case "ranges":
		for _, r := range richtextify.Ranges(doc.Text) {
			fmt.Fprintf(out, "%-14s %5d %5d %v\n", r.Key, r.Offset, r.Length, r.Value)
		}
	case "blocks":
		for _, b := range richtextify.Blocks(doc.Text) {
			fmt.Fprintf(out, "%s%s [%d,%d)\n", strings.Repeat("  ", b.Depth), b.Element, b.Start, b.End)
		}
	case "plain":
		fmt.Fprintln(out, richtextify.PlainText(doc.Text))
	default:
		return fmt.Errorf("unknown mode %q", cmd.String("mode"))
	}

	for _, item := range doc.Items {
		g := doc.Geometry(item.Placeholder)
		fmt.Fprintf(out, "media %s %s %gx%g at x=%g", item.Placeholder.ID, item.GetContentType(), g.Width, g.Height, g.OriginX)
		if item.Err != nil {
			fmt.Fprintf(out, " (placeholder: %v)", item.Err)
		}
		fmt.Fprintln(out)
	}
	return nil
}

func runLayout(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected WIDTHxHEIGHT, got %d arguments", cmd.Args().Len())
	}
	dims, err := parseSize(cmd.Args().First())
	if err != nil {
		return err
	}

	lc := e.cfg.Layout
	container := lc.ContainerWidth
	if cmd.IsSet("container") {
		container = cmd.Float("container")
	}
	g := richtextify.Layout(container, &dims, richtextify.Insets{Top: lc.InsetTop, Bottom: lc.InsetBottom})
	fmt.Fprintf(os.Stdout, "width=%g height=%g x=%g\n", g.Width, g.Height, g.OriginX)
	return nil
}

// parseSize reads WIDTHxHEIGHT, the separator is case-insensitive.
func parseSize(s string) (dims richtextify.Dimensions, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return dims, fmt.Errorf("malformed size %q, expected WIDTHxHEIGHT", s)
	}
	if dims.Width, err = strconv.ParseFloat(w, 64); err != nil {
		return dims, fmt.Errorf("bad width: %w", err)
	}
	if dims.Height, err = strconv.ParseFloat(h, 64); err != nil {
		return dims, fmt.Errorf("bad height: %w", err)
	}
	return dims, nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) (err error) {
	e := envFromContext(ctx)

	data, err := richtextify.DumpConfig(e.cfg)
	if err != nil {
		return fmt.Errorf("unable to marshal configuration: %w", err)
	}

	out := os.Stdout
	if cmd.Args().Len() > 0 {
		var f *os.File
		if f, err = os.Create(cmd.Args().First()); err != nil {
			return fmt.Errorf("unable to create destination: %w", err)
		}
		defer func() {
			err = multierr.Append(err, f.Close())
		}()
		out = f
		e.log.Info("Writing configuration", zap.String("file", cmd.Args().First()))
	}
	_, err = out.Write(data)
	return err
}
