package demo

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"

	"github.com/ktustanowski/durationreporter/internal/config"
	"github.com/ktustanowski/durationreporter/internal/playground"
	"github.com/ktustanowski/durationreporter/pkg/durationreporter"
	reporterlog "github.com/ktustanowski/durationreporter/pkg/log"
	"github.com/ktustanowski/durationreporter/pkg/metrics"
)

const warningSendTimeout = 5 * time.Second

func run(ctx context.Context) error {
	cfg := config.Get()

	logger := logrus.New()
	logger.SetLevel(logrus.Level(cfg.Log.Level))
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetOutput(os.Stderr)
	log := logger.WithFields(logrus.Fields{
		"version":    config.VersionInfo.Version,
		"session_id": uuid.NewString(),
	})

	localLog := logrus.New()
	localLog.SetLevel(logrus.DebugLevel)

	sink := reporterlog.NewMemorySink()
	exporter := reporterlog.SetupWarningExporter(logger, localLog, sink, reporterlog.Config{
		SendTimeout: warningSendTimeout,
	})

	reporter, err := newReporter(log, cfg)
	if err != nil {
		return err
	}

	log.Infof("running demo scenarios, scale %v", cfg.Demo.Scale)
	if err := playground.Run(ctx, log, reporter, playground.Default(), cfg.Demo.Scale); err != nil {
		return fmt.Errorf("running scenarios: %w", err)
	}

	// Misordered calls are only logged.
	reporter.Begin("Problematic Code", "Executing 💥")
	reporter.End("Application Start", "Buffering")
	exporter.Wait()

	output := io.Writer(os.Stdout)
	if out != "" {
		f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	}

	if err := write(output, reporter, sink.Warnings(), cfg.Metrics.Enabled); err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}

	log.Infof("completed demo")
	return nil
}

func newReporter(log logrus.FieldLogger, cfg config.Config) (*durationreporter.Reporter, error) {
	unit, err := durationreporter.ParseTimeUnit(cfg.Report.Unit)
	if err != nil {
		return nil, err
	}
	generator, err := durationreporter.GeneratorFor(cfg.Report.Format)
	if err != nil {
		return nil, err
	}

	reporter := durationreporter.New(log)
	reporter.SetTimeUnit(unit)
	reporter.SetGenerator(generator)
	if cfg.Metrics.Enabled {
		metrics.Observe(reporter)
	}
	return reporter, nil
}

func write(w io.Writer, reporter *durationreporter.Reporter, warnings []reporterlog.Warning, withMetrics bool) error {
	var out strings.Builder

	out.WriteString(":: Default report\n")
	out.WriteString(reporter.GenerateReport())

	out.WriteString("\n:: Custom report #1\n")
	out.WriteString(playground.Listing(reporter.ReportData()))

	out.WriteString("\n:: Custom report #2\n")
	reporter.SetGenerator(playground.ArrowGenerator)
	out.WriteString(reporter.GenerateReport())

	fmt.Fprintf(&out, "\n:: Warnings (%d)\n", len(warnings))
	for _, w := range warnings {
		fmt.Fprintf(&out, "%s: %s (event=%s action=%s)\n", w.Level, w.Message, w.Fields["event"], w.Fields["action"])
	}

	if withMetrics {
		out.WriteString("\n:: Metrics\n")
		families, err := metrics.Registry.Gather()
		if err != nil {
			return fmt.Errorf("gathering metrics: %w", err)
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(&out, mf); err != nil {
				return fmt.Errorf("encoding metrics: %w", err)
			}
		}
	}

	_, err := io.WriteString(w, out.String())
	return err
}
