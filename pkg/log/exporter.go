//go:generate mockgen -destination ./mock/sink.go . Sink
package log

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Warning is a log entry forwarded to a Sink.
type Warning struct {
	// Seq orders warnings by the time they were logged.
	Seq     uint64
	Level   string
	Time    time.Time
	Message string
	Fields  map[string]string
}

type Sink interface {
	Send(ctx context.Context, warning *Warning) error
}

type Exporter interface {
	logrus.Hook
	Wait()
}

type Config struct {
	SendTimeout time.Duration
}

// SetupWarningExporter forwards warnings and errors logged through logger to sink. Failures to
// send are reported on localLog, which must not be logger itself.
func SetupWarningExporter(logger *logrus.Logger, localLog logrus.FieldLogger, sink Sink, cfg Config) Exporter {
	ex := newExporter(cfg, localLog, sink)
	logger.AddHook(ex)
	logrus.RegisterExitHandler(ex.Wait)
	return ex
}

func newExporter(cfg Config, localLog logrus.FieldLogger, sink Sink) *exporter {
	return &exporter{
		cfg:      cfg,
		sink:     sink,
		localLog: localLog,
	}
}

type exporter struct {
	localLog logrus.FieldLogger
	cfg      Config
	sink     Sink
	wg       sync.WaitGroup
	seq      atomic.Uint64
}

func (ex *exporter) Levels() []logrus.Level {
	return []logrus.Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
	}
}

func (ex *exporter) Fire(entry *logrus.Entry) error {
	warning := toWarning(entry)
	warning.Seq = ex.seq.Add(1)

	ex.wg.Add(1)
	go func() {
		defer ex.wg.Done()
		ex.send(warning)
	}()

	return nil
}

// Wait blocks until every fired entry was handed to the sink.
func (ex *exporter) Wait() {
	ex.wg.Wait()
}

func (ex *exporter) send(w *Warning) {
	ctx := context.Background()
	if ex.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ex.cfg.SendTimeout)
		defer cancel()
	}

	if err := ex.sink.Send(ctx, w); err != nil {
		ex.localLog.Errorf("failed to send warning: %v", err)
	}
}

// toWarning copies the entry; logrus reuses entries once Fire returns.
func toWarning(e *logrus.Entry) *Warning {
	return &Warning{
		Level:   e.Level.String(),
		Time:    e.Time,
		Message: e.Message,
		Fields: lo.MapValues(e.Data, func(value interface{}, _ string) string {
			return fmt.Sprintf("%v", value)
		}),
	}
}
