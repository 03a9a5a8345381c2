package logger

import (
	"context"
	"path/filepath"
	"strconv"

	"github.com/maxaizer/talenthub/pkg/loki"
	log "github.com/sirupsen/logrus"
)

const lokiSource = "loki"

type logrusAdapter struct{}

func (l *logrusAdapter) Error(msg string, args ...any) {
	log.WithFields(log.Fields{"args": args, "source": lokiSource}).Error(msg)
}

type pusher interface {
	Push(entry loki.LogEntry) error
}

type lokiHook struct {
	pusher   pusher
	minLevel log.Level
}

func (h *lokiHook) Fire(entry *log.Entry) error {
	// failures of the pusher itself are logged too and must not loop back
	if entry.Data["source"] == lokiSource {
		return nil
	}

	caller := ""
	if entry.Caller != nil {
		caller = filepath.Base(entry.Caller.Function) + ":" + strconv.Itoa(entry.Caller.Line)
	}

	var fields log.Fields
	if len(entry.Data) > 0 {
		fields = make(log.Fields, len(entry.Data))
		for key, value := range entry.Data {
			if err, ok := value.(error); ok {
				value = err.Error()
			}
			fields[key] = value
		}
	}

	return h.pusher.Push(loki.LogEntry{
		Level:   entry.Level.String(),
		Message: entry.Message,
		Caller:  caller,
		Fields:  fields,
	})
}

func (h *lokiHook) Levels() []log.Level {
	var levels []log.Level
	for _, level := range log.AllLevels {
		if level <= h.minLevel {
			levels = append(levels, level)
		}
	}
	return levels
}

func addLokiHook(ctx context.Context, cfg loki.Config, minLevel log.Level) (*loki.Pusher, error) {
	lokiPusher, err := loki.New(ctx, cfg, &logrusAdapter{})
	if err != nil {
		return nil, err
	}
	log.AddHook(&lokiHook{pusher: lokiPusher, minLevel: minLevel})
	log.Info("Loki logging enabled")
	return lokiPusher, nil
}
