package logging

import (
	"fmt"
	"io"
	"net"
	"os"

	"github.com/adityab94/FitForge/config"
	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/elastic/go-elasticsearch/v7"
	"github.com/sirupsen/logrus"
	"gopkg.in/go-extras/elogrus.v7"
)

const appName = "fitforge-api"

// New builds the process logger. The ELK and Logstash hooks are optional; a
// hook that cannot be set up is reported on the logger and skipped.
func New(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	if out == nil {
		out = os.Stdout
	}

	logger := logrus.New()
	logger.Out = out

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(level)

	switch cfg.Log.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	}

	if cfg.Log.ElkEnable {
		client, err := elasticsearch.NewClient(elasticsearch.Config{
			Addresses: []string{cfg.Log.ElkURL},
		})
		if err != nil {
			logger.WithError(err).Warn("elasticsearch client unavailable")
		} else if hook, err := elogrus.NewAsyncElasticHook(client, appName, level, cfg.Log.ElkIndex); err != nil {
			logger.WithError(err).Warn("elasticsearch hook unavailable")
		} else {
			logger.Hooks.Add(hook)
		}
	}

	if cfg.Log.LogstashEnable {
		conn, err := net.Dial("udp", cfg.Log.LogstashURL)
		if err != nil {
			logger.WithError(err).Warn("logstash unreachable")
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": appName}))
			logger.Hooks.Add(hook)
		}
	}

	return logger, nil
}
