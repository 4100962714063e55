// Package reset publishes the cause of the last reset on the bus and
// applies the RCM configuration.
package reset

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"rcm-go/bus"
	"rcm-go/drivers/rcm"
	"rcm-go/x/logx"
)

var (
	TopicReport = bus.Topic{"hal", "state", "system", "reset"}
	TopicConfig = bus.Topic{"config", "reset"}
)

type Service struct {
	dev *rcm.Device
	cfg Config
	log *slog.Logger

	mu     sync.Mutex
	report Report
}

func New(dev *rcm.Device, cfg Config) *Service {
	return &Service{dev: dev, cfg: cfg, log: logx.For(logx.ComponentReset)}
}

// Report returns the latest published report.
func (s *Service) Report() Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// Start captures the reset report, publishes it retained on TopicReport,
// applies the initial config and then follows TopicConfig until ctx ends.
// The report is captured before any latch is cleared.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}
	rep := Capture(s.dev)
	s.log.Info("reset captured",
		"causes", strings.Join(rep.Causes, ","),
		"sticky", strings.Join(rep.Sticky, ","))

	s.mu.Lock()
	s.report = rep
	s.mu.Unlock()
	s.publish(conn)

	s.apply(s.cfg)

	sub := conn.Subscribe(TopicConfig)
	go s.serviceLoop(ctx, conn, sub)
	return nil
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection, sub *bus.Subscription) {
	defer conn.Unsubscribe(sub)
	for {
		select {
		case <-ctx.Done():
			s.log.Debug("reset service stopping")
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			cfg, err := decodeConfig(msg.Payload)
			if err != nil {
				s.log.Warn("config rejected", "err", err)
				continue
			}
			s.apply(cfg)
			s.mu.Lock()
			s.report.Filter = s.dev.Filter()
			captureSticky(s.dev, &s.report)
			s.mu.Unlock()
			s.publish(conn)
		}
	}
}

func (s *Service) apply(cfg Config) {
	if cfg.Filter != nil {
		s.dev.ConfigureFilter(*cfg.Filter)
		s.log.Info("reset pin filter set",
			"run_wait", cfg.Filter.RunWait.String(),
			"stop_mode", cfg.Filter.StopMode,
			"width", cfg.Filter.Width)
	}
	if err := cfg.Unsupported(rcm.Supported); err != nil {
		s.log.Warn("config partly ignored", "err", err)
	}
	if cfg.ClearSticky {
		clearSticky(s.dev)
	}
	if cfg.ClearBootROM {
		clearBoot(s.dev)
	}
}

func (s *Service) publish(conn *bus.Connection) {
	s.mu.Lock()
	rep := s.report
	s.mu.Unlock()
	conn.Publish(conn.NewMessage(TopicReport, rep, true))
}
