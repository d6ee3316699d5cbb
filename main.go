package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	x "github.com/linuxdeepin/go-x11-client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"codeberg.org/avlasov/xkbtray/pkg/icon"
	"codeberg.org/avlasov/xkbtray/pkg/indicator"
	"codeberg.org/avlasov/xkbtray/pkg/tray"
	"codeberg.org/avlasov/xkbtray/pkg/xlayout"
)

const eventQueueSize = 64

func main() {
	err := run()
	if err != nil {
		log.Fatalf("error: %+v", err)
	}
}

func run() error {
	fontPath := flag.String("font", "", "path to a scalable font (default: DejaVuSans.ttf from the XDG data dirs)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conn, err := x.NewConn()
	if err != nil {
		return fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	if err := xlayout.Setup(conn); err != nil {
		return fmt.Errorf("set up xkb: %w", err)
	}

	names, err := xlayout.Names(conn)
	if err != nil {
		return fmt.Errorf("resolve layout names: %w", err)
	}
	log.Infow("detected layouts", "names", names)

	face, err := icon.LoadFace(*fontPath)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	cache := icon.BuildCache(names, face)

	win, err := indicator.CreateWindow(conn)
	if err != nil {
		return fmt.Errorf("create icon window: %w", err)
	}

	events := make(chan x.GenericEvent, eventQueueSize)
	conn.AddEventChan(events)

	err = tray.DockWithRetry(ctx, tray.DockAttempts, tray.DockInterval, func() error {
		return tray.Dock(conn, conn.ScreenNumber, win.ID())
	}, log)
	if err != nil {
		return err
	}

	if err := win.Map(); err != nil {
		return fmt.Errorf("map icon window: %w", err)
	}

	group, err := xlayout.CurrentGroup(conn)
	if err != nil {
		return fmt.Errorf("query current group: %w", err)
	}

	ind := indicator.New(names, cache, win, group, xlayout.FirstEvent(conn), log)
	if err := ind.Redraw(); err != nil {
		return fmt.Errorf("initial draw: %w", err)
	}

	log.Info("started xkbtray")

	errChan := make(chan error, 3)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		err := ind.Run(ctx, events)
		if err != nil {
			errChan <- fmt.Errorf("event loop: %w", err)
		}
	}()

	go func() {
		defer wg.Done()
		err := systemdNotifyLoop(ctx)
		if err != nil {
			errChan <- fmt.Errorf("systemd notify: %w", err)
		}
	}()

	err = <-errChan
	switch {
	case errors.Is(err, context.Canceled):
		log.Info("shutting down")
		wg.Wait()
		return nil
	case err != nil:
		return err
	}

	return nil
}

func systemdNotifyLoop(ctx context.Context) error {
	// tell systemd that we're ready
	supported, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		return fmt.Errorf("notify systemd: %w", err)
	}
	if !supported {
		return nil
	}

	_, _ = daemon.SdNotify(false, "STATUS=Watching keyboard layout changes")

	// notify watchdog
	t, err := daemon.SdWatchdogEnabled(false)
	if err != nil {
		return fmt.Errorf("check watchdog: %w", err)
	}
	// if watchdog is not enabled, we don't need to notify it
	if t == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-time.After(t / 2):
			_, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog)
			if err != nil {
				return fmt.Errorf("notify watchdog: %w", err)
			}
		}
	}
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	loggerConfig := zap.NewDevelopmentConfig()
	if !debug {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	loggerConfig.OutputPaths = []string{"stdout"}
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger.Sugar(), nil
}
