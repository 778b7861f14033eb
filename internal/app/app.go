package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avstrong/confirmation/internal/config"
	"github.com/avstrong/confirmation/internal/confirmation"
	"github.com/avstrong/confirmation/internal/logger"
	"github.com/avstrong/confirmation/internal/render"
	"github.com/avstrong/confirmation/internal/transport/web"
)

// ConfigPathEnv names the variable holding an explicit config file path.
const ConfigPathEnv = config.EnvPrefix + "_CONFIG"

func newRenderers(cfg *config.Config) (map[string]render.Renderer, error) {
	profile := cfg.Hotel.Profile()
	opts := cfg.RenderOptions()

	renderers := make(map[string]render.Renderer, len(cfg.Render.Styles))

	for _, name := range cfg.Render.Styles {
		style, err := render.StyleByName(name)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", name, err)
		}

		r, err := render.New(style, profile, opts...)
		if err != nil {
			return nil, fmt.Errorf("init %s renderer: %w", name, err)
		}

		renderers[name] = r
	}

	return renderers, nil
}

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	cfg, err := config.Load(os.Getenv(ConfigPathEnv))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err = l.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	renderers, err := newRenderers(cfg)
	if err != nil {
		return err
	}

	manager, err := confirmation.New(l, renderers, cfg.Render.Style)
	if err != nil {
		return fmt.Errorf("init confirmation manager: %w", err)
	}

	l.LogInfo("Confirmation styles %v are ready, default is %s", manager.Styles(), manager.DefaultStyle())

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      l.Std(),
		Host:              cfg.Server.Host,
		Port:              cfg.Server.Port,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		LivenessEndpoint:  cfg.Server.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, manager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
