package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/themer/app/enum"
	"github.com/umputun/themer/app/render"
	"github.com/umputun/themer/app/server"
	"github.com/umputun/themer/app/server/api"
	"github.com/umputun/themer/app/server/web"
	"github.com/umputun/themer/app/store"
	"github.com/umputun/themer/app/system"
	"github.com/umputun/themer/app/theme"
)

// SharedOptions contains options shared between all commands
type SharedOptions struct {
	DB string `short:"d" long:"db" env:"THEMER_DB" default:"themer.db" description:"database URL (sqlite file or postgres://...)"`

	System struct {
		Sources  []string      `long:"source" env:"SOURCE" env-delim:"," default:"env" default:"reported" default:"command" description:"system preference sources in order: env, reported, command, terminal"`
		EnvName  string        `long:"env-name" env:"ENV_NAME" default:"THEMER_SYSTEM_THEME" description:"environment variable holding light or dark"`
		Command  string        `long:"command" env:"COMMAND" description:"command printing the desktop color scheme, e.g. 'gsettings get org.gnome.desktop.interface color-scheme'"`
		Interval time.Duration `long:"interval" env:"INTERVAL" default:"5s" description:"system preference poll interval, 0 to disable"`
		Timeout  time.Duration `long:"timeout" env:"TIMEOUT" default:"2s" description:"system preference detection timeout"`
	} `group:"system" namespace:"system" env-namespace:"THEMER_SYSTEM"`

	Debug bool `long:"dbg" env:"DEBUG" description:"debug mode"`

	out io.Writer // command output, stdout if nil
}

// sources builds the system preference source chain. reported is used for the "reported" name.
func (o *SharedOptions) sources(reported *system.Reported) (system.Chain, error) {
	chain := make(system.Chain, 0, len(o.System.Sources))
	for _, name := range o.System.Sources {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "env":
			chain = append(chain, system.Env{Name: o.System.EnvName})
		case "reported":
			chain = append(chain, reported)
		case "command":
			fields := strings.Fields(o.System.Command)
			if len(fields) == 0 {
				continue
			}
			chain = append(chain, system.Command{Name: fields[0], Args: fields[1:]})
		case "terminal":
			chain = append(chain, system.Terminal{})
		case "":
		default:
			return nil, fmt.Errorf("unknown system preference source %q", name)
		}
	}
	return chain, nil
}

func (o *SharedOptions) writer() io.Writer {
	if o.out != nil {
		return o.out
	}
	return os.Stdout
}

// withController opens the store, builds a controller without a sink and runs fn with it.
func (o *SharedOptions) withController(ctx context.Context, fn func(context.Context, *theme.Controller) error) error {
	setupLogs(o.Debug)

	src, err := o.sources(&system.Reported{})
	if err != nil {
		return err
	}

	kvStore, err := store.New(o.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	watcher := system.NewWatcher(src, system.WatcherConfig{Timeout: o.System.Timeout})
	ctrl := theme.New(kvStore, nil, watcher)
	defer ctrl.Close()
	return fn(ctx, ctrl)
}

func (o *SharedOptions) print(t enum.Theme) {
	render.NewTerminal(o.writer()).Render(t)
}

// ServerCmd implements the server subcommand
type ServerCmd struct {
	SharedOptions

	Server struct {
		Address     string        `long:"address" env:"ADDRESS" default:":8080" description:"server listen address"`
		ReadTimeout time.Duration `long:"read-timeout" env:"READ_TIMEOUT" default:"5s" description:"read timeout"`
		BaseURL     string        `long:"base-url" env:"BASE_URL" description:"base URL path for reverse proxy (e.g., /themer)"`
		Title       string        `long:"title" env:"TITLE" default:"themer" description:"page title"`
	} `group:"server" namespace:"server" env-namespace:"THEMER_SERVER"`

	Auth struct {
		User         string `long:"user" env:"USER" default:"admin" description:"basic auth user for changing the theme"`
		PasswordHash string `long:"password-hash" env:"PASSWORD_HASH" description:"bcrypt hash for the auth user (enables auth)"`
	} `group:"auth" namespace:"auth" env-namespace:"THEMER_AUTH"`

	ctx    context.Context
	cancel context.CancelFunc
}

// Execute runs the server command
func (s *ServerCmd) Execute(_ []string) error {
	setupLogs(s.Debug)

	defer func() {
		if x := recover(); x != nil {
			log.Printf("[WARN] run time panic:\n%v", x)
			panic(x)
		}
	}()

	if s.ctx == nil {
		s.ctx, s.cancel = context.WithCancel(context.Background())
		signals(s.cancel)
	}

	return s.run(s.ctx)
}

func (s *ServerCmd) run(ctx context.Context) error {
	baseURL, err := validateBaseURL(s.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	reported := &system.Reported{}
	src, err := s.sources(reported)
	if err != nil {
		return fmt.Errorf("invalid system source: %w", err)
	}

	log.Printf("[INFO] starting themer server on %s", s.Server.Address)
	log.Printf("[INFO] system preference sources: %s", strings.Join(s.System.Sources, ","))
	if baseURL != "" {
		log.Printf("[INFO] base URL: %s", baseURL)
	}
	if s.Auth.PasswordHash != "" {
		log.Printf("[INFO] basic auth enabled for user %s", s.Auth.User)
	}

	kvStore, err := store.New(s.DB)
	if err != nil {
		return fmt.Errorf("failed to initialize store: %w", err)
	}
	defer kvStore.Close()

	watcher := system.NewWatcher(src, system.WatcherConfig{Interval: s.System.Interval, Timeout: s.System.Timeout})
	state, hub := render.NewState(), web.NewHub()
	ctrl := theme.New(kvStore, render.Multi{state, hub}, watcher)
	ctrl.Init(ctx)
	defer ctrl.Close()

	var reporter api.Reporter // browsers can report only when the reported source is in the chain
	if slices.ContainsFunc(src, func(x system.Source) bool { return x == system.Source(reported) }) {
		reporter = system.Reporter{Reported: reported, Watcher: watcher}
	}

	srv, err := server.New(ctrl, reporter, state, hub, server.Config{
		Address:      s.Server.Address,
		ReadTimeout:  s.Server.ReadTimeout,
		Version:      revision,
		BaseURL:      baseURL,
		Title:        s.Server.Title,
		AuthUser:     s.Auth.User,
		PasswordHash: s.Auth.PasswordHash,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	go watcher.Run(ctx)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// ShowCmd implements the show subcommand
type ShowCmd struct {
	SharedOptions
}

// Execute prints the theme the server would start with, without persisting anything.
func (c *ShowCmd) Execute(_ []string) error {
	return c.withController(context.Background(), func(ctx context.Context, ctrl *theme.Controller) error {
		t := ctrl.ResolveInitial(ctx)
		c.print(t)
		since, ok := ctrl.Overridden(ctx)
		if !ok {
			_, _ = fmt.Fprintf(c.writer(), "following system preference (%s)\n", ctrl.QuerySystemPreference())
			return nil
		}
		_, _ = fmt.Fprintf(c.writer(), "pinned since %s\n", since.Local().Format(time.DateTime))
		return nil
	})
}

// ToggleCmd implements the toggle subcommand
type ToggleCmd struct {
	SharedOptions
}

// Execute switches the persisted theme.
func (c *ToggleCmd) Execute(_ []string) error {
	return c.withController(context.Background(), func(ctx context.Context, ctrl *theme.Controller) error {
		ctrl.Init(ctx)
		c.print(ctrl.Toggle(ctx))
		return nil
	})
}

// SetCmd implements the set subcommand
type SetCmd struct {
	SharedOptions

	Args struct {
		Theme string `positional-arg-name:"theme" description:"light or dark" required:"true"`
	} `positional-args:"yes" required:"yes"`
}

// Execute persists the given theme.
func (c *SetCmd) Execute(_ []string) error {
	t, err := enum.ParseTheme(c.Args.Theme)
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}
	return c.withController(context.Background(), func(ctx context.Context, ctrl *theme.Controller) error {
		ctrl.Apply(ctx, t)
		c.print(ctrl.Current())
		return nil
	})
}

// ResetCmd implements the reset subcommand
type ResetCmd struct {
	SharedOptions
}

// Execute removes the persisted theme.
func (c *ResetCmd) Execute(_ []string) error {
	return c.withController(context.Background(), func(ctx context.Context, ctrl *theme.Controller) error {
		if err := ctrl.ClearOverride(ctx); err != nil {
			return fmt.Errorf("failed to reset theme: %w", err)
		}
		_, _ = fmt.Fprintf(c.writer(), "theme override removed, following system preference (%s)\n", ctrl.QuerySystemPreference())
		return nil
	})
}
