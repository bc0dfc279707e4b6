// Package cli implements the sneakerstore console: storefront browsing,
// cart and checkout, and the back-office admin commands. Every command
// works against the API when it is reachable and degrades to the static
// feeds and the local store when it is not.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Anhngoc0603/sneakerstore/internal/admin"
	"github.com/Anhngoc0603/sneakerstore/internal/auth"
	"github.com/Anhngoc0603/sneakerstore/internal/config"
	"github.com/Anhngoc0603/sneakerstore/internal/gateway"
	"github.com/Anhngoc0603/sneakerstore/internal/localstore"
	"github.com/Anhngoc0603/sneakerstore/pkg/logger"
)

// App holds everything the subcommands share. It is wired once in
// PersistentPreRunE so flag parsing has happened before config loads.
type App struct {
	Config config.Config
	Log    *slog.Logger
	Store  localstore.Store
	GW     *gateway.Gateway
	State  *admin.State
	Reg    *admin.Registry
	Auth   *auth.Service
}

func (a *App) init(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.Config = cfg
	a.Log = logger.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	switch cfg.Store.Backend {
	case "redis":
		a.Store = localstore.NewRedisStore(cfg.Store.RedisAddr, "sneakerstore")
	case "memory":
		a.Store = localstore.NewMemoryStore()
	default:
		a.Store, err = localstore.NewFileStore(cfg.Store.Path)
		if err != nil {
			return err
		}
	}

	client := gateway.NewClient(cfg.API.BaseURL, cfg.API.Timeout, a.Log)
	a.GW = gateway.New(client, os.DirFS(cfg.API.DataDir), a.Store, a.Log)
	a.State = admin.NewState(a.GW, a.Log)
	a.Reg = admin.NewRegistry()
	a.Auth = auth.NewService(a.Store)
	return nil
}

// NewRootCommand builds the console command tree.
func NewRootCommand() *cobra.Command {
	app := &App{}
	var configPath string

	cmd := &cobra.Command{
		Use:           "sneakerstore",
		Short:         "SNEAKER storefront and admin console",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(configPath)
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	cmd.AddCommand(NewAdminCommand(app))
	cmd.AddCommand(NewDashboardCommand(app))
	cmd.AddCommand(NewShopCommand(app))
	cmd.AddCommand(NewCartCommand(app))
	cmd.AddCommand(NewCheckoutCommand(app))
	cmd.AddCommand(NewAccountCommand(app))

	return cmd
}
