package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Sokol111/postnl-go/pkg/core/config"
	"github.com/Sokol111/postnl-go/pkg/core/logger"
	"github.com/Sokol111/postnl-go/pkg/http/client"
	"github.com/Sokol111/postnl-go/pkg/model"
	"github.com/Sokol111/postnl-go/pkg/postnl"
	"github.com/Sokol111/postnl-go/pkg/service"
)

type locationsOptions struct {
	configFile string
	envFile    string
	postalcode string
	baseURL    string
	dump       bool
}

func newLocationsCmd() *cobra.Command {
	opts := &locationsOptions{}

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List the pickup points nearest to a postal code",
		Long: `List the pickup points nearest to a postal code.
The API key and customer are read from POSTNL_* variables, the .env file
or the config file.

Example:
  POSTNL_API_KEY=... postnl locations --postalcode "2132 WT"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocations(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Config file")
	cmd.Flags().StringVar(&opts.envFile, "env-file", ".env", "Dotenv file")
	cmd.Flags().StringVarP(&opts.postalcode, "postalcode", "p", "", "Postal code to search around (required)")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the decoded locations")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", "", "Override the API host")
	_ = cmd.Flags().MarkHidden("base-url")

	_ = cmd.MarkFlagRequired("postalcode")

	return cmd
}

func runLocations(ctx context.Context, out io.Writer, opts *locationsOptions) error {
	if _, err := config.LoadDotEnv(opts.envFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", opts.envFile, err)
	}
	v, err := config.NewViper(opts.configFile)
	if err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	httpClient, _, err := client.ProvideHTTPClient(client.Name)(v, log)
	if err != nil {
		return err
	}
	svcOpts := []service.Option{service.WithLogger(log)}
	if opts.baseURL != "" {
		svcOpts = append(svcOpts, service.WithBaseURL(opts.baseURL))
	}
	c := postnl.New(cfg, httpClient, svcOpts...)

	locations, err := c.NearestLocations(logger.With(ctx, log.With(zap.String("command", "locations"))), model.NewLocation(opts.postalcode))
	if err != nil {
		return err
	}
	log.Debug("locations received", zap.Int("count", len(locations)))

	if opts.dump {
		spew.Fdump(out, locations)
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tCITY\tDISTANCE")
	for _, l := range locations {
		city := ""
		if l.Address != nil {
			city = lo.FromPtr(l.Address.City)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", lo.FromPtr(l.LocationCode), lo.FromPtr(l.Name), city, lo.FromPtr(l.Distance))
	}
	return w.Flush()
}
