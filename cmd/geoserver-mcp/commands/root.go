// Package commands defines the geoserver-mcp command line interface.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/camptocamp/geoserver-mcp/pkg/config"
	"github.com/camptocamp/geoserver-mcp/pkg/geoserver"
	"github.com/camptocamp/geoserver-mcp/pkg/log"
	"github.com/camptocamp/geoserver-mcp/pkg/server"
)

// Root returns the top-level command.
func Root(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "geoserver-mcp",
		Short:        "Manage GeoServer through the Model Context Protocol",
		SilenceUsage: true,
	}

	cmd.AddCommand(runCommand(version))
	cmd.AddCommand(versionCommand(version))

	var verbose bool
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Verbose output")
	cmd.PersistentPreRun = func(*cobra.Command, []string) {
		log.SetVerbose(verbose)
	}

	return cmd
}

func runCommand(version string) *cobra.Command {
	var (
		transport  string
		port       int
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the MCP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.Read(configFile)
			if err != nil {
				return err
			}

			client, err := geoserver.NewClient(conf)
			if err != nil {
				return err
			}

			s := server.New(server.Options{
				Transport: transport,
				Port:      port,
				Version:   version,
			}, conf, client)

			return s.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&transport, "transport", "stdio", "Transport to use: stdio, sse or streaming")
	cmd.Flags().IntVar(&port, "port", 8080, "TCP port for the sse and streaming transports")
	cmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML configuration file")

	return cmd
}

func versionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
