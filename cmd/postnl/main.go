// Package main provides the postnl CLI for working with PostNL entities.
//
// Usage:
//
//	postnl gen accessors --config entities.yaml --output accessors.gen.go
//	postnl scaffold --name Parcel --field house-nr --service shipping
//	postnl convert --from xml --to json --service labelling request.xml
//	postnl describe Shipment --service shipping
//	postnl locations --postalcode "2132 WT"
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sokol111/postnl-go/pkg/observability"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "postnl",
		Short:         "Tools for the PostNL shipping entities",
		Long:          `postnl converts entities between the XML and JSON wire formats, describes entity types, generates accessors and calls the PostNL API.`,
		Version:       observability.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newGenCmd(),
		newScaffoldCmd(),
		newConvertCmd(),
		newDescribeCmd(),
		newLocationsCmd(),
	)

	return rootCmd
}
