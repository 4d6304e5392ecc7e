package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sokol111/postnl-go/internal/entitygen"
)

func newGenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go code for entity types",
	}
	cmd.AddCommand(newGenAccessorsCmd())
	return cmd
}

func newGenAccessorsCmd() *cobra.Command {
	cfg := &entitygen.Config{}

	cmd := &cobra.Command{
		Use:   "accessors",
		Short: "Generate the entity accessor methods",
		Long: `Generate the TypeName, Get, Set and FieldNames methods of every type
listed in the entities file, plus the Types function returning their descriptions.

Example:
  postnl gen accessors --config entities.yaml --output accessors.gen.go`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := entitygen.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to create generator: %w", err)
			}
			if err := gen.Generate(); err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfg.ConfigFile, "config", "c", "", "Entities file listing the types (required)")
	cmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "Output file for generated code (required)")
	cmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output")

	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func newScaffoldCmd() *cobra.Command {
	cfg := entitygen.ScaffoldConfig{}
	var output string

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Scaffold a new entity type",
		Long: `Scaffold a model file declaring a new entity type with string fields.
Add the type to entities.yaml and run "postnl gen accessors" afterwards.

Example:
  postnl scaffold --name Parcel --field house-nr --field weight --service shipping`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := entitygen.Scaffold(cfg)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(output, src, 0o644)
		},
	}

	cmd.Flags().StringVar(&cfg.Name, "name", "", "Type name (required)")
	cmd.Flags().StringVar(&cfg.Package, "package", "model", "Go package of the file")
	cmd.Flags().StringVar(&cfg.Group, "group", "entity", "Type group: entity, message, request or response")
	cmd.Flags().StringSliceVar(&cfg.Fields, "field", nil, "Field name, repeatable")
	cmd.Flags().StringSliceVar(&cfg.Services, "service", nil, "Service the type is serialized for, repeatable (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file, stdout when empty")

	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("service")

	return cmd
}
