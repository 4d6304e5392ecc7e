package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Sokol111/postnl-go/pkg/model"
)

func newDescribeCmd() *cobra.Command {
	var service string

	cmd := &cobra.Command{
		Use:   "describe [type]",
		Short: "List entity types or the fields of one type",
		Long: `Without arguments, list every registered entity type with its group.
With a type name, list its fields; with --service, only the fields
serialized for that service together with their XML namespace.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return describeTypes(cmd.OutOrStdout())
			}
			return describeType(cmd.OutOrStdout(), args[0], service)
		},
	}

	cmd.Flags().StringVarP(&service, "service", "s", "", "Only list the fields serialized for the service")

	return cmd
}

func describeTypes(out io.Writer) error {
	reg := model.Registry()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tGROUP\tSERVICES")
	for _, name := range reg.Names() {
		typ, _ := reg.Lookup(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", typ.Name, typ.Group, strings.Join(typ.Services(), ","))
	}
	return w.Flush()
}

func describeType(out io.Writer, name, service string) error {
	reg := model.Registry()
	descriptors, err := reg.Describe(name)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if service == "" {
		fmt.Fprintln(w, "FIELD\tSHAPE")
		for _, f := range descriptors {
			fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Shape)
		}
		return w.Flush()
	}

	tag, err := parseService(service)
	if err != nil {
		return err
	}
	fields, err := reg.Resolve(name, tag)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "FIELD\tNAMESPACE")
	for _, f := range fields {
		fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Namespace)
	}
	return w.Flush()
}
