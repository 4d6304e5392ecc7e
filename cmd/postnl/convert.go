package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ettle/strcase"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Sokol111/postnl-go/pkg/entity"
	"github.com/Sokol111/postnl-go/pkg/entity/jsoncodec"
	"github.com/Sokol111/postnl-go/pkg/entity/xmlcodec"
	"github.com/Sokol111/postnl-go/pkg/model"
)

const (
	formatJSON = "json"
	formatXML  = "xml"
)

type convertOptions struct {
	from    string
	to      string
	service string
	dump    bool
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert an entity document between XML and JSON",
		Long: `Convert an entity document between the XML and JSON wire formats.
The document is read from the file or from stdin and rendered with the
fields of the given service.

Example:
  postnl convert --from xml --to json --service labelling request.xml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runConvert(in, cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.from, "from", formatXML, "Input format: xml or json")
	cmd.Flags().StringVar(&opts.to, "to", formatJSON, "Output format: xml or json")
	cmd.Flags().StringVarP(&opts.service, "service", "s", "", "Service whose fields are rendered (required)")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the decoded entity graph instead of converting it")

	_ = cmd.MarkFlagRequired("service")

	return cmd
}

func runConvert(in io.Reader, out io.Writer, opts *convertOptions) error {
	service, err := parseService(opts.service)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	reg := model.Registry()
	jc := jsoncodec.NewCodec(reg)
	xc := xmlcodec.NewCodec(reg)

	var v any
	switch opts.from {
	case formatJSON:
		v, err = jc.Unmarshal(data)
	case formatXML:
		v, err = xc.Unmarshal(data)
	default:
		return fmt.Errorf("unknown input format %q", opts.from)
	}
	if err != nil {
		return err
	}
	e, ok := v.(entity.Entity)
	if !ok {
		return fmt.Errorf("document root is not a registered entity type")
	}
	entity.Tag(e, service)

	if opts.dump {
		spew.Fdump(out, e)
		return nil
	}

	var rendered []byte
	switch opts.to {
	case formatJSON:
		rendered, err = jc.MarshalIndent(e, "", "  ")
	case formatXML:
		rendered, err = xc.Marshal(e, xmlcodec.WithDeclaration(), xmlcodec.WithIndent("", "  "))
	default:
		return fmt.Errorf("unknown output format %q", opts.to)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(rendered))
	return err
}

// parseService maps a loosely written service name, such as
// "shipping-status" or "deliverydate", to its tag.
func parseService(name string) (string, error) {
	want := strcase.ToPascal(name)
	service, ok := lo.Find(model.Services, func(s string) bool {
		return strings.EqualFold(s, want)
	})
	if !ok {
		return "", fmt.Errorf("unknown service %q, expected one of %s", name, strings.Join(model.Services, ", "))
	}
	return service, nil
}
