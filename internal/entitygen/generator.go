// Package entitygen generates the entity.Entity accessor methods of the
// model types and scaffolds new entity files.
//
// Basic usage:
//
//	gen, err := entitygen.New(&entitygen.Config{
//		ConfigFile: "entities.yaml",
//		Output:     "accessors.gen.go",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := gen.Generate(); err != nil {
//		log.Fatal(err)
//	}
package entitygen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dave/jennifer/jen"
)

const (
	entityImport = "github.com/Sokol111/postnl-go/pkg/entity"
	header       = "Code generated by entitygen. DO NOT EDIT."
)

// Generator writes the accessor file described by an entities file.
type Generator struct {
	config *Config
}

// New creates a Generator with the given configuration.
func New(cfg *Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.AbsolutePaths(); err != nil {
		return nil, err
	}
	return &Generator{config: cfg}, nil
}

// Generate reads the entities file and writes the accessors.
func (g *Generator) Generate() error {
	g.log("Reading %s", g.config.ConfigFile)
	manifest, err := LoadManifest(g.config.ConfigFile)
	if err != nil {
		return err
	}

	src, err := Render(manifest)
	if err != nil {
		return err
	}
	if err := os.WriteFile(g.config.Output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", g.config.Output, err)
	}
	g.log("Wrote accessors for %d types to %s", len(manifest.Types), g.config.Output)
	return nil
}

// Render returns the formatted accessor source for the manifest.
func Render(manifest *Manifest) ([]byte, error) {
	f := jen.NewFile(manifest.Package)
	f.HeaderComment(header)
	f.ImportName(entityImport, "entity")

	for _, t := range manifest.Types {
		accessors(f, t)
	}

	f.Comment("Types returns the descriptions of every generated entity type.")
	f.Func().Id("Types").Params().Index().Op("*").Qual(entityImport, "Type").Block(
		jen.Return(jen.Index().Op("*").Qual(entityImport, "Type").CustomFunc(multiline("{", "}"), func(g *jen.Group) {
			for _, t := range manifest.Types {
				g.Id(t.VarName())
			}
		})),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render accessors: %w", err)
	}
	return buf.Bytes(), nil
}

func accessors(f *jen.File, t TypeEntry) {
	recv := func() *jen.Statement {
		return jen.Id("e").Op("*").Id(t.Name)
	}
	table := t.TableName()

	f.Commentf("TypeName returns %q.", t.Name)
	f.Func().Params(recv()).Id("TypeName").Params().String().Block(
		jen.Return(jen.Lit(t.Name)),
	)
	f.Line()

	f.Comment("Get returns the value of the named field.")
	f.Func().Params(recv()).Id("Get").Params(jen.Id("field").String()).Params(jen.Id("any"), jen.Bool()).Block(
		jen.Return(jen.Id(table).Dot("Get").Call(jen.Id("e"), jen.Id("field"))),
	)
	f.Line()

	f.Comment("Set assigns the named field.")
	f.Func().Params(recv()).Id("Set").Params(jen.Id("field").String(), jen.Id("value").Id("any")).Error().Block(
		jen.Return(jen.Id(table).Dot("Set").Call(jen.Id("e"), jen.Id("field"), jen.Id("value"))),
	)
	f.Line()

	f.Commentf("FieldNames lists the fields of %s in declaration order.", t.Name)
	f.Func().Params(recv()).Id("FieldNames").Params().Index().String().Block(
		jen.Return(jen.Id(table).Dot("Names").Call()),
	)
	f.Line()
}

func multiline(open, close string) jen.Options {
	return jen.Options{Open: open, Close: close, Separator: ",", Multi: true}
}

// log prints a message if verbose mode is enabled.
func (g *Generator) log(format string, args ...any) {
	if g.config.Verbose {
		fmt.Printf(format+"\n", args...)
	}
}
