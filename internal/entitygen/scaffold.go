package entitygen

import (
	"bytes"
	"fmt"
	"go/token"

	"github.com/dave/jennifer/jen"
	"github.com/ettle/strcase"
)

var groups = map[string]string{
	"entity":   "GroupEntity",
	"message":  "GroupMessage",
	"request":  "GroupRequest",
	"response": "GroupResponse",
}

// ScaffoldConfig describes a new entity type. Field and service names are
// converted to Go names, so "house-nr" becomes HouseNr and
// "shipping-status" becomes ServiceShippingStatus.
type ScaffoldConfig struct {
	Package  string
	Name     string
	Group    string
	Fields   []string
	Services []string
}

func (c *ScaffoldConfig) validate() error {
	if c.Package == "" {
		c.Package = "model"
	}
	if c.Group == "" {
		c.Group = "entity"
	}
	c.Name = strcase.ToGoPascal(c.Name)
	if !token.IsIdentifier(c.Name) {
		return fmt.Errorf("invalid type name %q", c.Name)
	}
	if _, ok := groups[c.Group]; !ok {
		return fmt.Errorf("unknown group %q", c.Group)
	}
	if len(c.Services) == 0 {
		return fmt.Errorf("at least one service is required")
	}
	return nil
}

// Scaffold renders a model file declaring the type with string fields, its
// constructor, dispatch table and type description. Add the type to
// entities.yaml and regenerate the accessors afterwards.
func Scaffold(cfg ScaffoldConfig) ([]byte, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	fields := make([]string, 0, len(cfg.Fields))
	for _, raw := range cfg.Fields {
		name := strcase.ToPascal(raw)
		if !token.IsIdentifier(name) {
			return nil, fmt.Errorf("invalid field name %q", raw)
		}
		fields = append(fields, name)
	}
	entry := TypeEntry{Name: cfg.Name}

	f := jen.NewFile(cfg.Package)
	f.ImportName(entityImport, "entity")

	f.Commentf("%s is a scaffolded %s type.", cfg.Name, cfg.Group)
	f.Type().Id(cfg.Name).StructFunc(func(g *jen.Group) {
		g.Qual(entityImport, "Base")
		g.Line()
		for _, name := range fields {
			g.Id(name).Op("*").String()
		}
	})
	f.Line()

	f.Func().Id("New"+cfg.Name).Params().Op("*").Id(cfg.Name).Block(
		jen.Return(jen.Op("&").Id(cfg.Name).Values(jen.Dict{
			jen.Id("Base"): jen.Qual(entityImport, "NewBase").Call(),
		})),
	)
	f.Line()

	f.Var().Id(entry.TableName()).Op("=").Qual(entityImport, "NewTable").CustomFunc(multiline("(", ")"), func(g *jen.Group) {
		g.Lit(cfg.Name)
		for _, name := range fields {
			g.Qual(entityImport, "Bind").Call(
				jen.Lit(name),
				jen.Qual(entityImport, "String").Call(
					jen.Func().Params(jen.Id("e").Op("*").Id(cfg.Name)).Op("**").String().Block(
						jen.Return(jen.Op("&").Id("e").Dot(name)),
					),
				),
			)
		}
	})
	f.Line()

	f.Var().Id(entry.VarName()).Op("=").Id("define").Call(
		jen.Lit(cfg.Name),
		jen.Qual(entityImport, groups[cfg.Group]),
		jen.Id(entry.TableName()),
		jen.Func().Params().Op("*").Id(cfg.Name).Block(
			jen.Return(jen.Op("&").Id(cfg.Name).Values()),
		),
		jen.Id("services").CallFunc(func(g *jen.Group) {
			for _, s := range cfg.Services {
				g.Id("Service" + strcase.ToPascal(s))
			}
		}),
	)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", cfg.Name, err)
	}
	return buf.Bytes(), nil
}
