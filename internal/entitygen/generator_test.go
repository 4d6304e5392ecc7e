package entitygen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "valid", input: "package: model\ntypes:\n  - name: Address\n  - name: Security\n    table: securityTable\n"},
		{name: "missing package", input: "types:\n  - name: Address\n", wantErr: "invalid package name"},
		{name: "no types", input: "package: model\n", wantErr: "no types listed"},
		{name: "unexported type", input: "package: model\ntypes:\n  - name: address\n", wantErr: "not an exported identifier"},
		{name: "duplicate type", input: "package: model\ntypes:\n  - name: Address\n  - name: Address\n", wantErr: "duplicate type Address"},
		{name: "not yaml", input: "package: [", wantErr: "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			manifest, err := ParseManifest([]byte(tt.input))

			// Assert
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "model", manifest.Package)
			assert.Len(t, manifest.Types, 2)
		})
	}
}

func TestTypeEntry_Names(t *testing.T) {
	tests := []struct {
		entry     TypeEntry
		wantTable string
		wantVar   string
	}{
		{entry: TypeEntry{Name: "Address"}, wantTable: "addressTable", wantVar: "addressType"},
		{entry: TypeEntry{Name: "CutOffTime"}, wantTable: "cutOffTimeTable", wantVar: "cutOffTimeType"},
		{entry: TypeEntry{Name: "Security", Table: "soapSecurity", Var: "soapSecurityType"}, wantTable: "soapSecurity", wantVar: "soapSecurityType"},
	}

	for _, tt := range tests {
		t.Run(tt.entry.Name, func(t *testing.T) {
			assert.Equal(t, tt.wantTable, tt.entry.TableName())
			assert.Equal(t, tt.wantVar, tt.entry.VarName())
		})
	}
}

func TestRender(t *testing.T) {
	// Arrange
	manifest := &Manifest{Package: "model", Types: []TypeEntry{{Name: "Address"}, {Name: "CutOffTime"}}}

	// Act
	src, err := Render(manifest)

	// Assert
	require.NoError(t, err)
	out := string(src)
	assert.Contains(t, out, "// Code generated by entitygen. DO NOT EDIT.")
	assert.Contains(t, out, "package model")
	assert.Contains(t, out, `"github.com/Sokol111/postnl-go/pkg/entity"`)
	assert.Contains(t, out, "// TypeName returns \"Address\".\nfunc (e *Address) TypeName() string {\n\treturn \"Address\"\n}")
	assert.Contains(t, out, "func (e *CutOffTime) Get(field string) (any, bool) {\n\treturn cutOffTimeTable.Get(e, field)\n}")
	assert.Contains(t, out, "func (e *Address) Set(field string, value any) error {\n\treturn addressTable.Set(e, field, value)\n}")
	assert.Contains(t, out, "// FieldNames lists the fields of CutOffTime in declaration order.")
	assert.Contains(t, out, "func Types() []*entity.Type {")
	assert.Contains(t, out, "addressType,\n\t\tcutOffTimeType,\n")
}

func TestRender_CoversModelEntities(t *testing.T) {
	// Arrange
	manifest, err := LoadManifest(filepath.Join("..", "..", "pkg", "model", "entities.yaml"))
	require.NoError(t, err)

	// Act
	src, err := Render(manifest)

	// Assert
	require.NoError(t, err)
	for _, typ := range manifest.Types {
		assert.Contains(t, string(src), "func (e *"+typ.Name+") FieldNames() []string {")
	}
}

func TestGenerator_Generate(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	configFile := filepath.Join(dir, "entities.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("package: shop\ntypes:\n  - name: Parcel\n"), 0o600))
	output := filepath.Join(dir, "accessors.gen.go")

	gen, err := New(&Config{ConfigFile: configFile, Output: output})
	require.NoError(t, err)

	// Act
	err = gen.Generate()

	// Assert
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "package shop")
	assert.Contains(t, string(data), "return parcelTable.Names()")
}

func TestNew_ValidatesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing config file", cfg: Config{Output: "out.go"}},
		{name: "missing output", cfg: Config{ConfigFile: "entities.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(&tt.cfg)

			assert.Error(t, err)
		})
	}
}

func TestScaffold(t *testing.T) {
	// Arrange
	cfg := ScaffoldConfig{
		Name:     "Parcel",
		Group:    "entity",
		Fields:   []string{"house-nr", "Weight", "tracking_code"},
		Services: []string{"labelling", "shipping-status"},
	}

	// Act
	src, err := Scaffold(cfg)

	// Assert
	require.NoError(t, err)
	out := string(src)
	assert.Contains(t, out, "package model")
	assert.Contains(t, out, "// Parcel is a scaffolded entity type.")
	assert.Contains(t, out, "type Parcel struct {\n\tentity.Base\n")
	assert.Contains(t, out, "HouseNr ")
	assert.Contains(t, out, "TrackingCode ")
	assert.Contains(t, out, "func NewParcel() *Parcel {")
	assert.Contains(t, out, "var parcelTable = entity.NewTable(")
	assert.Contains(t, out, `entity.Bind("HouseNr", entity.String(func(e *Parcel) **string {`)
	assert.Contains(t, out, "return &e.Weight")
	assert.Contains(t, out, `var parcelType = define("Parcel", entity.GroupEntity, parcelTable`)
	assert.Contains(t, out, "services(ServiceLabelling, ServiceShippingStatus)")
}

func TestScaffold_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  ScaffoldConfig
	}{
		{name: "unknown group", cfg: ScaffoldConfig{Name: "Parcel", Group: "event", Services: []string{"shipping"}}},
		{name: "no services", cfg: ScaffoldConfig{Name: "Parcel"}},
		{name: "empty name", cfg: ScaffoldConfig{Services: []string{"shipping"}}},
		{name: "invalid field", cfg: ScaffoldConfig{Name: "Parcel", Fields: []string{"1st"}, Services: []string{"shipping"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scaffold(tt.cfg)

			assert.Error(t, err)
		})
	}
}
