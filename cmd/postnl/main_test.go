package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sokol111/postnl-go/pkg/entity"
	"github.com/Sokol111/postnl-go/pkg/model"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseService(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "labelling", want: model.ServiceLabelling},
		{input: "shipping-status", want: model.ServiceShippingStatus},
		{input: "deliverydate", want: model.ServiceDeliveryDate},
		{input: "DeliveryDate", want: model.ServiceDeliveryDate},
		{input: "tracking", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			// Act
			got, err := parseService(tt.input)

			// Assert
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvert_XMLToJSON(t *testing.T) {
	// Arrange
	input := `<Address><City>Hoofddorp</City><Zipcode>2132 wt</Zipcode></Address>`

	// Act
	out, err := execute(t, input, "convert", "--from", "xml", "--to", "json", "--service", "shipping")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, `"Address": {`)
	assert.Contains(t, out, `"City": "Hoofddorp"`)
	assert.Contains(t, out, `"Zipcode": "2132WT"`)
}

func TestConvert_JSONToXML(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	file := filepath.Join(dir, "address.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"Address": {"City": "Hoofddorp"}}`), 0o600))

	// Act
	out, err := execute(t, "", "convert", "--from", "json", "--to", "xml", "--service", "labelling", file)

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "Hoofddorp</")
	assert.Contains(t, out, model.DomainNamespace(model.ServiceLabelling))
}

func TestConvert_Dump(t *testing.T) {
	// Act
	out, err := execute(t, `{"Address": {"City": "Hoofddorp"}}`, "convert", "--from", "json", "--service", "shipping", "--dump")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "model.Address")
	assert.Contains(t, out, `"Hoofddorp"`)
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		args  []string
	}{
		{name: "unknown service", input: `{"Address": {}}`, args: []string{"--from", "json", "--service", "tracking"}},
		{name: "unknown input format", input: `{"Address": {}}`, args: []string{"--from", "yaml", "--service", "shipping"}},
		{name: "unknown output format", input: `{"Address": {"City": "Hoofddorp"}}`, args: []string{"--from", "json", "--to", "csv", "--service", "shipping"}},
		{name: "not an entity", input: `{"Parcel": {}}`, args: []string{"--from", "json", "--service", "shipping"}},
		{name: "malformed input", input: `<Address>`, args: []string{"--from", "xml", "--service", "shipping"}},
		{name: "service without scope", input: `{"Barcode": {"Type": "3S"}}`, args: []string{"--from", "json", "--service", "shipping"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.input, append([]string{"convert"}, tt.args...)...)

			assert.Error(t, err)
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "all types", args: []string{"describe"}, want: []string{"TYPE", "Address", "GenerateLabelResponse", "response"}},
		{name: "fields", args: []string{"describe", "Customer"}, want: []string{"FIELD", "CustomerCode", "Address"}},
		{name: "scoped fields", args: []string{"describe", "Customer", "--service", "barcode"}, want: []string{"NAMESPACE", "CustomerNumber", model.DomainNamespace(model.ServiceBarcode)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			out, err := execute(t, "", tt.args...)

			// Assert
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestDescribe_UnknownType(t *testing.T) {
	_, err := execute(t, "", "describe", "Parcel")

	assert.True(t, errors.Is(err, entity.ErrUnknownType))
}

func TestScaffold_WritesToStdout(t *testing.T) {
	// Act
	out, err := execute(t, "", "scaffold", "--name", "Parcel", "--field", "house-nr", "--service", "shipping")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, out, "type Parcel struct")
	assert.Contains(t, out, "services(ServiceShipping)")
}

func TestGenAccessors(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	configFile := filepath.Join(dir, "entities.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("package: model\ntypes:\n  - name: Parcel\n"), 0o600))
	output := filepath.Join(dir, "accessors.gen.go")

	// Act
	_, err := execute(t, "", "gen", "accessors", "--config", configFile, "--output", output)

	// Assert
	require.NoError(t, err)
	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "func (e *Parcel) TypeName() string")
}

func TestLocations(t *testing.T) {
	// Arrange
	var path, apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		apiKey = r.Header.Get("apikey")
		_, _ = w.Write([]byte(`<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body>
			<GetNearestLocationsResponse><GetLocationsResult>
				<ResponseLocation>
					<LocationCode>161503</LocationCode>
					<Name>Primera Hoofddorp</Name>
					<Distance>210</Distance>
					<Address><City>Hoofddorp</City></Address>
				</ResponseLocation>
			</GetLocationsResult></GetNearestLocationsResponse>
		</s:Body></s:Envelope>`))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("POSTNL_API_KEY", "test-key")

	// Act
	out, err := execute(t, "", "locations",
		"--postalcode", "2132 WT",
		"--env-file", filepath.Join(t.TempDir(), ".env"),
		"--base-url", srv.URL,
	)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/shipment/v2_1/locations", path)
	assert.Empty(t, apiKey)
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "161503")
	assert.Contains(t, out, "Primera Hoofddorp")
	assert.Contains(t, out, "Hoofddorp")
}

func TestLocations_RequiresAPIKey(t *testing.T) {
	// Arrange
	t.Setenv("POSTNL_API_KEY", "")

	// Act
	_, err := execute(t, "", "locations", "--postalcode", "2132WT", "--env-file", filepath.Join(t.TempDir(), ".env"))

	// Assert
	assert.Error(t, err)
}
