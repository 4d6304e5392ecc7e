package postnl

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sokol111/postnl-go/pkg/core/config"
	"github.com/Sokol111/postnl-go/pkg/model"
	"github.com/Sokol111/postnl-go/pkg/service"
)

func testConfig() config.Config {
	return config.Config{
		APIKey:  "test-key",
		Mode:    config.ModeSOAP,
		Country: "NL",
		Customer: config.Customer{
			Number:             "11223344",
			Code:               "DEVC",
			CollectionLocation: "123456",
		},
	}
}

// newTestClient returns a client whose requests reach a server answering
// every call with the SOAP payload. Request bodies are sent to bodies.
func newTestClient(t *testing.T, cfg config.Config, payload string) (*Client, <-chan string) {
	t.Helper()
	bodies := make(chan string, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		bodies <- string(data)
		_, _ = io.WriteString(w, `<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body>`+payload+`</s:Body></s:Envelope>`)
	}))
	t.Cleanup(srv.Close)
	return New(cfg, srv.Client(), service.WithBaseURL(srv.URL)), bodies
}

func TestClient_Customer(t *testing.T) {
	// Arrange
	cfg := testConfig()
	cfg.Customer.Address = config.Address{
		AddressType: "2",
		CompanyName: "PostNL",
		Zipcode:     "2132 wt",
		City:        "Hoofddorp",
	}
	c := New(cfg, http.DefaultClient)

	// Act
	customer, err := c.Customer()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "11223344", *customer.CustomerNumber)
	assert.Equal(t, "DEVC", *customer.CustomerCode)
	assert.Equal(t, "123456", *customer.CollectionLocation)
	assert.Nil(t, customer.Email)
	require.NotNil(t, customer.Address)
	assert.Equal(t, "02", *customer.Address.AddressType)
	assert.Equal(t, "2132WT", *customer.Address.Zipcode)
	assert.Nil(t, customer.Address.Street)
}

func TestClient_Customer_WithoutAddress(t *testing.T) {
	// Act
	customer, err := New(testConfig(), http.DefaultClient).Customer()

	// Assert
	require.NoError(t, err)
	assert.Nil(t, customer.Address)
}

func TestClient_GenerateBarcode(t *testing.T) {
	tests := []struct {
		name      string
		typ       string
		serie     string
		wantSerie string
	}{
		{name: "3S default serie", typ: "3S", wantSerie: "987000000-987600000"},
		{name: "other type default serie", typ: "CC", wantSerie: "0000000-9999999"},
		{name: "explicit serie", typ: "3S", serie: "100-200", wantSerie: "100-200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			c, bodies := newTestClient(t, testConfig(),
				`<GenerateBarcodeResponse><Barcode>3SDEVC816223392</Barcode></GenerateBarcodeResponse>`)

			// Act
			barcode, err := c.GenerateBarcode(context.Background(), tt.typ, tt.serie)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, "3SDEVC816223392", barcode)
			body := <-bodies
			assert.Contains(t, body, "<domain:Type>"+tt.typ+"</domain:Type>")
			assert.Contains(t, body, "<domain:Range>DEVC</domain:Range>")
			assert.Contains(t, body, "<domain:Serie>"+tt.wantSerie+"</domain:Serie>")
		})
	}
}

func TestClient_CurrentStatus_NoShipments(t *testing.T) {
	// Arrange
	c, _ := newTestClient(t, testConfig(), `<CurrentStatusResponse><Unknown>x</Unknown></CurrentStatusResponse>`)

	// Act
	_, err := c.CurrentStatus(context.Background(), "3SDEVC1")

	// Assert
	assert.True(t, errors.Is(err, service.ErrNotFound))
}

func TestClient_NearestLocations(t *testing.T) {
	// Arrange
	c, bodies := newTestClient(t, testConfig(), `<GetNearestLocationsResponse><GetLocationsResult>
		<ResponseLocation><LocationCode>161503</LocationCode></ResponseLocation>
	</GetLocationsResult></GetNearestLocationsResponse>`)

	// Act
	locations, err := c.NearestLocations(context.Background(), model.NewLocation("2132WT"))

	// Assert
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "161503", *locations[0].LocationCode)
	assert.Contains(t, <-bodies, "<domain:Countrycode>NL</domain:Countrycode>")
}

func TestClient_GenerateLabel(t *testing.T) {
	// Arrange
	c, bodies := newTestClient(t, testConfig(), `<GenerateLabelResponse><ResponseShipments>
		<ResponseShipment><Barcode>3SDEVC816223392</Barcode></ResponseShipment>
	</ResponseShipments></GenerateLabelResponse>`)
	shipment := model.NewShipment()
	shipment.Dimension = model.NewDimension("2000")

	// Act
	got, err := c.GenerateLabel(context.Background(), shipment, true)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "3SDEVC816223392", *got.Barcode)
	body := <-bodies
	assert.Contains(t, body, "<domain:CustomerCode>DEVC</domain:CustomerCode>")
	assert.Contains(t, body, "<domain:Printertype>"+model.DefaultPrintertype+"</domain:Printertype>")
}
