package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sokol111/postnl-go/pkg/entity"
)

func TestRegistry_ResolvesEveryGeneratedType(t *testing.T) {
	reg := Registry()

	for _, typ := range Types() {
		t.Run(typ.Name, func(t *testing.T) {
			// Act
			got, ok := reg.Lookup(typ.Name)

			// Assert
			require.True(t, ok)
			assert.Same(t, typ, got)
			assert.Equal(t, typ.Name, typ.New().TypeName())
			assert.Equal(t, typ.New().FieldNames(), fieldNames(typ.Fields))
		})
	}
}

func fieldNames(fields []entity.FieldDescriptor) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

func TestRegistry_Groups(t *testing.T) {
	tests := []struct {
		name  string
		group entity.Group
	}{
		{name: "Address", group: entity.GroupEntity},
		{name: "Message", group: entity.GroupMessage},
		{name: "GenerateLabel", group: entity.GroupRequest},
		{name: "GenerateLabelResponse", group: entity.GroupResponse},
		{name: "Security", group: entity.GroupSOAP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok := Registry().Lookup(tt.name)

			require.True(t, ok)
			assert.Equal(t, tt.group, typ.Group)
		})
	}
}

func TestCreate_AddressNormalizesFields(t *testing.T) {
	// Act
	e, err := Registry().Create("Address", map[string]any{
		"AddressType": "1",
		"City":        "Hoofddorp",
		"Zipcode":     "2132 wt",
	})

	// Assert
	require.NoError(t, err)
	addr := e.(*Address)
	assert.NotEmpty(t, addr.ID())
	assert.Equal(t, "01", *addr.AddressType)
	assert.Equal(t, "2132WT", *addr.Zipcode)
}

func TestCreate_AddressRejectsInvalidType(t *testing.T) {
	// Act
	_, err := Registry().Create("Address", map[string]any{"AddressType": "abc"})

	// Assert
	assert.True(t, errors.Is(err, entity.ErrInvalidFieldValue))
}

func TestCreate_AmountValues(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]any
		want    string
		wantErr bool
	}{
		{name: "integer value gets two decimals", values: map[string]any{"Value": "10"}, want: "10.00"},
		{name: "float value is rounded", values: map[string]any{"Value": 12.345}, want: "12.35"},
		{name: "non-decimal value", values: map[string]any{"Value": "ten"}, wantErr: true},
		{name: "currency must have three letters", values: map[string]any{"Value": "1", "Currency": "EU"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			e, err := Registry().Create("Amount", tt.values)

			// Assert
			if tt.wantErr {
				assert.True(t, errors.Is(err, entity.ErrInvalidFieldValue))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *e.(*Amount).Value)
		})
	}
}

func TestResolve_PartialScopes(t *testing.T) {
	// Act
	fields, err := Registry().Resolve("Customer", ServiceBarcode)

	// Assert
	require.NoError(t, err)
	ns := DomainNamespace(ServiceBarcode)
	assert.Equal(t, []entity.ScopedField{
		{Name: "CustomerCode", Namespace: ns},
		{Name: "CustomerNumber", Namespace: ns},
	}, fields)
}

func TestResolve_RESTScopeHasNoNamespace(t *testing.T) {
	// Act
	fields, err := Registry().Resolve("Shipment", ServiceShipping)

	// Assert
	require.NoError(t, err)
	require.NotEmpty(t, fields)
	for _, f := range fields {
		assert.Empty(t, f.Namespace)
	}
}

func TestResolve_SecurityUsesSecurityNamespace(t *testing.T) {
	// Act
	fields, err := Registry().Resolve("UsernameToken", ServiceLabelling)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []entity.ScopedField{
		{Name: "Username", Namespace: SecurityNamespace},
		{Name: "Password", Namespace: SecurityNamespace},
	}, fields)
}

func TestNamespaces(t *testing.T) {
	assert.Equal(t, "http://postnl.nl/cif/domain/LabellingWebService/", DomainNamespace(ServiceLabelling))
	assert.Equal(t, "http://postnl.nl/cif/services/LocationWebService/", ServicesNamespace(ServiceLocation))
	assert.Empty(t, DomainNamespace(ServiceShipping))
	assert.True(t, IsSOAP(ServiceBarcode))
	assert.False(t, IsSOAP(ServiceShipping))
}

func TestNewLabellingMessage(t *testing.T) {
	// Act
	m := NewLabellingMessage("")

	// Assert
	require.NotNil(t, m.MessageID)
	assert.Len(t, *m.MessageID, 32)
	require.NotNil(t, m.MessageTimeStamp)
	_, err := entity.ParseDate(*m.MessageTimeStamp)
	assert.NoError(t, err)
	assert.Equal(t, DefaultPrintertype, *m.Printertype)
}

func TestNewCurrentStatus(t *testing.T) {
	// Arrange
	customer := NewCustomer()

	// Act
	req := NewCurrentStatus(customer, "3SDEVC201611210")

	// Assert
	assert.Same(t, customer, req.Customer)
	require.NotNil(t, req.Shipment)
	assert.Equal(t, "3SDEVC201611210", *req.Shipment.Barcode)
	assert.NotNil(t, req.Message)
}

func TestNewCutOffTime(t *testing.T) {
	// Act
	c := NewCutOffTime("1", "14:00:00", true)

	// Assert
	assert.Equal(t, "01", *c.Day)
	assert.Equal(t, "true", *c.Available)
}

func TestNewLocation_NormalizesPostalCode(t *testing.T) {
	assert.Equal(t, "2132WT", *NewLocation("2132 wt").Postalcode)
}

func TestTag_ReachesNestedEntities(t *testing.T) {
	// Arrange
	shipment := NewShipment()
	shipment.Addresses = []*Address{NewAddress()}
	shipment.Customer = NewCustomer()
	req := NewGenerateLabel(NewCustomer(), "", shipment)

	// Act
	entity.Tag(req, ServiceLabelling)

	// Assert
	assert.Equal(t, ServiceLabelling, req.Message.CurrentService())
	assert.Equal(t, ServiceLabelling, shipment.CurrentService())
	assert.Equal(t, ServiceLabelling, shipment.Addresses[0].CurrentService())
	assert.Equal(t, ServiceLabelling, shipment.Customer.CurrentService())
}
