package model

import "github.com/Sokol111/postnl-go/pkg/entity"

// SecurityNamespace is the WS-Security extension namespace.
const SecurityNamespace = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"

// Security is the WS-Security header of a SOAP request.
type Security struct {
	entity.Base

	UsernameToken *UsernameToken
}

// UsernameToken carries the API key as password.
type UsernameToken struct {
	entity.Base

	Username *string
	Password *string
}

// NewSecurity returns a security header authenticating with the API key.
func NewSecurity(apiKey string) *Security {
	return &Security{
		Base:          entity.NewBase(),
		UsernameToken: &UsernameToken{Base: entity.NewBase(), Password: &apiKey},
	}
}

var securityTable = entity.NewTable("Security",
	entity.Bind("UsernameToken", entity.Nested(func(s *Security) **UsernameToken { return &s.UsernameToken })),
)

var usernameTokenTable = entity.NewTable("UsernameToken",
	entity.Bind("Username", entity.String(func(t *UsernameToken) **string { return &t.Username })),
	entity.Bind("Password", entity.String(func(t *UsernameToken) **string { return &t.Password })),
)

// securityScopes places the fields in the security namespace for every
// SOAP service.
func securityScopes(fields []entity.FieldDescriptor) []entity.Scope {
	scopes := make([]entity.Scope, 0, len(SOAPServices))
	for _, s := range SOAPServices {
		scopes = append(scopes, entity.AllFields(s, SecurityNamespace, fields))
	}
	return scopes
}

func soapType[E entity.Entity](name string, table *entity.Table[E], newFn func() E) *entity.Type {
	fields := table.Descriptors(SecurityNamespace)
	return &entity.Type{
		Name:   name,
		Group:  entity.GroupSOAP,
		Fields: fields,
		Scopes: securityScopes(fields),
		New:    func() entity.Entity { return newFn() },
	}
}

var (
	securityType      = soapType("Security", securityTable, func() *Security { return &Security{} })
	usernameTokenType = soapType("UsernameToken", usernameTokenTable, func() *UsernameToken { return &UsernameToken{} })
)
