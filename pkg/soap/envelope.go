// Package soap wraps request entities in SOAP 1.1 envelopes and unwraps
// response payloads.
package soap

import (
	"fmt"

	"github.com/Sokol111/postnl-go/pkg/entity"
	"github.com/Sokol111/postnl-go/pkg/entity/xmlcodec"
	"github.com/Sokol111/postnl-go/pkg/model"
)

// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
const EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

// Envelope is a SOAP message: header entries and a single body payload.
type Envelope struct {
	Header []*xmlcodec.Node
	Body   *xmlcodec.Node
}

// Builder renders request entities as envelopes for one service.
type Builder struct {
	codec   *xmlcodec.Codec
	service string
}

// NewBuilder creates a builder for the SOAP service.
func NewBuilder(codec *xmlcodec.Codec, service string) (*Builder, error) {
	if !model.IsSOAP(service) {
		return nil, fmt.Errorf("soap: %q is not a SOAP service", service)
	}
	return &Builder{codec: codec, service: service}, nil
}

// Build tags the security header and the request for the service and
// serializes both. The payload element lives in the services namespace.
func (b *Builder) Build(security *model.Security, request entity.Entity) (*Envelope, error) {
	entity.Tag(security, b.service)
	header, err := b.codec.SerializeAs(xmlcodec.Qualify(model.SecurityNamespace, "Security"), security)
	if err != nil {
		return nil, fmt.Errorf("soap header: %w", err)
	}

	entity.Tag(request, b.service)
	body, err := b.codec.SerializeAs(xmlcodec.Qualify(model.ServicesNamespace(b.service), request.TypeName()), request)
	if err != nil {
		return nil, fmt.Errorf("soap body: %w", err)
	}
	return &Envelope{Header: []*xmlcodec.Node{header}, Body: body}, nil
}

// Marshal builds the envelope and renders it as XML text.
func (b *Builder) Marshal(security *model.Security, request entity.Entity) ([]byte, error) {
	env, err := b.Build(security, request)
	if err != nil {
		return nil, err
	}
	return xmlcodec.Marshal(env.Node(), xmlcodec.WithNamespaces(b.Namespaces()))
}

// Namespaces returns the prefixes used when writing envelopes of the
// service.
func (b *Builder) Namespaces() xmlcodec.Namespaces {
	return xmlcodec.Namespaces{
		EnvelopeNamespace:                  "env",
		model.SecurityNamespace:            "wsse",
		model.ServicesNamespace(b.service): "services",
		model.DomainNamespace(b.service):   "domain",
		xmlcodec.ArraysNamespace:           "arr",
	}
}

// Node returns the envelope as a node tree.
func (e *Envelope) Node() *xmlcodec.Node {
	root := &xmlcodec.Node{Name: xmlcodec.Qualify(EnvelopeNamespace, "Envelope")}
	if len(e.Header) > 0 {
		root.Children = append(root.Children, &xmlcodec.Node{
			Name:     xmlcodec.Qualify(EnvelopeNamespace, "Header"),
			Children: e.Header,
		})
	}
	body := &xmlcodec.Node{Name: xmlcodec.Qualify(EnvelopeNamespace, "Body")}
	if e.Body != nil {
		body.Children = []*xmlcodec.Node{e.Body}
	}
	root.Children = append(root.Children, body)
	return root
}

// ParseEnvelope parses a SOAP response and returns its body payload. A
// fault payload is returned as a *Fault error.
func ParseEnvelope(data []byte) (*xmlcodec.Node, error) {
	root, err := xmlcodec.Parse(data)
	if err != nil {
		return nil, err
	}
	if root.LocalName() != "Envelope" {
		return nil, fmt.Errorf("%w: root element is %s, not Envelope", entity.ErrMalformedWireInput, root.LocalName())
	}
	body := root.Child("Body")
	if body == nil || !body.IsNested() {
		return nil, fmt.Errorf("%w: envelope has no body payload", entity.ErrMalformedWireInput)
	}
	payload := body.Children[0]
	if payload.LocalName() == "Fault" {
		return nil, newFault(payload)
	}
	return payload, nil
}
