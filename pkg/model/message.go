package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sokol111/postnl-go/pkg/entity"
)

// DefaultPrintertype is the label format requested when none is set.
const DefaultPrintertype = "GraphicFile|PDF"

// Message carries the request metadata every SOAP call requires.
type Message struct {
	entity.Base

	MessageID        *string
	MessageTimeStamp *string
	Printertype      *string
}

// NewMessage returns a message with a fresh identifier and the current time
// as its timestamp.
func NewMessage() *Message {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	ts := time.Now().Format(entity.DateTimeLayout)
	return &Message{Base: entity.NewBase(), MessageID: &id, MessageTimeStamp: &ts}
}

// NewLabellingMessage returns a message requesting labels in the given
// printer format. An empty format selects DefaultPrintertype.
func NewLabellingMessage(printertype string) *Message {
	m := NewMessage()
	if printertype == "" {
		printertype = DefaultPrintertype
	}
	m.Printertype = &printertype
	return m
}

var messageTable = entity.NewTable("Message",
	entity.Bind("MessageID", entity.String(func(m *Message) **string { return &m.MessageID })),
	entity.Bind("MessageTimeStamp", entity.String(func(m *Message) **string { return &m.MessageTimeStamp })),
	entity.Bind("Printertype", entity.String(func(m *Message) **string { return &m.Printertype })),
)

var messageType = define("Message", entity.GroupMessage, messageTable, func() *Message { return &Message{} },
	labelServices,
	partialScope(ServiceBarcode, "MessageID", "MessageTimeStamp"),
	partialScope(ServiceConfirming, "MessageID", "MessageTimeStamp"),
	partialScope(ServiceShippingStatus, "MessageID", "MessageTimeStamp"),
	partialScope(ServiceLocation, "MessageID", "MessageTimeStamp"),
	partialScope(ServiceDeliveryDate, "MessageID", "MessageTimeStamp"),
)
