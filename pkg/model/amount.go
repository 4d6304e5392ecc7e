package model

import (
	"fmt"

	"github.com/Sokol111/postnl-go/pkg/entity"
)

// Amount is a monetary amount attached to a shipment, such as a cash on
// delivery or insured value.
type Amount struct {
	entity.Base

	AccountName       *string
	AmountType        *string
	BIC               *string
	Currency          *string
	IBAN              *string
	Reference         *string
	TransactionNumber *string
	Value             *string
	VerzekerdBedrag   *string
}

// NewAmount returns an empty amount with a fresh identifier.
func NewAmount() *Amount {
	return &Amount{Base: entity.NewBase()}
}

var amountTable = entity.NewTable("Amount",
	entity.Bind("AccountName", entity.String(func(a *Amount) **string { return &a.AccountName })),
	entity.Bind("AmountType", entity.String(func(a *Amount) **string { return &a.AmountType }, zeroPad2)),
	entity.Bind("BIC", entity.String(func(a *Amount) **string { return &a.BIC })),
	entity.Bind("Currency", entity.String(func(a *Amount) **string { return &a.Currency })),
	entity.Bind("IBAN", entity.String(func(a *Amount) **string { return &a.IBAN })),
	entity.Bind("Reference", entity.String(func(a *Amount) **string { return &a.Reference })),
	entity.Bind("TransactionNumber", entity.String(func(a *Amount) **string { return &a.TransactionNumber })),
	entity.Bind("Value", decimal2(func(a *Amount) **string { return &a.Value })),
	entity.Bind("VerzekerdBedrag", decimal2(func(a *Amount) **string { return &a.VerzekerdBedrag })),
)

var amountType = define("Amount", entity.GroupEntity, amountTable, func() *Amount { return &Amount{} },
	shipmentServices,
	partialScope(ServiceShippingStatus, "AmountType", "Currency", "Value"),
)

// Validate checks the currency code.
func (a *Amount) Validate() error {
	if a.Currency != nil && len(*a.Currency) != 3 {
		return fmt.Errorf("%w: currency %q must be an ISO 4217 code", entity.ErrInvalidFieldValue, *a.Currency)
	}
	return nil
}
