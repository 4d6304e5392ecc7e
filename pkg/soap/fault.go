package soap

import (
	"fmt"
	"strings"

	"github.com/Sokol111/postnl-go/pkg/entity/xmlcodec"
)

// Fault is a SOAP fault returned in place of a response payload.
type Fault struct {
	Code    string
	Message string
	// Errors lists the provider exception entries of the fault detail.
	Errors []FaultError
}

// FaultError is one exception entry of a fault detail.
type FaultError struct {
	Number  string
	Message string
}

func (f *Fault) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "soap fault %s: %s", f.Code, f.Message)
	for _, e := range f.Errors {
		fmt.Fprintf(&sb, "; %s", e.Message)
		if e.Number != "" {
			fmt.Fprintf(&sb, " (%s)", e.Number)
		}
	}
	return sb.String()
}

func newFault(n *xmlcodec.Node) *Fault {
	f := &Fault{}
	if c := n.Child("faultcode"); c != nil {
		f.Code = c.Text
	}
	if s := n.Child("faultstring"); s != nil {
		f.Message = s.Text
	}
	errs := n.Find("detail", "CifException", "Errors")
	if errs == nil {
		return f
	}
	for _, data := range errs.Children {
		if data.LocalName() != "ExceptionData" {
			continue
		}
		var fe FaultError
		if msg := data.Child("ErrorMsg"); msg != nil {
			fe.Message = msg.Text
		}
		if num := data.Child("ErrorNumber"); num != nil {
			fe.Number = num.Text
		}
		f.Errors = append(f.Errors, fe)
	}
	return f
}
