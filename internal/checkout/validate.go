// Package checkout validates customer details. Validation is two-tier on
// purpose: ValidatePhone is the lenient live check used while the user
// types, ValidateForSubmit is the strict check gating the order flow.
package checkout

import (
	"regexp"
	"strings"

	"github.com/dnicolas/tienda/internal/domain"
)

var phoneRe = regexp.MustCompile(`^\d{7,10}$`)

const (
	MsgPhoneFormat   = "Ingresa un número de celular válido (7-10 dígitos)."
	MsgPhoneRequired = "El número de celular es obligatorio."
	MsgNameRequired  = "El nombre es obligatorio."
	MsgAddrRequired  = "La dirección de entrega es obligatoria."
	MsgBadPayment    = "Selecciona un método de pago válido."
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Field + ": " + e.Message }

// SanitizePhone strips every non-digit character. This runs at the input
// boundary; the validators see digits only.
func SanitizePhone(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone is the live-typing check. An empty value passes: the field
// has simply not been filled yet, required-ness is enforced at submit.
func ValidatePhone(value string) *FieldError {
	if value == "" {
		return nil
	}
	if !phoneRe.MatchString(value) {
		return &FieldError{Field: "phone", Message: MsgPhoneFormat}
	}
	return nil
}

// ValidateForSubmit returns every field error, in field order. An empty
// phone yields the required-field message here, distinct from the format
// message the live check produces, even though the live check lets "" pass.
func ValidateForSubmit(d domain.CustomerDetails) []FieldError {
	var errs []FieldError
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: MsgNameRequired})
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs = append(errs, FieldError{Field: "phone", Message: MsgPhoneRequired})
	} else if fe := ValidatePhone(d.Phone); fe != nil {
		errs = append(errs, *fe)
	}
	if strings.TrimSpace(d.Address) == "" {
		errs = append(errs, FieldError{Field: "address", Message: MsgAddrRequired})
	}
	if !d.PaymentMethod.Valid() {
		errs = append(errs, FieldError{Field: "paymentMethod", Message: MsgBadPayment})
	}
	return errs
}
