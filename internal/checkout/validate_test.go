package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dnicolas/tienda/internal/domain"
)

func validDetails() domain.CustomerDetails {
	return domain.CustomerDetails{
		Name:          "Ana",
		Phone:         "3001234567",
		Address:       "Calle 1",
		PaymentMethod: domain.PaymentCash,
	}
}

func TestValidatePhoneLive(t *testing.T) {
	assert.Nil(t, ValidatePhone(""), "empty field is not an error while typing")
	assert.Nil(t, ValidatePhone("1234567"))
	assert.Nil(t, ValidatePhone("3001234567"))

	fe := ValidatePhone("12345")
	require.NotNil(t, fe)
	assert.Equal(t, MsgPhoneFormat, fe.Message)

	fe = ValidatePhone("12345678901")
	require.NotNil(t, fe, "11 digits is over the max")
	assert.Equal(t, MsgPhoneFormat, fe.Message)
}

func TestSanitizePhone(t *testing.T) {
	assert.Equal(t, "3001234567", SanitizePhone("(300) 123-4567"))
	assert.Equal(t, "", SanitizePhone("abc"))
	assert.Equal(t, "12345", SanitizePhone("1 2 3 4 5"))
}

func TestSubmitRequiresPhoneDistinctFromFormat(t *testing.T) {
	d := validDetails()
	d.Phone = ""

	// live check lets the empty value pass…
	assert.Nil(t, ValidatePhone(d.Phone))

	// …but submit reports the dedicated required-field message.
	errs := ValidateForSubmit(d)
	require.Len(t, errs, 1)
	assert.Equal(t, "phone", errs[0].Field)
	assert.Equal(t, MsgPhoneRequired, errs[0].Message)
}

func TestSubmitFieldOrder(t *testing.T) {
	errs := ValidateForSubmit(domain.CustomerDetails{PaymentMethod: "Cheque"})
	require.Len(t, errs, 4)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "phone", errs[1].Field)
	assert.Equal(t, "address", errs[2].Field)
	assert.Equal(t, "paymentMethod", errs[3].Field)
}

func TestSubmitPhoneFormat(t *testing.T) {
	d := validDetails()
	d.Phone = "12345"
	errs := ValidateForSubmit(d)
	require.Len(t, errs, 1)
	assert.Equal(t, MsgPhoneFormat, errs[0].Message)
}

func TestSubmitValid(t *testing.T) {
	assert.Empty(t, ValidateForSubmit(validDetails()))

	d := validDetails()
	d.PaymentMethod = domain.PaymentTransfer
	assert.Empty(t, ValidateForSubmit(d))
}
