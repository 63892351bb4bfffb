package checkout

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"storefront/internal/models"
)

var validate = validator.New()

var expiryPattern = regexp.MustCompile(`^(\d{1,2})/(\d{2})$`)

// Validate checks every field and returns the full error set. Callers doing
// live validation filter the result by the touched fields; submit passes
// everything through.
func Validate(f Form, now time.Time) FieldErrors {
	errs := make(FieldErrors)

	if validate.Var(strings.TrimSpace(f.Name), "required") != nil {
		errs["name"] = "Ingresa tu nombre completo"
	}

	phone := stripSpaces(f.Phone)
	if validate.Var(phone, "required,len=10,number") != nil {
		errs["phone"] = "El teléfono debe tener 10 dígitos"
	}

	if validate.Var(strings.TrimSpace(f.Address), "required") != nil {
		errs["address"] = "Ingresa tu dirección"
	}
	if validate.Var(strings.TrimSpace(f.City), "required") != nil {
		errs["city"] = "Ingresa tu ciudad"
	}
	if !mexicanStates[strings.TrimSpace(f.State)] {
		errs["state"] = "Selecciona un estado válido"
	}
	if validate.Var(strings.TrimSpace(f.Zip), "required,len=5,number") != nil {
		errs["zip"] = "El código postal debe tener 5 dígitos"
	}

	if !models.ValidPaymentMethod(f.PaymentMethod) {
		errs["paymentMethod"] = "Selecciona un método de pago"
	}

	if f.PaymentMethod == models.PaymentCard {
		validateCard(f, now, errs)
	}

	return errs
}

func validateCard(f Form, now time.Time, errs FieldErrors) {
	if validate.Var(strings.TrimSpace(f.CardName), "required") != nil {
		errs["cardName"] = "Ingresa el nombre en la tarjeta"
	}

	number := stripSpaces(f.CardNumber)
	if validate.Var(number, "required,len=16,number") != nil {
		errs["cardNumber"] = "El número de tarjeta debe tener 16 dígitos"
	}

	if msg := validateExpiry(f.Expiry, now); msg != "" {
		errs["expiry"] = msg
	}

	cvv := strings.TrimSpace(f.CVV)
	if validate.Var(cvv, "required,number,min=3,max=4") != nil {
		errs["cvv"] = "El CVV debe tener 3 o 4 dígitos"
	}
}

// validateExpiry accepts MM/YY with month 1-12. A card stays valid through
// the last day of its expiry month, so the comparison runs against the
// first day of the following month.
func validateExpiry(expiry string, now time.Time) string {
	m := expiryPattern.FindStringSubmatch(strings.TrimSpace(expiry))
	if m == nil {
		return "La fecha debe tener el formato MM/AA"
	}

	month, _ := strconv.Atoi(m[1])
	if month < 1 || month > 12 {
		return "La fecha debe tener el formato MM/AA"
	}
	year, _ := strconv.Atoi(m[2])
	year += 2000

	expiresAt := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, now.Location())
	if !now.Before(expiresAt) {
		return "La tarjeta está vencida"
	}
	return ""
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
