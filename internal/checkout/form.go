package checkout

// Form carries every checkout field as submitted. Card fields are only
// validated when the payment method is card; the voucher and redirect
// methods (oxxo, mercado) collect no card details.
type Form struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zip           string `json:"zip"`
	PaymentMethod string `json:"paymentMethod"`
	CardName      string `json:"cardName"`
	CardNumber    string `json:"cardNumber"`
	Expiry        string `json:"expiry"`
	CVV           string `json:"cvv"`
}

// FieldErrors maps a field name to its user-visible validation message.
type FieldErrors map[string]string

// Filter keeps only the errors for fields the shopper has touched. Live
// validation runs on every change but surfaces errors gradually; submit
// forces every field touched so everything shows at once.
func (e FieldErrors) Filter(touched []string) FieldErrors {
	if e == nil {
		return nil
	}
	out := make(FieldErrors)
	for _, field := range touched {
		if msg, ok := e[field]; ok {
			out[field] = msg
		}
	}
	return out
}

// mexicanStates are the accepted shipping destinations.
var mexicanStates = map[string]bool{
	"Aguascalientes": true, "Baja California": true, "Baja California Sur": true,
	"Campeche": true, "Chiapas": true, "Chihuahua": true, "Coahuila": true,
	"Colima": true, "CDMX": true, "Durango": true, "Guanajuato": true,
	"Guerrero": true, "Hidalgo": true, "Jalisco": true, "México": true,
	"Michoacán": true, "Morelos": true, "Nayarit": true, "Nuevo León": true,
	"Oaxaca": true, "Puebla": true, "Querétaro": true, "Quintana Roo": true,
	"San Luis Potosí": true, "Sinaloa": true, "Sonora": true, "Tabasco": true,
	"Tamaulipas": true, "Tlaxcala": true, "Veracruz": true, "Yucatán": true,
	"Zacatecas": true,
}
