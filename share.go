package micropro

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultSupportNumber receives quota upgrade requests.
const DefaultSupportNumber = "22790000000"

// WhatsAppLink builds the deep link that opens a conversation with phone and
// the message pre-filled. The transport is external: this only guarantees
// the text is correctly encoded.
func WhatsAppLink(phone, text string) string {
	phone = strings.NewReplacer(" ", "", "+", "").Replace(phone)
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}

// ReminderMessage is the payment reminder sent to a client about an invoice.
func ReminderMessage(clientName string, inv Invoice) string {
	return fmt.Sprintf("Bonjour %s, votre facture %s d'un montant de %s est disponible. Merci de votre confiance !",
		clientName, inv.ID, inv.Amount)
}

// UpgradeMessage is the premium upgrade request sent to support once the
// client quota is reached.
func UpgradeMessage() string {
	return fmt.Sprintf("Bonjour, j'ai atteint la limite de %d clients sur MicroPro et je souhaite passer au forfait Premium.", ClientLimit)
}
