package micropro

import (
	"strings"
	"testing"
)

func TestWhatsAppLink(t *testing.T) {
	testCases := []struct {
		name  string
		phone string
		text  string
		want  string
	}{
		{
			name:  "spaces and plus stripped from the phone",
			phone: "+227 90 11 22 33",
			text:  "Bonjour",
			want:  "https://wa.me/22790112233?text=Bonjour",
		},
		{
			name:  "message is url encoded",
			phone: "22790000000",
			text:  "Bonjour, facture FAC-2024-1000 !",
			want:  "https://wa.me/22790000000?text=Bonjour%2C+facture+FAC-2024-1000+%21",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := WhatsAppLink(tc.phone, tc.text)
			if got != tc.want {
				t.Errorf("WhatsAppLink() = %q, want %q", got, tc.want)
			}
			if strings.ContainsAny(got, " \n") {
				t.Errorf("WhatsAppLink() contains raw whitespace: %q", got)
			}
		})
	}
}

func TestReminderMessage(t *testing.T) {
	inv := invoiceFor("FAC-2024-4821", "K4J2P9", 12500)
	msg := ReminderMessage("Aïcha", inv)
	for _, want := range []string{"Aïcha", "FAC-2024-4821", inv.Amount.String()} {
		if !strings.Contains(msg, want) {
			t.Errorf("ReminderMessage() = %q, missing %q", msg, want)
		}
	}
}

func TestUpgradeMessage(t *testing.T) {
	msg := UpgradeMessage()
	if !strings.Contains(msg, "10") {
		t.Errorf("UpgradeMessage() = %q, does not mention the quota", msg)
	}
}
