package services

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"barberpro-backend/utils"
)

// Notifier delivers a message to a client phone number. Sends are
// fire-and-forget; callers log failures and move on.
type Notifier interface {
	Send(phone, message string) error
}

// WhatsAppLinkNotifier builds a wa.me deep link for the message and hands it
// to Open. The default Open just logs the link; the UI is expected to open
// it.
type WhatsAppLinkNotifier struct {
	Open func(link string) error
}

func NewWhatsAppLinkNotifier() *WhatsAppLinkNotifier {
	return &WhatsAppLinkNotifier{
		Open: func(link string) error {
			log.Printf("[whatsapp] %s", link)
			return nil
		},
	}
}

func (n *WhatsAppLinkNotifier) Send(phone, message string) error {
	return n.Open(utils.WhatsAppLink(phone, message))
}

// TwilioNotifier sends the message through the Twilio WhatsApp channel.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier(accountSid, authToken, from string) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (n *TwilioNotifier) Send(phone, message string) error {
	if !utils.ValidatePhone(phone) {
		return fmt.Errorf("invalid phone number %q", phone)
	}
	to := phone
	if to[0] != '+' {
		// Local numbers without a country code default to Brazil.
		to = "+55" + utils.DigitsOnly(phone)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:" + to)
	params.SetFrom("whatsapp:" + n.from)
	params.SetBody(message)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		log.Printf("message sent to %s, SID: %s", to, *resp.Sid)
	}
	return nil
}
