// utils/whatsapp.go
package utils

import (
	"fmt"
	"net/url"
)

// WhatsAppLink builds the wa.me deep link that opens a chat with the client
// and the message pre-filled. Numbers are assumed Brazilian.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/55%s?text=%s", DigitsOnly(phone), url.QueryEscape(message))
}

// ConfirmationMessage formats the booking confirmation sent when the owner
// confirms an appointment.
func ConfirmationMessage(clientName, date, tm, serviceName, professionalName string, duration int, price string) string {
	return "✅ *Agendamento Confirmado*\n\n" +
		fmt.Sprintf("Olá %s!\n\n", clientName) +
		"Seu agendamento foi confirmado:\n" +
		fmt.Sprintf("📅 Data: %s\n", FormatDateBR(date)) +
		fmt.Sprintf("⏰ Horário: %s\n", tm) +
		fmt.Sprintf("✂️ Serviço: %s\n", serviceName) +
		fmt.Sprintf("👤 Profissional: %s\n", professionalName) +
		fmt.Sprintf("⏱️ Duração: %d min\n", duration) +
		fmt.Sprintf("💰 Valor: %s\n\n", price) +
		"Aguardamos você! 💈"
}

// ReminderMessage formats the day-before reminder.
func ReminderMessage(clientName, date, tm, serviceName, professionalName string) string {
	return "🔔 *Lembrete de Agendamento*\n\n" +
		fmt.Sprintf("Olá %s!\n\n", clientName) +
		"Você tem horário marcado para amanhã:\n" +
		fmt.Sprintf("📅 Data: %s\n", FormatDateBR(date)) +
		fmt.Sprintf("⏰ Horário: %s\n", tm) +
		fmt.Sprintf("✂️ Serviço: %s\n", serviceName) +
		fmt.Sprintf("👤 Profissional: %s\n\n", professionalName) +
		"Até lá! 💈"
}
