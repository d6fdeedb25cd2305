package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"
)

// WhatsAppLinkBuilder produces wa.me deep links that open a chat with the
// clinic's WhatsApp number, pre-filled with a context message.
type WhatsAppLinkBuilder struct {
	clinicPhone string
}

func NewWhatsAppLinkBuilder(clinicPhone string) *WhatsAppLinkBuilder {
	return &WhatsAppLinkBuilder{clinicPhone: normalizePhone(clinicPhone)}
}

// BuildLink returns the deep link for a free-form message
func (b *WhatsAppLinkBuilder) BuildLink(text string) string {
	link := "https://wa.me/" + b.clinicPhone
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}

// BuildAppointmentLink pre-fills the chat with the appointment context so the
// clinic can match the conversation to the booking.
func (b *WhatsAppLinkBuilder) BuildAppointmentLink(appointment *entity.Appointment) string {
	text := fmt.Sprintf("Hello, I am %s. I just booked %s on %s at %s and would like to follow up.",
		appointment.PatientName,
		appointment.Service.Name,
		appointment.Availability.DateString(),
		appointment.Availability.StartTime,
	)
	return b.BuildLink(text)
}

// normalizePhone strips everything except digits; wa.me expects the number in
// international format without '+', spaces or dashes.
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
