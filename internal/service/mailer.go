package service

import (
	"fmt"
	"strings"

	"github.com/Abdudhi100/dr-olaosebikan/config"
	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"gopkg.in/gomail.v2"
)

// BookingMailer sends the two booking emails: a confirmation to the patient
// and an alert to the clinic inbox.
type BookingMailer interface {
	SendPatientConfirmation(appointment *entity.Appointment) error
	SendDoctorAlert(appointment *entity.Appointment) error
}

type smtpMailer struct {
	dialer      *gomail.Dialer
	from        string
	doctorEmail string
}

func NewSMTPMailer(cfg config.MailConfig) BookingMailer {
	return &smtpMailer{
		dialer:      gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:        cfg.From,
		doctorEmail: cfg.DoctorEmail,
	}
}

func (m *smtpMailer) SendPatientConfirmation(appointment *entity.Appointment) error {
	if appointment.PatientEmail == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", appointment.PatientEmail)
	msg.SetHeader("Subject", "Your appointment request was received")
	msg.SetBody("text/plain", m.patientBody(appointment))

	return m.dialer.DialAndSend(msg)
}

func (m *smtpMailer) SendDoctorAlert(appointment *entity.Appointment) error {
	if m.doctorEmail == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.doctorEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New appointment request: %s", appointment.PatientName))
	msg.SetBody("text/plain", m.doctorBody(appointment))

	return m.dialer.DialAndSend(msg)
}

func (m *smtpMailer) patientBody(appointment *entity.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", appointment.PatientName)
	fmt.Fprintf(&b, "Your appointment request for %s on %s at %s was received and is pending confirmation.\n\n",
		appointment.Service.Name, appointment.Availability.DateString(), appointment.Availability.StartTime)
	b.WriteString("You will be contacted once the appointment is confirmed.\n")
	return b.String()
}

func (m *smtpMailer) doctorBody(appointment *entity.Appointment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New appointment request.\n\n")
	fmt.Fprintf(&b, "Patient: %s\n", appointment.PatientName)
	fmt.Fprintf(&b, "Email: %s\n", appointment.PatientEmail)
	if appointment.PatientPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", appointment.PatientPhone)
	}
	fmt.Fprintf(&b, "Service: %s\n", appointment.Service.Name)
	fmt.Fprintf(&b, "Date: %s %s-%s\n", appointment.Availability.DateString(),
		appointment.Availability.StartTime, appointment.Availability.EndTime)
	if appointment.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", appointment.Notes)
	}
	return b.String()
}
