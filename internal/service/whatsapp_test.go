package service

import (
	"testing"
	"time"

	"github.com/Abdudhi100/dr-olaosebikan/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "2348012345678", normalizePhone("+234 801 234 5678"))
	assert.Equal(t, "2348012345678", normalizePhone("234-801-234-5678"))
	assert.Equal(t, "2348012345678", normalizePhone("2348012345678"))
	assert.Equal(t, "", normalizePhone("no digits here"))
}

func TestBuildLink(t *testing.T) {
	builder := NewWhatsAppLinkBuilder("+234 801 234 5678")

	assert.Equal(t, "https://wa.me/2348012345678", builder.BuildLink(""))

	link := builder.BuildLink("Hello, I have a question & a request")
	assert.Equal(t, "https://wa.me/2348012345678?text=Hello%2C+I+have+a+question+%26+a+request", link)
}

func TestBuildAppointmentLink(t *testing.T) {
	builder := NewWhatsAppLinkBuilder("2348012345678")

	appointment := &entity.Appointment{
		PatientName: "Ada Obi",
		Service:     entity.Service{Name: "General Consultation"},
		Availability: entity.Availability{
			Date:      time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC),
			StartTime: "09:00",
			EndTime:   "09:30",
		},
	}

	link := builder.BuildAppointmentLink(appointment)
	assert.Contains(t, link, "https://wa.me/2348012345678?text=")
	assert.Contains(t, link, "Ada+Obi")
	assert.Contains(t, link, "General+Consultation")
	assert.Contains(t, link, "2026-03-15")
	assert.Contains(t, link, "09%3A00")
}
