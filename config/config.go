package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Clinic ClinicConfig
	Mail   MailConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// ClinicConfig holds the appointment calendar settings: the daily booking
// window, how far ahead patients may book, and the clinic's local timezone.
type ClinicConfig struct {
	DayStart      string // "HH:MM", clinic opens
	DayEnd        string // "HH:MM", clinic closes
	LookaheadDays int
	Timezone      string // IANA name, e.g. "Africa/Lagos"
	WhatsAppPhone string // international format, used for wa.me deep links
}

type MailConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	DoctorEmail string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Clinic: ClinicConfig{
			DayStart:      viper.GetString("APPOINTMENT_DAY_START"),
			DayEnd:        viper.GetString("APPOINTMENT_DAY_END"),
			LookaheadDays: viper.GetInt("APPOINTMENT_LOOKAHEAD_DAYS"),
			Timezone:      viper.GetString("CLINIC_TIMEZONE"),
			WhatsAppPhone: viper.GetString("CLINIC_WHATSAPP_NUMBER"),
		},
		Mail: MailConfig{
			Host:        viper.GetString("EMAIL_HOST"),
			Port:        viper.GetInt("EMAIL_PORT"),
			Username:    viper.GetString("EMAIL_HOST_USER"),
			Password:    viper.GetString("EMAIL_HOST_PASSWORD"),
			From:        viper.GetString("DEFAULT_FROM_EMAIL"),
			DoctorEmail: viper.GetString("DOCTOR_NOTIFICATION_EMAIL"),
		},
	}

	if config.Clinic.DayStart == "" {
		config.Clinic.DayStart = "09:00"
	}
	if config.Clinic.DayEnd == "" {
		config.Clinic.DayEnd = "17:00"
	}
	if config.Clinic.LookaheadDays <= 0 {
		config.Clinic.LookaheadDays = 60
	}
	if config.Clinic.Timezone == "" {
		config.Clinic.Timezone = "Africa/Lagos"
	}

	return config, nil
}
