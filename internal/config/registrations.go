package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Registrations holds the platform's own tax registration numbers, one per
// jurisdiction and tax type. These are fixed filings disclosed on legal
// documents when the platform acts as supplier of record; they are never
// computed.
type Registrations struct {
	VATNumber        string `mapstructure:"vat_number"`
	ABNNumber        string `mapstructure:"abn_number"`
	GSTNumber        string `mapstructure:"gst_number"`
	QSTNumber        string `mapstructure:"qst_number"`
	NorwayVATNumber  string `mapstructure:"norway_vat_number"`
	GenericTaxNumber string `mapstructure:"generic_tax_number"`
}

// DefaultRegistrations returns the registrations used when no
// registrations file is present (dev and test environments).
func DefaultRegistrations() Registrations {
	return Registrations{
		VATNumber:        "EU372000048",
		ABNNumber:        "83 616 425 123",
		GSTNumber:        "723456789RT0001",
		QSTNumber:        "1229876543TQ0001",
		NorwayVATNumber:  "912345678MVA",
		GenericTaxNumber: "EU372000048",
	}
}

// RegistrationsHolder serves the current registration table and hot-reloads
// it when the file changes, so a new filing goes live without a restart.
type RegistrationsHolder struct {
	current atomic.Value // holds Registrations
}

// NewRegistrationsHolder reads registrations.yml and watches it for changes.
func NewRegistrationsHolder() (*RegistrationsHolder, error) {
	v := viper.New()

	v.SetConfigName("registrations")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/folio/config")
	v.AddConfigPath("/etc/folio")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		defaults := DefaultRegistrations()
		v.SetDefault("registrations.vat_number", defaults.VATNumber)
		v.SetDefault("registrations.abn_number", defaults.ABNNumber)
		v.SetDefault("registrations.gst_number", defaults.GSTNumber)
		v.SetDefault("registrations.qst_number", defaults.QSTNumber)
		v.SetDefault("registrations.norway_vat_number", defaults.NorwayVATNumber)
		v.SetDefault("registrations.generic_tax_number", defaults.GenericTaxNumber)
	}

	var regs Registrations
	if err := v.UnmarshalKey("registrations", &regs); err != nil {
		return nil, err
	}
	if err := validateRegistrations(regs); err != nil {
		return nil, err
	}

	holder := &RegistrationsHolder{}
	holder.current.Store(regs)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Registrations
		if err := v.UnmarshalKey("registrations", &updated); err != nil {
			log.Printf("[registrations] reload failed: %v", err)
			return
		}
		if err := validateRegistrations(updated); err != nil {
			log.Printf("[registrations] invalid table ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[registrations] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticRegistrationsHolder wraps a fixed table, for tests.
func NewStaticRegistrationsHolder(regs Registrations) *RegistrationsHolder {
	holder := &RegistrationsHolder{}
	holder.current.Store(regs)
	return holder
}

func (h *RegistrationsHolder) Get() Registrations {
	return h.current.Load().(Registrations)
}

var errEmptyRegistration = errors.New("registration number is empty")

func validateRegistrations(regs Registrations) error {
	for _, number := range []string{
		regs.VATNumber,
		regs.ABNNumber,
		regs.GSTNumber,
		regs.QSTNumber,
		regs.NorwayVATNumber,
		regs.GenericTaxNumber,
	} {
		if strings.TrimSpace(number) == "" {
			return errEmptyRegistration
		}
	}
	return nil
}
