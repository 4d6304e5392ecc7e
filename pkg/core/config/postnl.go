// Package config loads SDK settings from .env files, environment variables
// and an optional config file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Mode selects the transport used by services that offer both.
type Mode string

const (
	ModeSOAP Mode = "soap"
	ModeREST Mode = "rest"
)

const (
	DefaultMode        = ModeSOAP
	DefaultPrintertype = "GraphicFile|PDF"
	DefaultCountry     = "NL"
	DefaultAddressType = "02"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid postnl config")

// Customer is the sender account attached to requests.
type Customer struct {
	Number                 string  `mapstructure:"number"`
	Code                   string  `mapstructure:"code"`
	CollectionLocation     string  `mapstructure:"collection-location"`
	ContactPerson          string  `mapstructure:"contact-person"`
	Email                  string  `mapstructure:"email"`
	Name                   string  `mapstructure:"name"`
	GlobalPackBarcodeType  string  `mapstructure:"globalpack-barcode-type"`
	GlobalPackCustomerCode string  `mapstructure:"globalpack-customer-code"`
	Address                Address `mapstructure:"address"`
}

// Address is the sender address. AddressType defaults to "02".
type Address struct {
	AddressType string `mapstructure:"type"`
	CompanyName string `mapstructure:"company-name"`
	Street      string `mapstructure:"street"`
	HouseNr     string `mapstructure:"house-nr"`
	HouseNrExt  string `mapstructure:"house-nr-ext"`
	Zipcode     string `mapstructure:"zipcode"`
	City        string `mapstructure:"city"`
	Countrycode string `mapstructure:"countrycode"`
}

// IsZero reports whether no address field is set.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Config is the "postnl" section. A zero cache-ttl disables the response
// cache; cache-path selects a file-backed cache instead of memory.
//
//	postnl:
//	  api-key: secret # or POSTNL_API_KEY
//	  sandbox: true
//	  mode: soap
//	  printertype: GraphicFile|PDF
//	  cache-ttl: 10m
//	  cache-path: ./postnl-cache.db
//	  customer:
//	    number: "11223344"
//	    code: DEVC
//	    collection-location: "123456"
//	    address:
//	      company-name: PostNL
//	      street: Siriusdreef
//	      house-nr: "42"
//	      zipcode: 2132WT
//	      city: Hoofddorp
type Config struct {
	APIKey      string        `mapstructure:"api-key"`
	Sandbox     bool          `mapstructure:"sandbox"`
	Mode        Mode          `mapstructure:"mode"`
	Printertype string        `mapstructure:"printertype"`
	Country     string        `mapstructure:"country"`
	CacheTTL    time.Duration `mapstructure:"cache-ttl"`
	CachePath   string        `mapstructure:"cache-path"`
	Customer    Customer      `mapstructure:"customer"`
}

var envKeys = []string{
	"postnl.api-key",
	"postnl.sandbox",
	"postnl.mode",
	"postnl.printertype",
	"postnl.country",
	"postnl.cache-ttl",
	"postnl.cache-path",
	"postnl.customer.number",
	"postnl.customer.code",
	"postnl.customer.collection-location",
	"postnl.customer.contact-person",
	"postnl.customer.email",
	"postnl.customer.name",
	"postnl.customer.globalpack-barcode-type",
	"postnl.customer.globalpack-customer-code",
	"postnl.customer.address.type",
	"postnl.customer.address.company-name",
	"postnl.customer.address.street",
	"postnl.customer.address.house-nr",
	"postnl.customer.address.house-nr-ext",
	"postnl.customer.address.zipcode",
	"postnl.customer.address.city",
	"postnl.customer.address.countrycode",
}

// bindEnv makes the postnl keys visible to Unmarshal when they are only set
// in the environment.
func bindEnv(v *viper.Viper) {
	for _, k := range envKeys {
		_ = v.BindEnv(k)
	}
}

// Load reads, defaults and validates the "postnl" section.
func Load(v *viper.Viper) (Config, error) {
	// Unmarshal, unlike UnmarshalKey, merges keys bound to the environment.
	var root struct {
		PostNL Config `mapstructure:"postnl"`
	}
	if err := v.Unmarshal(&root); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal postnl config: %w", err)
	}
	cfg := root.PostNL
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Mode = Mode(strings.ToLower(string(lo.CoalesceOrEmpty(c.Mode, DefaultMode))))
	c.Printertype = lo.CoalesceOrEmpty(c.Printertype, DefaultPrintertype)
	c.Country = strings.ToUpper(lo.CoalesceOrEmpty(c.Country, DefaultCountry))
	if !c.Customer.Address.IsZero() {
		c.Customer.Address.AddressType = lo.CoalesceOrEmpty(c.Customer.Address.AddressType, DefaultAddressType)
		c.Customer.Address.Countrycode = lo.CoalesceOrEmpty(c.Customer.Address.Countrycode, c.Country)
	}
}

// Validate checks the settings every request depends on.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.APIKey) == "" {
		problems = append(problems, "api-key is required")
	}
	if !lo.Contains([]Mode{ModeSOAP, ModeREST}, c.Mode) {
		problems = append(problems, fmt.Sprintf("mode must be soap or rest, got %q", c.Mode))
	}
	if c.CacheTTL < 0 {
		problems = append(problems, "cache-ttl cannot be negative")
	}
	if len(c.Country) != 2 {
		problems = append(problems, fmt.Sprintf("country must be a two letter code, got %q", c.Country))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
