package conf

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// PasswordConfiguration holds the password generation parameters.
type PasswordConfiguration struct {
	// Charset is a charset specification string. Empty means the full
	// typeable ASCII set.
	Charset string `json:"charset"`
	Length  int    `json:"length" default:"24"`
	Count   int    `json:"count" default:"1"`
	Hash    bool   `json:"hash" default:"false"`
}

func (c *PasswordConfiguration) Validate() error {
	if c.Length < 1 {
		return errors.New("password length must not be zero")
	}
	if c.Count < 1 {
		return errors.New("number of passwords must not be zero")
	}
	return nil
}

// GlobalConfiguration holds all the configuration for pwgen.
type GlobalConfiguration struct {
	Logging  LoggingConfig         `envconfig:"LOG"`
	Password PasswordConfiguration `envconfig:"PASSWORD"`
}

func loadEnvironment(filename string) error {
	var err error
	if filename != "" {
		err = godotenv.Overload(filename)
	} else {
		err = godotenv.Load()
		// handle if .env file does not exist, this is OK
		if os.IsNotExist(err) {
			return nil
		}
	}
	return err
}

// LoadGlobal loads configuration from file and environment variables.
func LoadGlobal(filename string) (*GlobalConfiguration, error) {
	if err := loadEnvironment(filename); err != nil {
		return nil, err
	}

	config := new(GlobalConfiguration)

	if err := envconfig.Process("pwgen", config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates all of configuration.
func (c *GlobalConfiguration) Validate() error {
	validatables := []interface {
		Validate() error
	}{
		&c.Password,
	}

	for _, validatable := range validatables {
		if err := validatable.Validate(); err != nil {
			return err
		}
	}

	return nil
}
