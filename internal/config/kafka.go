package config

import "errors"

type Kafka struct {
	Enabled   bool     `env:"KAFKA_ENABLED" envDefault:"false"`
	Addresses []string `env:"KAFKA_ADDRESSES" envSeparator:","`
	Group     string   `env:"KAFKA_GROUP" envDefault:"catalog"`
}

// Validate reports whether an enabled Kafka configuration can be used to connect.
func (k Kafka) Validate() error {
	if !k.Enabled {
		return nil
	}
	if len(k.Addresses) == 0 {
		return errors.New("KAFKA_ADDRESSES is required when KAFKA_ENABLED is true")
	}
	if k.Group == "" {
		return errors.New("KAFKA_GROUP must not be empty")
	}
	return nil
}
