package conf

import (
	"fmt"
	"os"
)

const defaultHTTPAddress = ":8080"

// Conf holds everything the server reads from its environment. It is built
// once at startup and passed explicitly to the pieces that need it.
type Conf struct {
	SecretKey   string
	HTTPAddress string
}

// Load reads the configuration from environment variables. A missing
// SECRET_KEY is a startup error: the intake gate must never be compared
// against an empty credential.
func Load() (*Conf, error) {
	secretKey := os.Getenv("SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is not set")
	}

	address := os.Getenv("HTTP_ADDRESS")
	if address == "" {
		address = defaultHTTPAddress
	}

	return &Conf{
		SecretKey:   secretKey,
		HTTPAddress: address,
	}, nil
}
