package config

import "os"

type Config struct {
	Port        string
	StoreDriver string
	StoreDSN    string
}

// FromEnv builds a Config from environment variables, with sane defaults.
func FromEnv() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	driver := os.Getenv("ENERGYCOMPARE_STORE_DRIVER")
	if driver == "" {
		driver = "memory"
	}
	return Config{
		Port:        port,
		StoreDriver: driver,
		StoreDSN:    os.Getenv("ENERGYCOMPARE_STORE_DSN"),
	}
}
