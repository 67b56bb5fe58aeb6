package config

import "time"

const defaultPort = 8080

var defaultOrdersAPI = OrdersAPI{
	BaseURL:     "http://localhost:9000",
	Timeout:     5 * time.Second,
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRidersAPI = RidersAPI{
	BaseURL: "http://localhost:9000",
	Timeout: 5 * time.Second,
}

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "dispatch",
	Pass: "dispatch",
	Name: "dispatch",
}

var defaultKafka = Kafka{
	Topic:   "order-events",
	GroupID: "franchise-dispatch",
}

var defaultFilters = Filters{
	PageSize:       20,
	SearchDebounce: 500 * time.Millisecond,
}

var defaultCORS = CORS{
	AllowedOrigins: []string{"http://localhost:3000"},
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       20,
	Burst:      40,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultOrdersAPI returns the default order store client settings.
func DefaultOrdersAPI() OrdersAPI {
	return defaultOrdersAPI
}

// DefaultRidersAPI returns the default rider directory client settings.
func DefaultRidersAPI() RidersAPI {
	return defaultRidersAPI
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultKafka returns the default order event consumer settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultFilters returns the default listing settings.
func DefaultFilters() Filters {
	return defaultFilters
}

// DefaultCORS returns the default CORS settings.
func DefaultCORS() CORS {
	return defaultCORS
}

// DefaultRateLimit returns the default throttling settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}
