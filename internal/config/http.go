package config

type HTTP struct {
	Port             uint32 `env:"PORT" envDefault:"5000"`
	Swagger          bool   `env:"HTTP_SWAGGER" envDefault:"true"`
	ValidateRequests bool   `env:"HTTP_VALIDATE_REQUESTS" envDefault:"true"`
	CORS             CORS
}

type CORS struct {
	AllowedOrigins []string `env:"HTTP_CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,https://localhost:3000,https://*.vercel.app"`
}
