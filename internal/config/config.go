package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DefaultRunAddress       = ":8080"
	DefaultDatabaseURI      = ""
	DefaultInferenceAddress = "http://localhost:4100"
	DefaultInferenceTimeout = 10 * time.Second
	DefaultSMSAddress       = ""
	DefaultSMSFrom          = ""
	DefaultAMQPURL          = ""
	DefaultMediaBucket      = "enviromat-media"
	DefaultMediaRegion      = "ap-south-1"
	DefaultMediaBaseURL     = ""
	DefaultPassCost         = 3
	DefaultSecretKey        = "secret"
	DefaultTokenLifetime    = 3 * time.Hour
)

type Config struct {
	RunAddress       string        `env:"RUN_ADDRESS"`
	DatabaseURI      string        `env:"DATABASE_URI"`
	InferenceAddress string        `env:"INFERENCE_ADDRESS"`
	InferenceTimeout time.Duration `env:"INFERENCE_TIMEOUT"`
	SMSAddress       string        `env:"SMS_GATEWAY_ADDRESS"`
	SMSFrom          string        `env:"SMS_FROM_NUMBER"`
	AMQPURL          string        `env:"AMQP_URL"`
	MediaBucket      string        `env:"MEDIA_BUCKET"`
	MediaRegion      string        `env:"MEDIA_REGION"`
	MediaBaseURL     string        `env:"MEDIA_BASE_URL"`
	PassCost         int           `env:"PASS_COST"`
	SecretKey        string        `env:"SECRET_KEY"`
	TokenLifetime    time.Duration `env:"TOKEN_LIFETIME"`
}

func Read() (Config, error) {
	config := Config{}

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Database connect string")
	flag.StringVar(&config.InferenceAddress, "i", DefaultInferenceAddress, "Nearest-picker inference service address protocol://hostname:port")
	flag.DurationVar(&config.InferenceTimeout, "t", DefaultInferenceTimeout, "Nearest-picker inference call timeout")
	flag.StringVar(&config.SMSAddress, "sms", DefaultSMSAddress, "SMS gateway address, empty disables notifications")
	flag.StringVar(&config.SMSFrom, "from", DefaultSMSFrom, "SMS sender number")
	flag.StringVar(&config.AMQPURL, "q", DefaultAMQPURL, "AMQP broker URL, empty disables event publishing")
	flag.StringVar(&config.MediaBucket, "b", DefaultMediaBucket, "Media storage bucket name")
	flag.StringVar(&config.MediaRegion, "r", DefaultMediaRegion, "Media storage region")
	flag.StringVar(&config.MediaBaseURL, "u", DefaultMediaBaseURL, "Public base URL for uploaded media, empty derives from bucket/region")
	flag.IntVar(&config.PassCost, "p", DefaultPassCost, "Pass cost for password hash")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for token")
	flag.DurationVar(&config.TokenLifetime, "h", DefaultTokenLifetime, "Token lifetime (e.g. 1h, 30m, 2h30m)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
