package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
	DriverGridFS = "gridfs"
	DriverS3     = "s3"
	DriverSES    = "ses"
	DriverLog    = "log"

	defaultMongoURI = "mongodb://localhost:27017"
)

type Config struct {
	Server server
	Store  store
	Mongo  mongoConfig
	Auth   auth
	Blob   blob
	Mail   mail
	Log    logConfig
}

type server struct {
	Port        int
	Mode        string
	CORSOrigins []string
	MaxUploadMB int
}

type store struct {
	Driver string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type auth struct {
	JWTSecret    string
	TokenTTL     time.Duration
	ResetTTL     time.Duration
	SeedDemoData bool
}

type blob struct {
	Driver   string
	S3Bucket string
	S3Region string
	S3Prefix string
}

type mail struct {
	Driver string
	From   string
	Region string
}

type logConfig struct {
	Level          string
	Format         string
	ElkEnable      bool
	ElkURL         string
	ElkIndex       string
	LogstashEnable bool
	LogstashURL    string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_origins", "*")
	v.SetDefault("server.max_upload_mb", 4)
	v.SetDefault("store.driver", DriverMongo)
	v.SetDefault("mongo.database", "fitforge")
	v.SetDefault("mongo.timeout", "10s")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "720h")
	v.SetDefault("auth.reset_ttl", "1h")
	v.SetDefault("auth.seed_demo_data", false)
	v.SetDefault("blob.driver", DriverGridFS)
	v.SetDefault("blob.s3_bucket", "")
	v.SetDefault("blob.s3_region", "us-east-1")
	v.SetDefault("blob.s3_prefix", "uploads/")
	v.SetDefault("mail.driver", DriverLog)
	v.SetDefault("mail.from", "")
	v.SetDefault("mail.region", "us-east-1")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.elk.enable", false)
	v.SetDefault("log.elk.url", "http://localhost:9200")
	v.SetDefault("log.elk.index", "fitforge")
	v.SetDefault("log.logstash.enable", false)
	v.SetDefault("log.logstash.url", "localhost:5000")
}

// Load reads an optional .env file, an optional config file (config.yml in
// the working directory when path is empty) and the environment. Environment
// variables win; SERVER_PORT overrides server.port.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.Mode = v.GetString("server.mode")
	cfg.Server.CORSOrigins = splitList(v.GetString("server.cors_origins"))
	cfg.Server.MaxUploadMB = v.GetInt("server.max_upload_mb")
	cfg.Store.Driver = v.GetString("store.driver")
	cfg.Mongo.URI = v.GetString("mongo.uri")
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = os.Getenv("MONGO_URL")
	}
	if cfg.Mongo.URI == "" {
		cfg.Mongo.URI = defaultMongoURI
	}
	cfg.Mongo.Database = v.GetString("mongo.database")
	cfg.Mongo.Timeout = v.GetDuration("mongo.timeout")
	cfg.Auth.JWTSecret = v.GetString("auth.jwt_secret")
	cfg.Auth.TokenTTL = v.GetDuration("auth.token_ttl")
	cfg.Auth.ResetTTL = v.GetDuration("auth.reset_ttl")
	cfg.Auth.SeedDemoData = v.GetBool("auth.seed_demo_data")
	cfg.Blob.Driver = v.GetString("blob.driver")
	cfg.Blob.S3Bucket = v.GetString("blob.s3_bucket")
	cfg.Blob.S3Region = v.GetString("blob.s3_region")
	cfg.Blob.S3Prefix = v.GetString("blob.s3_prefix")
	cfg.Mail.Driver = v.GetString("mail.driver")
	cfg.Mail.From = v.GetString("mail.from")
	cfg.Mail.Region = v.GetString("mail.region")
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Log.ElkEnable = v.GetBool("log.elk.enable")
	cfg.Log.ElkURL = v.GetString("log.elk.url")
	cfg.Log.ElkIndex = v.GetString("log.elk.index")
	cfg.Log.LogstashEnable = v.GetBool("log.logstash.enable")
	cfg.Log.LogstashURL = v.GetString("log.logstash.url")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}
	switch c.Blob.Driver {
	case DriverGridFS, DriverS3, DriverMemory:
	default:
		return fmt.Errorf("unknown blob.driver %q", c.Blob.Driver)
	}
	if c.Blob.Driver == DriverGridFS && c.Store.Driver != DriverMongo {
		return errors.New("blob.driver gridfs requires store.driver mongo")
	}
	switch c.Mail.Driver {
	case DriverLog, DriverSES:
	default:
		return fmt.Errorf("unknown mail.driver %q", c.Mail.Driver)
	}
	if c.Server.Mode == "release" && c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required in release mode")
	}
	if c.Mongo.Timeout <= 0 {
		return errors.New("mongo.timeout must be positive")
	}
	if c.Server.MaxUploadMB <= 0 {
		return errors.New("server.max_upload_mb must be positive")
	}
	for _, o := range c.Server.CORSOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("server.cors_origins entry %q needs an http:// or https:// scheme", o)
		}
	}
	return nil
}

// MaxUploadBytes is the multipart body limit.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
