package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Store.Driver != DriverMongo || cfg.Blob.Driver != DriverGridFS || cfg.Mail.Driver != DriverLog {
		t.Errorf("drivers = %s/%s/%s", cfg.Store.Driver, cfg.Blob.Driver, cfg.Mail.Driver)
	}
	if cfg.Mongo.URI != defaultMongoURI || cfg.Mongo.Database != "fitforge" {
		t.Errorf("mongo = %s/%s", cfg.Mongo.URI, cfg.Mongo.Database)
	}
	if cfg.Mongo.Timeout != 10*time.Second {
		t.Errorf("mongo timeout = %v", cfg.Mongo.Timeout)
	}
	if cfg.Auth.TokenTTL != 30*24*time.Hour || cfg.Auth.ResetTTL != time.Hour {
		t.Errorf("ttl = %v/%v", cfg.Auth.TokenTTL, cfg.Auth.ResetTTL)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "*" {
		t.Errorf("cors = %v", cfg.Server.CORSOrigins)
	}
	if cfg.MaxUploadBytes() != 4<<20 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_MODE", "debug")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("BLOB_DRIVER", "memory")
	t.Setenv("SERVER_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("MONGO_URL", "mongodb://db.test:27017")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 || cfg.Store.Driver != DriverMemory {
		t.Errorf("got port %d driver %s", cfg.Server.Port, cfg.Store.Driver)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.test" {
		t.Errorf("cors = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Mongo.URI != "mongodb://db.test:27017" {
		t.Errorf("MONGO_URL not honoured: %s", cfg.Mongo.URI)
	}
}

func TestLoadRequiresSecretInRelease(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	if _, err := Load(""); err == nil {
		t.Fatal("expected an error without a jwt secret in release mode")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	body := "server:\n  mode: debug\n  max_upload_mb: 8\nstore:\n  driver: memory\nblob:\n  driver: memory\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Mode != "debug" || cfg.Server.MaxUploadMB != 8 {
		t.Errorf("got mode %s upload %d", cfg.Server.Mode, cfg.Server.MaxUploadMB)
	}
}

func TestGridFSNeedsMongo(t *testing.T) {
	t.Setenv("SERVER_MODE", "debug")
	t.Setenv("STORE_DRIVER", "memory")
	if _, err := Load(""); err == nil {
		t.Fatal("expected gridfs with the memory store to be rejected")
	}
}

func TestCORSOriginsNeedScheme(t *testing.T) {
	t.Setenv("SERVER_MODE", "debug")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("BLOB_DRIVER", "memory")
	t.Setenv("SERVER_CORS_ORIGINS", "app.test")
	if _, err := Load(""); err == nil {
		t.Fatal("expected an origin without a scheme to be rejected")
	}
}

func TestGenerateRandomKey(t *testing.T) {
	a, b := GenerateRandomKey(), GenerateRandomKey()
	if a == "" || a == b {
		t.Fatalf("keys %q and %q should be distinct and non-empty", a, b)
	}
}
