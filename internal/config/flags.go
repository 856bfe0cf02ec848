package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured host and port data. It implements the
// flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a                  server listen address in [host]:[port] format
//	-d                  database DSN
//	-cache-path         client cache file path
//	-server-address     server address the client connects to
//	-c/-config          json config file path
//	-password-hash-key  password hash key
//	-token-sign-key     token signing key
//	-token-issuer       token issuer name
//	-token-duration     token duration (e.g. "1h", "30m")
//	-request-timeout    request timeout (e.g. "30s", "1m")
//	-sync-interval      client cache sync interval (e.g. "1m")
func ParseFlags() *StructuredConfig {
	return parseFlags(flag.CommandLine, nil)
}

func parseFlags(fs *flag.FlagSet, args []string) *StructuredConfig {
	var serverAddress, adapterAddress NetAddress
	var databaseDSN string
	var cachePath string
	var jsonConfigPath string
	var passwordHashKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var syncInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&cachePath, "cache-path", "", "Client cache file path")
	fs.Var(&adapterAddress, "server-address", "Server address the client connects to, host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g. 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Client cache sync interval (e.g. 1m)")

	if fs == flag.CommandLine {
		flag.Parse()
	} else {
		fs.Parse(args)
	}

	return &StructuredConfig{
		App: AppConfig{
			PasswordHashKey: passwordHashKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
		},
		Storage: StorageConfig{
			DB: DBConfig{
				DSN: databaseDSN,
			},
			Cache: CacheConfig{
				Path: cachePath,
			},
		},
		Server: ServerConfig{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: AdapterConfig{
			HTTPAddress:    adapterAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: WorkersConfig{
			SyncInterval: syncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string, or the empty string when the
// address is unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a host:port string into the NetAddress. The port must be a
// positive integer; the host must be "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
