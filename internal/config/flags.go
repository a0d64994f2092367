package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-session-secret session token signing secret
//	-admin-user bootstrap admin username
//	-admin-pass bootstrap admin password
//	-site-url public site base URL
//	-static-dir static assets directory
//	-photos-dir apartment photos directory
//	-photos-web-dir web-optimized apartment photos directory
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var sessionSecret string
	var adminUser string
	var adminPass string
	var siteURL string
	var staticDir string
	var photosDir string
	var photosWebDir string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&sessionSecret, "session-secret", "", "Session token signing secret")
	flag.StringVar(&adminUser, "admin-user", "", "Bootstrap admin username")
	flag.StringVar(&adminPass, "admin-pass", "", "Bootstrap admin password")
	flag.StringVar(&siteURL, "site-url", "", "Public site base URL")
	flag.StringVar(&staticDir, "static-dir", "", "Static assets directory")
	flag.StringVar(&photosDir, "photos-dir", "", "Apartment photos directory")
	flag.StringVar(&photosWebDir, "photos-web-dir", "", "Web-optimized apartment photos directory")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionSecret: sessionSecret,
			AdminUser:     adminUser,
			AdminPass:     adminPass,
			SiteURL:       siteURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				StaticDir:    staticDir,
				PhotosDir:    photosDir,
				PhotosWebDir: photosWebDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
