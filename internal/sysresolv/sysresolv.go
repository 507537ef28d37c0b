// Package sysresolv discovers the operating system's configured DNS
// resolvers, for the case where dog is invoked without an explicit
// -n/--nameserver. It reads /etc/resolv.conf directly rather than linking
// a libresolv binding, which only exists on POSIX systems; Windows has no
// equivalent file and callers must pass -n explicitly there.
package sysresolv

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoServers is returned when resolv.conf has no "nameserver" lines.
var ErrNoServers = errors.New("sysresolv: no nameserver entries found")

const defaultPath = "/etc/resolv.conf"

// Config is the subset of resolv.conf dog cares about: the servers to
// query, in file order.
type Config struct {
	Servers []string
}

// Load reads the default resolver configuration path.
func Load() (Config, error) {
	return LoadFile(defaultPath)
}

// LoadFile reads and parses a resolv.conf-format file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("sysresolv: %w", err)
	}
	defer f.Close()

	var cfg Config
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "nameserver" {
			continue
		}
		cfg.Servers = append(cfg.Servers, fields[1])
	}
	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("sysresolv: reading %s: %w", path, err)
	}
	if len(cfg.Servers) == 0 {
		return Config{}, ErrNoServers
	}
	return cfg, nil
}
