package main

import (
	"log"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/wb-go/wbf/config"
)

// getOr returns def for an unset key
func getOr(cfg *config.Config, key, def string) string {
	if v := strings.TrimSpace(cfg.GetString(key)); v != "" {
		return v
	}
	return def
}

func getInt(cfg *config.Config, key string, def int) int {
	raw := strings.TrimSpace(cfg.GetString(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

// storageHosts lists the hostnames of the configured MinIO endpoints
func storageHosts(cfg *config.Config) []string {
	var hosts []string
	if raw := strings.TrimSpace(cfg.GetString("MINIO_PUBLIC_URL")); raw != "" {
		if u, err := url.Parse(raw); err == nil && u.Hostname() != "" {
			hosts = append(hosts, u.Hostname())
		}
	}
	if raw := strings.TrimSpace(cfg.GetString("MINIO_ENDPOINT")); raw != "" {
		host, _, err := net.SplitHostPort(raw)
		if err != nil {
			host = raw
		}
		hosts = append(hosts, host)
	}
	return hosts
}
