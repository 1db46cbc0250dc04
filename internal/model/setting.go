package model

import (
	"fmt"
	"net/url"
	"strconv"
)

type SettingKey string

const (
	SettingKeyProxyURL              SettingKey = "proxy_url"
	SettingKeyCORSAllowOrigins      SettingKey = "cors_allow_origins"      // CORS whitelist (comma separated, "*" allows all, empty denies)
	SettingKeyReportUpdateInterval  SettingKey = "report_update_interval"  // report regeneration interval (hours)
	SettingKeyCatalogUpdateInterval SettingKey = "catalog_update_interval" // catalog refresh interval (hours)
)

type Setting struct {
	Key   SettingKey `json:"key" gorm:"primaryKey"`
	Value string     `json:"value" gorm:"not null"`
}

func DefaultSettings() []Setting {
	return []Setting{
		{Key: SettingKeyProxyURL, Value: ""},
		{Key: SettingKeyCORSAllowOrigins, Value: ""},
		{Key: SettingKeyReportUpdateInterval, Value: "24"},
		{Key: SettingKeyCatalogUpdateInterval, Value: "24"},
	}
}

func (s *Setting) Validate() error {
	switch s.Key {
	case SettingKeyReportUpdateInterval, SettingKeyCatalogUpdateInterval:
		v, err := strconv.Atoi(s.Value)
		if err != nil {
			return fmt.Errorf("%s must be an integer", s.Key)
		}
		if v < 0 {
			return fmt.Errorf("%s must not be negative", s.Key)
		}
		return nil
	case SettingKeyProxyURL:
		if s.Value == "" {
			return nil
		}
		parsedURL, err := url.Parse(s.Value)
		if err != nil {
			return fmt.Errorf("proxy URL is invalid: %w", err)
		}
		validSchemes := map[string]bool{
			"http":  true,
			"https": true,
			"socks": true,
		}
		if !validSchemes[parsedURL.Scheme] {
			return fmt.Errorf("proxy URL scheme must be http, https, or socks")
		}
		if parsedURL.Host == "" {
			return fmt.Errorf("proxy URL must have a host")
		}
		return nil
	}

	return nil
}
