package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if !c.Line.Mock && c.Line.ChannelToken == "" {
		return fmt.Errorf("line.channel_token is required unless line.mock is enabled")
	}

	if c.Storage.MaxUploadSize <= 0 {
		return fmt.Errorf("storage.max_upload_size must be > 0 (got %d)", c.Storage.MaxUploadSize)
	}
	if c.Storage.PublicBaseURL == "" {
		return fmt.Errorf("storage.public_base_url is required")
	}

	return nil
}
