package reset

import (
	"encoding/json"
	"strconv"
	"strings"

	"rcm-go/drivers/rcm"
	"rcm-go/errcode"
)

// Config is supplied at construction and may be replaced on the
// "config/reset" bus topic.
type Config struct {
	// Clear the sticky reset latches once the report has been captured.
	// Ignored on parts without sticky status.
	ClearSticky bool `json:"clear_sticky,omitempty"`
	// Clear the boot ROM flag once the report has been captured. Ignored on
	// parts without a boot ROM.
	ClearBootROM bool `json:"clear_boot_rom,omitempty"`
	// Reset pin filter to apply; nil leaves the hardware setting alone.
	Filter *rcm.FilterConfig `json:"filter,omitempty"`
}

// Validate checks ranges the driver leaves to the caller.
func (c Config) Validate() error {
	if c.Filter != nil && c.Filter.Width > rcm.MaxFilterWidth {
		return &errcode.E{
			C:   errcode.InvalidParams,
			Op:  "reset.config",
			Msg: "filter width " + strconv.FormatUint(uint64(c.Filter.Width), 10) + " out of range",
		}
	}
	return nil
}

// Unsupported reports the requests in c that a part with features f cannot
// honour. The service skips those requests and applies the rest.
func (c Config) Unsupported(f rcm.Features) error {
	var missing []string
	if c.ClearSticky && !f.Sticky {
		missing = append(missing, "clear_sticky")
	}
	if c.ClearBootROM && !f.BootROM {
		missing = append(missing, "clear_boot_rom")
	}
	if len(missing) == 0 {
		return nil
	}
	return &errcode.E{
		C:   errcode.Unsupported,
		Op:  "reset.config",
		Msg: strings.Join(missing, ", ") + " not available on this part",
	}
}

// decodeConfig accepts a Config, raw JSON, or any JSON-marshalable value
// such as a map from a generic config loader.
func decodeConfig(src any) (Config, error) {
	var c Config
	var err error
	switch v := src.(type) {
	case Config:
		c = v
	case *Config:
		if v != nil {
			c = *v
		}
	case []byte:
		err = json.Unmarshal(v, &c)
	case string:
		err = json.Unmarshal([]byte(v), &c)
	default:
		var b []byte
		if b, err = json.Marshal(v); err == nil {
			err = json.Unmarshal(b, &c)
		}
	}
	if err != nil {
		return Config{}, errcode.Wrap(errcode.InvalidParams, "reset.config", err)
	}
	return c, c.Validate()
}
