package config

import "fmt"

// Setting resolves a configuration value for a module and step using the
// documented precedence:
//
//	MODULE.STEP.KEY  >  MODULE.KEY  >  KEY  >  def
//
// Lookups walk the raw decoded file, so step overrides work for any key
// without the core modeling it.
func (c *Config) Setting(module, step, key, def string) string {
	if c.Raw != nil {
		if section, ok := c.Raw[module].(map[string]interface{}); ok {
			if step != "" {
				if sub, ok := section[step].(map[string]interface{}); ok {
					if v, ok := stringValue(sub[key]); ok {
						return v
					}
				}
			}
			if v, ok := stringValue(section[key]); ok {
				return v
			}
		}
		if v, ok := stringValue(c.Raw[key]); ok {
			return v
		}
	}
	return def
}

// ModelFor resolves the LLM model identifier for a module/step.
func (c *Config) ModelFor(module, step string) string {
	def := c.LLM.DefaultModel
	if def == "" {
		def = DefaultModel
	}
	return c.Setting(module, step, "model", def)
}

// stringValue converts a raw TOML value to string, rejecting tables.
func stringValue(v interface{}) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, s != ""
	case map[string]interface{}:
		return "", false
	default:
		return fmt.Sprintf("%v", s), true
	}
}
