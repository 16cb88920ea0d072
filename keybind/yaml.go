package keybind

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML rebinds k from a single key or a list of keys. The help
// description is kept; the help key label is rebuilt from the new keys. An
// empty list disables the binding.
func (k *Keybind) UnmarshalYAML(value *yaml.Node) error {
	var keys []string
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			break
		}
		keys = []string{value.Value}
	case yaml.SequenceNode:
		if err := value.Decode(&keys); err != nil {
			return fmt.Errorf("keybind: %w", err)
		}
	default:
		return fmt.Errorf("keybind: line %d: expected a key or a list of keys", value.Line)
	}

	k.SetKeys(keys...)
	k.help.Key = strings.Join(k.keys, "/")
	return nil
}
