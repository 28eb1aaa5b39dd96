package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"sealgen/internal/common"
)

// StringOrArray accepts either a single string or a list of strings.
type StringOrArray []string

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// UnmarshalTOML implements toml.Unmarshaler for StringOrArray.
func (s *StringOrArray) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		if v != "" {
			*s = StringOrArray{v}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case []any:
		out := make(StringOrArray, 0, len(v))

		for _, item := range v {
			str, ok := item.(string)
			if !ok {
				return fmt.Errorf("expected string in array, got %T", item)
			}

			out = append(out, str)
		}

		*s = out

		return nil

	default:
		return fmt.Errorf("expected string or array, got %T", data)
	}
}

// IsEmpty returns true if the array is empty.
func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}
