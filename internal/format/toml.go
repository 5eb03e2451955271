package format

import (
	"github.com/pelletier/go-toml/v2"
)

func tomlMarshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func tomlUnmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}
