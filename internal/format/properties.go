package format

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/magiconair/properties"
)

func propertiesMarshal(v any) ([]byte, error) {
	m, err := flatStringMap(v)
	if err != nil {
		return nil, err
	}

	p := properties.NewProperties()
	p.WriteSeparator = "="

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p.Set(key, m[key])
	}

	var buf bytes.Buffer

	_, err = p.Write(&buf, properties.UTF8)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func propertiesUnmarshal(data []byte, v any) error {
	m, ok := v.(*map[string]string)
	if !ok {
		return fmt.Errorf("properties format requires a flat string map, got %T", v)
	}

	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return err
	}

	if *m == nil {
		*m = map[string]string{}
	}

	for _, key := range p.Keys() {
		(*m)[key] = p.GetString(key, "")
	}

	return nil
}

func flatStringMap(v any) (map[string]string, error) {
	switch m := v.(type) {
	case map[string]string:
		return m, nil
	case *map[string]string:
		return *m, nil
	}

	return nil, fmt.Errorf("properties format requires a flat string map, got %T", v)
}
