package storage

import "encoding/json"

// Memory is a KV kept entirely in process memory. Nothing survives a
// restart; it exists for tests and throwaway sessions.
type Memory struct {
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Load(key string, out interface{}) bool {
	raw, ok := m.values[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false
	}
	return true
}

func (m *Memory) Save(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}
