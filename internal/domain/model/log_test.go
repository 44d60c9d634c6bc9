package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_WithField(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		key    string
		value  interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "initializes a nil fields map",
			entry: &LogEntry{ActionType: "create_recipe"},
			key:   "recipe_name",
			value: "Ice Sword",
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "Ice Sword", e.Fields["recipe_name"])
			},
		},
		{
			name: "adds a field next to existing ones",
			entry: &LogEntry{
				Fields: map[string]interface{}{
					"recipe_id": "64f1c0",
				},
			},
			key:   "packs",
			value: 5,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "64f1c0", e.Fields["recipe_id"])
				assert.Equal(t, 5, e.Fields["packs"])
			},
		},
		{
			name: "overwrites an existing field",
			entry: &LogEntry{
				Fields: map[string]interface{}{
					"packs": 1,
				},
			},
			key:   "packs",
			value: 10,
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, 10, e.Fields["packs"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithField(tt.key, tt.value)
			assert.Equal(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}

func TestLogEntry_WithFields(t *testing.T) {
	tests := []struct {
		name   string
		entry  *LogEntry
		fields map[string]interface{}
		verify func(*testing.T, *LogEntry)
	}{
		{
			name:  "adds multiple fields to a nil map",
			entry: &LogEntry{ActionType: "calculate"},
			fields: map[string]interface{}{
				"recipe_name":  "Ice Sword",
				"packs":        5,
				"total_profit": 1240.5,
			},
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "Ice Sword", e.Fields["recipe_name"])
				assert.Equal(t, 5, e.Fields["packs"])
				assert.Equal(t, 1240.5, e.Fields["total_profit"])
			},
		},
		{
			name: "merges with existing fields",
			entry: &LogEntry{
				Fields: map[string]interface{}{
					"recipe_id": "64f1c0",
				},
			},
			fields: map[string]interface{}{
				"deleted": true,
			},
			verify: func(t *testing.T, e *LogEntry) {
				assert.Equal(t, "64f1c0", e.Fields["recipe_id"])
				assert.Equal(t, true, e.Fields["deleted"])
			},
		},
		{
			name: "empty fields map is a no-op",
			entry: &LogEntry{
				Fields: make(map[string]interface{}),
			},
			fields: map[string]interface{}{},
			verify: func(t *testing.T, e *LogEntry) {
				assert.Empty(t, e.Fields)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.entry.WithFields(tt.fields)
			assert.Equal(t, tt.entry, result)
			tt.verify(t, result)
		})
	}
}
