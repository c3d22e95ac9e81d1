// Package contract holds the JSON shape every roster producer must emit.
// The parser, the structured importer, and the persistence layer all meet at
// this schema, so a consumer never has to care which path produced a roster.
package contract

import "github.com/chargeboard/rosterscan/internal/roster"

// BuildRosterJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used locally to validate serialized rosters before they are
// persisted or emitted. roomPattern is the deployment's room grammar; an
// empty string uses the default grammar, so the schema always accepts
// exactly what the producing parser accepted.
func BuildRosterJSONSchema(roomPattern string) map[string]any {
	if roomPattern == "" {
		roomPattern = roster.DefaultLayoutConfig().RoomPattern.String()
	}
	roomAssignment := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"room":        map[string]any{"type": "string", "pattern": roomPattern},
			"levelOfCare": map[string]any{"type": "string", "enum": []string{"Tele", "MS", ""}},
			"notes": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
		},
		"required": []string{"room", "notes"},
	}

	rn := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "minLength": 1},
			"rooms": map[string]any{"type": "array", "items": roomAssignment},
		},
		"required": []string{"name", "rooms"},
	}

	pca := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "minLength": 1},
			"count": map[string]any{"type": "integer", "minimum": 0},
			"rooms": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "pattern": roomPattern},
			},
		},
		"required": []string{"name", "count", "rooms"},
	}

	meta := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"chargeNurse": map[string]any{"type": "string"},
			"resourceRn":  map[string]any{"type": "string"},
			"cta":         map[string]any{"type": "string"},
			"unitLabel":   map[string]any{"type": "string"},
			"dateLabel":   map[string]any{"type": "string"},
		},
		"required": []string{"chargeNurse", "resourceRn", "cta"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"outcome": map[string]any{
				"type": "string",
				"enum": []string{"FULL", "LEADERSHIP_ONLY", "EMPTY"},
			},
			"meta": meta,
			"pcas": map[string]any{"type": "array", "items": pca},
			"rns":  map[string]any{"type": "array", "items": rn},
		},
		"required": []string{"outcome", "meta", "pcas", "rns"},
	}
}
