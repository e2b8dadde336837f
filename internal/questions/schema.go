package questions

// bankSchema describes the shape of a question bank document. Semantic
// rules (unique ids, answer among options) are checked after schema
// validation in Load.
var bankSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type":     "object",
		"required": []string{"id", "category", "question", "options", "correctAnswer"},
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer", "minimum": 1},
			"category": map[string]any{"enum": []string{"General", "Science", "History", "Geography"}},
			"question": map[string]any{"type": "string", "minLength": 1},
			"options": map[string]any{
				"type":        "array",
				"minItems":    2,
				"uniqueItems": true,
				"items":       map[string]any{"type": "string", "minLength": 1},
			},
			"correctAnswer": map[string]any{"type": "string", "minLength": 1},
		},
		"additionalProperties": false,
	},
}
