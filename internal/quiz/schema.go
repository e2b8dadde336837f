package quiz

import "github.com/abhisek/trivia/internal/validate"

// progressSchema is the shape of the JSON stored under the quiz state key.
// Length and option membership depend on the bank and are checked in Go.
var progressSchema = validate.Schema{
	Name: "quiz-progress",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"currentQuestion", "selectedAnswers", "userName", "quizStarted"},
		"properties": map[string]any{
			"currentQuestion": map[string]any{"type": "integer", "minimum": 0},
			"selectedAnswers": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": []string{"string", "null"}},
			},
			"userName":    map[string]any{"type": "string"},
			"quizStarted": map[string]any{"type": "boolean"},
		},
	},
}
