package llm

// BuildReportJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. The model must answer with an object keyed by the analyte
// display names it was given; every key maps to either null or a small
// value/unit/ref object. Patient fields ride along under fixed keys.
// Keys outside the list are allowed and left unvalidated, reconciliation
// drops whatever it cannot resolve.
func BuildReportJSONSchema(displayNames []string) map[string]any {
	props := map[string]any{
		"ФИО":     map[string]any{"type": []string{"string", "null"}},
		"Возраст": map[string]any{"type": []string{"integer", "string", "null"}},
		"Пол":     map[string]any{"type": []string{"string", "null"}},
		"Дата":    map[string]any{"type": []string{"string", "null"}},
	}
	for _, name := range displayNames {
		props[name] = analyteProp()
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
	}
}

func analyteProp() map[string]any {
	return map[string]any{
		"oneOf": []map[string]any{
			{"type": "null"},
			{
				"type": "object",
				"properties": map[string]any{
					"value": map[string]any{"type": []string{"number", "string", "null"}},
					"unit":  map[string]any{"type": []string{"string", "null"}},
					"ref":   map[string]any{"type": []string{"string", "null"}},
				},
				"required": []string{"value"},
			},
		},
	}
}
