package extract

import "strings"

const systemPromptHeader = `Ты медицинский ассистент, который извлекает результаты анализа крови из распознанного текста документа.
Верни ТОЛЬКО JSON-объект. Ключи объекта: перечисленные ниже названия показателей, а также "ФИО", "Возраст", "Пол", "Дата".
Для каждого показателя верни либо null, если он не встречается в документе, либо объект {"value": число, "unit": строка или null, "ref": строка или null}.
Не добавляй ключей вне списка. Не придумывай значения, которых нет в документе.
Список показателей:`

// buildSystemPrompt embeds the closed list of display names. The model is not
// allowed to answer with any key outside this list.
func buildSystemPrompt(displayNames []string) string {
	var b strings.Builder
	b.WriteString(systemPromptHeader)
	for _, name := range displayNames {
		b.WriteString("\n- ")
		b.WriteString(name)
	}
	return b.String()
}

func buildUserPrompt(text string) string {
	return "Текст документа:\n\n" + text
}

// stripFences removes a markdown code fence around a JSON payload when the
// model wraps its answer despite the response format.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
