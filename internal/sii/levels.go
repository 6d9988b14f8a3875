package sii

// RiskLevel is the 1..5 category an index value falls into for a given
// cancer group.
type RiskLevel int

const (
	RiskVeryLow RiskLevel = iota + 1
	RiskLow
	RiskModerate
	RiskElevated
	RiskHigh
)

func (l RiskLevel) String() string {
	switch l {
	case RiskVeryLow:
		return "very_low"
	case RiskLow:
		return "low"
	case RiskModerate:
		return "moderate"
	case RiskElevated:
		return "elevated"
	case RiskHigh:
		return "high"
	}
	return "unknown"
}

type conclusion struct {
	Title   string
	Summary string
}

// conclusions holds the patient-facing wording per risk level.
var conclusions = map[RiskLevel]conclusion{
	RiskVeryLow: {
		Title:   "Очень низкий уровень",
		Summary: "Индекс системного иммунного воспаления находится в минимальном диапазоне. Признаков системной воспалительной реакции не выявлено.",
	},
	RiskLow: {
		Title:   "Низкий уровень",
		Summary: "Индекс системного иммунного воспаления в пределах благоприятного диапазона. Выраженной воспалительной реакции нет.",
	},
	RiskModerate: {
		Title:   "Умеренный уровень",
		Summary: "Индекс системного иммунного воспаления умеренно повышен. Рекомендуется контроль показателей крови в динамике.",
	},
	RiskElevated: {
		Title:   "Повышенный уровень",
		Summary: "Индекс системного иммунного воспаления повышен. Рекомендуется консультация лечащего врача и дополнительное обследование.",
	},
	RiskHigh: {
		Title:   "Высокий уровень",
		Summary: "Индекс системного иммунного воспаления значительно повышен. Необходима консультация врача-онколога.",
	},
}
