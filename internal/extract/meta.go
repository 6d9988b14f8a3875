package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/medparse/bloodlab/constants"
)

// Meta is the patient block of a report.
type Meta struct {
	FullName string
	Age      *int
	Sex      constants.Sex
	Date     string
}

var (
	nameRe = regexp.MustCompile(`(?i)(?:ф\.?\s*и\.?\s*о\.?|пациент|аты-жөні)\s*[:\-]?\s*` +
		`([А-ЯЁӘІҢҒҮҰҚӨҺ][а-яёәіңғүұқөһ]+(?:\s+[А-ЯЁӘІҢҒҮҰҚӨҺ][а-яёәіңғүұқөһ]+){1,2})`)
	ageRe     = regexp.MustCompile(`(?i)возраст\s*[:\-]?\s*(\d{1,3})`)
	ageTailRe = regexp.MustCompile(`(?i)\b(\d{1,3})\s*(?:лет|года|год|жас)\b`)
	sexRe     = regexp.MustCompile(`(?i)(?:пол|жынысы)\s*[:\-]?\s*([а-яёa-zәі]+)`)
	dobRe     = regexp.MustCompile(`(?i)(?:дата рождения|туған күні|д\.\s*р\.)\s*[:\-]?\s*(\d{2}[./]\d{2}[./]\d{4})`)
	dateRe    = regexp.MustCompile(`(?i)(?:дата(?:\s+(?:взятия|забора|анализа))?)\s*[:\-]?\s*(\d{2}[./]\d{2}[./]\d{4})`)
	anyDateRe = regexp.MustCompile(`\d{2}[./]\d{2}[./]\d{4}`)
	diagRe    = regexp.MustCompile(`(?i)диагноз\s*[:\-]?\s*.*?([CС]\d{2}(?:\.\d)?)`)
)

// extractMeta pulls patient details straight from the document text. It runs
// before model extraction so that a model miss on these fields can still be
// filled from the source.
func extractMeta(text string) Meta {
	var m Meta

	if g := nameRe.FindStringSubmatch(text); g != nil {
		m.FullName = strings.Join(strings.Fields(g[1]), " ")
	}
	if g := ageRe.FindStringSubmatch(text); g != nil {
		if age, err := strconv.Atoi(g[1]); err == nil && age > 0 && age < 130 {
			m.Age = &age
		}
	} else if g := ageTailRe.FindStringSubmatch(text); g != nil {
		if age, err := strconv.Atoi(g[1]); err == nil && age > 0 && age < 130 {
			m.Age = &age
		}
	} else if g := dobRe.FindStringSubmatch(text); g != nil {
		if age, ok := ageFromBirthDate(g[1], time.Now()); ok {
			m.Age = &age
		}
	}
	m.Sex = constants.SexUnknown
	if g := sexRe.FindStringSubmatch(text); g != nil {
		m.Sex = constants.ParseSex(g[1])
	}
	if g := dateRe.FindStringSubmatch(text); g != nil {
		m.Date = g[1]
	} else if g := anyDateRe.FindString(text); g != "" {
		m.Date = g
	}
	return m
}

func ageFromBirthDate(raw string, now time.Time) (int, bool) {
	var dob time.Time
	var err error
	for _, layout := range []string{"02.01.2006", "02/01/2006"} {
		dob, err = time.Parse(layout, raw)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, false
	}
	age := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		age--
	}
	if age <= 0 || age >= 130 {
		return 0, false
	}
	return age, true
}

// DetectDiagnosis finds an ICD-10 oncology code in the document text, for
// example from a "Диагноз: C34.1" line. The Cyrillic С is accepted in place
// of the Latin C, labs type both.
func DetectDiagnosis(text string) (string, bool) {
	g := diagRe.FindStringSubmatch(text)
	if g == nil {
		return "", false
	}
	code := strings.ToUpper(g[1])
	code = strings.Replace(code, "С", "C", 1)
	return code, true
}

// merge fills empty fields of m from other.
func (m Meta) merge(other Meta) Meta {
	if m.FullName == "" {
		m.FullName = other.FullName
	}
	if m.Age == nil {
		m.Age = other.Age
	}
	if m.Sex == constants.SexUnknown {
		m.Sex = other.Sex
	}
	if m.Date == "" {
		m.Date = other.Date
	}
	return m
}
