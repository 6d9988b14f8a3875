package catalog

import "github.com/medparse/bloodlab/constants"

// registry is the full analyte registry. Order here is the canonical report
// order. Aliases cover the spellings seen across the supported labs: Russian
// primary, Kazakh and English variants, analyzer column codes (HGB, NEU# ...).
var registry = []Entry{
	// Complete blood count
	{
		Key: constants.Hemoglobin, Display: "Гемоглобин", Unit: "г/л",
		Aliases: []string{"Гемоглобин (HGB)", "Гемоглобин HGB", "HGB", "Hemoglobin", "Гемоглобині"},
	},
	{
		Key: constants.Erythrocytes, Display: "Эритроциты", Unit: "10^12/л",
		Aliases: []string{"Эритроциты (RBC)", "Эритроциты RBC", "RBC", "Red blood cells", "Эритроциттер"},
	},
	{
		Key: constants.MCV, Display: "MCV (ср. объем эритр.)", Unit: "фл",
		Aliases: []string{"MCV", "Средний объем эритроцита", "Средний объём эритроцита"},
	},
	{
		Key: constants.RDW, Display: "RDW (шир. распред. эритр)", Unit: "%",
		Aliases: []string{"RDW", "Ширина распределения эритроцитов"},
	},
	{
		Key: constants.MCH, Display: "MCH (ср. содер. Hb в эр.)", Unit: "пг",
		Aliases: []string{"MCH", "Среднее содержание Hb в эритроците", "Среднее содержание гемоглобина в эритроците"},
	},
	{
		Key: constants.MCHC, Display: "MCHC (ср. конц. Hb в эр.)", Unit: "г/дл",
		Aliases: []string{"MCHC", "Средняя концентрация Hb в эритроците", "Средняя концентрация гемоглобина в эритроците"},
	},
	{
		Key: constants.Hematocrit, Display: "Гематокрит", Unit: "%",
		Aliases: []string{"HCT", "Hematocrit", "Гематокрит (HCT)"},
	},
	{
		Key: constants.Platelets, Display: "Тромбоциты", Unit: "10^9/л",
		Aliases: []string{"Тромбоциты (PLT)", "Тромбоциты PLT", "PLT", "Platelets", "Тромбоциттер"},
	},
	{
		Key: constants.WBC, Display: "Лейкоциты", Unit: "10^9/л",
		Aliases: []string{"Лейкоциты (WBC)", "Лейкоциты WBC", "WBC", "White blood cells", "Лейкоциттер"},
	},
	{
		Key: constants.ESR, Display: "СОЭ", Unit: "мм/ч",
		Aliases: []string{"Скорость оседания эритроцитов", "ESR", "СОЭ (по Вестергрену)", "ЭТЖ"},
	},
	{
		Key: constants.Neutrophils, Display: "Нейтрофилы, %", Unit: "%",
		Aliases: []string{"Нейтрофилы", "Нейтрофилы (общ.число), %", "Нейтрофилы NEU%", "NEU%", "Neutrophils", "Neutrophils %"},
	},
	{
		Key: constants.BandNeutrophils, Display: "Палочкоядерные нейтрофилы", Unit: "%",
		Aliases: []string{"Нейтрофилы палочкоядерные", "Палочкоядерные", "Band neutrophils"},
	},
	{
		Key: constants.SegmentedNeutrophils, Display: "Сегментоядерные нейтрофилы", Unit: "%",
		Aliases: []string{"Нейтрофилы сегментоядерные", "Сегментоядерные", "Segmented neutrophils"},
	},
	{
		Key: constants.Lymphocytes, Display: "Лимфоциты, %", Unit: "%",
		Aliases: []string{"Лимфоциты", "Лимфоциты LYM%", "LYM%", "Lymphocytes", "Lymphocytes %"},
	},
	{
		Key: constants.Monocytes, Display: "Моноциты, %", Unit: "%",
		Aliases: []string{"Моноциты", "Моноциты MON%", "MON%", "Monocytes", "Monocytes %"},
	},
	{
		Key: constants.Eosinophils, Display: "Эозинофилы, %", Unit: "%",
		Aliases: []string{"Эозинофилы", "Эозинофилы EOS%", "EOS%", "Eosinophils", "Eosinophils %"},
	},
	{
		Key: constants.Basophils, Display: "Базофилы, %", Unit: "%",
		Aliases: []string{"Базофилы", "Базофилы BAS%", "BAS%", "Basophils", "Basophils %"},
	},
	{
		Key: constants.NeutrophilsAbs, Display: "Нейтрофилы, абс.", Unit: "10^9/л",
		Aliases: []string{"Нейтрофилы абс", "Нейтрофилы (абс. кол-во)", "Нейтрофилы (абс. кол-во) NEU#", "NEU#", "Neutrophils absolute", "Нейтроф.%абс"},
	},
	{
		Key: constants.LymphocytesAbs, Display: "Лимфоциты, абс.", Unit: "10^9/л",
		Aliases: []string{"Лимфоциты абс", "Лимфоциты (абс. кол-во)", "Лимфоциты (абс. кол-во) LYM#", "LYM#", "Lymphocytes absolute"},
	},
	{
		Key: constants.MonocytesAbs, Display: "Моноциты, абс.", Unit: "10^9/л",
		Aliases: []string{"Моноциты абс", "Моноциты (абс. кол-во)", "Моноциты (абс. кол-во) MON#", "MON#", "Monocytes absolute"},
	},
	{
		Key: constants.EosinophilsAbs, Display: "Эозинофилы, абс.", Unit: "10^9/л",
		Aliases: []string{"Эозинофилы абс", "Эозинофилы (абс. кол-во)", "Эозинофилы (абс. кол-во) EOS#", "EOS#", "Eosinophils absolute"},
	},
	{
		Key: constants.BasophilsAbs, Display: "Базофилы, абс.", Unit: "10^9/л",
		Aliases: []string{"Базофилы абс", "Базофилы (абс. кол-во)", "Базофилы (абс. кол-во) BAS#", "BAS#", "Basophils absolute"},
	},
	{
		Key: constants.Reticulocytes, Display: "Ретикулоциты", Unit: "%",
		Aliases: []string{"RET", "Reticulocytes"},
	},
	{
		Key: constants.Thrombocrit, Display: "Тромбокрит", Unit: "%",
		Aliases: []string{"PCT", "Thrombocrit"},
	},
	{
		Key: constants.MPV, Display: "Средний объем тромбоцита", Unit: "фл",
		Aliases: []string{"MPV", "Средний объём тромбоцита"},
	},

	// Biochemistry
	{
		Key: constants.Glucose, Display: "Глюкоза", Unit: "ммоль/л",
		Aliases: []string{"Глюкоза крови", "Glucose", "GLU"},
	},
	{
		Key: constants.ProteinTotal, Display: "Общий белок", Unit: "г/л",
		Aliases: []string{"Белок общий", "Total protein", "TP"},
	},
	{
		Key: constants.Albumin, Display: "Альбумин", Unit: "г/л",
		Aliases: []string{"Albumin", "ALB"},
	},
	{
		Key: constants.Urea, Display: "Мочевина", Unit: "ммоль/л",
		Aliases: []string{"Urea", "Мочевина крови"},
	},
	{
		Key: constants.Creatinine, Display: "Креатинин", Unit: "мкмоль/л",
		Aliases: []string{"Creatinine", "CREA"},
	},
	{
		Key: constants.UricAcid, Display: "Мочевая кислота", Unit: "мкмоль/л",
		Aliases: []string{"Uric acid"},
	},
	{
		Key: constants.BilirubinTotal, Display: "Билирубин общий", Unit: "мкмоль/л",
		Aliases: []string{"Общий билирубин", "Total bilirubin", "TBIL"},
	},
	{
		Key: constants.BilirubinDirect, Display: "Билирубин прямой", Unit: "мкмоль/л",
		Aliases: []string{"Прямой билирубин", "Direct bilirubin", "DBIL"},
	},
	{
		Key: constants.BilirubinIndirect, Display: "Билирубин непрямой", Unit: "мкмоль/л",
		Aliases: []string{"Непрямой билирубин", "Indirect bilirubin"},
	},
	{
		Key: constants.ALT, Display: "АЛТ", Unit: "Ед/л",
		Aliases: []string{"Аланинаминотрансфераза", "ALT", "АлАТ"},
	},
	{
		Key: constants.AST, Display: "АСТ", Unit: "Ед/л",
		Aliases: []string{"Аспартатаминотрансфераза", "AST", "АсАТ"},
	},
	{
		Key: constants.AlkalinePhosphatase, Display: "Щелочная фосфатаза", Unit: "Ед/л",
		Aliases: []string{"Фосфатаза щелочная", "ALP", "Alkaline phosphatase"},
	},
	{
		Key: constants.GGT, Display: "ГГТ", Unit: "Ед/л",
		Aliases: []string{"Гамма-глутамилтрансфераза", "ГГТП", "GGT"},
	},
	{
		Key: constants.LDH, Display: "ЛДГ", Unit: "Ед/л",
		Aliases: []string{"Лактатдегидрогеназа", "LDH"},
	},
	{
		Key: constants.Cholesterol, Display: "Холестерин общий", Unit: "ммоль/л",
		Aliases: []string{"Общий холестерин", "Холестерол общий", "Cholesterol", "CHOL"},
	},
	{
		Key: constants.HDLCholesterol, Display: "Холестерин ЛПВП", Unit: "ммоль/л",
		Aliases: []string{"ЛПВП", "HDL", "HDL cholesterol"},
	},
	{
		Key: constants.LDLCholesterol, Display: "Холестерин ЛПНП", Unit: "ммоль/л",
		Aliases: []string{"ЛПНП", "LDL", "LDL cholesterol"},
	},
	{
		Key: constants.Triglycerides, Display: "Триглицериды", Unit: "ммоль/л",
		Aliases: []string{"Triglycerides", "TG"},
	},
	{
		Key: constants.CalciumTotal, Display: "Кальций общий", Unit: "ммоль/л",
		Aliases: []string{"Общий кальций", "Calcium", "Ca"},
	},
	{
		Key: constants.Potassium, Display: "Калий", Unit: "ммоль/л",
		Aliases: []string{"Potassium", "K+", "K"},
	},
	{
		Key: constants.Sodium, Display: "Натрий", Unit: "ммоль/л",
		Aliases: []string{"Sodium", "Na+", "Na"},
	},
	{
		Key: constants.Chlorides, Display: "Хлориды", Unit: "ммоль/л",
		Aliases: []string{"Хлор", "Chlorides", "Cl-", "Cl"},
	},
	{
		Key: constants.Phosphorus, Display: "Фосфор", Unit: "ммоль/л",
		Aliases: []string{"Фосфор неорганический", "Phosphorus", "P"},
	},
	{
		Key: constants.Magnesium, Display: "Магний", Unit: "ммоль/л",
		Aliases: []string{"Magnesium", "Mg"},
	},

	// Coagulation
	{
		Key: constants.ProthrombinTime, Display: "Протромбиновое время", Unit: "сек",
		Aliases: []string{"ПВ", "Prothrombin time", "PT"},
	},
	{
		Key: constants.ProthrombinQuick, Display: "Протромбин по Квику", Unit: "%",
		Aliases: []string{"Протромбиновый индекс по Квику", "Prothrombin (Quick)"},
	},
	{
		Key: constants.INR, Display: "МНО", Unit: "",
		Aliases: []string{"Международное нормализованное отношение", "INR"},
	},
	{
		Key: constants.APTT, Display: "АЧТВ", Unit: "сек",
		Aliases: []string{"Активированное частичное тромбопластиновое время", "APTT", "АПТВ"},
	},
	{
		Key: constants.Fibrinogen, Display: "Фибриноген", Unit: "г/л",
		Aliases: []string{"Fibrinogen"},
	},
	{
		Key: constants.ThrombinTime, Display: "Тромбиновое время", Unit: "сек",
		Aliases: []string{"ТВ", "Thrombin time"},
	},
	{
		Key: constants.AntithrombinIII, Display: "Антитромбин III", Unit: "%",
		Aliases: []string{"Antithrombin III", "AT III"},
	},
	{
		Key: constants.DDimer, Display: "Д-димер", Unit: "нг/мл",
		Aliases: []string{"D-димер", "D-dimer"},
	},

	// Immunology and hormones
	{
		Key: constants.CRP, Display: "С-реактивный белок", Unit: "мг/л",
		Aliases: []string{"СРБ", "CRP", "C-reactive protein"},
	},
	{
		Key: constants.RheumatoidFactor, Display: "Ревматоидный фактор", Unit: "МЕ/мл",
		Aliases: []string{"РФ", "Rheumatoid factor", "RF"},
	},
	{
		Key: constants.BHCGTotal, Display: "Общий бета-ХГЧ", Unit: "мМЕ/мл",
		Aliases: []string{"Бета-ХГЧ общий", "б-ХГЧ", "b-HCG", "ХГЧ"},
	},
	{
		Key: constants.TSH, Display: "ТТГ", Unit: "мкМЕ/мл",
		Aliases: []string{"Тиреотропный гормон", "TSH"},
	},
	{
		Key: constants.T3, Display: "Т3", Unit: "нмоль/л",
		Aliases: []string{"Трийодтиронин", "Т3 общий", "T3"},
	},
	{
		Key: constants.T4, Display: "Т4", Unit: "нмоль/л",
		Aliases: []string{"Тироксин", "Т4 общий", "Т4 свободный", "T4"},
	},
	{
		Key: constants.Prolactin, Display: "Пролактин", Unit: "мМЕ/л",
		Aliases: []string{"Prolactin", "PRL"},
	},
	{
		Key: constants.LH, Display: "ЛГ", Unit: "мМЕ/мл",
		Aliases: []string{"Лютеинизирующий гормон", "LH"},
	},
	{
		Key: constants.FSH, Display: "ФСГ", Unit: "мМЕ/мл",
		Aliases: []string{"Фолликулостимулирующий гормон", "FSH"},
	},
	{
		Key: constants.Estradiol, Display: "Эстрадиол", Unit: "пмоль/л",
		Aliases: []string{"Estradiol", "E2"},
	},
	{
		Key: constants.Testosterone, Display: "Тестостерон", Unit: "нмоль/л",
		Aliases: []string{"Тестостерон общий", "Testosterone"},
	},
	{
		Key: constants.Cortisol, Display: "Кортизол", Unit: "нмоль/л",
		Aliases: []string{"Cortisol"},
	},

	// Vitamins
	{
		Key: constants.FolicAcid, Display: "Фолиевая кислота", Unit: "нг/мл",
		Aliases: []string{"Фолаты", "Folic acid"},
	},
	{
		Key: constants.VitaminD, Display: "Витамин D", Unit: "нг/мл",
		Aliases: []string{"25-OH витамин D", "Витамин Д", "Vitamin D"},
	},
	{
		Key: constants.VitaminA, Display: "Витамин A", Unit: "мкг/л",
		Aliases: []string{"Ретинол", "Vitamin A"},
	},
	{
		Key: constants.VitaminB1, Display: "Витамин B1", Unit: "нмоль/л",
		Aliases: []string{"Тиамин", "Витамин В1", "Vitamin B1"},
	},
	{
		Key: constants.VitaminB2, Display: "Витамин B2", Unit: "нмоль/л",
		Aliases: []string{"Рибофлавин", "Витамин В2", "Vitamin B2"},
	},
	{
		Key: constants.VitaminB3, Display: "Витамин B3", Unit: "нмоль/л",
		Aliases: []string{"Ниацин", "Витамин В3", "Vitamin B3"},
	},
	{
		Key: constants.VitaminB5, Display: "Витамин B5", Unit: "нмоль/л",
		Aliases: []string{"Пантотеновая кислота", "Витамин В5", "Vitamin B5"},
	},
	{
		Key: constants.VitaminB6, Display: "Витамин B6", Unit: "нмоль/л",
		Aliases: []string{"Пиридоксин", "Витамин В6", "Vitamin B6"},
	},
	{
		Key: constants.VitaminB7, Display: "Витамин B7", Unit: "нмоль/л",
		Aliases: []string{"Биотин", "Витамин В7", "Vitamin B7"},
	},
	{
		Key: constants.VitaminB9, Display: "Витамин B9", Unit: "нг/мл",
		Aliases: []string{"Витамин В9", "Vitamin B9"},
	},
	{
		Key: constants.VitaminB12, Display: "Витамин B12", Unit: "пг/мл",
		Aliases: []string{"Кобаламин", "Витамин В12", "Vitamin B12"},
	},
	{
		Key: constants.VitaminC, Display: "Витамин C", Unit: "мг/л",
		Aliases: []string{"Аскорбиновая кислота", "Витамин С", "Vitamin C"},
	},
	{
		Key: constants.VitaminE, Display: "Витамин E", Unit: "мг/л",
		Aliases: []string{"Токоферол", "Витамин Е", "Vitamin E"},
	},
	{
		Key: constants.VitaminK, Display: "Витамин K", Unit: "нг/мл",
		Aliases: []string{"Филлохинон", "Витамин К", "Vitamin K"},
	},
}
