package constants

// AnalyteKey is the canonical identifier for a blood-test analyte. The set of
// keys is fixed: every report maps the full registry, with explicit nulls for
// analytes the source document did not measure.
type AnalyteKey string

// Complete blood count.
const (
	Hemoglobin           AnalyteKey = "hemoglobin"
	Erythrocytes         AnalyteKey = "erythrocytes"
	MCV                  AnalyteKey = "mcv"
	RDW                  AnalyteKey = "rdw"
	MCH                  AnalyteKey = "mch"
	MCHC                 AnalyteKey = "mchc"
	Hematocrit           AnalyteKey = "hematocrit"
	Platelets            AnalyteKey = "platelets"
	WBC                  AnalyteKey = "wbc"
	ESR                  AnalyteKey = "esr"
	Neutrophils          AnalyteKey = "neutrophils"
	BandNeutrophils      AnalyteKey = "band_neutrophils"
	SegmentedNeutrophils AnalyteKey = "segmented_neutrophils"
	Lymphocytes          AnalyteKey = "lymphocytes"
	Monocytes            AnalyteKey = "monocytes"
	Eosinophils          AnalyteKey = "eosinophils"
	Basophils            AnalyteKey = "basophils"
	NeutrophilsAbs       AnalyteKey = "neutrophils_abs"
	LymphocytesAbs       AnalyteKey = "lymphocytes_abs"
	MonocytesAbs         AnalyteKey = "monocytes_abs"
	EosinophilsAbs       AnalyteKey = "eosinophils_abs"
	BasophilsAbs         AnalyteKey = "basophils_abs"
	Reticulocytes        AnalyteKey = "reticulocytes"
	Thrombocrit          AnalyteKey = "thrombocrit"
	MPV                  AnalyteKey = "mpv"
)

// Biochemistry.
const (
	Glucose             AnalyteKey = "glucose"
	ProteinTotal        AnalyteKey = "protein_total"
	Albumin             AnalyteKey = "albumin"
	Urea                AnalyteKey = "urea"
	Creatinine          AnalyteKey = "creatinine"
	UricAcid            AnalyteKey = "uric_acid"
	BilirubinTotal      AnalyteKey = "bilirubin_total"
	BilirubinDirect     AnalyteKey = "bilirubin_direct"
	BilirubinIndirect   AnalyteKey = "bilirubin_indirect"
	ALT                 AnalyteKey = "alt"
	AST                 AnalyteKey = "ast"
	AlkalinePhosphatase AnalyteKey = "alkaline_phosphatase"
	GGT                 AnalyteKey = "ggt"
	LDH                 AnalyteKey = "ldh"
	Cholesterol         AnalyteKey = "cholesterol"
	HDLCholesterol      AnalyteKey = "hdl_cholesterol"
	LDLCholesterol      AnalyteKey = "ldl_cholesterol"
	Triglycerides       AnalyteKey = "triglycerides"
	CalciumTotal        AnalyteKey = "calcium_total"
	Potassium           AnalyteKey = "potassium"
	Sodium              AnalyteKey = "sodium"
	Chlorides           AnalyteKey = "chlorides"
	Phosphorus          AnalyteKey = "phosphorus"
	Magnesium           AnalyteKey = "magnesium"
)

// Coagulation.
const (
	ProthrombinTime  AnalyteKey = "prothrombin_time"
	ProthrombinQuick AnalyteKey = "prothrombin_quick"
	INR              AnalyteKey = "inr"
	APTT             AnalyteKey = "aptt"
	Fibrinogen       AnalyteKey = "fibrinogen"
	ThrombinTime     AnalyteKey = "thrombin_time"
	AntithrombinIII  AnalyteKey = "antithrombin_iii"
	DDimer           AnalyteKey = "d_dimer"
)

// Immunology and hormones.
const (
	CRP              AnalyteKey = "crp"
	RheumatoidFactor AnalyteKey = "rheumatoid_factor"
	BHCGTotal        AnalyteKey = "b_hcg_total"
	TSH              AnalyteKey = "tsh"
	T3               AnalyteKey = "t3"
	T4               AnalyteKey = "t4"
	Prolactin        AnalyteKey = "prolactin"
	LH               AnalyteKey = "lh"
	FSH              AnalyteKey = "fsh"
	Estradiol        AnalyteKey = "estradiol"
	Testosterone     AnalyteKey = "testosterone"
	Cortisol         AnalyteKey = "cortisol"
)

// Vitamins.
const (
	FolicAcid  AnalyteKey = "folic_acid"
	VitaminD   AnalyteKey = "vitamin_d"
	VitaminA   AnalyteKey = "vitamin_a"
	VitaminB1  AnalyteKey = "vitamin_b1"
	VitaminB2  AnalyteKey = "vitamin_b2"
	VitaminB3  AnalyteKey = "vitamin_b3"
	VitaminB5  AnalyteKey = "vitamin_b5"
	VitaminB6  AnalyteKey = "vitamin_b6"
	VitaminB7  AnalyteKey = "vitamin_b7"
	VitaminB9  AnalyteKey = "vitamin_b9"
	VitaminB12 AnalyteKey = "vitamin_b12"
	VitaminC   AnalyteKey = "vitamin_c"
	VitaminE   AnalyteKey = "vitamin_e"
	VitaminK   AnalyteKey = "vitamin_k"
)
