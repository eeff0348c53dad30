package domains

import (
	"fmt"

	"github.com/health-risk-server/internal/domain"
	"github.com/health-risk-server/internal/engine"
)

func diseaseDomains() []*engine.DomainConfig {
	return []*engine.DomainConfig{
		heartDisease(),
		strokeRisk(),
		diabetes(),
		kidneyDisease(),
		liverDisease(),
		alzheimer(),
		parkinson(),
		cancerDetection(),
	}
}

func heartDisease() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "heart_disease",
		DisplayName: "Heart Disease Risk Assessment",
		Description: "Cardiovascular disease risk from demographic, lipid, blood pressure and lifestyle factors",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "cholesterol", Type: domain.FieldFloat, Description: "Total cholesterol (mg/dL)", Scale: 400, Clamp: true},
			domain.FieldSpec{Name: "systolic_bp", Type: domain.FieldFloat, Description: "Systolic blood pressure (mmHg)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "smoking", Type: domain.FieldBool, Description: "Current smoker"},
			domain.FieldSpec{Name: "diabetes", Type: domain.FieldBool, Description: "Diagnosed diabetes"},
			domain.FieldSpec{Name: "family_history", Type: domain.FieldBool, Description: "Family history of heart disease", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.45, Add: 0.15}, engine.Step{At: 0.65, Add: 0.25})},
			{Field: "cholesterol", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.15}, engine.Step{At: 0.60, Add: 0.25})},
			{Field: "systolic_bp", Contribution: engine.Steps(engine.Step{At: 0.60, Add: 0.10}, engine.Step{At: 0.70, Add: 0.20})},
			{Field: "smoking", Contribution: engine.WhenSet(0.20)},
			{Field: "diabetes", Contribution: engine.WhenSet(0.20)},
			{Field: "family_history", Contribution: engine.WhenSet(0.10)},
		}},
		Weights: map[string]float64{
			"age":         0.8,
			"cholesterol": 0.9,
			"systolic_bp": 0.85,
		},
		Explanations: map[string]string{
			"age":         "Age %v years places you in a higher cardiovascular risk bracket",
			"cholesterol": "Total cholesterol of %v mg/dL exceeds the desirable range and promotes arterial plaque buildup",
			"systolic_bp": "Systolic blood pressure of %v mmHg strains the cardiovascular system",
			"smoking":     "Smoking status %v: tobacco use damages arterial walls and accelerates atherosclerosis",
			"diabetes":    "Diabetes status %v: elevated blood sugar injures blood vessels over time",
		},
		Remediations: map[string]string{
			"smoking":     "Quit smoking: enroll in a smoking cessation program and avoid all tobacco products",
			"cholesterol": "Adopt a diet low in saturated fat and discuss lipid-lowering therapy with your doctor",
			"systolic_bp": "Reduce sodium intake, monitor blood pressure at home, and review medication options",
			"diabetes":    "Maintain strict blood glucose control through diet, exercise, and medication compliance",
		},
		Lifestyle: elevatedRiskLifestyle,
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Blood Pressure", Fields: []string{"systolic_bp"}},
			{Label: "Cholesterol", Fields: []string{"cholesterol"}},
			{Label: "Age Factor", Fields: []string{"age"}},
			{Label: "Lifestyle", Fields: []string{"smoking", "diabetes"}},
		}},
		Analysis: &engine.AnalysisHooks{
			ContributingFactors: func(typed *domain.TypedRecord) ([]string, error) {
				factors := []string{}
				switch age := typed.Float("age"); {
				case age > 65:
					factors = append(factors, "Advanced age (>65 years) significantly increases cardiovascular risk")
				case age > 45:
					factors = append(factors, "Middle age (45-65 years) is a moderate risk factor")
				}
				switch chol := typed.Float("cholesterol"); {
				case chol > 240:
					factors = append(factors, "High cholesterol levels (>240 mg/dL) contribute to arterial plaque buildup")
				case chol > 200:
					factors = append(factors, "Borderline high cholesterol (200-240 mg/dL) requires monitoring")
				}
				switch bp := typed.Float("systolic_bp"); {
				case bp > 140:
					factors = append(factors, "High blood pressure (>140 mmHg) strains the cardiovascular system")
				case bp > 120:
					factors = append(factors, "Elevated blood pressure (120-140 mmHg) indicates prehypertension")
				}
				if typed.Bool("smoking") {
					factors = append(factors, "Active smoking doubles the risk of coronary artery disease")
				}
				if typed.Bool("diabetes") {
					factors = append(factors, "Diabetes accelerates atherosclerosis and silent ischemia")
				}
				return factors, nil
			},
			HealthMetrics: func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				switch bp := typed.Float("systolic_bp"); {
				case bp < 90:
					metrics["Blood Pressure"] = "Low (may indicate hypotension)"
				case bp < 120:
					metrics["Blood Pressure"] = "Normal (optimal cardiovascular health)"
				case bp < 140:
					metrics["Blood Pressure"] = "Elevated (prehypertension stage)"
				case bp < 160:
					metrics["Blood Pressure"] = "High Stage 1 (requires intervention)"
				default:
					metrics["Blood Pressure"] = "High Stage 2 (urgent medical attention needed)"
				}
				switch chol := typed.Float("cholesterol"); {
				case chol < 200:
					metrics["Cholesterol"] = "Desirable (low cardiovascular risk)"
				case chol < 240:
					metrics["Cholesterol"] = "Borderline high (lifestyle modifications needed)"
				default:
					metrics["Cholesterol"] = "High (medical intervention recommended)"
				}
				return metrics, nil
			},
			LifestyleImpact: func(typed *domain.TypedRecord) (string, error) {
				return impactSummary([]observation{
					{when: above("systolic_bp", 140), text: "hypertension requiring dietary and lifestyle changes"},
					{when: above("cholesterol", 200), text: "elevated cholesterol needing dietary modifications"},
					{when: isSet("smoking"), text: "tobacco use requiring a structured cessation plan"},
					{when: isSet("diabetes"), text: "blood sugar control through diet and exercise"},
				}, "Your current health metrics suggest good lifestyle habits. Continue maintaining a heart-healthy diet, regular exercise, stress management, and avoid smoking to preserve cardiovascular health.")(typed)
			},
		},
	}
}

func strokeRisk() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "stroke_risk",
		DisplayName: "Stroke Risk Assessment",
		Description: "Cerebrovascular event risk from vascular history, metabolic markers and lifestyle",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "hypertension", Type: domain.FieldBool, Description: "Diagnosed hypertension"},
			domain.FieldSpec{Name: "heart_disease", Type: domain.FieldBool, Description: "Existing heart disease"},
			domain.FieldSpec{Name: "avg_glucose_level", Type: domain.FieldFloat, Description: "Average glucose level (mg/dL)", Scale: 300, Clamp: true},
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "smoking_status", Type: domain.FieldOrdinal, Description: "Smoking status (0 never, 1 former, 2 occasional, 3 current)", MaxOrdinal: 3},
			domain.FieldSpec{Name: "physical_activity", Type: domain.FieldOrdinal, Description: "Physical activity level (0 none to 4 daily)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "family_history_stroke", Type: domain.FieldBool, Description: "Family history of stroke", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.55, Add: 0.15}, engine.Step{At: 0.70, Add: 0.30})},
			{Field: "hypertension", Contribution: engine.WhenSet(0.25)},
			{Field: "heart_disease", Contribution: engine.WhenSet(0.15)},
			{Field: "avg_glucose_level", Contribution: engine.Steps(engine.Step{At: 0.47, Add: 0.10}, engine.Step{At: 0.60, Add: 0.20})},
			{Field: "bmi", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.10})},
			{Field: "smoking_status", Contribution: engine.Scaled(0.20, 0.20)},
			{Field: "physical_activity", Contribution: engine.Protective(0.75, 0.10)},
			{Field: "family_history_stroke", Contribution: engine.WhenSet(0.10)},
		}},
		Weights: map[string]float64{
			"age":                   0.9,
			"hypertension":          0.95,
			"heart_disease":         0.8,
			"avg_glucose_level":     0.7,
			"bmi":                   0.6,
			"smoking_status":        0.85,
			"physical_activity":     0.6,
			"family_history_stroke": 0.7,
		},
		Explanations: map[string]string{
			"age":               "Age %v years: stroke risk roughly doubles each decade after 55",
			"hypertension":      "Hypertension status %v: high blood pressure is the leading modifiable stroke risk factor",
			"avg_glucose_level": "Average glucose of %v mg/dL indicates impaired metabolic control",
			"smoking_status":    "Smoking status %v accelerates carotid artery disease",
		},
		Remediations: map[string]string{
			"hypertension":      "Maintain healthy blood pressure through medication adherence, low-sodium diet and monitoring",
			"avg_glucose_level": "Maintain HbA1c <7%, monitor blood sugar regularly, follow diabetic diet",
			"smoking_status":    "Stop smoking entirely; stroke risk falls measurably within two years of quitting",
			"bmi":               "Maintain healthy weight through diet and exercise",
		},
		Lifestyle: append([]engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("physical_activity") < 2 },
				Advice: "Increase physical activity gradually; even light daily walking lowers stroke risk",
			},
		}, elevatedRiskLifestyle...),
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Vascular History", Fields: []string{"hypertension", "heart_disease"}},
			{Label: "Metabolic", Fields: []string{"avg_glucose_level", "bmi"}},
			{Label: "Age Factor", Fields: []string{"age"}},
			{Label: "Lifestyle", Fields: []string{"smoking_status", "physical_activity"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("age", 65), text: "Advanced age substantially raises cerebrovascular risk"},
				{when: isSet("hypertension"), text: "Uncontrolled hypertension is the dominant modifiable stroke risk"},
				{when: isSet("heart_disease"), text: "Cardiac disease raises embolic stroke risk"},
				{when: above("avg_glucose_level", 140), text: "Sustained hyperglycemia damages cerebral microvasculature"},
				{when: above("smoking_status", 1), text: "Ongoing tobacco exposure promotes carotid atherosclerosis"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				switch g := typed.Float("avg_glucose_level"); {
				case g < 100:
					metrics["Glucose"] = "Normal (good metabolic control)"
				case g < 140:
					metrics["Glucose"] = "Elevated (prediabetic range)"
				default:
					metrics["Glucose"] = "High (diabetic range, vascular risk)"
				}
				switch bmi := typed.Float("bmi"); {
				case bmi < 25:
					metrics["BMI"] = "Normal weight"
				case bmi < 30:
					metrics["BMI"] = "Overweight"
				default:
					metrics["BMI"] = "Obese (elevated vascular risk)"
				}
				return metrics, nil
			},
			impactSummary([]observation{
				{when: above("smoking_status", 0), text: "tobacco exposure"},
				{when: below("physical_activity", 2), text: "insufficient physical activity"},
				{when: above("bmi", 30), text: "weight management"},
			}, "Your lifestyle factors show good stroke prevention habits. Continue maintaining healthy weight, regular exercise, no smoking, and moderate alcohol consumption."),
		),
	}
}

func diabetes() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "diabetes",
		DisplayName: "Diabetes Risk Assessment",
		Description: "Type 2 diabetes risk from glycemic markers, anthropometrics and family history",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "glucose_level", Type: domain.FieldFloat, Description: "Fasting glucose level (mg/dL)", Scale: 300, Clamp: true},
			domain.FieldSpec{Name: "blood_pressure", Type: domain.FieldFloat, Description: "Systolic blood pressure (mmHg)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "insulin_level", Type: domain.FieldFloat, Description: "Serum insulin (mu U/mL)", Scale: 300, Clamp: true, Default: 85.0},
			domain.FieldSpec{Name: "family_history_diabetes", Type: domain.FieldBool, Description: "Family history of diabetes"},
			domain.FieldSpec{Name: "physical_activity", Type: domain.FieldFloat, Description: "Physical activity (hours/week)", Scale: 14, Clamp: true},
			domain.FieldSpec{Name: "pregnancies", Type: domain.FieldInteger, Description: "Number of pregnancies", Scale: 10, Clamp: true, Default: 0},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "glucose_level", Contribution: engine.Steps(engine.Step{At: 0.33, Add: 0.10}, engine.Step{At: 0.42, Add: 0.30})},
			{Field: "bmi", Contribution: engine.Steps(engine.Step{At: 0.42, Add: 0.10}, engine.Step{At: 0.50, Add: 0.20})},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.45, Add: 0.10})},
			{Field: "blood_pressure", Contribution: engine.Steps(engine.Step{At: 0.65, Add: 0.10})},
			{Field: "insulin_level", Contribution: engine.Steps(engine.Step{At: 0.55, Add: 0.10})},
			{Field: "family_history_diabetes", Contribution: engine.WhenSet(0.15)},
			{Field: "physical_activity", Contribution: engine.Protective(0.36, 0.10)},
		}},
		Explanations: map[string]string{
			"glucose_level": "Fasting glucose of %v mg/dL is above the normal range (<100 mg/dL)",
			"bmi":           "BMI of %v indicates excess weight, the strongest modifiable diabetes driver",
			"insulin_level": "Insulin level of %v suggests developing insulin resistance",
		},
		Remediations: map[string]string{
			"glucose_level":           "Maintain strict blood glucose control through diet, exercise, and medication compliance",
			"bmi":                     "Target 5-10% weight loss; it measurably improves insulin sensitivity",
			"physical_activity":       "Build up to at least 150 minutes of moderate activity per week",
			"family_history_diabetes": "Schedule annual HbA1c screening given your family history",
		},
		Lifestyle: append([]engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("physical_activity") < 3 },
				Advice: "Add structured physical activity; muscle uptake of glucose reduces insulin demand",
			},
		}, elevatedRiskLifestyle...),
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Glycemic Control", Fields: []string{"glucose_level", "insulin_level"}},
			{Label: "Body Composition", Fields: []string{"bmi"}},
			{Label: "Cardiovascular", Fields: []string{"blood_pressure"}},
			{Label: "Activity", Fields: []string{"physical_activity"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("glucose_level", 126), text: "Fasting glucose in the diabetic range (>126 mg/dL)"},
				{when: above("glucose_level", 100), text: "Impaired fasting glucose (100-126 mg/dL) indicates prediabetes"},
				{when: above("bmi", 30), text: "Obesity drives insulin resistance"},
				{when: isSet("family_history_diabetes"), text: "First-degree family history roughly triples lifetime risk"},
				{when: below("physical_activity", 3), text: "Sedentary pattern reduces insulin sensitivity"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				switch g := typed.Float("glucose_level"); {
				case g < 100:
					metrics["Fasting Glucose"] = "Normal (<100 mg/dL)"
				case g < 126:
					metrics["Fasting Glucose"] = "Prediabetic (100-126 mg/dL)"
				default:
					metrics["Fasting Glucose"] = "Diabetic range (>126 mg/dL, needs confirmation)"
				}
				switch bmi := typed.Float("bmi"); {
				case bmi < 25:
					metrics["BMI"] = "Normal weight"
				case bmi < 30:
					metrics["BMI"] = "Overweight (elevated risk)"
				default:
					metrics["BMI"] = "Obese (high risk)"
				}
				return metrics, nil
			},
			nil,
		),
	}
}

func kidneyDisease() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "kidney_disease",
		DisplayName: "Chronic Kidney Disease Risk Assessment",
		Description: "Renal function risk from creatinine, urea, hemoglobin and comorbid conditions",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "blood_pressure", Type: domain.FieldFloat, Description: "Systolic blood pressure (mmHg)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "serum_creatinine", Type: domain.FieldFloat, Description: "Serum creatinine (mg/dL)", Scale: 10, Clamp: true},
			domain.FieldSpec{Name: "blood_urea", Type: domain.FieldFloat, Description: "Blood urea (mg/dL)", Scale: 150, Clamp: true},
			domain.FieldSpec{Name: "hemoglobin", Type: domain.FieldFloat, Description: "Hemoglobin (g/dL)", Scale: 20, Clamp: true},
			domain.FieldSpec{Name: "albumin", Type: domain.FieldOrdinal, Description: "Urine albumin grade (0-5)", MaxOrdinal: 5},
			domain.FieldSpec{Name: "hypertension", Type: domain.FieldBool, Description: "Diagnosed hypertension"},
			domain.FieldSpec{Name: "diabetes_mellitus", Type: domain.FieldBool, Description: "Diagnosed diabetes mellitus"},
			domain.FieldSpec{Name: "anemia", Type: domain.FieldBool, Description: "Diagnosed anemia", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "serum_creatinine", Contribution: engine.Steps(engine.Step{At: 0.15, Add: 0.20}, engine.Step{At: 0.30, Add: 0.35})},
			{Field: "blood_urea", Contribution: engine.Steps(engine.Step{At: 0.33, Add: 0.15})},
			{Field: "hemoglobin", Contribution: engine.Below(0.55, 0.15)},
			{Field: "albumin", Contribution: engine.Scaled(0.30, 0.30)},
			{Field: "hypertension", Contribution: engine.WhenSet(0.15)},
			{Field: "diabetes_mellitus", Contribution: engine.WhenSet(0.15)},
			{Field: "blood_pressure", Contribution: engine.Steps(engine.Step{At: 0.70, Add: 0.10})},
		}},
		Explanations: map[string]string{
			"serum_creatinine": "Serum creatinine of %v mg/dL indicates reduced glomerular filtration",
			"blood_urea":       "Blood urea of %v mg/dL reflects impaired waste clearance",
			"hemoglobin":       "Hemoglobin of %v g/dL suggests renal anemia",
			"albumin":          "Urine albumin grade %v signals glomerular damage",
		},
		Remediations: map[string]string{
			"serum_creatinine": "Consult a nephrologist for staging and kidney-protective therapy",
			"blood_pressure":   "Keep blood pressure below 130/80 to slow renal decline",
			"diabetes_mellitus": "Maintain strict glycemic control; diabetic nephropathy is the leading cause of kidney failure",
			"hemoglobin":       "Maintain adequate hydration (8-10 glasses water daily) unless fluid restricted",
		},
		Lifestyle: append([]engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("blood_pressure") > 140 },
				Advice: "Maintain healthy diet low in sodium and saturated fats",
			},
		}, elevatedRiskLifestyle...),
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Filtration", Fields: []string{"serum_creatinine", "blood_urea"}},
			{Label: "Proteinuria", Fields: []string{"albumin"}},
			{Label: "Hematology", Fields: []string{"hemoglobin"}},
			{Label: "Comorbidity", Fields: []string{"hypertension", "diabetes_mellitus"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("serum_creatinine", 1.5), text: "Elevated creatinine indicates reduced kidney filtration capacity"},
				{when: above("albumin", 1), text: "Albuminuria signals glomerular barrier damage"},
				{when: below("hemoglobin", 11), text: "Low hemoglobin consistent with renal anemia"},
				{when: isSet("diabetes_mellitus"), text: "Diabetes is the leading cause of progressive kidney disease"},
				{when: isSet("hypertension"), text: "Hypertension both causes and accelerates renal damage"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				switch cr := typed.Float("serum_creatinine"); {
				case cr < 1.2:
					metrics["Creatinine"] = "Normal renal clearance"
				case cr < 2.0:
					metrics["Creatinine"] = "Mildly reduced function (stage 2-3)"
				default:
					metrics["Creatinine"] = "Significantly reduced function (nephrology referral)"
				}
				return metrics, nil
			},
			nil,
		),
	}
}

func liverDisease() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "liver_disease",
		DisplayName: "Liver Disease Risk Assessment",
		Description: "Hepatic injury risk from transaminases, bilirubin, albumin and alcohol exposure",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "total_bilirubin", Type: domain.FieldFloat, Description: "Total bilirubin (mg/dL)", Scale: 10, Clamp: true},
			domain.FieldSpec{Name: "alamine_aminotransferase", Type: domain.FieldFloat, Description: "ALT (U/L)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "aspartate_aminotransferase", Type: domain.FieldFloat, Description: "AST (U/L)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "albumin", Type: domain.FieldFloat, Description: "Serum albumin (g/dL)", Scale: 6, Clamp: true},
			domain.FieldSpec{Name: "alcohol_consumption", Type: domain.FieldOrdinal, Description: "Alcohol consumption (0 none to 4 heavy)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "smoking", Type: domain.FieldBool, Description: "Current smoker", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "alamine_aminotransferase", Contribution: engine.Steps(engine.Step{At: 0.20, Add: 0.15}, engine.Step{At: 0.40, Add: 0.30})},
			{Field: "aspartate_aminotransferase", Contribution: engine.Steps(engine.Step{At: 0.20, Add: 0.15}, engine.Step{At: 0.40, Add: 0.30})},
			{Field: "total_bilirubin", Contribution: engine.Steps(engine.Step{At: 0.12, Add: 0.15}, engine.Step{At: 0.30, Add: 0.25})},
			{Field: "albumin", Contribution: engine.Below(0.58, 0.15)},
			{Field: "alcohol_consumption", Contribution: engine.Scaled(0.25, 0.25)},
			{Field: "bmi", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.10})},
		}},
		Weights: map[string]float64{
			"alamine_aminotransferase":   0.9,
			"aspartate_aminotransferase": 0.9,
			"total_bilirubin":            0.85,
			"albumin":                    0.8,
			"alcohol_consumption":        0.85,
			"bmi":                        0.6,
			"age":                        0.4,
			"smoking":                    0.4,
		},
		Explanations: map[string]string{
			"alamine_aminotransferase":   "ALT of %v U/L indicates hepatocellular injury",
			"aspartate_aminotransferase": "AST of %v U/L indicates hepatocellular injury",
			"total_bilirubin":            "Bilirubin of %v mg/dL suggests impaired hepatic clearance",
			"alcohol_consumption":        "Alcohol consumption level %v is a direct hepatotoxic exposure",
		},
		Remediations: map[string]string{
			"alcohol_consumption":      "Eliminate or sharply reduce alcohol; hepatic enzymes typically improve within weeks",
			"bmi":                      "Maintain healthy weight through diet and exercise",
			"alamine_aminotransferase": "Repeat liver function testing and discuss imaging with your physician",
		},
		Lifestyle: elevatedRiskLifestyle,
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Transaminases", Fields: []string{"alamine_aminotransferase", "aspartate_aminotransferase"}},
			{Label: "Clearance", Fields: []string{"total_bilirubin"}},
			{Label: "Synthesis", Fields: []string{"albumin"}},
			{Label: "Exposure", Fields: []string{"alcohol_consumption", "bmi"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("alamine_aminotransferase", 40), text: "Elevated ALT indicates active hepatocellular injury"},
				{when: above("total_bilirubin", 1.2), text: "Raised bilirubin suggests impaired hepatic processing"},
				{when: below("albumin", 3.5), text: "Low albumin reflects reduced hepatic synthetic function"},
				{when: above("alcohol_consumption", 2), text: "Heavy alcohol use is a direct hepatotoxic exposure"},
				{when: above("bmi", 30), text: "Obesity promotes non-alcoholic fatty liver disease"},
			},
			nil,
			impactSummary([]observation{
				{when: above("alcohol_consumption", 1), text: "alcohol reduction"},
				{when: above("bmi", 28), text: "weight management to reverse fatty infiltration"},
			}, "Your lifestyle factors support good liver health. Continue avoiding excessive alcohol, maintaining healthy weight, and regular medical monitoring."),
		),
	}
}

func alzheimer() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "alzheimer",
		DisplayName: "Alzheimer's Disease Risk Assessment",
		Description: "Cognitive decline risk from cognitive screening, function and vascular comorbidity",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "mmse_score", Type: domain.FieldInteger, Description: "Mini-Mental State Examination score (0-30)", Scale: 30, Clamp: true},
			domain.FieldSpec{Name: "memory_complaints", Type: domain.FieldOrdinal, Description: "Subjective memory complaints (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "functional_assessment", Type: domain.FieldOrdinal, Description: "Functional assessment score (0-10, higher is better)", MaxOrdinal: 10},
			domain.FieldSpec{Name: "depression_score", Type: domain.FieldOrdinal, Description: "Geriatric depression score (0-15)", MaxOrdinal: 15},
			domain.FieldSpec{Name: "social_isolation", Type: domain.FieldOrdinal, Description: "Social isolation level (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "physical_activity", Type: domain.FieldOrdinal, Description: "Physical activity level (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "family_history_dementia", Type: domain.FieldBool, Description: "Family history of dementia"},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "mmse_score", Contribution: engine.Below(0.80, 0.10)},
			{Field: "mmse_score", Contribution: engine.Below(0.60, 0.20)},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.65, Add: 0.15}, engine.Step{At: 0.80, Add: 0.25})},
			{Field: "memory_complaints", Contribution: engine.Scaled(0.15, 0.15)},
			{Field: "functional_assessment", Contribution: engine.Below(0.50, 0.15)},
			{Field: "depression_score", Contribution: engine.Steps(engine.Step{At: 0.40, Add: 0.10})},
			{Field: "social_isolation", Contribution: engine.Scaled(0.10, 0.10)},
			{Field: "physical_activity", Contribution: engine.Protective(0.75, 0.10)},
			{Field: "family_history_dementia", Contribution: engine.WhenSet(0.10)},
		}},
		Weights: map[string]float64{
			"mmse_score":              0.9,
			"functional_assessment":   0.85,
			"age":                     0.8,
			"family_history_dementia": 0.75,
			"memory_complaints":       0.7,
			"depression_score":        0.6,
		},
		Explanations: map[string]string{
			"mmse_score":            "MMSE score of %v is below the normal cognitive range (24-30)",
			"age":                   "Age %v years: dementia incidence doubles every five years after 65",
			"functional_assessment": "Functional score of %v shows impairment in daily activities",
		},
		Remediations: map[string]string{
			"mmse_score":        "Schedule comprehensive neuropsychological testing for staging",
			"social_isolation":  "Increase social engagement; isolation accelerates cognitive decline",
			"physical_activity": "Regular aerobic exercise is the best-evidenced protective factor for brain health",
			"depression_score":  "Treat depressive symptoms; untreated depression mimics and worsens cognitive decline",
		},
		Lifestyle: append([]engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("social_isolation") >= 3 },
				Advice: "Join group activities or community programs to maintain cognitive stimulation",
			},
		}, elevatedRiskLifestyle...),
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Cognition", Fields: []string{"mmse_score", "memory_complaints"}},
			{Label: "Function", Fields: []string{"functional_assessment"}},
			{Label: "Mood", Fields: []string{"depression_score", "social_isolation"}},
			{Label: "Age Factor", Fields: []string{"age"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: below("mmse_score", 24), text: "MMSE below 24 indicates measurable cognitive impairment"},
				{when: above("age", 75), text: "Advanced age is the strongest non-modifiable dementia risk"},
				{when: isSet("family_history_dementia"), text: "Family history of dementia raises genetic susceptibility"},
				{when: above("social_isolation", 2), text: "Social isolation accelerates cognitive decline"},
				{when: above("depression_score", 7), text: "Depressive symptoms compound cognitive risk"},
			},
			nil,
			impactSummary([]observation{
				{when: below("physical_activity", 2), text: "insufficient physical activity"},
				{when: above("social_isolation", 2), text: "limited social engagement"},
			}, "Your lifestyle factors support brain health. Continue regular exercise, social engagement, quality sleep, and cognitive stimulation."),
		),
	}
}

// parkinson ships without an explicit scoring formula: the original
// relied entirely on its model path, so this domain exercises the
// fallback estimator. The result is bounded and deterministic but
// carries no clinical weight.
func parkinson() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "parkinson",
		DisplayName: "Parkinson's Disease Risk Assessment",
		Description: "Motor and voice-biomarker screening for Parkinson's indicators",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "mdvp_fo", Type: domain.FieldFloat, Description: "Average vocal fundamental frequency (Hz)", Scale: 300, Clamp: true},
			domain.FieldSpec{Name: "mdvp_jitter_percent", Type: domain.FieldFloat, Description: "Vocal jitter (%)", Scale: 1, Clamp: true},
			domain.FieldSpec{Name: "mdvp_shimmer", Type: domain.FieldFloat, Description: "Vocal shimmer", Scale: 1, Clamp: true},
			domain.FieldSpec{Name: "nhr", Type: domain.FieldFloat, Description: "Noise-to-harmonics ratio", Scale: 1, Clamp: true},
			domain.FieldSpec{Name: "hnr", Type: domain.FieldFloat, Description: "Harmonics-to-noise ratio (dB)", Scale: 40, Clamp: true},
			domain.FieldSpec{Name: "tremor_severity", Type: domain.FieldOrdinal, Description: "Resting tremor severity (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "rigidity_score", Type: domain.FieldOrdinal, Description: "Muscle rigidity score (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "bradykinesia_score", Type: domain.FieldOrdinal, Description: "Bradykinesia score (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "postural_instability", Type: domain.FieldOrdinal, Description: "Postural instability (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "family_history", Type: domain.FieldBool, Description: "Family history of Parkinson's", Default: false},
		),
		Weights: map[string]float64{
			"tremor_severity":      0.9,
			"rigidity_score":       0.85,
			"bradykinesia_score":   0.9,
			"postural_instability": 0.8,
			"mdvp_jitter_percent":  0.8,
			"mdvp_shimmer":         0.75,
			"nhr":                  0.7,
			"hnr":                  0.65,
			"age":                  0.5,
			"family_history":       0.6,
			"mdvp_fo":              0.4,
		},
		Explanations: map[string]string{
			"tremor_severity":     "Tremor severity %v is a cardinal motor sign",
			"bradykinesia_score":  "Bradykinesia score %v reflects slowed voluntary movement",
			"mdvp_jitter_percent": "Vocal jitter of %v%% exceeds typical phonation variability",
		},
		Remediations: map[string]string{
			"tremor_severity":    "Consult a movement-disorder neurologist for formal motor examination",
			"bradykinesia_score": "Begin supervised exercise therapy; it measurably slows motor progression",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score <= 0.3 },
				Advice: "Continue regular exercise, maintain social activities, and monitor for any motor or voice changes",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Motor Signs", Fields: []string{"tremor_severity", "rigidity_score", "bradykinesia_score"}},
			{Label: "Balance", Fields: []string{"postural_instability"}},
			{Label: "Voice", Fields: []string{"mdvp_jitter_percent", "mdvp_shimmer", "nhr"}},
			{Label: "Age Factor", Fields: []string{"age"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("tremor_severity", 1), text: "Resting tremor is a cardinal Parkinson's motor sign"},
				{when: above("bradykinesia_score", 1), text: "Bradykinesia indicates basal ganglia involvement"},
				{when: above("rigidity_score", 1), text: "Muscle rigidity consistent with parkinsonian syndrome"},
				{when: above("mdvp_jitter_percent", 0.01), text: "Elevated vocal jitter is an early voice biomarker"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				if typed.Float("hnr") < 20 {
					metrics["Voice Quality"] = "Reduced harmonics-to-noise ratio (phonation instability)"
				} else {
					metrics["Voice Quality"] = "Normal phonation stability"
				}
				motor := typed.Float("tremor_severity") + typed.Float("rigidity_score") + typed.Float("bradykinesia_score")
				metrics["Motor Composite"] = fmt.Sprintf("%.0f of 12 (tremor, rigidity, bradykinesia)", motor)
				return metrics, nil
			},
			nil,
		),
	}
}

func cancerDetection() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "cancer_detection",
		DisplayName: "Cancer Risk Assessment",
		Description: "General cancer susceptibility from exposure history, family history and lifestyle",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "family_history", Type: domain.FieldBool, Description: "Family history of cancer"},
			domain.FieldSpec{Name: "smoking_history", Type: domain.FieldOrdinal, Description: "Smoking history (0 never to 3 heavy)", MaxOrdinal: 3},
			domain.FieldSpec{Name: "alcohol_consumption", Type: domain.FieldOrdinal, Description: "Alcohol consumption (0 none to 4 heavy)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "physical_activity", Type: domain.FieldOrdinal, Description: "Physical activity level (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "sun_exposure", Type: domain.FieldOrdinal, Description: "Unprotected sun exposure (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "occupational_exposure", Type: domain.FieldBool, Description: "Occupational carcinogen exposure", Default: false},
			domain.FieldSpec{Name: "previous_cancer", Type: domain.FieldBool, Description: "Previous cancer diagnosis", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.15}, engine.Step{At: 0.65, Add: 0.25})},
			{Field: "family_history", Contribution: engine.WhenSet(0.15)},
			{Field: "smoking_history", Contribution: engine.Scaled(0.25, 0.25)},
			{Field: "previous_cancer", Contribution: engine.WhenSet(0.25)},
			{Field: "occupational_exposure", Contribution: engine.WhenSet(0.10)},
			{Field: "alcohol_consumption", Contribution: engine.Scaled(0.10, 0.10)},
			{Field: "sun_exposure", Contribution: engine.Scaled(0.10, 0.10)},
			{Field: "physical_activity", Contribution: engine.Protective(0.75, 0.10)},
		}},
		Weights: map[string]float64{
			"age":                   0.9,
			"family_history":        0.8,
			"smoking_history":       0.85,
			"previous_cancer":       0.9,
			"occupational_exposure": 0.7,
			"bmi":                   0.6,
			"sun_exposure":          0.7,
			"alcohol_consumption":   0.5,
			"physical_activity":     0.4,
		},
		Explanations: map[string]string{
			"smoking_history": "Smoking history level %v is the largest preventable cancer exposure",
			"sun_exposure":    "Sun exposure level %v raises cutaneous malignancy risk",
			"previous_cancer": "Previous cancer status %v substantially raises recurrence and second-primary risk",
		},
		Remediations: map[string]string{
			"smoking_history": "Continue avoiding tobacco products",
			"sun_exposure":    "Use broad-spectrum sunscreen and schedule annual skin examinations",
			"age":             "Maintain healthy lifestyle and regular medical follow-up with age-appropriate cancer screening",
			"alcohol_consumption": "Limit alcohol to at most one drink per day",
		},
		Lifestyle: elevatedRiskLifestyle,
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Exposure", Fields: []string{"smoking_history", "alcohol_consumption", "sun_exposure", "occupational_exposure"}},
			{Label: "History", Fields: []string{"family_history", "previous_cancer"}},
			{Label: "Age Factor", Fields: []string{"age"}},
			{Label: "Protective", Fields: []string{"physical_activity"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("smoking_history", 0), text: "Tobacco exposure is implicated in a third of cancer deaths"},
				{when: isSet("previous_cancer"), text: "Prior malignancy raises surveillance requirements"},
				{when: isSet("family_history"), text: "Family history may indicate heritable cancer syndromes"},
				{when: above("sun_exposure", 2), text: "Chronic unprotected sun exposure drives skin cancer risk"},
			},
			nil,
			impactSummary([]observation{
				{when: above("smoking_history", 0), text: "tobacco cessation"},
				{when: above("alcohol_consumption", 2), text: "alcohol reduction"},
				{when: below("physical_activity", 2), text: "increased physical activity"},
			}, "Your lifestyle factors show good cancer prevention habits. Continue maintaining healthy weight, regular exercise, no smoking, and protective sun practices."),
		),
	}
}
