package domains

import (
	"github.com/health-risk-server/internal/domain"
	"github.com/health-risk-server/internal/engine"
)

func conditionDomains() []*engine.DomainConfig {
	return []*engine.DomainConfig{
		sepsis(),
		hospitalReadmission(),
		icuMortality(),
		postSurgeryComplication(),
		pregnancyComplication(),
	}
}

func sepsis() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "sepsis",
		DisplayName: "Sepsis Risk Assessment",
		Description: "Early sepsis risk from vital signs, perfusion markers and inflammatory response",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "heart_rate", Type: domain.FieldFloat, Description: "Heart rate (bpm)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "systolic_bp", Type: domain.FieldFloat, Description: "Systolic blood pressure (mmHg)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "respiratory_rate", Type: domain.FieldFloat, Description: "Respiratory rate (breaths/min)", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "temperature", Type: domain.FieldFloat, Description: "Body temperature (Celsius)", Scale: 45, Clamp: true},
			domain.FieldSpec{Name: "white_blood_cells", Type: domain.FieldFloat, Description: "White blood cell count (thousand/uL)", Scale: 30, Clamp: true},
			domain.FieldSpec{Name: "lactate", Type: domain.FieldFloat, Description: "Serum lactate (mmol/L)", Scale: 10, Clamp: true},
			domain.FieldSpec{Name: "spo2", Type: domain.FieldFloat, Description: "Oxygen saturation (%)", Scale: 100, Clamp: true},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "lactate", Contribution: engine.Steps(engine.Step{At: 0.20, Add: 0.20}, engine.Step{At: 0.40, Add: 0.30})},
			{Field: "systolic_bp", Contribution: engine.Below(0.50, 0.20)},
			{Field: "heart_rate", Contribution: engine.Steps(engine.Step{At: 0.45, Add: 0.15})},
			{Field: "respiratory_rate", Contribution: engine.Steps(engine.Step{At: 0.37, Add: 0.15})},
			{Field: "temperature", Contribution: engine.Steps(engine.Step{At: 0.845, Add: 0.15})},
			{Field: "temperature", Contribution: engine.Below(0.80, 0.15)},
			{Field: "white_blood_cells", Contribution: engine.Steps(engine.Step{At: 0.40, Add: 0.15})},
			{Field: "white_blood_cells", Contribution: engine.Below(0.13, 0.15)},
			{Field: "spo2", Contribution: engine.Below(0.92, 0.20)},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.65, Add: 0.10})},
		}},
		Explanations: map[string]string{
			"lactate":          "Lactate of %v mmol/L indicates tissue hypoperfusion",
			"systolic_bp":      "Systolic pressure of %v mmHg suggests circulatory compromise",
			"heart_rate":       "Heart rate of %v bpm meets the tachycardia criterion",
			"respiratory_rate": "Respiratory rate of %v breaths/min meets the tachypnea criterion",
			"temperature":      "Temperature of %v C is outside the normothermic range",
		},
		Remediations: map[string]string{
			"lactate":     "Urgent clinical evaluation: elevated lactate with infection signs warrants immediate care",
			"systolic_bp": "Seek immediate medical attention for low blood pressure with suspected infection",
			"spo2":        "Low oxygen saturation requires prompt clinical assessment",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.3 },
				Advice: "Maintain vaccinations up to date, especially pneumonia and flu vaccines to prevent infections",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Hemodynamics", Fields: []string{"heart_rate", "systolic_bp"}},
			{Label: "Respiration", Fields: []string{"respiratory_rate", "spo2"}},
			{Label: "Perfusion", Fields: []string{"lactate"}},
			{Label: "Inflammation", Fields: []string{"temperature", "white_blood_cells"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("lactate", 2), text: "Elevated lactate indicates inadequate tissue oxygen delivery"},
				{when: below("systolic_bp", 100), text: "Hypotension consistent with distributive shock physiology"},
				{when: above("heart_rate", 90), text: "Tachycardia meets systemic inflammatory response criteria"},
				{when: above("respiratory_rate", 22), text: "Tachypnea is an early and sensitive sepsis sign"},
				{when: above("white_blood_cells", 12), text: "Leukocytosis indicates active inflammatory response"},
				{when: below("white_blood_cells", 4), text: "Leukopenia may indicate overwhelming infection"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				qsofa := 0
				if typed.Float("systolic_bp") <= 100 {
					qsofa++
				}
				if typed.Float("respiratory_rate") >= 22 {
					qsofa++
				}
				switch qsofa {
				case 0:
					metrics["qSOFA Screen"] = "Negative (low immediate concern)"
				case 1:
					metrics["qSOFA Screen"] = "One criterion met (monitor closely)"
				default:
					metrics["qSOFA Screen"] = "Two or more criteria (urgent evaluation)"
				}
				return metrics, nil
			},
			nil,
		),
	}
}

// hospitalReadmission has no analysis hooks: the source exposed only
// the base assessment for this domain, so analyze() rejects it.
func hospitalReadmission() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "hospital_readmission",
		DisplayName: "Hospital Readmission Risk Assessment",
		Description: "30-day readmission risk from utilization history and clinical complexity",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "time_in_hospital", Type: domain.FieldInteger, Description: "Length of stay (days)", Scale: 30, Clamp: true},
			domain.FieldSpec{Name: "num_medications", Type: domain.FieldInteger, Description: "Number of discharge medications", Scale: 40, Clamp: true},
			domain.FieldSpec{Name: "number_inpatient", Type: domain.FieldInteger, Description: "Inpatient visits in prior year", Scale: 10, Clamp: true},
			domain.FieldSpec{Name: "number_emergency", Type: domain.FieldInteger, Description: "Emergency visits in prior year", Scale: 10, Clamp: true},
			domain.FieldSpec{Name: "number_diagnoses", Type: domain.FieldInteger, Description: "Number of active diagnoses", Scale: 16, Clamp: true},
			domain.FieldSpec{Name: "comorbidity_score", Type: domain.FieldOrdinal, Description: "Comorbidity index (0-10)", MaxOrdinal: 10},
			domain.FieldSpec{Name: "previous_admissions", Type: domain.FieldInteger, Description: "Previous admissions for same condition", Scale: 10, Clamp: true},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "previous_admissions", Contribution: engine.Scaled(0.40, 0.30)},
			{Field: "number_inpatient", Contribution: engine.Scaled(0.30, 0.25)},
			{Field: "comorbidity_score", Contribution: engine.Scaled(0.25, 0.20)},
			{Field: "number_emergency", Contribution: engine.Scaled(0.20, 0.15)},
			{Field: "time_in_hospital", Contribution: engine.Steps(engine.Step{At: 0.47, Add: 0.10})},
			{Field: "num_medications", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.10})},
			{Field: "number_diagnoses", Contribution: engine.Steps(engine.Step{At: 0.56, Add: 0.10})},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.65, Add: 0.10})},
		}},
		Explanations: map[string]string{
			"previous_admissions": "%v previous admissions for the same condition is the strongest readmission predictor",
			"comorbidity_score":   "Comorbidity index of %v reflects high clinical complexity",
			"num_medications":     "%v discharge medications raise adherence and interaction risk",
		},
		Remediations: map[string]string{
			"previous_admissions": "Schedule and attend all follow-up appointments with healthcare providers",
			"num_medications":     "Request a pharmacist medication reconciliation before discharge",
			"comorbidity_score":   "Coordinate care through a single primary provider managing all conditions",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.5 },
				Advice: "Arrange home support and transportation for follow-up care before discharge",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Utilization", Fields: []string{"number_inpatient", "number_emergency", "previous_admissions"}},
			{Label: "Complexity", Fields: []string{"number_diagnoses", "comorbidity_score"}},
			{Label: "Treatment Burden", Fields: []string{"num_medications", "time_in_hospital"}},
			{Label: "Age Factor", Fields: []string{"age"}},
		}},
	}
}

func icuMortality() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "icu_mortality",
		DisplayName: "ICU Mortality Risk Assessment",
		Description: "Critical care mortality risk from severity scores, organ support and labs",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "apache_score", Type: domain.FieldInteger, Description: "APACHE II score (0-71)", Scale: 71, Clamp: true},
			domain.FieldSpec{Name: "glasgow_coma_scale", Type: domain.FieldInteger, Description: "Glasgow Coma Scale (3-15)", Scale: 15, Clamp: true},
			domain.FieldSpec{Name: "mechanical_ventilation", Type: domain.FieldBool, Description: "On mechanical ventilation"},
			domain.FieldSpec{Name: "vasopressor_use", Type: domain.FieldBool, Description: "Requiring vasopressors"},
			domain.FieldSpec{Name: "lactate", Type: domain.FieldFloat, Description: "Serum lactate (mmol/L)", Scale: 10, Clamp: true},
			domain.FieldSpec{Name: "creatinine", Type: domain.FieldFloat, Description: "Serum creatinine (mg/dL)", Scale: 10, Clamp: true},
			domain.FieldSpec{Name: "spo2", Type: domain.FieldFloat, Description: "Oxygen saturation (%)", Scale: 100, Clamp: true, Default: 97.0},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "apache_score", Contribution: engine.Scaled(0.60, 0.45)},
			{Field: "glasgow_coma_scale", Contribution: engine.Below(0.60, 0.20)},
			{Field: "mechanical_ventilation", Contribution: engine.WhenSet(0.15)},
			{Field: "vasopressor_use", Contribution: engine.WhenSet(0.15)},
			{Field: "lactate", Contribution: engine.Steps(engine.Step{At: 0.20, Add: 0.10}, engine.Step{At: 0.40, Add: 0.20})},
			{Field: "creatinine", Contribution: engine.Steps(engine.Step{At: 0.20, Add: 0.10})},
			{Field: "spo2", Contribution: engine.Below(0.90, 0.10)},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.70, Add: 0.10})},
		}},
		Explanations: map[string]string{
			"apache_score":       "APACHE II score of %v quantifies acute physiologic derangement",
			"glasgow_coma_scale": "GCS of %v indicates impaired consciousness",
			"vasopressor_use":    "Vasopressor requirement %v indicates circulatory failure",
		},
		Remediations: map[string]string{
			"apache_score":   "Intensify monitoring frequency and reassess organ support daily",
			"lactate":        "Serial lactate measurement to track resuscitation response",
			"creatinine":     "Nephrology consultation for renal protection and dosing adjustment",
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Severity", Fields: []string{"apache_score"}},
			{Label: "Neurologic", Fields: []string{"glasgow_coma_scale"}},
			{Label: "Organ Support", Fields: []string{"mechanical_ventilation", "vasopressor_use"}},
			{Label: "Labs", Fields: []string{"lactate", "creatinine"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("apache_score", 25), text: "APACHE II above 25 predicts mortality exceeding 50%"},
				{when: below("glasgow_coma_scale", 9), text: "Severely depressed consciousness (GCS below 9)"},
				{when: isSet("mechanical_ventilation"), text: "Ventilator dependence reflects respiratory organ failure"},
				{when: isSet("vasopressor_use"), text: "Vasopressor dependence reflects circulatory organ failure"},
				{when: above("lactate", 4), text: "Lactate above 4 mmol/L indicates severe hypoperfusion"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				failures := 0
				if typed.Bool("mechanical_ventilation") {
					failures++
				}
				if typed.Bool("vasopressor_use") {
					failures++
				}
				if typed.Float("creatinine") > 2 {
					failures++
				}
				if typed.Float("glasgow_coma_scale") < 9 {
					failures++
				}
				metrics := map[string]string{}
				switch failures {
				case 0:
					metrics["Organ Systems"] = "No organ support required"
				case 1:
					metrics["Organ Systems"] = "Single organ failure"
				default:
					metrics["Organ Systems"] = "Multiple organ failure (highest risk group)"
				}
				return metrics, nil
			},
			nil,
		),
	}
}

func postSurgeryComplication() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "post_surgery_complication",
		DisplayName: "Post-Surgery Complication Risk Assessment",
		Description: "Postoperative complication risk from operative and preoperative factors",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "asa_score", Type: domain.FieldOrdinal, Description: "ASA physical status (1-5)", MaxOrdinal: 5},
			domain.FieldSpec{Name: "emergency_surgery", Type: domain.FieldBool, Description: "Emergency procedure"},
			domain.FieldSpec{Name: "surgery_duration", Type: domain.FieldFloat, Description: "Surgery duration (hours)", Scale: 12, Clamp: true},
			domain.FieldSpec{Name: "diabetes", Type: domain.FieldBool, Description: "Diagnosed diabetes"},
			domain.FieldSpec{Name: "smoking_status", Type: domain.FieldOrdinal, Description: "Smoking status (0 never to 3 current heavy)", MaxOrdinal: 3},
			domain.FieldSpec{Name: "preop_hemoglobin", Type: domain.FieldFloat, Description: "Preoperative hemoglobin (g/dL)", Scale: 20, Clamp: true},
			domain.FieldSpec{Name: "functional_status", Type: domain.FieldOrdinal, Description: "Functional dependence (0 independent to 3 fully dependent)", MaxOrdinal: 3, Default: 0},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "asa_score", Contribution: engine.Scaled(0.40, 0.35)},
			{Field: "emergency_surgery", Contribution: engine.WhenSet(0.20)},
			{Field: "surgery_duration", Contribution: engine.Steps(engine.Step{At: 0.33, Add: 0.10}, engine.Step{At: 0.50, Add: 0.20})},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.65, Add: 0.15})},
			{Field: "diabetes", Contribution: engine.WhenSet(0.10)},
			{Field: "smoking_status", Contribution: engine.Scaled(0.15, 0.15)},
			{Field: "preop_hemoglobin", Contribution: engine.Below(0.50, 0.15)},
			{Field: "functional_status", Contribution: engine.Scaled(0.15, 0.15)},
		}},
		Explanations: map[string]string{
			"asa_score":        "ASA class %v reflects baseline physiologic reserve",
			"surgery_duration": "Operative time of %v hours raises infection and thrombosis risk",
			"preop_hemoglobin": "Preoperative hemoglobin of %v g/dL raises transfusion likelihood",
		},
		Remediations: map[string]string{
			"smoking_status":   "Stop smoking at least four weeks before elective surgery to halve wound complications",
			"diabetes":         "Maintain strict blood sugar control to reduce infection risk and improve immune function",
			"preop_hemoglobin": "Discuss preoperative iron therapy or anemia workup with your surgical team",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.4 },
				Advice: "Begin prehabilitation: daily walking and breathing exercises before surgery",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Baseline Status", Fields: []string{"asa_score", "functional_status"}},
			{Label: "Operative", Fields: []string{"surgery_duration", "emergency_surgery"}},
			{Label: "Metabolic", Fields: []string{"diabetes", "bmi"}},
			{Label: "Reserve", Fields: []string{"preop_hemoglobin", "age"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("asa_score", 2), text: "ASA class III or above indicates significant systemic disease"},
				{when: isSet("emergency_surgery"), text: "Emergency procedures carry several-fold higher complication rates"},
				{when: above("surgery_duration", 4), text: "Prolonged operative time raises infection and thrombosis risk"},
				{when: below("preop_hemoglobin", 10), text: "Preoperative anemia predicts transfusion and slower recovery"},
				{when: above("smoking_status", 0), text: "Active smoking impairs wound healing and pulmonary recovery"},
			},
			nil,
			impactSummary([]observation{
				{when: above("smoking_status", 0), text: "preoperative smoking cessation"},
				{when: above("bmi", 35), text: "weight optimization before elective procedures"},
			}, "Your preoperative profile is favorable. Maintain activity and nutrition through the recovery period."),
		),
	}
}

func pregnancyComplication() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "pregnancy_complication",
		DisplayName: "Pregnancy Complication Risk Assessment",
		Description: "Preeclampsia and gestational complication risk from maternal vitals and history",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "maternal_age", Type: domain.FieldInteger, Description: "Maternal age in years", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "gestational_age", Type: domain.FieldInteger, Description: "Gestational age (weeks)", Scale: 42, Clamp: true},
			domain.FieldSpec{Name: "pre_pregnancy_bmi", Type: domain.FieldFloat, Description: "Pre-pregnancy body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "systolic_bp", Type: domain.FieldFloat, Description: "Systolic blood pressure (mmHg)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "diastolic_bp", Type: domain.FieldFloat, Description: "Diastolic blood pressure (mmHg)", Scale: 130, Clamp: true},
			domain.FieldSpec{Name: "proteinuria", Type: domain.FieldOrdinal, Description: "Proteinuria grade (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "glucose_tolerance_test", Type: domain.FieldFloat, Description: "Glucose tolerance test (mg/dL)", Scale: 300, Clamp: true},
			domain.FieldSpec{Name: "previous_complications", Type: domain.FieldBool, Description: "Complications in previous pregnancy"},
			domain.FieldSpec{Name: "multiple_pregnancy", Type: domain.FieldBool, Description: "Multiple gestation", Default: false},
			domain.FieldSpec{Name: "chronic_hypertension", Type: domain.FieldBool, Description: "Chronic hypertension", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "systolic_bp", Contribution: engine.Steps(engine.Step{At: 0.70, Add: 0.25})},
			{Field: "diastolic_bp", Contribution: engine.Steps(engine.Step{At: 0.69, Add: 0.20})},
			{Field: "proteinuria", Contribution: engine.Scaled(0.30, 0.30)},
			{Field: "glucose_tolerance_test", Contribution: engine.Steps(engine.Step{At: 0.47, Add: 0.20})},
			{Field: "maternal_age", Contribution: engine.Steps(engine.Step{At: 0.58, Add: 0.15})},
			{Field: "maternal_age", Contribution: engine.Below(0.30, 0.10)},
			{Field: "previous_complications", Contribution: engine.WhenSet(0.15)},
			{Field: "multiple_pregnancy", Contribution: engine.WhenSet(0.10)},
			{Field: "chronic_hypertension", Contribution: engine.WhenSet(0.15)},
			{Field: "pre_pregnancy_bmi", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.10})},
		}},
		Explanations: map[string]string{
			"systolic_bp":            "Systolic pressure of %v mmHg meets the gestational hypertension threshold",
			"proteinuria":            "Proteinuria grade %v with elevated pressure suggests preeclampsia",
			"glucose_tolerance_test": "Glucose tolerance result of %v mg/dL suggests gestational diabetes",
			"maternal_age":           "Maternal age of %v years shifts the complication risk profile",
		},
		Remediations: map[string]string{
			"systolic_bp":            "Increase prenatal visit frequency and monitor blood pressure at home",
			"proteinuria":            "Urgent obstetric evaluation for preeclampsia workup",
			"glucose_tolerance_test": "Begin gestational diabetes management: diet, glucose monitoring, endocrinology referral",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.3 },
				Advice: "Rest on your left side daily and avoid prolonged standing",
			},
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("pre_pregnancy_bmi") > 30 },
				Advice: "Follow a supervised gestational weight-gain plan with your obstetric team",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Blood Pressure", Fields: []string{"systolic_bp", "diastolic_bp"}},
			{Label: "Renal", Fields: []string{"proteinuria"}},
			{Label: "Metabolic", Fields: []string{"glucose_tolerance_test", "pre_pregnancy_bmi"}},
			{Label: "History", Fields: []string{"previous_complications", "chronic_hypertension"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("systolic_bp", 140), text: "Gestational hypertension threshold exceeded"},
				{when: above("proteinuria", 0), text: "Proteinuria with hypertension is the preeclampsia hallmark"},
				{when: above("glucose_tolerance_test", 140), text: "Impaired glucose tolerance suggests gestational diabetes"},
				{when: above("maternal_age", 35), text: "Advanced maternal age raises chromosomal and vascular risks"},
				{when: isSet("multiple_pregnancy"), text: "Multiple gestation raises preterm and preeclampsia risk"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				sys, dia := typed.Float("systolic_bp"), typed.Float("diastolic_bp")
				switch {
				case sys >= 160 || dia >= 110:
					metrics["Blood Pressure"] = "Severe range (urgent evaluation)"
				case sys >= 140 || dia >= 90:
					metrics["Blood Pressure"] = "Gestational hypertension range"
				default:
					metrics["Blood Pressure"] = "Normal for pregnancy"
				}
				return metrics, nil
			},
			nil,
		),
	}
}
