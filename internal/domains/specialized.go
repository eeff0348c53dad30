package domains

import (
	"github.com/health-risk-server/internal/domain"
	"github.com/health-risk-server/internal/engine"
)

func specializedDomains() []*engine.DomainConfig {
	return []*engine.DomainConfig{
		covidRisk(),
		asthmaCopd(),
		anemia(),
		thyroidDisorder(),
		cancerRecurrence(),
	}
}

func covidRisk() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "covid_risk",
		DisplayName: "COVID-19 Severity Risk Assessment",
		Description: "Severe COVID-19 outcome risk from vitals, comorbidity and immune status",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "oxygen_saturation", Type: domain.FieldFloat, Description: "Oxygen saturation (%)", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "temperature", Type: domain.FieldFloat, Description: "Body temperature (Celsius)", Scale: 45, Clamp: true},
			domain.FieldSpec{Name: "respiratory_rate", Type: domain.FieldFloat, Description: "Respiratory rate (breaths/min)", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "shortness_of_breath", Type: domain.FieldOrdinal, Description: "Dyspnea severity (0-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "vaccination_status", Type: domain.FieldOrdinal, Description: "Vaccination doses category (0 none to 3 boosted)", MaxOrdinal: 3},
			domain.FieldSpec{Name: "immunocompromised", Type: domain.FieldBool, Description: "Immunocompromised state", Default: false},
			domain.FieldSpec{Name: "diabetes", Type: domain.FieldBool, Description: "Diagnosed diabetes", Default: false},
			domain.FieldSpec{Name: "lung_disease", Type: domain.FieldBool, Description: "Chronic lung disease", Default: false},
			domain.FieldSpec{Name: "c_reactive_protein", Type: domain.FieldFloat, Description: "C-reactive protein (mg/L)", Scale: 200, Clamp: true, Default: 5.0},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "oxygen_saturation", Contribution: engine.Below(0.94, 0.25)},
			{Field: "oxygen_saturation", Contribution: engine.Below(0.90, 0.20)},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.60, Add: 0.15}, engine.Step{At: 0.75, Add: 0.25})},
			{Field: "temperature", Contribution: engine.Steps(engine.Step{At: 0.845, Add: 0.10}, engine.Step{At: 0.87, Add: 0.15})},
			{Field: "respiratory_rate", Contribution: engine.Steps(engine.Step{At: 0.40, Add: 0.15})},
			{Field: "shortness_of_breath", Contribution: engine.Scaled(0.20, 0.20)},
			{Field: "immunocompromised", Contribution: engine.WhenSet(0.15)},
			{Field: "lung_disease", Contribution: engine.WhenSet(0.10)},
			{Field: "diabetes", Contribution: engine.WhenSet(0.05)},
			{Field: "c_reactive_protein", Contribution: engine.Steps(engine.Step{At: 0.25, Add: 0.10})},
			{Field: "vaccination_status", Contribution: engine.Protective(0.60, 0.15)},
		}},
		Explanations: map[string]string{
			"oxygen_saturation":   "Oxygen saturation of %v%% is below the 94%% clinical threshold",
			"age":                 "Age %v years: severe outcome risk rises steeply past 60",
			"c_reactive_protein":  "CRP of %v mg/L reflects systemic inflammatory response",
			"shortness_of_breath": "Dyspnea severity %v suggests lower respiratory involvement",
		},
		Remediations: map[string]string{
			"oxygen_saturation":  "Monitor saturation several times daily; seek care below 92%",
			"vaccination_status": "Complete the recommended vaccination series including boosters",
			"immunocompromised":  "Ask your physician about early antiviral treatment eligibility",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.3 },
				Advice: "Rest, hydrate, and isolate; arrange remote check-ins with your healthcare provider",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Oxygenation", Fields: []string{"oxygen_saturation", "respiratory_rate"}},
			{Label: "Symptoms", Fields: []string{"temperature", "shortness_of_breath"}},
			{Label: "Vulnerability", Fields: []string{"age", "immunocompromised", "lung_disease", "diabetes"}},
			{Label: "Inflammation", Fields: []string{"c_reactive_protein"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: below("oxygen_saturation", 94), text: "Hypoxemia is the primary marker of severe disease"},
				{when: above("age", 65), text: "Age above 65 carries sharply elevated severe-outcome risk"},
				{when: isSet("immunocompromised"), text: "Impaired immunity prolongs viral replication"},
				{when: above("c_reactive_protein", 50), text: "Marked inflammation predicts respiratory deterioration"},
				{when: below("vaccination_status", 2), text: "Incomplete vaccination removes the strongest protection"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				switch spo2 := typed.Float("oxygen_saturation"); {
				case spo2 >= 95:
					metrics["Oxygenation"] = "Normal (no supplemental oxygen indicated)"
				case spo2 >= 92:
					metrics["Oxygenation"] = "Borderline (close monitoring required)"
				default:
					metrics["Oxygenation"] = "Hypoxemic (medical evaluation needed now)"
				}
				return metrics, nil
			},
			nil,
		),
	}
}

func asthmaCopd() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "asthma_copd",
		DisplayName: "Asthma/COPD Risk Assessment",
		Description: "Obstructive airway disease severity from spirometry, symptoms and exposure",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "smoking_pack_years", Type: domain.FieldFloat, Description: "Smoking history (pack-years)", Scale: 80, Clamp: true},
			domain.FieldSpec{Name: "fev1_percent_predicted", Type: domain.FieldFloat, Description: "FEV1 (% of predicted)", Scale: 120, Clamp: true},
			domain.FieldSpec{Name: "fev1_fvc_ratio", Type: domain.FieldFloat, Description: "FEV1/FVC ratio", Scale: 1, Clamp: true},
			domain.FieldSpec{Name: "oxygen_saturation_rest", Type: domain.FieldFloat, Description: "Resting oxygen saturation (%)", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "rescue_inhaler_use", Type: domain.FieldInteger, Description: "Rescue inhaler uses per week", Scale: 21, Clamp: true},
			domain.FieldSpec{Name: "exacerbations_last_year", Type: domain.FieldInteger, Description: "Exacerbations in past year", Scale: 10, Clamp: true},
			domain.FieldSpec{Name: "medication_adherence", Type: domain.FieldOrdinal, Description: "Controller medication adherence (0 none to 4 full)", MaxOrdinal: 4, Default: 4},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "fev1_percent_predicted", Contribution: engine.Below(0.66, 0.20)},
			{Field: "fev1_percent_predicted", Contribution: engine.Below(0.41, 0.20)},
			{Field: "fev1_fvc_ratio", Contribution: engine.Below(0.70, 0.20)},
			{Field: "oxygen_saturation_rest", Contribution: engine.Below(0.92, 0.15)},
			{Field: "smoking_pack_years", Contribution: engine.Steps(engine.Step{At: 0.25, Add: 0.10}, engine.Step{At: 0.50, Add: 0.20})},
			{Field: "rescue_inhaler_use", Contribution: engine.Steps(engine.Step{At: 0.14, Add: 0.10}, engine.Step{At: 0.33, Add: 0.20})},
			{Field: "exacerbations_last_year", Contribution: engine.Scaled(0.30, 0.25)},
			{Field: "medication_adherence", Contribution: engine.Protective(0.75, 0.10)},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.65, Add: 0.05})},
		}},
		Explanations: map[string]string{
			"fev1_percent_predicted":  "FEV1 at %v%% of predicted indicates airflow limitation",
			"fev1_fvc_ratio":          "FEV1/FVC ratio of %v below 0.70 defines obstruction",
			"rescue_inhaler_use":      "%v weekly rescue uses indicates poor symptom control",
			"exacerbations_last_year": "%v exacerbations last year predicts future flare frequency",
		},
		Remediations: map[string]string{
			"smoking_pack_years":      "Continue avoiding tobacco, monitor lung function regularly",
			"rescue_inhaler_use":      "Review controller therapy with your physician; frequent rescue use signals under-treatment",
			"exacerbations_last_year": "Create a written exacerbation action plan with your care team",
			"medication_adherence":    "Continue current medication regimen",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("smoking_pack_years") > 0 },
				Advice: "Continue avoiding tobacco products",
			},
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.5 },
				Advice: "Get annual influenza and pneumococcal vaccination",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Lung Function", Fields: []string{"fev1_percent_predicted", "fev1_fvc_ratio"}},
			{Label: "Oxygenation", Fields: []string{"oxygen_saturation_rest"}},
			{Label: "Control", Fields: []string{"rescue_inhaler_use", "exacerbations_last_year"}},
			{Label: "Exposure", Fields: []string{"smoking_pack_years"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: below("fev1_percent_predicted", 50), text: "Severe airflow limitation (FEV1 below 50% predicted)"},
				{when: below("fev1_percent_predicted", 80), text: "Moderate airflow limitation on spirometry"},
				{when: below("fev1_fvc_ratio", 0.70), text: "Obstructive ratio confirms airway disease"},
				{when: above("exacerbations_last_year", 1), text: "Frequent exacerbations accelerate lung function decline"},
				{when: above("smoking_pack_years", 20), text: "Heavy smoking history is the dominant COPD driver"},
			},
			nil,
			impactSummary([]observation{
				{when: above("smoking_pack_years", 0), text: "continued tobacco abstinence"},
				{when: below("medication_adherence", 3), text: "consistent controller medication use"},
			}, "Your respiratory profile is stable. Continue avoiding tobacco products and keep vaccinations current."),
		),
	}
}

func anemia() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "anemia",
		DisplayName: "Anemia Risk Assessment",
		Description: "Anemia risk and etiology signals from hematology, iron studies and symptoms",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "hemoglobin", Type: domain.FieldFloat, Description: "Hemoglobin (g/dL)", Scale: 20, Clamp: true},
			domain.FieldSpec{Name: "hematocrit", Type: domain.FieldFloat, Description: "Hematocrit (%)", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "mean_corpuscular_volume", Type: domain.FieldFloat, Description: "Mean corpuscular volume (fL)", Scale: 120, Clamp: true},
			domain.FieldSpec{Name: "ferritin", Type: domain.FieldFloat, Description: "Serum ferritin (ng/mL)", Scale: 300, Clamp: true},
			domain.FieldSpec{Name: "vitamin_b12", Type: domain.FieldFloat, Description: "Vitamin B12 (pg/mL)", Scale: 1000, Clamp: true},
			domain.FieldSpec{Name: "fatigue_level", Type: domain.FieldOrdinal, Description: "Fatigue severity (0-10)", MaxOrdinal: 10},
			domain.FieldSpec{Name: "heavy_menstrual_periods", Type: domain.FieldBool, Description: "Heavy menstrual bleeding", Default: false},
			domain.FieldSpec{Name: "gastrointestinal_bleeding", Type: domain.FieldBool, Description: "Known gastrointestinal bleeding", Default: false},
			domain.FieldSpec{Name: "chronic_kidney_disease", Type: domain.FieldBool, Description: "Chronic kidney disease", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "hemoglobin", Contribution: engine.Below(0.60, 0.25)},
			{Field: "hemoglobin", Contribution: engine.Below(0.40, 0.20)},
			{Field: "hematocrit", Contribution: engine.Below(0.60, 0.15)},
			{Field: "ferritin", Contribution: engine.Below(0.10, 0.20)},
			{Field: "vitamin_b12", Contribution: engine.Below(0.20, 0.15)},
			{Field: "mean_corpuscular_volume", Contribution: engine.Below(0.67, 0.10)},
			{Field: "fatigue_level", Contribution: engine.Scaled(0.10, 0.10)},
			{Field: "gastrointestinal_bleeding", Contribution: engine.WhenSet(0.15)},
			{Field: "heavy_menstrual_periods", Contribution: engine.WhenSet(0.10)},
			{Field: "chronic_kidney_disease", Contribution: engine.WhenSet(0.10)},
		}},
		Explanations: map[string]string{
			"hemoglobin":              "Hemoglobin of %v g/dL is below the normal range",
			"ferritin":                "Ferritin of %v ng/mL indicates depleted iron stores",
			"vitamin_b12":             "B12 of %v pg/mL is in the deficient range",
			"mean_corpuscular_volume": "MCV of %v fL suggests microcytic (iron-deficiency pattern) anemia",
		},
		Remediations: map[string]string{
			"ferritin":                  "Begin iron-rich diet and discuss supplementation with your physician",
			"vitamin_b12":               "Start B12 supplementation and investigate absorption causes",
			"gastrointestinal_bleeding": "Urgent gastroenterology evaluation to locate the bleeding source",
			"hemoglobin":                "Repeat complete blood count to confirm and trend the result",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.4 },
				Advice: "Pair iron-rich foods with vitamin C and avoid tea or coffee at meals",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Red Cell Mass", Fields: []string{"hemoglobin", "hematocrit"}},
			{Label: "Iron Stores", Fields: []string{"ferritin"}},
			{Label: "B12 Status", Fields: []string{"vitamin_b12"}},
			{Label: "Symptoms", Fields: []string{"fatigue_level"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: below("hemoglobin", 12), text: "Hemoglobin below the anemia threshold"},
				{when: below("ferritin", 30), text: "Iron deficiency is the most common anemia etiology"},
				{when: below("vitamin_b12", 200), text: "B12 deficiency causes macrocytic anemia and neuropathy"},
				{when: isSet("gastrointestinal_bleeding"), text: "GI blood loss requires source investigation"},
				{when: isSet("chronic_kidney_disease"), text: "Renal disease reduces erythropoietin production"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				mcv := typed.Float("mean_corpuscular_volume")
				switch {
				case mcv < 80:
					metrics["Morphology"] = "Microcytic (iron deficiency pattern)"
				case mcv > 100:
					metrics["Morphology"] = "Macrocytic (B12/folate pattern)"
				default:
					metrics["Morphology"] = "Normocytic"
				}
				return metrics, nil
			},
			nil,
		),
	}
}

func thyroidDisorder() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "thyroid_disorder",
		DisplayName: "Thyroid Disorder Risk Assessment",
		Description: "Hypo- and hyperthyroid risk from hormone panel, antibodies and symptoms",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "tsh", Type: domain.FieldFloat, Description: "Thyroid stimulating hormone (mIU/L)", Scale: 20, Clamp: true},
			domain.FieldSpec{Name: "free_t4", Type: domain.FieldFloat, Description: "Free T4 (ng/dL)", Scale: 5, Clamp: true},
			domain.FieldSpec{Name: "thyroid_peroxidase_antibody", Type: domain.FieldFloat, Description: "TPO antibody (IU/mL)", Scale: 1000, Clamp: true},
			domain.FieldSpec{Name: "weight_change_kg", Type: domain.FieldFloat, Description: "Unexplained weight change (kg, absolute)", Scale: 30, Clamp: true},
			domain.FieldSpec{Name: "heart_rate", Type: domain.FieldFloat, Description: "Resting heart rate (bpm)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "fatigue_level", Type: domain.FieldOrdinal, Description: "Fatigue severity (0-10)", MaxOrdinal: 10},
			domain.FieldSpec{Name: "tremor", Type: domain.FieldOrdinal, Description: "Tremor severity (0-4)", MaxOrdinal: 4, Default: 0},
			domain.FieldSpec{Name: "goiter", Type: domain.FieldBool, Description: "Visible or palpable goiter", Default: false},
			domain.FieldSpec{Name: "family_history_thyroid", Type: domain.FieldBool, Description: "Family history of thyroid disease", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "tsh", Contribution: engine.Steps(engine.Step{At: 0.225, Add: 0.15}, engine.Step{At: 0.50, Add: 0.30})},
			{Field: "tsh", Contribution: engine.Below(0.02, 0.25)},
			{Field: "free_t4", Contribution: engine.Below(0.16, 0.15)},
			{Field: "free_t4", Contribution: engine.Steps(engine.Step{At: 0.36, Add: 0.15})},
			{Field: "thyroid_peroxidase_antibody", Contribution: engine.Steps(engine.Step{At: 0.035, Add: 0.20})},
			{Field: "weight_change_kg", Contribution: engine.Steps(engine.Step{At: 0.33, Add: 0.10})},
			{Field: "heart_rate", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.10})},
			{Field: "heart_rate", Contribution: engine.Below(0.25, 0.10)},
			{Field: "tremor", Contribution: engine.Scaled(0.10, 0.10)},
			{Field: "goiter", Contribution: engine.WhenSet(0.15)},
			{Field: "family_history_thyroid", Contribution: engine.WhenSet(0.10)},
			{Field: "fatigue_level", Contribution: engine.Scaled(0.05, 0.05)},
		}},
		Explanations: map[string]string{
			"tsh":                         "TSH of %v mIU/L is outside the reference range (0.4-4.5)",
			"free_t4":                     "Free T4 of %v ng/dL is outside the reference range",
			"thyroid_peroxidase_antibody": "TPO antibody of %v IU/mL indicates autoimmune thyroid disease",
			"weight_change_kg":            "Unexplained weight change of %v kg is a classic thyroid sign",
		},
		Remediations: map[string]string{
			"tsh":                         "Repeat thyroid panel and consult endocrinology for persistent abnormality",
			"thyroid_peroxidase_antibody": "Annual thyroid function monitoring given autoimmune marker positivity",
			"goiter":                      "Thyroid ultrasound to characterize gland enlargement",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.4 },
				Advice: "Keep iodine intake steady; both excess and deficiency worsen thyroid dysfunction",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Hormone Axis", Fields: []string{"tsh", "free_t4"}},
			{Label: "Autoimmunity", Fields: []string{"thyroid_peroxidase_antibody"}},
			{Label: "Metabolic Signs", Fields: []string{"weight_change_kg", "heart_rate"}},
			{Label: "Symptoms", Fields: []string{"fatigue_level", "tremor"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("tsh", 4.5), text: "Elevated TSH indicates primary hypothyroidism"},
				{when: below("tsh", 0.4), text: "Suppressed TSH indicates hyperthyroidism"},
				{when: above("thyroid_peroxidase_antibody", 35), text: "TPO positivity indicates autoimmune thyroiditis"},
				{when: above("heart_rate", 100), text: "Resting tachycardia consistent with thyrotoxicosis"},
				{when: isSet("goiter"), text: "Gland enlargement warrants structural imaging"},
			},
			nil,
			nil,
		),
	}
}

// cancerRecurrence ships without an explicit scoring formula and
// exercises the fallback estimator, mirroring the original's
// model-only path for this domain.
func cancerRecurrence() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "cancer_recurrence",
		DisplayName: "Cancer Recurrence Risk Assessment",
		Description: "Recurrence surveillance risk from staging, treatment response and markers",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age_at_diagnosis", Type: domain.FieldInteger, Description: "Age at diagnosis (years)", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "cancer_stage", Type: domain.FieldOrdinal, Description: "Cancer stage at diagnosis (1-4)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "tumor_size_cm", Type: domain.FieldFloat, Description: "Primary tumor size (cm)", Scale: 15, Clamp: true},
			domain.FieldSpec{Name: "lymph_nodes_positive", Type: domain.FieldInteger, Description: "Positive lymph nodes", Scale: 30, Clamp: true},
			domain.FieldSpec{Name: "histologic_grade", Type: domain.FieldOrdinal, Description: "Histologic grade (1-3)", MaxOrdinal: 3},
			domain.FieldSpec{Name: "months_since_treatment", Type: domain.FieldInteger, Description: "Months since treatment completion", Scale: 120, Clamp: true},
			domain.FieldSpec{Name: "complete_response", Type: domain.FieldBool, Description: "Complete response to treatment"},
			domain.FieldSpec{Name: "cea_level", Type: domain.FieldFloat, Description: "CEA tumor marker (ng/mL)", Scale: 20, Clamp: true, Default: 2.5},
			domain.FieldSpec{Name: "genetic_mutations", Type: domain.FieldBool, Description: "High-risk genetic mutations", Default: false},
			domain.FieldSpec{Name: "comorbidities_count", Type: domain.FieldInteger, Description: "Number of comorbid conditions", Scale: 10, Clamp: true, Default: 0},
		),
		Weights: map[string]float64{
			"cancer_stage":           0.9,
			"lymph_nodes_positive":   0.85,
			"histologic_grade":       0.8,
			"tumor_size_cm":          0.8,
			"complete_response":      0.7,
			"months_since_treatment": 0.6,
			"genetic_mutations":      0.7,
			"cea_level":              0.6,
		},
		Explanations: map[string]string{
			"cancer_stage":         "Stage %v at diagnosis is the strongest recurrence predictor",
			"lymph_nodes_positive": "%v positive lymph nodes indicates regional spread",
			"cea_level":            "CEA of %v ng/mL above baseline may signal recurrence",
			"complete_response":    "Treatment response status %v shapes the surveillance plan",
		},
		Remediations: map[string]string{
			"cancer_stage":         "Follow the stage-appropriate surveillance imaging schedule strictly",
			"cea_level":            "Trend tumor markers at every surveillance visit",
			"genetic_mutations":    "Discuss extended surveillance and family genetic counseling",
			"complete_response":    "Continue current medication regimen",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.3 },
				Advice: "Maintain healthy weight through diet and exercise",
			},
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.3 },
				Advice: "Continue avoiding tobacco products",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Tumor Burden", Fields: []string{"cancer_stage", "tumor_size_cm", "lymph_nodes_positive"}},
			{Label: "Biology", Fields: []string{"histologic_grade", "genetic_mutations"}},
			{Label: "Response", Fields: []string{"complete_response", "months_since_treatment"}},
			{Label: "Markers", Fields: []string{"cea_level"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("cancer_stage", 2), text: "Advanced stage at diagnosis raises recurrence probability"},
				{when: above("lymph_nodes_positive", 0), text: "Nodal involvement indicates established regional spread"},
				{when: above("cea_level", 5), text: "Elevated tumor marker warrants imaging correlation"},
				{when: below("months_since_treatment", 24), text: "Most recurrences occur within the first two years"},
			},
			nil,
			nil,
		),
	}
}
