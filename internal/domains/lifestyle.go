package domains

import (
	"github.com/health-risk-server/internal/domain"
	"github.com/health-risk-server/internal/engine"
)

func lifestyleDomains() []*engine.DomainConfig {
	return []*engine.DomainConfig{
		obesityRisk(),
		hypertension(),
		cholesterolRisk(),
		mentalHealth(),
		sleepApnea(),
	}
}

func obesityRisk() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "obesity_risk",
		DisplayName: "Obesity Risk Assessment",
		Description: "Weight trajectory risk from body composition, diet and activity patterns",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 50, Clamp: true},
			domain.FieldSpec{Name: "sedentary_hours", Type: domain.FieldFloat, Description: "Sedentary hours per day", Scale: 12, Clamp: true},
			domain.FieldSpec{Name: "activity_level", Type: domain.FieldOrdinal, Description: "Physical activity level (0 none to 4 daily)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "sleep_hours", Type: domain.FieldFloat, Description: "Sleep hours per night", Scale: 12, Clamp: true},
			domain.FieldSpec{Name: "fast_food_frequency", Type: domain.FieldInteger, Description: "Fast food meals per week", Scale: 7, Clamp: true},
			domain.FieldSpec{Name: "water_intake", Type: domain.FieldFloat, Description: "Water intake (liters/day)", Scale: 5, Clamp: true},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "bmi", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.15}, engine.Step{At: 0.60, Add: 0.30}, engine.Step{At: 0.70, Add: 0.45})},
			{Field: "sedentary_hours", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.10}, engine.Step{At: 0.75, Add: 0.20})},
			{Field: "fast_food_frequency", Contribution: engine.Steps(engine.Step{At: 0.43, Add: 0.10}, engine.Step{At: 0.71, Add: 0.20})},
			{Field: "sleep_hours", Contribution: engine.Below(0.50, 0.10)},
			{Field: "activity_level", Contribution: engine.Protective(0.70, 0.10)},
			{Field: "water_intake", Contribution: engine.Below(0.20, 0.05)},
		}},
		Weights: map[string]float64{
			"bmi":                 0.8,
			"sedentary_hours":     0.4,
			"activity_level":      0.3,
			"sleep_hours":         0.4,
			"fast_food_frequency": 0.5,
			"water_intake":        0.2,
		},
		Explanations: map[string]string{
			"bmi":                 "BMI of %v is above the healthy range (18.5-24.9)",
			"sedentary_hours":     "%v sedentary hours daily suppresses metabolic rate",
			"fast_food_frequency": "%v fast food meals weekly adds substantial caloric excess",
			"sleep_hours":         "%v hours of sleep disrupts appetite-regulating hormones",
		},
		Remediations: map[string]string{
			"bmi":                 "Maintain healthy weight through diet and exercise",
			"sedentary_hours":     "Break up sitting time with movement every hour",
			"fast_food_frequency": "Replace fast food with home-prepared meals; plan a weekly menu",
			"sleep_hours":         "Target 7-9 hours of sleep; short sleep elevates ghrelin and appetite",
			"activity_level":      "Build up to at least 150 minutes of moderate activity per week",
		},
		Lifestyle: append([]engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("water_intake") < 1.5 },
				Advice: "Increase water intake; thirst is frequently misread as hunger",
			},
		}, elevatedRiskLifestyle...),
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Body Composition", Fields: []string{"bmi"}},
			{Label: "Activity", Fields: []string{"activity_level", "sedentary_hours"}},
			{Label: "Diet", Fields: []string{"fast_food_frequency", "water_intake"}},
			{Label: "Recovery", Fields: []string{"sleep_hours"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("bmi", 30), text: "BMI in the obese range drives metabolic and joint disease"},
				{when: above("bmi", 25), text: "BMI in the overweight range raises progression risk"},
				{when: above("sedentary_hours", 8), text: "Extended sedentary time independently predicts weight gain"},
				{when: above("fast_food_frequency", 3), text: "Frequent fast food intake adds caloric density and sodium"},
				{when: below("sleep_hours", 6), text: "Short sleep disrupts leptin and ghrelin regulation"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				switch bmi := typed.Float("bmi"); {
				case bmi < 18.5:
					metrics["BMI Category"] = "Underweight"
				case bmi < 25:
					metrics["BMI Category"] = "Normal weight"
				case bmi < 30:
					metrics["BMI Category"] = "Overweight"
				case bmi < 35:
					metrics["BMI Category"] = "Obese class I"
				default:
					metrics["BMI Category"] = "Obese class II+ (10% weight loss markedly reduces risk)"
				}
				return metrics, nil
			},
			impactSummary([]observation{
				{when: above("sedentary_hours", 8), text: "reducing daily sitting time"},
				{when: below("activity_level", 2), text: "building a regular activity habit"},
				{when: above("fast_food_frequency", 3), text: "home meal preparation"},
			}, "Your habits support healthy weight maintenance. Keep your current balance of activity, diet and sleep."),
		),
	}
}

func hypertension() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "hypertension",
		DisplayName: "Hypertension Risk Assessment",
		Description: "Blood pressure risk from readings, sodium load, stress and family history",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "systolic_bp", Type: domain.FieldFloat, Description: "Systolic blood pressure (mmHg)", Scale: 200, Clamp: true},
			domain.FieldSpec{Name: "diastolic_bp", Type: domain.FieldFloat, Description: "Diastolic blood pressure (mmHg)", Scale: 130, Clamp: true},
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "sodium_intake_mg", Type: domain.FieldFloat, Description: "Daily sodium intake (mg)", Scale: 6000, Clamp: true},
			domain.FieldSpec{Name: "physical_activity_minutes", Type: domain.FieldInteger, Description: "Weekly activity (minutes)", Scale: 300, Clamp: true},
			domain.FieldSpec{Name: "smoking_status", Type: domain.FieldOrdinal, Description: "Smoking status (0 never to 3 current heavy)", MaxOrdinal: 3},
			domain.FieldSpec{Name: "stress_level", Type: domain.FieldOrdinal, Description: "Perceived stress level (0-10)", MaxOrdinal: 10},
			domain.FieldSpec{Name: "family_history_hypertension", Type: domain.FieldBool, Description: "Family history of hypertension"},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "systolic_bp", Contribution: engine.Steps(engine.Step{At: 0.60, Add: 0.15}, engine.Step{At: 0.70, Add: 0.30})},
			{Field: "diastolic_bp", Contribution: engine.Steps(engine.Step{At: 0.615, Add: 0.15}, engine.Step{At: 0.69, Add: 0.25})},
			{Field: "bmi", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.10})},
			{Field: "sodium_intake_mg", Contribution: engine.Steps(engine.Step{At: 0.38, Add: 0.10})},
			{Field: "smoking_status", Contribution: engine.Scaled(0.15, 0.15)},
			{Field: "stress_level", Contribution: engine.Scaled(0.10, 0.10)},
			{Field: "family_history_hypertension", Contribution: engine.WhenSet(0.10)},
			{Field: "physical_activity_minutes", Contribution: engine.Protective(0.50, 0.10)},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.55, Add: 0.10})},
		}},
		Explanations: map[string]string{
			"systolic_bp":      "Systolic reading of %v mmHg is above the normal range (<120)",
			"diastolic_bp":     "Diastolic reading of %v mmHg is above the normal range (<80)",
			"sodium_intake_mg": "Sodium intake of %v mg/day exceeds the recommended 2300 mg limit",
			"stress_level":     "Stress level %v sustains sympathetic pressure elevation",
		},
		Remediations: map[string]string{
			"systolic_bp":      "Maintain healthy blood pressure",
			"sodium_intake_mg": "Cut processed foods; they carry most dietary sodium",
			"smoking_status":   "Stop smoking; each cigarette transiently raises pressure for 30 minutes",
			"stress_level":     "Adopt a daily relaxation practice: breathing exercises, meditation or yoga",
		},
		Lifestyle: append([]engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("physical_activity_minutes") < 150 },
				Advice: "Aerobic exercise lowers systolic pressure by 5-8 mmHg; walk briskly 30 minutes most days",
			},
		}, elevatedRiskLifestyle...),
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Pressure", Fields: []string{"systolic_bp", "diastolic_bp"}},
			{Label: "Diet", Fields: []string{"sodium_intake_mg", "bmi"}},
			{Label: "Stress", Fields: []string{"stress_level"}},
			{Label: "Lifestyle", Fields: []string{"smoking_status", "physical_activity_minutes"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("systolic_bp", 140), text: "Stage 2 hypertension range requires medical management"},
				{when: above("systolic_bp", 120), text: "Elevated systolic pressure precedes sustained hypertension"},
				{when: above("sodium_intake_mg", 2300), text: "Excess sodium intake directly raises blood pressure"},
				{when: above("stress_level", 6), text: "Chronic stress sustains sympathetic activation"},
				{when: isSet("family_history_hypertension"), text: "Family history indicates genetic predisposition"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				sys, dia := typed.Float("systolic_bp"), typed.Float("diastolic_bp")
				switch {
				case sys < 120 && dia < 80:
					metrics["Blood Pressure"] = "Normal"
				case sys < 130 && dia < 80:
					metrics["Blood Pressure"] = "Elevated"
				case sys < 140 || dia < 90:
					metrics["Blood Pressure"] = "Stage 1 hypertension"
				default:
					metrics["Blood Pressure"] = "Stage 2 hypertension"
				}
				return metrics, nil
			},
			nil,
		),
	}
}

func cholesterolRisk() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "cholesterol_risk",
		DisplayName: "Cholesterol Risk Assessment",
		Description: "Dyslipidemia risk from lipid panel, metabolic factors and treatment status",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "total_cholesterol", Type: domain.FieldFloat, Description: "Total cholesterol (mg/dL)", Scale: 400, Clamp: true},
			domain.FieldSpec{Name: "hdl_cholesterol", Type: domain.FieldFloat, Description: "HDL cholesterol (mg/dL)", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "ldl_cholesterol", Type: domain.FieldFloat, Description: "LDL cholesterol (mg/dL)", Scale: 300, Clamp: true},
			domain.FieldSpec{Name: "triglycerides", Type: domain.FieldFloat, Description: "Triglycerides (mg/dL)", Scale: 500, Clamp: true},
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "smoking_status", Type: domain.FieldOrdinal, Description: "Smoking status (0 never to 3 current heavy)", MaxOrdinal: 3},
			domain.FieldSpec{Name: "diabetes", Type: domain.FieldBool, Description: "Diagnosed diabetes"},
			domain.FieldSpec{Name: "medication_statins", Type: domain.FieldBool, Description: "On statin therapy", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "total_cholesterol", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.15}, engine.Step{At: 0.60, Add: 0.25})},
			{Field: "ldl_cholesterol", Contribution: engine.Steps(engine.Step{At: 0.43, Add: 0.15}, engine.Step{At: 0.53, Add: 0.25})},
			{Field: "hdl_cholesterol", Contribution: engine.Below(0.40, 0.15)},
			{Field: "triglycerides", Contribution: engine.Steps(engine.Step{At: 0.30, Add: 0.10}, engine.Step{At: 0.40, Add: 0.20})},
			{Field: "smoking_status", Contribution: engine.Scaled(0.15, 0.15)},
			{Field: "diabetes", Contribution: engine.WhenSet(0.10)},
			{Field: "medication_statins", Contribution: engine.Protective(0.50, 0.10)},
			{Field: "bmi", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.05})},
			{Field: "age", Contribution: engine.Steps(engine.Step{At: 0.55, Add: 0.05})},
		}},
		Explanations: map[string]string{
			"ldl_cholesterol":   "LDL of %v mg/dL is above the optimal range (<100 mg/dL)",
			"hdl_cholesterol":   "HDL of %v mg/dL is below the protective threshold (40 mg/dL)",
			"triglycerides":     "Triglycerides of %v mg/dL exceed the normal limit (150 mg/dL)",
			"total_cholesterol": "Total cholesterol of %v mg/dL exceeds the desirable range (<200 mg/dL)",
		},
		Remediations: map[string]string{
			"ldl_cholesterol": "Reduce saturated and trans fats; discuss statin therapy with your physician",
			"hdl_cholesterol": "Raise HDL with aerobic exercise and omega-3 rich foods",
			"triglycerides":   "Cut refined carbohydrates and alcohol to lower triglycerides",
			"smoking_status":  "Quit smoking; HDL typically rises within weeks of cessation",
		},
		Lifestyle: append([]engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("triglycerides") > 200 },
				Advice: "Add soluble fiber (oats, legumes) which directly lowers LDL absorption",
			},
		}, elevatedRiskLifestyle...),
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "LDL Burden", Fields: []string{"ldl_cholesterol", "total_cholesterol"}},
			{Label: "Protective HDL", Fields: []string{"hdl_cholesterol"}},
			{Label: "Triglycerides", Fields: []string{"triglycerides"}},
			{Label: "Metabolic", Fields: []string{"bmi", "diabetes"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("ldl_cholesterol", 160), text: "High LDL drives atherosclerotic plaque formation"},
				{when: below("hdl_cholesterol", 40), text: "Low HDL removes less cholesterol from arterial walls"},
				{when: above("triglycerides", 200), text: "Hypertriglyceridemia compounds cardiovascular risk"},
				{when: isSet("diabetes"), text: "Diabetes shifts lipid targets lower and risk higher"},
			},
			func(typed *domain.TypedRecord) (map[string]string, error) {
				metrics := map[string]string{}
				hdl := typed.Float("hdl_cholesterol")
				if hdl > 0 {
					ratio := typed.Float("total_cholesterol") / hdl
					switch {
					case ratio < 3.5:
						metrics["TC/HDL Ratio"] = "Optimal (below 3.5)"
					case ratio < 5:
						metrics["TC/HDL Ratio"] = "Acceptable (3.5-5.0)"
					default:
						metrics["TC/HDL Ratio"] = "High (above 5.0, elevated risk)"
					}
				}
				return metrics, nil
			},
			nil,
		),
	}
}

func mentalHealth() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "mental_health",
		DisplayName: "Mental Health Risk Assessment",
		Description: "Depression and anxiety risk from screening scores, sleep and stress load",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "phq9_score", Type: domain.FieldInteger, Description: "PHQ-9 depression score (0-27)", Scale: 27, Clamp: true},
			domain.FieldSpec{Name: "gad7_score", Type: domain.FieldInteger, Description: "GAD-7 anxiety score (0-21)", Scale: 21, Clamp: true},
			domain.FieldSpec{Name: "sleep_hours", Type: domain.FieldFloat, Description: "Sleep hours per night", Scale: 12, Clamp: true},
			domain.FieldSpec{Name: "social_interaction_hours", Type: domain.FieldFloat, Description: "Social interaction (hours/week)", Scale: 40, Clamp: true},
			domain.FieldSpec{Name: "work_stress_level", Type: domain.FieldOrdinal, Description: "Work stress level (0-10)", MaxOrdinal: 10},
			domain.FieldSpec{Name: "physical_activity_minutes", Type: domain.FieldInteger, Description: "Weekly activity (minutes)", Scale: 300, Clamp: true},
			domain.FieldSpec{Name: "therapy_sessions", Type: domain.FieldInteger, Description: "Therapy sessions per month", Scale: 10, Clamp: true, Default: 0},
			domain.FieldSpec{Name: "family_history_mental_health", Type: domain.FieldBool, Description: "Family history of mental health conditions", Default: false},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "phq9_score", Contribution: engine.Steps(engine.Step{At: 0.19, Add: 0.10}, engine.Step{At: 0.37, Add: 0.20}, engine.Step{At: 0.56, Add: 0.35})},
			{Field: "gad7_score", Contribution: engine.Steps(engine.Step{At: 0.24, Add: 0.10}, engine.Step{At: 0.48, Add: 0.20}, engine.Step{At: 0.70, Add: 0.30})},
			{Field: "sleep_hours", Contribution: engine.Below(0.50, 0.10)},
			{Field: "work_stress_level", Contribution: engine.Scaled(0.15, 0.15)},
			{Field: "social_interaction_hours", Contribution: engine.Below(0.125, 0.10)},
			{Field: "physical_activity_minutes", Contribution: engine.Protective(0.50, 0.10)},
			{Field: "therapy_sessions", Contribution: engine.Protective(0.20, 0.10)},
			{Field: "family_history_mental_health", Contribution: engine.WhenSet(0.10)},
		}},
		Explanations: map[string]string{
			"phq9_score":               "PHQ-9 score of %v indicates clinically relevant depressive symptoms",
			"gad7_score":               "GAD-7 score of %v indicates clinically relevant anxiety symptoms",
			"sleep_hours":              "%v hours of sleep undermines emotional regulation",
			"social_interaction_hours": "%v hours of weekly social contact is below the protective range",
		},
		Remediations: map[string]string{
			"phq9_score":               "Discuss these screening results with a mental health professional",
			"gad7_score":               "Consider cognitive behavioral therapy; it is first-line for anxiety",
			"sleep_hours":              "Establish a consistent sleep schedule with a fixed wake time",
			"social_interaction_hours": "Schedule regular social contact; isolation compounds low mood",
			"work_stress_level":        "Negotiate workload boundaries and take scheduled breaks",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("physical_activity_minutes") < 90 },
				Advice: "Exercise three times weekly; effect sizes for mood rival first-line medication in mild cases",
			},
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.5 },
				Advice: "Practice stress management techniques like meditation or yoga",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Mood", Fields: []string{"phq9_score"}},
			{Label: "Anxiety", Fields: []string{"gad7_score"}},
			{Label: "Sleep", Fields: []string{"sleep_hours"}},
			{Label: "Stress", Fields: []string{"work_stress_level"}},
			{Label: "Support", Fields: []string{"social_interaction_hours", "therapy_sessions"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("phq9_score", 14), text: "PHQ-9 in the moderately severe range warrants clinical follow-up"},
				{when: above("phq9_score", 9), text: "PHQ-9 in the moderate range suggests active depressive symptoms"},
				{when: above("gad7_score", 9), text: "GAD-7 in the moderate range suggests clinically relevant anxiety"},
				{when: below("sleep_hours", 6), text: "Chronic short sleep independently worsens mood disorders"},
				{when: above("work_stress_level", 7), text: "Sustained high work stress is a major modifiable driver"},
			},
			nil,
			impactSummary([]observation{
				{when: below("physical_activity_minutes", 90), text: "building regular exercise"},
				{when: below("social_interaction_hours", 5), text: "increasing social connection"},
				{when: below("sleep_hours", 7), text: "sleep hygiene"},
			}, "Your lifestyle supports mental wellbeing. Continue your current balance of activity, sleep and social connection."),
		),
	}
}

func sleepApnea() *engine.DomainConfig {
	return &engine.DomainConfig{
		Name:        "sleep_apnea",
		DisplayName: "Sleep Apnea Risk Assessment",
		Description: "Obstructive sleep apnea risk from anatomy, nocturnal symptoms and oximetry",
		Schema: domain.MustSchema(
			domain.FieldSpec{Name: "age", Type: domain.FieldInteger, Description: "Age in years", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "bmi", Type: domain.FieldFloat, Description: "Body mass index", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "neck_circumference", Type: domain.FieldFloat, Description: "Neck circumference (cm)", Scale: 60, Clamp: true},
			domain.FieldSpec{Name: "snoring_frequency", Type: domain.FieldOrdinal, Description: "Snoring frequency (0 never to 4 nightly)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "witnessed_apneas", Type: domain.FieldOrdinal, Description: "Witnessed breathing pauses (0 never to 4 nightly)", MaxOrdinal: 4},
			domain.FieldSpec{Name: "daytime_sleepiness", Type: domain.FieldInteger, Description: "Epworth sleepiness score (0-24)", Scale: 24, Clamp: true},
			domain.FieldSpec{Name: "oxygen_saturation_min", Type: domain.FieldFloat, Description: "Minimum nocturnal oxygen saturation (%)", Scale: 100, Clamp: true},
			domain.FieldSpec{Name: "alcohol_before_bed", Type: domain.FieldBool, Description: "Alcohol within 3 hours of bedtime", Default: false},
			domain.FieldSpec{Name: "nasal_congestion", Type: domain.FieldOrdinal, Description: "Nasal congestion severity (0-4)", MaxOrdinal: 4, Default: 0},
		),
		Scoring: &engine.ScoringRules{Terms: []engine.ScoringTerm{
			{Field: "bmi", Contribution: engine.Steps(engine.Step{At: 0.50, Add: 0.15}, engine.Step{At: 0.58, Add: 0.25})},
			{Field: "neck_circumference", Contribution: engine.Steps(engine.Step{At: 0.70, Add: 0.15})},
			{Field: "snoring_frequency", Contribution: engine.Scaled(0.20, 0.20)},
			{Field: "witnessed_apneas", Contribution: engine.Scaled(0.30, 0.30)},
			{Field: "daytime_sleepiness", Contribution: engine.Steps(engine.Step{At: 0.42, Add: 0.10}, engine.Step{At: 0.67, Add: 0.20})},
			{Field: "oxygen_saturation_min", Contribution: engine.Below(0.88, 0.20)},
			{Field: "alcohol_before_bed", Contribution: engine.WhenSet(0.05)},
			{Field: "nasal_congestion", Contribution: engine.Scaled(0.05, 0.05)},
		}},
		Explanations: map[string]string{
			"witnessed_apneas":      "Witnessed apnea frequency %v is the most specific screening sign",
			"daytime_sleepiness":    "Epworth score of %v indicates pathological daytime sleepiness",
			"oxygen_saturation_min": "Minimum saturation of %v%% indicates significant nocturnal desaturation",
			"neck_circumference":    "Neck circumference of %v cm predicts upper airway collapsibility",
		},
		Remediations: map[string]string{
			"witnessed_apneas":      "Arrange a sleep study (polysomnography) for definitive diagnosis",
			"bmi":                   "10% weight loss can reduce apnea severity by roughly a quarter",
			"alcohol_before_bed":    "Avoid alcohol within three hours of bedtime; it relaxes airway muscles",
			"nasal_congestion":      "Treat nasal congestion; consider evaluation for structural obstruction",
			"oxygen_saturation_min": "Discuss positive airway pressure therapy with a sleep physician",
		},
		Lifestyle: []engine.LifestyleRule{
			{
				When:   func(typed *domain.TypedRecord, _ float64) bool { return typed.Float("snoring_frequency") >= 3 },
				Advice: "Try side sleeping; supine position worsens airway collapse",
			},
			{
				When:   func(_ *domain.TypedRecord, score float64) bool { return score > 0.5 },
				Advice: "Establish a regular exercise routine (150 minutes/week moderate activity)",
			},
		},
		Radar: engine.RadarSpec{Axes: []engine.RadarAxis{
			{Label: "Anatomy", Fields: []string{"bmi", "neck_circumference"}},
			{Label: "Nocturnal Signs", Fields: []string{"snoring_frequency", "witnessed_apneas"}},
			{Label: "Daytime Impact", Fields: []string{"daytime_sleepiness"}},
			{Label: "Oxygenation", Fields: []string{"oxygen_saturation_min"}},
		}},
		Analysis: observationHooks(
			[]observation{
				{when: above("witnessed_apneas", 1), text: "Witnessed breathing pauses strongly predict obstructive apnea"},
				{when: above("bmi", 35), text: "Severe obesity is the dominant anatomical apnea risk"},
				{when: above("daytime_sleepiness", 10), text: "Pathological sleepiness impairs driving and work safety"},
				{when: below("oxygen_saturation_min", 88), text: "Nocturnal desaturation strains the cardiovascular system"},
			},
			nil,
			impactSummary([]observation{
				{when: above("bmi", 30), text: "weight reduction"},
				{when: isSet("alcohol_before_bed"), text: "evening alcohol avoidance"},
			}, "Your profile shows low obstructive risk. Maintain healthy weight and sleep position habits."),
		),
	}
}
