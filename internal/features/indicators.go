// Package features turns a raw health-indicator payload into the ordered
// numeric vector the trained model expects.
package features

// Count is the length of every feature vector handed to a predictor.
const Count = 18

// Request field names. The JSON payload of POST /predict uses these keys.
const (
	FieldAge                  = "age"
	FieldGender               = "gender"
	FieldChestPain            = "chest_pain"
	FieldShortnessOfBreath    = "shortness_of_breath"
	FieldFatigue              = "fatigue"
	FieldPalpitations         = "palpitations"
	FieldDizziness            = "dizziness"
	FieldSwelling             = "swelling"
	FieldRadiatingPain        = "radiating_pain"
	FieldColdSweat            = "cold_sweat"
	FieldBloodPressureHistory = "blood_pressure_history"
	FieldCholesterolLevel     = "cholesterol_level"
	FieldDiabetesHistory      = "diabetes_history"
	FieldSmokingHistory       = "smoking_history"
	FieldObesity              = "obesity"
	FieldLifestyle            = "lifestyle"
	FieldFamilyHistory        = "family_history"
	FieldChronicStress        = "chronic_stress"
)

// indicator pairs a request field with the column name the model was trained on.
type indicator struct {
	field  string
	column string
}

// indicators is the vector order. Changing it requires retraining the model.
var indicators = [Count]indicator{
	{FieldAge, "Age"},
	{FieldGender, "Gender"},
	{FieldChestPain, "Chest_Pain"},
	{FieldShortnessOfBreath, "Shortness_of_Breath"},
	{FieldFatigue, "Fatigue"},
	{FieldPalpitations, "Palpitations"},
	{FieldDizziness, "Dizziness"},
	{FieldSwelling, "Swelling"},
	{FieldRadiatingPain, "Pain_Arms_Jaw_Back"},
	{FieldColdSweat, "Cold_Sweats_Nausea"},
	{FieldBloodPressureHistory, "High_BP"},
	{FieldCholesterolLevel, "High_Cholesterol"},
	{FieldDiabetesHistory, "Diabetes"},
	{FieldSmokingHistory, "Smoking"},
	{FieldObesity, "Obesity"},
	{FieldLifestyle, "Sedentary_Lifestyle"},
	{FieldFamilyHistory, "Family_History"},
	{FieldChronicStress, "Chronic_Stress"},
}

// FieldNames returns the request field names in vector order.
func FieldNames() []string {
	names := make([]string, Count)
	for i, ind := range indicators {
		names[i] = ind.field
	}
	return names
}

// ColumnNames returns the training column names in vector order.
func ColumnNames() []string {
	names := make([]string, Count)
	for i, ind := range indicators {
		names[i] = ind.column
	}
	return names
}

// Index returns the vector position of a request field.
func Index(field string) (int, bool) {
	for i, ind := range indicators {
		if ind.field == field {
			return i, true
		}
	}
	return -1, false
}
