package model

// PredictionRequest is the POST /predict body. Days is a pointer so an
// omitted field can fall back to the default while an explicit 0 is rejected.
type PredictionRequest struct {
	City      string `json:"city"`
	StartDate string `json:"start_date"`
	Days      *int   `json:"days"`
}

// DailyPrediction is one row of the prediction table. The JSON keys are a
// wire contract with the existing dashboard and must not change.
type DailyPrediction struct {
	Date        string   `json:"DATE"`
	Probability float64  `json:"Heatwave_Prob"`
	Prediction  int      `json:"Heatwave_Pred"`
	RiskLevel   string   `json:"Risk_Level"`
	Tier        RiskName `json:"-"`
}

// RiskName is the bare tier name, kept off the wire for internal consumers
// such as metrics labels.
type RiskName string

// PredictionResponse is the POST /predict success body.
type PredictionResponse struct {
	City      string            `json:"city"`
	StartDate string            `json:"start_date"`
	Days      int               `json:"days"`
	Results   []DailyPrediction `json:"results"`
}

// CitiesResponse is the GET /cities body.
type CitiesResponse struct {
	Cities []string `json:"cities"`
}
