package models

// Car is one rentable model in the catalog. DailyRate is in whole dollars.
type Car struct {
	Model     string `json:"model"`
	DailyRate int64  `json:"dailyRate"`
}
