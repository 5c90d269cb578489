package models

type Patient struct {
	PatientID   string `json:"PatientId"`
	Name        string `json:"Name"`
	Email       string `json:"Email"`
	Password    string `json:"Password,omitempty"`
	Address     string `json:"Address"`
	PhoneNumber string `json:"PhoneNumber"`
	BirthDate   string `json:"BirthDate"`
}
