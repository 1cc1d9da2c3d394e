package dto

type AIReportResponseDTO struct {
	Report string `json:"report"`
}
