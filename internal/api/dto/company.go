package dto

type CompanyResponse struct {
	CompanyID int    `json:"company_id"`
	Name      string `json:"name"`
	Mode      string `json:"mode"`
}

type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}
