package domain

// Company is a directory entry located in one building.
type Company struct {
	ID         int64
	Name       string
	BuildingID int64
}

// Phone is a phone number owned by a company.
type Phone struct {
	ID        int64
	CompanyID int64
	Number    string
}

// CompanyDetails is a company with its associations loaded.
type CompanyDetails struct {
	Company
	Building   *Building
	Phones     []Phone
	Activities []Activity
}
