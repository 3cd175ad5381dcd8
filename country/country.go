package country

type Country struct {
	Name     string   `json:"name"`
	Capital  string   `json:"capital"`
	Currency Currency `json:"currency"`
	Language Language `json:"language"`
}

type Currency struct {
	Name string `json:"name"`
}

type Language struct {
	Name string `json:"name"`
}
