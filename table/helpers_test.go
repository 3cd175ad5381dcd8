package table

import (
	"fmt"

	"github.com/fulldump/countrytable/country"
)

func newCountry(name, capital, currency, language string) country.Country {
	return country.Country{
		Name:     name,
		Capital:  capital,
		Currency: country.Currency{Name: currency},
		Language: country.Language{Name: language},
	}
}

func generateCountries(n int) []country.Country {
	result := []country.Country{}
	for i := 1; i <= n; i++ {
		result = append(result, newCountry(
			fmt.Sprintf("Country %02d", i),
			fmt.Sprintf("Capital %02d", i),
			fmt.Sprintf("Currency %02d", n-i),
			"Language",
		))
	}
	return result
}

func names(rows []country.Country) []string {
	result := []string{}
	for _, row := range rows {
		result = append(result, row.Name)
	}
	return result
}

func reversed(s []string) []string {
	result := make([]string, len(s))
	for i, v := range s {
		result[len(s)-1-i] = v
	}
	return result
}

var sample = []country.Country{
	newCountry("Chad", "N'Djamena", "Central African CFA franc", "French"),
	newCountry("Benin", "Porto-Novo", "West African CFA franc", "French"),
	newCountry("Japan", "Tokyo", "Japanese yen", "Japanese"),
	newCountry("Peru", "Lima", "Peruvian sol", "Spanish"),
	newCountry("Spain", "Madrid", "Euro", "Spanish"),
}
