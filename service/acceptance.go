package service

import (
	"fmt"
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/countrytable/country"
)

type JSON = map[string]interface{}

// AcceptanceCountries is the collection Acceptance expects to be loaded.
func AcceptanceCountries() []country.Country {
	n := 45
	result := []country.Country{}
	for i := 1; i <= n; i++ {
		language := "English"
		if i%3 == 0 {
			language = "Spanish"
		}
		result = append(result, country.Country{
			Name:     fmt.Sprintf("Country %02d", i),
			Capital:  fmt.Sprintf("Capital %02d", i),
			Currency: country.Currency{Name: fmt.Sprintf("Currency %02d", n-i)},
			Language: country.Language{Name: language},
		})
	}
	return result
}

func rowNames(body JSON) []string {
	result := []string{}
	rows, _ := body["rows"].([]interface{})
	for _, row := range rows {
		result = append(result, row.(JSON)["name"].(string))
	}
	return result
}

// Acceptance runs the table API scenarios. apiRequest must keep the session
// cookie between requests.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Get table", func(a *biff.A) {
		resp := apiRequest("GET", "/table").Do()
		Save(resp, "Get table", `
			Returns the current page of the visitor table. Search, sort and page
			create the session, until then the initial table is returned.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		body := resp.BodyJsonMap()
		biff.AssertEqualJson(body["total"], 45)
		biff.AssertEqualJson(body["page_count"], 3)
		biff.AssertEqualJson(body["current_page"], 1)
		biff.AssertEqualJson(body["sort_column"], "")
		biff.AssertEqual(len(rowNames(body)), 20)
		biff.AssertEqual(rowNames(body)[0], "Country 01")
		biff.AssertEqualJson(body["pages"], []JSON{
			{"page": 1, "active": true},
			{"page": 2, "active": false},
			{"page": 3, "active": false},
		})

		a.Alternative("Select page", func(a *biff.A) {
			resp := apiRequest("POST", "/table:page").
				WithBodyJson(JSON{"page": 3}).Do()
			Save(resp, "Select page", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJsonMap()
			biff.AssertEqualJson(body["current_page"], 3)
			biff.AssertEqual(rowNames(body), []string{"Country 41", "Country 42", "Country 43", "Country 44", "Country 45"})

			a.Alternative("Page is kept", func(a *biff.A) {
				resp := apiRequest("GET", "/table").Do()
				biff.AssertEqualJson(resp.BodyJsonMap()["current_page"], 3)
			})

			a.Alternative("Search goes back to first page", func(a *biff.A) {
				resp := apiRequest("POST", "/table:search").
					WithBodyJson(JSON{"country": "COUNTRY 1", "language": "english"}).Do()
				Save(resp, "Search", `
					The four terms are matched as case insensitive substrings of
					name, capital, currency name and language name. Missing terms
					match everything.
				`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				body := resp.BodyJsonMap()
				biff.AssertEqualJson(body["current_page"], 1)
				biff.AssertEqualJson(body["total"], 7)
				biff.AssertEqual(rowNames(body), []string{
					"Country 10", "Country 11", "Country 13", "Country 14",
					"Country 16", "Country 17", "Country 19",
				})
			})

			a.Alternative("Out of range page", func(a *biff.A) {
				resp := apiRequest("POST", "/table:page").
					WithBodyJson(JSON{"page": 99}).Do()
				biff.AssertEqualJson(resp.BodyJsonMap()["current_page"], 3)
			})
		})

		a.Alternative("Sort by currency", func(a *biff.A) {
			resp := apiRequest("POST", "/table:sort").
				WithBodyJson(JSON{"column": "currency"}).Do()
			Save(resp, "Sort", `
				Sorting again by the same column reverses the direction.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJsonMap()
			biff.AssertEqualJson(body["sort_column"], "currency")
			biff.AssertEqualJson(body["sort_direction"], "asc")
			biff.AssertEqual(rowNames(body)[0], "Country 45")

			a.Alternative("Sort again reverses", func(a *biff.A) {
				resp := apiRequest("POST", "/table:sort").
					WithBodyJson(JSON{"column": "currency"}).Do()

				body := resp.BodyJsonMap()
				biff.AssertEqualJson(body["sort_direction"], "desc")
				biff.AssertEqual(rowNames(body)[0], "Country 01")
				biff.AssertEqualJson(body["current_page"], 1)
			})
		})

		a.Alternative("Sort by unknown column", func(a *biff.A) {
			resp := apiRequest("POST", "/table:sort").
				WithBodyJson(JSON{"column": "population"}).Do()
			Save(resp, "Sort - unknown column", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"error": JSON{
					"message":     "unknown column 'population', must be [capital|currency|language|name]",
					"description": "Bad column",
				},
			})
		})

		a.Alternative("Search without matches", func(a *biff.A) {
			resp := apiRequest("POST", "/table:search").
				WithBodyJson(JSON{"country": "atlantis"}).Do()
			Save(resp, "Search - no matches", ``)

			body := resp.BodyJsonMap()
			biff.AssertEqualJson(body["total"], 0)
			biff.AssertEqualJson(body["page_count"], 0)
			biff.AssertEqualJson(body["pages"], []JSON{})
			biff.AssertEqualJson(body["rows"], []JSON{})

			a.Alternative("Select page keeps the empty result", func(a *biff.A) {
				resp := apiRequest("POST", "/table:page").
					WithBodyJson(JSON{"page": 1}).Do()
				biff.AssertEqualJson(resp.BodyJsonMap()["total"], 0)
			})
		})
	})

	a.Alternative("List countries", func(a *biff.A) {
		resp := apiRequest("GET", "/countries").Do()
		Save(resp, "List countries", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		countries, _ := resp.BodyJson().([]interface{})
		biff.AssertEqual(len(countries), 45)
		biff.AssertEqualJson(countries[2], JSON{
			"name":     "Country 03",
			"capital":  "Capital 03",
			"currency": JSON{"name": "Currency 42"},
			"language": JSON{"name": "Spanish"},
		})
	})

	a.Alternative("Empty bodies", func(a *biff.A) {

		a.Alternative("Search matches everything", func(a *biff.A) {
			resp := apiRequest("POST", "/table:search").Do()
			Save(resp, "Search - empty body", `
				An empty body is the same as empty terms.
			`)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			body := resp.BodyJsonMap()
			biff.AssertEqualJson(body["total"], 45)
			biff.AssertEqualJson(body["current_page"], 1)
		})

		a.Alternative("Page goes to first page", func(a *biff.A) {
			apiRequest("POST", "/table:page").WithBodyJson(JSON{"page": 2}).Do()

			resp := apiRequest("POST", "/table:page").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap()["current_page"], 1)
		})

		a.Alternative("Sort needs a column", func(a *biff.A) {
			resp := apiRequest("POST", "/table:sort").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			biff.AssertEqualJson(resp.BodyJsonMap()["error"].(JSON)["description"], "Bad column")
		})
	})

	a.Alternative("Wrong input type", func(a *biff.A) {
		resp := apiRequest("POST", "/table:page").
			WithBodyJson(JSON{"page": "last"}).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJsonMap()["error"].(JSON)["description"], "Malformed JSON")
	})

	a.Alternative("Malformed body", func(a *biff.A) {
		resp := apiRequest("POST", "/table:search").
			WithBodyString(`{"country": `).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJsonMap()["error"].(JSON)["description"], "Malformed JSON")
	})
}
