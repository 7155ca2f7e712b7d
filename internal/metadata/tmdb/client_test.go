package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelsort/internal/metadata/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestSearchMovieSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "key" {
			t.Fatalf("expected api_key query parameter, got %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("primary_release_year") != "2010" {
			t.Fatalf("expected year filter, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":27205,"title":"Inception","release_date":"2010-07-15"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	resp, err := client.SearchMovie(context.Background(), "Inception", 2010)
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(resp.Results) != 1 || resp.Results[0].Title != "Inception" {
		t.Fatalf("unexpected response: %#v", resp)
	}
}

func TestSearchMovieHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status_code":500}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	if _, err := client.SearchMovie(context.Background(), "fail", 0); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMovieEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "  ", 0); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestGetMovieDetailsExtractsCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("append_to_response") != "credits" {
			t.Fatalf("expected credits appended, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 603,
			"title": "The Matrix",
			"release_date": "1999-03-30",
			"genres": [{"name":"Action"},{"name":"Science Fiction"}],
			"vote_average": 8.2,
			"credits": {
				"cast": [{"name":"Keanu Reeves","order":0},{"name":"Laurence Fishburne","order":1}],
				"crew": [{"name":"Lana Wachowski","job":"Director"},{"name":"Someone Else","job":"Producer"}]
			}
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	details, err := client.GetMovieDetails(context.Background(), 603)
	if err != nil {
		t.Fatalf("GetMovieDetails returned error: %v", err)
	}
	if details.Director() != "Lana Wachowski" {
		t.Errorf("Director() = %q", details.Director())
	}
	if details.Actors() != "Keanu Reeves, Laurence Fishburne" {
		t.Errorf("Actors() = %q", details.Actors())
	}
	if details.Genre() != "Action, Science Fiction" {
		t.Errorf("Genre() = %q", details.Genre())
	}
	if tmdb.YearFromDate(details.ReleaseDate) != 1999 {
		t.Errorf("year = %d", tmdb.YearFromDate(details.ReleaseDate))
	}
}

func TestGetSeasonDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tv/1396/season/5" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 1,
			"season_number": 5,
			"episodes": [
				{"name":"Blood Money","season_number":5,"episode_number":9},
				{"name":"Buried","season_number":5,"episode_number":10}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	season, err := client.GetSeasonDetails(context.Background(), 1396, 5)
	if err != nil {
		t.Fatalf("GetSeasonDetails returned error: %v", err)
	}
	if len(season.Episodes) != 2 || season.Episodes[1].Name != "Buried" {
		t.Fatalf("unexpected season payload: %#v", season)
	}
}

func TestYearFromDate(t *testing.T) {
	if got := tmdb.YearFromDate(""); got != 0 {
		t.Errorf("empty date year = %d", got)
	}
	if got := tmdb.YearFromDate("2010-07-15"); got != 2010 {
		t.Errorf("year = %d", got)
	}
}
