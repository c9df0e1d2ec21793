package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"caseflow/pkg/platform/sentinel"
)

var asOf = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func newServer(t *testing.T, path, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, path, r.URL.Path)
		assert.Equal(t, "2025-03-14", r.URL.Query().Get("as_of"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCivilHTTP_Citizen(t *testing.T) {
	srv := newServer(t, "/citizens/123",
		`{"national_id":"123","full_name":"Kari Nordmann","date_of_birth":"1987-02-12","deceased":false}`,
		http.StatusOK)

	rec, err := NewCivilHTTP(srv.URL, srv.Client()).Citizen(context.Background(), "123", asOf)
	require.NoError(t, err)

	assert.Equal(t, "123", rec.NationalID)
	assert.Equal(t, "Kari Nordmann", rec.FullName)
	assert.False(t, rec.Deceased)
}

func TestCivilHTTP_NotFound(t *testing.T) {
	srv := newServer(t, "/citizens/999", `{"error":"no such citizen"}`, http.StatusNotFound)

	_, err := NewCivilHTTP(srv.URL, srv.Client()).Citizen(context.Background(), "999", asOf)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestCivilHTTP_ServerError(t *testing.T) {
	srv := newServer(t, "/citizens/123", `oops`, http.StatusInternalServerError)

	_, err := NewCivilHTTP(srv.URL, srv.Client()).Citizen(context.Background(), "123", asOf)
	require.Error(t, err)
	assert.NotErrorIs(t, err, sentinel.ErrNotFound)
	assert.Contains(t, err.Error(), "500")
}

func TestEmploymentHTTP_Periods(t *testing.T) {
	srv := newServer(t, "/employment/123",
		`{"periods":[
			{"employer":"Acme","start":"2019-01-01","end":"2023-06-30"},
			{"employer":"Globex","start":"2023-07-01","end":""}
		]}`,
		http.StatusOK)

	periods, err := NewEmploymentHTTP(srv.URL, srv.Client()).Periods(context.Background(), "123", asOf)
	require.NoError(t, err)
	require.Len(t, periods, 2)

	assert.Equal(t, "Acme", periods[0].Employer)
	require.NotNil(t, periods[0].End)
	assert.Equal(t, time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), *periods[0].End)

	assert.Equal(t, "Globex", periods[1].Employer)
	assert.Nil(t, periods[1].End, "empty end date means the engagement is open")
}

func TestEmploymentHTTP_EmptyHistory(t *testing.T) {
	srv := newServer(t, "/employment/123", `{"periods":[]}`, http.StatusOK)

	periods, err := NewEmploymentHTTP(srv.URL, srv.Client()).Periods(context.Background(), "123", asOf)
	require.NoError(t, err)
	assert.Empty(t, periods)
	assert.NotNil(t, periods, "a reachable registry with no records is not an error")
}

func TestEmploymentHTTP_BadDate(t *testing.T) {
	srv := newServer(t, "/employment/123",
		`{"periods":[{"employer":"Acme","start":"01.01.2019","end":""}]}`,
		http.StatusOK)

	_, err := NewEmploymentHTTP(srv.URL, srv.Client()).Periods(context.Background(), "123", asOf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "01.01.2019")
}

func TestTaxHTTP_Income(t *testing.T) {
	srv := newServer(t, "/income/123", `{"year":2024,"annual_gross":300000}`, http.StatusOK)

	rec, err := NewTaxHTTP(srv.URL, srv.Client()).Income(context.Background(), "123", asOf)
	require.NoError(t, err)

	assert.Equal(t, 2024, rec.Year)
	assert.Equal(t, 300000.0, rec.AnnualGross)
}

func TestBankHTTP_Validate(t *testing.T) {
	srv := newServer(t, "/accounts/123", `{"valid":true}`, http.StatusOK)

	valid, err := NewBankHTTP(srv.URL, srv.Client()).Validate(context.Background(), "123", asOf)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestGetJSON_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := NewCivilHTTP(srv.URL, srv.Client()).Citizen(ctx, "123", asOf)
	assert.Error(t, err)
}
