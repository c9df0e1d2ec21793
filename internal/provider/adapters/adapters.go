// Package adapters implements the raw source ports against the HTTP JSON
// facades of the external registries. Each adapter issues one GET and
// normalizes the body to a domain record; a 404 maps to sentinel.ErrNotFound
// and every other non-200 answer is an error for the client's retry loop.
package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"

	"caseflow/internal/domain"
	"caseflow/pkg/platform/sentinel"
)

const dateLayout = "2006-01-02"

// CivilHTTP fronts the civil registry.
type CivilHTTP struct {
	base   string
	client *http.Client
}

func NewCivilHTTP(base string, client *http.Client) *CivilHTTP {
	return &CivilHTTP{base: base, client: client}
}

func (a *CivilHTTP) Citizen(ctx context.Context, citizenID string, asOf time.Time) (domain.CitizenRecord, error) {
	var body struct {
		NationalID  string `json:"national_id"`
		FullName    string `json:"full_name"`
		DateOfBirth string `json:"date_of_birth"`
		Deceased    bool   `json:"deceased"`
	}
	path := fmt.Sprintf("/citizens/%s", url.PathEscape(citizenID))
	if err := getJSON(ctx, a.client, a.base, path, asOf, &body); err != nil {
		return domain.CitizenRecord{}, err
	}
	return domain.CitizenRecord{
		NationalID:  body.NationalID,
		FullName:    body.FullName,
		DateOfBirth: body.DateOfBirth,
		Deceased:    body.Deceased,
	}, nil
}

// EmploymentHTTP fronts the employment registry.
type EmploymentHTTP struct {
	base   string
	client *http.Client
}

func NewEmploymentHTTP(base string, client *http.Client) *EmploymentHTTP {
	return &EmploymentHTTP{base: base, client: client}
}

func (a *EmploymentHTTP) Periods(ctx context.Context, citizenID string, asOf time.Time) ([]domain.EmploymentPeriod, error) {
	var body struct {
		Periods []struct {
			Employer string `json:"employer"`
			Start    string `json:"start"`
			End      string `json:"end"` // empty when the engagement is open
		} `json:"periods"`
	}
	path := fmt.Sprintf("/employment/%s", url.PathEscape(citizenID))
	if err := getJSON(ctx, a.client, a.base, path, asOf, &body); err != nil {
		return nil, err
	}

	periods := make([]domain.EmploymentPeriod, 0, len(body.Periods))
	for _, p := range body.Periods {
		start, err := time.Parse(dateLayout, p.Start)
		if err != nil {
			return nil, fmt.Errorf("parse period start %q: %w", p.Start, err)
		}
		period := domain.EmploymentPeriod{Employer: p.Employer, Start: start}
		if p.End != "" {
			end, err := time.Parse(dateLayout, p.End)
			if err != nil {
				return nil, fmt.Errorf("parse period end %q: %w", p.End, err)
			}
			period.End = &end
		}
		periods = append(periods, period)
	}
	return periods, nil
}

// TaxHTTP fronts the tax/income registry.
type TaxHTTP struct {
	base   string
	client *http.Client
}

func NewTaxHTTP(base string, client *http.Client) *TaxHTTP {
	return &TaxHTTP{base: base, client: client}
}

func (a *TaxHTTP) Income(ctx context.Context, citizenID string, asOf time.Time) (domain.IncomeRecord, error) {
	var body struct {
		Year        int     `json:"year"`
		AnnualGross float64 `json:"annual_gross"`
	}
	path := fmt.Sprintf("/income/%s", url.PathEscape(citizenID))
	if err := getJSON(ctx, a.client, a.base, path, asOf, &body); err != nil {
		return domain.IncomeRecord{}, err
	}
	return domain.IncomeRecord{Year: body.Year, AnnualGross: body.AnnualGross}, nil
}

// BankHTTP fronts the bank-account validator.
type BankHTTP struct {
	base   string
	client *http.Client
}

func NewBankHTTP(base string, client *http.Client) *BankHTTP {
	return &BankHTTP{base: base, client: client}
}

func (a *BankHTTP) Validate(ctx context.Context, citizenID string, asOf time.Time) (bool, error) {
	var body struct {
		Valid bool `json:"valid"`
	}
	path := fmt.Sprintf("/accounts/%s", url.PathEscape(citizenID))
	if err := getJSON(ctx, a.client, a.base, path, asOf, &body); err != nil {
		return false, err
	}
	return body.Valid, nil
}

func getJSON(ctx context.Context, client *http.Client, base, path string, asOf time.Time, out any) error {
	u := fmt.Sprintf("%s%s?as_of=%s", base, path, asOf.Format(dateLayout))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", path, sentinel.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
