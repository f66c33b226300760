package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"
)

type BrandInfo struct {
	LogoURL    string `json:"logoUrl"`
	BrandColor string `json:"brandColor"`
}

// BrandLookup resolves branding for a domain. The site-creation flow treats
// it as a black box; lookup failures must never fail site creation.
type BrandLookup interface {
	Lookup(domain string) (BrandInfo, error)
}

type httpBrandLookup struct {
	baseURL string
	client  *http.Client
}

func NewHTTPBrandLookup(baseURL string) BrandLookup {
	return &httpBrandLookup{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (l *httpBrandLookup) Lookup(domain string) (BrandInfo, error) {
	var info BrandInfo

	resp, err := l.client.Get(l.baseURL + "?domain=" + url.QueryEscape(domain))
	if err != nil {
		return info, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("brand lookup returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return info, err
	}
	return info, nil
}

type noopBrandLookup struct{}

func (noopBrandLookup) Lookup(string) (BrandInfo, error) { return BrandInfo{}, nil }

// NewBrandLookupFromEnv returns the HTTP lookup when BRAND_API_URL is set,
// otherwise a no-op that leaves branding empty.
func NewBrandLookupFromEnv() BrandLookup {
	if baseURL := os.Getenv("BRAND_API_URL"); baseURL != "" {
		return NewHTTPBrandLookup(baseURL)
	}
	return noopBrandLookup{}
}
