package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// datamuseResult is the subset of the Datamuse response fields this client
// reads: https://www.datamuse.com/api/.
type datamuseResult struct {
	Word string `json:"word"`
}

// DatamuseOracle answers pattern requests against the public Datamuse API's
// "sp" (spelled-like) parameter, which accepts "?" as a single-letter
// wildcard.
type DatamuseOracle struct {
	httpClient *http.Client
	baseURL    string
}

// NewDatamuseOracle builds an oracle with a bounded request timeout; the
// engine's own context still governs cancellation of any in-flight call.
func NewDatamuseOracle(timeout time.Duration) *DatamuseOracle {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DatamuseOracle{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    "https://api.datamuse.com/words",
	}
}

// Request converts pattern's '.' wildcards to Datamuse's '?' and filters the
// response down to words of pattern's exact length not present in used.
func (o *DatamuseOracle) Request(ctx context.Context, pattern string, count int, used map[string]bool) ([]string, error) {
	params := url.Values{}
	params.Set("sp", strings.ReplaceAll(strings.ToLower(pattern), ".", "?"))
	if count > 0 {
		params.Set("max", fmt.Sprintf("%d", count*2)) // over-fetch to survive used-word filtering
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build datamuse request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("datamuse request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("datamuse returned status %d", resp.StatusCode)
	}

	var results []datamuseResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode datamuse response: %w", err)
	}

	words := make([]string, 0, len(results))
	for _, r := range results {
		w := strings.ToUpper(r.Word)
		if len(w) != len(pattern) || used[w] || strings.ContainsAny(w, " -'") {
			continue
		}
		words = append(words, w)
		if count > 0 && len(words) >= count {
			break
		}
	}
	return words, nil
}
