// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// Search returns up to maxResults PMIDs matching query, in the relevance
// order of the endpoint. maxResults <= 0 uses the configured cap. No matches
// is a normal outcome and yields an empty slice.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = c.maxResults
	}

	params := url.Values{
		"db":      {database},
		"term":    {query},
		"retmax":  {strconv.Itoa(maxResults)},
		"retmode": {"json"},
	}
	reqURL := c.endpointURL(esearchPath, params)

	c.log.Debug().Str("term", query).Int("retmax", maxResults).Msg("esearch")

	body, err := c.http.Get(ctx, esearchLabel, reqURL)
	if err != nil {
		return nil, err
	}

	var resp esearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &types.ParseError{Format: "json", Err: err}
	}
	if resp.Result.Error != "" {
		return nil, &types.ParseError{Format: "json", Err: errors.New(resp.Result.Error)}
	}

	ids := resp.Result.IDList
	if ids == nil {
		ids = []string{}
	}
	// The endpoint honours retmax, but the cap is part of the contract.
	if len(ids) > maxResults {
		ids = ids[:maxResults]
	}

	c.log.Debug().Int("count", len(ids)).Str("total", resp.Result.Count).Msg("esearch done")
	return ids, nil
}

// esearch JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
	Error  string   `json:"ERROR"`
}

