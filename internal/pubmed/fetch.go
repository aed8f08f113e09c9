// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"net/url"
	"strings"

	"github.com/pdiddy/pubmed-fetcher/pkg/types"
)

// FetchDetails retrieves the articles for ids in one efetch call and returns
// one classified record per PubmedArticle, in document order. An empty ids
// slice returns an empty result without contacting the endpoint. Any
// transport or parse failure aborts the whole batch.
func (c *Client) FetchDetails(ctx context.Context, ids []string) ([]types.ArticleRecord, error) {
	if len(ids) == 0 {
		c.log.Debug().Msg("efetch skipped: no identifiers")
		return []types.ArticleRecord{}, nil
	}

	params := url.Values{
		"db":      {database},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}
	reqURL := c.endpointURL(efetchPath, params)

	c.log.Debug().Int("ids", len(ids)).Msg("efetch")

	body, err := c.http.Get(ctx, efetchLabel, reqURL)
	if err != nil {
		return nil, err
	}

	records, err := ParseArticles(body, c.classifier)
	if err != nil {
		return nil, err
	}

	c.log.Debug().Int("records", len(records)).Msg("efetch done")
	return records, nil
}
