package optionsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/formkit/pkg/field"
)

type searchResponse[O any] struct {
	Hits struct {
		Hits []struct {
			Source O `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Search returns a search-as-you-type provider that runs a phrase prefix
// match on fieldName of index and decodes each hit's _source into O. A blank
// query lists the first size documents.
func Search[O any](client *opensearch.Client, index, fieldName string, size int) field.OptionsProvider[O] {
	return func(ctx context.Context, query string) ([]O, error) {
		if client == nil {
			return nil, ErrNilClient
		}

		body, err := json.Marshal(searchBody(fieldName, strings.TrimSpace(query)))
		if err != nil {
			return nil, err
		}

		reqOpts := []func(*opensearchapi.SearchRequest){
			client.Search.WithContext(ctx),
			client.Search.WithIndex(index),
			client.Search.WithBody(bytes.NewReader(body)),
		}
		if size > 0 {
			reqOpts = append(reqOpts, client.Search.WithSize(size))
		}

		res, err := client.Search(reqOpts...)
		if err != nil {
			return nil, errors.Join(ErrSearchFailed, err)
		}
		defer res.Body.Close()
		if res.IsError() {
			return nil, fmt.Errorf("%w: %s", ErrSearchFailed, res.String())
		}

		var out searchResponse[O]
		if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("optionsource: decode search response: %w", err)
		}
		opts := make([]O, len(out.Hits.Hits))
		for i, h := range out.Hits.Hits {
			opts[i] = h.Source
		}
		return opts, nil
	}
}

func searchBody(fieldName, query string) map[string]any {
	if query == "" {
		return map[string]any{"query": map[string]any{"match_all": map[string]any{}}}
	}
	return map[string]any{
		"query": map[string]any{
			"match_phrase_prefix": map[string]any{
				fieldName: map[string]any{"query": query},
			},
		},
	}
}
