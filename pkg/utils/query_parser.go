package utils

import (
	"net/url"
	"strconv"
	"strings"
)

type QueryParams struct {
	Filters map[string]string
	Search  string
	Limit   uint64
	Offset  uint64
	Page    uint64
}

// ParseQuery reads ?search=&filter[key]=&limit=&offset=&page= style parameters.
// Plain ?key=value pairs are accepted as filters too.
func ParseQuery(query url.Values) QueryParams {
	params := QueryParams{
		Filters: make(map[string]string),
		Page:    1,
	}

	for key, values := range query {
		if len(values) == 0 {
			continue
		}
		switch {
		case strings.HasPrefix(key, "filter[") && strings.HasSuffix(key, "]"):
			params.Filters[key[7:len(key)-1]] = values[0]
		case key == "search" || key == "limit" || key == "offset" || key == "page":
		default:
			params.Filters[key] = values[0]
		}
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if l, err := strconv.ParseUint(limitStr, 10, 64); err == nil && l > 0 {
			params.Limit = min(l, MaxLimit)
		}
	}
	if offsetStr := query.Get("offset"); offsetStr != "" {
		if o, err := strconv.ParseUint(offsetStr, 10, 64); err == nil {
			params.Offset = o
			if params.Limit > 0 {
				params.Page = (o / params.Limit) + 1
			}
		}
	}
	if pageStr := query.Get("page"); pageStr != "" && params.Offset == 0 {
		if p, err := strconv.ParseUint(pageStr, 10, 64); err == nil && p > 0 && params.Limit > 0 {
			params.Page = p
			params.Offset = (p - 1) * params.Limit
		}
	}

	params.Search = strings.TrimSpace(query.Get("search"))
	return params
}
