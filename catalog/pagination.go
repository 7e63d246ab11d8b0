package catalog

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"appcatalog/catalog/domain"

	"github.com/tomnomnom/linkheader"
)

const applicationsPath = "/api/v1/applications/"

// EffectiveLimit limita o pedido ao máximo configurado.
// Pedido ausente (nil) ou não positivo usa o máximo.
func EffectiveLimit(requested *int, maxLimit int) int {
	if requested == nil || *requested <= 0 {
		return maxLimit
	}
	return min(*requested, maxLimit)
}

// ParseLimit interpreta o parâmetro limit. Vazio é ausente (nil).
func ParseLimit(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid limit %q: %w", raw, err)
	}
	return &n, nil
}

// BuildLinks monta o valor do cabeçalho Link de uma página.
//
// rel="first" sempre aparece. rel="next" só quando a página veio cheia
// (returned >= limit), apontando para a chave da última aplicação.
func BuildLinks(serverContext string, limit, returned int, lastKey domain.Key) string {
	base := strings.TrimRight(serverContext, "/") + applicationsPath

	links := linkheader.Links{
		{URL: fmt.Sprintf("%s?limit=%d", base, limit), Rel: "first"},
	}
	if returned >= limit {
		links = append(links, linkheader.Link{
			URL: fmt.Sprintf("%s?page=%s&limit=%d", base, url.QueryEscape(string(lastKey)), limit),
			Rel: "next",
		})
	}
	return links.String()
}
