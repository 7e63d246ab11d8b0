// Package ratelimit fornece middlewares net/http de rate limit por cliente e de
// limite de requisições simultâneas, usados na frente da API do catálogo.
//
// Camadas:
//
//   - domain: contratos (limiter, pool de vagas, estatísticas) sem net/http
//   - application: decisão allow/deny e aquisição de vaga com timeout
//   - infra: token bucket (x/time/rate), semáforo por channel, stats em memória e Redis
//   - ratelimit (este pacote): middlewares, extração de chave e tradução para status/headers
//
// A resposta de rejeição é plugável (Options.Reject) para que o servidor devolva
// o mesmo corpo JSON de erro das demais rotas.
package ratelimit
