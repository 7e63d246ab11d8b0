// Package catalog expõe o catálogo de aplicações via HTTP (net/http).
//
// Visão geral (camadas):
//
//   - domain: modelo interno e contrato do store (sem net/http)
//   - application: casos de uso de leitura, com log e span por chamada
//   - infra: MongoStore (MongoDB) e MemoryStore
//   - dto: forma pública JSON e projeção
//   - catalog (este pacote): paginação, cabeçalho Link, handlers e rotas
//
// Fluxo de GET /api/v1/applications/:
//
//  1. Lê page/limit da query e calcula o limite efetivo (nunca acima do máximo)
//  2. Busca a página pela camada application
//  3. Erro de store vira 500 com corpo genérico; página vazia vira 404
//  4. Projeta para DTO e monta o Link com rel="first" e, se houver, rel="next"
package catalog
