// Package infra implementa os contratos de domain:
//
//   - Store: token bucket por cliente (golang.org/x/time/rate) com limpeza de ociosos
//   - ChanPool: semáforo por channel para requisições simultâneas
//   - MemoryStatsStore / RedisStatsStore: contadores de decisões por rota e cliente
package infra
