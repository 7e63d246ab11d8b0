// Package domain define os contratos de rate limit, concorrência e estatísticas.
//
// Não depende de net/http nem de implementações concretas.
package domain
