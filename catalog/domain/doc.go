// Package domain define os tipos do catálogo de aplicações e o contrato de leitura
// do armazenamento.
//
// Este pacote não depende de net/http nem do driver do banco de documentos.
// As camadas application e infra dependem dele, nunca o contrário.
package domain
