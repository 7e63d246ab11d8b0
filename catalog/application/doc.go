// Package application contém os casos de uso de leitura do catálogo.
//
// Depende apenas de domain; não conhece net/http nem o driver do banco.
// Ex.: Service.List(ctx, page, limit) escolhe entre PageFromStart e PageAfter.
package application
