// Package dto define a forma pública (JSON) das aplicações e a projeção a partir
// do modelo interno.
//
// A projeção é pura: não altera o valor de entrada, preserva a ordem das coleções
// e mantém a diferença entre coleção ausente (null) e vazia ([]).
package dto
