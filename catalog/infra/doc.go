// Package infra contém implementações concretas de domain.ApplicationStore.
//
//   - MongoStore: coleção MongoDB (go.mongodb.org/mongo-driver)
//   - MemoryStore: slice ordenado em memória, para testes e execução local
package infra
