// Package application decide allow/deny do rate limit e adquire vagas de
// concorrência com timeout, sem conhecer net/http.
package application
