// Package logger provides structured logging built on zerolog.
//
// The engine logs run lifecycle events (start, finish, failure) through
// this package; callers that embed the engine pass their own Logger or
// rely on the silent Nop default.
package logger
