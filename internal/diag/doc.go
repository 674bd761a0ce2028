// Package diag defines the diagnostic model shared by the generation
// pipeline.
//
// Назначение: deterministic, serialisable records for data-integrity
// findings (e.g. a symbol whose availability key has no version record).
// Не делает: IO or process control; rendering lives in the report writer,
// policy in the CLI.
// Зависимости: fatih/color (report writer only).
package diag
