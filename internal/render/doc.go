// Package render serializes the ir tree into formatted Swift source text.
//
// Назначение: deterministic pretty-printing of generated declarations.
// Не делает: IR construction, validation, or IO.
// Зависимости: internal/ir.
package render
