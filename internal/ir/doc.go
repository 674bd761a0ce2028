// Package ir defines the declaration and expression tree that the generator
// builds and the renderer serializes.
//
// Назначение: pure data model of the emitted Swift source.
// Не делает: formatting, IO, or validation of the generated code.
// Зависимости: none.
package ir
