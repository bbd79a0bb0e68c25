// Package retail exposes the domain endpoint groups of the retailkit
// API as thin declarative services over the httpclient request engine.
// Services carry no business logic: they format paths and payloads and
// let the engine's typed errors propagate unchanged.
package retail
