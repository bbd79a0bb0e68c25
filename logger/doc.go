// Package logger provides structured logging on top of zerolog for the
// retailkit client and its tooling. The request engine only logs when a
// Logger is explicitly attached.
package logger
