// Package polyzero provides a polylog.Logger implementation backed by zerolog.
// It is the default logger used by the cw721 CLI and is attached to every
// command context, so library code can retrieve it with polylog.Ctx.
package polyzero
