// Package simengine is a pure-Go provider of the boundary function table.
//
// It loads scene documents written in YAML instead of the binary runtime
// format and keeps every object it hands out in a handle table, so tests
// can observe exact ownership traffic: references taken and dropped,
// destructors called, and every use of a freed or mistyped handle.
//
// The engine follows the native provider's status rules call for call.
// Rendering goes through a software rasterizer; the WebGL2 and WebGPU
// entry points report UNSUPPORTED, as a native build without those
// backends does.
package simengine
