// Package application provides application initialization and dependency
// wiring. It hosts the batch runner that turns a mass list into the two
// printed answers, and builds the storage, handlers, router, and HTTP
// server for serve mode, keeping the main package focused on CLI parsing
// and orchestration.
package application
