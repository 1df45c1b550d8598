// Package logging defines the logger interface used by applications that
// embed KLL sketches. Sketch operations themselves never log; the interface
// exists so ingestion pipelines built on this module can thread one logger
// through their own components without committing to a concrete backend.
package logging
