// Package internalcheck holds policy tests that keep the module's safety
// envelope intact. The checks load the module's packages and fail when a
// source file violates a structural rule, such as importing "C" outside the
// bindings layer.
package internalcheck
