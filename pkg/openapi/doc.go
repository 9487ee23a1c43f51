// Package openapi connects the validator registry to OpenAPI documents. It
// registers every rule as a kin-openapi string format, so request payloads
// validated by kin-openapi apply the same checks the engine does, and it
// extracts the format identifier of each request body property so markup can
// be annotated with matching mask attributes.
package openapi
