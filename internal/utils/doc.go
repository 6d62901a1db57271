// Package utils provides small helpers shared by the transport and service
// layers: JSON response writing, the outbound HTTP client and UUID
// generation.
package utils
