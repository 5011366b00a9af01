// Package colorapi exposes a csscolor.Validator as a small JSON HTTP API.
//
// A validate request names an optional rule from the loaded rule set and may
// override its mode, message and normalizers:
//
//	POST /v1/validate
//	{"rule": "brand", "values": ["#C0FFEE", " #abc "]}
//
// Rejected values are reported in the 200 response body. Configuration
// mistakes (unknown rule, mode or normalizer) answer 400 and values that
// cannot be read as text answer 422. Every response carries an X-Request-ID
// header.
package colorapi
