// Package sanitizer provides small string transforms used to normalize user
// input before it is validated.
//
// Every helper has the signature func(string) string, so helpers combine
// freely with Apply and Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.ToLower,
//	)
//
//	clean("  #ABCDEF \n") // "#abcdef"
//
// # Named transforms
//
// Declarative sources such as struct tags and rule files cannot reference Go
// functions directly, so the package keeps a registry of transforms by name:
//
//	fn, err := sanitizer.Chain("trim", "hash_prefix")
//	fn("  ff00aa ") // "#ff00aa"
//
// Built-in names are trim, lower, upper, trim_lower, strip_spaces,
// collapse_spaces, strip_control and hash_prefix. Register adds custom ones;
// Names lists everything currently available.
//
// # Error handling
//
// The transforms themselves never fail. Only registry operations return
// errors, all of which wrap the sentinel values in errors.go.
package sanitizer
