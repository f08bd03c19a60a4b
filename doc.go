// Package omenu implements the OpenMenu document format: a versioned JSON
// interchange format for restaurant menus, nutrition data, customizable
// items, and orders.
//
// It provides:
//
// - A typed document model with lossless extension round-tripping (Parse/Marshal)
// - A pure Validator collecting every conformance issue (JSON Pointer, code, severity)
// - A selection resolver and calculator that folds customization adjustments
//   into effective prices and nutrient profiles, including combo components
// - URL and compact-tag codecs for order intents (under codec/)
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place wire codecs under codec/, localized messages under i18n/, the QR
//   collaborator under qr/, and the CLI under cmd/omenu.
// - The root package performs no I/O; file and image concerns live in
//   cmd/omenu and qr/.
// - Prefer black-box testing against public APIs.
package omenu

// Version is the major.minor version of the OpenMenu format this library
// produces. Parsing accepts any document whose major version matches.
const Version = "1.0"

// MIMEType is the recommended media type for OpenMenu documents over HTTP.
const MIMEType = "application/vnd.openmenu+json"

// FileExtension is the recommended file extension, without the dot.
const FileExtension = "omenu"

// URLScheme is the URL scheme used by the order-intent codec.
const URLScheme = "omenu://"
