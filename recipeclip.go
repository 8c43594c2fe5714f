// Package recipeclip imports recipes from the web into a local collection.
// It fetches a recipe page, locates the schema.org Recipe metadata embedded
// as JSON-LD, and normalizes it into an editable recipe record. The package
// also provides the pure kitchen-math helpers used when displaying recipes:
// measurement unit conversion, PT-duration parsing, and ingredient quantity
// rescaling for serving-size adjustments.
//
// This package contains domain types, interfaces, and pure logic following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., jsonld/,
// sqlite/, rod/).
package recipeclip
