// Package jsonld implements recipe extraction from schema.org JSON-LD
// metadata embedded in web pages.
package jsonld

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kspala/recipeclip"
)

// scriptType is the MIME type marking JSON-LD script blocks. The match is
// case-sensitive and exact, following the common convention.
const scriptType = "application/ld+json"

// Ensure Extractor implements recipeclip.Extractor at compile time.
var _ recipeclip.Extractor = (*Extractor)(nil)

// Extractor extracts a normalized recipe from the JSON-LD blocks of a page.
// It is stateless and safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract scans the page's script elements for JSON-LD describing a Recipe
// entity and maps the first qualifying object into a Recipe.
//
// Scan order is document order of the script tags, then array order within
// a block. A block that fails strict JSON parsing is skipped; only when no
// block yields a recipe does Extract return EUNSUPPORTED.
func (e *Extractor) Extract(html string) (*recipeclip.Recipe, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recipeclip.Errorf(recipeclip.EPARSE, "failed to parse HTML: %v", err)
	}

	var recipe *recipeclip.Recipe
	doc.Find("script").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		typ, ok := sel.Attr("type")
		if !ok || typ != scriptType {
			return true
		}

		var payload any
		if err := json.Unmarshal([]byte(sel.Text()), &payload); err != nil {
			// Invalid JSON in one block is non-fatal; keep scanning.
			return true
		}

		if obj := findRecipeObject(payload); obj != nil {
			recipe = mapRecipe(obj)
			return false
		}
		return true
	})

	if recipe == nil {
		return nil, recipeclip.Errorf(recipeclip.EUNSUPPORTED, "no recipe metadata found in page")
	}
	return recipe, nil
}

// findRecipeObject locates the first object describing a Recipe entity
// within a parsed JSON-LD value: the value itself, an entry of a top-level
// array, or an entry of the object's "@graph" array.
func findRecipeObject(v any) map[string]any {
	switch val := v.(type) {
	case map[string]any:
		if isRecipe(val) {
			return val
		}
		if graph, ok := val["@graph"].([]any); ok {
			return findInArray(graph)
		}
	case []any:
		return findInArray(val)
	}
	return nil
}

func findInArray(items []any) map[string]any {
	for _, item := range items {
		if obj, ok := item.(map[string]any); ok && isRecipe(obj) {
			return obj
		}
	}
	return nil
}

// isRecipe reports whether the object's @type is "Recipe" or an array
// containing "Recipe".
func isRecipe(obj map[string]any) bool {
	switch typ := obj["@type"].(type) {
	case string:
		return typ == "Recipe"
	case []any:
		for _, t := range typ {
			if s, ok := t.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

// mapRecipe maps a qualifying JSON-LD object onto a Recipe. Every field is
// defensively typed: an absent or wrong-typed value falls back to the
// record's default instead of failing the extraction.
func mapRecipe(obj map[string]any) *recipeclip.Recipe {
	r := recipeclip.NewRecipe()

	r.Name = stringField(obj, "name", recipeclip.DefaultRecipeName)
	r.Category = stringField(obj, "recipeCategory", "")
	r.Keywords = keywordList(obj["keywords"])
	r.Description = stringField(obj, "description", "")
	r.DateCreated = stringField(obj, "dateCreated", "")
	r.DateModified = stringField(obj, "dateModified", "")

	// Only the plain-string image form is handled; the array and object
	// forms some sites emit fall back to "".
	r.ImageURL = stringField(obj, "imageUrl", "")
	r.SourceURL = stringField(obj, "url", "")

	r.PrepTime = stringField(obj, "prepTime", "")
	r.CookTime = stringField(obj, "cookTime", "")
	r.TotalTime = stringField(obj, "totalTime", "")

	// Free-text yields like "4 servings" stay at the type default 0.
	r.Yield = intField(obj, "recipeYield")

	r.Ingredients = stringList(obj["recipeIngredient"])
	r.Instructions = textList(obj["recipeInstructions"])
	r.Tools = textList(obj["tool"])
	r.Nutrition = stringMap(obj["nutrition"])

	return r
}
