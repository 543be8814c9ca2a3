// Package category buckets free-text category tags into a small fixed set
// of snack-aisle categories used for the health-gap summary.
package category

import "strings"

// Other is the fallback bucket for tags that match no keyword.
const Other = "other"

// bucketKeywords maps a bucket to the tag substrings that select it.
// Order matters: the first bucket with a match wins, so more specific
// buckets come before broader ones.
var bucketKeywords = []struct {
	name     string
	keywords []string
}{
	{"chocolate", []string{"chocolate", "cocoa"}},
	{"biscuits & cookies", []string{"biscuit", "cookie", "wafer"}},
	{"cakes & pastries", []string{"cake", "pastr", "brownie", "muffin"}},
	{"candy", []string{"candy", "candies", "confectioner", "gummies", "sweets"}},
	{"bars", []string{"cereal-bar", "energy-bar", "protein-bar", "snack-bar", "granola-bar"}},
	{"chips & crisps", []string{"chips", "crisps", "popcorn", "pretzel"}},
	{"crackers", []string{"cracker", "crispbread"}},
	{"nuts & seeds", []string{"nuts", "almond", "peanut", "cashew", "seed", "trail-mix"}},
	{"dried fruit", []string{"dried-fruit", "raisin", "fruit-snack"}},
	{"dairy snacks", []string{"yogurt", "yoghurt", "cheese", "dairy"}},
	{"jerky & meat snacks", []string{"jerky", "meat-snack", "sausage"}},
}

// Primary reduces a comma-separated categories_tags field to one bucket.
// Tags come in Open Food Facts form ("en:sweet-snacks,en:biscuits"); the
// language prefix is irrelevant to the substring match.
func Primary(categoriesTags string) string {
	lower := strings.ToLower(categoriesTags)
	for _, b := range bucketKeywords {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				return b.name
			}
		}
	}
	return Other
}
