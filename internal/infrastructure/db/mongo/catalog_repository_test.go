package mongo

import (
	"regexp"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/velostore/commerce-api/internal/core/ports"
)

func keywordRegex(t *testing.T, query bson.M) string {
	t.Helper()
	name, ok := query["name"].(bson.M)
	if !ok {
		t.Fatalf("query has no name clause: %v", query)
	}
	pattern, ok := name["$regex"].(string)
	if !ok {
		t.Fatalf("name clause has no $regex: %v", name)
	}
	return pattern
}

func TestProductQuery_EscapesKeywordMetacharacters(t *testing.T) {
	// Search keywords come straight from the URL; every pattern built from
	// one must be a valid regex matching the keyword literally.
	for _, keyword := range []string{"(", "a+b", "[phone", "(a+)+$", ".*", `c:\\`} {
		query := productQuery(ports.ProductFilter{Keyword: keyword})
		pattern := keywordRegex(t, query)

		re, err := regexp.Compile(pattern)
		if err != nil {
			t.Fatalf("keyword %q produced an invalid pattern %q: %v", keyword, pattern, err)
		}
		if !re.MatchString("prefix " + keyword + " suffix") {
			t.Fatalf("pattern %q does not match the literal keyword %q", pattern, keyword)
		}
		if keyword == ".*" && re.MatchString("anything") {
			t.Fatalf("keyword %q still behaves as a wildcard", keyword)
		}
	}
}

func TestProductQuery_CombinesFilters(t *testing.T) {
	query := productQuery(ports.ProductFilter{CategoryID: "c1", Seller: "seller1", Keyword: "phone"})
	if query["category_id"] != "c1" {
		t.Fatalf("category_id = %v", query["category_id"])
	}
	if query["seller"] != "seller1" {
		t.Fatalf("seller = %v", query["seller"])
	}
	if got := keywordRegex(t, query); got != "phone" {
		t.Fatalf("plain keyword should pass through unchanged, got %q", got)
	}

	if got := productQuery(ports.ProductFilter{}); len(got) != 0 {
		t.Fatalf("empty filter should build an empty query, got %v", got)
	}
}
