// Package summary reads aggregate statistics ("product summary") returned by
// the search API for a result set.
//
// The payload shape varies per query: any field or stat may be missing, so
// every accessor returns an optional.Option instead of failing. A Summary
// never mutates its tree and caches nothing, so it is safe for concurrent
// reads.
package summary

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/opencommercesearch/opencommercesearch/client/optional"
)

// Field and stat names used by the product summary payload.
const (
	ListPrice       = "listPrice"
	SalePrice       = "salePrice"
	DiscountPercent = "discountPercent"
	Color           = "color"
	ColorFamily     = "colorFamily"

	StatMin      = "min"
	StatMax      = "max"
	StatCount    = "count"
	StatFamilies = "families"
	StatBuckets  = "buckets"
)

// familySeparators splits the legacy colorFamily.families string, which
// looks like "[Red, Blue]".
const familySeparators = "[], "

// Summary wraps a parsed summary tree.
type Summary struct {
	data gjson.Result
}

// New wraps an already parsed tree.
func New(data gjson.Result) Summary { return Summary{data: data} }

// Parse wraps the JSON document in raw. Malformed input yields a Summary
// whose accessors all report absent values.
func Parse(raw string) Summary { return New(gjson.Parse(raw)) }

// ParseBytes is Parse for a byte slice.
func ParseBytes(raw []byte) Summary { return New(gjson.ParseBytes(raw)) }

// Raw returns the underlying JSON text.
func (s Summary) Raw() string { return s.data.Raw }

// Value returns tree[field][stat]. The result does not exist (Exists() ==
// false) when either level is missing or is not an object. Numeric names are
// never treated as array indexes.
func (s Summary) Value(field, stat string) gjson.Result {
	if !s.data.IsObject() {
		return gjson.Result{}
	}
	f := s.data.Get(gjson.Escape(field))
	if !f.IsObject() {
		return gjson.Result{}
	}
	return f.Get(gjson.Escape(stat))
}

// Float returns tree[field][stat] as a float64.
func (s Summary) Float(field, stat string) optional.Option[float64] {
	v := s.Value(field, stat)
	if !v.Exists() {
		return optional.None[float64]()
	}
	return optional.Some(v.Float())
}

// Int returns tree[field][stat] as an int. Fractions are truncated.
func (s Summary) Int(field, stat string) optional.Option[int] {
	v := s.Value(field, stat)
	if !v.Exists() {
		return optional.None[int]()
	}
	return optional.Some(int(v.Int()))
}

// MinListPrice returns listPrice.min.
func (s Summary) MinListPrice() optional.Option[float64] { return s.Float(ListPrice, StatMin) }

// MaxListPrice returns listPrice.max.
func (s Summary) MaxListPrice() optional.Option[float64] { return s.Float(ListPrice, StatMax) }

// MinSalePrice returns salePrice.min.
func (s Summary) MinSalePrice() optional.Option[float64] { return s.Float(SalePrice, StatMin) }

// MaxSalePrice returns salePrice.max.
func (s Summary) MaxSalePrice() optional.Option[float64] { return s.Float(SalePrice, StatMax) }

// MinDiscountPercent returns discountPercent.min.
func (s Summary) MinDiscountPercent() optional.Option[float64] {
	return s.Float(DiscountPercent, StatMin)
}

// MaxDiscountPercent returns discountPercent.max.
func (s Summary) MaxDiscountPercent() optional.Option[float64] {
	return s.Float(DiscountPercent, StatMax)
}

// ColorCount returns color.count.
func (s Summary) ColorCount() optional.Option[int] { return s.Int(Color, StatCount) }

// ColorFamilies returns the color families of the result set.
//
// color.families is read as a list, one family per element. When it is
// missing, colorFamily.families is read as a single string such as
// "[Red, Blue]" and split on brackets, commas and spaces. Absent only when
// both are missing.
func (s Summary) ColorFamilies() optional.Option[[]string] {
	if families := s.Value(Color, StatFamilies); families.Exists() {
		out := []string{}
		if families.IsArray() || families.IsObject() {
			families.ForEach(func(_, v gjson.Result) bool {
				out = append(out, asText(v))
				return true
			})
		}
		return optional.Some(out)
	}

	legacy := s.Value(ColorFamily, StatFamilies)
	if !legacy.Exists() {
		return optional.None[[]string]()
	}
	out := strings.FieldsFunc(asText(legacy), func(r rune) bool {
		return strings.ContainsRune(familySeparators, r)
	})
	if out == nil {
		out = []string{}
	}
	return optional.Some(out)
}

// Buckets returns tree[field].buckets as label -> count.
//
// A missing branch, a non-object, and an object with no members are all
// reported as absent.
func (s Summary) Buckets(field string) optional.Option[map[string]int] {
	buckets := s.Value(field, StatBuckets)
	if !buckets.IsObject() {
		return optional.None[map[string]int]()
	}
	out := make(map[string]int)
	buckets.ForEach(func(k, v gjson.Result) bool {
		out[k.String()] = int(v.Int())
		return true
	})
	if len(out) == 0 {
		return optional.None[map[string]int]()
	}
	return optional.Some(out)
}

// asText renders a scalar as text. Containers render empty and null renders
// as "null".
func asText(v gjson.Result) string {
	switch {
	case v.IsArray(), v.IsObject():
		return ""
	case v.Type == gjson.Null:
		return "null"
	default:
		return v.String()
	}
}
